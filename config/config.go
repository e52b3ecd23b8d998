// Package config loads the weathertrend CLI settings from the environment. A .env file in the
// working directory is loaded first when present.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/aouyang1/go-weathertrend"
	"github.com/joho/godotenv"
)

const envPrefix = "WEATHERTREND_"

const (
	OutputTable = "table"
	OutputJSON  = "json"
)

var (
	ErrInvalidEnv      = errors.New("invalid environment value")
	ErrUnknownOutput   = errors.New("unknown output format")
	ErrInvalidLogLevel = errors.New("invalid log level")
)

type Config struct {
	Window   int
	Horizon  int
	Interval time.Duration
	LogLevel slog.Level
	Output   string
	SortBy   string
}

func NewDefaultConfig() *Config {
	return &Config{
		Window:   weathertrend.DefaultWindow,
		Horizon:  weathertrend.DefaultHorizon,
		LogLevel: slog.LevelInfo,
		Output:   OutputTable,
		SortBy:   "city",
	}
}

// Load reads the configuration from the environment after loading any of the provided env files.
// With no files a .env in the working directory is tried. Missing files are ignored but a file
// that cannot be parsed is an error.
func Load(filenames ...string) (*Config, error) {
	if err := godotenv.Load(filenames...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("unable to load env file, %w: %w", ErrInvalidEnv, err)
	}

	defaults := NewDefaultConfig()
	cfg := &Config{
		Output: strings.ToLower(getEnv("OUTPUT", defaults.Output)),
		SortBy: strings.ToLower(getEnv("SORT", defaults.SortBy)),
	}

	var err error
	if cfg.Window, err = getEnvAsInt("WINDOW", defaults.Window); err != nil {
		return nil, err
	}
	if cfg.Horizon, err = getEnvAsInt("HORIZON", defaults.Horizon); err != nil {
		return nil, err
	}
	if cfg.Interval, err = getEnvAsDuration("INTERVAL", defaults.Interval); err != nil {
		return nil, err
	}
	if cfg.LogLevel, err = getEnvAsLevel("LOG_LEVEL", defaults.LogLevel); err != nil {
		return nil, err
	}

	return cfg.Validate()
}

// Validate checks the configured values and returns a copy
func (c *Config) Validate() (*Config, error) {
	if c == nil {
		return NewDefaultConfig(), nil
	}
	cfg := *c
	if _, err := cfg.ReportOptions().Validate(); err != nil {
		return nil, err
	}
	switch cfg.Output {
	case OutputTable, OutputJSON:
	default:
		return nil, fmt.Errorf("%q, %w", cfg.Output, ErrUnknownOutput)
	}
	if _, err := weathertrend.ParseSortField(cfg.SortBy); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ReportOptions converts the configuration into report options
func (c *Config) ReportOptions() *weathertrend.Options {
	opt := weathertrend.NewDefaultOptions()
	opt.Window = c.Window
	opt.Horizon = c.Horizon
	opt.Interval = c.Interval
	return opt
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(envPrefix + key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) (int, error) {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("%s%s=%q, %w", envPrefix, key, valueStr, ErrInvalidEnv)
	}
	return value, nil
}

func getEnvAsDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue, nil
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return 0, fmt.Errorf("%s%s=%q, %w", envPrefix, key, valueStr, ErrInvalidEnv)
	}
	return value, nil
}

func getEnvAsLevel(key string, defaultValue slog.Level) (slog.Level, error) {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(valueStr)); err != nil {
		return 0, fmt.Errorf("%s%s=%q, %w", envPrefix, key, valueStr, ErrInvalidLogLevel)
	}
	return level, nil
}
