package weathertrend

import (
	"errors"
	"fmt"
	"time"

	"github.com/aouyang1/go-weathertrend/forecast"
)

const (
	// DefaultWindow is the number of leading observations used to fit the temperature trend
	DefaultWindow = 12

	// DefaultHorizon is the number of steps predicted past the window
	DefaultHorizon = 8

	// DefaultInterval is the step between predictions when it cannot be inferred from the series
	DefaultInterval = 3 * time.Hour
)

var (
	ErrInvalidWindow    = errors.New("window must be positive")
	ErrNegativeHorizon  = errors.New("horizon must be non-negative")
	ErrNegativeInterval = errors.New("interval must be non-negative")
)

// Options configures how a report is built from a forecast series
type Options struct {
	// Window is the number of leading observations whose temperatures are used to fit the trend
	Window int

	// Horizon is the number of steps to predict past the last windowed observation
	Horizon int

	// Interval is the time between predicted steps. If 0 it is inferred from the series.
	Interval time.Duration

	ForecastOptions *forecast.Options
	NowFunc         func() time.Time
}

func NewDefaultOptions() *Options {
	return &Options{
		Window:          DefaultWindow,
		Horizon:         DefaultHorizon,
		ForecastOptions: forecast.NewDefaultOptions(),
		NowFunc:         time.Now,
	}
}

// Validate returns a copy of the options with defaults filled in
func (o *Options) Validate() (*Options, error) {
	if o == nil {
		return NewDefaultOptions(), nil
	}
	if o.Window <= 0 {
		return nil, fmt.Errorf("got %d, %w", o.Window, ErrInvalidWindow)
	}
	if o.Horizon < 0 {
		return nil, fmt.Errorf("got %d, %w", o.Horizon, ErrNegativeHorizon)
	}
	if o.Interval < 0 {
		return nil, fmt.Errorf("got %s, %w", o.Interval, ErrNegativeInterval)
	}

	opt := *o
	forecastOpt, err := opt.ForecastOptions.Validate()
	if err != nil {
		return nil, fmt.Errorf("invalid forecast options, %w", err)
	}
	opt.ForecastOptions = forecastOpt
	if opt.Horizon > forecastOpt.MaxHorizon {
		return nil, fmt.Errorf("got %d, max %d, %w", opt.Horizon, forecastOpt.MaxHorizon, forecast.ErrHorizonTooLarge)
	}
	if opt.NowFunc == nil {
		opt.NowFunc = time.Now
	}
	return &opt, nil
}
