// Command weathertrend reads weather forecast payloads and prints a trend report per city.
//
//	weathertrend [-format table|json] [-plot out.html] [-window N] [-horizon N] [-cpuprofile] file...
//
// The payload is read from stdin when no files are given.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aouyang1/go-weathertrend"
	"github.com/aouyang1/go-weathertrend/config"
	"github.com/aouyang1/go-weathertrend/observation"
	"github.com/goccy/go-json"
	"github.com/pkg/profile"
)

var ErrNoReportsBuilt = errors.New("no reports could be built")

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("unable to load config, %w", err)
	}

	fs := flag.NewFlagSet("weathertrend", flag.ContinueOnError)
	fs.SetOutput(stderr)
	format := fs.String("format", cfg.Output, "output format, table or json")
	plotPath := fs.String("plot", "", "write an html chart page to this path")
	window := fs.Int("window", cfg.Window, "number of leading observations to fit the prediction on")
	horizon := fs.Int("horizon", cfg.Horizon, "number of steps to predict")
	sortBy := fs.String("sort", cfg.SortBy, "comparison order, one of city, temperature, rain or confidence")
	cpuProfile := fs.Bool("cpuprofile", false, "write a cpu profile to the working directory")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg.Output = *format
	cfg.Window = *window
	cfg.Horizon = *horizon
	cfg.SortBy = *sortBy
	if cfg, err = cfg.Validate(); err != nil {
		return fmt.Errorf("invalid arguments, %w", err)
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	}

	reports := buildReports(logger, fs.Args(), stdin, cfg)
	if len(reports) == 0 {
		return ErrNoReportsBuilt
	}

	if err := writeReports(stdout, reports, cfg); err != nil {
		return err
	}

	if *plotPath != "" {
		if err := weathertrend.PlotReportsFile(*plotPath, reports...); err != nil {
			return err
		}
		logger.Info("wrote plot", "path", *plotPath, "reports", len(reports))
	}
	return nil
}

// buildReports parses every input into a report. Inputs that fail are logged and skipped.
func buildReports(logger *slog.Logger, paths []string, stdin io.Reader, cfg *config.Config) []*weathertrend.Report {
	opt := cfg.ReportOptions()
	if len(paths) == 0 {
		r, err := reportFromReader(stdin, opt)
		if err != nil {
			logger.Error("unable to build report", "input", "stdin", "error", err)
			return nil
		}
		return []*weathertrend.Report{r}
	}

	reports := make([]*weathertrend.Report, 0, len(paths))
	for _, path := range paths {
		r, err := reportFromFile(path, opt)
		if err != nil {
			logger.Error("unable to build report", "input", path, "error", err)
			continue
		}
		logger.Debug("built report",
			"input", path,
			"location", r.Location(),
			"observations", len(r.Series),
			"trend", r.Summary.TemperatureTrend,
			"confidence", r.Prediction.Confidence,
		)
		reports = append(reports, r)
	}
	return reports
}

func reportFromFile(path string, opt *weathertrend.Options) (*weathertrend.Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return reportFromReader(f, opt)
}

func reportFromReader(r io.Reader, opt *weathertrend.Options) (*weathertrend.Report, error) {
	fc, err := observation.ParseForecast(r)
	if err != nil {
		return nil, err
	}
	return weathertrend.NewReportFromForecast(fc, opt)
}

func writeReports(w io.Writer, reports []*weathertrend.Report, cfg *config.Config) error {
	if cfg.Output == config.OutputJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if len(reports) == 1 {
			return enc.Encode(reports[0])
		}
		return enc.Encode(reports)
	}

	for _, r := range reports {
		if err := r.TablePrint(w, "", "  "); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	if len(reports) < 2 {
		return nil
	}

	field, err := weathertrend.ParseSortField(cfg.SortBy)
	if err != nil {
		return err
	}
	c := weathertrend.Comparison(reports)
	if err := c.SortBy(field); err != nil {
		return err
	}
	return c.TablePrint(w)
}
