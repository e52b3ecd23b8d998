// Package weathertrend builds trend reports from weather forecast series. A report pairs a summary
// of the whole series (temperature trend, rain likelihood, dominant condition) with a short linear
// extrapolation of the leading temperatures.
package weathertrend

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/aouyang1/go-weathertrend/forecast"
	"github.com/aouyang1/go-weathertrend/forecast/util"
	"github.com/aouyang1/go-weathertrend/observation"
	"github.com/aouyang1/go-weathertrend/trend"
	"github.com/google/uuid"
)

var ErrNoForecast = errors.New("no forecast provided")

// Report is the analysis of a single city's forecast series
type Report struct {
	ID          uuid.UUID `json:"id"`
	City        string    `json:"city"`
	Country     string    `json:"country,omitempty"`
	GeneratedAt time.Time `json:"generated_at"`

	Summary         trend.Summary       `json:"summary"`
	Prediction      forecast.Prediction `json:"prediction"`
	PredictionTimes []time.Time         `json:"prediction_times"`

	// Window is the number of leading observations the prediction was fit on
	Window   int                `json:"window"`
	Interval time.Duration      `json:"-"`
	Series   observation.Series `json:"observations"`
}

// NewReport analyzes the series and predicts the temperature trend from its leading window of
// observations. The series must not be empty.
func NewReport(city string, series observation.Series, opt *Options) (*Report, error) {
	opt, err := opt.Validate()
	if err != nil {
		return nil, fmt.Errorf("invalid report options, %w", err)
	}

	summary, err := trend.Analyze(series)
	if err != nil {
		return nil, fmt.Errorf("unable to analyze %q forecast, %w", city, err)
	}

	f, err := forecast.New(opt.ForecastOptions)
	if err != nil {
		return nil, fmt.Errorf("unable to initialize forecaster, %w", err)
	}

	window := series.Head(opt.Window)
	prediction := f.Predict(window.Temperatures(), opt.Horizon)

	interval := opt.Interval
	if interval == 0 {
		interval = inferInterval(window, series)
	}

	anchor := window.Times().EndTime()
	predTimes := make([]time.Time, 0, len(prediction.Temperatures))
	for i := range prediction.Temperatures {
		predTimes = append(predTimes, anchor.Add(time.Duration(i+1)*interval))
	}

	return &Report{
		ID:              uuid.New(),
		City:            city,
		GeneratedAt:     opt.NowFunc(),
		Summary:         summary,
		Prediction:      prediction,
		PredictionTimes: predTimes,
		Window:          len(window),
		Interval:        interval,
		Series:          series.Copy(),
	}, nil
}

// NewReportFromForecast builds a report from a decoded forecast payload
func NewReportFromForecast(fc *observation.Forecast, opt *Options) (*Report, error) {
	if fc == nil {
		return nil, ErrNoForecast
	}
	r, err := NewReport(fc.City, fc.Series, opt)
	if err != nil {
		return nil, err
	}
	r.Country = fc.Country
	return r, nil
}

// inferInterval estimates the spacing of the windowed observations, falling back to the full
// series and then to DefaultInterval.
func inferInterval(window, series observation.Series) time.Duration {
	if freq, err := window.Times().EstimateFreq(); err == nil {
		return freq
	}
	if freq, err := series.Times().EstimateFreq(); err == nil {
		return freq
	}
	return DefaultInterval
}

// Location returns the city with the country code if known
func (r *Report) Location() string {
	if r.Country == "" {
		return r.City
	}
	return r.City + ", " + r.Country
}

// TablePrint writes a human readable version of the report
func (r *Report) TablePrint(w io.Writer, prefix, indent string) error {
	if _, err := fmt.Fprintf(w, "%s%sReport: %s\n", prefix, util.IndentExpand(indent, 0), r.Location()); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s%sID: %s\n", prefix, util.IndentExpand(indent, 1), r.ID); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s%sObservations: %d from %s to %s\n",
		prefix, util.IndentExpand(indent, 1),
		len(r.Series),
		r.Series.Times().StartTime().Format(observation.ForecastTimeLayout),
		r.Series.Times().EndTime().Format(observation.ForecastTimeLayout),
	); err != nil {
		return err
	}

	if err := r.Summary.TablePrint(w, prefix+util.IndentExpand(indent, 1), indent); err != nil {
		return err
	}
	if err := r.Prediction.TablePrint(w, prefix+util.IndentExpand(indent, 1), indent); err != nil {
		return err
	}
	if len(r.PredictionTimes) == 0 {
		return nil
	}
	_, err := fmt.Fprintf(w, "%s%sPredicted From %s to %s every %s\n",
		prefix, util.IndentExpand(indent, 2),
		r.PredictionTimes[0].Format(observation.ForecastTimeLayout),
		r.PredictionTimes[len(r.PredictionTimes)-1].Format(observation.ForecastTimeLayout),
		r.Interval,
	)
	return err
}
