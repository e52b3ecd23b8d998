package weathertrend

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/aouyang1/go-weathertrend/trend"
)

var ErrUnknownSortField = errors.New("unknown comparison sort field")

// SortField selects the column a comparison is ordered by
type SortField int

const (
	SortByCity SortField = iota
	SortByMeanTemperature
	SortByRain
	SortByConfidence
)

// ParseSortField maps a field name to a SortField
func ParseSortField(s string) (SortField, error) {
	switch s {
	case "city":
		return SortByCity, nil
	case "temperature":
		return SortByMeanTemperature, nil
	case "rain":
		return SortByRain, nil
	case "confidence":
		return SortByConfidence, nil
	}
	return SortByCity, fmt.Errorf("%q, %w", s, ErrUnknownSortField)
}

// Comparison is a set of reports for several cities shown side by side
type Comparison []*Report

// SortBy orders the reports in place. Cities sort alphabetically while numeric fields sort highest
// first. Equal values keep their existing order.
func (c Comparison) SortBy(field SortField) error {
	var less func(i, j int) bool
	switch field {
	case SortByCity:
		less = func(i, j int) bool { return c[i].Location() < c[j].Location() }
	case SortByMeanTemperature:
		less = func(i, j int) bool { return c[i].Summary.MeanTemperature > c[j].Summary.MeanTemperature }
	case SortByRain:
		less = func(i, j int) bool { return c[i].Summary.MeanRainProbability > c[j].Summary.MeanRainProbability }
	case SortByConfidence:
		less = func(i, j int) bool { return c[i].Prediction.Confidence > c[j].Prediction.Confidence }
	default:
		return fmt.Errorf("%d, %w", int(field), ErrUnknownSortField)
	}
	sort.SliceStable(c, less)
	return nil
}

// TablePrint writes one row per city. Measurements no observation reported are shown as "-".
func (c Comparison) TablePrint(w io.Writer) error {
	tbl := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(tbl, "City\tTrend\tMean °C\tFeels °C\tMin °C\tMax °C\tRain %\tMax Rain %\tHumidity %\tWind m/s\tPressure hPa\tDominant\tWeather\tNext °C\tConfidence\t"); err != nil {
		return err
	}
	for _, r := range c {
		next := "-"
		if len(r.Prediction.Temperatures) > 0 {
			next = fmt.Sprintf("%.1f", r.Prediction.Temperatures[0])
		}
		confidence := "-"
		if r.Prediction.OK() {
			confidence = fmt.Sprintf("%.1f%% (%s)", r.Prediction.Confidence*100, r.Prediction.Level())
		}
		weather := r.Summary.DominantDescription
		if weather == "" {
			weather = "-"
		}
		if _, err := fmt.Fprintf(tbl, "%s\t%s\t%.1f\t%s\t%.1f\t%.1f\t%.1f\t%.1f\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			r.Location(),
			r.Summary.TemperatureTrend,
			r.Summary.MeanTemperature,
			formatMean(r.Summary.FeelsLike, "%.1f"),
			r.Summary.MinTemperature,
			r.Summary.MaxTemperature,
			r.Summary.MeanRainProbability,
			r.Summary.MaxRainProbability,
			formatMean(r.Summary.Humidity, "%.0f"),
			formatMean(r.Summary.WindSpeed, "%.1f"),
			formatMean(r.Summary.Pressure, "%.0f"),
			r.Summary.DominantCondition,
			weather,
			next,
			confidence,
		); err != nil {
			return err
		}
	}
	return tbl.Flush()
}

func formatMean(m *trend.Measurement, format string) string {
	if m == nil {
		return "-"
	}
	return fmt.Sprintf(format, m.Mean)
}
