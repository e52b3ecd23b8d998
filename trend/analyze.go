package trend

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/aouyang1/go-weathertrend/observation"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ConditionCount is the number of observations reporting a weather condition
type ConditionCount struct {
	Condition string `json:"condition"`
	Count     int    `json:"count"`
}

// Measurement summarizes an optional observation measurement over the observations that reported
// it
type Measurement struct {
	Mean    float64 `json:"mean"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Samples int     `json:"samples"`
}

// newMeasurement skips NaN values and returns nil when no value is left
func newMeasurement(vals []float64) *Measurement {
	reported := make([]float64, 0, len(vals))
	for _, v := range vals {
		if !math.IsNaN(v) {
			reported = append(reported, v)
		}
	}
	if len(reported) == 0 {
		return nil
	}
	return &Measurement{
		Mean:    stat.Mean(reported, nil),
		Min:     floats.Min(reported),
		Max:     floats.Max(reported),
		Samples: len(reported),
	}
}

// Summary describes the trends found in a forecast series
type Summary struct {
	TemperatureTrend       Trend   `json:"temperature_trend"`
	TemperatureDelta       float64 `json:"temperature_delta"`
	MeanTemperature        float64 `json:"mean_temperature"`
	MinTemperature         float64 `json:"min_temperature"`
	MaxTemperature         float64 `json:"max_temperature"`
	MeanRainProbability    float64 `json:"mean_rain_probability"`
	MaxRainProbability     float64 `json:"max_rain_probability"`
	DistinctConditionCount int     `json:"distinct_condition_count"`
	DominantCondition      string  `json:"dominant_condition"`

	// ConditionCounts are ordered by first appearance in the series
	ConditionCounts []ConditionCount `json:"condition_counts"`
	Observations    int              `json:"observations"`

	// DominantDescription is the most frequent weather description, empty if none were reported
	DominantDescription string `json:"dominant_description,omitempty"`

	// Optional measurements are nil when no observation reported them
	FeelsLike *Measurement `json:"feels_like,omitempty"`
	Humidity  *Measurement `json:"humidity,omitempty"`
	Pressure  *Measurement `json:"pressure,omitempty"`
	WindSpeed *Measurement `json:"wind_speed,omitempty"`
}

// Analyze summarizes a non-empty series. The input series is never modified.
func Analyze(series observation.Series) (Summary, error) {
	if len(series) == 0 {
		return Summary{}, ErrEmptySeries
	}

	temps := series.Temperatures()
	pops := series.PrecipitationProbabilities()

	delta := temps[len(temps)-1] - temps[0]
	counts := countConditions(series.Conditions())

	return Summary{
		TemperatureTrend:       Classify(delta),
		TemperatureDelta:       delta,
		MeanTemperature:        stat.Mean(temps, nil),
		MinTemperature:         floats.Min(temps),
		MaxTemperature:         floats.Max(temps),
		MeanRainProbability:    stat.Mean(pops, nil),
		MaxRainProbability:     floats.Max(pops),
		DistinctConditionCount: len(counts),
		DominantCondition:      dominant(counts),
		ConditionCounts:        counts,
		Observations:           len(series),
		DominantDescription:    dominantDescription(series.Descriptions()),
		FeelsLike:              newMeasurement(series.FeelsLike()),
		Humidity:               newMeasurement(series.Humidities()),
		Pressure:               newMeasurement(series.Pressures()),
		WindSpeed:              newMeasurement(series.WindSpeeds()),
	}, nil
}

// dominantDescription is the most frequent non empty description. Ties go to the description
// seen first.
func dominantDescription(descriptions []string) string {
	reported := make([]string, 0, len(descriptions))
	for _, d := range descriptions {
		if d != "" {
			reported = append(reported, d)
		}
	}
	return dominant(countConditions(reported))
}

// countConditions tallies each condition keeping the order each was first seen
func countConditions(conditions []string) []ConditionCount {
	idx := make(map[string]int)
	counts := make([]ConditionCount, 0)
	for _, c := range conditions {
		i, exists := idx[c]
		if !exists {
			idx[c] = len(counts)
			counts = append(counts, ConditionCount{Condition: c})
			i = len(counts) - 1
		}
		counts[i].Count++
	}
	return counts
}

// dominant returns the most frequent condition. Ties go to the condition seen first.
func dominant(counts []ConditionCount) string {
	var best ConditionCount
	for _, c := range counts {
		if c.Count > best.Count {
			best = c
		}
	}
	return best.Condition
}

// TablePrint writes a human readable version of the summary
func (s Summary) TablePrint(w io.Writer, prefix, indent string) error {
	if _, err := fmt.Fprintf(w, "%sTrend Summary:\n", prefix); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s%sTemperature: %s (%+.1f°C)    Mean: %.1f°C    Range: %.1f°C to %.1f°C\n",
		prefix, indent,
		s.TemperatureTrend, s.TemperatureDelta, s.MeanTemperature, s.MinTemperature, s.MaxTemperature,
	); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s%sRain: mean %.1f%%    max %.1f%%\n",
		prefix, indent, s.MeanRainProbability, s.MaxRainProbability,
	); err != nil {
		return err
	}
	if s.FeelsLike != nil {
		if _, err := fmt.Fprintf(w, "%s%sFeels Like: mean %.1f°C    range %.1f°C to %.1f°C\n",
			prefix, indent, s.FeelsLike.Mean, s.FeelsLike.Min, s.FeelsLike.Max,
		); err != nil {
			return err
		}
	}
	if s.Humidity != nil {
		if _, err := fmt.Fprintf(w, "%s%sHumidity: mean %.0f%%    max %.0f%%\n",
			prefix, indent, s.Humidity.Mean, s.Humidity.Max,
		); err != nil {
			return err
		}
	}
	if s.WindSpeed != nil {
		if _, err := fmt.Fprintf(w, "%s%sWind: mean %.1f m/s    max %.1f m/s\n",
			prefix, indent, s.WindSpeed.Mean, s.WindSpeed.Max,
		); err != nil {
			return err
		}
	}
	if s.Pressure != nil {
		if _, err := fmt.Fprintf(w, "%s%sPressure: mean %.0f hPa    range %.0f to %.0f hPa\n",
			prefix, indent, s.Pressure.Mean, s.Pressure.Min, s.Pressure.Max,
		); err != nil {
			return err
		}
	}

	dominantCondition := s.DominantCondition
	if s.DominantDescription != "" {
		dominantCondition += " (" + s.DominantDescription + ")"
	}
	if _, err := fmt.Fprintf(w, "%s%sConditions: %d types, dominant %s\n",
		prefix, indent, s.DistinctConditionCount, dominantCondition,
	); err != nil {
		return err
	}

	tbl := tabwriter.NewWriter(w, 0, 0, 1, ' ', tabwriter.AlignRight)
	if _, err := fmt.Fprintf(tbl, "%s%s%sCondition\tCount\t\n", prefix, indent, indent); err != nil {
		return err
	}
	for _, c := range s.ConditionCounts {
		if _, err := fmt.Fprintf(tbl, "%s%s%s%s\t%d\t\n", prefix, indent, indent, c.Condition, c.Count); err != nil {
			return err
		}
	}
	return tbl.Flush()
}
