// Package observation defines the timestamped weather samples consumed by the trend analyzer and
// forecaster, along with decoding of upstream forecast payloads into them.
package observation

import (
	"errors"
	"fmt"
	"math"
	"time"
)

var (
	ErrNoObservations       = errors.New("no observations")
	ErrNonMonotonic         = errors.New("observation timestamps are not strictly increasing")
	ErrPrecipitationRange   = errors.New("precipitation probability outside of [0, 100]")
	ErrNonFiniteTemperature = errors.New("temperature is not a finite value")
	ErrNonFiniteMeasurement = errors.New("measurement is not a finite value")
	ErrNegativeMeasurement  = errors.New("measurement is negative")
	ErrHumidityRange        = errors.New("humidity outside of [0, 100]")
)

const (
	MinPrecipitationProbability = 0.0
	MaxPrecipitationProbability = 100.0
)

// Observation is a single forecast data point. Temperature is in Celsius and the precipitation
// probability is a percentage.
//
// The remaining measurements are optional and nil when the upstream forecast did not report them.
// FeelsLike is in Celsius, Humidity a percentage, Pressure in hPa and WindSpeed in m/s.
type Observation struct {
	Timestamp                time.Time `json:"timestamp"`
	Temperature              float64   `json:"temperature"`
	PrecipitationProbability float64   `json:"precipitation_probability"`
	Condition                string    `json:"condition"`

	Description string   `json:"description,omitempty"`
	FeelsLike   *float64 `json:"feels_like,omitempty"`
	Humidity    *float64 `json:"humidity,omitempty"`
	Pressure    *float64 `json:"pressure,omitempty"`
	WindSpeed   *float64 `json:"wind_speed,omitempty"`
}

// Validate checks the observation values are usable
func (o Observation) Validate() error {
	if math.IsNaN(o.Temperature) || math.IsInf(o.Temperature, 0) {
		return ErrNonFiniteTemperature
	}
	if math.IsNaN(o.PrecipitationProbability) ||
		o.PrecipitationProbability < MinPrecipitationProbability ||
		o.PrecipitationProbability > MaxPrecipitationProbability {
		return fmt.Errorf("got %.3f, %w", o.PrecipitationProbability, ErrPrecipitationRange)
	}

	measurements := []struct {
		name        string
		val         *float64
		nonNegative bool
	}{
		{"feels like", o.FeelsLike, false},
		{"humidity", o.Humidity, true},
		{"pressure", o.Pressure, true},
		{"wind speed", o.WindSpeed, true},
	}
	for _, m := range measurements {
		if m.val == nil {
			continue
		}
		if math.IsNaN(*m.val) || math.IsInf(*m.val, 0) {
			return fmt.Errorf("%s, %w", m.name, ErrNonFiniteMeasurement)
		}
		if m.nonNegative && *m.val < 0 {
			return fmt.Errorf("%s got %.3f, %w", m.name, *m.val, ErrNegativeMeasurement)
		}
	}
	if o.Humidity != nil && *o.Humidity > 100 {
		return fmt.Errorf("got %.3f, %w", *o.Humidity, ErrHumidityRange)
	}
	return nil
}

// Series is an ordered sequence of observations sorted by timestamp ascending
type Series []Observation

// NewSeries returns a validated copy of the input observations. Timestamps must be strictly
// increasing, though the spacing between them is not enforced.
func NewSeries(obs []Observation) (Series, error) {
	if len(obs) == 0 {
		return nil, ErrNoObservations
	}

	var lastT time.Time
	for i, o := range obs {
		if err := o.Validate(); err != nil {
			return nil, fmt.Errorf("invalid observation at %d, %w", i, err)
		}
		if i > 0 && !o.Timestamp.After(lastT) {
			return nil, fmt.Errorf("non-monotonic at %d, %w", i, ErrNonMonotonic)
		}
		lastT = o.Timestamp
	}

	s := make(Series, len(obs))
	copy(s, obs)
	return s, nil
}

// Copy returns a copy of the series. The optional measurement pointers are shared.
func (s Series) Copy() Series {
	if s == nil {
		return nil
	}
	c := make(Series, len(s))
	copy(c, s)
	return c
}

// Head returns up to the first n observations
func (s Series) Head(n int) Series {
	if n < 0 {
		n = 0
	}
	if n > len(s) {
		n = len(s)
	}
	return s[:n:n]
}

// Times returns the timestamp of every observation
func (s Series) Times() TimeSlice {
	t := make(TimeSlice, len(s))
	for i, o := range s {
		t[i] = o.Timestamp
	}
	return t
}

// Temperatures returns the temperature column in Celsius. This is the input to the trend
// forecaster.
func (s Series) Temperatures() []float64 {
	y := make([]float64, len(s))
	for i, o := range s {
		y[i] = o.Temperature
	}
	return y
}

// PrecipitationProbabilities returns the precipitation probability column as percentages
func (s Series) PrecipitationProbabilities() []float64 {
	p := make([]float64, len(s))
	for i, o := range s {
		p[i] = o.PrecipitationProbability
	}
	return p
}

// Conditions returns the weather condition group of every observation, e.g. Rain or Clouds
func (s Series) Conditions() []string {
	c := make([]string, len(s))
	for i, o := range s {
		c[i] = o.Condition
	}
	return c
}

// Descriptions returns the weather description column. Missing descriptions are empty.
func (s Series) Descriptions() []string {
	d := make([]string, len(s))
	for i, o := range s {
		d[i] = o.Description
	}
	return d
}

// FeelsLike returns the apparent temperature column with NaN where it was not reported
func (s Series) FeelsLike() []float64 {
	return s.optionalColumn(func(o Observation) *float64 { return o.FeelsLike })
}

// Humidities returns the relative humidity column with NaN where it was not reported
func (s Series) Humidities() []float64 {
	return s.optionalColumn(func(o Observation) *float64 { return o.Humidity })
}

// Pressures returns the sea level pressure column with NaN where it was not reported
func (s Series) Pressures() []float64 {
	return s.optionalColumn(func(o Observation) *float64 { return o.Pressure })
}

// WindSpeeds returns the wind speed column with NaN where it was not reported
func (s Series) WindSpeeds() []float64 {
	return s.optionalColumn(func(o Observation) *float64 { return o.WindSpeed })
}

func (s Series) optionalColumn(field func(Observation) *float64) []float64 {
	col := make([]float64, len(s))
	for i, o := range s {
		col[i] = math.NaN()
		if v := field(o); v != nil {
			col[i] = *v
		}
	}
	return col
}
