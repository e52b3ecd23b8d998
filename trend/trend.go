// Package trend summarizes a forecast series into a temperature trend, rain likelihood and
// dominant weather condition.
package trend

import (
	"errors"
	"fmt"
	"strings"
)

// TrendThreshold is the change in Celsius between the first and last observation that must be
// exceeded before a series is considered warming or cooling.
const TrendThreshold = 2.0

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrEmptySeries  = fmt.Errorf("empty observation series, %w", ErrInvalidInput)
	ErrUnknownTrend = errors.New("unknown temperature trend")
)

// Trend is the direction of the temperature change across a series
type Trend int

const (
	Stable Trend = iota
	Warming
	Cooling
)

func (t Trend) String() string {
	switch t {
	case Stable:
		return "stable"
	case Warming:
		return "warming"
	case Cooling:
		return "cooling"
	default:
		return fmt.Sprintf("Trend(%d)", int(t))
	}
}

// ParseTrend is the inverse of String and is case insensitive
func ParseTrend(s string) (Trend, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "stable":
		return Stable, nil
	case "warming":
		return Warming, nil
	case "cooling":
		return Cooling, nil
	}
	return Stable, fmt.Errorf("%q, %w", s, ErrUnknownTrend)
}

func (t Trend) MarshalText() ([]byte, error) {
	switch t {
	case Stable, Warming, Cooling:
		return []byte(t.String()), nil
	}
	return nil, fmt.Errorf("%d, %w", int(t), ErrUnknownTrend)
}

func (t *Trend) UnmarshalText(data []byte) error {
	parsed, err := ParseTrend(string(data))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Classify returns the trend for a temperature change. The threshold must be strictly exceeded.
func Classify(delta float64) Trend {
	switch {
	case delta > TrendThreshold:
		return Warming
	case delta < -TrendThreshold:
		return Cooling
	default:
		return Stable
	}
}
