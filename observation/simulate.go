package observation

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"
)

var ErrGeneratorLenMismatch = errors.New("generated columns have different lengths")

// GenerateT returns n time points spaced by interval ending one interval before the current
// minute returned by nowFunc.
func GenerateT(n int, interval time.Duration, nowFunc func() time.Time) []time.Time {
	t := make([]time.Time, 0, n)
	ct := time.Unix(nowFunc().Unix()/60*60, 0).UTC().Add(-time.Duration(n) * interval)
	for i := 0; i < n; i++ {
		t = append(t, ct.Add(interval*time.Duration(i)))
	}
	return t
}

// GenerateLinearTemperatures returns n temperatures starting at start and changing by slope per sample
func GenerateLinearTemperatures(n int, start, slope float64) []float64 {
	y := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		y = append(y, start+slope*float64(i))
	}
	return y
}

// GenerateDiurnalTemperatures returns temperatures following a daily sine wave around mean with
// the peak at 15:00 UTC and gaussian noise scaled by noiseScale.
func GenerateDiurnalTemperatures(t []time.Time, mean, amp, noiseScale float64) []float64 {
	const day = 86400.0
	y := make([]float64, 0, len(t))
	for _, ct := range t {
		sec := float64(ct.Unix()%int64(day)) - 9*60*60
		val := mean + amp*math.Sin(2.0*math.Pi*sec/day)
		if noiseScale > 0 {
			val += rand.NormFloat64() * noiseScale
		}
		y = append(y, val)
	}
	return y
}

// GenerateSeries zips the generated columns into a validated series. A nil pops or conditions
// slice fills with 0% and "Clear" respectively.
func GenerateSeries(t []time.Time, temps, pops []float64, conditions []string) (Series, error) {
	n := len(t)
	if len(temps) != n {
		return nil, fmt.Errorf("%d temperatures for %d time points, %w", len(temps), n, ErrGeneratorLenMismatch)
	}
	if pops != nil && len(pops) != n {
		return nil, fmt.Errorf("%d precipitation probabilities for %d time points, %w", len(pops), n, ErrGeneratorLenMismatch)
	}
	if conditions != nil && len(conditions) != n {
		return nil, fmt.Errorf("%d conditions for %d time points, %w", len(conditions), n, ErrGeneratorLenMismatch)
	}

	obs := make([]Observation, n)
	for i := 0; i < n; i++ {
		o := Observation{
			Timestamp:   t[i],
			Temperature: temps[i],
			Condition:   "Clear",
		}
		if pops != nil {
			o.PrecipitationProbability = pops[i]
		}
		if conditions != nil {
			o.Condition = conditions[i]
		}
		obs[i] = o
	}
	return NewSeries(obs)
}
