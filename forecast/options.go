package forecast

import (
	"errors"
	"fmt"
)

const (
	DefaultMinSamples = 3
	DefaultHorizon    = 24

	// DefaultMaxHorizon caps the number of extrapolated steps. A 5 day forecast at 1 hour
	// resolution is 120 steps.
	DefaultMaxHorizon = 1000

	// minFitSamples is the fewest samples that can determine a line
	minFitSamples = 2

	// DefaultResidualTolerance bounds the residuals of a fit over identical samples for the fit to
	// still be considered exact.
	DefaultResidualTolerance = 1e-9
)

var (
	ErrMinSamplesTooSmall = fmt.Errorf("minimum samples must be at least %d", minFitSamples)
	ErrNegativeTolerance  = errors.New("negative residual tolerance")
	ErrNegativeMaxHorizon = errors.New("negative max horizon")
)

// Options configures the temperature trend forecaster
type Options struct {
	// MinSamples is the fewest temperature samples required before a line is fit. Fewer samples
	// results in an empty prediction.
	MinSamples int

	// ResidualTolerance is the absolute or relative difference allowed between a fit and identical
	// training samples for the fit to be reported with full confidence.
	ResidualTolerance float64

	// MaxHorizon is the most steps a single prediction may extrapolate. If 0, DefaultMaxHorizon
	// is used.
	MaxHorizon int
}

func NewDefaultOptions() *Options {
	return &Options{
		MinSamples:        DefaultMinSamples,
		ResidualTolerance: DefaultResidualTolerance,
		MaxHorizon:        DefaultMaxHorizon,
	}
}

// Validate checks the configured values and returns a copy with defaults filled in. Nil options
// result in the defaults.
func (o *Options) Validate() (*Options, error) {
	if o == nil {
		return NewDefaultOptions(), nil
	}
	if o.MinSamples < minFitSamples {
		return nil, fmt.Errorf("got %d, %w", o.MinSamples, ErrMinSamplesTooSmall)
	}
	if o.ResidualTolerance < 0 {
		return nil, ErrNegativeTolerance
	}
	if o.MaxHorizon < 0 {
		return nil, fmt.Errorf("got %d, %w", o.MaxHorizon, ErrNegativeMaxHorizon)
	}

	opt := *o
	if opt.MaxHorizon == 0 {
		opt.MaxHorizon = DefaultMaxHorizon
	}
	return &opt, nil
}
