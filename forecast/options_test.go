package forecast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionsValidate(t *testing.T) {
	testData := map[string]struct {
		opt      *Options
		err      error
		expected *Options
	}{
		"nil": {nil, nil, NewDefaultOptions()},
		"too few samples": {
			&Options{MinSamples: 1},
			ErrMinSamplesTooSmall,
			nil,
		},
		"negative tolerance": {
			&Options{MinSamples: 3, ResidualTolerance: -1},
			ErrNegativeTolerance,
			nil,
		},
		"negative max horizon": {
			&Options{MinSamples: 3, MaxHorizon: -1},
			ErrNegativeMaxHorizon,
			nil,
		},
		"valid": {
			&Options{MinSamples: 6, ResidualTolerance: 1e-6, MaxHorizon: 48},
			nil,
			&Options{MinSamples: 6, ResidualTolerance: 1e-6, MaxHorizon: 48},
		},
		"default max horizon": {
			&Options{MinSamples: 6, ResidualTolerance: 1e-6},
			nil,
			&Options{MinSamples: 6, ResidualTolerance: 1e-6, MaxHorizon: DefaultMaxHorizon},
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			opt, err := td.opt.Validate()
			if td.err != nil {
				assert.ErrorIs(t, err, td.err)
				return
			}
			require.Nil(t, err)
			assert.Equal(t, td.expected, opt)
		})
	}

	_, err := New(&Options{MinSamples: 0})
	assert.ErrorIs(t, err, ErrMinSamplesTooSmall)

	in := &Options{MinSamples: 4}
	_, err = in.Validate()
	require.Nil(t, err)
	assert.Equal(t, 0, in.MaxHorizon)
}
