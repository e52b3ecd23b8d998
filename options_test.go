package weathertrend

import (
	"testing"
	"time"

	"github.com/aouyang1/go-weathertrend/forecast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionsValidate(t *testing.T) {
	testData := map[string]struct {
		opt *Options
		err error
	}{
		"nil":               {nil, nil},
		"zero window":       {&Options{Window: 0}, ErrInvalidWindow},
		"negative horizon":  {&Options{Window: 1, Horizon: -1}, ErrNegativeHorizon},
		"negative interval": {&Options{Window: 1, Interval: -time.Minute}, ErrNegativeInterval},
		"bad forecast options": {
			&Options{Window: 1, ForecastOptions: &forecast.Options{MinSamples: 1}},
			forecast.ErrMinSamplesTooSmall,
		},
		"horizon over default max": {
			&Options{Window: 1, Horizon: forecast.DefaultMaxHorizon + 1},
			forecast.ErrHorizonTooLarge,
		},
		"horizon over configured max": {
			&Options{Window: 1, Horizon: 10, ForecastOptions: &forecast.Options{MinSamples: 3, MaxHorizon: 9}},
			forecast.ErrHorizonTooLarge,
		},
		"huge horizon": {&Options{Window: 1, Horizon: 1 << 60}, forecast.ErrHorizonTooLarge},
		"valid":        {&Options{Window: 24, Horizon: 24, Interval: time.Hour}, nil},
		"horizon at max": {
			&Options{Window: 1, Horizon: forecast.DefaultMaxHorizon},
			nil,
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
			assert.NotNil(t, opt.NowFunc)
			assert.NotNil(t, opt.ForecastOptions)
		})
	}
}

func TestOptionsValidateDoesNotMutate(t *testing.T) {
	opt := &Options{Window: 4, Horizon: 2}
	validated, err := opt.Validate()
	require.Nil(t, err)

	assert.Nil(t, opt.NowFunc)
	assert.Nil(t, opt.ForecastOptions)
	assert.Equal(t, 4, validated.Window)
	assert.Equal(t, forecast.NewDefaultOptions(), validated.ForecastOptions)
}
