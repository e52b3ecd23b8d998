package observation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateT(t *testing.T) {
	nowFunc := func() time.Time {
		return time.Date(1970, 1, 8, 0, 0, 0, 0, time.UTC)
	}

	numPnts := 7
	res := GenerateT(numPnts, 24*time.Hour, nowFunc)
	assert.Len(t, res, numPnts)

	assert.Equal(t, res[0], time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, res[numPnts-1], time.Date(1970, 1, 7, 0, 0, 0, 0, time.UTC))
}

func TestGenerateLinearTemperatures(t *testing.T) {
	assert.Equal(t, []float64{10, 10.5, 11, 11.5}, GenerateLinearTemperatures(4, 10, 0.5))
	assert.Empty(t, GenerateLinearTemperatures(0, 10, 0.5))
}

func TestGenerateDiurnalTemperatures(t *testing.T) {
	peak := time.Date(2024, 6, 1, 15, 0, 0, 0, time.UTC)
	trough := time.Date(2024, 6, 1, 3, 0, 0, 0, time.UTC)

	y := GenerateDiurnalTemperatures([]time.Time{peak, trough}, 20, 5, 0)
	require.Len(t, y, 2)
	assert.InDelta(t, 25.0, y[0], 1e-9)
	assert.InDelta(t, 15.0, y[1], 1e-9)
}

func TestGenerateSeries(t *testing.T) {
	nowFunc := func() time.Time {
		return time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)
	}
	tSeries := GenerateT(3, 3*time.Hour, nowFunc)

	s, err := GenerateSeries(tSeries, []float64{1, 2, 3}, nil, nil)
	require.Nil(t, err)
	assert.Equal(t, []string{"Clear", "Clear", "Clear"}, s.Conditions())
	assert.Equal(t, []float64{0, 0, 0}, s.PrecipitationProbabilities())

	_, err = GenerateSeries(tSeries, []float64{1, 2}, nil, nil)
	assert.ErrorIs(t, err, ErrGeneratorLenMismatch)

	_, err = GenerateSeries(tSeries, []float64{1, 2, 3}, []float64{0}, nil)
	assert.ErrorIs(t, err, ErrGeneratorLenMismatch)

	_, err = GenerateSeries(tSeries, []float64{1, 2, 3}, nil, []string{"Rain"})
	assert.ErrorIs(t, err, ErrGeneratorLenMismatch)
}
