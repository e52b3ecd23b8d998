package trend

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	testData := map[string]struct {
		first    float64
		last     float64
		expected Trend
	}{
		"exactly warming threshold": {10.0, 12.0, Stable},
		"exactly cooling threshold": {10.0, 8.0, Stable},
		"just above threshold":      {10.0, 12.01, Warming},
		"just below threshold":      {10.0, 7.99, Cooling},
		"no change":                 {10.0, 10.0, Stable},
		"large warming":             {-5.0, 15.0, Warming},
		"large cooling":             {25.0, 3.0, Cooling},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, td.expected, Classify(td.last-td.first))
		})
	}
}

func TestTrendText(t *testing.T) {
	for _, tr := range []Trend{Stable, Warming, Cooling} {
		out, err := json.Marshal(tr)
		require.Nil(t, err)

		var next Trend
		require.Nil(t, json.Unmarshal(out, &next))
		assert.Equal(t, tr, next)
	}

	out, err := json.Marshal(Warming)
	require.Nil(t, err)
	assert.Equal(t, `"warming"`, string(out))

	_, err = Trend(7).MarshalText()
	assert.ErrorIs(t, err, ErrUnknownTrend)
	assert.Equal(t, "Trend(7)", Trend(7).String())

	parsed, err := ParseTrend(" Cooling ")
	require.Nil(t, err)
	assert.Equal(t, Cooling, parsed)

	_, err = ParseTrend("freezing")
	assert.ErrorIs(t, err, ErrUnknownTrend)
}
