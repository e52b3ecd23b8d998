package models

import (
	"testing"

	mat_ "github.com/aouyang1/go-weathertrend/mat"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func testModel(t *testing.T, model Model, x, y mat.Matrix, intercept float64, coef []float64, tol float64) {
	err := model.Fit(x, y)
	require.Nil(t, err)

	assert.InDelta(t, intercept, model.Intercept(), tol)

	c := model.Coef()
	assert.InDeltaSlice(t, coef, c, tol)

	r2, err := model.Score(x, y)
	require.Nil(t, err)
	assert.InDelta(t, 1.0, r2, tol)
}

func generateBenchData(nObs int) (mat.Matrix, mat.Matrix, error) {
	x, err := mat_.IndexDesign(0, nObs)
	if err != nil {
		return nil, nil, err
	}

	data := make([]float64, 0, nObs)
	for i := 0; i < cap(data); i++ {
		data = append(data, 12.5+0.25*float64(i))
	}

	y, err := mat_.ColumnVector(data)
	if err != nil {
		return nil, nil, err
	}
	return x, y, nil
}
