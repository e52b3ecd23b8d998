// Package mat builds the gonum matrices used to fit and extrapolate sample series.
package mat

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

var (
	ErrColMismatch    = errors.New("column size mismatch")
	ErrNegativeLength = errors.New("negative length not allowed")
	ErrEmptyVector    = errors.New("empty vector")
)

// NewDenseFromArray returns a dense matrix from a row major 2D slice. Every row must have the
// same number of columns.
func NewDenseFromArray(x [][]float64) (*mat.Dense, error) {
	m := len(x)

	n := -1
	for i, row := range x {
		if n >= 0 && len(row) != n {
			return nil, fmt.Errorf("at row %d, %w", i, ErrColMismatch)
		}
		if n < 0 {
			n = len(row)
		}
	}
	if n < 0 {
		n = 0
	}

	// flatten to row order
	data := make([]float64, 0, m*n)
	for _, row := range x {
		data = append(data, row...)
	}
	return mat.NewDense(m, n, data), nil
}

// IndexDesign returns an n x 1 design matrix holding the sample indices start, start+1, ... start+n-1.
// Sample positions stand in for time when samples are evenly spaced.
func IndexDesign(start, n int) (*mat.Dense, error) {
	if n < 0 {
		return nil, fmt.Errorf("requested %d indices, %w", n, ErrNegativeLength)
	}
	if n == 0 {
		return nil, ErrEmptyVector
	}
	idx := make([]float64, n)
	for i := 0; i < n; i++ {
		idx[i] = float64(start + i)
	}
	return mat.NewDense(n, 1, idx), nil
}

// ColumnVector copies the values into an n x 1 target matrix
func ColumnVector(y []float64) (*mat.Dense, error) {
	if len(y) == 0 {
		return nil, ErrEmptyVector
	}
	data := make([]float64, len(y))
	copy(data, y)
	return mat.NewDense(len(y), 1, data), nil
}
