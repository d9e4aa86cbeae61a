// SPDX-License-Identifier: MIT
// Package matrix: converters between plain row slices and gonum dense storage.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// FromRows copies a rectangular [][]float64 into a new row-major *mat.Dense.
// Stage 1 (Validate): rows non-nil, at least one row and column, no ragged rows.
// Stage 2 (Execute): copy each row into a single flat backing slice.
// The input slices are never aliased by the result.
// Complexity: O(r*c) time and memory.
func FromRows(rows [][]float64) (*mat.Dense, error) {
	if rows == nil {
		return nil, matrixErrorf(opFromRows, ErrNilMatrix)
	}
	r := len(rows)
	if r == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf(opFromRows, ErrBadShape)
	}
	c := len(rows[0])

	data := make([]float64, 0, r*c)
	for i, row := range rows {
		if len(row) != c {
			return nil, matrixErrorf(opFromRows, fmt.Errorf("row %d has %d values, want %d: %w", i, len(row), c, ErrBadShape))
		}
		data = append(data, row...)
	}

	return mat.NewDense(r, c, data), nil
}

// ToRows copies m into freshly allocated row slices.
// Complexity: O(r*c).
func ToRows(m mat.Matrix) [][]float64 {
	r, c := m.Dims()
	out := make([][]float64, r)
	for i := 0; i < r; i++ {
		out[i] = make([]float64, c)
		for j := 0; j < c; j++ {
			out[i][j] = m.At(i, j)
		}
	}

	return out
}
