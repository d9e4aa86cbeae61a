// SPDX-License-Identifier: MIT
// Package matrix: element-wise and row-wise helpers used by reconstruction
// checks and score aggregation.
//
// Conventions:
//   - Inputs are never mutated; results are freshly allocated.
//   - Row views of *mat.Dense are used as fast-paths; any other mat.Matrix
//     falls back to At with the same i→j order, so results are identical.

package matrix

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// Time: O(r*c). Space: O(1). Deterministic.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol| (negative values are normalized).
//   - NaN/Inf tolerances are rejected with ErrNaNInf.
func AllClose(a, b mat.Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	r, c := a.Dims()
	var av, bv float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			av, bv = a.At(i, j), b.At(i, j)
			if math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
				return false, nil // early-exit on first violation
			}
		}
	}

	return true, nil
}

// Residual returns a - b as a new *mat.Dense.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func Residual(a, b mat.Matrix) (*mat.Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opResidual, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opResidual, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opResidual, err)
	}

	var out mat.Dense
	out.Sub(a, b)

	return &out, nil
}

// RowNorms returns the Euclidean (L2) norm of every row of m.
// Complexity: O(r*c) time, O(r) space (+O(c) scratch on the fallback path).
func RowNorms(m mat.Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRowNorms, err)
	}

	r, c := m.Dims()
	norms := make([]float64, r)
	if d, ok := m.(*mat.Dense); ok {
		for i := 0; i < r; i++ {
			norms[i] = floats.Norm(d.RawRowView(i), 2)
		}
		return norms, nil
	}

	row := make([]float64, c)
	for i := 0; i < r; i++ {
		mat.Row(row, i, m)
		norms[i] = floats.Norm(row, 2)
	}

	return norms, nil
}
