// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the column statistics the outlier pipeline depends on
//     (per-column moments and z-score standardization) as deterministic
//     compositions over gonum's stat and mat kernels.
//
// Exposed API:
//   - ColumnMoments(X) -> (means, stds)        // population moments per column
//   - Standardize(X)   -> (Z, means, stds)     // (x - mean) / std per column
//
// Determinism & Performance:
//   - Fixed j→i traversal for column extraction, i→j for the write-back.
//   - The input is never mutated; Z is a fresh *mat.Dense.
//
// Notes:
//   - Moments use the population definition (divide by r), matching the
//     classic z-score scaler. Scaling by sqrt(r/(r-1)) would not change any
//     ranking produced downstream.

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// VarianceFloor is the relative tolerance under which a column is treated as
// constant: std <= VarianceFloor * max_i |x_ij|.
// The bound scales with the column's own magnitude, so z-scoring stays
// scale-free. A literal zero check is not enough: a column of identical
// values such as 0.1 accumulates a mean rounding error and yields std ≈ 1e-17.
const VarianceFloor = 1e-12

// ColumnMoments returns the per-column population mean and standard deviation.
// Implementation:
//   - Stage 1: ValidateSample(X, 1, 1) (nil, shape, finite).
//   - Stage 2: extract each column once and call stat.PopMeanStdDev.
//
// Complexity: Time O(r*c), Space O(r + c).
func ColumnMoments(X mat.Matrix) (means, stds []float64, err error) {
	if err = ValidateSample(X, 1, 1); err != nil {
		return nil, nil, matrixErrorf(opMoments, err)
	}

	r, c := X.Dims()
	means = make([]float64, c)
	stds = make([]float64, c)
	col := make([]float64, r) // reused column buffer
	for j := 0; j < c; j++ {
		mat.Col(col, j, X)
		means[j], stds[j] = stat.PopMeanStdDev(col, nil)
	}

	return means, stds, nil
}

// Standardize returns Z with Z[i,j] = (X[i,j] - mean_j) / std_j.
// Implementation:
//   - Stage 1 (Validate): ValidateSample(X, 1, 1).
//   - Stage 2 (Moments): ColumnMoments.
//   - Stage 3 (Guard): any column with std <= VarianceFloor·max|x| →
//     ErrZeroVariance naming the first offending column; nothing non-finite
//     is ever emitted.
//   - Stage 4 (Apply): write the z-scores into a fresh row-major buffer.
//
// Returns:
//   - *mat.Dense: standardized copy (r×c).
//   - []float64: column means.
//   - []float64: column standard deviations (population).
//
// Errors:
//   - ErrNilMatrix, ErrBadShape, ErrNaNInf from validation.
//   - ErrZeroVariance for constant columns.
//
// Complexity: Time O(r*c), Space O(r*c).
func Standardize(X mat.Matrix) (*mat.Dense, []float64, []float64, error) {
	means, stds, err := ColumnMoments(X)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opStandardize, err)
	}

	r, c := X.Dims()
	inv := make([]float64, c)
	col := make([]float64, r)
	for j := 0; j < c; j++ {
		mat.Col(col, j, X)
		if stds[j] <= VarianceFloor*floats.Norm(col, math.Inf(1)) {
			return nil, nil, nil, matrixErrorf(opStandardize, fmt.Errorf("column %d: %w", j, ErrZeroVariance))
		}
		inv[j] = 1.0 / stds[j]
	}

	Z := mat.NewDense(r, c, nil)
	var i, j int
	for i = 0; i < r; i++ {
		row := Z.RawRowView(i) // write straight into the backing slice
		for j = 0; j < c; j++ {
			row[j] = (X.At(i, j) - means[j]) * inv[j]
		}
	}

	return Z, means, stds, nil
}
