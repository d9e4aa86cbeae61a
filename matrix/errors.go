// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All helpers MUST return these sentinels and tests MUST check them
// via errors.Is. No helper panics on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Helpers attach the operation name with
// matrixErrorf; callers still match the sentinel with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape -> NaN/Inf -> zero variance.

var (
	// ErrNilMatrix indicates that a nil matrix (or nil row slice) was supplied.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrBadShape is returned when a matrix has fewer rows/columns than an
	// operation requires, or when row slices are ragged.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. AllClose or Residual on matrices of different shape.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrZeroVariance signals a column whose standard deviation is zero (or
	// below VarianceFloor), which makes standardization undefined.
	ErrZeroVariance = errors.New("matrix: zero-variance column")
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opFromRows    = "FromRows"
	opStandardize = "Standardize"
	opMoments     = "ColumnMoments"
	opAllClose    = "AllClose"
	opResidual    = "Residual"
	opRowNorms    = "RowNorms"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
