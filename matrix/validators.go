// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep statistics and pipeline code minimal by delegating nil/shape/finite checks here.
//  - Return sentinel errors tagged with the validator name so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - ValidateFinite is O(r*c); every other validator is O(1).
//
// Note:
//  - Composite validators follow a fixed sequence (NotNil → Shape → Finite).

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// A typed nil pointer (e.g. (*mat.Dense)(nil)) is reported as nil too.
// Complexity: O(1).
func ValidateNotNil(m mat.Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*mat.Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateMinShape ensures m has at least minRows rows and minCols columns.
//
// Implementation: assumes m is not nil (caller must ensure).
// Returns: nil or wrapped ErrBadShape.
// Complexity: O(1).
func ValidateMinShape(m mat.Matrix, minRows, minCols int) error {
	r, c := m.Dims()
	if r < minRows {
		return validatorErrorf(fmt.Sprintf("ValidateMinShape: rows %d < %d", r, minRows), ErrBadShape)
	}
	if c < minCols {
		return validatorErrorf(fmt.Sprintf("ValidateMinShape: cols %d < %d", c, minCols), ErrBadShape)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
//
// Implementation: assumes a and b are not nil (caller must ensure).
// Returns: nil or wrapped ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape(a, b mat.Matrix) error {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ar != br {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if ac != bc {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateFinite scans m in fixed i→j order and rejects the first NaN/±Inf.
// The failing coordinate is included in the error text.
// Complexity: O(r*c).
func ValidateFinite(m mat.Matrix) error {
	r, c := m.Dims()
	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v = m.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return validatorErrorf(fmt.Sprintf("ValidateFinite(%d,%d)", i, j), ErrNaNInf)
			}
		}
	}

	return nil
}

// ValidateSample is the composite check applied to every raw input:
// NotNil → MinShape(minRows, minCols) → Finite.
func ValidateSample(m mat.Matrix, minRows, minCols int) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if err := ValidateMinShape(m, minRows, minCols); err != nil {
		return err
	}

	return ValidateFinite(m)
}
