// SPDX-License-Identifier: MIT
// Package pca: sentinel error set.
//
// Error policy:
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Implementations attach context with pcaErrorf (op tag + %w).
//   - Validation failures of the input matrix surface the matrix package
//     sentinels unchanged (matrix.ErrNilMatrix, matrix.ErrBadShape, ...).

package pca

import (
	"errors"
	"fmt"
)

var (
	// ErrRankDeficient indicates fewer samples than features (n < d): the
	// centered sample cannot span d directions, so a full-rank basis does not exist.
	ErrRankDeficient = errors.New("pca: fewer samples than features")

	// ErrDegenerateSpectrum indicates a spectrum whose total variance is zero,
	// negative or non-finite, so cumulative ratios are undefined.
	ErrDegenerateSpectrum = errors.New("pca: degenerate eigenvalue spectrum")

	// ErrDecompositionFailed indicates that the selected solver did not
	// factorize the input (LAPACK failure or Jacobi non-convergence).
	ErrDecompositionFailed = errors.New("pca: decomposition failed")

	// ErrRankOutOfRange indicates a truncation rank outside [1, d].
	ErrRankOutOfRange = errors.New("pca: truncation rank out of range")

	// ErrShapeInvariant indicates a reconstruction whose shape differs from
	// its input. It signals a defect in the projection code, not a user error.
	ErrShapeInvariant = errors.New("pca: reconstruction shape invariant violated")

	// ErrNilBasis indicates that a nil *Basis was passed.
	ErrNilBasis = errors.New("pca: nil basis")
)

// Operation name constants for unified error wrapping.
const (
	opDecompose   = "Decompose"
	opRatios      = "CumulativeRatios"
	opProject     = "Project"
	opInverse     = "InverseProject"
	opReconstruct = "Reconstruct"
	opSeries      = "ReconstructSeries"
	opJacobi      = "Jacobi"
)

// pcaErrorf wraps err with an operation tag, preserving the original via %w.
func pcaErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
