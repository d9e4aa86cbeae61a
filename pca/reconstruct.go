// SPDX-License-Identifier: MIT
// Package: pca
//
// Purpose:
//   - Map a sample into the leading-k subspace of a Basis and back.
//   - Produce the rank-k reconstruction for a single k, or the full series
//     k = 1..d from one cached Basis.
//
// Contract:
//   - X̂_k = (X - μ)·V_k·V_kᵀ + μ, with μ the Basis means.
//   - Every reconstruction has exactly the shape of its input.
//   - Inputs are never mutated; results are freshly allocated.

package pca

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/reconpca/matrix"
)

// Project maps X (n×d) onto the first k directions of b, returning the n×k scores.
//
// Errors:
//   - ErrNilBasis; matrix.ErrNilMatrix / ErrNaNInf from validation.
//   - matrix.ErrDimensionMismatch when X does not have b.Dim() columns.
//   - ErrRankOutOfRange when k ∉ [1, b.Dim()].
//
// Complexity: O(n*d*k).
func (b *Basis) Project(X mat.Matrix, k int) (*mat.Dense, error) {
	if err := b.checkInput(X, k); err != nil {
		return nil, pcaErrorf(opProject, err)
	}

	Xc := b.subtractMeans(X)
	var Y mat.Dense
	Y.Mul(Xc, b.leading(k))

	return &Y, nil
}

// InverseProject maps subspace scores Y (n×k) back to feature space (n×d),
// re-adding the Basis means. k is taken from Y's column count.
//
// Errors:
//   - ErrNilBasis; matrix.ErrNilMatrix.
//   - ErrRankOutOfRange when Y has 0 or more than b.Dim() columns.
//
// Complexity: O(n*k*d).
func (b *Basis) InverseProject(Y mat.Matrix) (*mat.Dense, error) {
	if b == nil {
		return nil, pcaErrorf(opInverse, ErrNilBasis)
	}
	if err := matrix.ValidateNotNil(Y); err != nil {
		return nil, pcaErrorf(opInverse, err)
	}
	n, k := Y.Dims()
	if k < 1 || k > b.Dim() {
		return nil, pcaErrorf(opInverse, fmt.Errorf("k=%d, d=%d: %w", k, b.Dim(), ErrRankOutOfRange))
	}

	d := b.Dim()
	out := mat.NewDense(n, d, nil)
	out.Mul(Y, b.leading(k).T())
	for i := 0; i < n; i++ {
		row := out.RawRowView(i)
		for j := 0; j < d; j++ {
			row[j] += b.means[j]
		}
	}

	return out, nil
}

// Reconstruct returns the rank-k reconstruction of X through the basis b.
// With k == b.Dim() the result equals X up to floating-point round-off.
//
// Errors:
//   - as Project; ErrShapeInvariant if the result shape differs from X.
func Reconstruct(X mat.Matrix, b *Basis, k int) (*mat.Dense, error) {
	if err := b.checkInput(X, k); err != nil {
		return nil, pcaErrorf(opReconstruct, err)
	}

	Xhat := b.reconstruct(b.subtractMeans(X), k)
	if err := checkShape(X, Xhat); err != nil {
		return nil, pcaErrorf(opReconstruct, err)
	}

	return Xhat, nil
}

// ReconstructSeries returns [X̂_1, …, X̂_d] for every truncation rank,
// all derived from the single cached basis b.
// Implementation:
//   - Stage 1: validate once; center X once.
//   - Stage 2: for k = 1..d, multiply through the leading-k view.
//
// Complexity: O(d * n*d*d) time; O(d * n*d) space for the result.
func ReconstructSeries(X mat.Matrix, b *Basis) ([]*mat.Dense, error) {
	if b == nil {
		return nil, pcaErrorf(opSeries, ErrNilBasis)
	}
	d := b.Dim()
	if err := b.checkInput(X, d); err != nil {
		return nil, pcaErrorf(opSeries, err)
	}

	Xc := b.subtractMeans(X)
	series := make([]*mat.Dense, d)
	for k := 1; k <= d; k++ {
		Xhat := b.reconstruct(Xc, k)
		if err := checkShape(X, Xhat); err != nil {
			return nil, pcaErrorf(opSeries, fmt.Errorf("k=%d: %w", k, err))
		}
		series[k-1] = Xhat
	}

	return series, nil
}

// reconstruct computes Xc·V_k·V_kᵀ + μ for an already centered Xc.
func (b *Basis) reconstruct(Xc *mat.Dense, k int) *mat.Dense {
	n, d := Xc.Dims()
	Vk := b.leading(k)

	var Y mat.Dense
	Y.Mul(Xc, Vk)

	out := mat.NewDense(n, d, nil)
	out.Mul(&Y, Vk.T())
	for i := 0; i < n; i++ {
		row := out.RawRowView(i)
		for j := 0; j < d; j++ {
			row[j] += b.means[j]
		}
	}

	return out
}

// subtractMeans returns X - μ without touching X.
func (b *Basis) subtractMeans(X mat.Matrix) *mat.Dense {
	n, d := X.Dims()
	Xc := mat.NewDense(n, d, nil)
	for i := 0; i < n; i++ {
		row := Xc.RawRowView(i)
		for j := 0; j < d; j++ {
			row[j] = X.At(i, j) - b.means[j]
		}
	}

	return Xc
}

// checkInput validates the receiver, X and the truncation rank k.
// Order: basis → nil → finite → columns → rank.
func (b *Basis) checkInput(X mat.Matrix, k int) error {
	if b == nil {
		return ErrNilBasis
	}
	if err := matrix.ValidateNotNil(X); err != nil {
		return err
	}
	if err := matrix.ValidateFinite(X); err != nil {
		return err
	}
	d := b.Dim()
	if _, c := X.Dims(); c != d {
		return fmt.Errorf("X has %d columns, basis has %d: %w", c, d, matrix.ErrDimensionMismatch)
	}
	if k < 1 || k > d {
		return fmt.Errorf("k=%d, d=%d: %w", k, d, ErrRankOutOfRange)
	}

	return nil
}

// checkShape enforces that a reconstruction keeps its input's shape.
func checkShape(X, Xhat mat.Matrix) error {
	xr, xc := X.Dims()
	hr, hc := Xhat.Dims()
	if xr != hr || xc != hc {
		return fmt.Errorf("input %dx%d, reconstruction %dx%d: %w", xr, xc, hr, hc, ErrShapeInvariant)
	}

	return nil
}
