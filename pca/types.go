// SPDX-License-Identifier: MIT

package pca

import "gonum.org/v1/gonum/mat"

// Basis is the cached result of one full-rank decomposition.
//
// Column j of the component matrix is the j-th leading direction; the
// eigenvalues are sorted in descending order, so slicing the first k
// columns yields the best rank-k subspace. Every truncated reconstruction
// is derived from this one value.
//
// A Basis is immutable after Decompose returns: accessors hand out copies,
// so a single Basis may be shared by concurrent readers without locking.
type Basis struct {
	components  *mat.Dense // d×d, orthonormal columns
	eigenvalues []float64  // length d, descending, ≥ 0
	ratios      []float64  // cumulative explained-variance ratios
	means       []float64  // column means of the decomposed sample
	samples     int        // n used to scale eigenvalues (n-1 denominator)
	solver      Solver
}

// Dim returns the number of features d.
func (b *Basis) Dim() int { return len(b.eigenvalues) }

// Samples returns the number of rows of the decomposed sample.
func (b *Basis) Samples() int { return b.samples }

// Solver reports which factorization produced the basis.
func (b *Basis) Solver() Solver { return b.solver }

// Eigenvalues returns a copy of the descending eigenvalues (explained variances).
func (b *Basis) Eigenvalues() []float64 { return cloneFloats(b.eigenvalues) }

// Ratios returns a copy of the cumulative explained-variance ratios.
func (b *Basis) Ratios() []float64 { return cloneFloats(b.ratios) }

// Means returns a copy of the column means re-added on inverse projection.
func (b *Basis) Means() []float64 { return cloneFloats(b.means) }

// Components returns a copy of the d×d direction matrix (column j = direction j).
func (b *Basis) Components() *mat.Dense { return mat.DenseCopyOf(b.components) }

// leading returns a read-only view of the first k directions (d×k).
// The caller must have validated 1 ≤ k ≤ d.
func (b *Basis) leading(k int) mat.Matrix {
	d := b.Dim()
	return b.components.Slice(0, d, 0, k)
}

// cloneFloats returns an independent copy of s.
func cloneFloats(s []float64) []float64 {
	out := make([]float64, len(s))
	copy(out, s)

	return out
}
