// SPDX-License-Identifier: MIT
// Package: pca
//
// Purpose:
//   - Perform ONE full-rank decomposition of a sample and cache it as a Basis.
//   - Normalize solver output: descending eigenvalues, deterministic signs,
//     round-off negatives clamped to zero.
//
// Determinism:
//   - All solvers are deterministic for a fixed input; ties in eigenvalues
//     keep the solver's original column order (stable sort).

package pca

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/reconpca/matrix"
)

// Decompose factorizes X (n×d, n ≥ d ≥ 2) into a descending-variance Basis.
// Implementation:
//   - Stage 1 (Validate): matrix.ValidateSample(X, 2, 2); n ≥ d.
//   - Stage 2 (Center): subtract column means (kept in the Basis).
//   - Stage 3 (Factorize): dispatch to the configured Solver.
//   - Stage 4 (Normalize): sort descending, clamp round-off negatives, orient signs.
//   - Stage 5 (Ratios): CumulativeRatios over the sorted eigenvalues.
//
// Errors:
//   - matrix.ErrNilMatrix / ErrBadShape / ErrNaNInf from validation.
//   - ErrRankDeficient when n < d.
//   - ErrDecompositionFailed when the solver fails.
//   - ErrDegenerateSpectrum when the total variance is zero.
//
// Complexity:
//   - SVD: O(n*d^2); EigenSym/Jacobi: O(n*d^2) covariance + O(d^3) solve.
func Decompose(X mat.Matrix, opts ...Option) (*Basis, error) {
	o := gatherOptions(opts...)

	if err := matrix.ValidateSample(X, 2, 2); err != nil {
		return nil, pcaErrorf(opDecompose, err)
	}
	n, d := X.Dims()
	if n < d {
		return nil, pcaErrorf(opDecompose, fmt.Errorf("n=%d < d=%d: %w", n, d, ErrRankDeficient))
	}

	Xc, means := center(X)

	var (
		eigs []float64
		vecs *mat.Dense
		err  error
	)
	switch o.solver {
	case SolverSVD:
		eigs, vecs, err = solveSVD(Xc)
	case SolverEigenSym:
		eigs, vecs, err = solveEigenSym(Xc)
	case SolverJacobi:
		eigs, vecs, err = solveJacobi(Xc, o.jacobiTol, o.maxRotations)
	default:
		err = fmt.Errorf("%v: %w", o.solver, ErrDecompositionFailed)
	}
	if err != nil {
		return nil, pcaErrorf(opDecompose, err)
	}

	eigs, vecs = sortDescending(eigs, vecs)
	for i, v := range eigs {
		if v < 0 {
			eigs[i] = 0 // round-off from a rank-deficient direction
		}
	}
	orientColumns(vecs)

	ratios, err := CumulativeRatios(eigs)
	if err != nil {
		return nil, pcaErrorf(opDecompose, err)
	}

	return &Basis{
		components:  vecs,
		eigenvalues: eigs,
		ratios:      ratios,
		means:       means,
		samples:     n,
		solver:      o.solver,
	}, nil
}

// center returns X - mean(X) (column-wise) and the means.
func center(X mat.Matrix) (*mat.Dense, []float64) {
	n, d := X.Dims()
	means := make([]float64, d)
	col := make([]float64, n)
	for j := 0; j < d; j++ {
		mat.Col(col, j, X)
		means[j] = stat.Mean(col, nil)
	}

	Xc := mat.NewDense(n, d, nil)
	for i := 0; i < n; i++ {
		row := Xc.RawRowView(i)
		for j := 0; j < d; j++ {
			row[j] = X.At(i, j) - means[j]
		}
	}

	return Xc, means
}

// solveSVD factorizes the centered sample; eigenvalue_j = s_j² / (n-1).
func solveSVD(Xc *mat.Dense) ([]float64, *mat.Dense, error) {
	n, _ := Xc.Dims()
	var svd mat.SVD
	if ok := svd.Factorize(Xc, mat.SVDThin); !ok {
		return nil, nil, fmt.Errorf("svd: %w", ErrDecompositionFailed)
	}

	s := svd.Values(nil)
	eigs := make([]float64, len(s))
	for i, v := range s {
		eigs[i] = v * v / float64(n-1)
	}

	var v mat.Dense
	svd.VTo(&v)

	return eigs, &v, nil
}

// covariance returns the d×d sample covariance ((n-1) denominator) of Xc.
func covariance(Xc *mat.Dense) *mat.SymDense {
	_, d := Xc.Dims()
	cov := mat.NewSymDense(d, nil)
	stat.CovarianceMatrix(cov, Xc, nil)

	return cov
}

// solveEigenSym factorizes the covariance with LAPACK's symmetric eigensolver.
func solveEigenSym(Xc *mat.Dense) ([]float64, *mat.Dense, error) {
	var es mat.EigenSym
	if ok := es.Factorize(covariance(Xc), true); !ok {
		return nil, nil, fmt.Errorf("eigensym: %w", ErrDecompositionFailed)
	}

	var v mat.Dense
	es.VectorsTo(&v)

	return es.Values(nil), &v, nil
}

// solveJacobi factorizes the covariance with pure-Go Jacobi rotations.
func solveJacobi(Xc *mat.Dense, tol float64, maxRot int) ([]float64, *mat.Dense, error) {
	return jacobiEigen(covariance(Xc), tol, maxRot)
}

// sortDescending reorders eigenvalues (and matching columns) by descending
// value; equal values keep their solver order.
func sortDescending(eigs []float64, vecs *mat.Dense) ([]float64, *mat.Dense) {
	d := len(eigs)
	idx := make([]int, d)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return eigs[idx[a]] > eigs[idx[b]] })

	r, _ := vecs.Dims()
	sortedEigs := make([]float64, d)
	sortedVecs := mat.NewDense(r, d, nil)
	col := make([]float64, r)
	for k, src := range idx {
		sortedEigs[k] = eigs[src]
		mat.Col(col, src, vecs)
		sortedVecs.SetCol(k, col)
	}

	return sortedEigs, sortedVecs
}

// orientColumns flips each column so its largest-magnitude entry is positive
// (first such entry on ties). Eigenvectors are sign-ambiguous; this pins one.
func orientColumns(vecs *mat.Dense) {
	r, c := vecs.Dims()
	col := make([]float64, r)
	for j := 0; j < c; j++ {
		mat.Col(col, j, vecs)
		pivot := 0
		for i := 1; i < r; i++ {
			if math.Abs(col[i]) > math.Abs(col[pivot]) {
				pivot = i
			}
		}
		if col[pivot] < 0 {
			floats.Scale(-1, col)
			vecs.SetCol(j, col)
		}
	}
}
