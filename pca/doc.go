// Package pca decomposes a standardized sample into its principal directions
// and rebuilds it from any number of them.
//
// 🚀 What does it provide?
//
//	A single full-rank decomposition (Decompose) cached as a Basis, from which
//	every truncated reconstruction X̂_k, k = 1..d, is derived without
//	re-factorizing. The explained-variance spectrum is exposed both raw
//	(Eigenvalues) and as cumulative ratios (Ratios).
//
// ✨ Key features:
//   - three interchangeable solvers: thin SVD (default), LAPACK EigenSym,
//     pure-Go Jacobi rotations (WithSolver)
//   - deterministic output: descending eigenvalues, sign-pinned directions
//   - Project / InverseProject for explicit subspace scores
//   - ReconstructSeries for the whole rank ladder in one call
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/reconpca/pca"
//
//	basis, err := pca.Decompose(Z, pca.WithSolver(pca.SolverSVD))
//	if err != nil {
//	  return err
//	}
//	ratios := basis.Ratios()                  // non-decreasing, last == 1
//	series, err := pca.ReconstructSeries(Z, basis) // [X̂_1 … X̂_d]
//
// Performance:
//
//   - Decompose:         O(n·d²)
//   - ReconstructSeries: O(n·d³) time, O(n·d²) memory
//
// Errors are sentinels (ErrRankDeficient, ErrDegenerateSpectrum, ...); input
// validation failures surface the matrix package sentinels unchanged.
package pca
