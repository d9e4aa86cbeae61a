// Package matrix offers the dense-matrix plumbing shared by the pca and
// detector packages.
//
// The matrix package provides:
//
//   - Central validators (ValidateNotNil, ValidateMinShape, ValidateSameShape,
//     ValidateFinite, ValidateSample) returning package sentinels.
//   - Converters between [][]float64 and gonum *mat.Dense (FromRows, ToRows).
//   - Column statistics: ColumnMoments and Standardize (z-scores with a
//     zero-variance guard).
//   - Element-wise helpers: AllClose, Residual, RowNorms.
//
// Storage and kernels come from gonum.org/v1/gonum/mat; this package only
// adds validation, deterministic loop orders and a uniform error surface.
// Every error matches one of the Err* sentinels through errors.Is.
//
// See example_test.go for usage patterns.
package matrix
