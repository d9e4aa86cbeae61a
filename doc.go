// Package reconpca is an unsupervised outlier detector for numeric tables:
// every sample is scored by how poorly low-dimensional linear projections of
// the data reconstruct it, and the worst-reconstructed fraction is labeled
// anomalous.
//
// 🚀 What is reconstruction-error detection?
//
//	Principal directions capture the bulk structure of a sample. Normal rows
//	are rebuilt well from a few of them; outliers leave large residuals.
//	reconpca sums those residuals over every truncation rank k = 1..d,
//	weighting each by the cumulative variance the first k directions explain.
//
// ✨ Why reconpca?
//
//   - One decomposition per analysis; every rank slices the cached basis
//   - Deterministic: bit-identical scores, stable tie-breaking
//   - Three solvers (SVD, LAPACK EigenSym, pure-Go Jacobi) that agree
//   - Errors split into data, config and invariant categories
//
// Under the hood, everything is organized in four packages:
//
//	matrix/   validation, conversion, column statistics, residual helpers
//	pca/      Decompose, CumulativeRatios, Reconstruct, ReconstructSeries
//	detector/ Config, Construct/Analysis, AggregateScores, Threshold, Detect
//	synth/    seeded Gaussian samples with injected outliers
//
// and one command:
//
//	cmd/reconpca  detect and compare on a synthetic scenario, table/json/yaml reports
//
// Quick start:
//
//	sc, _ := synth.NewScenario(100, 5, 5)
//	res, err := detector.Detect(sc.X, detector.NewConfig(detector.WithContamination(0.05)))
//	if err != nil {
//	  log.Fatal(err)
//	}
//	fmt.Println(res.Indices) // most anomalous first
//
// See examples/ for a runnable program and each package's example_test.go.
package reconpca
