// Package detector scores samples by how badly low-rank linear projections
// reconstruct them, and labels the worst-reconstructed fraction as anomalies.
//
// 🚀 Pipeline:
//
//	raw X ─▶ Standardize ─▶ Decompose (once) ─▶ X̂_1 … X̂_d
//	      ─▶ weighted residual norms ─▶ scores ─▶ top ceil(n·c) ─▶ 0/1 labels
//
// ✨ Key features:
//   - immutable Config built with functional options (contamination, seed,
//     solver, strict invariants, zerolog logger)
//   - Construct validates config first, then data, then caches one basis
//   - Compute* methods expose every intermediate stage; Detect runs them once
//   - three error categories (ErrData, ErrConfig, ErrInvariant), each
//     matching its underlying cause with errors.Is
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/reconpca/detector"
//
//	cfg := detector.NewConfig(detector.WithContamination(0.05))
//	res, err := detector.Detect(X, cfg)
//	if errors.Is(err, detector.ErrData) {
//	  // reject the input
//	}
//	fmt.Println(res.Indices) // most anomalous first
//
// Scoring:
//
//	score[i] = Σ_k ‖X[i] − X̂_k[i]‖₂ · ratios[k]
//
// where ratios[k] is the cumulative explained-variance ratio of the first
// k+1 directions. Ties in score keep ascending sample order.
package detector
