// Package synth generates reproducible numeric samples for tests, examples
// and the command-line demo.
//
// ✨ Key features:
//   - Gaussian: i.i.d. N(mean, sigma²) matrices by inverse-CDF sampling
//     (gonum distuv) over any math/rand/v2 Source
//   - NewScenario: a Gaussian sample with point outliers, each displaced on
//     its own feature, plus the ground-truth labels
//   - SplitMix64: a portable, seed-only Source used by default
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/reconpca/synth"
//
//	sc, err := synth.NewScenario(100, 5, 5, synth.WithSeed(2018), synth.WithShift(10))
//	// sc.X is 100×5, sc.Outliers lists the displaced rows
//
// Determinism: identical options yield bit-identical output. A Source passed
// with WithSource is consumed, so reusing it continues the same stream.
package synth
