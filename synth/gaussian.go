// SPDX-License-Identifier: MIT
// Package: synth
//
// gaussian.go: i.i.d. normal sample matrices by inverse-CDF sampling.
//
// Contract:
//   • Gaussian(n, d, opts...) → n×d *mat.Dense, filled row-major.
//   • Each entry consumes exactly one Uint64 from the source:
//       u = (⌊x / 2¹¹⌋ + ½) · 2⁻⁵³ ∈ (0, 1),  value = Quantile_N(mean, sigma)(u).
//   • Same options ⇒ bit-identical matrix.

package synth

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// unitScale is 2⁻⁵³, the spacing of the open-interval uniforms.
const unitScale = 1.0 / (1 << 53)

// Gaussian returns an n×d matrix of independent N(mean, sigma²) draws.
// Errors: ErrBadSize when n < 1 or d < 1.
// Complexity: O(n*d).
func Gaussian(n, d int, opts ...Option) (*mat.Dense, error) {
	if n < 1 || d < 1 {
		return nil, synthErrorf(MethodGaussian, "n=%d, d=%d: %w", n, d, ErrBadSize)
	}
	cfg := newConfig(opts...)

	return gaussian(n, d, cfg), nil
}

// gaussian fills the matrix from cfg.source; sizes are pre-validated.
func gaussian(n, d int, cfg config) *mat.Dense {
	dist := distuv.Normal{Mu: cfg.mean, Sigma: cfg.sigma}
	X := mat.NewDense(n, d, nil)
	for i := 0; i < n; i++ {
		row := X.RawRowView(i)
		for j := range row {
			row[j] = dist.Quantile(openUnit(cfg.source))
		}
	}

	return X
}

// openUnit maps the top 53 bits of one draw to the midpoint of its cell in (0, 1).
func openUnit(src rand.Source) float64 {
	return (float64(src.Uint64()>>11) + 0.5) * unitScale
}
