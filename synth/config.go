// SPDX-License-Identifier: MIT
// Package: synth
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults (no surprises):
//   • seed    = 2018
//   • source  = SplitMix64(seed)   (unless WithSource)
//   • mean    = 0.0
//   • sigma   = 1.0
//   • shift   = 10.0               (in units of sigma)
//   • rows    = nil                (outlier rows drawn from the source)

package synth

import "math/rand/v2"

// config aggregates all generator knobs. Passed by value.
type config struct {
	seed   uint64
	source rand.Source
	mean   float64
	sigma  float64
	shift  float64
	rows   []int
}

// Deterministic defaults (named, no magic numbers).
const (
	DefaultSeed  uint64 = 2018
	DefaultMean         = 0.0
	DefaultSigma        = 1.0
	DefaultShift        = 10.0
)

// newConfig applies opts in order (last wins) on top of the defaults and
// resolves the source from the seed when none was given.
func newConfig(opts ...Option) config {
	cfg := config{
		seed:  DefaultSeed,
		mean:  DefaultMean,
		sigma: DefaultSigma,
		shift: DefaultShift,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.source == nil {
		cfg.source = NewSplitMix64(cfg.seed)
	}

	return cfg
}
