// SPDX-License-Identifier: MIT
// Package: synth
//
// options.go: functional options for the generators.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • Determinism is explicit: WithSeed or WithSource pick the stream.

package synth

import (
	"math"
	"math/rand/v2"
)

// Option customizes a generator by mutating its config before generation.
type Option func(*config)

// WithSeed seeds the default SplitMix64 source.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.seed = seed
	}
}

// WithSource draws from src instead of the seeded SplitMix64.
// The source is stateful: reusing one Option across calls continues its stream.
// Panics on nil.
func WithSource(src rand.Source) Option {
	if src == nil {
		panic("synth: WithSource(nil)")
	}
	return func(c *config) {
		c.source = src
	}
}

// WithMean sets the mean of every generated feature. Panics if not finite.
func WithMean(mu float64) Option {
	if math.IsNaN(mu) || math.IsInf(mu, 0) {
		panic("synth: WithMean(non-finite)")
	}
	return func(c *config) {
		c.mean = mu
	}
}

// WithSigma sets the standard deviation of every feature. Panics if sigma <= 0.
func WithSigma(sigma float64) Option {
	if !(sigma > 0) || math.IsInf(sigma, 0) {
		panic("synth: WithSigma(sigma<=0)")
	}
	return func(c *config) {
		c.sigma = sigma
	}
}

// WithShift sets the outlier displacement in units of sigma.
// Panics on zero or non-finite values.
func WithShift(k float64) Option {
	if k == 0 || math.IsNaN(k) || math.IsInf(k, 0) {
		panic("synth: WithShift(k==0 or non-finite)")
	}
	return func(c *config) {
		c.shift = k
	}
}

// WithOutlierRows fixes the outlier rows instead of drawing them.
// Rows are validated by NewScenario against n.
func WithOutlierRows(rows ...int) Option {
	cp := append([]int(nil), rows...)
	return func(c *config) {
		c.rows = cp
	}
}
