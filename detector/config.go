// SPDX-License-Identifier: MIT

// Package detector: immutable analysis configuration.
// This file defines:
//   - documented defaults (constants),
//   - Config, a value object read through getters,
//   - WithX setters; panics are reserved for programmer errors (an unknown
//     solver), while an out-of-range contamination is reported as ErrConfig
//     by Validate so that it can come from user input.
package detector

import (
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/reconpca/pca"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultContamination is the expected fraction of anomalies.
	DefaultContamination = 0.01

	// DefaultSeed drives the strict-mode pair sampling.
	DefaultSeed uint64 = 2018

	// DefaultSolver backs the single decomposition of every analysis.
	DefaultSolver = pca.DefaultSolver
)

const panicSolverInvalid = "detector: WithSolver: unknown solver"

// Config holds the hyperparameters of one analysis. It is a value: copies
// are independent, and nothing in this package mutates a Config after
// NewConfig returns. The zero value is NOT valid; build one with NewConfig.
type Config struct {
	contamination float64
	seed          uint64
	solver        pca.Solver
	strict        bool
	logger        zerolog.Logger
}

// Option mutates a Config under construction.
type Option func(*Config)

// WithContamination sets the fraction of samples labeled anomalous.
// Range checking is deferred to Validate.
func WithContamination(c float64) Option {
	return func(cfg *Config) {
		cfg.contamination = c
	}
}

// WithSeed sets the seed of the strict-mode pair sampling.
func WithSeed(seed uint64) Option {
	return func(cfg *Config) {
		cfg.seed = seed
	}
}

// WithSolver selects the decomposition backend.
// Panics on a value outside the pca.Solver constants.
func WithSolver(s pca.Solver) Option {
	if s < pca.SolverSVD || s > pca.SolverJacobi {
		panic(panicSolverInvalid)
	}
	return func(cfg *Config) {
		cfg.solver = s
	}
}

// WithStrictInvariants enables the seeded distinctness check on the
// reconstruction series. The shape invariant is always enforced.
func WithStrictInvariants() Option {
	return func(cfg *Config) {
		cfg.strict = true
	}
}

// WithLogger routes stage events to l at Debug level.
func WithLogger(l zerolog.Logger) Option {
	return func(cfg *Config) {
		cfg.logger = l
	}
}

// NewConfig resolves opts on top of the documented defaults (last-writer-wins).
func NewConfig(opts ...Option) Config {
	cfg := Config{
		contamination: DefaultContamination,
		seed:          DefaultSeed,
		solver:        DefaultSolver,
		logger:        zerolog.Nop(),
	}
	for _, set := range opts {
		set(&cfg)
	}

	return cfg
}

// Contamination returns the configured anomaly fraction.
func (c Config) Contamination() float64 { return c.contamination }

// Seed returns the configured seed.
func (c Config) Seed() uint64 { return c.seed }

// Solver returns the configured decomposition backend.
func (c Config) Solver() pca.Solver { return c.solver }

// Strict reports whether the seeded distinctness check is enabled.
func (c Config) Strict() bool { return c.strict }

// Validate checks every hyperparameter; it returns an ErrConfig error.
func (c Config) Validate() error {
	if err := validateContamination(c.contamination); err != nil {
		return detectorErrorf(opValidate, err)
	}

	return nil
}

// validateContamination rejects c ∉ (0, 1] and non-finite values.
func validateContamination(c float64) error {
	if math.IsNaN(c) || math.IsInf(c, 0) || c <= 0 || c > 1 {
		return fmt.Errorf("contamination=%g: %w", c, ErrInvalidContamination)
	}

	return nil
}
