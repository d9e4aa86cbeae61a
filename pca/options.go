// SPDX-License-Identifier: MIT

// Package pca: functional configuration for the decomposition step.
// This file defines:
//   - Solver (which factorization backs the basis),
//   - documented defaults (constants),
//   - WithX constructors with strict validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Every solver yields the same basis up to column signs and round-off.
package pca

import (
	"fmt"
	"math"
)

// Solver selects the factorization used by Decompose.
type Solver int

const (
	// SolverSVD factorizes the centered sample directly (thin SVD);
	// eigenvalues are s²/(n-1). Best conditioned; the default.
	SolverSVD Solver = iota

	// SolverEigenSym factorizes the d×d sample covariance with LAPACK's
	// symmetric eigensolver.
	SolverEigenSym

	// SolverJacobi factorizes the d×d sample covariance with classical
	// Jacobi rotations in pure Go. Suited to small d.
	SolverJacobi
)

// String implements fmt.Stringer.
func (s Solver) String() string {
	switch s {
	case SolverSVD:
		return "svd"
	case SolverEigenSym:
		return "eigensym"
	case SolverJacobi:
		return "jacobi"
	default:
		return fmt.Sprintf("Solver(%d)", int(s))
	}
}

// ParseSolver maps "svd", "eigensym" or "jacobi" to a Solver.
func ParseSolver(name string) (Solver, error) {
	switch name {
	case "svd":
		return SolverSVD, nil
	case "eigensym":
		return SolverEigenSym, nil
	case "jacobi":
		return SolverJacobi, nil
	default:
		return 0, fmt.Errorf("pca: unknown solver %q", name)
	}
}

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultSolver is used when no WithSolver option is given.
	DefaultSolver = SolverSVD

	// DefaultJacobiTolerance is the largest off-diagonal magnitude accepted as converged.
	DefaultJacobiTolerance = 1e-12

	// DefaultJacobiMaxRotations caps the number of Jacobi rotations.
	DefaultJacobiMaxRotations = 10000
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicSolverInvalid    = "pca: WithSolver: unknown solver"
	panicToleranceInvalid = "pca: WithJacobiTolerance: tol must be finite and > 0"
	panicRotationsInvalid = "pca: WithJacobiMaxRotations: n must be > 0"
)

// Option mutates internal options. Safe to apply repeatedly.
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	solver       Solver
	jacobiTol    float64
	maxRotations int
}

// Solver reports the configured solver.
func (o Options) Solver() Solver { return o.solver }

// WithSolver selects the factorization backing Decompose.
// Panics on a value outside the declared Solver constants.
func WithSolver(s Solver) Option {
	if s < SolverSVD || s > SolverJacobi {
		panic(panicSolverInvalid)
	}
	return func(o *Options) {
		o.solver = s
	}
}

// WithJacobiTolerance sets the Jacobi convergence threshold (SolverJacobi only).
func WithJacobiTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic(panicToleranceInvalid)
	}
	return func(o *Options) {
		o.jacobiTol = tol
	}
}

// WithJacobiMaxRotations caps the rotation count (SolverJacobi only).
func WithJacobiMaxRotations(n int) Option {
	if n <= 0 {
		panic(panicRotationsInvalid)
	}
	return func(o *Options) {
		o.maxRotations = n
	}
}

// NewOptions resolves opts on top of the documented defaults.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user setters on top of defaults (last-writer-wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		solver:       DefaultSolver,
		jacobiTol:    DefaultJacobiTolerance,
		maxRotations: DefaultJacobiMaxRotations,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
