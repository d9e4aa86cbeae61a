// SPDX-License-Identifier: MIT
// Package: synth
//
// scenario.go: Gaussian sample with injected point outliers.
//
// Contract:
//   • Base matrix: Gaussian(n, d) from the configured source.
//   • Outlier rows: WithOutlierRows, or `outliers` distinct rows drawn from
//     the same source AFTER the base matrix (so the base is unaffected).
//   • The t-th outlier row (ascending order) is displaced by shift·sigma on
//     feature t mod d, so every outlier leaves the bulk in its own direction.

package synth

import (
	"math/rand/v2"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Scenario is a labeled synthetic sample.
type Scenario struct {
	X        *mat.Dense // n×d sample, outliers already displaced
	Outliers []int      // ascending row indices of the injected outliers
	Shift    float64    // displacement in units of sigma
}

// IsOutlier reports whether row i was displaced.
func (s *Scenario) IsOutlier(i int) bool {
	k := sort.SearchInts(s.Outliers, i)
	return k < len(s.Outliers) && s.Outliers[k] == i
}

// Truth returns the n-length 0/1 ground-truth vector.
func (s *Scenario) Truth() []int {
	n, _ := s.X.Dims()
	truth := make([]int, n)
	for _, i := range s.Outliers {
		truth[i] = 1
	}

	return truth
}

// NewScenario builds an n×d Gaussian sample with `outliers` displaced rows.
// With WithOutlierRows the explicit rows are used and `outliers` must equal
// their count.
//
// Errors:
//   - ErrBadSize when n < 1 or d < 1.
//   - ErrTooManyOutliers when outliers < 0 or outliers > n, or it disagrees
//     with the explicit row count.
//   - ErrBadOutlierRow on an explicit row outside [0, n) or a duplicate.
func NewScenario(n, d, outliers int, opts ...Option) (*Scenario, error) {
	if n < 1 || d < 1 {
		return nil, synthErrorf(MethodScenario, "n=%d, d=%d: %w", n, d, ErrBadSize)
	}
	if outliers < 0 || outliers > n {
		return nil, synthErrorf(MethodScenario, "outliers=%d, n=%d: %w", outliers, n, ErrTooManyOutliers)
	}
	cfg := newConfig(opts...)
	if cfg.rows != nil && len(cfg.rows) != outliers {
		return nil, synthErrorf(MethodScenario, "outliers=%d, explicit rows=%d: %w", outliers, len(cfg.rows), ErrTooManyOutliers)
	}

	X := gaussian(n, d, cfg)

	rows := cfg.rows
	if rows == nil {
		rows = drawRows(cfg.source, n, outliers)
	} else {
		rows = append([]int(nil), rows...)
		sort.Ints(rows)
		for t, i := range rows {
			if i < 0 || i >= n || (t > 0 && rows[t-1] == i) {
				return nil, synthErrorf(MethodScenario, "row %d, n=%d: %w", i, n, ErrBadOutlierRow)
			}
		}
	}

	delta := cfg.shift * cfg.sigma
	for t, i := range rows {
		j := t % d
		X.Set(i, j, X.At(i, j)+delta)
	}

	return &Scenario{X: X, Outliers: rows, Shift: cfg.shift}, nil
}

// drawRows picks k distinct rows of [0, n) by a partial Fisher–Yates shuffle
// and returns them ascending.
func drawRows(src rand.Source, n, k int) []int {
	rng := rand.New(src)
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	for i := 0; i < k; i++ {
		j := i + rng.IntN(n-i)
		perm[i], perm[j] = perm[j], perm[i]
	}
	rows := append([]int(nil), perm[:k]...)
	sort.Ints(rows)

	return rows
}
