// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/reconpca/matrix"
)

// mustRows builds a *mat.Dense from literal rows or fails the test.
func mustRows(tb testing.TB, rows [][]float64) *mat.Dense {
	tb.Helper()
	m, err := matrix.FromRows(rows)
	if err != nil {
		tb.Fatalf("FromRows: %v", err)
	}

	return m
}

// sliceClose asserts element-wise |got-want| ≤ tol with equal lengths.
func sliceClose(tb testing.TB, got, want []float64, tol float64) {
	tb.Helper()
	if len(got) != len(want) {
		tb.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if math.Abs(got[i]-want[i]) > tol {
			tb.Fatalf("index %d: got %.15g, want %.15g (tol %g)", i, got[i], want[i], tol)
		}
	}
}

// fillDeterministic writes a reproducible, non-degenerate pattern into m.
func fillDeterministic(m *mat.Dense, seed uint64) {
	r, c := m.Dims()
	x := seed | 1
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			// xorshift64: cheap, deterministic, good enough for fixtures.
			x ^= x << 13
			x ^= x >> 7
			x ^= x << 17
			m.Set(i, j, float64(x%10007)/1000.0-5.0)
		}
	}
}
