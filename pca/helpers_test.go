// SPDX-License-Identifier: MIT

package pca_test

import (
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/reconpca/matrix"
	"github.com/katalvlaran/reconpca/pca"
)

// fillDeterministic writes a reproducible, non-degenerate pattern into m.
func fillDeterministic(m *mat.Dense, seed uint64) {
	r, c := m.Dims()
	x := seed | 1
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			x ^= x << 13
			x ^= x >> 7
			x ^= x << 17
			m.Set(i, j, float64(x%10007)/1000.0-5.0)
		}
	}
}

// standardized returns an n×d z-scored fixture.
func standardized(tb testing.TB, n, d int, seed uint64) *mat.Dense {
	tb.Helper()
	X := mat.NewDense(n, d, nil)
	fillDeterministic(X, seed)
	Z, _, _, err := matrix.Standardize(X)
	if err != nil {
		tb.Fatalf("Standardize: %v", err)
	}

	return Z
}

// mustDecompose fails the test on any Decompose error.
func mustDecompose(tb testing.TB, Z mat.Matrix, opts ...pca.Option) *pca.Basis {
	tb.Helper()
	b, err := pca.Decompose(Z, opts...)
	if err != nil {
		tb.Fatalf("Decompose: %v", err)
	}

	return b
}
