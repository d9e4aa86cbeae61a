// SPDX-License-Identifier: MIT

package pca_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/reconpca/matrix"
	"github.com/katalvlaran/reconpca/pca"
)

const (
	epsTight = 1e-12
	epsLoose = 1e-8
)

var allSolvers = []pca.Solver{pca.SolverSVD, pca.SolverEigenSym, pca.SolverJacobi}

func TestDecompose_SpectrumShape(t *testing.T) {
	t.Parallel()

	const n, d = 60, 5
	Z := standardized(t, n, d, 7)

	for _, s := range allSolvers {
		s := s
		t.Run(s.String(), func(t *testing.T) {
			t.Parallel()
			b := mustDecompose(t, Z, pca.WithSolver(s))

			assert.Equal(t, d, b.Dim())
			assert.Equal(t, n, b.Samples())
			assert.Equal(t, s, b.Solver())

			eigs := b.Eigenvalues()
			for k := 1; k < d; k++ {
				assert.GreaterOrEqual(t, eigs[k-1], eigs[k], "eigenvalues must descend")
			}
			assert.GreaterOrEqual(t, eigs[d-1], 0.0)

			// z-scored columns have sample variance n/(n-1), so the trace is d*n/(n-1).
			var total float64
			for _, v := range eigs {
				total += v
			}
			assert.InDelta(t, float64(d*n)/float64(n-1), total, 1e-9)

			ratios := b.Ratios()
			require.Len(t, ratios, d)
			for k := 1; k < d; k++ {
				assert.GreaterOrEqual(t, ratios[k], ratios[k-1], "ratios must be non-decreasing")
			}
			assert.Equal(t, 1.0, ratios[d-1])
		})
	}
}

func TestDecompose_ComponentsOrthonormal(t *testing.T) {
	t.Parallel()

	Z := standardized(t, 40, 4, 11)
	for _, s := range allSolvers {
		b := mustDecompose(t, Z, pca.WithSolver(s))
		V := b.Components()

		var VtV mat.Dense
		VtV.Mul(V.T(), V)
		ok, err := matrix.AllClose(&VtV, eye(4), 0, epsLoose)
		require.NoError(t, err)
		assert.True(t, ok, "%v: VᵀV must be the identity", s)
	}
}

func TestDecompose_SolversAgree(t *testing.T) {
	t.Parallel()

	Z := standardized(t, 80, 6, 2018)
	ref := mustDecompose(t, Z)
	refSeries, err := pca.ReconstructSeries(Z, ref)
	require.NoError(t, err)

	for _, s := range []pca.Solver{pca.SolverEigenSym, pca.SolverJacobi} {
		b := mustDecompose(t, Z, pca.WithSolver(s))
		assert.InDeltaSlice(t, ref.Ratios(), b.Ratios(), epsLoose, "%v ratios", s)
		assert.InDeltaSlice(t, ref.Eigenvalues(), b.Eigenvalues(), epsLoose, "%v eigenvalues", s)

		series, err := pca.ReconstructSeries(Z, b)
		require.NoError(t, err)
		for k := range series {
			ok, err := matrix.AllClose(series[k], refSeries[k], 0, 1e-7)
			require.NoError(t, err)
			assert.True(t, ok, "%v: reconstruction k=%d differs from svd", s, k+1)
		}
	}
}

func TestDecompose_SignsPinned(t *testing.T) {
	t.Parallel()

	b := mustDecompose(t, standardized(t, 30, 3, 5))
	V := b.Components()
	col := make([]float64, 3)
	for j := 0; j < 3; j++ {
		mat.Col(col, j, V)
		pivot := 0
		for i := range col {
			if math.Abs(col[i]) > math.Abs(col[pivot]) {
				pivot = i
			}
		}
		assert.Greater(t, col[pivot], 0.0, "column %d", j)
	}
}

func TestDecompose_SquareSample(t *testing.T) {
	t.Parallel()

	// n == d: centering leaves rank d-1, so the trailing eigenvalue is ~0.
	Z := standardized(t, 3, 3, 99)
	b := mustDecompose(t, Z)

	eigs := b.Eigenvalues()
	assert.InDelta(t, 0, eigs[2], 1e-10)
	assert.GreaterOrEqual(t, eigs[2], 0.0)
	ratios := b.Ratios()
	assert.InDelta(t, 1, ratios[1], 1e-10)
	assert.Equal(t, 1.0, ratios[2])
}

func TestDecompose_Errors(t *testing.T) {
	t.Parallel()

	tall := mat.NewDense(3, 5, nil)
	fillDeterministic(tall, 3)

	withNaN := mat.NewDense(4, 2, []float64{1, 2, 3, 4, math.NaN(), 6, 7, 8})

	cases := []struct {
		name string
		in   mat.Matrix
		want error
	}{
		{"nil", nil, matrix.ErrNilMatrix},
		{"typed nil", (*mat.Dense)(nil), matrix.ErrNilMatrix},
		{"single row", mat.NewDense(1, 3, []float64{1, 2, 3}), matrix.ErrBadShape},
		{"single column", mat.NewDense(3, 1, []float64{1, 2, 3}), matrix.ErrBadShape},
		{"fewer samples than features", tall, pca.ErrRankDeficient},
		{"nan", withNaN, matrix.ErrNaNInf},
		{"constant", mat.NewDense(4, 2, nil), pca.ErrDegenerateSpectrum},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			b, err := pca.Decompose(tc.in)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
			assert.Nil(t, b)
		})
	}
}

func TestDecompose_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	Z := standardized(t, 20, 3, 17)
	before := mat.DenseCopyOf(Z)
	_ = mustDecompose(t, Z, pca.WithSolver(pca.SolverJacobi))
	assert.True(t, mat.Equal(before, Z))
}

func TestBasis_AccessorsReturnCopies(t *testing.T) {
	t.Parallel()

	b := mustDecompose(t, standardized(t, 20, 3, 23))

	r := b.Ratios()
	r[0] = -1
	assert.NotEqual(t, -1.0, b.Ratios()[0])

	e := b.Eigenvalues()
	e[0] = -1
	assert.NotEqual(t, -1.0, b.Eigenvalues()[0])

	m := b.Means()
	m[0] = 42
	assert.NotEqual(t, 42.0, b.Means()[0])

	V := b.Components()
	V.Set(0, 0, 42)
	assert.NotEqual(t, 42.0, b.Components().At(0, 0))
}

// eye returns the n×n identity.
func eye(n int) *mat.Dense {
	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}

	return m
}
