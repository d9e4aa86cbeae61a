// SPDX-License-Identifier: MIT

package pca_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/reconpca/pca"
)

func TestNewOptions_Defaults(t *testing.T) {
	t.Parallel()

	o := pca.NewOptions()
	assert.Equal(t, pca.DefaultSolver, o.Solver())
	assert.Equal(t, pca.SolverJacobi, pca.NewOptions(pca.WithSolver(pca.SolverEigenSym), pca.WithSolver(pca.SolverJacobi)).Solver())
}

func TestOptions_PanicOnNonsense(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { pca.WithSolver(pca.Solver(42)) })
	assert.Panics(t, func() { pca.WithJacobiTolerance(0) })
	assert.Panics(t, func() { pca.WithJacobiTolerance(-1) })
	assert.Panics(t, func() { pca.WithJacobiMaxRotations(0) })
	assert.NotPanics(t, func() { pca.WithJacobiTolerance(1e-9) })
}

func TestParseSolver(t *testing.T) {
	t.Parallel()

	for _, s := range allSolvers {
		got, err := pca.ParseSolver(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
	_, err := pca.ParseSolver("qr")
	assert.Error(t, err)
	assert.Equal(t, "Solver(7)", pca.Solver(7).String())
}
