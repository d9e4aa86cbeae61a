// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/reconpca/matrix"
)

const epsTight = 1e-12

// ------------------------------
// ColumnMoments
// ------------------------------

func TestColumnMoments_Known(t *testing.T) {
	t.Parallel()

	X := mustRows(t, [][]float64{
		{1, 2},
		{3, 6},
	})
	means, stds, err := matrix.ColumnMoments(X)
	require.NoError(t, err)

	// Population moments: means [2,4], stds [1,2].
	sliceClose(t, means, []float64{2, 4}, epsTight)
	sliceClose(t, stds, []float64{1, 2}, epsTight)
}

func TestColumnMoments_Nil(t *testing.T) {
	t.Parallel()

	_, _, err := matrix.ColumnMoments(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// ------------------------------
// Standardize
// ------------------------------

func TestStandardize_ZeroMeanUnitVariance(t *testing.T) {
	t.Parallel()

	X := mustRows(t, [][]float64{
		{1, 100, -3},
		{2, 250, 7},
		{4, 90, 0.5},
		{8, 300, 2},
		{5, 120, -1},
	})
	Z, means, stds, err := matrix.Standardize(X)
	require.NoError(t, err)
	require.Len(t, means, 3)
	require.Len(t, stds, 3)

	r, c := Z.Dims()
	require.Equal(t, 5, r)
	require.Equal(t, 3, c)

	col := make([]float64, r)
	for j := 0; j < c; j++ {
		mat.Col(col, j, Z)
		mean, variance := stat.PopMeanVariance(col, nil)
		assert.InDelta(t, 0.0, mean, 1e-12, "column %d mean", j)
		assert.InDelta(t, 1.0, variance, 1e-12, "column %d variance", j)
	}
}

func TestStandardize_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	X := mustRows(t, [][]float64{
		{1, 2},
		{3, 5},
		{4, 11},
	})
	before := mat.DenseCopyOf(X)

	_, _, _, err := matrix.Standardize(X)
	require.NoError(t, err)
	require.True(t, mat.Equal(before, X), "input must stay untouched")
}

func TestStandardize_ConstantColumn(t *testing.T) {
	t.Parallel()

	// Column 1 is constant; 0.1 is not exactly representable, so the
	// computed std may come out as a tiny positive number instead of zero.
	X := mustRows(t, [][]float64{
		{1, 0.1},
		{2, 0.1},
		{3, 0.1},
		{4, 0.1},
		{5, 0.1},
		{6, 0.1},
		{7, 0.1},
	})
	Z, _, _, err := matrix.Standardize(X)
	require.ErrorIs(t, err, matrix.ErrZeroVariance)
	assert.Contains(t, err.Error(), "column 1")
	assert.Nil(t, Z)
}

func TestStandardize_SmallScaleColumn(t *testing.T) {
	t.Parallel()

	// A column with real spread at a tiny scale is not constant.
	X := mustRows(t, [][]float64{
		{1, 5},
		{2, 3},
		{6, 8},
		{3, 1},
	})
	Y := mat.DenseCopyOf(X)
	for i := 0; i < 4; i++ {
		Y.Set(i, 0, X.At(i, 0)*1e-13)
	}

	Zx, _, _, err := matrix.Standardize(X)
	require.NoError(t, err)
	Zy, _, stds, err := matrix.Standardize(Y)
	require.NoError(t, err)
	assert.Greater(t, stds[0], 0.0)

	ok, err := matrix.AllClose(Zx, Zy, 0, 1e-12)
	require.NoError(t, err)
	assert.True(t, ok)

	// Identical tiny values are still constant.
	C := mustRows(t, [][]float64{
		{1, 3e-20},
		{2, 3e-20},
		{4, 3e-20},
	})
	_, _, _, err = matrix.Standardize(C)
	require.ErrorIs(t, err, matrix.ErrZeroVariance)
	assert.Contains(t, err.Error(), "column 1")
}

func TestStandardize_NonFinite(t *testing.T) {
	t.Parallel()

	X := mustRows(t, [][]float64{
		{1, 2},
		{math.NaN(), 3},
	})
	_, _, _, err := matrix.Standardize(X)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestStandardize_NilTypedPointer(t *testing.T) {
	t.Parallel()

	var X *mat.Dense
	_, _, _, err := matrix.Standardize(X)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestStandardize_AffineInvariant(t *testing.T) {
	t.Parallel()

	// z-scores must not change under x → a*x + b with a > 0.
	X := mustRows(t, [][]float64{
		{1, 5},
		{2, 3},
		{6, 8},
		{3, 1},
	})
	Y := mat.NewDense(4, 2, nil)
	Y.Apply(func(_, _ int, v float64) float64 { return 7.5*v - 40 }, X)

	Zx, _, _, err := matrix.Standardize(X)
	require.NoError(t, err)
	Zy, _, _, err := matrix.Standardize(Y)
	require.NoError(t, err)

	ok, err := matrix.AllClose(Zx, Zy, 0, 1e-12)
	require.NoError(t, err)
	require.True(t, ok)
}
