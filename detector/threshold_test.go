// SPDX-License-Identifier: MIT

package detector_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/reconpca/detector"
	"github.com/katalvlaran/reconpca/matrix"
)

func TestAnomalyCount(t *testing.T) {
	t.Parallel()

	cases := []struct {
		n    int
		c    float64
		want int
	}{
		{100, 0.01, 1},
		{100, 0.05, 5},
		{100, 0.051, 6},
		{100, 0.07, 7},
		{10, 0.1, 1},
		{10, 0.15, 2},
		{3, 0.5, 2},
		{7, 1.0 / 7, 1},
		{49, 1.0 / 49, 1},
		{100, 1, 100},
		{0, 0.5, 0},
		{1, 1e-6, 1},
	}
	for _, tc := range cases {
		got, err := detector.AnomalyCount(tc.n, tc.c)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "n=%d c=%v", tc.n, tc.c)
	}
}

func TestAnomalyCount_Errors(t *testing.T) {
	t.Parallel()

	_, err := detector.AnomalyCount(10, 0)
	assert.ErrorIs(t, err, detector.ErrConfig)
	_, err = detector.AnomalyCount(10, 1.5)
	assert.ErrorIs(t, err, detector.ErrInvalidContamination)
	_, err = detector.AnomalyCount(-1, 0.5)
	assert.ErrorIs(t, err, detector.ErrData)
}

func TestThreshold_OrderAndTies(t *testing.T) {
	t.Parallel()

	scores := []float64{1, 3, 3, 2, 0.5}

	got, err := detector.Threshold(scores, 0.4)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, got)

	got, err = detector.Threshold(scores, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 0, 4}, got)

	got, err = detector.Threshold(scores, 0.2)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, got, "ties go to the lower index")
}

func TestThreshold_AllEqual(t *testing.T) {
	t.Parallel()

	got, err := detector.Threshold([]float64{2, 2, 2, 2}, 0.5)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, got)
}

func TestThreshold_Errors(t *testing.T) {
	t.Parallel()

	_, err := detector.Threshold([]float64{1, math.NaN()}, 0.5)
	assert.ErrorIs(t, err, detector.ErrData)
	assert.ErrorIs(t, err, matrix.ErrNaNInf)

	// Config is checked before the scores.
	_, err = detector.Threshold([]float64{1, math.NaN()}, -1)
	assert.ErrorIs(t, err, detector.ErrConfig)
	assert.NotErrorIs(t, err, detector.ErrData)
}

func TestLabels(t *testing.T) {
	t.Parallel()

	got, err := detector.Labels(5, []int{3, 0})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0, 0, 1, 0}, got)

	got, err = detector.Labels(3, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0}, got)

	for _, bad := range [][]int{{5}, {-1}, {1, 1}} {
		_, err = detector.Labels(5, bad)
		assert.ErrorIs(t, err, detector.ErrInvariant, "%v", bad)
		assert.ErrorIs(t, err, detector.ErrIndexOutOfRange, "%v", bad)
	}
}
