// SPDX-License-Identifier: MIT

package detector

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/reconpca/matrix"
)

// countGuard absorbs float artefacts in n·c before the ceiling,
// e.g. 100·0.01 or n·(1/n) evaluating to 1.0000000000000002.
const countGuard = 1e-9

// AnomalyCount returns ceil(n·c) clamped to [0, n].
// Errors: ErrConfig wrapping ErrInvalidContamination; ErrData when n < 0.
func AnomalyCount(n int, c float64) (int, error) {
	if err := validateContamination(c); err != nil {
		return 0, detectorErrorf(opCount, err)
	}
	if n < 0 {
		return 0, detectorErrorf(opCount, fmt.Errorf("n=%d: %w", n, matrix.ErrBadShape))
	}

	k := int(math.Ceil(float64(n)*c - countGuard))
	switch {
	case k < 0:
		return 0, nil
	case k > n:
		return n, nil
	default:
		return k, nil
	}
}

// Threshold returns the indices of the AnomalyCount(len(scores), c) highest
// scores, ordered by descending score; equal scores keep ascending index order.
//
// Errors:
//   - ErrConfig wrapping ErrInvalidContamination (checked first).
//   - ErrData wrapping matrix.ErrNaNInf when a score is not finite.
//
// Complexity: O(n log n).
func Threshold(scores []float64, c float64) ([]int, error) {
	count, err := AnomalyCount(len(scores), c)
	if err != nil {
		return nil, detectorErrorf(opThreshold, err)
	}
	for i, s := range scores {
		if math.IsNaN(s) || math.IsInf(s, 0) {
			return nil, detectorErrorf(opThreshold, fmt.Errorf("score %d: %w", i, matrix.ErrNaNInf))
		}
	}

	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return scores[order[a]] > scores[order[b]] })

	return order[:count:count], nil
}

// Labels returns the n-length prediction vector: 1 at every index in
// indices, 0 elsewhere.
// Errors: ErrInvariant wrapping ErrIndexOutOfRange on an index outside
// [0, n) or a repeated index.
func Labels(n int, indices []int) ([]int, error) {
	if n < 0 {
		return nil, detectorErrorf(opLabels, fmt.Errorf("n=%d: %w", n, matrix.ErrBadShape))
	}
	labels := make([]int, n)
	for _, i := range indices {
		if i < 0 || i >= n || labels[i] == 1 {
			return nil, detectorErrorf(opLabels, fmt.Errorf("index %d, n=%d: %w", i, n, ErrIndexOutOfRange))
		}
		labels[i] = 1
	}

	return labels, nil
}
