// SPDX-License-Identifier: MIT
// Package: detector
//
// Purpose:
//   - Turn a reconstruction series into one anomaly score per sample.
//
// Definition:
//   - sub[k][i] = ‖X[i] - X̂_k[i]‖₂ · ratios[k]
//   - score[i]  = Σ_k sub[k][i]  (summed in ascending k)
//
// The weight ratios[k] grows with k, so the near-exact high-rank
// reconstructions carry the largest weights.

package detector

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/reconpca/matrix"
	"github.com/katalvlaran/reconpca/pca"
)

// RankScores returns the d×n matrix of weighted residual norms: row k holds
// the per-sample sub-scores of the rank-(k+1) reconstruction.
//
// Errors:
//   - ErrInvariant wrapping matrix.ErrDimensionMismatch when len(series) or
//     len(ratios) differs from d, or pca.ErrShapeInvariant when a
//     reconstruction's shape differs from X.
//   - ErrData wrapping matrix.ErrNilMatrix / ErrNaNInf.
//
// Complexity: O(d*n*d).
func RankScores(X mat.Matrix, series []*mat.Dense, ratios []float64) (*mat.Dense, error) {
	if err := matrix.ValidateNotNil(X); err != nil {
		return nil, detectorErrorf(opRankScores, err)
	}
	n, d := X.Dims()
	if len(series) != d || len(ratios) != d {
		err := fmt.Errorf("series=%d ratios=%d d=%d: %w", len(series), len(ratios), d, matrix.ErrDimensionMismatch)
		return nil, fmt.Errorf("%s: %w: %w", opRankScores, ErrInvariant, err)
	}

	sub := mat.NewDense(d, n, nil)
	for k, Xhat := range series {
		if err := matrix.ValidateNotNil(Xhat); err != nil {
			return nil, detectorErrorf(opRankScores, fmt.Errorf("k=%d: %w", k+1, err))
		}
		if err := matrix.ValidateSameShape(X, Xhat); err != nil {
			return nil, detectorErrorf(opRankScores, fmt.Errorf("k=%d: %w: %w", k+1, pca.ErrShapeInvariant, err))
		}
		R, err := matrix.Residual(X, Xhat)
		if err != nil {
			return nil, detectorErrorf(opRankScores, err)
		}
		norms, err := matrix.RowNorms(R)
		if err != nil {
			return nil, detectorErrorf(opRankScores, err)
		}
		floats.Scale(ratios[k], norms)
		sub.SetRow(k, norms)
	}
	if err := matrix.ValidateFinite(sub); err != nil {
		return nil, detectorErrorf(opRankScores, err)
	}

	return sub, nil
}

// AggregateScores sums RankScores over all ranks, yielding n non-negative scores.
func AggregateScores(X mat.Matrix, series []*mat.Dense, ratios []float64) ([]float64, error) {
	sub, err := RankScores(X, series, ratios)
	if err != nil {
		return nil, detectorErrorf(opAggregate, err)
	}

	d, n := sub.Dims()
	scores := make([]float64, n)
	for k := 0; k < d; k++ {
		floats.Add(scores, sub.RawRowView(k))
	}

	return scores, nil
}
