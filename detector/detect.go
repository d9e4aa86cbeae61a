// SPDX-License-Identifier: MIT

package detector

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/reconpca/pca"
)

// Result is a snapshot of every stage of one analysis.
type Result struct {
	Standardized    *mat.Dense   // n×d z-scored input
	Basis           *pca.Basis   // the single decomposition
	Ratios          []float64    // cumulative explained-variance ratios, length d
	Reconstructions []*mat.Dense // X̂_1 … X̂_d
	Scores          []float64    // one per sample
	Indices         []int        // anomalies, descending score
	Labels          []int        // 0/1 per sample
}

// Detect runs the whole pipeline once: Construct, reconstruct, score,
// threshold and label, computing every stage a single time.
// Errors follow Construct and the Compute* methods.
func Detect(X mat.Matrix, cfg Config) (*Result, error) {
	a, err := Construct(X, cfg)
	if err != nil {
		return nil, detectorErrorf(opDetect, err)
	}

	series, err := a.ComputeReconstructions()
	if err != nil {
		return nil, detectorErrorf(opDetect, err)
	}
	scores, err := a.scores(series)
	if err != nil {
		return nil, detectorErrorf(opDetect, err)
	}
	indices, err := a.threshold(scores)
	if err != nil {
		return nil, detectorErrorf(opDetect, err)
	}
	n, _ := a.Dims()
	labels, err := Labels(n, indices)
	if err != nil {
		return nil, detectorErrorf(opDetect, err)
	}

	return &Result{
		Standardized:    a.standardized,
		Basis:           a.basis,
		Ratios:          a.basis.Ratios(),
		Reconstructions: series,
		Scores:          scores,
		Indices:         indices,
		Labels:          labels,
	}, nil
}
