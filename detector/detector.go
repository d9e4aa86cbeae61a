// SPDX-License-Identifier: MIT
// Package: detector
//
// Purpose:
//   - Bind one input matrix and one Config into an immutable Analysis.
//   - Standardize and decompose exactly once; every Compute* method derives
//     its result from that cached state.
//
// Concurrency:
//   - An Analysis holds only values that are never mutated after Construct,
//     and accessors return copies, so it is safe for concurrent readers.

package detector

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/reconpca/matrix"
	"github.com/katalvlaran/reconpca/pca"
)

// Analysis is the validated, standardized and decomposed form of one input.
type Analysis struct {
	cfg          Config
	standardized *mat.Dense
	means, stds  []float64
	basis        *pca.Basis
}

// Construct validates cfg and X and performs the single decomposition.
// Implementation:
//   - Stage 1 (Config): cfg.Validate; fails before touching X.
//   - Stage 2 (Shape): n ≥ 2, d ≥ 2, n ≥ d, all values finite; n == d
//     is accepted with a Warn event.
//   - Stage 3 (Standardize): z-score every column; constant columns fail.
//   - Stage 4 (Decompose): one full-rank basis with cfg.Solver().
//
// Errors:
//   - ErrConfig wrapping ErrInvalidContamination.
//   - ErrData wrapping matrix.ErrNilMatrix, ErrBadShape, ErrNaNInf,
//     ErrZeroVariance or pca.ErrRankDeficient.
//
// X is never mutated.
func Construct(X mat.Matrix, cfg Config) (*Analysis, error) {
	if err := cfg.Validate(); err != nil {
		return nil, detectorErrorf(opConstruct, err)
	}
	if err := matrix.ValidateSample(X, 2, 2); err != nil {
		return nil, detectorErrorf(opConstruct, err)
	}
	n, d := X.Dims()
	if n < d {
		return nil, detectorErrorf(opConstruct, fmt.Errorf("n=%d < d=%d: %w", n, d, pca.ErrRankDeficient))
	}
	if n == d {
		// Centering drops one rank: the trailing two ratios are 1 and the
		// last two reconstructions coincide.
		cfg.logger.Warn().
			Int("samples", n).
			Int("features", d).
			Msg("square sample is rank-deficient after centering")
	}

	Z, means, stds, err := matrix.Standardize(X)
	if err != nil {
		return nil, detectorErrorf(opConstruct, err)
	}
	cfg.logger.Debug().
		Int("samples", n).
		Int("features", d).
		Floats64("stds", stds).
		Msg("standardized")

	basis, err := pca.Decompose(Z, pca.WithSolver(cfg.solver))
	if err != nil {
		return nil, detectorErrorf(opConstruct, err)
	}
	cfg.logger.Debug().
		Stringer("solver", basis.Solver()).
		Floats64("ratios", basis.Ratios()).
		Msg("decomposed")

	return &Analysis{
		cfg:          cfg,
		standardized: Z,
		means:        means,
		stds:         stds,
		basis:        basis,
	}, nil
}

// Config returns the configuration the analysis was built with.
func (a *Analysis) Config() Config { return a.cfg }

// Dims returns (n, d) of the analyzed matrix.
func (a *Analysis) Dims() (int, int) { return a.standardized.Dims() }

// Standardized returns a copy of the z-scored input.
func (a *Analysis) Standardized() *mat.Dense { return mat.DenseCopyOf(a.standardized) }

// Means returns a copy of the raw column means.
func (a *Analysis) Means() []float64 { return append([]float64(nil), a.means...) }

// StdDevs returns a copy of the raw column standard deviations (population).
func (a *Analysis) StdDevs() []float64 { return append([]float64(nil), a.stds...) }

// Basis returns the cached decomposition. A Basis is immutable.
func (a *Analysis) Basis() *pca.Basis { return a.basis }

// ComputeRatios returns the cumulative explained-variance ratios (length d,
// non-decreasing, last entry 1).
func (a *Analysis) ComputeRatios() []float64 { return a.basis.Ratios() }

// ComputeReconstructions returns [X̂_1, …, X̂_d] of the standardized matrix.
// The shape invariant is always checked; the seeded distinctness check runs
// only under WithStrictInvariants.
// Errors: ErrInvariant wrapping pca.ErrShapeInvariant or ErrDegenerateSeries.
func (a *Analysis) ComputeReconstructions() ([]*mat.Dense, error) {
	series, err := pca.ReconstructSeries(a.standardized, a.basis)
	if err != nil {
		return nil, detectorErrorf(opReconstructions, err)
	}
	if a.cfg.strict {
		if err = checkDistinctSeries(series, a.cfg.seed); err != nil {
			return nil, detectorErrorf(opReconstructions, err)
		}
	}

	return series, nil
}

// ComputeScores returns one non-negative anomaly score per sample.
func (a *Analysis) ComputeScores() ([]float64, error) {
	series, err := a.ComputeReconstructions()
	if err != nil {
		return nil, detectorErrorf(opScores, err)
	}

	return a.scores(series)
}

// ComputeAnomalyIndices returns the ceil(n·c) highest-scoring sample
// indices in descending-score order.
func (a *Analysis) ComputeAnomalyIndices() ([]int, error) {
	scores, err := a.ComputeScores()
	if err != nil {
		return nil, detectorErrorf(opIndices, err)
	}

	return a.threshold(scores)
}

// Predict returns the n-length 0/1 prediction vector aligned with the input rows.
func (a *Analysis) Predict() ([]int, error) {
	indices, err := a.ComputeAnomalyIndices()
	if err != nil {
		return nil, detectorErrorf(opPredict, err)
	}
	n, _ := a.Dims()
	labels, err := Labels(n, indices)
	if err != nil {
		return nil, detectorErrorf(opPredict, err)
	}

	return labels, nil
}

// scores aggregates series against the standardized matrix and logs the outcome.
func (a *Analysis) scores(series []*mat.Dense) ([]float64, error) {
	scores, err := AggregateScores(a.standardized, series, a.basis.Ratios())
	if err != nil {
		return nil, detectorErrorf(opScores, err)
	}
	a.cfg.logger.Debug().
		Int("ranks", len(series)).
		Int("samples", len(scores)).
		Msg("scored")

	return scores, nil
}

// threshold selects the top-scoring indices and logs the outcome.
func (a *Analysis) threshold(scores []float64) ([]int, error) {
	indices, err := Threshold(scores, a.cfg.contamination)
	if err != nil {
		return nil, detectorErrorf(opIndices, err)
	}
	a.cfg.logger.Debug().
		Float64("contamination", a.cfg.contamination).
		Ints("indices", indices).
		Msg("thresholded")

	return indices, nil
}
