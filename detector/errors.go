// SPDX-License-Identifier: MIT
// Package detector: error taxonomy.
//
// Every error returned by this package carries exactly one CATEGORY sentinel
// (ErrData, ErrConfig, ErrInvariant) and the underlying CAUSE, so both match
// with errors.Is:
//
//	errors.Is(err, detector.ErrData)         // category
//	errors.Is(err, matrix.ErrZeroVariance)   // cause
//
// Messages read "<op>: <category>: <cause>". No operation retries or
// returns partial results.

package detector

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/reconpca/pca"
)

// Categories.
var (
	// ErrData marks input the pipeline cannot analyze: too few rows or
	// columns, fewer samples than features, NaN/Inf values, a constant column.
	ErrData = errors.New("detector: data error")

	// ErrConfig marks an invalid hyperparameter. Config is validated before
	// any computation starts.
	ErrConfig = errors.New("detector: config error")

	// ErrInvariant marks an internal consistency failure (shape mismatch,
	// degenerate reconstruction series). It aborts the analysis.
	ErrInvariant = errors.New("detector: invariant violation")
)

// Causes owned by this package.
var (
	// ErrInvalidContamination indicates a contamination outside (0, 1] or non-finite.
	ErrInvalidContamination = errors.New("detector: contamination must be in (0, 1]")

	// ErrDegenerateSeries indicates two reconstructions of different rank
	// that are bit-identical.
	ErrDegenerateSeries = errors.New("detector: reconstruction series is degenerate")

	// ErrIndexOutOfRange indicates an anomaly index outside [0, n) or repeated.
	ErrIndexOutOfRange = errors.New("detector: anomaly index out of range")
)

// Operation name constants for unified error wrapping.
const (
	opConstruct       = "Construct"
	opReconstructions = "ComputeReconstructions"
	opScores          = "ComputeScores"
	opIndices         = "ComputeAnomalyIndices"
	opPredict         = "Predict"
	opDetect          = "Detect"
	opAggregate       = "AggregateScores"
	opRankScores      = "RankScores"
	opCount           = "AnomalyCount"
	opThreshold       = "Threshold"
	opLabels          = "Labels"
	opValidate        = "Config.Validate"
	opDistinct        = "checkDistinctSeries"
)

// detectorErrorf tags err with op and its category. An err that already
// carries a category only gets the op tag.
func detectorErrorf(op string, err error) error {
	if hasCategory(err) {
		return fmt.Errorf("%s: %w", op, err)
	}

	return fmt.Errorf("%s: %w: %w", op, categoryOf(err), err)
}

// hasCategory reports whether err already matches one of the categories.
func hasCategory(err error) bool {
	return errors.Is(err, ErrData) || errors.Is(err, ErrConfig) || errors.Is(err, ErrInvariant)
}

// categoryOf maps a cause onto its category; anything unknown is a data error.
func categoryOf(err error) error {
	switch {
	case errors.Is(err, ErrInvalidContamination):
		return ErrConfig
	case errors.Is(err, pca.ErrShapeInvariant),
		errors.Is(err, pca.ErrNilBasis),
		errors.Is(err, ErrDegenerateSeries),
		errors.Is(err, ErrIndexOutOfRange):
		return ErrInvariant
	default:
		return ErrData
	}
}
