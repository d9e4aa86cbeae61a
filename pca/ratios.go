// SPDX-License-Identifier: MIT

package pca

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// CumulativeRatios returns r[k] = (λ_0+…+λ_k) / (λ_0+…+λ_{d-1}) for a
// descending spectrum. The result is non-decreasing and r[d-1] == 1 up to
// round-off; entries are capped at 1 and the last is pinned to exactly 1.
//
// Errors:
//   - ErrDegenerateSpectrum on an empty slice, a negative or non-finite
//     eigenvalue, or a zero total.
func CumulativeRatios(eigenvalues []float64) ([]float64, error) {
	if len(eigenvalues) == 0 {
		return nil, pcaErrorf(opRatios, fmt.Errorf("empty spectrum: %w", ErrDegenerateSpectrum))
	}
	for i, v := range eigenvalues {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return nil, pcaErrorf(opRatios, fmt.Errorf("eigenvalue %d = %g: %w", i, v, ErrDegenerateSpectrum))
		}
	}

	total := floats.Sum(eigenvalues)
	if total <= 0 {
		return nil, pcaErrorf(opRatios, fmt.Errorf("total variance %g: %w", total, ErrDegenerateSpectrum))
	}

	ratios := make([]float64, len(eigenvalues))
	floats.CumSum(ratios, eigenvalues)
	for i := range ratios {
		ratios[i] = math.Min(ratios[i]/total, 1)
	}
	ratios[len(ratios)-1] = 1

	return ratios, nil
}
