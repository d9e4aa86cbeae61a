// SPDX-License-Identifier: MIT

package detector

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/reconpca/matrix"
)

// Tolerances under which two reconstructions count as numerically identical:
// |a - b| <= distinctAtol + distinctRtol·|b| element-wise.
const (
	distinctRtol = 1e-5
	distinctAtol = 1e-8
)

// checkDistinctSeries draws one pair of distinct ranks (i, j) from a PCG
// stream seeded with seed and fails if X̂_i and X̂_j are numerically
// identical (matrix.AllClose with distinctRtol, distinctAtol).
// A fixed seed always inspects the same pair.
func checkDistinctSeries(series []*mat.Dense, seed uint64) error {
	d := len(series)
	if d < 2 {
		return nil
	}

	rng := rand.New(rand.NewPCG(seed, seed))
	i := rng.IntN(d)
	j := rng.IntN(d - 1)
	if j >= i {
		j++
	}
	same, err := matrix.AllClose(series[i], series[j], distinctRtol, distinctAtol)
	if err != nil {
		return detectorErrorf(opDistinct, err)
	}
	if same {
		return detectorErrorf(opDistinct, fmt.Errorf("ranks %d and %d: %w", i+1, j+1, ErrDegenerateSeries))
	}

	return nil
}
