// SPDX-License-Identifier: MIT

package detector_test

import (
	"testing"

	"github.com/katalvlaran/reconpca/synth"
)

// fixtureOutliers are the displaced rows of the reference scenario.
var fixtureOutliers = []int{7, 23, 41, 66, 88}

// referenceScenario is the 100×5 seed-2018 sample with five 10σ outliers,
// each displaced on its own feature.
func referenceScenario(tb testing.TB) *synth.Scenario {
	tb.Helper()
	sc, err := synth.NewScenario(100, 5, len(fixtureOutliers),
		synth.WithSeed(2018),
		synth.WithOutlierRows(fixtureOutliers...),
	)
	if err != nil {
		tb.Fatalf("NewScenario: %v", err)
	}

	return sc
}
