// SPDX-License-Identifier: MIT

package synth_test

import (
	"fmt"

	"github.com/katalvlaran/reconpca/synth"
)

// ExampleNewScenario injects two outliers at fixed rows.
func ExampleNewScenario() {
	sc, err := synth.NewScenario(6, 2, 2, synth.WithSeed(1), synth.WithOutlierRows(4, 1))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	r, c := sc.X.Dims()
	fmt.Println("shape:", r, c)
	fmt.Println("outliers:", sc.Outliers)
	fmt.Println("truth:", sc.Truth())

	// Output:
	// shape: 6 2
	// outliers: [1 4]
	// truth: [0 1 0 0 1 0]
}
