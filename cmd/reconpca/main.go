// SPDX-License-Identifier: MIT

// Command reconpca runs reconstruction-error outlier detection on seeded
// synthetic scenarios and reports how well the injected outliers were found.
package main

import (
	"os"

	"github.com/katalvlaran/reconpca/cmd/reconpca/commands"
)

func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
