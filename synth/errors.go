// SPDX-License-Identifier: MIT
// Package: synth
//
// errors.go: sentinel errors for the synth package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Generators MUST NOT panic at runtime; validation panics are confined to
//     option constructors (WithX...).

package synth

import (
	"errors"
	"fmt"
)

// ErrBadSize indicates a non-positive sample or feature count.
var ErrBadSize = errors.New("synth: invalid size")

// ErrTooManyOutliers indicates an outlier count that is negative or exceeds
// the sample count.
var ErrTooManyOutliers = errors.New("synth: outlier count out of range")

// ErrBadOutlierRow indicates an explicit outlier row outside [0, n) or
// listed twice.
var ErrBadOutlierRow = errors.New("synth: invalid outlier row")

// Method names used as error prefixes.
const (
	MethodGaussian = "Gaussian"
	MethodScenario = "NewScenario"
)

// synthErrorf prefixes a formatted message with the method name; a %w verb
// in format keeps the sentinel matchable with errors.Is.
func synthErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", method, fmt.Errorf(format, args...))
}
