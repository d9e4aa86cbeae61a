// SPDX-License-Identifier: MIT

package detector

// CheckDistinctSeries exposes the strict-mode pair check to external tests.
var CheckDistinctSeries = checkDistinctSeries
