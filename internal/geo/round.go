// SPDX-License-Identifier: MIT
package geo

import "math"

// Round rounds value to the given number of decimal places. Used
// everywhere spec.md pins down a rounding rule as part of a data
// invariant rather than just display formatting (edge length_m at
// build time; lat/lon/length_m/length_km at artifact export time).
func Round(value float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))
	return math.Round(value*scale) / scale
}
