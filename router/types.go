// SPDX-License-Identifier: MIT
package router

import "github.com/jjax07/sk-railway-network/internal/geo"

// Quality classifies how faithfully the reconstructed geometry
// represents the actual railway path between two settlements
// (spec.md §4.4).
type Quality string

const (
	OK           Quality = "OK"
	Warning      Quality = "WARNING"
	FarFromPath  Quality = "FAR_FROM_PATH"
	NoMapping    Quality = "NO_MAPPING"
	NoPath       Quality = "NO_PATH"
	NoGeometry   Quality = "NO_GEOMETRY"
)

// Result is the outcome of routing one settlement pair. DistanceKm is
// nil when no in-network path exists (NoMapping or NoPath). Geometry
// is the reconstructed projected-frame polyline for rendering; it may
// be nil even when DistanceKm is known (NoGeometry).
type Result struct {
	DistanceKm *float64
	Geometry   []geo.Point
	Quality    Quality

	// Ratio is railway distance over the pre-existing great-circle
	// distance between the two settlements, a diagnostic for flagging
	// indirect routes. Nil when either distance is unavailable.
	Ratio *float64
}
