// SPDX-License-Identifier: MIT
package network

import "github.com/jjax07/sk-railway-network/internal/geo"

// Node is a railway network vertex: a junction, an endpoint, or a
// settlement's snapped-to location. Both coordinate frames are kept so
// that neither the Builder/Merger's projected-frame distance math nor
// the persisted artifacts' geographic lat/lon output need to recompute
// a projection at read time.
type Node struct {
	ID     int
	Point  geo.Point  // projected (x, y), meters
	LatLon geo.LatLon // geographic (lat, lon), WGS-84 degrees
}

// Edge is a railway segment between two nodes. Points carries its full
// projected-frame polyline for geometry reconstruction; LengthM is the
// polyline's own summed length, which need not exactly equal the
// straight-line distance between U and V.
type Edge struct {
	ID      int
	U, V    int
	Points  []geo.Point
	LengthM float64

	BuiltYear     *int
	AbandonedYear *int
	BuilderCode   string
	BuilderName   string
}

// LengthKm returns the edge length in kilometers, for artifact export.
func (e Edge) LengthKm() float64 {
	return e.LengthM / 1000
}
