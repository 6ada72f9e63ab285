// SPDX-License-Identifier: MIT
package network

import "github.com/jjax07/sk-railway-network/internal/geo"

// NearestNode returns the id of the existing node closest to p in the
// projected frame, provided that distance is within tolerance meters.
// Ties are broken by insertion order (lowest id wins), matching
// spec.md's "nearest-first, with ties broken by node insertion order"
// failure-semantics rule. Used by the Network Builder's snap_tolerance
// node-reuse step.
// Complexity: O(V).
func (g *Graph) NearestNode(p geo.Point, tolerance float64) (int, bool) {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()

	best := -1
	bestDist := tolerance
	for _, n := range g.nodes {
		d := geo.EuclideanDistance(p, n.Point)
		if d < bestDist {
			best, bestDist = n.ID, d
		}
	}
	if best == -1 {
		return 0, false
	}
	return best, true
}

// NearestNodeGreatCircle returns the id of the existing node closest
// to ll in the geographic frame, by great-circle distance, provided
// that distance is within toleranceMeters. Used by the Merger's
// cross-dataset junction detection, which compares incoming chain
// endpoints (lon/lat) against nodes that may have come from a
// different source dataset's projection.
// Complexity: O(V).
func (g *Graph) NearestNodeGreatCircle(ll geo.LatLon, toleranceMeters float64) (int, bool) {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()

	best := -1
	bestDist := toleranceMeters
	for _, n := range g.nodes {
		d := geo.HaversineMeters(ll, n.LatLon)
		if d < bestDist {
			best, bestDist = n.ID, d
		}
	}
	if best == -1 {
		return 0, false
	}
	return best, true
}
