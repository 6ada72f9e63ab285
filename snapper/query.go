// SPDX-License-Identifier: MIT
package snapper

import (
	"github.com/jjax07/sk-railway-network/internal/geo"
	"github.com/jjax07/sk-railway-network/network"
)

// nearestNode returns the id of the closest node to p and its
// distance, scanning every node in the graph. Ties are broken by the
// lower (earlier-inserted) id, matching spec.md's nearest-first,
// insertion-order tie-break rule.
func nearestNode(g *network.Graph, p geo.Point) (id int, dist float64) {
	best, bestDist := -1, 0.0
	for _, n := range g.Nodes() {
		d := geo.EuclideanDistance(p, n.Point)
		if best == -1 || d < bestDist {
			best, bestDist = n.ID, d
		}
	}
	return best, bestDist
}

// nearestEdge returns the id of the edge whose straight U-V chord is
// closest to p, the distance, and t, the parameter along that chord
// of the foot of the perpendicular. spec.md §4.3 deliberately measures
// against the straight node-to-node line, not the edge's recorded
// polyline (see snapper/doc.go).
func nearestEdge(g *network.Graph, p geo.Point) (id int, dist float64, t float64) {
	best, bestDist, bestT := -1, 0.0, 0.0
	for _, e := range g.Edges() {
		u, _ := g.Node(e.U)
		v, _ := g.Node(e.V)
		d, et := geo.PointToSegment(p, u.Point, v.Point)
		if best == -1 || d < bestDist {
			best, bestDist, bestT = e.ID, d, et
		}
	}
	return best, bestDist, bestT
}
