// SPDX-License-Identifier: MIT
package router

import (
	"math"

	"github.com/jjax07/sk-railway-network/dijkstra"
	"github.com/jjax07/sk-railway-network/internal/geo"
	"github.com/jjax07/sk-railway-network/network"
	"github.com/jjax07/sk-railway-network/snapper"
)

// computeDistance implements the three distance branches of spec.md
// §4.2, tried in order: same edge, same node, disjoint (Dijkstra).
// The bool return reports reachability; a false with a nil distance
// means no in-network path exists.
func computeDistance(g *network.Graph, a, b snapper.SnapRecord) (*float64, bool) {
	if a.Type == snapper.SnapEdge && b.Type == snapper.SnapEdge && a.EdgeID == b.EdgeID {
		e, ok := g.Edge(a.EdgeID)
		if !ok {
			return nil, false
		}
		d := math.Abs(*a.EdgeT-*b.EdgeT) * e.LengthKm()
		d = geo.Round(d, 2)
		return &d, true
	}

	if a.PrimaryNode() == b.PrimaryNode() {
		zero := 0.0
		return &zero, true
	}

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.WithSource(a.PrimaryNode()))
	if err != nil {
		return nil, false
	}
	d, ok := dist[b.PrimaryNode()]
	if !ok || d == math.MaxFloat64 {
		return nil, false
	}
	d = geo.Round(d, 2)
	return &d, true
}
