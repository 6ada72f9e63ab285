// SPDX-License-Identifier: MIT
package snapper

import (
	"github.com/jjax07/sk-railway-network/internal/config"
	"github.com/jjax07/sk-railway-network/internal/geo"
	"github.com/jjax07/sk-railway-network/ingest"
	"github.com/jjax07/sk-railway-network/network"
)

// Snap projects every settlement into the graph's frame and returns
// one SnapRecord per settlement, in the same order as settlements.
// The graph is read-only: Snap never mutates g.
//
// Complexity: O(settlements × (V + E)), the naive per-settlement full
// scan spec.md §5 accepts for the target data scale.
func Snap(cfg *config.Config, g *network.Graph, settlements []ingest.SettlementRecord) ([]SnapRecord, error) {
	if err := cfg.Validate(); err != nil {
		return nil, wrapf("Snap", err)
	}
	if g.NodeCount() == 0 {
		return nil, wrapf("Snap", ErrEmptyGraph)
	}

	out := make([]SnapRecord, len(settlements))
	for i, s := range settlements {
		out[i] = snapOne(cfg, g, s)
	}
	return out, nil
}

func snapOne(cfg *config.Config, g *network.Graph, s ingest.SettlementRecord) SnapRecord {
	x, y := cfg.Projection.Forward(s.Lat, s.Lon)
	p := geo.Point{X: x, Y: y}

	nodeID, nodeDist := nearestNode(g, p)
	edgeID, edgeDist, edgeT := nearestEdge(g, p)

	rec := SnapRecord{Settlement: s.Name, Lat: s.Lat, Lon: s.Lon}

	// Edge wins ties (spec.md §4.3 step 4: "If equal, prefer the edge
	// snap"). An absent edge (empty graph never reaches here, but a
	// graph with nodes and zero edges is legal) always loses to the node.
	useEdge := edgeID != -1 && (nodeID == -1 || edgeDist <= nodeDist)

	if useEdge {
		e, _ := g.Edge(edgeID)
		t := edgeT
		lengthKm := e.LengthKm()
		rec.Type = SnapEdge
		rec.Nodes = []int{e.U, e.V}
		rec.EdgeID = edgeID
		rec.EdgeT = &t
		rec.EdgeLengthKm = &lengthKm
		rec.DistanceM = edgeDist
	} else {
		rec.Type = SnapNode
		rec.Nodes = []int{nodeID}
		rec.DistanceM = nodeDist
	}

	rec.Quality = classify(cfg, rec.DistanceM)
	return rec
}
