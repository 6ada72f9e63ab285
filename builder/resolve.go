// SPDX-License-Identifier: MIT
package builder

import (
	"github.com/jjax07/sk-railway-network/internal/config"
	"github.com/jjax07/sk-railway-network/internal/geo"
	"github.com/jjax07/sk-railway-network/network"
)

// resolveNode reuses the nearest existing node within cfg.SnapTolerance
// of p, or creates a new one at p's exact projected coordinates.
func resolveNode(cfg *config.Config, g *network.Graph, p geo.Point) int {
	if id, ok := g.NearestNode(p, cfg.SnapTolerance); ok {
		return id
	}
	lat, lon := cfg.Projection.Inverse(p.X, p.Y)
	return g.AddNode(p, geo.LatLon{Lat: lat, Lon: lon})
}

// insertOutcome classifies what insertEdge did, for Stats bookkeeping.
type insertOutcome int

const (
	insertedNew insertOutcome = iota
	insertedReplaced
	insertedKeptExisting
	insertedSelfLoop
)

// insertEdge resolves seg's endpoints to nodes and inserts (or
// collapses into) an edge, per spec.md §4.1's edge-insertion rule:
// self-loops are discarded; when an edge already exists between the
// resolved pair, the new segment replaces it only if its length is
// strictly shorter; otherwise a new edge is added.
func insertEdge(cfg *config.Config, g *network.Graph, seg segment) insertOutcome {
	u := resolveNode(cfg, g, seg.points[0])
	v := resolveNode(cfg, g, seg.points[len(seg.points)-1])
	if u == v {
		return insertedSelfLoop
	}

	lengthM := geo.Round(geo.PolylineLength(seg.points), 1)
	builderName := cfg.ResolveOperatorName(seg.attrs.OperatorCode)

	if existingID, ok := g.FindEdge(u, v); ok {
		existing, _ := g.Edge(existingID)
		if lengthM < existing.LengthM {
			g.RemoveEdge(existingID)
			_, _ = g.AddEdge(u, v, seg.points, lengthM, seg.attrs.BuiltYear, seg.attrs.AbandonedYear, seg.attrs.OperatorCode, builderName)
			return insertedReplaced
		}
		return insertedKeptExisting
	}

	_, _ = g.AddEdge(u, v, seg.points, lengthM, seg.attrs.BuiltYear, seg.attrs.AbandonedYear, seg.attrs.OperatorCode, builderName)
	return insertedNew
}
