// SPDX-License-Identifier: MIT
package merger

import (
	"github.com/jjax07/sk-railway-network/internal/config"
	"github.com/jjax07/sk-railway-network/internal/geo"
	"github.com/jjax07/sk-railway-network/network"
)

// resolveMergerNode returns the id of an existing node within
// cfg.JunctionTolerance great-circle meters of ll, or allocates a new
// one. Cross-dataset node reuse is measured in the geographic frame,
// not the projected one, since an incoming chain's coordinates have
// not yet been projected and may originate from a different source
// dataset than the one that built the graph.
func resolveMergerNode(cfg *config.Config, g *network.Graph, ll geo.LatLon) int {
	if id, ok := g.NearestNodeGreatCircle(ll, cfg.JunctionTolerance); ok {
		return id
	}
	x, y := cfg.Projection.Forward(ll.Lat, ll.Lon)
	return g.AddNode(geo.Point{X: x, Y: y}, ll)
}

// insertChainOutcome records what insertChainEdge did, for Stats.
type insertChainOutcome int

const (
	chainInsertedNew insertChainOutcome = iota
	chainInsertedSelfLoop
	chainInsertedKeptExisting
)

// insertChainEdge resolves a chain's two endpoints to nodes and, if no
// edge already connects them, adds one. Unlike the Network Builder,
// the Merger never replaces an existing edge regardless of relative
// length: a merge must never displace topology the base network
// already established (spec.md §4.2).
func insertChainEdge(cfg *config.Config, g *network.Graph, c chain) insertChainOutcome {
	u := resolveMergerNode(cfg, g, c.points[0])
	v := resolveMergerNode(cfg, g, c.points[len(c.points)-1])

	if u == v {
		return chainInsertedSelfLoop
	}
	if _, ok := g.FindEdge(u, v); ok {
		return chainInsertedKeptExisting
	}

	projected := make([]geo.Point, len(c.points))
	for i, ll := range c.points {
		x, y := cfg.Projection.Forward(ll.Lat, ll.Lon)
		projected[i] = geo.Point{X: x, Y: y}
	}
	lengthM := geo.Round(geo.PolylineLength(projected), 1)

	name := cfg.ResolveOperatorName(c.operator)
	if _, err := g.AddEdge(u, v, projected, lengthM, nil, nil, c.operator, name); err != nil {
		return chainInsertedSelfLoop
	}
	return chainInsertedNew
}
