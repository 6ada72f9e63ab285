// SPDX-License-Identifier: MIT
package artifacts

import (
	"fmt"

	"github.com/jjax07/sk-railway-network/internal/geo"
	"github.com/jjax07/sk-railway-network/network"
)

// LoadGraph reconstructs a *network.Graph from a previously persisted
// railway_network + railway_tracks pair — the Merger and Router
// stages' starting point, since both need to resume work on a graph a
// prior stage already built and wrote out. nw and tracks must
// originate from the same BuildRailwayNetwork/BuildRailwayTracks call
// (same node/edge order); forward re-derives each track's projected-
// frame polyline from its persisted [lon, lat] coordinates, since
// railway_network's own rows don't carry full geometry.
//
// LoadGraph assumes nw.Nodes is in ascending id order and nw.Edges is
// aligned index-for-index with tracks.Tracks — exactly what
// BuildRailwayNetwork/BuildRailwayTracks produce — so that AddNode/
// AddEdge's own sequential id assignment reproduces the original ids.
func LoadGraph(nw RailwayNetwork, tracks RailwayTracks, forward geo.Forward) (*network.Graph, error) {
	g := network.NewGraph()

	for i, n := range nw.Nodes {
		id, err := parseNodeID(n.ID)
		if err != nil {
			return nil, fmt.Errorf("artifacts.LoadGraph: %w", err)
		}
		if id != i {
			return nil, fmt.Errorf("artifacts.LoadGraph: node at index %d has id %q, nodes must be contiguous from n0", i, n.ID)
		}
		x, y := forward(n.Lat, n.Lon)
		g.AddNode(geo.Point{X: x, Y: y}, geo.LatLon{Lat: n.Lat, Lon: n.Lon})
	}

	if len(tracks.Tracks) != len(nw.Edges) {
		return nil, fmt.Errorf("artifacts.LoadGraph: %d edges but %d tracks", len(nw.Edges), len(tracks.Tracks))
	}

	for i, e := range nw.Edges {
		u, err := parseNodeID(e.Source)
		if err != nil {
			return nil, fmt.Errorf("artifacts.LoadGraph: edge %d: %w", i, err)
		}
		v, err := parseNodeID(e.Target)
		if err != nil {
			return nil, fmt.Errorf("artifacts.LoadGraph: edge %d: %w", i, err)
		}

		t := tracks.Tracks[i]
		points := make([]geo.Point, len(t.Coordinates))
		for j, c := range t.Coordinates {
			lon, lat := c[0], c[1]
			x, y := forward(lat, lon)
			points[j] = geo.Point{X: x, Y: y}
		}
		if _, err := g.AddEdge(u, v, points, e.LengthM, e.BuiltYear, e.AbandonedYear, e.BuilderCode, e.BuilderName); err != nil {
			return nil, fmt.Errorf("artifacts.LoadGraph: edge %d: %w", i, err)
		}
	}

	return g, nil
}
