// SPDX-License-Identifier: MIT
package artifacts

import (
	"fmt"
	"sort"

	"github.com/jjax07/sk-railway-network/internal/geo"
	"github.com/jjax07/sk-railway-network/network"
)

// NetworkMetadata carries the free-text description fields of a
// railway_network artifact's metadata block; everything here is
// supplied by the caller (the CLI layer), not derived from the graph.
type NetworkMetadata struct {
	Description     string  `json:"description"`
	Source          string  `json:"source"`
	Projection      string  `json:"projection"`
	Units           string  `json:"units"`
	SnapToleranceM  float64 `json:"snap_tolerance_m"`
}

// BuilderStat is one operator code's segment count and total length.
type BuilderStat struct {
	Count     int     `json:"count"`
	LengthKm  float64 `json:"length_km"`
}

// NetworkStats summarizes a railway_network artifact's graph.
type NetworkStats struct {
	SKSegments    int                    `json:"sk_segments"`
	TotalLengthKm float64                `json:"total_length_km"`
	NodeCount     int                    `json:"node_count"`
	EdgeCount     int                    `json:"edge_count"`
	ByBuilder     map[string]BuilderStat `json:"by_builder"`
	ByDecade      map[string]BuilderStat `json:"by_decade"`
}

// NetworkNode is one node's row in the railway_network artifact. ID is
// the stable "n<integer>" string spec.md §3 names, not the internal
// dense integer index.
type NetworkNode struct {
	ID  string  `json:"id"`
	X   float64 `json:"x"`
	Y   float64 `json:"y"`
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// NetworkEdge is one edge's row in the railway_network artifact.
// Source/Target are "n<integer>" node id strings, matching NetworkNode.ID.
type NetworkEdge struct {
	Source        string  `json:"source"`
	Target        string  `json:"target"`
	LengthM       float64 `json:"length_m"`
	LengthKm      float64 `json:"length_km"`
	BuiltYear     *int    `json:"built_year"`
	AbandonedYear *int    `json:"abandoned_year"`
	BuilderCode   string  `json:"builder_code"`
	BuilderName   string  `json:"builder_name"`
}

// RailwayNetwork is the full railway_network artifact (spec.md §6).
type RailwayNetwork struct {
	Metadata NetworkMetadata `json:"metadata"`
	Stats    NetworkStats    `json:"stats"`
	Nodes    []NetworkNode   `json:"nodes"`
	Edges    []NetworkEdge   `json:"edges"`
}

// BuildRailwayNetwork renders a network.Graph into the railway_network
// artifact shape, rounding coordinates per spec.md §6: lat/lon to 6
// decimals, length_m to 1 decimal, length_km to 2 decimals.
func BuildRailwayNetwork(meta NetworkMetadata, g *network.Graph) RailwayNetwork {
	nodes := g.Nodes()
	edges := g.Edges()

	out := RailwayNetwork{
		Metadata: meta,
		Nodes:    make([]NetworkNode, len(nodes)),
		Edges:    make([]NetworkEdge, len(edges)),
	}

	for i, n := range nodes {
		out.Nodes[i] = NetworkNode{
			ID:  nodeIDString(n.ID),
			X:   geo.Round(n.Point.X, 2),
			Y:   geo.Round(n.Point.Y, 2),
			Lat: geo.Round(n.LatLon.Lat, 6),
			Lon: geo.Round(n.LatLon.Lon, 6),
		}
	}

	byBuilder := map[string]*BuilderStat{}
	byDecade := map[string]*BuilderStat{}
	var totalLengthKm float64

	for i, e := range edges {
		lengthKm := geo.Round(e.LengthKm(), 2)
		out.Edges[i] = NetworkEdge{
			Source:        nodeIDString(e.U),
			Target:        nodeIDString(e.V),
			LengthM:       geo.Round(e.LengthM, 1),
			LengthKm:      lengthKm,
			BuiltYear:     e.BuiltYear,
			AbandonedYear: e.AbandonedYear,
			BuilderCode:   e.BuilderCode,
			BuilderName:   e.BuilderName,
		}
		totalLengthKm += lengthKm

		accumulate(byBuilder, e.BuilderCode, lengthKm)
		if e.BuiltYear != nil {
			decade := fmt.Sprintf("%ds", (*e.BuiltYear/10)*10)
			accumulate(byDecade, decade, lengthKm)
		}
	}

	out.Stats = NetworkStats{
		SKSegments:    len(edges),
		TotalLengthKm: geo.Round(totalLengthKm, 2),
		NodeCount:     len(nodes),
		EdgeCount:     len(edges),
		ByBuilder:     flatten(byBuilder),
		ByDecade:      flatten(byDecade),
	}
	return out
}

func accumulate(m map[string]*BuilderStat, key string, lengthKm float64) {
	s, ok := m[key]
	if !ok {
		s = &BuilderStat{}
		m[key] = s
	}
	s.Count++
	s.LengthKm = geo.Round(s.LengthKm+lengthKm, 2)
}

func flatten(m map[string]*BuilderStat) map[string]BuilderStat {
	out := make(map[string]BuilderStat, len(m))
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		out[k] = *m[k]
	}
	return out
}
