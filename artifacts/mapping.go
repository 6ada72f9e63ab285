// SPDX-License-Identifier: MIT
package artifacts

import (
	"fmt"

	"github.com/jjax07/sk-railway-network/internal/geo"
	"github.com/jjax07/sk-railway-network/network"
	"github.com/jjax07/sk-railway-network/snapper"
)

// MappingMetadata carries the settlement_network_mapping artifact's
// configured snap-quality thresholds, in kilometers.
type MappingMetadata struct {
	OnNetworkKm   float64 `json:"on_network_km"`
	NearNetworkKm float64 `json:"near_network_km"`
	DistantKm     float64 `json:"distant_km"`
}

// MappingStats summarizes one settlement_network_mapping artifact's
// snap outcomes by quality.
type MappingStats struct {
	Total       int `json:"total"`
	OnNetwork   int `json:"on_network"`
	NearNetwork int `json:"near_network"`
	Distant     int `json:"distant"`
	OffNetwork  int `json:"off_network"`
}

// MappingRecord is one settlement's row in the
// settlement_network_mapping artifact — the snap record shape named
// in spec.md §3. Nodes holds "n<integer>" node id strings, matching
// NetworkNode.ID; there is no separate edge id field, matching
// original_source/scripts/snap_settlements_to_network.py:216-217's own
// snap record shape, which identifies an edge snap by its two nodes
// rather than an edge id.
type MappingRecord struct {
	Settlement   string              `json:"settlement"`
	Lat          float64             `json:"lat"`
	Lon          float64             `json:"lon"`
	Type         snapper.SnapType    `json:"snap_type"`
	Nodes        []string            `json:"snap_nodes"`
	EdgeT        *float64            `json:"snap_edge_t,omitempty"`
	EdgeLengthKm *float64            `json:"snap_edge_length_km,omitempty"`
	DistanceM    float64             `json:"snap_distance_m"`
	Quality      snapper.SnapQuality `json:"snap_quality"`
}

// SettlementNetworkMapping is the full settlement_network_mapping
// artifact (spec.md §6).
type SettlementNetworkMapping struct {
	Metadata MappingMetadata `json:"metadata"`
	Stats    MappingStats    `json:"stats"`
	Mappings []MappingRecord `json:"mappings"`
}

// BuildSettlementNetworkMapping renders snapper.Snap's output into the
// settlement_network_mapping artifact shape.
func BuildSettlementNetworkMapping(meta MappingMetadata, records []snapper.SnapRecord) SettlementNetworkMapping {
	out := SettlementNetworkMapping{
		Metadata: meta,
		Mappings: make([]MappingRecord, len(records)),
	}

	for i, r := range records {
		nodes := make([]string, len(r.Nodes))
		for j, n := range r.Nodes {
			nodes[j] = nodeIDString(n)
		}
		out.Mappings[i] = MappingRecord{
			Settlement:   r.Settlement,
			Lat:          geo.Round(r.Lat, 6),
			Lon:          geo.Round(r.Lon, 6),
			Type:         r.Type,
			Nodes:        nodes,
			EdgeT:        r.EdgeT,
			EdgeLengthKm: r.EdgeLengthKm,
			DistanceM:    geo.Round(r.DistanceM, 1),
			Quality:      r.Quality,
		}

		out.Stats.Total++
		switch r.Quality {
		case snapper.OnNetwork:
			out.Stats.OnNetwork++
		case snapper.NearNetwork:
			out.Stats.NearNetwork++
		case snapper.Distant:
			out.Stats.Distant++
		case snapper.OffNetwork:
			out.Stats.OffNetwork++
		}
	}

	return out
}

// ToSnapRecord reconstructs the snapper.SnapRecord a MappingRecord was
// rendered from, needed by the Router stage command to resume work
// from a previously persisted settlement_network_mapping artifact
// rather than re-running Snap. g resolves each "n<integer>" node id
// back to its dense integer index, and — for an edge snap — the edge
// id the same-edge distance/geometry branches key on, via g.FindEdge
// on the snap's own node pair.
func (m MappingRecord) ToSnapRecord(g *network.Graph) (snapper.SnapRecord, error) {
	nodes := make([]int, len(m.Nodes))
	for i, s := range m.Nodes {
		id, err := parseNodeID(s)
		if err != nil {
			return snapper.SnapRecord{}, fmt.Errorf("artifacts.ToSnapRecord: %w", err)
		}
		nodes[i] = id
	}

	r := snapper.SnapRecord{
		Settlement:   m.Settlement,
		Lat:          m.Lat,
		Lon:          m.Lon,
		Type:         m.Type,
		Nodes:        nodes,
		EdgeT:        m.EdgeT,
		EdgeLengthKm: m.EdgeLengthKm,
		DistanceM:    m.DistanceM,
		Quality:      m.Quality,
	}

	if m.Type == snapper.SnapEdge {
		edgeID, ok := g.FindEdge(nodes[0], nodes[1])
		if !ok {
			return snapper.SnapRecord{}, fmt.Errorf("artifacts.ToSnapRecord: no edge between nodes %s and %s", m.Nodes[0], m.Nodes[1])
		}
		r.EdgeID = edgeID
	}

	return r, nil
}
