// SPDX-License-Identifier: MIT
package artifacts

import "github.com/jjax07/sk-railway-network/internal/geo"

// RailwayStop is one railway a settlement was ever served by, with the
// year it arrived.
type RailwayStop struct {
	Railway string `json:"railway"`
	Year    int    `json:"year"`
}

// SettlementInfo is one settlement's row in settlement_connections'
// settlements table.
type SettlementInfo struct {
	Lat             float64       `json:"lat"`
	Lon             float64       `json:"lon"`
	RailwayArrives  *int          `json:"railway_arrives"`
	FirstRailway    *string       `json:"first_railway"`
	Railways        []RailwayStop `json:"railways"`
}

// Connection is one settlement pair's row in settlement_connections'
// connections table. DistanceKm comes from an external collaborator's
// great-circle pre-pass; RailwayDistanceKm starts nil and is set by
// ApplyRouteDistances once the Router has computed it — ported from
// original_source/scripts/calculate_railway_distances.py's in-place
// `conn['railway_distance_km'] = ...` update.
type Connection struct {
	To                string        `json:"to"`
	DistanceKm        float64       `json:"distance_km"`
	RailwayDistanceKm *float64      `json:"railway_distance_km,omitempty"`
	SharedRailway     *string       `json:"shared_railway"`
	ConnectedYear     *int          `json:"connected_year"`
	ConnectionType    *string       `json:"connection_type"`
	AllSharedRailways []RailwayStop `json:"all_shared_railways,omitempty"`
}

// SettlementConnections is the full settlement_connections artifact
// (spec.md §6).
type SettlementConnections struct {
	Settlements map[string]SettlementInfo `json:"settlements"`
	Connections map[string][]Connection   `json:"connections"`
}

// ApplyRouteDistances fills in railway_distance_km for every
// connection matching the given settlement pair, symmetric in both
// directions (a→b and b→a), and rounds the result to 1 decimal
// matching the rest of the artifact's distance fields.
func ApplyRouteDistances(sc *SettlementConnections, source, target string, railwayDistanceKm float64) {
	rounded := geo.Round(railwayDistanceKm, 1)
	applyOne(sc, source, target, rounded)
	applyOne(sc, target, source, rounded)
}

func applyOne(sc *SettlementConnections, from, to string, distanceKm float64) {
	conns, ok := sc.Connections[from]
	if !ok {
		return
	}
	for i := range conns {
		if conns[i].To == to {
			conns[i].RailwayDistanceKm = &distanceKm
		}
	}
}
