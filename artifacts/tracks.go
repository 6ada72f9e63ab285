// SPDX-License-Identifier: MIT
package artifacts

import (
	"github.com/jjax07/sk-railway-network/internal/geo"
	"github.com/jjax07/sk-railway-network/network"
)

// TrackCoordinate is one [lon, lat] pair; a slice type rather than a
// struct so it marshals as the bare two-element array spec.md §6
// names, not an object.
type TrackCoordinate [2]float64

// Track is one edge's full geometry row in the railway_tracks
// artifact, carrying the polyline the railway_network artifact omits.
type Track struct {
	Source        string            `json:"source"`
	Target        string            `json:"target"`
	Coordinates   []TrackCoordinate `json:"coordinates"`
	BuiltYear     *int              `json:"built_year"`
	AbandonedYear *int              `json:"abandoned_year"`
	BuilderName   string            `json:"builder_name"`
	LengthKm      float64           `json:"length_km"`
}

// RailwayTracks is the full railway_tracks artifact (spec.md §6).
type RailwayTracks struct {
	Metadata   NetworkMetadata `json:"metadata"`
	TrackCount int             `json:"track_count"`
	Tracks     []Track         `json:"tracks"`
}

// BuildRailwayTracks renders a network.Graph's edges into the
// railway_tracks artifact, inverse-projecting each polyline vertex
// back to geographic [lon, lat] pairs.
func BuildRailwayTracks(meta NetworkMetadata, g *network.Graph, inverse geo.Inverse) RailwayTracks {
	edges := g.Edges()
	tracks := make([]Track, len(edges))

	for i, e := range edges {
		coords := make([]TrackCoordinate, len(e.Points))
		for j, p := range e.Points {
			lat, lon := inverse(p.X, p.Y)
			coords[j] = TrackCoordinate{geo.Round(lon, 6), geo.Round(lat, 6)}
		}
		tracks[i] = Track{
			Source:        nodeIDString(e.U),
			Target:        nodeIDString(e.V),
			Coordinates:   coords,
			BuiltYear:     e.BuiltYear,
			AbandonedYear: e.AbandonedYear,
			BuilderName:   e.BuilderName,
			LengthKm:      geo.Round(e.LengthKm(), 2),
		}
	}

	return RailwayTracks{
		Metadata:   meta,
		TrackCount: len(tracks),
		Tracks:     tracks,
	}
}
