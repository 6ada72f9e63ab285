// SPDX-License-Identifier: MIT
package builder

import (
	"github.com/jjax07/sk-railway-network/internal/config"
	"github.com/jjax07/sk-railway-network/internal/geo"
	"github.com/jjax07/sk-railway-network/internal/spatialgrid"
	"github.com/jjax07/sk-railway-network/ingest"
)

// segment is one sub-polyline emitted by Pass 2, carrying its parent
// polyline's attributes unchanged.
type segment struct {
	points []geo.Point
	attrs  ingest.PolylineAttrs
}

// detectJunctions is Pass 1: every vertex of every accepted polyline
// is quantized into cfg.JunctionGridSize cells; any cell touched by
// two or more distinct polylines is a junction. Polylines are indexed
// by their position in polylines for the purpose of distinctness.
func detectJunctions(cfg *config.Config, polylines []ingest.PolylineRecord) []geo.Point {
	grid := spatialgrid.NewJunctionGrid(cfg.JunctionGridSize)
	for i, p := range polylines {
		for _, v := range p.Points {
			grid.Add(i, v)
		}
	}
	return grid.Junctions()
}

// splitAtJunctions is Pass 2: rec is split at every interior vertex
// within tolerance of a junction point. The first and last vertices
// always terminate a segment even when not themselves a junction.
//
// The tolerance check reuses cfg.JunctionGridSize rather than a
// distinct "junction tolerance" field — see DESIGN.md for why
// spec.md's two uses of that name can't share one config value.
func splitAtJunctions(cfg *config.Config, rec ingest.PolylineRecord, junctions []geo.Point) []segment {
	pts := rec.Points
	var segments []segment
	start := 0

	for i := 1; i < len(pts)-1; i++ {
		if _, ok := spatialgrid.NearJunction(junctions, pts[i], cfg.JunctionGridSize); ok {
			segments = append(segments, segment{
				points: append([]geo.Point{}, pts[start:i+1]...),
				attrs:  rec.Attrs,
			})
			start = i
		}
	}
	segments = append(segments, segment{
		points: append([]geo.Point{}, pts[start:]...),
		attrs:  rec.Attrs,
	})

	return segments
}
