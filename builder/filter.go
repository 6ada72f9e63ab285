// SPDX-License-Identifier: MIT
package builder

import (
	"github.com/jjax07/sk-railway-network/internal/config"
	"github.com/jjax07/sk-railway-network/internal/geo"
	"github.com/jjax07/sk-railway-network/ingest"
)

// skipReason classifies why a polyline record was rejected before
// junction detection, for Stats bookkeeping.
type skipReason int

const (
	skipNone skipReason = iota
	skipDegenerate
	skipOutOfRegion
)

// evaluate classifies rec against cfg: degenerate (fewer than two
// points, or a null bbox) records are rejected before any geographic
// test runs, matching spec.md §4.1's "unparseable or degenerate
// polylines... skipped silently" rule; otherwise the polyline's bbox
// is inverse-projected to geographic corners and tested against the
// configured accept region.
func evaluate(cfg *config.Config, rec ingest.PolylineRecord) skipReason {
	if len(rec.Points) < 2 || rec.BBox == nil {
		return skipDegenerate
	}

	swLat, swLon := cfg.Projection.Inverse(rec.BBox.MinX, rec.BBox.MinY)
	neLat, neLon := cfg.Projection.Inverse(rec.BBox.MaxX, rec.BBox.MaxY)
	sw := geo.LatLon{Lat: swLat, Lon: swLon}
	ne := geo.LatLon{Lat: neLat, Lon: neLon}

	if !cfg.AcceptRegion.Intersects(sw, ne) {
		return skipOutOfRegion
	}
	return skipNone
}
