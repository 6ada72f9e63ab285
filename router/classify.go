// SPDX-License-Identifier: MIT
package router

import (
	"math"

	"github.com/jjax07/sk-railway-network/internal/config"
	"github.com/jjax07/sk-railway-network/internal/geo"
	"github.com/jjax07/sk-railway-network/snapper"
)

// Route-quality thresholds in kilometers, great-circle, measured from
// each settlement to its nearest vertex in the reconstructed geometry
// (spec.md §4.4).
const (
	okThresholdKm      = 5.0
	warningThresholdKm = 15.0
)

func classifyQuality(cfg *config.Config, geometry []geo.Point, reachable bool, a, b *snapper.SnapRecord) Quality {
	if a == nil || b == nil {
		return NoMapping
	}
	if !reachable {
		return NoPath
	}
	if len(geometry) == 0 {
		return NoGeometry
	}

	distA := minGreatCircleKm(cfg, geometry, a.Lat, a.Lon)
	distB := minGreatCircleKm(cfg, geometry, b.Lat, b.Lon)

	switch {
	case distA <= okThresholdKm && distB <= okThresholdKm:
		return OK
	case distA <= warningThresholdKm && distB <= warningThresholdKm:
		return Warning
	default:
		return FarFromPath
	}
}

func minGreatCircleKm(cfg *config.Config, geometry []geo.Point, lat, lon float64) float64 {
	settlement := geo.LatLon{Lat: lat, Lon: lon}
	best := math.MaxFloat64
	for _, pt := range geometry {
		vLat, vLon := cfg.Projection.Inverse(pt.X, pt.Y)
		d := geo.HaversineMeters(settlement, geo.LatLon{Lat: vLat, Lon: vLon})
		if d < best {
			best = d
		}
	}
	return best / 1000
}
