// SPDX-License-Identifier: MIT
package router

import (
	"sort"

	"github.com/jjax07/sk-railway-network/internal/config"
	"github.com/jjax07/sk-railway-network/internal/geo"
	"github.com/jjax07/sk-railway-network/network"
	"github.com/jjax07/sk-railway-network/snapper"
)

// Pair is one settlement pair to route, with its optional pre-existing
// great-circle distance for the Ratio diagnostic.
type Pair struct {
	Source             string
	Target             string
	ExistingDistanceKm *float64
}

// PairResult is one Pair's routing outcome.
type PairResult struct {
	Pair
	Result
}

// Route computes the distance and geometry between two already-snapped
// settlements. It never returns an error: a or b being nil yields
// NoMapping, and every other failure surface is folded into Quality.
// g must already have BuildAdjacency called if the pair can fall
// through to the Dijkstra branch (RouteAll guarantees this for a batch).
func Route(cfg *config.Config, g *network.Graph, a, b *snapper.SnapRecord, existingDistanceKm *float64) Result {
	if a == nil || b == nil {
		return Result{Quality: NoMapping}
	}

	distanceKm, reachable := computeDistance(g, *a, *b)
	geometry := buildGeometry(cfg, g, *a, *b, reachable)
	quality := classifyQuality(cfg, geometry, reachable, a, b)

	var ratio *float64
	if distanceKm != nil && existingDistanceKm != nil && *existingDistanceKm > 0 {
		r := geo.Round(*distanceKm / *existingDistanceKm, 4)
		ratio = &r
	}

	return Result{
		DistanceKm: distanceKm,
		Geometry:   geometry,
		Quality:    quality,
		Ratio:      ratio,
	}
}

// RouteAll routes every pair, resolving each side's snap record by
// settlement name from snaps. A name absent from snaps routes as
// NoMapping, never aborting the batch. Results are sorted
// deterministically by (Source, Target) before return, independent of
// map iteration order or any future parallelism.
func RouteAll(cfg *config.Config, g *network.Graph, snaps map[string]snapper.SnapRecord, pairs []Pair) []PairResult {
	g.BuildAdjacency()

	results := make([]PairResult, len(pairs))
	for i, pair := range pairs {
		var a, b *snapper.SnapRecord
		if rec, ok := snaps[pair.Source]; ok {
			a = &rec
		}
		if rec, ok := snaps[pair.Target]; ok {
			b = &rec
		}
		results[i] = PairResult{Pair: pair, Result: Route(cfg, g, a, b, pair.ExistingDistanceKm)}
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Source != results[j].Source {
			return results[i].Source < results[j].Source
		}
		return results[i].Target < results[j].Target
	})
	return results
}
