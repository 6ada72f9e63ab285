// SPDX-License-Identifier: MIT
//
// api.go - thin public entry-point for the builder package.
package builder

import (
	"github.com/jjax07/sk-railway-network/internal/config"
	"github.com/jjax07/sk-railway-network/ingest"
	"github.com/jjax07/sk-railway-network/network"
)

// Build runs the Network Builder stage end to end: it drains
// polylines, discards degenerate or out-of-region records, detects
// junctions in two passes, resolves segments into nodes and edges,
// and returns the resulting graph along with per-record Stats.
//
// The returned graph's adjacency index is not built; call
// BuildAdjacency once the Merger (if any) has also run.
//
// Complexity: O(P) for Pass 1, where P is the total vertex count
// across accepted polylines; Pass 2 and node/edge resolution are
// O(P x J) and O(S x V) respectively in the naive form spec.md accepts
// at the target data scale (J = junction count, S = segment count,
// V = node count).
func Build(cfg *config.Config, polylines ingest.PolylineIterator) (*network.Graph, Stats, error) {
	if err := cfg.Validate(); err != nil {
		return nil, Stats{}, wrapf("Build", err)
	}

	var stats Stats
	var accepted []ingest.PolylineRecord

	for {
		rec, ok := polylines.Next()
		if !ok {
			break
		}
		stats.PolylinesTotal++

		switch evaluate(cfg, rec) {
		case skipDegenerate:
			stats.SkippedDegenerate++
			continue
		case skipOutOfRegion:
			stats.SkippedOutOfRegion++
			continue
		}
		accepted = append(accepted, rec)
	}

	junctions := detectJunctions(cfg, accepted)

	g := network.NewGraph()
	for _, rec := range accepted {
		for _, seg := range splitAtJunctions(cfg, rec, junctions) {
			if len(seg.points) < 2 {
				continue
			}
			stats.SegmentsEmitted++

			switch insertEdge(cfg, g, seg) {
			case insertedNew:
				stats.EdgesCreated++
			case insertedReplaced:
				stats.EdgesReplaced++
			case insertedKeptExisting:
				stats.EdgesKeptExisting++
			case insertedSelfLoop:
				stats.SelfLoopsDiscarded++
			}
		}
	}

	return g, stats, nil
}
