// SPDX-License-Identifier: MIT
package merger

import (
	"github.com/jjax07/sk-railway-network/internal/config"
	"github.com/jjax07/sk-railway-network/ingest"
	"github.com/jjax07/sk-railway-network/network"
)

// Merge integrates polylines into g: it filters by the configured
// classification/operator accept-sets, stitches the survivors into
// continuous chains per operator, inserts one edge per chain (never
// displacing an edge that already connects the same node pair), and
// finally reconnects any component left floating after every chain
// has been added.
//
// g must already contain at least one node; Merge returns
// ErrNoMainComponent and leaves g untouched if it does not, since
// there is then no main component to anchor a floating-subgraph
// repair against.
//
// Complexity: O(n^2) in the number of surviving records, from the
// pairwise chain-stitching fixed point (spec.md §9 accepts this for
// the dataset sizes the pipeline targets).
func Merge(cfg *config.Config, g *network.Graph, polylines ingest.MergerPolylineIterator) (Stats, error) {
	var stats Stats

	if err := cfg.Validate(); err != nil {
		return stats, wrapf("Merge", err)
	}
	preMergeNodeCount := g.NodeCount()
	if preMergeNodeCount == 0 {
		return stats, wrapf("Merge", ErrNoMainComponent)
	}

	var accepted []ingest.MergerPolylineRecord
	for {
		rec, ok := polylines.Next()
		if !ok {
			break
		}
		stats.RecordsTotal++

		if !cfg.AcceptsClassification(rec.Classification) {
			stats.SkippedClassification++
			continue
		}
		if !cfg.AcceptsOperator(rec.Operator) {
			stats.SkippedOperator++
			continue
		}
		accepted = append(accepted, rec)
	}

	chains := assembleChains(accepted, cfg.MergeTolerance)
	stats.ChainsAssembled = len(chains)

	for _, c := range chains {
		if len(c.points) < 2 {
			continue
		}
		switch insertChainEdge(cfg, g, c) {
		case chainInsertedNew:
			stats.EdgesCreated++
		case chainInsertedKeptExisting:
			stats.EdgesSkippedExisting++
		case chainInsertedSelfLoop:
			stats.SelfLoopsDiscarded++
		}
	}

	added, err := connectFloatingComponents(cfg, g, preMergeNodeCount)
	if err != nil {
		return stats, wrapf("Merge", err)
	}
	stats.VirtualEdgesAdded = added

	return stats, nil
}
