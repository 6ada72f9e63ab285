// SPDX-License-Identifier: MIT
package merger

import (
	"github.com/jjax07/sk-railway-network/internal/config"
	"github.com/jjax07/sk-railway-network/internal/geo"
	"github.com/jjax07/sk-railway-network/internal/spatialgrid"
	"github.com/jjax07/sk-railway-network/network"
)

// VirtualOperatorCode tags the synthetic edges connectFloatingComponents
// adds to reattach a floating subgraph to the main network.
const VirtualOperatorCode = "VIRTUAL"

// connectFloatingComponents runs after every chain has been merged in.
// It partitions the combined graph into connected components, picks
// the "main component" as the largest one containing at least one
// node that existed before this merge started (preMergeNodeCount), and
// adds one virtual edge from the closest node pair between the main
// component and every other ("floating") component.
//
// Returns ErrNoMainComponent, leaving g unchanged beyond whatever
// chains were already inserted, if the pre-merge graph contained no
// nodes at all — there is then no basis to call any component "main".
func connectFloatingComponents(cfg *config.Config, g *network.Graph, preMergeNodeCount int) (int, error) {
	if preMergeNodeCount == 0 {
		return 0, ErrNoMainComponent
	}

	g.BuildAdjacency()
	components := spatialgrid.ConnectedComponents(g.NodeCount(), func(id int) []int {
		edgeIDs, err := g.AdjacentEdges(id)
		if err != nil {
			return nil
		}
		neighbors := make([]int, 0, len(edgeIDs))
		for _, eid := range edgeIDs {
			e, ok := g.Edge(eid)
			if !ok {
				continue
			}
			if e.U == id {
				neighbors = append(neighbors, e.V)
			} else {
				neighbors = append(neighbors, e.U)
			}
		}
		return neighbors
	})

	mainIdx := -1
	for i, comp := range components {
		if !containsNodeBelow(comp, preMergeNodeCount) {
			continue
		}
		if mainIdx == -1 || len(comp) > len(components[mainIdx]) {
			mainIdx = i
		}
	}
	if mainIdx == -1 {
		return 0, ErrNoMainComponent
	}

	added := 0
	for i, comp := range components {
		if i == mainIdx {
			continue
		}
		if connectFloating(cfg, g, components[mainIdx], comp) {
			added++
		}
	}
	return added, nil
}

func containsNodeBelow(comp []int, limit int) bool {
	for _, id := range comp {
		if id < limit {
			return true
		}
	}
	return false
}

// connectFloating finds the closest (main, floating) node pair by
// great-circle distance and links them with a straight, geodesic-
// length virtual edge.
func connectFloating(cfg *config.Config, g *network.Graph, main, floating []int) bool {
	bestMain, bestFloat := -1, -1
	bestDist := -1.0

	for _, mID := range main {
		mn, ok := g.Node(mID)
		if !ok {
			continue
		}
		for _, fID := range floating {
			fn, ok := g.Node(fID)
			if !ok {
				continue
			}
			d := geo.HaversineMeters(mn.LatLon, fn.LatLon)
			if bestDist < 0 || d < bestDist {
				bestDist, bestMain, bestFloat = d, mID, fID
			}
		}
	}

	if bestMain == -1 {
		return false
	}

	mn, _ := g.Node(bestMain)
	fn, _ := g.Node(bestFloat)
	_, err := g.AddEdge(bestMain, bestFloat, []geo.Point{mn.Point, fn.Point}, geo.Round(bestDist, 1), nil, nil, VirtualOperatorCode, VirtualOperatorCode)
	return err == nil
}
