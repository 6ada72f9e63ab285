// SPDX-License-Identifier: MIT
package router

import (
	"github.com/jjax07/sk-railway-network/dijkstra"
	"github.com/jjax07/sk-railway-network/internal/config"
	"github.com/jjax07/sk-railway-network/internal/geo"
	"github.com/jjax07/sk-railway-network/network"
	"github.com/jjax07/sk-railway-network/snapper"
)

// buildGeometry tries the five reconstruction cases in order, a
// faithful Go port of original_source/scripts/verify_railway_routes.py's
// get_path_geometry/extend_path_to_edge. Cases 2 and 3 ("shared node,
// different edges" and "shared node, one or both node-only snaps")
// share one implementation below (sharedNodeGeometry): both reduce to
// "build a slice from each settlement to the shared node, straight-line
// for a node snap or along the edge polyline for an edge snap."
func buildGeometry(cfg *config.Config, g *network.Graph, a, b snapper.SnapRecord, reachable bool) []geo.Point {
	if geom, ok := sameEdgeGeometry(cfg, g, a, b); ok {
		return geom
	}
	if geom, ok := sharedNodeGeometry(cfg, g, a, b); ok {
		return geom
	}
	if !reachable {
		return nil
	}
	geom, ok := dijkstraPathGeometry(g, a, b)
	if !ok {
		return nil
	}
	geom = extendEdgeSnap(cfg, g, a, geom, true)
	geom = extendEdgeSnap(cfg, g, b, geom, false)
	return geom
}

func project(cfg *config.Config, lat, lon float64) geo.Point {
	x, y := cfg.Projection.Forward(lat, lon)
	return geo.Point{X: x, Y: y}
}

func closestVertexIndex(points []geo.Point, p geo.Point) int {
	best, bestDist := 0, geo.EuclideanDistance(p, points[0])
	for i, pt := range points[1:] {
		d := geo.EuclideanDistance(p, pt)
		if d < bestDist {
			best, bestDist = i+1, d
		}
	}
	return best
}

func reversedPoints(points []geo.Point) []geo.Point {
	out := make([]geo.Point, len(points))
	for i, p := range points {
		out[len(points)-1-i] = p
	}
	return out
}

// sameEdgeGeometry is case 1: both settlements snap to the same edge.
func sameEdgeGeometry(cfg *config.Config, g *network.Graph, a, b snapper.SnapRecord) ([]geo.Point, bool) {
	if a.Type != snapper.SnapEdge || b.Type != snapper.SnapEdge || a.EdgeID != b.EdgeID {
		return nil, false
	}
	e, ok := g.Edge(a.EdgeID)
	if !ok {
		return nil, false
	}

	pa := project(cfg, a.Lat, a.Lon)
	pb := project(cfg, b.Lat, b.Lon)
	ia := closestVertexIndex(e.Points, pa)
	ib := closestVertexIndex(e.Points, pb)

	lo, hi, reverse := ia, ib, false
	if ia > ib {
		lo, hi, reverse = ib, ia, true
	}
	slice := append([]geo.Point{}, e.Points[lo:hi+1]...)
	if reverse {
		slice = reversedPoints(slice)
	}
	if len(slice) == 1 {
		slice = []geo.Point{pa, slice[0], pb}
	}
	return slice, true
}

// sliceTowardNode returns e's points ordered from vertexIdx toward
// node, i.e. node is the last element.
func sliceTowardNode(e network.Edge, vertexIdx int, node int) []geo.Point {
	if e.U == node {
		return reversedPoints(e.Points[:vertexIdx+1])
	}
	return append([]geo.Point{}, e.Points[vertexIdx:]...)
}

// sliceFromNode returns e's points ordered from node toward vertexIdx,
// i.e. node is the first element.
func sliceFromNode(e network.Edge, vertexIdx int, node int) []geo.Point {
	if e.U == node {
		return append([]geo.Point{}, e.Points[:vertexIdx+1]...)
	}
	return reversedPoints(e.Points[vertexIdx:])
}

func findSharedNode(a, b snapper.SnapRecord) (int, bool) {
	for _, na := range a.Nodes {
		for _, nb := range b.Nodes {
			if na == nb {
				return na, true
			}
		}
	}
	return 0, false
}

// sideToSharedNode builds the settlement->sharedNode side: the edge
// slice if rec is an edge snap, else a straight two-point segment.
func sideToSharedNode(cfg *config.Config, g *network.Graph, rec snapper.SnapRecord, shared int) []geo.Point {
	p := project(cfg, rec.Lat, rec.Lon)
	if rec.Type != snapper.SnapEdge {
		node, _ := g.Node(shared)
		return []geo.Point{p, node.Point}
	}
	e, _ := g.Edge(rec.EdgeID)
	idx := closestVertexIndex(e.Points, p)
	return sliceTowardNode(e, idx, shared)
}

// sideFromSharedNode builds the sharedNode->settlement side.
func sideFromSharedNode(cfg *config.Config, g *network.Graph, rec snapper.SnapRecord, shared int) []geo.Point {
	p := project(cfg, rec.Lat, rec.Lon)
	if rec.Type != snapper.SnapEdge {
		node, _ := g.Node(shared)
		return []geo.Point{node.Point, p}
	}
	e, _ := g.Edge(rec.EdgeID)
	idx := closestVertexIndex(e.Points, p)
	return sliceFromNode(e, idx, shared)
}

// sharedNodeGeometry is cases 2 and 3 combined: a and b's snap nodes
// share a common node that isn't a common edge (sameEdgeGeometry
// already handles that). Same-edge pairs are excluded first so this
// only fires for different edges (case 2) or any node-snap
// combination (case 3).
func sharedNodeGeometry(cfg *config.Config, g *network.Graph, a, b snapper.SnapRecord) ([]geo.Point, bool) {
	if a.Type == snapper.SnapEdge && b.Type == snapper.SnapEdge && a.EdgeID == b.EdgeID {
		return nil, false
	}
	shared, ok := findSharedNode(a, b)
	if !ok {
		return nil, false
	}

	from := sideToSharedNode(cfg, g, a, shared)
	to := sideFromSharedNode(cfg, g, b, shared)
	if len(from) == 0 || len(to) == 0 {
		return nil, false
	}
	geometry := append(append([]geo.Point{}, from...), to[1:]...)
	return geometry, true
}

func taxicab(p, q geo.Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// dijkstraPathGeometry is case 4: the concatenated polylines of every
// edge along the shortest path, each oriented to follow the running
// chain by comparing its endpoints' taxicab distance to the chain's
// current tail, the same discrete orientation test used by the ported
// script (the graph's own U/V bookkeeping is intentionally not relied
// on here, since the original could not assume it either).
func dijkstraPathGeometry(g *network.Graph, a, b snapper.SnapRecord) ([]geo.Point, bool) {
	_, prev, err := dijkstra.Dijkstra(g, dijkstra.WithSource(a.PrimaryNode()), dijkstra.WithReturnPath())
	if err != nil {
		return nil, false
	}

	var backward []int
	cur := b.PrimaryNode()
	for {
		backward = append(backward, cur)
		if cur == a.PrimaryNode() {
			break
		}
		next, ok := prev[cur]
		if !ok || next == -1 {
			return nil, false
		}
		cur = next
	}

	path := make([]int, len(backward))
	for i, v := range backward {
		path[len(backward)-1-i] = v
	}
	if len(path) < 2 {
		return nil, false
	}

	var chain []geo.Point
	for i := 0; i+1 < len(path); i++ {
		u, v := path[i], path[i+1]
		eid, ok := g.FindEdge(u, v)
		if !ok {
			return nil, false
		}
		e, _ := g.Edge(eid)
		pts := append([]geo.Point{}, e.Points...)
		if len(pts) == 0 {
			continue
		}

		var anchor geo.Point
		if len(chain) == 0 {
			uNode, _ := g.Node(u)
			anchor = uNode.Point
		} else {
			anchor = chain[len(chain)-1]
		}
		if taxicab(pts[len(pts)-1], anchor) < taxicab(pts[0], anchor) {
			pts = reversedPoints(pts)
		}

		if len(chain) > 0 && pts[0] == chain[len(chain)-1] {
			pts = pts[1:]
		}
		chain = append(chain, pts...)
	}
	return chain, len(chain) > 0
}

// extendEdgeSnap is case 5: if rec is an edge snap, optionally
// prepend (at the start, prepend=true) or append the partial-edge
// segment from rec's closest vertex on its own snap edge to the graph
// node the Dijkstra chain connects through — applied only if doing so
// strictly reduces the distance from the settlement to the nearest
// geometry vertex.
func extendEdgeSnap(cfg *config.Config, g *network.Graph, rec snapper.SnapRecord, chain []geo.Point, prepend bool) []geo.Point {
	if rec.Type != snapper.SnapEdge || len(chain) == 0 {
		return chain
	}
	e, ok := g.Edge(rec.EdgeID)
	if !ok {
		return chain
	}

	p := project(cfg, rec.Lat, rec.Lon)
	nearestDist := geo.EuclideanDistance(p, chain[0])
	for _, pt := range chain {
		if d := geo.EuclideanDistance(p, pt); d < nearestDist {
			nearestDist = d
		}
	}

	connectingNode := rec.PrimaryNode()
	idx := closestVertexIndex(e.Points, p)

	var ext []geo.Point
	if prepend {
		ext = sliceTowardNode(e, idx, connectingNode)
	} else {
		ext = sliceFromNode(e, idx, connectingNode)
	}
	if len(ext) == 0 {
		return chain
	}

	var settlementEnd geo.Point
	if prepend {
		settlementEnd = ext[0]
	} else {
		settlementEnd = ext[len(ext)-1]
	}
	candidateDist := geo.EuclideanDistance(p, settlementEnd)
	if candidateDist >= nearestDist {
		return chain
	}

	if prepend {
		return append(ext[:len(ext)-1], chain...)
	}
	return append(chain, ext[1:]...)
}
