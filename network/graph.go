// SPDX-License-Identifier: MIT
package network

import (
	"sync"

	"github.com/jjax07/sk-railway-network/internal/geo"
)

// Graph is the dense id-indexed node/edge store. Node and edge
// mutation is guarded by separate locks, following lvlath/core's
// "one mutex per concern" discipline: no operation mutates node
// storage and edge storage together.
type Graph struct {
	muNodes sync.RWMutex
	muEdges sync.RWMutex

	nodes []Node
	edges []Edge

	adjacency [][]int // node id -> incident edge ids; nil until BuildAdjacency
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{}
}

// AddNode appends a new node and returns its id.
// Complexity: O(1) amortized.
func (g *Graph) AddNode(p geo.Point, ll geo.LatLon) int {
	g.muNodes.Lock()
	defer g.muNodes.Unlock()

	id := len(g.nodes)
	g.nodes = append(g.nodes, Node{ID: id, Point: p, LatLon: ll})
	return id
}

// Node returns the node with the given id.
// Complexity: O(1).
func (g *Graph) Node(id int) (Node, bool) {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()

	if id < 0 || id >= len(g.nodes) {
		return Node{}, false
	}
	return g.nodes[id], true
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()
	return len(g.nodes)
}

// Nodes returns a copy of every node, ordered by id.
// Complexity: O(V).
func (g *Graph) Nodes() []Node {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()

	out := make([]Node, len(g.nodes))
	copy(out, g.nodes)
	return out
}

// AddEdge appends a new edge between existing nodes u and v and
// returns its id. It rejects out-of-range node ids with
// ErrNodeNotFound and self-loops with ErrSelfLoop; callers are
// expected to count and skip both rather than treat them as fatal.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int, points []geo.Point, lengthM float64, builtYear, abandonedYear *int, builderCode, builderName string) (int, error) {
	if u < 0 || u >= g.NodeCount() || v < 0 || v >= g.NodeCount() {
		return 0, ErrNodeNotFound
	}
	if u == v {
		return 0, ErrSelfLoop
	}

	g.muEdges.Lock()
	defer g.muEdges.Unlock()

	id := len(g.edges)
	g.edges = append(g.edges, Edge{
		ID:            id,
		U:             u,
		V:             v,
		Points:        points,
		LengthM:       lengthM,
		BuiltYear:     builtYear,
		AbandonedYear: abandonedYear,
		BuilderCode:   builderCode,
		BuilderName:   builderName,
	})
	g.adjacency = nil
	return id, nil
}

// Edge returns the edge with the given id.
func (g *Graph) Edge(id int) (Edge, bool) {
	g.muEdges.RLock()
	defer g.muEdges.RUnlock()

	if id < 0 || id >= len(g.edges) {
		return Edge{}, false
	}
	return g.edges[id], true
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.muEdges.RLock()
	defer g.muEdges.RUnlock()
	return len(g.edges)
}

// Edges returns a copy of every edge, ordered by id.
func (g *Graph) Edges() []Edge {
	g.muEdges.RLock()
	defer g.muEdges.RUnlock()

	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// FindEdge reports the id of an existing edge between u and v
// (direction-agnostic) if one exists, for the Builder/Merger's
// duplicate-edge collapse. When more than one exists, the
// lowest-id (earliest-inserted) match is returned.
// Complexity: O(deg(u)) once BuildAdjacency has run, else O(E).
func (g *Graph) FindEdge(u, v int) (int, bool) {
	g.muEdges.RLock()
	defer g.muEdges.RUnlock()

	if g.adjacency != nil && u >= 0 && u < len(g.adjacency) {
		for _, eid := range g.adjacency[u] {
			e := g.edges[eid]
			if (e.U == u && e.V == v) || (e.U == v && e.V == u) {
				return eid, true
			}
		}
		return 0, false
	}

	for _, e := range g.edges {
		if (e.U == u && e.V == v) || (e.U == v && e.V == u) {
			return e.ID, true
		}
	}
	return 0, false
}

// RemoveEdge deletes the edge with the given id by swapping it with
// the last edge and truncating, then renumbering the moved edge's id.
// Any previously built adjacency is invalidated; callers must call
// BuildAdjacency again before using AdjacentEdges.
// Complexity: O(1).
func (g *Graph) RemoveEdge(id int) bool {
	g.muEdges.Lock()
	defer g.muEdges.Unlock()

	if id < 0 || id >= len(g.edges) {
		return false
	}

	last := len(g.edges) - 1
	g.edges[id] = g.edges[last]
	g.edges[id].ID = id
	g.edges = g.edges[:last]
	g.adjacency = nil
	return true
}

// BuildAdjacency constructs the node-id -> incident-edge-ids index
// once, after the graph has stopped growing. Routing and
// connected-component discovery both depend on it.
// Complexity: O(V + E) time, O(V + E) space.
func (g *Graph) BuildAdjacency() {
	g.muNodes.RLock()
	g.muEdges.Lock()
	defer g.muNodes.RUnlock()
	defer g.muEdges.Unlock()

	adj := make([][]int, len(g.nodes))
	for _, e := range g.edges {
		adj[e.U] = append(adj[e.U], e.ID)
		adj[e.V] = append(adj[e.V], e.ID)
	}
	g.adjacency = adj
}

// AdjacentEdges returns the ids of edges incident to node id. It
// returns ErrAdjacencyNotBuilt until BuildAdjacency has run.
func (g *Graph) AdjacentEdges(id int) ([]int, error) {
	g.muEdges.RLock()
	defer g.muEdges.RUnlock()

	if g.adjacency == nil {
		return nil, ErrAdjacencyNotBuilt
	}
	if id < 0 || id >= len(g.adjacency) {
		return nil, ErrNodeNotFound
	}
	return g.adjacency[id], nil
}
