// Package dijkstra implements Dijkstra's shortest-path algorithm on a
// network.Graph. It processes nodes in order of increasing distance
// using a min-heap priority queue, relaxing edges and updating
// distances accordingly.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
//
// Notes on implementation choices:
//
//   - An upfront scan of all edges (O(E)) detects negative weights and fails fast.
//   - Any edge with weight ≥ InfEdgeThreshold is an impassable "wall".
//   - Exploration stops once the minimum distance in the heap exceeds MaxDistance.
//   - A "lazy" decrease-key strategy pushes duplicates into the heap and ignores stale entries.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/jjax07/sk-railway-network/network"
)

// Dijkstra computes shortest distances, in kilometers, from the source
// node (Options.Source) to every other node in g, using each edge's
// length_m/1000 as its weight. g must already have adjacency built
// (network.Graph.BuildAdjacency).
//
// Returns:
//
//   - dist: id → minimum distance in km (math.MaxFloat64 if unreachable).
//   - prev: optional predecessor map if ReturnPath=true (nil otherwise);
//     prev[v] == u means the shortest path to v goes through u.
//     Unreachable or source nodes map to -1.
//   - err: error if inputs are invalid or a negative weight is detected.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Dijkstra(g *network.Graph, opts ...Option) (map[int]float64, map[int]int, error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}

	cfg := DefaultOptions(0)
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Source < 0 || cfg.Source >= g.NodeCount() {
		return nil, nil, ErrSourceNotFound
	}

	for _, e := range g.Edges() {
		if e.LengthM < 0 {
			return nil, nil, fmt.Errorf("%w: edge %d→%d length_m=%g", ErrNegativeWeight, e.U, e.V, e.LengthM)
		}
	}

	n := g.NodeCount()
	dist := make(map[int]float64, n)

	var prev map[int]int
	if cfg.ReturnPath {
		prev = make(map[int]int, n)
	}

	r := &runner{
		g:       g,
		options: cfg,
		dist:    dist,
		prev:    prev,
		visited: make([]bool, n),
	}

	r.init()
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *network.Graph // the input graph; read-only within Dijkstra
	options Options
	dist    map[int]float64 // node id -> current best distance from Source
	prev    map[int]int     // node id -> predecessor on the shortest path
	visited []bool          // whether a node's distance is finalized
	pq      nodePQ          // min-heap of *nodeItem for the lazy priority queue
}

// init sets up initial distances and pushes Source=0 into the heap.
func (r *runner) init() {
	for id := 0; id < len(r.visited); id++ {
		r.dist[id] = math.MaxFloat64
		if r.prev != nil {
			r.prev[id] = -1
		}
	}
	r.dist[r.options.Source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process repeatedly extracts the node with the minimum distance from
// the source and relaxes its incident edges.
func (r *runner) process() error {
	cfg := r.options
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u, d := item.id, item.dist

		if r.visited[u] {
			continue
		}
		if d > cfg.MaxDistance {
			break
		}
		r.visited[u] = true

		if err := r.relax(u); err != nil {
			return err
		}
	}
	return nil
}

// relax examines each edge incident to node u and attempts to improve
// distances to its neighbors.
func (r *runner) relax(u int) error {
	edgeIDs, err := r.g.AdjacentEdges(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of node %d: %w", u, err)
	}

	for _, eid := range edgeIDs {
		e, ok := r.g.Edge(eid)
		if !ok {
			continue
		}
		v := e.V
		if v == u {
			v = e.U
		}
		w := e.LengthKm()

		if w >= r.options.InfEdgeThreshold {
			continue
		}
		if w < 0 {
			return fmt.Errorf("%w: edge %d→%d weight=%g", ErrNegativeWeight, u, v, w)
		}

		newDist := r.dist[u] + w
		if newDist > r.options.MaxDistance {
			continue
		}
		if newDist >= r.dist[v] {
			continue
		}

		r.dist[v] = newDist
		if r.prev != nil {
			r.prev[v] = u
		}
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}

	return nil
}

// nodeItem represents a node and its current distance from the source.
type nodeItem struct {
	id   int
	dist float64
}

// nodePQ is a min-heap of *nodeItem, ordered by dist ascending, using
// the lazy-decrease-key approach: a shorter distance to an existing
// node pushes a new entry rather than mutating the old one; the stale
// entry is skipped when popped (checked via runner.visited).
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
