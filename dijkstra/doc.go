// Package dijkstra computes shortest physical-track distances between
// nodes of a network.Graph, in kilometers, using each edge's
// length_m/1000 as its weight.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost distance from a single source
//     node to every reachable node in O((V + E) log V) time.
//   - A min-heap (priority queue) always expands the next-closest node.
//   - Path reconstruction, a distance cap, and an "impassable edge"
//     threshold are all optional, toggled with functional options.
//
// Implementation choices carried over unchanged from the graph-library
// form this package adapts:
//
//   - An upfront scan of all edges (O(E)) detects negative weights and
//     fails fast; length_m is never negative in a well-formed graph,
//     but the check stays as a defensive invariant check.
//   - A "lazy decrease-key" strategy pushes duplicate heap entries and
//     ignores stale ones once a node is finalized, rather than
//     supporting an explicit decrease-key operation.
//   - Edges with weight ≥ InfEdgeThreshold are treated as impassable
//     walls; exploration stops once the heap's minimum distance
//     exceeds MaxDistance.
package dijkstra
