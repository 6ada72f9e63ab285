// SPDX-License-Identifier: MIT
//
// Package spatialgrid provides two small utilities: a coarse coordinate
// quantization grid used by the Network Builder's Pass-1 junction
// detection, and a generic connected-components walk (a BFS flood fill)
// over an abstract node-id graph, used by the Merger to find floating
// subgraphs that never touch the main network.
//
// Both borrow from lvlath/gridgraph, which walks a dense 2D array of
// cell values looking for contiguous regions of equal value ≥ a
// threshold. JunctionGrid keeps only the idea of cells, as sparse
// buckets keyed by (floor(x/cellSize), floor(y/cellSize)); it runs no
// BFS. ConnectedComponents keeps the BFS walk and replaces the 2D array
// with a caller-supplied neighbor function over integer ids.
package spatialgrid
