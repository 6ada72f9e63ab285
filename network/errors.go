// SPDX-License-Identifier: MIT
package network

import "errors"

// ErrNodeNotFound indicates an operation referenced a node id outside
// [0, NodeCount()).
var ErrNodeNotFound = errors.New("network: node not found")

// ErrSelfLoop indicates AddEdge was asked to connect a node to itself.
// Callers (builder, merger) are expected to check for this and bump a
// discard counter rather than treat it as a hard failure.
var ErrSelfLoop = errors.New("network: self-loop edge")

// ErrAdjacencyNotBuilt indicates AdjacentEdges was called before
// BuildAdjacency.
var ErrAdjacencyNotBuilt = errors.New("network: adjacency not built")
