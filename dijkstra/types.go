// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on a network.Graph.
//
// Options:
//
//	– Source:           id of the starting node (must exist in the graph).
//	– ReturnPath:       if true, return the predecessor map for path reconstruction.
//	– MaxDistance:      optional cap on distances to explore; nodes beyond this are skipped.
//	– InfEdgeThreshold: edges with weight >= this threshold are treated as impassable.
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrSourceNotFound  if the source node does not exist in the graph.
//	– ErrNegativeWeight  if a negative edge weight is detected in the graph.
//	– ErrBadMaxDistance  if MaxDistance < 0 (WithMaxDistance panics with its message).
//	– ErrBadInfThreshold if InfEdgeThreshold <= 0 (WithInfEdgeThreshold panics with its message).
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *network.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrSourceNotFound indicates that the specified source node does not exist
	// in the provided graph.
	ErrSourceNotFound = errors.New("dijkstra: source node not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all edges (including zero-weight edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures the behavior of the Dijkstra algorithm.
type Options struct {
	Source           int     // id of the source node
	ReturnPath       bool    // whether to return the predecessor map
	MaxDistance      float64 // maximum distance (km) to explore
	InfEdgeThreshold float64 // weight (km) at or above which edges are non-traversable
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithSource sets the starting node id. Must be called; the zero value
// (node 0) is a valid id, so Dijkstra cannot distinguish "unset" from
// "source is node 0" without this being mandatory at the call site.
func WithSource(id int) Option {
	return func(o *Options) {
		o.Source = id
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
// If false (default), the predecessor map is not returned (prev == nil).
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold, in kilometers.
// Nodes whose shortest distance would exceed this value are not explored.
// Must pass a non-negative value; a negative value panics with
// ErrBadMaxDistance's message when the option is applied.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold at or above which edges
// are considered non-traversable (treated as infinite weight).
// Must pass a positive value; zero or negative panics with
// ErrBadInfThreshold's message when the option is applied.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns an Options struct with no distance cap and no
// impassable-edge threshold, for the given source node id.
func DefaultOptions(source int) Options {
	return Options{
		Source:           source,
		ReturnPath:       false,
		MaxDistance:      math.MaxFloat64,
		InfEdgeThreshold: math.MaxFloat64,
	}
}
