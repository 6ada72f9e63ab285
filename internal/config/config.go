// SPDX-License-Identifier: MIT
package config

import "github.com/jjax07/sk-railway-network/internal/geo"

// Config is the single immutable value every pipeline stage resolves
// once at entry and then passes by reference. Nothing in the pipeline
// mutates a Config after New returns it.
type Config struct {
	// Projection converts between the geographic (lon, lat) frame and
	// the projected (x, y) frame. There is no default: the caller must
	// supply one via WithProjection, since the pipeline never derives
	// a projection on its own (spec.md §1 Non-goals).
	Projection geo.Projection

	// AcceptRegion is the geographic rectangle a polyline's bounding
	// box must intersect (after inverse-projection of its corners) to
	// be accepted by the Network Builder.
	AcceptRegion geo.Rect

	// JunctionGridSize is the Pass-1 grid cell size, in projected-frame
	// meters, used to detect vertices shared by two or more source
	// polylines.
	JunctionGridSize float64

	// SnapTolerance is the maximum projected-frame distance, in meters,
	// within which a segment endpoint reuses an existing node instead
	// of creating a new one.
	SnapTolerance float64

	// MergeTolerance is the maximum great-circle distance, in meters,
	// within which two chain endpoints are stitched together.
	MergeTolerance float64

	// JunctionTolerance is the maximum great-circle distance, in
	// meters, within which a merged chain endpoint reuses an existing
	// graph node instead of allocating a new one.
	JunctionTolerance float64

	// OnNetworkKm, NearNetworkKm and DistantKm are the settlement snap
	// quality thresholds, in kilometers. A snap distance beyond
	// DistantKm is classified off_network.
	OnNetworkKm   float64
	NearNetworkKm float64
	DistantKm     float64

	// OperatorAliases maps raw operator codes to human-readable
	// builder names. A code absent from the table passes through
	// unchanged.
	OperatorAliases map[string]string

	// AcceptClassifications is the set of merger-input classification
	// strings (e.g. "Main", "Siding") that are consumed; all others are
	// skipped.
	AcceptClassifications map[string]struct{}

	// AcceptOperators is the set of operator codes the merger
	// consumes; all others are skipped. A nil or empty set means
	// accept every operator.
	AcceptOperators map[string]struct{}
}

// Option customizes a Config before the pipeline resolves it. Option
// constructors validate their argument and, when it is meaningless,
// silently leave the previous value in place rather than panicking or
// erroring — the pipeline favors deterministic defaults over startup
// failure for a malformed tuning knob.
type Option func(*Config)

// New builds a Config from defaults, then applies each Option in
// order; later options override earlier ones.
//
// Defaults mirror spec.md's stated values: a 10m junction grid, a 500m
// snap tolerance, a 100m merge tolerance, a 500m cross-dataset junction
// tolerance, and on/near/distant settlement thresholds of 5/15/50 km.
func New(opts ...Option) *Config {
	cfg := &Config{
		JunctionGridSize:      10,
		SnapTolerance:         500,
		MergeTolerance:        100,
		JunctionTolerance:     500,
		OnNetworkKm:           5,
		NearNetworkKm:         15,
		DistantKm:             50,
		OperatorAliases:       map[string]string{},
		AcceptClassifications: map[string]struct{}{"Main": {}, "Siding": {}},
		AcceptOperators:       map[string]struct{}{},
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}
