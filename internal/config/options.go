// SPDX-License-Identifier: MIT
package config

import "github.com/jjax07/sk-railway-network/internal/geo"

// WithProjection sets the forward/inverse projection pair. A Projection
// with a nil Forward or Inverse is a no-op: the zero Config is useless
// without one, but New must still return a usable (if incomplete)
// value for tests that don't exercise projected-frame operations.
func WithProjection(p geo.Projection) Option {
	return func(c *Config) {
		if p.Forward != nil && p.Inverse != nil {
			c.Projection = p
		}
	}
}

// WithAcceptRegion sets the geographic acceptance rectangle used to
// filter incoming polylines.
func WithAcceptRegion(r geo.Rect) Option {
	return func(c *Config) {
		c.AcceptRegion = r
	}
}

// WithJunctionGridSize overrides the Pass-1 quantization cell size, in
// projected-frame meters. Non-positive values are ignored.
func WithJunctionGridSize(meters float64) Option {
	return func(c *Config) {
		if meters > 0 {
			c.JunctionGridSize = meters
		}
	}
}

// WithSnapTolerance overrides the node-reuse distance, in projected-
// frame meters. Non-positive values are ignored.
func WithSnapTolerance(meters float64) Option {
	return func(c *Config) {
		if meters > 0 {
			c.SnapTolerance = meters
		}
	}
}

// WithMergeTolerance overrides the chain-stitching distance, in
// great-circle meters. Non-positive values are ignored.
func WithMergeTolerance(meters float64) Option {
	return func(c *Config) {
		if meters > 0 {
			c.MergeTolerance = meters
		}
	}
}

// WithJunctionTolerance overrides the cross-dataset node-reuse
// distance, in great-circle meters. Non-positive values are ignored.
func WithJunctionTolerance(meters float64) Option {
	return func(c *Config) {
		if meters > 0 {
			c.JunctionTolerance = meters
		}
	}
}

// WithSnapQualityThresholds overrides the on/near/distant settlement
// snap thresholds, in kilometers. The three values are only applied
// together, and only when they form a strictly increasing sequence, so
// that a malformed call leaves the default classification order
// intact.
func WithSnapQualityThresholds(onNetworkKm, nearNetworkKm, distantKm float64) Option {
	return func(c *Config) {
		if onNetworkKm > 0 && onNetworkKm < nearNetworkKm && nearNetworkKm < distantKm {
			c.OnNetworkKm, c.NearNetworkKm, c.DistantKm = onNetworkKm, nearNetworkKm, distantKm
		}
	}
}

// WithOperatorAliases merges the given code→name table into the
// existing one; a nil map is a no-op.
func WithOperatorAliases(aliases map[string]string) Option {
	return func(c *Config) {
		for code, name := range aliases {
			c.OperatorAliases[code] = name
		}
	}
}

// WithAcceptClassifications replaces the set of merger-input
// classification strings that are consumed. An empty set is ignored,
// leaving the default {Main, Siding}.
func WithAcceptClassifications(classifications ...string) Option {
	return func(c *Config) {
		if len(classifications) == 0 {
			return
		}
		set := make(map[string]struct{}, len(classifications))
		for _, cl := range classifications {
			set[cl] = struct{}{}
		}
		c.AcceptClassifications = set
	}
}

// WithAcceptOperators restricts the merger to the given operator
// codes; an empty list means accept every operator.
func WithAcceptOperators(operators ...string) Option {
	return func(c *Config) {
		set := make(map[string]struct{}, len(operators))
		for _, op := range operators {
			set[op] = struct{}{}
		}
		c.AcceptOperators = set
	}
}
