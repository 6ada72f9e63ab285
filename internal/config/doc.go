// SPDX-License-Identifier: MIT
//
// Package config holds the single immutable configuration value threaded
// through every pipeline stage: the geographic/projected coordinate
// projection, the region-of-interest rectangle, the distance tolerances
// that drive junction detection, node reuse, chain merging, and snap
// quality, and the operator alias table.
//
// A Config is built once, at stage entry, via functional options and
// never mutated afterward (lvlath/builder's builderConfig pattern,
// generalized from graph-construction knobs to pipeline tolerances).
package config
