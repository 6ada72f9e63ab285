// SPDX-License-Identifier: MIT
//
// Package artifacts serializes the pipeline's four persisted artifacts
// (spec.md §6) to and from human-readable, pretty-printed (2-space
// indent) JSON: railway_network, railway_tracks,
// settlement_network_mapping, and settlement_connections.
//
// Every artifact type here is a plain, JSON-tagged struct; building one
// from a network.Graph or a []snapper.SnapRecord never mutates its
// input. railway_network, railway_tracks and settlement_network_mapping
// are read back by later stages (LoadGraph, MappingRecord.ToSnapRecord).
// settlement_connections is the one artifact the pipeline does not
// produce itself: it is read in (produced upstream by an external
// collaborator, per SPEC_FULL.md's recovered generate_connections.py
// feature), has
// railway_distance_km filled in per connection by the Router stage,
// and is written back out — ported from
// original_source/scripts/calculate_railway_distances.py, which does
// the same in-place update.
package artifacts
