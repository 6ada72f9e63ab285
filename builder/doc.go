// SPDX-License-Identifier: MIT
// Package: railnet/builder
//
// builder.go and friends — the Network Builder stage.
//
// Design contract (strict):
//   - One orchestrator: Build(cfg, polylines). Filters, detects junctions in
//     two passes, resolves nodes and edges, and returns the resulting
//     network.Graph (which the Merger may still extend in place).
//   - Determinism: same polyline order and same cfg ⇒ identical graph.
//   - Safety: never panic; per-record failures increment a Stats counter and
//     are skipped, per spec's failure-semantics rule.
package builder
