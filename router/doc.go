// SPDX-License-Identifier: MIT
// Package: railnet/router
//
// The Router stage: computes the shortest in-network distance between
// two already-snapped settlements and reconstructs the polyline
// geometry of the route for rendering.
//
// Route never returns an error for a single bad pair — every failure
// surface (absent snap, unreachable target, empty geometry) is folded
// into the returned Result's Quality field instead, per the pipeline's
// per-pair error-handling contract.
//
// g must have had BuildAdjacency called at least once before any call
// that needs the Dijkstra fallback (the "disjoint" distance branch and
// geometry case 4); RouteAll does this once for its whole batch.
package router
