// SPDX-License-Identifier: MIT
// Package: railnet/snapper
//
// The Settlement Snapper stage: associates each settlement with the
// nearest element of a frozen network.Graph, either an existing node
// or a point on an edge interior, and classifies the proximity.
//
// Known, preserved source of error: the nearest-edge search measures
// the perpendicular distance to the straight segment between an
// edge's two node positions, never along the edge's true recorded
// polyline. Long curved edges can therefore be under- or
// over-favored relative to a settlement that actually sits closest to
// a bend in the middle of the edge. This mirrors
// original_source/scripts/snap_settlements_to_network.py's own
// reconstruction, which snaps against the same straight line.
package snapper
