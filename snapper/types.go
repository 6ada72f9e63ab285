// SPDX-License-Identifier: MIT
package snapper

// SnapType reports whether a settlement snapped to an existing node or
// to a point on an edge interior.
type SnapType string

const (
	SnapNode SnapType = "node"
	SnapEdge SnapType = "edge"
)

// SnapQuality classifies a settlement's proximity to the network.
type SnapQuality string

const (
	OnNetwork   SnapQuality = "on_network"
	NearNetwork SnapQuality = "near_network"
	Distant     SnapQuality = "distant"
	OffNetwork  SnapQuality = "off_network"
)

// SnapRecord is the outcome of snapping one settlement to the graph
// (spec.md §3). Nodes holds one element for a node snap, two for an
// edge snap; the primary node — the one the Router anchors
// same-node/same-edge comparisons on — is always Nodes[0]. For an
// edge snap, Nodes[0] is the edge's U endpoint and Nodes[1] its V
// endpoint, in the orientation the edge was created with.
type SnapRecord struct {
	Settlement   string
	Lat          float64
	Lon          float64
	Type         SnapType
	Nodes        []int
	EdgeID       int // valid only when Type == SnapEdge
	EdgeT        *float64
	EdgeLengthKm *float64
	DistanceM    float64
	Quality      SnapQuality
}

// PrimaryNode returns the node id the Router treats as this
// settlement's anchor.
func (s SnapRecord) PrimaryNode() int {
	return s.Nodes[0]
}
