// SPDX-License-Identifier: MIT
package ingest

import "github.com/jjax07/sk-railway-network/internal/geo"

// PolylineBBox is a polyline's bounding box in the projected frame,
// used by the Network Builder to filter by geographic region (after
// inverse-projecting its corners).
type PolylineBBox struct {
	MinX, MinY, MaxX, MaxY float64
}

// PolylineAttrs carries the attributes that propagate unchanged from a
// source polyline to every segment split from it.
type PolylineAttrs struct {
	LengthM       float64
	BuiltYear     *int
	AbandonedYear *int
	OperatorCode  string
}

// PolylineRecord is one record of the Network Builder's inbound
// polyline iterator (spec.md §6): a bounding box, a projected-frame
// point sequence, and its attributes. BBox is a pointer so a "null
// bbox" source record — one of the degenerate inputs spec.md §4.1
// calls out for a silent skip — survives the trip through JSON as nil
// rather than as an indistinguishable zero-value box.
type PolylineRecord struct {
	BBox   *PolylineBBox
	Points []geo.Point
	Attrs  PolylineAttrs
}

// MergerPolylineRecord is one record of the Merger's inbound polyline
// iterator: operator, subdivision, a classification used to filter
// against a configured accept-set, and a geographic-frame coordinate
// sequence.
type MergerPolylineRecord struct {
	Operator       string
	Subdivision    string
	Classification string
	Coordinates    []geo.LatLon
}

// SettlementRecord is one row of the inbound settlement table.
// Settlement Name is the primary key and must be unique within a
// table — DecodeSettlementRecords enforces this.
type SettlementRecord struct {
	Name           string
	Lat            float64
	Lon            float64
	FirstRailway   *string
	RailwayArrives *int
}
