// SPDX-License-Identifier: MIT
package ingest

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jjax07/sk-railway-network/internal/geo"
)

type polylineWire struct {
	BBox   *[4]float64  `json:"bbox"`
	Points [][2]float64 `json:"points"`
	Attrs  struct {
		Length        float64 `json:"length"`
		BuiltYear     *int    `json:"built_year"`
		AbandonedYear *int    `json:"abandoned_year"`
		OperatorCode  string  `json:"operator_code"`
	} `json:"attrs"`
}

// DecodePolylineRecords reads the Network Builder's inbound polyline
// iterator input from r: a JSON array of
// {bbox, points, attrs: {length, built_year, abandoned_year, operator_code}}
// records. A malformed document is an input error and fails the whole
// stage; DecodePolylineRecords does not skip individual bad records.
func DecodePolylineRecords(r io.Reader) ([]PolylineRecord, error) {
	var wire []polylineWire
	if err := json.NewDecoder(r).Decode(&wire); err != nil {
		return nil, fmt.Errorf("ingest: decode polyline records: %w", err)
	}

	out := make([]PolylineRecord, len(wire))
	for i, w := range wire {
		pts := make([]geo.Point, len(w.Points))
		for j, p := range w.Points {
			pts[j] = geo.Point{X: p[0], Y: p[1]}
		}

		var bbox *PolylineBBox
		if w.BBox != nil {
			bbox = &PolylineBBox{
				MinX: w.BBox[0], MinY: w.BBox[1],
				MaxX: w.BBox[2], MaxY: w.BBox[3],
			}
		}

		out[i] = PolylineRecord{
			BBox:   bbox,
			Points: pts,
			Attrs: PolylineAttrs{
				LengthM:       w.Attrs.Length,
				BuiltYear:     w.Attrs.BuiltYear,
				AbandonedYear: w.Attrs.AbandonedYear,
				OperatorCode:  w.Attrs.OperatorCode,
			},
		}
	}
	return out, nil
}

type mergerPolylineWire struct {
	Operator       string      `json:"operator"`
	Subdivision    string      `json:"subdivision"`
	Classification string      `json:"classification"`
	Coordinates    [][2]float64 `json:"coordinates"`
}

// DecodeMergerPolylineRecords reads the Merger's inbound polyline
// iterator input from r: a JSON array of
// {operator, subdivision, classification, coordinates: [[lon, lat], ...]}
// records.
func DecodeMergerPolylineRecords(r io.Reader) ([]MergerPolylineRecord, error) {
	var wire []mergerPolylineWire
	if err := json.NewDecoder(r).Decode(&wire); err != nil {
		return nil, fmt.Errorf("ingest: decode merger polyline records: %w", err)
	}

	out := make([]MergerPolylineRecord, len(wire))
	for i, w := range wire {
		coords := make([]geo.LatLon, len(w.Coordinates))
		for j, c := range w.Coordinates {
			coords[j] = geo.LatLon{Lon: c[0], Lat: c[1]}
		}
		out[i] = MergerPolylineRecord{
			Operator:       w.Operator,
			Subdivision:    w.Subdivision,
			Classification: w.Classification,
			Coordinates:    coords,
		}
	}
	return out, nil
}

type settlementWire struct {
	Name           string  `json:"name"`
	Lat            float64 `json:"lat"`
	Lon            float64 `json:"lon"`
	FirstRailway   *string `json:"first_railway"`
	RailwayArrives *int    `json:"railway_arrives"`
}

// DecodeSettlementRecords reads the inbound settlement table from r: a
// JSON array of {name, lat, lon, first_railway?, railway_arrives?}
// records. Returns ErrDuplicateSettlementName (wrapped with the
// offending name) if the same name appears twice.
func DecodeSettlementRecords(r io.Reader) ([]SettlementRecord, error) {
	var wire []settlementWire
	if err := json.NewDecoder(r).Decode(&wire); err != nil {
		return nil, fmt.Errorf("ingest: decode settlement records: %w", err)
	}

	seen := make(map[string]struct{}, len(wire))
	out := make([]SettlementRecord, len(wire))
	for i, w := range wire {
		if _, dup := seen[w.Name]; dup {
			return nil, fmt.Errorf("ingest: %q: %w", w.Name, ErrDuplicateSettlementName)
		}
		seen[w.Name] = struct{}{}

		out[i] = SettlementRecord{
			Name:           w.Name,
			Lat:            w.Lat,
			Lon:            w.Lon,
			FirstRailway:   w.FirstRailway,
			RailwayArrives: w.RailwayArrives,
		}
	}
	return out, nil
}
