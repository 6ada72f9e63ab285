// SPDX-License-Identifier: MIT
package merger

import (
	"github.com/jjax07/sk-railway-network/internal/geo"
	"github.com/jjax07/sk-railway-network/ingest"
)

// chain is one assembled, continuous polyline in the geographic frame,
// tagged with the operator code it was built from.
type chain struct {
	points   []geo.LatLon
	operator string
}

// assembleChains groups records by operator and stitches polylines
// that share an endpoint within mergeTolerance (great-circle meters)
// into as few continuous chains as possible per spec.md §4.2.
//
// spec.md describes two passes — grow each chain against unused raw
// segments, then join chains to chains — but both apply the identical
// endpoint-within-tolerance rule to the same pool. Running a single
// fixed-point merge loop over that pool (stopping when no pair joins)
// reaches the same final chain set without needing to distinguish
// "raw segment" from "chain" as separate pool types; spec.md's own
// design note treats the merge tolerance semantics, not the pass
// count, as the contract (§9, "Chain-merging search").
func assembleChains(records []ingest.MergerPolylineRecord, mergeTolerance float64) []chain {
	byOperator := make(map[string][]chain)
	var order []string
	for _, r := range records {
		if _, seen := byOperator[r.Operator]; !seen {
			order = append(order, r.Operator)
		}
		byOperator[r.Operator] = append(byOperator[r.Operator], chain{
			points:   append([]geo.LatLon{}, r.Coordinates...),
			operator: r.Operator,
		})
	}

	var out []chain
	for _, op := range order {
		out = append(out, mergeToFixedPoint(byOperator[op], mergeTolerance)...)
	}
	return out
}

func mergeToFixedPoint(chains []chain, tolerance float64) []chain {
	changed := true
	for changed {
		changed = false
	outer:
		for i := 0; i < len(chains); i++ {
			for j := i + 1; j < len(chains); j++ {
				if joined, ok := tryJoin(chains[i], chains[j], tolerance); ok {
					chains[i] = joined
					chains = append(chains[:j], chains[j+1:]...)
					changed = true
					break outer
				}
			}
		}
	}
	return chains
}

// tryJoin attempts to fuse b onto a's head or tail, trying all four
// endpoint-pair directions; whichever side of b doesn't already face
// the right way is reversed to fit.
func tryJoin(a, b chain, tolerance float64) (chain, bool) {
	aHead, aTail := a.points[0], a.points[len(a.points)-1]
	bHead, bTail := b.points[0], b.points[len(b.points)-1]

	switch {
	case near(aTail, bHead, tolerance):
		return chain{points: joinPoints(a.points, b.points), operator: a.operator}, true
	case near(aTail, bTail, tolerance):
		return chain{points: joinPoints(a.points, reversedLatLon(b.points)), operator: a.operator}, true
	case near(aHead, bTail, tolerance):
		return chain{points: joinPoints(b.points, a.points), operator: a.operator}, true
	case near(aHead, bHead, tolerance):
		return chain{points: joinPoints(reversedLatLon(b.points), a.points), operator: a.operator}, true
	}
	return chain{}, false
}

func near(a, b geo.LatLon, toleranceMeters float64) bool {
	return geo.HaversineMeters(a, b) <= toleranceMeters
}

func reversedLatLon(points []geo.LatLon) []geo.LatLon {
	out := make([]geo.LatLon, len(points))
	for i, p := range points {
		out[len(points)-1-i] = p
	}
	return out
}

// joinPoints concatenates head then tail, eliding tail's first point
// when it exactly coincides with head's last point, to prevent a
// zero-length sub-segment at the join (spec.md §4.2).
func joinPoints(head, tail []geo.LatLon) []geo.LatLon {
	if len(tail) > 0 && head[len(head)-1] == tail[0] {
		tail = tail[1:]
	}
	out := make([]geo.LatLon, 0, len(head)+len(tail))
	out = append(out, head...)
	out = append(out, tail...)
	return out
}
