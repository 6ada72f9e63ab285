// Package geo provides the small set of planar and spherical geometry
// primitives the railway pipeline needs: Euclidean distance and
// point-to-segment projection in the projected (x, y) frame, and
// great-circle distance in the geographic (lon, lat) frame.
//
// There is deliberately no dependency on a geodesy library here.
// original_source/scripts/merge_nrwn_data.py hand-rolls its own
// haversine_distance rather than reaching for pyproj's geodesic
// helpers, and the formulas involved are a handful of trigonometric
// lines each — see DESIGN.md for the full reasoning.
package geo
