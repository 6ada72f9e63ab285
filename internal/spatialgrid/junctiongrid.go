// SPDX-License-Identifier: MIT
package spatialgrid

import (
	"math"

	"github.com/jjax07/sk-railway-network/internal/geo"
)

// cellKey identifies one quantization cell.
type cellKey struct {
	gx int64
	gy int64
}

type cellHits struct {
	polylines      map[int]struct{}
	representative geo.Point
}

// JunctionGrid quantizes projected-frame points into cellSize x
// cellSize cells and flags any cell touched by two or more distinct
// source polylines as a junction — the Network Builder's Pass 1.
type JunctionGrid struct {
	cellSize float64
	cells    map[cellKey]*cellHits
}

// NewJunctionGrid returns an empty grid with the given cell size, in
// projected-frame meters. cellSize must be positive.
func NewJunctionGrid(cellSize float64) *JunctionGrid {
	return &JunctionGrid{
		cellSize: cellSize,
		cells:    make(map[cellKey]*cellHits),
	}
}

func (g *JunctionGrid) key(p geo.Point) cellKey {
	return cellKey{
		gx: int64(math.Floor(p.X / g.cellSize)),
		gy: int64(math.Floor(p.Y / g.cellSize)),
	}
}

// Add records that polylineID has a vertex at p. The first point ever
// recorded for a cell becomes that cell's representative location,
// matching the "first original vertex that mapped into the cell" rule.
func (g *JunctionGrid) Add(polylineID int, p geo.Point) {
	k := g.key(p)
	hits, ok := g.cells[k]
	if !ok {
		hits = &cellHits{polylines: map[int]struct{}{}, representative: p}
		g.cells[k] = hits
	}
	hits.polylines[polylineID] = struct{}{}
}

// Junctions returns the representative point of every cell touched by
// two or more distinct polylines.
func (g *JunctionGrid) Junctions() []geo.Point {
	var out []geo.Point
	for _, hits := range g.cells {
		if len(hits.polylines) >= 2 {
			out = append(out, hits.representative)
		}
	}
	return out
}

// NearJunction reports whether p lies within tolerance (projected-
// frame meters, Euclidean) of any junction point, and if so returns
// that point. Pass 2 uses this to decide whether an interior vertex
// splits its polyline.
func NearJunction(junctions []geo.Point, p geo.Point, tolerance float64) (geo.Point, bool) {
	for _, j := range junctions {
		if geo.EuclideanDistance(p, j) <= tolerance {
			return j, true
		}
	}
	return geo.Point{}, false
}
