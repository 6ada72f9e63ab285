package spatialgrid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jjax07/sk-railway-network/internal/geo"
	"github.com/jjax07/sk-railway-network/internal/spatialgrid"
)

func TestJunctionGrid_FlagsSharedCell(t *testing.T) {
	g := spatialgrid.NewJunctionGrid(10)

	// Two distinct polylines touch the same cell near (100, 200).
	g.Add(1, geo.Point{X: 100, Y: 200})
	g.Add(2, geo.Point{X: 103, Y: 204})
	// A third polyline vertex far away never becomes a junction alone.
	g.Add(3, geo.Point{X: 1000, Y: 1000})

	junctions := g.Junctions()
	assert.Len(t, junctions, 1)
	assert.Equal(t, geo.Point{X: 100, Y: 200}, junctions[0], "representative is the first vertex mapped into the cell")
}

func TestJunctionGrid_SamePolylineTwiceDoesNotJunction(t *testing.T) {
	g := spatialgrid.NewJunctionGrid(10)
	g.Add(1, geo.Point{X: 0, Y: 0})
	g.Add(1, geo.Point{X: 1, Y: 1})

	assert.Empty(t, g.Junctions())
}

func TestNearJunction(t *testing.T) {
	junctions := []geo.Point{{X: 0, Y: 0}, {X: 1000, Y: 1000}}

	pt, ok := spatialgrid.NearJunction(junctions, geo.Point{X: 5, Y: 5}, 10)
	assert.True(t, ok)
	assert.Equal(t, geo.Point{X: 0, Y: 0}, pt)

	_, ok = spatialgrid.NearJunction(junctions, geo.Point{X: 500, Y: 500}, 10)
	assert.False(t, ok)
}

func TestConnectedComponents_SplitsFloatingSubgraph(t *testing.T) {
	// 0-1-2 is one component; 3-4 is a floating pair; 5 is isolated.
	adj := map[int][]int{
		0: {1},
		1: {0, 2},
		2: {1},
		3: {4},
		4: {3},
		5: {},
	}
	neighbors := func(id int) []int { return adj[id] }

	comps := spatialgrid.ConnectedComponents(6, neighbors)

	assert.Len(t, comps, 3)
	assert.Contains(t, comps, []int{0, 1, 2})
	assert.Contains(t, comps, []int{3, 4})
	assert.Contains(t, comps, []int{5})
}

func TestConnectedComponents_EmptyGraph(t *testing.T) {
	assert.Nil(t, spatialgrid.ConnectedComponents(0, func(int) []int { return nil }))
}
