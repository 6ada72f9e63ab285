package network_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jjax07/sk-railway-network/internal/geo"
	"github.com/jjax07/sk-railway-network/network"
)

func TestAddNode_DenseIDs(t *testing.T) {
	g := network.NewGraph()

	id0 := g.AddNode(geo.Point{X: 0, Y: 0}, geo.LatLon{Lat: 50, Lon: -105})
	id1 := g.AddNode(geo.Point{X: 100, Y: 0}, geo.LatLon{Lat: 50, Lon: -104})

	assert.Equal(t, 0, id0)
	assert.Equal(t, 1, id1)
	assert.Equal(t, 2, g.NodeCount())

	n0, ok := g.Node(id0)
	require.True(t, ok)
	assert.Equal(t, id0, n0.ID)
}

func TestAddEdge_RejectsSelfLoopAndBadNode(t *testing.T) {
	g := network.NewGraph()
	a := g.AddNode(geo.Point{X: 0, Y: 0}, geo.LatLon{})

	_, err := g.AddEdge(a, a, nil, 0, nil, nil, "CN", "Canadian National")
	require.True(t, errors.Is(err, network.ErrSelfLoop))

	_, err = g.AddEdge(a, 99, nil, 0, nil, nil, "CN", "Canadian National")
	require.True(t, errors.Is(err, network.ErrNodeNotFound))
}

func TestAddEdge_AndFindEdge(t *testing.T) {
	g := network.NewGraph()
	a := g.AddNode(geo.Point{X: 0, Y: 0}, geo.LatLon{})
	b := g.AddNode(geo.Point{X: 100, Y: 0}, geo.LatLon{})

	eid, err := g.AddEdge(a, b, []geo.Point{{X: 0, Y: 0}, {X: 100, Y: 0}}, 100, nil, nil, "CN", "Canadian National")
	require.NoError(t, err)

	found, ok := g.FindEdge(b, a)
	require.True(t, ok, "FindEdge is direction-agnostic")
	assert.Equal(t, eid, found)

	_, ok = g.FindEdge(a, 99)
	assert.False(t, ok)
}

func TestBuildAdjacency_AndAdjacentEdges(t *testing.T) {
	g := network.NewGraph()
	a := g.AddNode(geo.Point{X: 0, Y: 0}, geo.LatLon{})
	b := g.AddNode(geo.Point{X: 100, Y: 0}, geo.LatLon{})
	c := g.AddNode(geo.Point{X: 200, Y: 0}, geo.LatLon{})

	_, err := g.AdjacentEdges(a)
	require.True(t, errors.Is(err, network.ErrAdjacencyNotBuilt))

	e1, _ := g.AddEdge(a, b, nil, 100, nil, nil, "", "")
	e2, _ := g.AddEdge(b, c, nil, 100, nil, nil, "", "")

	g.BuildAdjacency()

	adjB, err := g.AdjacentEdges(b)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{e1, e2}, adjB)

	adjA, err := g.AdjacentEdges(a)
	require.NoError(t, err)
	assert.Equal(t, []int{e1}, adjA)
}

func TestNearestNode_TieBrokenByInsertionOrder(t *testing.T) {
	g := network.NewGraph()
	first := g.AddNode(geo.Point{X: 0, Y: 0}, geo.LatLon{})
	_ = g.AddNode(geo.Point{X: 0, Y: 10}, geo.LatLon{}) // equidistant from (0,5)

	id, ok := g.NearestNode(geo.Point{X: 0, Y: 5}, 10)
	require.True(t, ok)
	assert.Equal(t, first, id)
}

func TestNearestNode_RespectsTolerance(t *testing.T) {
	g := network.NewGraph()
	g.AddNode(geo.Point{X: 0, Y: 0}, geo.LatLon{})

	_, ok := g.NearestNode(geo.Point{X: 1000, Y: 0}, 500)
	assert.False(t, ok)

	id, ok := g.NearestNode(geo.Point{X: 400, Y: 0}, 500)
	assert.True(t, ok)
	assert.Equal(t, 0, id)
}

func TestNearestNodeGreatCircle(t *testing.T) {
	g := network.NewGraph()
	regina := geo.LatLon{Lat: 50.4452, Lon: -104.6189}
	g.AddNode(geo.Point{}, regina)

	nearby := geo.LatLon{Lat: 50.4460, Lon: -104.6200}
	id, ok := g.NearestNodeGreatCircle(nearby, 500)
	require.True(t, ok)
	assert.Equal(t, 0, id)

	saskatoon := geo.LatLon{Lat: 52.1332, Lon: -106.6700}
	_, ok = g.NearestNodeGreatCircle(saskatoon, 500)
	assert.False(t, ok)
}

func TestRemoveEdge_InvalidatesAdjacency(t *testing.T) {
	g := network.NewGraph()
	a := g.AddNode(geo.Point{}, geo.LatLon{})
	b := g.AddNode(geo.Point{}, geo.LatLon{})
	_, _ = g.AddEdge(a, b, nil, 10, nil, nil, "", "")
	g.BuildAdjacency()

	require.True(t, g.RemoveEdge(0))
	assert.Equal(t, 0, g.EdgeCount())

	_, err := g.AdjacentEdges(a)
	require.True(t, errors.Is(err, network.ErrAdjacencyNotBuilt))
}
