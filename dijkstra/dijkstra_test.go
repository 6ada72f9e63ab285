// Package dijkstra_test contains unit tests for the Dijkstra implementation.
package dijkstra_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jjax07/sk-railway-network/dijkstra"
	"github.com/jjax07/sk-railway-network/internal/geo"
	"github.com/jjax07/sk-railway-network/network"
)

func addEdge(t *testing.T, g *network.Graph, u, v int, lengthKm float64) {
	t.Helper()
	_, err := g.AddEdge(u, v, []geo.Point{{X: 0, Y: 0}, {X: lengthKm * 1000, Y: 0}}, lengthKm*1000, nil, nil, "CN", "Canadian National")
	require.NoError(t, err)
}

func TestDijkstra_NilGraph(t *testing.T) {
	_, _, err := dijkstra.Dijkstra(nil, dijkstra.WithSource(0))
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestDijkstra_SourceNotFound(t *testing.T) {
	g := network.NewGraph()
	g.AddNode(geo.Point{}, geo.LatLon{})
	g.BuildAdjacency()

	_, _, err := dijkstra.Dijkstra(g, dijkstra.WithSource(5))
	require.ErrorIs(t, err, dijkstra.ErrSourceNotFound)
}

func TestDijkstra_Triangle(t *testing.T) {
	g := network.NewGraph()
	a := g.AddNode(geo.Point{X: 0, Y: 0}, geo.LatLon{})
	b := g.AddNode(geo.Point{X: 1, Y: 0}, geo.LatLon{})
	c := g.AddNode(geo.Point{X: 2, Y: 0}, geo.LatLon{})
	addEdge(t, g, a, b, 1)
	addEdge(t, g, b, c, 2)
	addEdge(t, g, a, c, 5)
	g.BuildAdjacency()

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.WithSource(a))
	require.NoError(t, err)

	assert.Equal(t, 0.0, dist[a])
	assert.Equal(t, 1.0, dist[b])
	assert.Equal(t, 3.0, dist[c], "shorter via A->B->C than the direct 5km edge")
}

func TestDijkstra_ReturnPath(t *testing.T) {
	g := network.NewGraph()
	a := g.AddNode(geo.Point{X: 0, Y: 0}, geo.LatLon{})
	b := g.AddNode(geo.Point{X: 1, Y: 0}, geo.LatLon{})
	c := g.AddNode(geo.Point{X: 2, Y: 0}, geo.LatLon{})
	d := g.AddNode(geo.Point{X: 3, Y: 0}, geo.LatLon{})
	addEdge(t, g, a, b, 3)
	addEdge(t, g, a, c, 1)
	addEdge(t, g, c, b, 1)
	addEdge(t, g, b, d, 3)
	addEdge(t, g, c, d, 5)
	g.BuildAdjacency()

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.WithSource(a), dijkstra.WithReturnPath())
	require.NoError(t, err)

	assert.Equal(t, 5.0, dist[d], "A->C->B->D = 1+1+3")
	assert.Equal(t, b, prev[d])
	assert.Equal(t, c, prev[b])
	assert.Equal(t, a, prev[c])
}

func TestDijkstra_InfEdgeThreshold(t *testing.T) {
	g := network.NewGraph()
	a := g.AddNode(geo.Point{X: 0, Y: 0}, geo.LatLon{})
	b := g.AddNode(geo.Point{X: 1, Y: 0}, geo.LatLon{})
	c := g.AddNode(geo.Point{X: 2, Y: 0}, geo.LatLon{})
	addEdge(t, g, a, b, 2)
	addEdge(t, g, b, c, 4)
	addEdge(t, g, a, c, 10)
	g.BuildAdjacency()

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.WithSource(a), dijkstra.WithInfEdgeThreshold(5))
	require.NoError(t, err)

	assert.Equal(t, 6.0, dist[c], "direct 10km edge treated as impassable, forced via A->B->C")
}

func TestDijkstra_MaxDistanceStopsExploration(t *testing.T) {
	g := network.NewGraph()
	a := g.AddNode(geo.Point{X: 0, Y: 0}, geo.LatLon{})
	b := g.AddNode(geo.Point{X: 1, Y: 0}, geo.LatLon{})
	c := g.AddNode(geo.Point{X: 2, Y: 0}, geo.LatLon{})
	addEdge(t, g, a, b, 2)
	addEdge(t, g, b, c, 2)
	g.BuildAdjacency()

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.WithSource(a), dijkstra.WithMaxDistance(3))
	require.NoError(t, err)

	assert.Equal(t, 2.0, dist[b])
	assert.Equal(t, math.MaxFloat64, dist[c], "4km exceeds the 3km cap, left unreachable")
}

func TestDijkstra_UnreachableNode(t *testing.T) {
	g := network.NewGraph()
	a := g.AddNode(geo.Point{X: 0, Y: 0}, geo.LatLon{})
	isolated := g.AddNode(geo.Point{X: 100, Y: 100}, geo.LatLon{})
	g.BuildAdjacency()

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.WithSource(a))
	require.NoError(t, err)

	assert.Equal(t, math.MaxFloat64, dist[isolated])
}
