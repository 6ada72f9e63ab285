package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jjax07/sk-railway-network/builder"
	"github.com/jjax07/sk-railway-network/internal/config"
	"github.com/jjax07/sk-railway-network/internal/geo"
	"github.com/jjax07/sk-railway-network/ingest"
)

// identityProjection treats (x, y) as (lon, lat) directly — adequate
// for tests that only exercise topology, not real-world cartography.
func identityProjection() geo.Projection {
	return geo.Projection{
		Forward: func(lat, lon float64) (float64, float64) { return lon, lat },
		Inverse: func(x, y float64) (float64, float64) { return y, x },
	}
}

func bbox(minX, minY, maxX, maxY float64) *ingest.PolylineBBox {
	return &ingest.PolylineBBox{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
}

func worldConfig(opts ...config.Option) *config.Config {
	base := []config.Option{
		config.WithProjection(identityProjection()),
		config.WithAcceptRegion(geo.Rect{MinLon: -180, MaxLon: 180, MinLat: -90, MaxLat: 90}),
	}
	return config.New(append(base, opts...)...)
}

func TestBuild_RequiresProjection(t *testing.T) {
	_, _, err := builder.Build(config.New(), ingest.NewSlicePolylineIterator(nil))
	require.Error(t, err)
}

func TestBuild_SkipsDegenerateAndOutOfRegion(t *testing.T) {
	// The identity projection works in degrees, so the snap tolerance is
	// set below the accepted polyline's ~1.41-unit endpoint separation.
	cfg := worldConfig(
		config.WithAcceptRegion(geo.Rect{MinLon: -110, MaxLon: -100, MinLat: 49, MaxLat: 60}),
		config.WithSnapTolerance(0.5),
	)

	records := []ingest.PolylineRecord{
		{Points: []geo.Point{{X: -105, Y: 50}}, BBox: bbox(-105, 50, -105, 50)}, // too few points
		{Points: []geo.Point{{X: -105, Y: 50}, {X: -104, Y: 51}}},               // null bbox
		{Points: []geo.Point{{X: 10, Y: 10}, {X: 11, Y: 11}}, BBox: bbox(10, 10, 11, 11)}, // out of region
		{Points: []geo.Point{{X: -105, Y: 50}, {X: -104, Y: 51}}, BBox: bbox(-105, 50, -104, 51)}, // accepted
	}

	g, stats, err := builder.Build(cfg, ingest.NewSlicePolylineIterator(records))
	require.NoError(t, err)

	assert.Equal(t, 4, stats.PolylinesTotal)
	assert.Equal(t, 2, stats.SkippedDegenerate)
	assert.Equal(t, 1, stats.SkippedOutOfRegion)
	assert.Equal(t, 1, g.EdgeCount())
}

func TestBuild_SplitsAtSharedJunctionVertex(t *testing.T) {
	cfg := worldConfig(config.WithSnapTolerance(1))

	// Two polylines share the interior vertex (10, 0): the first passes
	// through it, the second starts there. That shared vertex must
	// split the first polyline into two edges.
	records := []ingest.PolylineRecord{
		{
			Points: []geo.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 20, Y: 0}},
			BBox:   bbox(0, 0, 20, 0),
			Attrs:  ingest.PolylineAttrs{OperatorCode: "CN"},
		},
		{
			Points: []geo.Point{{X: 10, Y: 0}, {X: 10, Y: 10}},
			BBox:   bbox(10, 0, 10, 10),
			Attrs:  ingest.PolylineAttrs{OperatorCode: "CN"},
		},
	}

	g, stats, err := builder.Build(cfg, ingest.NewSlicePolylineIterator(records))
	require.NoError(t, err)

	assert.Equal(t, 3, g.EdgeCount(), "the through polyline splits into two edges, plus the branch")
	assert.Equal(t, 3, stats.SegmentsEmitted)
	assert.Equal(t, 4, g.NodeCount(), "(0,0), (10,0) shared junction, (20,0), (10,10)")
}

func TestBuild_SnapTolerance_ReusesNearbyNode(t *testing.T) {
	cfg := worldConfig(config.WithSnapTolerance(500))

	records := []ingest.PolylineRecord{
		{Points: []geo.Point{{X: 0, Y: 0}, {X: 1000, Y: 0}}, BBox: bbox(0, 0, 1000, 0)},
		// Starts 400m from the first polyline's endpoint: within snap tolerance.
		{Points: []geo.Point{{X: 1400, Y: 0}, {X: 2000, Y: 0}}, BBox: bbox(1400, 0, 2000, 0)},
	}

	g, _, err := builder.Build(cfg, ingest.NewSlicePolylineIterator(records))
	require.NoError(t, err)

	assert.Equal(t, 3, g.NodeCount(), "endpoints at 0, ~1000-1400 (shared), and 2000")
}

func TestBuild_DuplicateEdgeCollapse_KeepsShorter(t *testing.T) {
	cfg := worldConfig(config.WithSnapTolerance(50))

	records := []ingest.PolylineRecord{
		{Points: []geo.Point{{X: 0, Y: 0}, {X: 100, Y: 0}}, BBox: bbox(0, 0, 100, 0)},
		// Same endpoints, longer (curved) path: must not replace the shorter edge.
		{Points: []geo.Point{{X: 0, Y: 0}, {X: 50, Y: 50}, {X: 100, Y: 0}}, BBox: bbox(0, 0, 100, 50)},
	}

	g, stats, err := builder.Build(cfg, ingest.NewSlicePolylineIterator(records))
	require.NoError(t, err)

	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, 1, stats.EdgesKeptExisting)

	e, ok := g.Edge(0)
	require.True(t, ok)
	assert.InDelta(t, 100.0, e.LengthM, 0.1)
}

func TestBuild_SelfLoopDiscarded(t *testing.T) {
	cfg := worldConfig(config.WithSnapTolerance(500))

	records := []ingest.PolylineRecord{
		{Points: []geo.Point{{X: 0, Y: 0}, {X: 400, Y: 0}}, BBox: bbox(0, 0, 400, 0)},
	}

	g, stats, err := builder.Build(cfg, ingest.NewSlicePolylineIterator(records))
	require.NoError(t, err)

	assert.Equal(t, 1, stats.SelfLoopsDiscarded)
	assert.Equal(t, 0, g.EdgeCount())
	assert.Equal(t, 1, g.NodeCount(), "both endpoints snap to the single pre-existing node")
}

func TestBuild_AttributePropagation(t *testing.T) {
	cfg := worldConfig(
		config.WithOperatorAliases(map[string]string{"CN": "Canadian National"}),
		config.WithSnapTolerance(10),
	)
	year := 1905

	records := []ingest.PolylineRecord{
		{
			Points: []geo.Point{{X: 0, Y: 0}, {X: 100, Y: 0}},
			BBox:   bbox(0, 0, 100, 0),
			Attrs:  ingest.PolylineAttrs{OperatorCode: "CN", BuiltYear: &year},
		},
	}

	g, _, err := builder.Build(cfg, ingest.NewSlicePolylineIterator(records))
	require.NoError(t, err)

	e, ok := g.Edge(0)
	require.True(t, ok)
	assert.Equal(t, "CN", e.BuilderCode)
	assert.Equal(t, "Canadian National", e.BuilderName)
	require.NotNil(t, e.BuiltYear)
	assert.Equal(t, 1905, *e.BuiltYear)
}
