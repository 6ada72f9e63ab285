package merger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jjax07/sk-railway-network/internal/config"
	"github.com/jjax07/sk-railway-network/internal/geo"
	"github.com/jjax07/sk-railway-network/ingest"
	"github.com/jjax07/sk-railway-network/merger"
	"github.com/jjax07/sk-railway-network/network"
)

func identityProjection() geo.Projection {
	return geo.Projection{
		Forward: func(lat, lon float64) (float64, float64) { return lon, lat },
		Inverse: func(x, y float64) (float64, float64) { return y, x },
	}
}

func baseConfig(opts ...config.Option) *config.Config {
	base := []config.Option{config.WithProjection(identityProjection())}
	return config.New(append(base, opts...)...)
}

func ll(lat, lon float64) geo.LatLon { return geo.LatLon{Lat: lat, Lon: lon} }

func TestMerge_RejectsEmptyGraph(t *testing.T) {
	cfg := baseConfig()
	g := network.NewGraph()

	_, err := merger.Merge(cfg, g, mergerRecords(mergerRec("CN", "Main", ll(0, 0), ll(1, 0))))
	require.ErrorIs(t, err, merger.ErrNoMainComponent)
	assert.Equal(t, 0, g.NodeCount())
}

func TestMerge_StitchesTwoSegmentsAndAttachesToExistingNode(t *testing.T) {
	cfg := baseConfig(config.WithJunctionTolerance(50), config.WithMergeTolerance(50))

	g := network.NewGraph()
	g.AddNode(geo.Point{X: 0, Y: 0}, ll(0, 0))

	records := mergerRecords(
		mergerRec("CN", "Main", ll(0, 0), ll(1, 0)),
		mergerRec("CN", "Main", ll(1, 0), ll(2, 0)),
	)

	stats, err := merger.Merge(cfg, g, records)
	require.NoError(t, err)

	assert.Equal(t, 1, stats.ChainsAssembled, "the two segments share endpoint (1,0) and stitch into one chain")
	assert.Equal(t, 1, stats.EdgesCreated)
	assert.Equal(t, 2, g.NodeCount(), "(0,0) reused, (2,0) new; (1,0) interior to the chain, not a node")
}

func TestMerge_SkipsDisallowedClassificationAndOperator(t *testing.T) {
	cfg := baseConfig(
		config.WithAcceptClassifications("Main"),
		config.WithAcceptOperators("CN"),
	)

	g := network.NewGraph()
	g.AddNode(geo.Point{X: 0, Y: 0}, ll(0, 0))

	records := mergerRecords(
		mergerRec("CP", "Main", ll(10, 10), ll(11, 11)),
		mergerRec("CN", "Siding", ll(20, 20), ll(21, 21)),
	)

	stats, err := merger.Merge(cfg, g, records)
	require.NoError(t, err)

	assert.Equal(t, 1, stats.SkippedOperator)
	assert.Equal(t, 1, stats.SkippedClassification)
	assert.Equal(t, 0, stats.ChainsAssembled)
}

func TestMerge_NeverReplacesExistingEdgeRegardlessOfLength(t *testing.T) {
	cfg := baseConfig(config.WithJunctionTolerance(10))

	g := network.NewGraph()
	u := g.AddNode(geo.Point{X: 0, Y: 0}, ll(0, 0))
	v := g.AddNode(geo.Point{X: 100, Y: 0}, ll(0, 1))
	_, err := g.AddEdge(u, v, []geo.Point{{X: 0, Y: 0}, {X: 100, Y: 0}}, 100, nil, nil, "CN", "Canadian National")
	require.NoError(t, err)

	records := mergerRecords(
		mergerRec("CP", "Main", ll(0, 0), ll(0.5, 0.5), ll(0, 1)),
	)

	stats, err := merger.Merge(cfg, g, records)
	require.NoError(t, err)

	assert.Equal(t, 1, stats.EdgesSkippedExisting)
	assert.Equal(t, 1, g.EdgeCount(), "the curved merger chain, shorter than the existing edge's recorded length, must not replace it")
}

func TestMerge_ConnectsFloatingComponentWithVirtualEdge(t *testing.T) {
	cfg := baseConfig()

	g := network.NewGraph()
	g.AddNode(geo.Point{X: 0, Y: 0}, ll(0, 0))

	// A chain far from the anchor node (well beyond junction tolerance
	// at both ends) forms its own floating component.
	records := mergerRecords(
		mergerRec("CP", "Main", ll(50, 50), ll(50, 51)),
	)

	stats, err := merger.Merge(cfg, g, records)
	require.NoError(t, err)

	assert.Equal(t, 1, stats.EdgesCreated)
	assert.Equal(t, 1, stats.VirtualEdgesAdded)

	var virtualEdges int
	for _, e := range g.Edges() {
		if e.BuilderCode == merger.VirtualOperatorCode {
			virtualEdges++
		}
	}
	assert.Equal(t, 1, virtualEdges)
}

// --- fixtures ---

type mergerRecordSpec struct {
	operator       string
	classification string
	points         []geo.LatLon
}

func mergerRec(operator, classification string, points ...geo.LatLon) mergerRecordSpec {
	return mergerRecordSpec{operator: operator, classification: classification, points: points}
}

// recordedIterator adapts mergerRecordSpec fixtures directly to
// ingest.MergerPolylineIterator without round-tripping through JSON.
type recordedIterator struct {
	specs []mergerRecordSpec
	pos   int
}

func mergerRecords(specs ...mergerRecordSpec) *recordedIterator {
	return &recordedIterator{specs: specs}
}

func (it *recordedIterator) Next() (ingest.MergerPolylineRecord, bool) {
	if it.pos >= len(it.specs) {
		return ingest.MergerPolylineRecord{}, false
	}
	s := it.specs[it.pos]
	it.pos++
	return ingest.MergerPolylineRecord{
		Operator:       s.operator,
		Classification: s.classification,
		Coordinates:    s.points,
	}, true
}
