package ingest_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jjax07/sk-railway-network/ingest"
)

func TestDecodePolylineRecords(t *testing.T) {
	const doc = `[
		{"bbox": [0, 0, 100, 50], "points": [[0, 0], [100, 50]],
		 "attrs": {"length": 111.8, "built_year": 1905, "operator_code": "CN"}}
	]`

	records, err := ingest.DecodePolylineRecords(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, records, 1)

	r := records[0]
	require.NotNil(t, r.BBox)
	assert.Equal(t, 0.0, r.BBox.MinX)
	assert.Equal(t, 100.0, r.BBox.MaxX)
	require.Len(t, r.Points, 2)
	assert.Equal(t, 100.0, r.Points[1].X)
	assert.Equal(t, "CN", r.Attrs.OperatorCode)
	require.NotNil(t, r.Attrs.BuiltYear)
	assert.Equal(t, 1905, *r.Attrs.BuiltYear)
	assert.Nil(t, r.Attrs.AbandonedYear)
}

func TestDecodePolylineRecords_NullBBoxSurvivesAsNil(t *testing.T) {
	const doc = `[{"bbox": null, "points": [[0,0],[1,1]], "attrs": {"length": 1.4}}]`

	records, err := ingest.DecodePolylineRecords(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Nil(t, records[0].BBox)
}

func TestDecodePolylineRecords_MalformedIsInputError(t *testing.T) {
	_, err := ingest.DecodePolylineRecords(strings.NewReader(`not json`))
	require.Error(t, err)
}

func TestDecodeMergerPolylineRecords(t *testing.T) {
	const doc = `[
		{"operator": "CN", "subdivision": "Watrous", "classification": "Main",
		 "coordinates": [[-105.0, 50.0], [-105.1, 50.1]]}
	]`

	records, err := ingest.DecodeMergerPolylineRecords(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Main", records[0].Classification)
	assert.Equal(t, -105.0, records[0].Coordinates[0].Lon)
	assert.Equal(t, 50.0, records[0].Coordinates[0].Lat)
}

func TestDecodeSettlementRecords(t *testing.T) {
	const doc = `[
		{"name": "Regina", "lat": 50.4452, "lon": -104.6189},
		{"name": "Saskatoon", "lat": 52.1332, "lon": -106.67, "first_railway": "CPR"}
	]`

	records, err := ingest.DecodeSettlementRecords(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Regina", records[0].Name)
	require.NotNil(t, records[1].FirstRailway)
	assert.Equal(t, "CPR", *records[1].FirstRailway)
}

func TestDecodeSettlementRecords_RejectsDuplicateName(t *testing.T) {
	const doc = `[
		{"name": "Regina", "lat": 50.0, "lon": -104.0},
		{"name": "Regina", "lat": 50.1, "lon": -104.1}
	]`

	_, err := ingest.DecodeSettlementRecords(strings.NewReader(doc))
	require.True(t, errors.Is(err, ingest.ErrDuplicateSettlementName))
}

func TestSliceIterators_ExhaustThenFalse(t *testing.T) {
	it := ingest.NewSlicePolylineIterator([]ingest.PolylineRecord{{}, {}})
	_, ok := it.Next()
	assert.True(t, ok)
	_, ok = it.Next()
	assert.True(t, ok)
	_, ok = it.Next()
	assert.False(t, ok)

	mit := ingest.NewSliceMergerPolylineIterator(nil)
	_, ok = mit.Next()
	assert.False(t, ok)
}
