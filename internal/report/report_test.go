package report

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/beetlebugorg/lakenames/pkg/lakenames"
)

func sampleReport() *Report {
	stats := lakenames.Stats{
		PointsLoaded:    3,
		FeaturesTotal:   2,
		FeaturesIndexed: 2,
		PolygonsUpdated: 1,
		PriorityWins:    1,
		IndexDuration:   1500 * time.Millisecond,
	}
	stats.PointsProcessed = 3
	stats.PointsAssociated = 2

	return &Report{
		Started:  time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		Duration: 2 * time.Second,
		Inputs: Inputs{
			Points:   "points.json",
			Polygons: "polygons.geojson",
		},
		Output: Output{
			Path:   "named.geojson",
			Bytes:  1024,
			Digest: "0123456789abcdef",
		},
		Stats: stats,
	}
}

func TestMarshal(t *testing.T) {
	data, err := sampleReport().Marshal()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(data, &doc))

	assert.Equal(t, "2s", doc["duration"])

	stats, ok := doc["stats"].(map[string]any)
	require.True(t, ok, "stats should be a mapping, got %T", doc["stats"])
	assert.Equal(t, 3, stats["points_loaded"])
	assert.Equal(t, 3, stats["points_processed"], "association counters are inlined")
	assert.Equal(t, 1, stats["priority_wins"])
	assert.Equal(t, "1.5s", stats["index_duration"])

	output, ok := doc["output"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "0123456789abcdef", output["digest"])
}

func TestParseRoundTrip(t *testing.T) {
	want := sampleReport()

	data, err := want.Marshal()
	require.NoError(t, err)

	got, err := Parse(data)
	require.NoError(t, err)

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseInvalid(t *testing.T) {
	_, err := Parse([]byte("stats: [unterminated"))
	assert.Error(t, err)
}
