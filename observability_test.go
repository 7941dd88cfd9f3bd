package vptree

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/vptree/metric"
)

func TestMetricsCollector(t *testing.T) {
	mc := &BasicMetricsCollector{}
	tree := New(floats(1, 2, 3, 4, 5, 6, 7, 8), WithMetricsCollector(mc))

	_, err := tree.KNearest(metric.Float(3), 2)
	require.NoError(t, err)
	_, ok := tree.Nearest(metric.Float(3))
	require.True(t, ok)
	_, err = tree.KNearest(metric.Float(3), 0)
	require.Error(t, err)

	stats := mc.GetStats()
	assert.Equal(t, int64(1), stats.BuildCount)
	assert.Equal(t, int64(8), stats.BuildItems)
	assert.Equal(t, int64(3), stats.SearchCount)
	assert.Equal(t, int64(1), stats.SearchErrors)
	assert.Equal(t, int64(3), stats.SearchResults)
	assert.Positive(t, stats.SearchAvgVisited)
	assert.LessOrEqual(t, stats.SearchAvgVisited, int64(8))
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tree := New(floats(1, 2, 3), WithLogger(logger))
	assert.Contains(t, buf.String(), "build completed")
	assert.Contains(t, buf.String(), "depth=2")
	assert.Contains(t, buf.String(), "count=3")
	assert.Contains(t, buf.String(), "workers=1")

	buf.Reset()
	_, err := tree.Query(metric.Float(1), WithinRadius(-1))
	require.Error(t, err)
	assert.Contains(t, buf.String(), "search rejected")

	buf.Reset()
	_, err = tree.KNearest(metric.Float(1), 1)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "search completed")
	assert.Contains(t, buf.String(), "results=1")
}

func TestNilOptions(t *testing.T) {
	tree := New(floats(1, 2), WithLogger(nil), WithMetricsCollector(nil), WithController(nil))
	nn, ok := tree.Nearest(metric.Float(2))
	require.True(t, ok)
	assert.Equal(t, metric.Float(2), nn.Item)
}
