package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneration_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	g := NewGeneration(reg)

	g.ObserveTile(16, 2*time.Millisecond)
	g.ObserveTile(9, time.Millisecond)
	g.ObserveFailure()

	assert.Equal(t, 2.0, testutil.ToFloat64(g.tiles))
	assert.Equal(t, 25.0, testutil.ToFloat64(g.cells))
	assert.Equal(t, 1.0, testutil.ToFloat64(g.failures))

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, mf := range families {
		names = append(names, mf.GetName())
	}
	assert.ElementsMatch(t, []string{
		"worldgen_tiles_processed_total",
		"worldgen_cells_processed_total",
		"worldgen_tile_failures_total",
		"worldgen_tile_duration_seconds",
	}, names)
}

func TestGeneration_NilRegisterer(t *testing.T) {
	g := NewGeneration(nil)
	assert.NotPanics(t, func() { g.ObserveTile(1, time.Microsecond) })
}
