package worldgen_test

import (
	"context"
	"testing"

	"github.com/annel0/waterworld/internal/facet"
	"github.com/annel0/waterworld/internal/islands"
	"github.com/annel0/waterworld/internal/metrics"
	"github.com/annel0/waterworld/internal/terrain"
	"github.com/annel0/waterworld/internal/vec"
	"github.com/annel0/waterworld/internal/worldgen"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func newIslandChain(seed int64) (*worldgen.Chain, *islands.Provider) {
	island := islands.NewProvider()
	chain := worldgen.NewChain(terrain.NewSurfaceProvider(), island)
	chain.SetSeed(seed)
	return chain, island
}

func TestPreset_ApplyAndExport(t *testing.T) {
	chain, island := newIslandChain(1)

	preset, err := worldgen.ParsePreset([]byte(`
Islands:
  islandHeight: 460
Base Surface:
  baseHeight: -30
Volcanoes:
  height: 9000
`))
	require.NoError(t, err)
	require.NoError(t, worldgen.ApplyPreset(chain, preset))

	assert.Equal(t, float32(460), island.Configuration().(*islands.Configuration).IslandHeight)

	data, err := worldgen.ExportPreset(chain)
	require.NoError(t, err)

	var exported map[string]map[string]float32
	require.NoError(t, yaml.Unmarshal(data, &exported))
	assert.Equal(t, map[string]map[string]float32{
		"Islands":      {"islandHeight": 460},
		"Base Surface": {"baseHeight": -30},
	}, exported)
}

func TestPreset_KeepsOmittedFields(t *testing.T) {
	chain, island := newIslandChain(1)
	require.NoError(t, island.SetConfiguration(&islands.Configuration{IslandHeight: 320}))

	preset, err := worldgen.ParsePreset([]byte("Islands: {}\nBase Surface:\n"))
	require.NoError(t, err)
	require.NoError(t, worldgen.ApplyPreset(chain, preset))

	assert.Equal(t, float32(320), island.Configuration().(*islands.Configuration).IslandHeight)
}

func TestPreset_RoundTripThroughExport(t *testing.T) {
	source, sourceIsland := newIslandChain(1)
	require.NoError(t, sourceIsland.SetConfiguration(islands.Configuration{IslandHeight: 220}))

	data, err := worldgen.ExportPreset(source)
	require.NoError(t, err)

	target, targetIsland := newIslandChain(1)
	preset, err := worldgen.ParsePreset(data)
	require.NoError(t, err)
	require.NoError(t, worldgen.ApplyPreset(target, preset))

	assert.Equal(t, float32(220), targetIsland.Configuration().(*islands.Configuration).IslandHeight)
}

func TestPreset_InvalidYAML(t *testing.T) {
	_, err := worldgen.ParsePreset([]byte("Islands: [unclosed"))
	assert.Error(t, err)

	chain, _ := newIslandChain(1)
	preset, err := worldgen.ParsePreset([]byte("Islands:\n  islandHeight: tall\n"))
	require.NoError(t, err)
	assert.Error(t, worldgen.ApplyPreset(chain, preset))
}

func TestTileRunner_MatchesSingleRegion(t *testing.T) {
	world := vec.NewRect(-40, 25, 150, 70)

	chain, _ := newIslandChain(42)
	reg := prometheus.NewRegistry()
	runner := worldgen.NewTileRunner(chain, worldgen.RunnerConfig{TileSize: 32, Workers: 4, Border: 1}, metrics.NewGeneration(reg))

	tiled, err := runner.Generate(context.Background(), world)
	require.NoError(t, err)

	single := facet.NewRegion(world, 0)
	require.NoError(t, chain.Process(single))
	whole, err := single.SurfaceHeight()
	require.NoError(t, err)

	world.ForEach(func(p vec.Vec2) {
		assert.Equal(t, whole.GetWorld(p.X, p.Y), tiled.GetWorld(p.X, p.Y), "позиция %v", p)
	})

	families, err := reg.Gather()
	require.NoError(t, err)
	var cells float64
	for _, mf := range families {
		if mf.GetName() == "worldgen_cells_processed_total" {
			cells = mf.GetMetric()[0].GetCounter().GetValue()
		}
	}
	assert.Equal(t, float64(world.Area()), cells)
}

func TestTileRunner_PropagatesProviderError(t *testing.T) {
	island := islands.NewProvider() // не сидирован
	surface := terrain.NewSurfaceProvider()
	surface.SetSeed(1)
	chain := worldgen.NewChain(surface, island)

	runner := worldgen.NewTileRunner(chain, worldgen.RunnerConfig{TileSize: 8, Workers: 2}, nil)
	_, err := runner.Generate(context.Background(), vec.NewRect(0, 0, 32, 32))

	assert.ErrorIs(t, err, worldgen.ErrNotSeeded)
}

func TestTileRunner_Cancelled(t *testing.T) {
	chain, _ := newIslandChain(7)
	runner := worldgen.NewTileRunner(chain, worldgen.RunnerConfig{TileSize: 4, Workers: 1}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runner.Generate(ctx, vec.NewRect(0, 0, 64, 64))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTileRunner_EmptyWorld(t *testing.T) {
	chain, _ := newIslandChain(7)
	runner := worldgen.NewTileRunner(chain, worldgen.RunnerConfig{}, nil)

	out, err := runner.Generate(context.Background(), vec.NewRect(0, 0, 0, 10))
	require.NoError(t, err)
	assert.Equal(t, 0, out.Stats().Cells)
}
