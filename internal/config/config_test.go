package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/annel0/waterworld/internal/vec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "watergen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
world:
  seed: 42
  x: -64
  y: 32
  width: 128
  height: 96
  border: 2
generation:
  tile_size: 32
  workers: 3
metrics:
  addr: ":2112"
providers:
  Islands:
    islandHeight: 1000
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, int64(42), cfg.World.GetSeed())
	assert.Equal(t, vec.NewRect(-64, 32, 128, 96), cfg.World.Rect())
	assert.Equal(t, 2, cfg.World.Border)
	assert.Equal(t, 32, cfg.Generation.GetTileSize())
	assert.Equal(t, 3, cfg.Generation.GetWorkers())
	assert.Equal(t, ":2112", cfg.Metrics.GetAddr())
	assert.Equal(t, "waterworld-gen", cfg.Telemetry.ServiceName, "незаданные поля берутся из Default")
	require.Contains(t, cfg.Providers, "Islands")
}

func TestLoad_EnvFallback(t *testing.T) {
	t.Setenv(EnvSeed, "-17")
	t.Setenv(EnvTileSize, "16")
	t.Setenv(EnvWorkers, "not-a-number")
	t.Setenv(EnvMetricsAddr, ":9999")

	cfg, err := Load(writeConfig(t, "world: {width: 10, height: 10}\n"))
	require.NoError(t, err)

	assert.Equal(t, int64(-17), cfg.World.GetSeed())
	assert.Equal(t, 16, cfg.Generation.GetTileSize())
	assert.Equal(t, runtime.NumCPU(), cfg.Generation.GetWorkers())
	assert.Equal(t, ":9999", cfg.Metrics.GetAddr())
}

func TestLoad_ExplicitZeroSeedWinsOverEnv(t *testing.T) {
	t.Setenv(EnvSeed, "5")

	cfg, err := Load(writeConfig(t, "world: {seed: 0}\n"))
	require.NoError(t, err)
	assert.Equal(t, int64(0), cfg.World.GetSeed())
}

func TestLoad_DefaultsWithoutPath(t *testing.T) {
	t.Setenv(EnvConfigPath, "")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, 64, cfg.Generation.GetTileSize())
}

func TestLoad_PathFromEnv(t *testing.T) {
	t.Setenv(EnvConfigPath, writeConfig(t, "world: {width: 7, height: 9}\n"))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 63, cfg.World.Rect().Area())
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "world: [oops"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "world: {width: -1}\n"))
	assert.Error(t, err)
}
