package config

import (
	"fmt"
	"os"
	"runtime"
	"strconv"

	"github.com/annel0/waterworld/internal/vec"
	"github.com/annel0/waterworld/internal/worldgen"
	"gopkg.in/yaml.v3"
)

// Переменные окружения, которые подменяют незаданные значения конфига
const (
	EnvConfigPath  = "WATERGEN_CONFIG"
	EnvSeed        = "WATERGEN_SEED"
	EnvTileSize    = "WATERGEN_TILE_SIZE"
	EnvWorkers     = "WATERGEN_WORKERS"
	EnvMetricsAddr = "WATERGEN_METRICS_ADDR"
)

// Config корневая структура конфигурации генератора
type Config struct {
	World      WorldConfig      `yaml:"world"`
	Generation GenerationConfig `yaml:"generation"`
	Metrics    MetricsConfig    `yaml:"metrics"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`
	Logging    LoggingConfig    `yaml:"logging"`
	// Providers - конфигурации провайдеров по ConfigurationName. Значения не проверяются.
	Providers worldgen.Preset `yaml:"providers"`
}

// WorldConfig описывает генерируемый участок мира
type WorldConfig struct {
	Seed   *int64 `yaml:"seed"`
	X      int    `yaml:"x"`
	Y      int    `yaml:"y"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Border int    `yaml:"border"`
}

type GenerationConfig struct {
	TileSize int `yaml:"tile_size"`
	Workers  int `yaml:"workers"`
}

type MetricsConfig struct {
	Addr string `yaml:"addr"`
}

type TelemetryConfig struct {
	Enabled     bool    `yaml:"enabled"`
	ServiceName string  `yaml:"service_name"`
	Endpoint    string  `yaml:"endpoint"`
	SampleRatio float64 `yaml:"sample_ratio"`
}

type LoggingConfig struct {
	Dir   string `yaml:"dir"`
	Level string `yaml:"level"`
}

// Default возвращает конфигурацию по умолчанию: участок 256x256 в начале координат
func Default() *Config {
	return &Config{
		World: WorldConfig{Width: 256, Height: 256},
		Telemetry: TelemetryConfig{
			ServiceName: "waterworld-gen",
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load читает YAML файл конфигурации поверх значений по умолчанию.
// Если path == "", пытается прочитать путь из ENV WATERGEN_CONFIG, иначе возвращает Default().
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvConfigPath)
		if path == "" {
			return Default(), nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет только структурные поля; значения провайдеров не проверяются
func (c *Config) Validate() error {
	if c.World.Width < 0 || c.World.Height < 0 {
		return fmt.Errorf("config: negative world size %dx%d", c.World.Width, c.World.Height)
	}
	if c.World.Border < 0 {
		return fmt.Errorf("config: negative border %d", c.World.Border)
	}
	if c.Generation.TileSize < 0 || c.Generation.Workers < 0 {
		return fmt.Errorf("config: negative tile_size or workers")
	}
	return nil
}

// Rect возвращает генерируемый прямоугольник мира
func (w *WorldConfig) Rect() vec.Rect {
	return vec.NewRect(w.X, w.Y, w.Width, w.Height)
}

// GetSeed возвращает сид с приоритетом: config -> env -> 0
func (w *WorldConfig) GetSeed() int64 {
	if w.Seed != nil {
		return *w.Seed
	}
	if envVal := os.Getenv(EnvSeed); envVal != "" {
		if seed, err := strconv.ParseInt(envVal, 10, 64); err == nil {
			return seed
		}
	}
	return 0
}

// GetTileSize возвращает размер тайла с поддержкой fallback значений
func (g *GenerationConfig) GetTileSize() int {
	return getIntWithEnvFallback(g.TileSize, EnvTileSize, 64)
}

// GetWorkers возвращает число воркеров с поддержкой fallback значений
func (g *GenerationConfig) GetWorkers() int {
	return getIntWithEnvFallback(g.Workers, EnvWorkers, runtime.NumCPU())
}

// GetAddr возвращает адрес /metrics; пустая строка отключает экспорт
func (m *MetricsConfig) GetAddr() string {
	if m.Addr != "" {
		return m.Addr
	}
	return os.Getenv(EnvMetricsAddr)
}

// getIntWithEnvFallback возвращает значение с приоритетом: config -> env -> default
func getIntWithEnvFallback(configValue int, envVar string, defaultValue int) int {
	// Если значение задано в конфиге и больше 0, используем его
	if configValue > 0 {
		return configValue
	}

	// Пробуем прочитать из environment variable
	if envVal := os.Getenv(envVar); envVal != "" {
		if v, err := strconv.Atoi(envVal); err == nil && v > 0 {
			return v
		}
	}

	return defaultValue
}
