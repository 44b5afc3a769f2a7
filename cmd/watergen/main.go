package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/annel0/waterworld/internal/config"
	"github.com/annel0/waterworld/internal/islands"
	"github.com/annel0/waterworld/internal/logging"
	"github.com/annel0/waterworld/internal/metrics"
	"github.com/annel0/waterworld/internal/observability"
	"github.com/annel0/waterworld/internal/terrain"
	"github.com/annel0/waterworld/internal/worldgen"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	os.Exit(run())
}

// run выполняет генерацию и возвращает код выхода; отложенные вызовы успевают отработать до os.Exit
func run() int {
	configPath := flag.String("config", "", "путь к YAML конфигу (по умолчанию $WATERGEN_CONFIG)")
	seedOverride := flag.Int64("seed", 0, "сид мира, перекрывает конфиг если задан")
	presetOut := flag.String("preset-out", "", "записать итоговые конфигурации провайдеров в YAML файл")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Printf("❌ Ошибка загрузки конфигурации: %v", err)
		return 1
	}
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			cfg.World.Seed = seedOverride
		}
	})

	logging.SetLogDir(cfg.Logging.Dir)
	if err := logging.InitDefaultLogger("watergen"); err != nil {
		log.Printf("❌ Ошибка инициализации логирования: %v", err)
		return 1
	}
	defer logging.CloseDefaultLogger()
	defer func() {
		if err := logging.GetLoggerManager().CloseAll(); err != nil {
			log.Printf("Ошибка закрытия логов компонентов: %v", err)
		}
	}()
	logging.SetLevel(logging.ParseLevel(cfg.Logging.Level))

	runID := uuid.New()
	logging.Info("🌊 Запуск генерации островов, run=%s", runID)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Telemetry.Enabled {
		shutdown, err := observability.InitTelemetry(ctx, observability.Options{
			ServiceName: cfg.Telemetry.ServiceName,
			Endpoint:    cfg.Telemetry.Endpoint,
			SampleRatio: cfg.Telemetry.SampleRatio,
		})
		if err != nil {
			logging.Error("Ошибка инициализации OpenTelemetry: %v", err)
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					logging.Warn("Ошибка остановки OpenTelemetry: %v", err)
				}
			}()
		}
	}

	reg := prometheus.NewRegistry()
	genMetrics := metrics.NewGeneration(reg)
	if addr := cfg.Metrics.GetAddr(); addr != "" {
		srv := metrics.StartHTTP(addr, reg)
		defer srv.Close()
	}

	chain := worldgen.NewChain(terrain.NewSurfaceProvider(), islands.NewProvider())
	if err := worldgen.ApplyPreset(chain, cfg.Providers); err != nil {
		logging.Error("❌ Ошибка применения конфигураций провайдеров: %v", err)
		return 1
	}

	seed := cfg.World.GetSeed()
	chain.SetSeed(seed)

	world := cfg.World.Rect()
	runner := worldgen.NewTileRunner(chain, worldgen.RunnerConfig{
		TileSize: cfg.Generation.GetTileSize(),
		Workers:  cfg.Generation.GetWorkers(),
		Border:   cfg.World.Border,
	}, genMetrics)

	logging.Info("📐 Мир %v, сид %d, тайл %d, воркеров %d",
		world, seed, cfg.Generation.GetTileSize(), cfg.Generation.GetWorkers())

	start := time.Now()
	heights, err := runner.Generate(ctx, world)
	if err != nil {
		logging.Error("❌ Генерация прервана: %v", err)
		return 1
	}

	stats := heights.Stats()
	logging.Info("✅ Готово за %s: %d клеток, высота min=%.2f max=%.2f mean=%.2f",
		time.Since(start).Round(time.Millisecond), stats.Cells, stats.Min, stats.Max, stats.Mean)

	if *presetOut != "" {
		data, err := worldgen.ExportPreset(chain)
		if err != nil {
			logging.Error("Ошибка сериализации пресета: %v", err)
			return 1
		}
		if err := os.WriteFile(*presetOut, data, 0644); err != nil {
			logging.Error("Ошибка записи пресета %s: %v", *presetOut, err)
			return 1
		}
		logging.Info("💾 Пресет провайдеров записан в %s", *presetOut)
	}
	return 0
}
