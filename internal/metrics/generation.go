package metrics

import (
	"net/http"
	"time"

	"github.com/annel0/waterworld/internal/logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Generation инкапсулирует Prometheus-метрики генерации мира
type Generation struct {
	tiles        prometheus.Counter
	cells        prometheus.Counter
	failures     prometheus.Counter
	tileDuration prometheus.Histogram
}

// NewGeneration создает метрики и регистрирует их в reg.
// При reg == nil метрики работают, но нигде не публикуются.
func NewGeneration(reg prometheus.Registerer) *Generation {
	g := &Generation{
		tiles: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "worldgen",
			Name:      "tiles_processed_total",
			Help:      "Общее число обработанных тайлов.",
		}),
		cells: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "worldgen",
			Name:      "cells_processed_total",
			Help:      "Общее число обработанных клеток карты высот.",
		}),
		failures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "worldgen",
			Name:      "tile_failures_total",
			Help:      "Тайлов, обработка которых завершилась ошибкой.",
		}),
		tileDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "worldgen",
			Name:      "tile_duration_seconds",
			Help:      "Время обработки одного тайла всеми провайдерами.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
		}),
	}

	if reg != nil {
		reg.MustRegister(g.tiles, g.cells, g.failures, g.tileDuration)
	}
	return g
}

// ObserveTile учитывает успешно обработанный тайл
func (g *Generation) ObserveTile(cells int, elapsed time.Duration) {
	g.tiles.Inc()
	g.cells.Add(float64(cells))
	g.tileDuration.Observe(elapsed.Seconds())
}

// ObserveFailure учитывает тайл, завершившийся ошибкой
func (g *Generation) ObserveFailure() {
	g.failures.Inc()
}

// StartHTTP запускает HTTP-эндпоинт /metrics на указанном адресе (например, ":2112").
// Метод неблокирующий: HTTP-сервер стартует в отдельной горутине.
func StartHTTP(addr string, gatherer prometheus.Gatherer) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux}

	go func() {
		logging.Info("📈 Prometheus /metrics доступен по адресу %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Error("Ошибка Prometheus HTTP сервера: %v", err)
		}
	}()
	return srv
}
