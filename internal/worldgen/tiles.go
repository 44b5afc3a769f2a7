package worldgen

import (
	"context"
	"fmt"
	"time"

	"github.com/annel0/waterworld/internal/facet"
	"github.com/annel0/waterworld/internal/logging"
	"github.com/annel0/waterworld/internal/metrics"
	"github.com/annel0/waterworld/internal/vec"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

const tracerName = "github.com/annel0/waterworld/internal/worldgen"

// RunnerConfig - параметры нарезки мира на тайлы
type RunnerConfig struct {
	TileSize int // Сторона тайла в клетках
	Workers  int // Сколько тайлов обрабатывается одновременно
	Border   int // Рамка хранилища фасетов вокруг тайла
}

// TileRunner режет прямоугольник мира на непересекающиеся тайлы и прогоняет их через конвейер параллельно.
// Тайлы не пересекаются, поэтому провайдеры никогда не пишут в одну клетку из разных горутин.
type TileRunner struct {
	chain   *Chain
	cfg     RunnerConfig
	metrics *metrics.Generation
	tracer  trace.Tracer
	logger  *logging.Logger
}

// NewTileRunner создает раннер. Некорректные размеры заменяются на 1; m может быть nil.
func NewTileRunner(chain *Chain, cfg RunnerConfig, m *metrics.Generation) *TileRunner {
	if cfg.TileSize < 1 {
		cfg.TileSize = 1
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	if cfg.Border < 0 {
		cfg.Border = 0
	}
	if m == nil {
		m = metrics.NewGeneration(nil)
	}

	return &TileRunner{
		chain:   chain,
		cfg:     cfg,
		metrics: m,
		tracer:  otel.Tracer(tracerName),
		logger:  logging.GetWorldgenLogger(),
	}
}

// Generate заполняет карту высот для world. Отмена ctx проверяется между тайлами:
// уже начатый тайл всегда обрабатывается до конца.
func (r *TileRunner) Generate(ctx context.Context, world vec.Rect) (*facet.SurfaceHeightFacet, error) {
	ctx, span := r.tracer.Start(ctx, "worldgen.generate", trace.WithAttributes(
		attribute.Int("world.width", world.Width()),
		attribute.Int("world.height", world.Height()),
		attribute.Int("tile.size", r.cfg.TileSize),
	))
	defer span.End()

	out := facet.NewSurfaceHeightFacet(world, 0)
	tiles := world.Tiles(r.cfg.TileSize)
	r.logger.Debug("Генерация %v: %d тайлов, %d воркеров", world, len(tiles), r.cfg.Workers)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Workers)

	for _, tile := range tiles {
		tile := tile
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return r.processTile(gctx, tile, out)
		})
	}

	if err := g.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *TileRunner) processTile(ctx context.Context, tile vec.Rect, out *facet.SurfaceHeightFacet) error {
	_, span := r.tracer.Start(ctx, "worldgen.tile", trace.WithAttributes(
		attribute.Int("tile.x", tile.Min.X),
		attribute.Int("tile.y", tile.Min.Y),
	))
	defer span.End()

	start := time.Now()
	err := r.runTile(tile, out)
	if err != nil {
		r.metrics.ObserveFailure()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		r.logger.Error("Ошибка генерации тайла %v: %v", tile, err)
		return err
	}

	r.metrics.ObserveTile(tile.Area(), time.Since(start))
	return nil
}

func (r *TileRunner) runTile(tile vec.Rect, out *facet.SurfaceHeightFacet) error {
	region := facet.NewRegion(tile, r.cfg.Border)
	if err := r.chain.Process(region); err != nil {
		return fmt.Errorf("tile %v: %w", tile, err)
	}

	height, err := region.SurfaceHeight()
	if err != nil {
		return fmt.Errorf("tile %v: %w", tile, err)
	}
	return height.CopyInto(out)
}
