package facet

import (
	"fmt"
	"math"

	"github.com/annel0/waterworld/internal/vec"
)

// SurfaceHeightFacet хранит высоту поверхности для каждой позиции региона.
// Хранилище покрывает мировой регион, расширенный на border клеток во все стороны:
// соседние значения доступны на чтение, но провайдеры пишут только внутрь WorldRegion().
type SurfaceHeightFacet struct {
	world   vec.Rect
	storage vec.Rect
	values  []float32
}

// HeightStats - сводная статистика высот мирового региона
type HeightStats struct {
	Min   float32
	Max   float32
	Mean  float64
	Cells int
}

// NewSurfaceHeightFacet создает фасет, заполненный нулями
func NewSurfaceHeightFacet(world vec.Rect, border int) *SurfaceHeightFacet {
	if border < 0 {
		border = 0
	}
	storage := world.Expand(border)
	return &SurfaceHeightFacet{
		world:   world,
		storage: storage,
		values:  make([]float32, storage.Area()),
	}
}

// Type возвращает идентификатор фасета
func (f *SurfaceHeightFacet) Type() Type {
	return SurfaceHeight
}

// WorldRegion возвращает границы, внутри которых провайдеры могут писать
func (f *SurfaceHeightFacet) WorldRegion() vec.Rect {
	return f.world
}

// StorageRegion возвращает границы хранилища (мировой регион плюс border)
func (f *SurfaceHeightFacet) StorageRegion() vec.Rect {
	return f.storage
}

// InStorage проверяет, что позиция попадает в хранилище
func (f *SurfaceHeightFacet) InStorage(x, y int) bool {
	return f.storage.Contains(vec.Vec2{X: x, Y: y})
}

// GetWorld возвращает высоту в мировых координатах.
// Обращение за пределами хранилища - ошибка программиста и приводит к панике.
func (f *SurfaceHeightFacet) GetWorld(x, y int) float32 {
	return f.values[f.index(x, y)]
}

// SetWorld записывает высоту в мировых координатах
func (f *SurfaceHeightFacet) SetWorld(x, y int, value float32) {
	f.values[f.index(x, y)] = value
}

// Fill записывает одно значение во все хранилище, включая border
func (f *SurfaceHeightFacet) Fill(value float32) {
	for i := range f.values {
		f.values[i] = value
	}
}

// CopyInto копирует мировой регион фасета в dst, хранилище которого должно его покрывать.
// Разные источники с непересекающимися регионами можно копировать в один dst параллельно.
func (f *SurfaceHeightFacet) CopyInto(dst *SurfaceHeightFacet) error {
	if f.world.Empty() {
		return nil
	}
	if dst.storage.Intersect(f.world) != f.world {
		return fmt.Errorf("facet: region %v does not fit into %v", f.world, dst.storage)
	}

	width := f.world.Width()
	for y := f.world.Min.Y; y < f.world.Max.Y; y++ {
		src := f.index(f.world.Min.X, y)
		to := dst.index(f.world.Min.X, y)
		copy(dst.values[to:to+width], f.values[src:src+width])
	}
	return nil
}

// Stats считает минимум, максимум и среднее по мировому региону
func (f *SurfaceHeightFacet) Stats() HeightStats {
	stats := HeightStats{Min: float32(math.Inf(1)), Max: float32(math.Inf(-1))}
	var sum float64

	f.world.ForEach(func(p vec.Vec2) {
		v := f.GetWorld(p.X, p.Y)
		stats.Min = min(stats.Min, v)
		stats.Max = max(stats.Max, v)
		sum += float64(v)
		stats.Cells++
	})

	if stats.Cells == 0 {
		return HeightStats{}
	}
	stats.Mean = sum / float64(stats.Cells)
	return stats
}

func (f *SurfaceHeightFacet) index(x, y int) int {
	if !f.InStorage(x, y) {
		panic(fmt.Sprintf("facet: position (%d,%d) outside of %v", x, y, f.storage))
	}
	return (y-f.storage.Min.Y)*f.storage.Width() + (x - f.storage.Min.X)
}
