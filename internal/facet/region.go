package facet

import (
	"fmt"
	"sync"

	"github.com/annel0/waterworld/internal/vec"
)

// Region - прямоугольный участок мира, который генерируется за один проход,
// и набор фасетов, заполняемых провайдерами.
type Region struct {
	bounds vec.Rect
	border int

	mu     sync.RWMutex
	facets map[Type]Facet
}

// NewRegion создает пустой регион без фасетов
func NewRegion(bounds vec.Rect, border int) *Region {
	if border < 0 {
		border = 0
	}
	return &Region{
		bounds: bounds,
		border: border,
		facets: make(map[Type]Facet),
	}
}

// Bounds возвращает мировые границы региона
func (r *Region) Bounds() vec.Rect {
	return r.bounds
}

// Border возвращает ширину дополнительной рамки хранилища фасетов
func (r *Region) Border() int {
	return r.border
}

// SetFacet добавляет или заменяет фасет
func (r *Region) SetFacet(f Facet) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.facets[f.Type()] = f
}

// Facet возвращает фасет по типу
func (r *Region) Facet(t Type) (Facet, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.facets[t]
	return f, ok
}

// Has сообщает, есть ли фасет в регионе
func (r *Region) Has(t Type) bool {
	_, ok := r.Facet(t)
	return ok
}

// SurfaceHeight возвращает фасет высоты поверхности
func (r *Region) SurfaceHeight() (*SurfaceHeightFacet, error) {
	f, ok := r.Facet(SurfaceHeight)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingFacet, SurfaceHeight)
	}
	height, ok := f.(*SurfaceHeightFacet)
	if !ok {
		return nil, fmt.Errorf("%w: %s has unexpected type %T", ErrMissingFacet, SurfaceHeight, f)
	}
	return height, nil
}
