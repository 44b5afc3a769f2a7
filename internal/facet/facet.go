// Package facet описывает общие для генераторов мира структуры данных (фасеты)
// и регион, в рамках которого они заполняются.
package facet

import (
	"errors"

	"github.com/annel0/waterworld/internal/vec"
)

// Type - идентификатор фасета
type Type string

// Известные фасеты
const (
	SurfaceHeight Type = "surface_height" // Высота поверхности мира
)

// ErrMissingFacet возвращается, когда регион не содержит нужного фасета
var ErrMissingFacet = errors.New("facet: missing facet")

// Facet - общий интерфейс фасетов региона
type Facet interface {
	Type() Type
	// WorldRegion возвращает границы, в пределах которых фасет можно изменять
	WorldRegion() vec.Rect
}
