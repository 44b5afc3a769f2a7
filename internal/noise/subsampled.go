package noise

import (
	"math"

	"github.com/annel0/waterworld/internal/util"
	"github.com/annel0/waterworld/internal/vec"
)

// SubSampled масштабирует координаты перед обращением к источнику и, при stride > 1,
// считает источник только в узлах решетки с шагом stride (в мировых единицах),
// а значения между узлами получает билинейной интерполяцией.
type SubSampled struct {
	source Field
	zoom   vec.Vec2Float
	stride int
}

// NewSubSampled оборачивает источник. stride < 1 трактуется как 1 (полное разрешение).
func NewSubSampled(source Field, zoom vec.Vec2Float, stride int) *SubSampled {
	if stride < 1 {
		stride = 1
	}
	return &SubSampled{source: source, zoom: zoom, stride: stride}
}

// Stride возвращает шаг подвыборки
func (s *SubSampled) Stride() int {
	return s.stride
}

// Sample возвращает значение поля в мировых координатах
func (s *SubSampled) Sample(x, y float64) float32 {
	if s.stride == 1 {
		return s.at(x, y)
	}

	step := float64(s.stride)
	x0 := math.Floor(x/step) * step
	y0 := math.Floor(y/step) * step
	tx := float32((x - x0) / step)
	ty := float32((y - y0) / step)

	bottom := util.Lerp(s.at(x0, y0), s.at(x0+step, y0), tx)
	top := util.Lerp(s.at(x0, y0+step), s.at(x0+step, y0+step), tx)
	return util.Lerp(bottom, top, ty)
}

func (s *SubSampled) at(x, y float64) float32 {
	p := vec.Vec2Float{X: x, Y: y}.Scale(s.zoom)
	return s.source.Sample(p.X, p.Y)
}
