package vec

// Rect - прямоугольник целочисленных мировых координат.
// Min включается, Max исключается. Прямоугольник с Max <= Min по любой оси пуст.
type Rect struct {
	Min, Max Vec2
}

// NewRect создает прямоугольник по левому нижнему углу и размеру
func NewRect(x, y, width, height int) Rect {
	return Rect{Min: Vec2{X: x, Y: y}, Max: Vec2{X: x + width, Y: y + height}}
}

// Width возвращает ширину (0 для вырожденного прямоугольника)
func (r Rect) Width() int {
	if r.Max.X <= r.Min.X {
		return 0
	}
	return r.Max.X - r.Min.X
}

// Height возвращает высоту (0 для вырожденного прямоугольника)
func (r Rect) Height() int {
	if r.Max.Y <= r.Min.Y {
		return 0
	}
	return r.Max.Y - r.Min.Y
}

// Area возвращает количество целочисленных позиций внутри
func (r Rect) Area() int {
	return r.Width() * r.Height()
}

// Empty сообщает, что в прямоугольнике нет ни одной позиции
func (r Rect) Empty() bool {
	return r.Width() == 0 || r.Height() == 0
}

// Contains проверяет принадлежность точки прямоугольнику
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Min.X && p.X < r.Max.X && p.Y >= r.Min.Y && p.Y < r.Max.Y
}

// Expand расширяет прямоугольник на n клеток во все стороны
func (r Rect) Expand(n int) Rect {
	if r.Empty() {
		return r
	}
	return Rect{
		Min: Vec2{X: r.Min.X - n, Y: r.Min.Y - n},
		Max: Vec2{X: r.Max.X + n, Y: r.Max.Y + n},
	}
}

// Intersect возвращает пересечение двух прямоугольников (может быть пустым)
func (r Rect) Intersect(other Rect) Rect {
	return Rect{
		Min: Vec2{X: max(r.Min.X, other.Min.X), Y: max(r.Min.Y, other.Min.Y)},
		Max: Vec2{X: min(r.Max.X, other.Max.X), Y: min(r.Max.Y, other.Max.Y)},
	}
}

// ForEach обходит все позиции прямоугольника построчно, каждую ровно один раз
func (r Rect) ForEach(fn func(p Vec2)) {
	if r.Empty() {
		return
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			fn(Vec2{X: x, Y: y})
		}
	}
}

// Tiles разбивает прямоугольник на непересекающиеся тайлы размером size x size.
// Крайние тайлы обрезаются по границе прямоугольника.
func (r Rect) Tiles(size int) []Rect {
	if r.Empty() || size <= 0 {
		return nil
	}

	tiles := make([]Rect, 0, ((r.Width()+size-1)/size)*((r.Height()+size-1)/size))
	for y := r.Min.Y; y < r.Max.Y; y += size {
		for x := r.Min.X; x < r.Max.X; x += size {
			tiles = append(tiles, Rect{
				Min: Vec2{X: x, Y: y},
				Max: Vec2{X: min(x+size, r.Max.X), Y: min(y+size, r.Max.Y)},
			})
		}
	}
	return tiles
}
