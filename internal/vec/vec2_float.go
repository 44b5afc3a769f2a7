package vec

// Vec2Float представляет 2D координаты (или масштаб по осям) с плавающей точкой
type Vec2Float struct {
	X, Y float64
}

// FromVec2 создает Vec2Float из Vec2
func FromVec2(v Vec2) Vec2Float {
	return Vec2Float{X: float64(v.X), Y: float64(v.Y)}
}

// Scale покомпонентно умножает вектор на другой вектор
func (v Vec2Float) Scale(factor Vec2Float) Vec2Float {
	return Vec2Float{X: v.X * factor.X, Y: v.Y * factor.Y}
}
