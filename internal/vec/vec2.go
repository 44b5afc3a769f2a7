package vec

// Vec2 представляет целочисленные мировые координаты
type Vec2 struct {
	X, Y int
}
