package util

// Float ограничивает обобщенные математические помощники типами с плавающей точкой
type Float interface {
	~float32 | ~float64
}

// Clamp ограничивает value диапазоном [lo, hi].
// Сначала проверяется нижняя граница, затем верхняя, поэтому при lo > hi результат равен hi.
// NaN возвращается без изменений.
func Clamp[T Float](value, lo, hi T) T {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}

// Lerp линейно интерполирует между a и b. При t == 0 результат в точности равен a.
func Lerp[T Float](a, b, t T) T {
	return a + t*(b-a)
}
