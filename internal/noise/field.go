// Package noise предоставляет детерминированные скалярные поля шума для генерации мира.
package noise

import "github.com/annel0/waterworld/internal/vec"

// Параметры поля островов
const (
	IslandOctaves    = 8     // Количество октав броуновского шума
	IslandFrequency  = 0.001 // Масштаб мировых координат по обеим осям
	IslandSampleRate = 1     // Шаг подвыборки (1 - полное разрешение)
)

// Field - детерминированная скалярная функция двух координат.
// Значение номинально лежит в [-1, 1]. Реализации не должны паниковать ни на каких входах.
type Field interface {
	Sample(x, y float64) float32
}

// FieldFunc позволяет использовать обычную функцию как Field
type FieldFunc func(x, y float64) float32

// Sample вызывает саму функцию
func (f FieldFunc) Sample(x, y float64) float32 {
	return f(x, y)
}

// NewIslandField создает поле, которое использует провайдер островов:
// 8 октав шума Перлина, частота 0.001 по обеим осям, без подвыборки.
func NewIslandField(seed int64) Field {
	return NewSubSampled(
		NewBrownian(seed, IslandOctaves),
		vec.Vec2Float{X: IslandFrequency, Y: IslandFrequency},
		IslandSampleRate,
	)
}
