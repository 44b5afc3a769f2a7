package noise

import (
	"github.com/aquilax/go-perlin"
)

const (
	amplitudeFalloff = 2.0 // Каждая октава вдвое слабее предыдущей
	lacunarity       = 2.0 // Каждая октава вдвое чаще предыдущей
)

// Brownian - фрактальный броуновский шум: сумма октав решеточного шума Перлина.
// Таблица перестановок строится один раз в конструкторе и дальше только читается,
// поэтому Sample можно вызывать из нескольких горутин.
type Brownian struct {
	perlin  *perlin.Perlin
	octaves int
}

// NewBrownian создает генератор с указанным сидом и количеством октав (минимум одна)
func NewBrownian(seed int64, octaves int) *Brownian {
	if octaves < 1 {
		octaves = 1
	}

	return &Brownian{
		perlin:  perlin.NewPerlin(amplitudeFalloff, lacunarity, int32(octaves), seed),
		octaves: octaves,
	}
}

// Octaves возвращает количество октав
func (b *Brownian) Octaves() int {
	return b.octaves
}

// Sample возвращает значение шума в точке
func (b *Brownian) Sample(x, y float64) float32 {
	return float32(b.perlin.Noise2D(x, y))
}
