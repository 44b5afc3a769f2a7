// Package islands добавляет к высоте поверхности острова - положительный вклад
// масштабированного фрактального шума.
package islands

import (
	"fmt"
	"math"
	"sync"

	"github.com/annel0/waterworld/internal/facet"
	"github.com/annel0/waterworld/internal/logging"
	"github.com/annel0/waterworld/internal/noise"
	"github.com/annel0/waterworld/internal/util"
	"github.com/annel0/waterworld/internal/vec"
	"github.com/annel0/waterworld/internal/worldgen"
)

const (
	// ConfigurationName - стабильный ключ конфигурации, не менять: по нему сохраняются пресеты
	ConfigurationName = "Islands"
	// SeedOffset отделяет поле островов от других провайдеров с тем же сидом мира
	SeedOffset int64 = 2
)

var (
	_ worldgen.ConfigurableFacetProvider = (*Provider)(nil)
	_ worldgen.SchemaProvider            = (*Provider)(nil)
)

// Provider поднимает рельеф по шуму островов. Он только добавляет высоту и никогда не опускает ее.
//
// Process для непересекающихся регионов безопасен из нескольких горутин: поле шума и высота
// снимаются под read-lock в начале вызова. Изменение полей живой конфигурации на месте
// во время Process не синхронизировано.
type Provider struct {
	mu       sync.RWMutex
	field    noise.Field
	config   *Configuration
	newField func(seed int64) noise.Field
	logger   *logging.Logger
}

// NewProvider создает несидированный провайдер с конфигурацией по умолчанию
func NewProvider() *Provider {
	return &Provider{
		config:   DefaultConfiguration(),
		newField: noise.NewIslandField,
		logger:   logging.GetProviderLogger(),
	}
}

// SetSeed пересоздает поле шума с сидом seed + SeedOffset
func (p *Provider) SetSeed(seed int64) {
	field := p.newField(seed + SeedOffset)

	p.mu.Lock()
	p.field = field
	p.mu.Unlock()

	p.logger.Debug("%s: поле шума создано, сид %d", ConfigurationName, seed+SeedOffset)
}

// Seeded сообщает, вызывался ли SetSeed
func (p *Provider) Seeded() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.field != nil
}

// Process добавляет вклад островов к каждой клетке границ региона.
// Клетки фасета за пределами границ региона не меняются.
func (p *Provider) Process(region *facet.Region) error {
	p.mu.RLock()
	field := p.field
	islandHeight := p.config.IslandHeight
	p.mu.RUnlock()

	if field == nil {
		return fmt.Errorf("%s: %w", ConfigurationName, worldgen.ErrNotSeeded)
	}

	surface, err := region.SurfaceHeight()
	if err != nil {
		return fmt.Errorf("%s: %w", ConfigurationName, err)
	}

	region.Bounds().Intersect(surface.WorldRegion()).ForEach(func(pos vec.Vec2) {
		at := vec.FromVec2(pos)
		raw := field.Sample(at.X, at.Y)
		surface.SetWorld(pos.X, pos.Y, surface.GetWorld(pos.X, pos.Y)+Contribution(raw, islandHeight))
	})
	return nil
}

// Contribution переводит значение шума в добавку к высоте: raw*islandHeight,
// ограниченное диапазоном [0, islandHeight]. Отрицательный шум отбрасывается.
// Для неконечного результата и отрицательной высоты островов вклад равен 0.
func Contribution(raw, islandHeight float32) float32 {
	c := util.Clamp(raw*islandHeight, 0, max(islandHeight, 0))
	if math.IsNaN(float64(c)) || math.IsInf(float64(c), 0) {
		return 0
	}
	return c
}

// DeclaredEffects: провайдер читает и изменяет только высоту поверхности
func (p *Provider) DeclaredEffects() worldgen.Effects {
	return worldgen.Effects{Updates: []facet.Type{facet.SurfaceHeight}}
}

// ConfigurationName возвращает "Islands"
func (p *Provider) ConfigurationName() string {
	return ConfigurationName
}

// Configuration возвращает живой экземпляр конфигурации.
// Изменения его полей вступают в силу при следующем Process.
func (p *Provider) Configuration() worldgen.Component {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.config
}

// SetConfiguration целиком заменяет конфигурацию. Принимает *Configuration (становится живым
// экземпляром) или Configuration (копируется). Значения не проверяются.
func (p *Provider) SetConfiguration(c worldgen.Component) error {
	var next *Configuration
	switch cfg := c.(type) {
	case *Configuration:
		if cfg == nil {
			return fmt.Errorf("%s: %w: nil *Configuration", ConfigurationName, worldgen.ErrConfigurationType)
		}
		next = cfg
	case Configuration:
		next = &cfg
	default:
		return fmt.Errorf("%s: %w: %T", ConfigurationName, worldgen.ErrConfigurationType, c)
	}

	p.mu.Lock()
	p.config = next
	p.mu.Unlock()

	p.logger.Debug("%s: высота островов %.1f", ConfigurationName, next.IslandHeight)
	return nil
}
