// Package terrain содержит базовые провайдеры рельефа, которые создают фасеты для остальных.
package terrain

import (
	"fmt"
	"sync"

	"github.com/annel0/waterworld/internal/facet"
	"github.com/annel0/waterworld/internal/worldgen"
)

// SurfaceConfigurationName - ключ конфигурации базовой поверхности
const SurfaceConfigurationName = "Base Surface"

var (
	_ worldgen.ConfigurableFacetProvider = (*SurfaceProvider)(nil)
	_ worldgen.SchemaProvider            = (*SurfaceProvider)(nil)
)

// SurfaceConfiguration - параметры базовой поверхности
type SurfaceConfiguration struct {
	BaseHeight float32 `yaml:"baseHeight" json:"baseHeight"` // Высота морского дна
}

// SurfaceProvider создает фасет высоты поверхности и заполняет его постоянной базовой высотой,
// включая рамку хранилища.
type SurfaceProvider struct {
	mu     sync.RWMutex
	seeded bool
	config *SurfaceConfiguration
}

// NewSurfaceProvider создает провайдер с базовой высотой 0
func NewSurfaceProvider() *SurfaceProvider {
	return &SurfaceProvider{config: &SurfaceConfiguration{}}
}

// SetSeed только отмечает провайдер готовым: плоской поверхности сид не нужен
func (p *SurfaceProvider) SetSeed(int64) {
	p.mu.Lock()
	p.seeded = true
	p.mu.Unlock()
}

// Process создает фасет высоты для региона
func (p *SurfaceProvider) Process(region *facet.Region) error {
	p.mu.RLock()
	seeded := p.seeded
	base := p.config.BaseHeight
	p.mu.RUnlock()

	if !seeded {
		return fmt.Errorf("%s: %w", SurfaceConfigurationName, worldgen.ErrNotSeeded)
	}

	surface := facet.NewSurfaceHeightFacet(region.Bounds(), region.Border())
	surface.Fill(base)
	region.SetFacet(surface)
	return nil
}

// DeclaredEffects: провайдер создает фасет высоты поверхности
func (p *SurfaceProvider) DeclaredEffects() worldgen.Effects {
	return worldgen.Effects{Produces: []facet.Type{facet.SurfaceHeight}}
}

// ConfigurationName возвращает "Base Surface"
func (p *SurfaceProvider) ConfigurationName() string {
	return SurfaceConfigurationName
}

// Configuration возвращает живой экземпляр конфигурации
func (p *SurfaceProvider) Configuration() worldgen.Component {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.config
}

// SetConfiguration заменяет конфигурацию
func (p *SurfaceProvider) SetConfiguration(c worldgen.Component) error {
	var next *SurfaceConfiguration
	switch cfg := c.(type) {
	case *SurfaceConfiguration:
		if cfg == nil {
			return fmt.Errorf("%s: %w: nil *SurfaceConfiguration", SurfaceConfigurationName, worldgen.ErrConfigurationType)
		}
		next = cfg
	case SurfaceConfiguration:
		next = &cfg
	default:
		return fmt.Errorf("%s: %w: %T", SurfaceConfigurationName, worldgen.ErrConfigurationType, c)
	}

	p.mu.Lock()
	p.config = next
	p.mu.Unlock()
	return nil
}

// Schema возвращает подсказки для редактора
func (p *SurfaceProvider) Schema() []worldgen.FieldSchema {
	return []worldgen.FieldSchema{
		{Field: "baseHeight", Min: -100, Max: 100, Step: 10, Precision: 1, Description: "Sea floor height"},
	}
}
