package worldgen

import (
	"fmt"
	"sync"

	"github.com/annel0/waterworld/internal/facet"
	"github.com/annel0/waterworld/internal/logging"
)

// Chain вызывает провайдеры в порядке регистрации.
// Process для непересекающихся регионов можно вызывать из нескольких горутин.
type Chain struct {
	mu        sync.RWMutex
	providers []FacetProvider
	logger    *logging.Logger
}

// NewChain создает конвейер из провайдеров
func NewChain(providers ...FacetProvider) *Chain {
	c := &Chain{logger: logging.GetWorldgenLogger()}
	for _, p := range providers {
		c.Add(p)
	}
	return c
}

// Add добавляет провайдер в конец конвейера
func (c *Chain) Add(p FacetProvider) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.providers = append(c.providers, p)
}

// Providers возвращает копию списка провайдеров
func (c *Chain) Providers() []FacetProvider {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]FacetProvider(nil), c.providers...)
}

// SetSeed передает сид всем провайдерам
func (c *Chain) SetSeed(seed int64) {
	for _, p := range c.Providers() {
		p.SetSeed(seed)
	}
	c.logger.Debug("Сид %d передан %d провайдерам", seed, len(c.Providers()))
}

// Process прогоняет регион через все провайдеры.
// Перед вызовом провайдера проверяется, что все читаемые им фасеты уже есть в регионе.
func (c *Chain) Process(region *facet.Region) error {
	for i, p := range c.Providers() {
		for _, t := range p.DeclaredEffects().Reads() {
			if !region.Has(t) {
				return fmt.Errorf("provider #%d (%s): %w: %s", i, providerName(p), facet.ErrMissingFacet, t)
			}
		}
		if err := p.Process(region); err != nil {
			return fmt.Errorf("provider #%d (%s): %w", i, providerName(p), err)
		}
	}
	return nil
}

// Configurable возвращает настраиваемые провайдеры, индексированные по имени конфигурации
func (c *Chain) Configurable() (map[string]ConfigurableFacetProvider, error) {
	out := make(map[string]ConfigurableFacetProvider)
	for _, p := range c.Providers() {
		cp, ok := p.(ConfigurableFacetProvider)
		if !ok {
			continue
		}
		name := cp.ConfigurationName()
		if _, exists := out[name]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateConfiguration, name)
		}
		out[name] = cp
	}
	return out, nil
}

// Lookup ищет настраиваемый провайдер по имени конфигурации
func (c *Chain) Lookup(name string) (ConfigurableFacetProvider, error) {
	for _, p := range c.Providers() {
		if cp, ok := p.(ConfigurableFacetProvider); ok && cp.ConfigurationName() == name {
			return cp, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownConfiguration, name)
}

func providerName(p FacetProvider) string {
	if cp, ok := p.(ConfigurableFacetProvider); ok {
		return cp.ConfigurationName()
	}
	return fmt.Sprintf("%T", p)
}
