// Package worldgen описывает контракт провайдеров фасетов и простой конвейер,
// который вызывает их для регионов мира.
package worldgen

import (
	"errors"

	"github.com/annel0/waterworld/internal/facet"
)

var (
	// ErrNotSeeded - Process вызван до SetSeed
	ErrNotSeeded = errors.New("worldgen: provider is not seeded")
	// ErrConfigurationType - SetConfiguration получил запись чужого типа
	ErrConfigurationType = errors.New("worldgen: configuration type mismatch")
	// ErrUnknownConfiguration - в конвейере нет провайдера с таким именем конфигурации
	ErrUnknownConfiguration = errors.New("worldgen: unknown configuration")
	// ErrDuplicateConfiguration - два провайдера объявили одно имя конфигурации
	ErrDuplicateConfiguration = errors.New("worldgen: duplicate configuration name")
)

// Component - запись конфигурации провайдера (обычно указатель на структуру с yaml-тегами)
type Component interface{}

// FacetProvider - подключаемый этап генерации, который заполняет или изменяет фасеты региона.
//
// SetSeed вызывается один раз перед генерацией; дальше вывод провайдера должен быть
// воспроизводимым. Process вызывается для каждого региона и не должен трогать
// ничего за пределами его фасетов.
type FacetProvider interface {
	SetSeed(seed int64)
	Process(region *facet.Region) error
	DeclaredEffects() Effects
}

// ConfigurableFacetProvider - провайдер с настраиваемой конфигурацией
type ConfigurableFacetProvider interface {
	FacetProvider
	// ConfigurationName - стабильное имя, ключ для сохранения пресетов
	ConfigurationName() string
	Configuration() Component
	SetConfiguration(c Component) error
}

// FieldSchema описывает подсказки редактору для одного поля конфигурации.
// Логика провайдеров на схему не опирается.
type FieldSchema struct {
	Field       string  `yaml:"field" json:"field"`
	Min         float64 `yaml:"min" json:"min"`
	Max         float64 `yaml:"max" json:"max"`
	Step        float64 `yaml:"step" json:"step"`
	Precision   int     `yaml:"precision" json:"precision"`
	Description string  `yaml:"description" json:"description"`
}

// SchemaProvider реализуют провайдеры, которые публикуют схему своей конфигурации
type SchemaProvider interface {
	Schema() []FieldSchema
}
