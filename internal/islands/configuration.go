package islands

import "github.com/annel0/waterworld/internal/worldgen"

// Значения конфигурации по умолчанию и подсказки редактору
const (
	DefaultIslandHeight float32 = 400

	islandHeightMin       = 200
	islandHeightMax       = 500
	islandHeightStep      = 20
	islandHeightPrecision = 1
)

// Configuration - настраиваемые параметры провайдера островов.
// Диапазон [200, 500] - только подсказка редактору: любые значения принимаются как есть.
type Configuration struct {
	IslandHeight float32 `yaml:"islandHeight" json:"islandHeight"` // Максимальная высота острова
}

// DefaultConfiguration возвращает конфигурацию по умолчанию
func DefaultConfiguration() *Configuration {
	return &Configuration{IslandHeight: DefaultIslandHeight}
}

// Schema возвращает подсказки для редактора конфигурации
func (p *Provider) Schema() []worldgen.FieldSchema {
	return []worldgen.FieldSchema{
		{
			Field:       "islandHeight",
			Min:         islandHeightMin,
			Max:         islandHeightMax,
			Step:        islandHeightStep,
			Precision:   islandHeightPrecision,
			Description: "Mountain Height",
		},
	}
}
