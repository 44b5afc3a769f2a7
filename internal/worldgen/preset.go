package worldgen

import (
	"fmt"
	"reflect"
	"sort"

	"gopkg.in/yaml.v3"
)

// Preset - сохраненные конфигурации провайдеров. Ключ - ConfigurationName провайдера.
type Preset map[string]yaml.Node

// ParsePreset разбирает YAML вида `Islands: {islandHeight: 450}`
func ParsePreset(data []byte) (Preset, error) {
	var preset Preset
	if err := yaml.Unmarshal(data, &preset); err != nil {
		return nil, fmt.Errorf("parse preset: %w", err)
	}
	return preset, nil
}

// ApplyPreset применяет конфигурации к провайдерам конвейера.
// Декодирование начинается с копии текущей конфигурации, поэтому отсутствующие поля сохраняют значения.
// Записи для неизвестных провайдеров пропускаются с предупреждением.
func ApplyPreset(c *Chain, preset Preset) error {
	providers, err := c.Configurable()
	if err != nil {
		return err
	}

	names := make([]string, 0, len(preset))
	for name := range preset {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		p, ok := providers[name]
		if !ok {
			c.logger.Warn("Пресет содержит конфигурацию неизвестного провайдера %q, пропускаем", name)
			continue
		}

		node := preset[name]
		if node.Kind == 0 || node.Tag == "!!null" {
			continue
		}

		next, err := decodeOnto(p.Configuration(), &node)
		if err != nil {
			return fmt.Errorf("preset %s: %w", name, err)
		}
		if err := p.SetConfiguration(next); err != nil {
			return fmt.Errorf("preset %s: %w", name, err)
		}
		c.logger.Debug("Конфигурация %s применена из пресета", name)
	}
	return nil
}

// ExportPreset сериализует текущие конфигурации всех настраиваемых провайдеров
func ExportPreset(c *Chain) ([]byte, error) {
	providers, err := c.Configurable()
	if err != nil {
		return nil, err
	}

	out := make(map[string]Component, len(providers))
	for name, p := range providers {
		out[name] = p.Configuration()
	}

	data, err := yaml.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("export preset: %w", err)
	}
	return data, nil
}

// decodeOnto декодирует node в новый экземпляр того же типа, что и current, начиная с копии current
func decodeOnto(current Component, node *yaml.Node) (Component, error) {
	v := reflect.ValueOf(current)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return nil, fmt.Errorf("%w: %T", ErrConfigurationType, current)
	}

	fresh := reflect.New(v.Elem().Type())
	fresh.Elem().Set(v.Elem())
	if err := node.Decode(fresh.Interface()); err != nil {
		return nil, fmt.Errorf("decode configuration: %w", err)
	}
	return fresh.Interface(), nil
}
