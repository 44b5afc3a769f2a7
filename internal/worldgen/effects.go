package worldgen

import "github.com/annel0/waterworld/internal/facet"

// Effects - объявление того, какие фасеты провайдер читает и пишет.
// Планировщик использует его для выбора порядка и параллелизма; сам провайдер его не проверяет.
type Effects struct {
	Requires []facet.Type // Только чтение, фасет должен уже существовать
	Produces []facet.Type // Провайдер создает фасет
	Updates  []facet.Type // Чтение и запись существующего фасета
}

// Reads возвращает фасеты, которые должны существовать до вызова провайдера
func (e Effects) Reads() []facet.Type {
	out := make([]facet.Type, 0, len(e.Requires)+len(e.Updates))
	out = append(out, e.Requires...)
	return append(out, e.Updates...)
}

// Writes возвращает фасеты, которые провайдер изменяет
func (e Effects) Writes() []facet.Type {
	out := make([]facet.Type, 0, len(e.Produces)+len(e.Updates))
	out = append(out, e.Produces...)
	return append(out, e.Updates...)
}
