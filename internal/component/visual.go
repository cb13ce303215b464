// internal/component/visual.go
package component

import "image/color"

// DamageFlash указывает, что сущность должна быть отрисована цветом эффекта.
type DamageFlash struct {
	Timer    float64 // остаток времени эффекта
	Duration float64
	Color    color.RGBA
}

// RingEffect — расширяющееся кольцо: гибель бойца или детонация фаербола.
type RingEffect struct {
	MaxRadius    float64
	Duration     float64
	CurrentTimer float64
	Color        color.RGBA
}
