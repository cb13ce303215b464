// internal/component/status_effect.go
package component

import "go-arena-combat/internal/types"

// PoisonStack — один заряд яда с двумя независимыми бюджетами:
// остаток урона и остаток времени. Заряд снимается, когда любой из них
// исчерпан.
type PoisonStack struct {
	OwnerID    types.EntityID // кому засчитывается нанесённый ядом урон
	Damage     float64        // исходный бюджет урона
	Duration   float64        // исходный бюджет времени, с
	DamageLeft float64
	TimeLeft   float64
}

// PoisonContainer держит все активные заряды на одной цели. Несколько
// зарядов (в том числе от одного владельца) сосуществуют и тают независимо.
type PoisonContainer struct {
	Stacks []*PoisonStack
}
