// internal/component/combatant.go
package component

import "go-arena-combat/internal/types"

// Health — компонент здоровья. Значение всегда зажато в [0, Max].
type Health struct {
	Value float64
	Max   float64
}

// Combatant — круглое тело бойца и его боевая статистика.
// Счётчики урона не зажимаются: они отражают заявленный урон,
// даже если здоровье цели упёрлось в ноль.
type Combatant struct {
	Name           string
	Radius         float64
	Alive          bool
	DamageDealt    float64
	DamageReceived float64
	LastHit        map[types.EntityID]float64 // время последнего удара по каждой цели
	LastClash      map[types.EntityID]float64 // антидребезг сшибки оружия
}

// NewCombatant создаёт живого бойца с пустой историей ударов.
func NewCombatant(name string, radius float64) *Combatant {
	return &Combatant{
		Name:      name,
		Radius:    radius,
		Alive:     true,
		LastHit:   make(map[types.EntityID]float64),
		LastClash: make(map[types.EntityID]float64),
	}
}
