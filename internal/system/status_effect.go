// internal/system/status_effect.go
package system

import (
	"go-arena-combat/internal/component"
	"go-arena-combat/internal/config"
	"go-arena-combat/internal/entity"
	"go-arena-combat/internal/types"
)

// StatusEffectSystem тикает заряды яда. Каждый заряд тратит два независимых
// бюджета, урона и времени, и исчезает, как только любой из них иссяк.
// Заряды не складываются и не продлеваются: даже от одного владельца они
// висят и затухают отдельно.
type StatusEffectSystem struct {
	ecs *entity.ECS
}

func NewStatusEffectSystem(ecs *entity.ECS) *StatusEffectSystem {
	return &StatusEffectSystem{ecs: ecs}
}

func (s *StatusEffectSystem) Update(deltaTime float64) {
	for targetID, container := range s.ecs.Poisons {
		target, ok := s.ecs.Combatants[targetID]
		if !ok || !target.Alive {
			delete(s.ecs.Poisons, targetID)
			continue
		}

		alive := container.Stacks[:0]
		for _, stack := range container.Stacks {
			if s.tickStack(targetID, stack, deltaTime) {
				alive = append(alive, stack)
			}
		}
		container.Stacks = alive
		if len(container.Stacks) == 0 {
			delete(s.ecs.Poisons, targetID)
		}
	}
}

// tickStack списывает с заряда порцию урона за тик. Возвращает false,
// когда заряд исчерпан и подлежит снятию.
func (s *StatusEffectSystem) tickStack(targetID types.EntityID, stack *component.PoisonStack, deltaTime float64) bool {
	if stack.Duration <= 0 || stack.DamageLeft <= 0 || stack.TimeLeft <= 0 {
		return false
	}

	damage := stack.Damage / stack.Duration * deltaTime
	if damage > stack.DamageLeft {
		damage = stack.DamageLeft
	}
	stack.DamageLeft -= damage
	stack.TimeLeft -= deltaTime

	target := s.ecs.Combatants[targetID]
	health := s.ecs.Healths[targetID]
	health.Value -= damage
	if health.Value < 0 {
		health.Value = 0
	}
	target.DamageReceived += damage
	if owner, ok := s.ecs.Combatants[stack.OwnerID]; ok {
		owner.DamageDealt += damage
	}

	// Яд светится своим цветом, без хит-паузы и кулдауна
	s.ecs.DamageFlashes[targetID] = &component.DamageFlash{
		Timer:    config.DamageFlashDuration,
		Duration: config.DamageFlashDuration,
		Color:    config.PoisonFlashColor,
	}

	return stack.DamageLeft > 0 && stack.TimeLeft > 0
}
