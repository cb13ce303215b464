// internal/system/visual_effect.go
package system

import (
	"go-arena-combat/internal/entity"
)

// VisualEffectSystem гасит таймеры вспышек и двигает кольца эффектов.
// Работает и во время хит-паузы: эффекты должны дотлевать, даже когда
// физика стоит.
type VisualEffectSystem struct {
	ecs *entity.ECS
}

func NewVisualEffectSystem(ecs *entity.ECS) *VisualEffectSystem {
	return &VisualEffectSystem{ecs: ecs}
}

func (s *VisualEffectSystem) Update(deltaTime float64) {
	for id, flash := range s.ecs.DamageFlashes {
		flash.Timer -= deltaTime
		if flash.Timer <= 0 {
			delete(s.ecs.DamageFlashes, id)
		}
	}

	for id, ring := range s.ecs.RingEffects {
		ring.CurrentTimer += deltaTime
		if ring.CurrentTimer >= ring.Duration {
			delete(s.ecs.RingEffects, id)
			delete(s.ecs.Positions, id)
		}
	}
}
