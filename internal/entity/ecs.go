// internal/entity/ecs.go
package entity

import (
	"go-arena-combat/internal/component"
	"go-arena-combat/internal/types"
)

// ECS — плоское хранилище компонентов по идентификатору сущности.
// Всё состояние принадлежит корню симуляции и мутируется строго внутри
// одного шага; конкурентных писателей нет.
type ECS struct {
	GameTime   float64
	PauseUntil float64 // глобальное окно хит-паузы: до этого времени физика и бой стоят
	NextID     types.EntityID

	Positions     map[types.EntityID]*component.Position
	Velocities    map[types.EntityID]*component.Velocity
	Healths       map[types.EntityID]*component.Health
	Combatants    map[types.EntityID]*component.Combatant
	Weapons       map[types.EntityID]*component.Weapon
	Renderables   map[types.EntityID]*component.Renderable
	Projectiles   map[types.EntityID]*component.Projectile
	Obstacles     map[types.EntityID]*component.Obstacle
	Poisons       map[types.EntityID]*component.PoisonContainer
	DamageFlashes map[types.EntityID]*component.DamageFlash
	RingEffects   map[types.EntityID]*component.RingEffect

	GameState *component.GameState
}

func NewECS() *ECS {
	return &ECS{
		NextID:        1,
		Positions:     make(map[types.EntityID]*component.Position),
		Velocities:    make(map[types.EntityID]*component.Velocity),
		Healths:       make(map[types.EntityID]*component.Health),
		Combatants:    make(map[types.EntityID]*component.Combatant),
		Weapons:       make(map[types.EntityID]*component.Weapon),
		Renderables:   make(map[types.EntityID]*component.Renderable),
		Projectiles:   make(map[types.EntityID]*component.Projectile),
		Obstacles:     make(map[types.EntityID]*component.Obstacle),
		Poisons:       make(map[types.EntityID]*component.PoisonContainer),
		DamageFlashes: make(map[types.EntityID]*component.DamageFlash),
		RingEffects:   make(map[types.EntityID]*component.RingEffect),
		GameState:     &component.GameState{Phase: component.FightPhase},
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// LivingCombatantIDs возвращает живых бойцов в стабильном порядке.
// Порядок обхода map недетерминирован, а порядок пар влияет на
// разрешение столкновений, поэтому сортируем по идентификатору.
func (ecs *ECS) LivingCombatantIDs() []types.EntityID {
	ids := make([]types.EntityID, 0, len(ecs.Combatants))
	for id, c := range ecs.Combatants {
		if c.Alive {
			ids = append(ids, id)
		}
	}
	sortEntityIDs(ids)
	return ids
}

// ProjectileIDs возвращает активные снаряды в стабильном порядке.
func (ecs *ECS) ProjectileIDs() []types.EntityID {
	ids := make([]types.EntityID, 0, len(ecs.Projectiles))
	for id := range ecs.Projectiles {
		ids = append(ids, id)
	}
	sortEntityIDs(ids)
	return ids
}

func sortEntityIDs(ids []types.EntityID) {
	// Вставками: списки короткие, сортировка нужна только для стабильности
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0 && ids[j] < ids[j-1]; j-- {
			ids[j], ids[j-1] = ids[j-1], ids[j]
		}
	}
}

// RemoveProjectile снимает с сущности все компоненты снаряда.
func (ecs *ECS) RemoveProjectile(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Renderables, id)
	delete(ecs.Projectiles, id)
}
