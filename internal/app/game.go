// internal/app/game.go
package app

import (
	"fmt"

	"go-arena-combat/internal/component"
	"go-arena-combat/internal/config"
	"go-arena-combat/internal/defs"
	"go-arena-combat/internal/entity"
	"go-arena-combat/internal/event"
	"go-arena-combat/internal/system"
	"go-arena-combat/internal/types"
	"go-arena-combat/internal/utils"
)

// Game — корень симуляции: владеет ECS, диспетчером и системами, гоняет
// их в фиксированном порядке. Всё состояние мутируется строго внутри Step.
type Game struct {
	ECS        *entity.ECS
	Dispatcher *event.Dispatcher
	Rng        *utils.PRNGService

	physics      *system.PhysicsSystem
	collision    *system.CollisionSystem
	projectiles  *system.ProjectileSystem
	status       *system.StatusEffectSystem
	visual       *system.VisualEffectSystem
	speedFactor  float64
	roundEndedSent bool
}

// NewGame собирает матч по конфигурации. Меньше двух бойцов — ошибка:
// такому матчу нечего симулировать.
func NewGame(cfg *config.MatchConfig) (*Game, error) {
	if len(cfg.Combatants) < 2 {
		return nil, fmt.Errorf("match needs at least 2 combatants, got %d", len(cfg.Combatants))
	}

	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()

	g := &Game{
		ECS:         ecs,
		Dispatcher:  dispatcher,
		Rng:         utils.NewPRNGService(cfg.Seed),
		speedFactor: 1.0,
	}

	for i, c := range cfg.Combatants {
		g.spawnCombatant(i, c)
	}
	for _, o := range cfg.Obstacles {
		g.spawnObstacle(o)
	}

	g.physics = system.NewPhysicsSystem(ecs, dispatcher)
	g.collision = system.NewCollisionSystem(ecs, dispatcher)
	g.projectiles = system.NewProjectileSystem(ecs, dispatcher, g.collision)
	g.status = system.NewStatusEffectSystem(ecs)
	g.visual = system.NewVisualEffectSystem(ecs)

	return g, nil
}

// SetSpeedFactor задаёт множитель скорости симуляции (x1/x2/x4).
func (g *Game) SetSpeedFactor(f float64) {
	if f > 0 {
		g.speedFactor = f
	}
}

func (g *Game) SpeedFactor() float64 { return g.speedFactor }

// Step — один шаг симуляции. Дельта зажимается снаружи (main), здесь
// только умножается на множитель скорости. Во время окна хит-паузы
// физика и бой стоят, тлеют лишь визуальные эффекты.
func (g *Game) Step(deltaTime float64) {
	dt := deltaTime * g.speedFactor
	g.ECS.GameTime += dt

	paused := g.ECS.GameTime < g.ECS.PauseUntil
	if !paused && g.ECS.GameState.Phase == component.FightPhase {
		g.physics.Update(dt)
		g.collision.Update(dt)
		g.projectiles.Update(dt)
		g.status.Update(dt)
		g.markDeaths()
	}
	g.visual.Update(dt)

	if g.LivingCount() <= 1 && g.ECS.GameState.Phase == component.FightPhase {
		g.ECS.GameState.Phase = component.OverPhase
		if !g.roundEndedSent {
			g.roundEndedSent = true
			g.Dispatcher.Dispatch(event.Event{Type: event.RoundEnded, Data: g.Survivor()})
		}
	}
}

// markDeaths переводит бойцов с нулевым здоровьем в терминальное состояние
// и вешает кольцо на месте гибели. Мёртвый боец выпадает из физики и боя,
// но остаётся адресуемым для счёта.
func (g *Game) markDeaths() {
	for id, c := range g.ECS.Combatants {
		if !c.Alive {
			continue
		}
		if h, ok := g.ECS.Healths[id]; ok && h.Value <= 0 {
			c.Alive = false
			g.spawnDeathRing(id)
			g.Dispatcher.Dispatch(event.Event{Type: event.CombatantKilled, Data: id})
		}
	}
}

func (g *Game) spawnDeathRing(id types.EntityID) {
	pos, ok := g.ECS.Positions[id]
	if !ok {
		return
	}
	ringID := g.ECS.NewEntity()
	g.ECS.Positions[ringID] = &component.Position{X: pos.X, Y: pos.Y}
	g.ECS.RingEffects[ringID] = &component.RingEffect{
		MaxRadius: config.DeathEffectMaxRadius,
		Duration:  config.DeathEffectDuration,
		Color:     config.DeathRingColor,
	}
}

// LivingCount — живых бойцов сейчас.
func (g *Game) LivingCount() int {
	return len(g.ECS.LivingCombatantIDs())
}

// Survivor возвращает последнего живого бойца, либо 0, если таких нет
// или их больше одного.
func (g *Game) Survivor() types.EntityID {
	ids := g.ECS.LivingCombatantIDs()
	if len(ids) != 1 {
		return 0
	}
	return ids[0]
}

// CombatantStat — снимок бойца для панели счёта. Только чтение.
type CombatantStat struct {
	ID             types.EntityID
	Name           string
	Weapon         defs.WeaponKind
	Health         float64
	MaxHealth      float64
	Alive          bool
	DamageDealt    float64
	DamageReceived float64
}

// Snapshot отдаёт статистику всех бойцов, включая погибших, в стабильном
// порядке по идентификатору.
func (g *Game) Snapshot() []CombatantStat {
	stats := make([]CombatantStat, 0, len(g.ECS.Combatants))
	for id, c := range g.ECS.Combatants {
		h := g.ECS.Healths[id]
		stat := CombatantStat{
			ID:             id,
			Name:           c.Name,
			Health:         h.Value,
			MaxHealth:      h.Max,
			Alive:          c.Alive,
			DamageDealt:    c.DamageDealt,
			DamageReceived: c.DamageReceived,
		}
		if w, ok := g.ECS.Weapons[id]; ok {
			stat.Weapon = w.Kind
		}
		stats = append(stats, stat)
	}
	// Стабильный порядок для панели
	for i := 1; i < len(stats); i++ {
		for j := i; j > 0 && stats[j].ID < stats[j-1].ID; j-- {
			stats[j], stats[j-1] = stats[j-1], stats[j]
		}
	}
	return stats
}

// NewRenderSystem строит систему отрисовки поверх текущего ECS.
func (g *Game) NewRenderSystem() *system.RenderSystem {
	return system.NewRenderSystem(g.ECS)
}
