// internal/app/spawn.go
package app

import (
	"go-arena-combat/internal/component"
	"go-arena-combat/internal/config"
	"go-arena-combat/internal/defs"
)

// spawnCombatant создаёт бойца по конфигурации. Неизвестное оружие не
// валит матч: GetWeapon подставит нейтральную заглушку с нулевым уроном.
func (g *Game) spawnCombatant(index int, c config.CombatantConfig) {
	id := g.ECS.NewEntity()

	g.ECS.Positions[id] = &component.Position{X: c.X, Y: c.Y}
	g.ECS.Velocities[id] = &component.Velocity{
		VX: g.Rng.Jitter(config.MaxSpeed / 4),
		VY: g.Rng.Jitter(config.MaxSpeed / 4),
	}
	g.ECS.Healths[id] = &component.Health{
		Value: config.DefaultMaxHealth,
		Max:   config.DefaultMaxHealth,
	}
	g.ECS.Combatants[id] = component.NewCombatant(c.Name, config.DefaultBodyRadius)

	def := defs.GetWeapon(defs.WeaponKind(c.Weapon))
	g.ECS.Weapons[id] = component.NewWeapon(def, g.Rng.Angle())

	clr := config.CombatantColors[index%len(config.CombatantColors)]
	g.ECS.Renderables[id] = &component.Renderable{
		Color:     clr,
		Radius:    float32(config.DefaultBodyRadius),
		HasStroke: true,
	}
}

func (g *Game) spawnObstacle(o config.ObstacleConfig) {
	id := g.ECS.NewEntity()
	g.ECS.Obstacles[id] = &component.Obstacle{X: o.X, Y: o.Y, W: o.W, H: o.H}
}
