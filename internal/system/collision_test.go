package system

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"go-arena-combat/internal/config"
	"go-arena-combat/internal/defs"
	"go-arena-combat/internal/entity"
	"go-arena-combat/internal/event"
)

func TestBodyCollisionBoundaryInclusive(t *testing.T) {
	ecs := entity.NewECS()
	a := addCombatant(ecs, "a", defs.WeaponUnarmed, 100, 100)
	b := addCombatant(ecs, "b", defs.WeaponUnarmed, 140, 100) // ровно сумма радиусов
	ecs.Velocities[a].VX = 50
	ecs.Velocities[b].VX = -50

	sys := NewCollisionSystem(ecs, event.NewDispatcher())
	sys.Update(0.01)

	// Касание считается контактом: скорости обменялись с демпфированием
	assert.Less(t, ecs.Velocities[a].VX, 50.0)
	assert.Greater(t, ecs.Velocities[b].VX, -50.0)
}

func TestBodyCollisionSeparates(t *testing.T) {
	ecs := entity.NewECS()
	a := addCombatant(ecs, "a", defs.WeaponUnarmed, 100, 100)
	b := addCombatant(ecs, "b", defs.WeaponUnarmed, 110, 100)

	NewCollisionSystem(ecs, event.NewDispatcher()).Update(0.01)

	dx := ecs.Positions[b].X - ecs.Positions[a].X
	dy := ecs.Positions[b].Y - ecs.Positions[a].Y
	dist := math.Sqrt(dx*dx + dy*dy)
	assert.InDelta(t, 2*config.DefaultBodyRadius, dist, 1e-6, "bodies pushed to exact contact")
}

func TestMeleeHitOncePerCooldownWindow(t *testing.T) {
	ecs := entity.NewECS()
	// 50px между центрами, радиус 20, меч 35: клинок достаёт до тела
	a := addCombatant(ecs, "a", defs.WeaponSword, 100, 100)
	b := addCombatant(ecs, "b", defs.WeaponUnarmed, 150, 100)
	ecs.Positions[b].X = 150
	ecs.Weapons[a].Angle = 0          // клинок смотрит точно на цель
	ecs.Weapons[a].AngularVel = 0     // и не уходит с линии
	ecs.Combatants[a].Radius = 20
	ecs.Combatants[b].Radius = 20

	sys := NewCollisionSystem(ecs, event.NewDispatcher())

	const dt = 1.0 / 60
	hits := 0
	healthBefore := ecs.Healths[b].Value
	for i := 0; i < 60; i++ { // секунда боя при непрерывном контакте
		sys.Update(dt)
		ecs.GameTime += dt
		if ecs.Healths[b].Value < healthBefore {
			hits++
			healthBefore = ecs.Healths[b].Value
		}
		// Разводить тела физика не будет, держим позицию
		ecs.Positions[a].X, ecs.Positions[a].Y = 100, 100
		ecs.Positions[b].X, ecs.Positions[b].Y = 150, 100
	}

	// За секунду при кулдауне 0.3с возможно не больше четырёх ударов
	assert.GreaterOrEqual(t, hits, 3)
	assert.LessOrEqual(t, hits, 4)
}

func TestRangedKindsDealNoBodyDamage(t *testing.T) {
	ecs := entity.NewECS()
	a := addCombatant(ecs, "a", defs.WeaponBow, 100, 100)
	b := addCombatant(ecs, "b", defs.WeaponUnarmed, 150, 100)
	ecs.Weapons[a].Angle = 0
	ecs.Weapons[a].AngularVel = 0

	NewCollisionSystem(ecs, event.NewDispatcher()).Update(0.01)

	assert.Equal(t, config.DefaultMaxHealth, ecs.Healths[b].Value)
}

func TestClashReversesBothRotations(t *testing.T) {
	ecs := entity.NewECS()
	a := addCombatant(ecs, "a", defs.WeaponSword, 100, 100)
	b := addCombatant(ecs, "b", defs.WeaponSword, 190, 100)
	// Клинки навстречу друг другу по одной прямой
	ecs.Weapons[a].Angle = 0
	ecs.Weapons[b].Angle = math.Pi
	avA := ecs.Weapons[a].AngularVel
	avB := ecs.Weapons[b].AngularVel

	NewCollisionSystem(ecs, event.NewDispatcher()).Update(0.01)

	assert.Equal(t, -avA, ecs.Weapons[a].AngularVel)
	assert.Equal(t, -avB, ecs.Weapons[b].AngularVel)
	assert.Contains(t, ecs.DamageFlashes, a)
	assert.Contains(t, ecs.DamageFlashes, b)
	// Урона при сшибке нет
	assert.Equal(t, config.DefaultMaxHealth, ecs.Healths[a].Value)
	assert.Equal(t, config.DefaultMaxHealth, ecs.Healths[b].Value)
}

func TestClashAntiBounce(t *testing.T) {
	ecs := entity.NewECS()
	a := addCombatant(ecs, "a", defs.WeaponSword, 100, 100)
	b := addCombatant(ecs, "b", defs.WeaponSword, 190, 100)
	ecs.Weapons[a].Angle = 0
	ecs.Weapons[a].AngularVel = 0
	ecs.Weapons[b].Angle = math.Pi
	ecs.Weapons[b].AngularVel = 0

	sys := NewCollisionSystem(ecs, event.NewDispatcher())
	sys.Update(0.01)
	velAfterFirst := ecs.Velocities[a].VX

	// Тот же контакт в следующем тике внутри окна антидребезга
	sys.Update(0.01)
	assert.Equal(t, velAfterFirst, ecs.Velocities[a].VX, "no second knockback within clash cooldown")
}

func TestShieldBlockPunishesAttacker(t *testing.T) {
	ecs := entity.NewECS()
	attacker := addCombatant(ecs, "swordsman", defs.WeaponSword, 100, 100)
	blocker := addCombatant(ecs, "blocker", defs.WeaponShield, 190, 100)
	ecs.Weapons[attacker].Angle = 0
	ecs.Weapons[blocker].Angle = math.Pi

	widthBefore := ecs.Weapons[blocker].ShieldWidth
	damage := ecs.Weapons[attacker].Damage

	NewCollisionSystem(ecs, event.NewDispatcher()).Update(0.01)

	// Блок: нападавший получил собственный урон, хозяин щита цел
	assert.InDelta(t, config.DefaultMaxHealth-damage, ecs.Healths[attacker].Value, 1e-9)
	assert.Equal(t, config.DefaultMaxHealth, ecs.Healths[blocker].Value)
	assert.InDelta(t, damage, ecs.Combatants[blocker].DamageDealt, 1e-9)
	assert.Greater(t, ecs.Weapons[blocker].ShieldWidth, widthBefore)
	// И отлетел от щита
	assert.Less(t, ecs.Velocities[attacker].VX, 0.0)
}

func TestUnarmedPairNeverClashes(t *testing.T) {
	ecs := entity.NewECS()
	a := addCombatant(ecs, "a", defs.WeaponUnarmed, 100, 100)
	b := addCombatant(ecs, "b", defs.WeaponUnarmed, 150, 100)

	sys := NewCollisionSystem(ecs, event.NewDispatcher())
	sys.Update(0.01)

	assert.Empty(t, sys.Hitboxes())
	assert.NotContains(t, ecs.DamageFlashes, a)
	assert.NotContains(t, ecs.DamageFlashes, b)
}
