package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-arena-combat/internal/component"
	"go-arena-combat/internal/config"
	"go-arena-combat/internal/defs"
	"go-arena-combat/internal/entity"
	"go-arena-combat/internal/types"
)

// addCombatant кладёт в ECS бойца с указанным оружием в точке (x, y).
func addCombatant(ecs *entity.ECS, name string, kind defs.WeaponKind, x, y float64) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Velocities[id] = &component.Velocity{}
	ecs.Healths[id] = &component.Health{Value: config.DefaultMaxHealth, Max: config.DefaultMaxHealth}
	ecs.Combatants[id] = component.NewCombatant(name, config.DefaultBodyRadius)
	ecs.Weapons[id] = component.NewWeapon(defs.GetWeapon(kind), 0)
	return id
}

func TestApplyDamageClampsHealthButNotCounters(t *testing.T) {
	ecs := entity.NewECS()
	a := addCombatant(ecs, "a", defs.WeaponSword, 0, 0)
	b := addCombatant(ecs, "b", defs.WeaponSword, 100, 0)
	ecs.Healths[b].Value = 10

	require.True(t, ApplyDamage(ecs, a, b, 15))

	assert.Equal(t, 0.0, ecs.Healths[b].Value)
	assert.Equal(t, 15.0, ecs.Combatants[b].DamageReceived)
	assert.Equal(t, 15.0, ecs.Combatants[a].DamageDealt)
}

func TestApplyDamageRespectsCooldown(t *testing.T) {
	ecs := entity.NewECS()
	a := addCombatant(ecs, "a", defs.WeaponSword, 0, 0)
	b := addCombatant(ecs, "b", defs.WeaponSword, 100, 0)

	require.True(t, ApplyDamage(ecs, a, b, 5))
	assert.False(t, ApplyDamage(ecs, a, b, 5), "same pair within cooldown")

	// Обратное направление — другая пара, кулдаун независим
	assert.True(t, ApplyDamage(ecs, b, a, 5))

	ecs.GameTime += config.HitCooldown
	assert.True(t, ApplyDamage(ecs, a, b, 5))
}

func TestApplyDamageSetsFlashAndPause(t *testing.T) {
	ecs := entity.NewECS()
	a := addCombatant(ecs, "a", defs.WeaponSword, 0, 0)
	b := addCombatant(ecs, "b", defs.WeaponSword, 100, 0)
	ecs.GameTime = 3

	require.True(t, ApplyDamage(ecs, a, b, 5))

	flash, ok := ecs.DamageFlashes[b]
	require.True(t, ok)
	assert.Equal(t, config.HitFlashColor, flash.Color)
	assert.InDelta(t, 3+config.HitPauseDuration, ecs.PauseUntil, 1e-9)
}

func TestApplyDamageIgnoresDeadTarget(t *testing.T) {
	ecs := entity.NewECS()
	a := addCombatant(ecs, "a", defs.WeaponSword, 0, 0)
	b := addCombatant(ecs, "b", defs.WeaponSword, 100, 0)
	ecs.Combatants[b].Alive = false

	assert.False(t, ApplyDamage(ecs, a, b, 5))
}

func TestWeaponBuffTable(t *testing.T) {
	t.Run("sword gains damage", func(t *testing.T) {
		w := component.NewWeapon(defs.GetWeapon(defs.WeaponSword), 0)
		before := w.Damage
		ApplyWeaponBuff(w)
		assert.Greater(t, w.Damage, before)
	})

	t.Run("spear gains range up to cap", func(t *testing.T) {
		def := defs.GetWeapon(defs.WeaponSpear)
		w := component.NewWeapon(def, 0)
		for i := 0; i < 100; i++ {
			ApplyWeaponBuff(w)
		}
		assert.Equal(t, def.MaxLength, w.Length)
	})

	t.Run("bow gains arrows up to cap", func(t *testing.T) {
		def := defs.GetWeapon(defs.WeaponBow)
		w := component.NewWeapon(def, 0)
		for i := 0; i < 100; i++ {
			ApplyWeaponBuff(w)
		}
		assert.Equal(t, def.MaxArrowCount, w.ArrowCount)
	})

	t.Run("shield widens up to cap", func(t *testing.T) {
		def := defs.GetWeapon(defs.WeaponShield)
		w := component.NewWeapon(def, 0)
		for i := 0; i < 100; i++ {
			ApplyWeaponBuff(w)
		}
		assert.Equal(t, def.MaxShieldWidth, w.ShieldWidth)
	})

	t.Run("staff grows fireball", func(t *testing.T) {
		w := component.NewWeapon(defs.GetWeapon(defs.WeaponStaff), 0)
		d, r := w.FireballDamage, w.FireballRadius
		ApplyWeaponBuff(w)
		assert.Greater(t, w.FireballDamage, d)
		assert.Greater(t, w.FireballRadius, r)
	})

	t.Run("scythe grows poison", func(t *testing.T) {
		w := component.NewWeapon(defs.GetWeapon(defs.WeaponScythe), 0)
		d, dur := w.PoisonDamage, w.PoisonDuration
		ApplyWeaponBuff(w)
		assert.Greater(t, w.PoisonDamage, d)
		assert.Greater(t, w.PoisonDuration, dur)
	})
}

func TestScytheHitPushesPoisonStack(t *testing.T) {
	ecs := entity.NewECS()
	a := addCombatant(ecs, "a", defs.WeaponScythe, 0, 0)
	b := addCombatant(ecs, "b", defs.WeaponScythe, 100, 0)

	require.True(t, ApplyDamage(ecs, a, b, 5))

	container, ok := ecs.Poisons[b]
	require.True(t, ok)
	require.Len(t, container.Stacks, 1)
	stack := container.Stacks[0]
	assert.Equal(t, a, stack.OwnerID)
	assert.Equal(t, stack.Damage, stack.DamageLeft)
	assert.Equal(t, stack.Duration, stack.TimeLeft)

	// Повторный удар после кулдауна добавляет независимый заряд
	ecs.GameTime += config.HitCooldown
	require.True(t, ApplyDamage(ecs, a, b, 5))
	assert.Len(t, ecs.Poisons[b].Stacks, 2)
}
