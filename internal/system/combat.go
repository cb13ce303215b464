// internal/system/combat.go
package system

import (
	"image/color"

	"go-arena-combat/internal/component"
	"go-arena-combat/internal/config"
	"go-arena-combat/internal/defs"
	"go-arena-combat/internal/entity"
	"go-arena-combat/internal/types"
)

// CanHit проверяет кулдаун пары атакующий->цель: повторный урон той же паре
// не проходит, пока не истечёт config.HitCooldown.
func CanHit(ecs *entity.ECS, attackerID, targetID types.EntityID) bool {
	attacker, ok := ecs.Combatants[attackerID]
	if !ok {
		return false
	}
	last, hit := attacker.LastHit[targetID]
	return !hit || ecs.GameTime-last >= config.HitCooldown
}

// ApplyDamage — единственная точка нанесения урона от прямого попадания.
// Делает всё разом: зажимает здоровье цели, ведёт незажатые счётчики урона,
// применяет бафф оружия атакующего, вешает вспышку, ставит глобальную
// хит-паузу, фиксирует кулдаун пары и, для косы, навешивает заряд яда.
// Возвращает false, если урон не прошёл по кулдауну или цель мертва.
func ApplyDamage(ecs *entity.ECS, attackerID, targetID types.EntityID, amount float64) bool {
	if !CanHit(ecs, attackerID, targetID) {
		return false
	}
	target, ok := ecs.Combatants[targetID]
	if !ok || !target.Alive {
		return false
	}

	applyRawDamage(ecs, attackerID, targetID, amount, config.HitFlashColor)

	attacker := ecs.Combatants[attackerID]
	attacker.LastHit[targetID] = ecs.GameTime

	if w, hasWeapon := ecs.Weapons[attackerID]; hasWeapon {
		ApplyWeaponBuff(w)
		if w.Kind == defs.WeaponScythe {
			addPoisonStack(ecs, attackerID, targetID, w)
		}
	}

	return true
}

// applyRawDamage — мутация состояния без баффа и кулдауна. Используется
// напрямую детонацией фаербола (бафф там применяется один раз на взрыв)
// и ядом (у него свои правила зачёта).
func applyRawDamage(ecs *entity.ECS, attackerID, targetID types.EntityID, amount float64, flash color.RGBA) {
	target := ecs.Combatants[targetID]
	health := ecs.Healths[targetID]

	health.Value -= amount
	if health.Value < 0 {
		health.Value = 0
	}

	// Счётчики не зажимаются: отражают заявленный урон
	target.DamageReceived += amount
	if attacker, ok := ecs.Combatants[attackerID]; ok {
		attacker.DamageDealt += amount
	}

	ecs.DamageFlashes[targetID] = &component.DamageFlash{
		Timer:    config.DamageFlashDuration,
		Duration: config.DamageFlashDuration,
		Color:    flash,
	}

	// Короткая глобальная пауза, чтобы удар читался визуально
	if until := ecs.GameTime + config.HitPauseDuration; until > ecs.PauseUntil {
		ecs.PauseUntil = until
	}
}

// ApplyWeaponBuff — чистая таблица стратегий по видам оружия: каждое удачное
// попадание навсегда усиливает атакующего согласно его определению.
func ApplyWeaponBuff(w *component.Weapon) {
	def := defs.GetWeapon(w.Kind)
	switch w.Kind {
	case defs.WeaponSword, defs.WeaponDagger:
		w.Damage += def.BuffDamage
	case defs.WeaponSpear:
		w.Damage += def.BuffDamage
		w.Length += def.BuffLength
		if def.MaxLength > 0 && w.Length > def.MaxLength {
			w.Length = def.MaxLength
		}
	case defs.WeaponBow:
		if w.ArrowCount < def.MaxArrowCount {
			w.ArrowCount++
		}
	case defs.WeaponShield:
		w.ShieldWidth += def.BuffShieldWidth
		if def.MaxShieldWidth > 0 && w.ShieldWidth > def.MaxShieldWidth {
			w.ShieldWidth = def.MaxShieldWidth
		}
	case defs.WeaponStaff:
		w.FireballDamage += def.BuffFireballDamage
		w.FireballRadius += def.BuffFireballRadius
	case defs.WeaponScythe:
		w.PoisonDamage += def.BuffPoisonDamage
		w.PoisonDuration += def.BuffPoisonDuration
	}
}

func addPoisonStack(ecs *entity.ECS, ownerID, targetID types.EntityID, w *component.Weapon) {
	// Нулевые бюджеты не создают заряд: нечего тратить
	if w.PoisonDamage <= 0 || w.PoisonDuration <= 0 {
		return
	}
	container, ok := ecs.Poisons[targetID]
	if !ok {
		container = &component.PoisonContainer{}
		ecs.Poisons[targetID] = container
	}
	container.Stacks = append(container.Stacks, &component.PoisonStack{
		OwnerID:    ownerID,
		Damage:     w.PoisonDamage,
		Duration:   w.PoisonDuration,
		DamageLeft: w.PoisonDamage,
		TimeLeft:   w.PoisonDuration,
	})
}
