// internal/system/collision.go
package system

import (
	"math"

	"go-arena-combat/internal/component"
	"go-arena-combat/internal/config"
	"go-arena-combat/internal/defs"
	"go-arena-combat/internal/entity"
	"go-arena-combat/internal/event"
	"go-arena-combat/internal/types"
	"go-arena-combat/internal/utils"
	"go-arena-combat/pkg/geom"
)

// CollisionSystem прогоняет все парные проверки тика в фиксированном порядке:
//  1. тело-тело: разведение кругов и обмен демпфированным импульсом;
//  2. оружие-тело: ближний урон по кругу тела с учётом толщины оружия;
//  3. оружие-оружие: сшибка либо блок щитом.
//
// Снаряды (фаза 4) обрабатывает ProjectileSystem — ему нужны те же хитбоксы,
// поэтому они строятся здесь один раз за тик и переживают тик только в нём.
type CollisionSystem struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
	hitboxes   map[types.EntityID]*component.Hitbox
}

func NewCollisionSystem(ecs *entity.ECS, dispatcher *event.Dispatcher) *CollisionSystem {
	return &CollisionSystem{
		ecs:        ecs,
		dispatcher: dispatcher,
		hitboxes:   make(map[types.EntityID]*component.Hitbox),
	}
}

// Hitboxes отдаёт хитбоксы, собранные последним Update. Для ProjectileSystem.
func (s *CollisionSystem) Hitboxes() map[types.EntityID]*component.Hitbox {
	return s.hitboxes
}

func (s *CollisionSystem) Update(deltaTime float64) {
	ids := s.ecs.LivingCombatantIDs()

	s.rebuildHitboxes(ids)

	// Разведение тел раньше проверок оружия: геометрия урона считается
	// уже по разведённым позициям того же тика
	s.resolveBodies(ids)
	s.resolveMeleeHits(ids)
	s.resolveClashes(ids)
}

func (s *CollisionSystem) rebuildHitboxes(ids []types.EntityID) {
	for k := range s.hitboxes {
		delete(s.hitboxes, k)
	}
	for _, id := range ids {
		w, ok := s.ecs.Weapons[id]
		if !ok || !w.Kind.IsArmed() {
			continue
		}
		s.hitboxes[id] = BuildHitbox(s.ecs.Positions[id], s.ecs.Combatants[id], w)
	}
}

// resolveBodies разводит пересёкшиеся круги тел и обменивает их импульсом
// с демпфированием. Касание (расстояние ровно равно сумме радиусов) тоже
// считается контактом.
func (s *CollisionSystem) resolveBodies(ids []types.EntityID) {
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			a, b := ids[i], ids[j]
			posA, posB := s.ecs.Positions[a], s.ecs.Positions[b]
			rA := s.ecs.Combatants[a].Radius
			rB := s.ecs.Combatants[b].Radius

			dx := posB.X - posA.X
			dy := posB.Y - posA.Y
			distSq := dx*dx + dy*dy
			sum := rA + rB
			if distSq > sum*sum {
				continue
			}

			dist := math.Sqrt(distSq)
			var nx, ny float64
			if dist > 1e-9 {
				nx, ny = dx/dist, dy/dist
			} else {
				nx, ny = 1, 0 // совпавшие центры: разводим по произвольной оси
			}

			overlap := sum - dist
			posA.X -= nx * overlap / 2
			posA.Y -= ny * overlap / 2
			posB.X += nx * overlap / 2
			posB.Y += ny * overlap / 2

			velA, velB := s.ecs.Velocities[a], s.ecs.Velocities[b]
			// Обмен проекциями скоростей вдоль нормали, с демпфированием
			dotA := velA.VX*nx + velA.VY*ny
			dotB := velB.VX*nx + velB.VY*ny
			exchange := (dotA - dotB) * (1 - config.BodyImpulseDamping)
			velA.VX -= exchange * nx
			velA.VY -= exchange * ny
			velB.VX += exchange * nx
			velB.VY += exchange * ny
			velA.VX, velA.VY = utils.ClampMagnitude(velA.VX, velA.VY, config.MaxSpeed)
			velB.VX, velB.VY = utils.ClampMagnitude(velB.VX, velB.VY, config.MaxSpeed)
		}
	}
}

// resolveMeleeHits проверяет оружие каждого атакующего против тел остальных.
// Дальнобойные древки (лук, щит, посох) телесного урона не наносят.
func (s *CollisionSystem) resolveMeleeHits(ids []types.EntityID) {
	for _, attackerID := range ids {
		w, ok := s.ecs.Weapons[attackerID]
		if !ok || !w.Kind.CanDealBodyDamage() {
			continue
		}
		hb, ok := s.hitboxes[attackerID]
		if !ok {
			continue
		}

		for _, targetID := range ids {
			if targetID == attackerID {
				continue
			}
			pos := s.ecs.Positions[targetID]
			radius := s.ecs.Combatants[targetID].Radius

			if !hitboxTouchesBody(hb, pos, radius) {
				continue
			}
			if ApplyDamage(s.ecs, attackerID, targetID, w.Damage) {
				s.dispatcher.Dispatch(event.Event{Type: event.CombatantHit, Data: event.HitData{
					AttackerID: attackerID,
					TargetID:   targetID,
					Amount:     w.Damage,
				}})
			}
		}
	}
}

// hitboxTouchesBody — проверка контакта хитбокса с кругом тела, расширенным
// на радиус хитбокса. Для косы сперва попадание центра внутрь полигона,
// затем дистанция до контура как запасной тест для касательных попаданий.
func hitboxTouchesBody(hb *component.Hitbox, pos *component.Position, bodyRadius float64) bool {
	center := geom.Point{X: pos.X, Y: pos.Y}

	if hb.Kind == component.HitboxPolygon {
		if geom.PointInPolygon(center, hb.Points) {
			return true
		}
		return geom.DistSqPointPolygon(center, hb.Points) <= bodyRadius*bodyRadius
	}

	reach := bodyRadius + hb.Radius
	return geom.DistSqPointSegment(center, hb.Base, hb.Tip) <= reach*reach
}

// resolveClashes — оружие против оружия. Обычная сшибка разворачивает оба
// вращения и расталкивает бойцов; пара с ровно одним щитом превращается в
// блок: нападавший получает собственный урон, хозяин щита его зачитывает.
func (s *CollisionSystem) resolveClashes(ids []types.EntityID) {
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			a, b := ids[i], ids[j]
			hbA, okA := s.hitboxes[a]
			hbB, okB := s.hitboxes[b]
			if !okA || !okB {
				continue
			}
			if !hitboxesTouch(hbA, hbB) {
				continue
			}
			if !s.clashReady(a, b) {
				continue
			}

			wA := s.ecs.Weapons[a]
			wB := s.ecs.Weapons[b]
			shieldA := wA.Kind == defs.WeaponShield
			shieldB := wB.Kind == defs.WeaponShield

			if shieldA != shieldB {
				if shieldA {
					s.resolveBlock(a, b, hbA)
				} else {
					s.resolveBlock(b, a, hbB)
				}
				continue
			}

			s.resolveClash(a, b, hbA, hbB)
		}
	}
}

// clashReady — антидребезг: одна и та же пара не сшибается чаще раза
// в config.ClashCooldown. Метка пишется у бойца с меньшим ID.
func (s *CollisionSystem) clashReady(a, b types.EntityID) bool {
	holder := s.ecs.Combatants[a]
	key := b
	if b < a {
		holder = s.ecs.Combatants[b]
		key = a
	}
	if last, ok := holder.LastClash[key]; ok && s.ecs.GameTime-last < config.ClashCooldown {
		return false
	}
	holder.LastClash[key] = s.ecs.GameTime
	return true
}

func (s *CollisionSystem) resolveClash(a, b types.EntityID, hbA, hbB *component.Hitbox) {
	wA := s.ecs.Weapons[a]
	wB := s.ecs.Weapons[b]
	wA.AngularVel = -wA.AngularVel
	wB.AngularVel = -wB.AngularVel

	// Расталкивание вдоль вектора кончик-кончик
	dx := hbB.Tip.X - hbA.Tip.X
	dy := hbB.Tip.Y - hbA.Tip.Y
	dist := math.Sqrt(dx*dx + dy*dy)
	if dist > 1e-9 {
		nx, ny := dx/dist, dy/dist
		velA, velB := s.ecs.Velocities[a], s.ecs.Velocities[b]
		velA.VX -= nx * config.ClashKnockback
		velA.VY -= ny * config.ClashKnockback
		velB.VX += nx * config.ClashKnockback
		velB.VY += ny * config.ClashKnockback
	}

	s.flashClash(a)
	s.flashClash(b)

	s.dispatcher.Dispatch(event.Event{Type: event.WeaponClash, Data: event.ClashData{FirstID: a, SecondID: b}})
}

// resolveBlock — успешный блок щитом: это не размен, а наказание нападавшего.
// Урон равен его собственной атаке и зачитывается хозяину щита; бафф щита
// (рост ширины) применяется внутри ApplyDamage.
func (s *CollisionSystem) resolveBlock(shieldID, attackerID types.EntityID, shieldHb *component.Hitbox) {
	wAttacker := s.ecs.Weapons[attackerID]
	if !ApplyDamage(s.ecs, shieldID, attackerID, wAttacker.Damage) {
		return
	}

	// Отброс нападавшего от плоскости щита
	pos := s.ecs.Positions[attackerID]
	dx := pos.X - shieldHb.Base.X
	dy := pos.Y - shieldHb.Base.Y
	dist := math.Sqrt(dx*dx + dy*dy)
	if dist > 1e-9 {
		vel := s.ecs.Velocities[attackerID]
		vel.VX += dx / dist * config.BlockKnockback
		vel.VY += dy / dist * config.BlockKnockback
	}

	s.dispatcher.Dispatch(event.Event{Type: event.WeaponClash, Data: event.ClashData{FirstID: shieldID, SecondID: attackerID}})
}

func (s *CollisionSystem) flashClash(id types.EntityID) {
	s.ecs.DamageFlashes[id] = &component.DamageFlash{
		Timer:    config.DamageFlashDuration,
		Duration: config.DamageFlashDuration,
		Color:    config.ClashFlashColor,
	}
}

// hitboxesTouch проверяет контакт двух хитбоксов с разбором по форме:
// отрезок-отрезок, полигон-полигон или смешанная пара.
func hitboxesTouch(a, b *component.Hitbox) bool {
	switch {
	case a.Kind == component.HitboxSegment && b.Kind == component.HitboxSegment:
		reach := a.Radius + b.Radius
		return geom.DistSqSegments(a.Base, a.Tip, b.Base, b.Tip) <= reach*reach
	case a.Kind == component.HitboxPolygon && b.Kind == component.HitboxPolygon:
		return geom.PolygonsOverlap(a.Points, b.Points)
	case a.Kind == component.HitboxPolygon:
		return geom.DistSqSegmentPolygon(b.Base, b.Tip, a.Points) <= b.Radius*b.Radius
	default:
		return geom.DistSqSegmentPolygon(a.Base, a.Tip, b.Points) <= a.Radius*a.Radius
	}
}
