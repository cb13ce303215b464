// internal/system/projectile.go
package system

import (
	"image/color"
	"math"

	"go-arena-combat/internal/component"
	"go-arena-combat/internal/config"
	"go-arena-combat/internal/defs"
	"go-arena-combat/internal/entity"
	"go-arena-combat/internal/event"
	"go-arena-combat/internal/types"
	"go-arena-combat/pkg/geom"
)

// ProjectileResolution — итог проверки снаряда за тик.
type ProjectileResolution int

const (
	ResolutionFlying      ProjectileResolution = iota // летит дальше
	ResolutionDeflected                               // сбит оружием
	ResolutionHit                                     // попал в тело
	ResolutionOutOfBounds                             // вылетел за арену
	ResolutionDetonated                               // фаербол взорвался
)

// ProjectileSystem ведёт снаряды: таймеры залпов лука и фаерболов посоха,
// полёт и разрешение каждого снаряда. Снаряд живёт ровно до первого
// нелётного исхода и снимается в том же тике.
//
// Правило разрешено раз и навсегда: снаряды НЕ отскакивают. Стрела за
// границей арены или в препятствии просто исчезает, фаербол — детонирует.
type ProjectileSystem struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
	collision  *CollisionSystem
}

func NewProjectileSystem(ecs *entity.ECS, dispatcher *event.Dispatcher, collision *CollisionSystem) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs, dispatcher: dispatcher, collision: collision}
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	s.updateSpawners(deltaTime)
	s.advanceProjectiles(deltaTime)
}

// updateSpawners крутит таймеры стрелков. Лук копит залп из ArrowCount
// стрел раз в ArrowCooldown и внутри залпа стреляет с интервалом
// ArrowInterval/ArrowCount; посох пускает один фаербол за кулдаун.
func (s *ProjectileSystem) updateSpawners(deltaTime float64) {
	for _, id := range s.ecs.LivingCombatantIDs() {
		w, ok := s.ecs.Weapons[id]
		if !ok {
			continue
		}
		switch w.Kind {
		case defs.WeaponBow:
			s.updateBow(id, w, deltaTime)
		case defs.WeaponStaff:
			s.updateStaff(id, w, deltaTime)
		}
	}
}

func (s *ProjectileSystem) updateBow(id types.EntityID, w *component.Weapon, deltaTime float64) {
	if w.ArrowCount <= 0 {
		return
	}
	if w.ArrowsLeft == 0 {
		w.VolleyTimer -= deltaTime
		if w.VolleyTimer > 0 {
			return
		}
		w.VolleyTimer = w.ArrowCooldown
		w.ArrowsLeft = w.ArrowCount
		w.ShotTimer = 0 // первая стрела залпа уходит в этом же тике
	}

	w.ShotTimer -= deltaTime
	if w.ShotTimer > 0 {
		return
	}
	w.ShotTimer = w.ArrowInterval / float64(w.ArrowCount)
	w.ArrowsLeft--
	s.spawnArrow(id, w)
}

func (s *ProjectileSystem) updateStaff(id types.EntityID, w *component.Weapon, deltaTime float64) {
	w.FireballTimer -= deltaTime
	if w.FireballTimer > 0 {
		return
	}
	w.FireballTimer = w.FireballCooldown
	s.spawnFireball(id, w)
}

func (s *ProjectileSystem) spawnArrow(ownerID types.EntityID, w *component.Weapon) {
	def := defs.GetWeapon(defs.WeaponBow)
	s.spawn(ownerID, w, &component.Projectile{
		Kind:    component.ProjectileArrow,
		OwnerID: ownerID,
		Damage:  w.Damage,
		Radius:  config.ArrowBodyRadius,
	}, def.ArrowSpeed, config.ArrowColor)
}

func (s *ProjectileSystem) spawnFireball(ownerID types.EntityID, w *component.Weapon) {
	def := defs.GetWeapon(defs.WeaponStaff)
	s.spawn(ownerID, w, &component.Projectile{
		Kind:        component.ProjectileFireball,
		OwnerID:     ownerID,
		Damage:      w.FireballDamage,
		Radius:      config.FireballBodyRadius,
		BlastRadius: w.FireballRadius,
	}, def.FireballSpeed, config.FireballColor)
}

// spawn выпускает снаряд из кончика оружия вдоль его текущего угла.
func (s *ProjectileSystem) spawn(ownerID types.EntityID, w *component.Weapon, proj *component.Projectile, speed float64, clr color.RGBA) {
	pos := s.ecs.Positions[ownerID]
	body := s.ecs.Combatants[ownerID]
	dirX := math.Cos(w.Angle)
	dirY := math.Sin(w.Angle)

	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{
		X: pos.X + dirX*(body.Radius+w.Length),
		Y: pos.Y + dirY*(body.Radius+w.Length),
	}
	s.ecs.Velocities[id] = &component.Velocity{VX: dirX * speed, VY: dirY * speed}
	s.ecs.Projectiles[id] = proj
	s.ecs.Renderables[id] = &component.Renderable{Color: clr, Radius: float32(proj.Radius)}

	s.dispatcher.Dispatch(event.Event{Type: event.ProjectileFired, Data: event.ProjectileFiredData{
		OwnerID:      ownerID,
		ProjectileID: id,
	}})
}

func (s *ProjectileSystem) advanceProjectiles(deltaTime float64) {
	hitboxes := s.collision.Hitboxes()
	living := s.ecs.LivingCombatantIDs()

	for _, id := range s.ecs.ProjectileIDs() {
		pos := s.ecs.Positions[id]
		vel := s.ecs.Velocities[id]
		pos.X += vel.VX * deltaTime
		pos.Y += vel.VY * deltaTime

		proj := s.ecs.Projectiles[id]
		if s.resolveProjectile(id, proj, pos, hitboxes, living) != ResolutionFlying {
			s.ecs.RemoveProjectile(id)
		}
	}
}

// resolveProjectile — единственная точка решения судьбы снаряда.
// Порядок проверок фиксирован: границы, препятствия, затем для каждого
// чужого бойца сперва оружие (парирование), потом тело.
func (s *ProjectileSystem) resolveProjectile(
	id types.EntityID,
	proj *component.Projectile,
	pos *component.Position,
	hitboxes map[types.EntityID]*component.Hitbox,
	living []types.EntityID,
) ProjectileResolution {
	if pos.X < 0 || pos.X > config.ArenaWidth || pos.Y < 0 || pos.Y > config.ArenaHeight {
		if proj.Kind == component.ProjectileFireball {
			s.detonate(proj, pos)
			return ResolutionDetonated
		}
		return ResolutionOutOfBounds
	}

	for _, obs := range s.ecs.Obstacles {
		cx, cy := obs.ClosestPoint(pos.X, pos.Y)
		dx, dy := pos.X-cx, pos.Y-cy
		if dx*dx+dy*dy <= proj.Radius*proj.Radius {
			if proj.Kind == component.ProjectileFireball {
				s.detonate(proj, pos)
				return ResolutionDetonated
			}
			return ResolutionOutOfBounds
		}
	}

	center := geom.Point{X: pos.X, Y: pos.Y}

	for _, otherID := range living {
		if otherID == proj.OwnerID {
			continue
		}

		// Парирование раньше тела: оружие прикрывает хозяина
		if hb, ok := hitboxes[otherID]; ok && hitboxTouchesPoint(hb, center, proj.Radius) {
			if proj.Kind == component.ProjectileFireball {
				s.detonate(proj, pos)
				return ResolutionDetonated
			}
			if s.ecs.Weapons[otherID].Kind == defs.WeaponShield {
				// Щит возвращает урон стрелы её владельцу
				ApplyDamage(s.ecs, otherID, proj.OwnerID, proj.Damage)
			}
			return ResolutionDeflected
		}

		bodyPos := s.ecs.Positions[otherID]
		reach := s.ecs.Combatants[otherID].Radius + proj.Radius
		dx, dy := bodyPos.X-pos.X, bodyPos.Y-pos.Y
		if dx*dx+dy*dy > reach*reach {
			continue
		}
		if proj.Kind == component.ProjectileFireball {
			s.detonate(proj, pos)
			return ResolutionDetonated
		}
		if ApplyDamage(s.ecs, proj.OwnerID, otherID, proj.Damage) {
			s.dispatcher.Dispatch(event.Event{Type: event.CombatantHit, Data: event.HitData{
				AttackerID: proj.OwnerID,
				TargetID:   otherID,
				Amount:     proj.Damage,
			}})
		}
		return ResolutionHit
	}

	return ResolutionFlying
}

// detonate бьёт по площади: каждый живой чужой боец в радиусе взрыва
// получает урон фаербола; бафф посоха применяется один раз на взрыв,
// если пострадал хоть кто-то.
func (s *ProjectileSystem) detonate(proj *component.Projectile, pos *component.Position) {
	victims := 0
	for _, targetID := range s.ecs.LivingCombatantIDs() {
		if targetID == proj.OwnerID {
			continue
		}
		tPos := s.ecs.Positions[targetID]
		radius := s.ecs.Combatants[targetID].Radius
		dx, dy := tPos.X-pos.X, tPos.Y-pos.Y
		reach := proj.BlastRadius + radius
		if dx*dx+dy*dy > reach*reach {
			continue
		}
		applyRawDamage(s.ecs, proj.OwnerID, targetID, proj.Damage, config.HitFlashColor)
		victims++
	}

	if victims > 0 {
		if w, ok := s.ecs.Weapons[proj.OwnerID]; ok {
			ApplyWeaponBuff(w)
		}
	}

	s.spawnDetonationRing(pos, proj.BlastRadius)

	s.dispatcher.Dispatch(event.Event{Type: event.FireballDetonated, Data: event.DetonationData{
		OwnerID: proj.OwnerID,
		X:       pos.X,
		Y:       pos.Y,
		Radius:  proj.BlastRadius,
		Victims: victims,
	}})
}

func (s *ProjectileSystem) spawnDetonationRing(pos *component.Position, radius float64) {
	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: pos.X, Y: pos.Y}
	s.ecs.RingEffects[id] = &component.RingEffect{
		MaxRadius: radius,
		Duration:  config.DetonationDuration,
		Color:     config.FireballColor,
	}
}

// hitboxTouchesPoint — контакт хитбокса с кругом снаряда.
func hitboxTouchesPoint(hb *component.Hitbox, p geom.Point, radius float64) bool {
	if hb.Kind == component.HitboxPolygon {
		if geom.PointInPolygon(p, hb.Points) {
			return true
		}
		return geom.DistSqPointPolygon(p, hb.Points) <= radius*radius
	}
	reach := hb.Radius + radius
	return geom.DistSqPointSegment(p, hb.Base, hb.Tip) <= reach*reach
}
