// internal/system/physics.go
package system

import (
	"go-arena-combat/internal/config"
	"go-arena-combat/internal/entity"
	"go-arena-combat/internal/event"
	"go-arena-combat/internal/types"
	"go-arena-combat/internal/utils"
	"math"
)

// PhysicsSystem — интегратор: гравитация, предел скорости, перенос позиций,
// отражение от стен арены, выталкивание из препятствий и вращение оружия.
// Мёртвые тела не двигаются.
type PhysicsSystem struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
}

func NewPhysicsSystem(ecs *entity.ECS, dispatcher *event.Dispatcher) *PhysicsSystem {
	return &PhysicsSystem{ecs: ecs, dispatcher: dispatcher}
}

func (s *PhysicsSystem) Update(deltaTime float64) {
	for _, id := range s.ecs.LivingCombatantIDs() {
		pos := s.ecs.Positions[id]
		vel := s.ecs.Velocities[id]
		body := s.ecs.Combatants[id]
		if pos == nil || vel == nil {
			continue
		}

		vel.VY += config.Gravity * deltaTime
		vel.VX, vel.VY = utils.ClampMagnitude(vel.VX, vel.VY, config.MaxSpeed)

		pos.X += vel.VX * deltaTime
		pos.Y += vel.VY * deltaTime

		s.bounceOffWalls(id, body.Radius)
		s.pushOutOfObstacles(id, body.Radius)

		if w, ok := s.ecs.Weapons[id]; ok {
			w.Angle = utils.NormalizeAngle(w.Angle + w.AngularVel*deltaTime)
		}
	}
}

// bounceOffWalls возвращает тело внутрь арены и зеркально отражает
// соответствующую компоненту скорости.
func (s *PhysicsSystem) bounceOffWalls(id types.EntityID, radius float64) {
	pos := s.ecs.Positions[id]
	vel := s.ecs.Velocities[id]
	bounced := false

	if pos.X < radius {
		pos.X = radius
		if vel.VX < 0 {
			vel.VX = -vel.VX
		}
		bounced = true
	} else if pos.X > config.ArenaWidth-radius {
		pos.X = config.ArenaWidth - radius
		if vel.VX > 0 {
			vel.VX = -vel.VX
		}
		bounced = true
	}
	if pos.Y < radius {
		pos.Y = radius
		if vel.VY < 0 {
			vel.VY = -vel.VY
		}
		bounced = true
	} else if pos.Y > config.ArenaHeight-radius {
		pos.Y = config.ArenaHeight - radius
		if vel.VY > 0 {
			vel.VY = -vel.VY
		}
		bounced = true
	}

	if bounced && s.dispatcher != nil {
		s.dispatcher.Dispatch(event.Event{Type: event.WallBounce, Data: id})
	}
}

// pushOutOfObstacles выталкивает круг тела из пересекаемых прямоугольников
// по оси наименьшего проникновения и гасит скорость вдоль этой оси.
func (s *PhysicsSystem) pushOutOfObstacles(id types.EntityID, radius float64) {
	pos := s.ecs.Positions[id]
	vel := s.ecs.Velocities[id]

	for _, obs := range s.ecs.Obstacles {
		cx, cy := obs.ClosestPoint(pos.X, pos.Y)
		dx := pos.X - cx
		dy := pos.Y - cy
		distSq := dx*dx + dy*dy
		if distSq >= radius*radius {
			continue
		}

		if distSq > 1e-9 {
			// Центр снаружи прямоугольника: выталкиваем вдоль нормали контакта
			dist := math.Sqrt(distSq)
			nx, ny := dx/dist, dy/dist
			pos.X = cx + nx*radius
			pos.Y = cy + ny*radius
			dot := vel.VX*nx + vel.VY*ny
			if dot < 0 {
				vel.VX -= 2 * dot * nx
				vel.VY -= 2 * dot * ny
			}
			continue
		}

		// Центр внутри прямоугольника: наименьшее проникновение к ближайшей грани
		left := pos.X - obs.X
		right := obs.X + obs.W - pos.X
		top := pos.Y - obs.Y
		bottom := obs.Y + obs.H - pos.Y

		min := left
		axis := 0 // 0=влево, 1=вправо, 2=вверх, 3=вниз
		if right < min {
			min = right
			axis = 1
		}
		if top < min {
			min = top
			axis = 2
		}
		if bottom < min {
			axis = 3
		}

		switch axis {
		case 0:
			pos.X = obs.X - radius
			if vel.VX > 0 {
				vel.VX = -vel.VX
			}
		case 1:
			pos.X = obs.X + obs.W + radius
			if vel.VX < 0 {
				vel.VX = -vel.VX
			}
		case 2:
			pos.Y = obs.Y - radius
			if vel.VY > 0 {
				vel.VY = -vel.VY
			}
		case 3:
			pos.Y = obs.Y + obs.H + radius
			if vel.VY < 0 {
				vel.VY = -vel.VY
			}
		}
	}
}
