// internal/system/render.go
package system

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-arena-combat/internal/component"
	"go-arena-combat/internal/config"
	"go-arena-combat/internal/defs"
	"go-arena-combat/internal/entity"
	"go-arena-combat/internal/types"
)

// WeaponRenderer рисует оружие по его текущему хитбоксу. Реализация
// выбирается один раз по виду оружия при создании бойца и после этого
// не подменяется.
type WeaponRenderer interface {
	Draw(screen *ebiten.Image, hb *component.Hitbox, clr color.RGBA)
}

// SegmentWeaponRenderer — толстая линия от основания до кончика.
type SegmentWeaponRenderer struct{}

func (SegmentWeaponRenderer) Draw(screen *ebiten.Image, hb *component.Hitbox, clr color.RGBA) {
	width := float32(hb.Radius * 2)
	if width < 2 {
		width = 2
	}
	vector.StrokeLine(screen,
		float32(hb.Base.X), float32(hb.Base.Y),
		float32(hb.Tip.X), float32(hb.Tip.Y),
		width, clr, true)
}

// PolygonWeaponRenderer обводит контур полигона лезвия.
type PolygonWeaponRenderer struct{}

func (PolygonWeaponRenderer) Draw(screen *ebiten.Image, hb *component.Hitbox, clr color.RGBA) {
	n := len(hb.Points)
	for i := 0; i < n; i++ {
		a := hb.Points[i]
		b := hb.Points[(i+1)%n]
		vector.StrokeLine(screen,
			float32(a.X), float32(a.Y),
			float32(b.X), float32(b.Y),
			2.0, clr, true)
	}
}

// WeaponRendererFor выбирает рендерер по виду оружия.
func WeaponRendererFor(kind defs.WeaponKind) WeaponRenderer {
	if kind == defs.WeaponScythe {
		return PolygonWeaponRenderer{}
	}
	return SegmentWeaponRenderer{}
}

// RenderSystem рисует арену и сущности. Только читает состояние симуляции.
type RenderSystem struct {
	ecs       *entity.ECS
	renderers map[defs.WeaponKind]WeaponRenderer
}

func NewRenderSystem(ecs *entity.ECS) *RenderSystem {
	renderers := make(map[defs.WeaponKind]WeaponRenderer)
	for _, w := range ecs.Weapons {
		renderers[w.Kind] = WeaponRendererFor(w.Kind)
	}
	return &RenderSystem{ecs: ecs, renderers: renderers}
}

func (s *RenderSystem) Draw(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, config.ArenaWidth, config.ArenaHeight, config.ArenaColor, false)

	for _, obs := range s.ecs.Obstacles {
		vector.DrawFilledRect(screen,
			float32(obs.X), float32(obs.Y), float32(obs.W), float32(obs.H),
			config.ObstacleColor, false)
	}

	s.drawCombatants(screen)
	s.drawProjectiles(screen)
	s.drawRings(screen)
}

func (s *RenderSystem) drawCombatants(screen *ebiten.Image) {
	for _, id := range s.ecs.LivingCombatantIDs() {
		pos := s.ecs.Positions[id]
		body := s.ecs.Combatants[id]
		render := s.ecs.Renderables[id]

		bodyColor := render.Color
		if flash, ok := s.ecs.DamageFlashes[id]; ok {
			bodyColor = flash.Color
		}

		if render.HasStroke {
			vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), float32(body.Radius)+2, config.BodyStrokeColor, true)
		}
		vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), float32(body.Radius), bodyColor, true)

		if w, ok := s.ecs.Weapons[id]; ok && w.Kind.IsArmed() {
			hb := BuildHitbox(pos, body, w)
			renderer, ok := s.renderers[w.Kind]
			if !ok {
				renderer = WeaponRendererFor(w.Kind)
				s.renderers[w.Kind] = renderer
			}
			renderer.Draw(screen, hb, render.Color)
		}

		s.drawHealthBar(screen, id)
	}
}

func (s *RenderSystem) drawHealthBar(screen *ebiten.Image, id types.EntityID) {
	pos := s.ecs.Positions[id]
	body := s.ecs.Combatants[id]
	health := s.ecs.Healths[id]

	const barW, barH = 40.0, 5.0
	x := float32(pos.X) - barW/2
	y := float32(pos.Y - body.Radius - 14)

	vector.DrawFilledRect(screen, x, y, barW, barH, config.HealthBarBack, false)
	if health.Max > 0 {
		fill := float32(health.Value / health.Max)
		vector.DrawFilledRect(screen, x, y, barW*fill, barH, config.HealthBarFront, false)
	}
}

func (s *RenderSystem) drawProjectiles(screen *ebiten.Image) {
	for _, id := range s.ecs.ProjectileIDs() {
		pos := s.ecs.Positions[id]
		render := s.ecs.Renderables[id]
		vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), render.Radius, render.Color, true)
	}
}

// drawRings рисует расширяющиеся кольца: смерть бойца и детонации.
func (s *RenderSystem) drawRings(screen *ebiten.Image) {
	for id, ring := range s.ecs.RingEffects {
		pos, ok := s.ecs.Positions[id]
		if !ok || ring.Duration <= 0 {
			continue
		}
		progress := ring.CurrentTimer / ring.Duration
		radius := float32(ring.MaxRadius * progress)
		clr := ring.Color
		clr.A = uint8(float64(clr.A) * (1 - progress))
		vector.StrokeCircle(screen, float32(pos.X), float32(pos.Y), radius, 3.0, clr, true)
	}
}
