// internal/system/hitbox.go
package system

import (
	"math"

	"go-arena-combat/internal/component"
	"go-arena-combat/internal/config"
	"go-arena-combat/internal/defs"
	"go-arena-combat/pkg/geom"
)

// BuildHitbox выводит хитбокс оружия из текущей позы бойца. Вызывается
// каждый тик заново: угол оружия меняется непрерывно, кэшировать нечего.
//
// Прямые виды дают толстый отрезок от кромки тела вдоль угла оружия
// (капсула как отрезок + радиус). Коса даёт замкнутый полигон: прямоугольник
// древка, закрытый полукруглой дугой лезвия.
func BuildHitbox(pos *component.Position, body *component.Combatant, w *component.Weapon) *component.Hitbox {
	dirX := math.Cos(w.Angle)
	dirY := math.Sin(w.Angle)

	base := geom.Point{
		X: pos.X + dirX*body.Radius,
		Y: pos.Y + dirY*body.Radius,
	}

	if w.Kind == defs.WeaponScythe {
		reach := w.Length * (config.ScytheShaftRatio + config.ScytheBladeRadiusRatio)
		return &component.Hitbox{
			Kind: component.HitboxPolygon,
			Base: base,
			Tip: geom.Point{
				X: base.X + dirX*reach,
				Y: base.Y + dirY*reach,
			},
			Points: buildScythePolygon(base, dirX, dirY, w),
		}
	}

	thickness := w.Thickness
	if w.Kind == defs.WeaponShield {
		// Щит — широкая планка: бафф за блок растит именно её ширину
		thickness = w.ShieldWidth
	}

	return &component.Hitbox{
		Kind: component.HitboxSegment,
		Base: base,
		Tip: geom.Point{
			X: base.X + dirX*w.Length,
			Y: base.Y + dirY*w.Length,
		},
		Radius: thickness / 2,
	}
}

// buildScythePolygon строит контур косы: прямоугольник древка шириной
// Thickness до shaftEnd, затем полукруглая дуга лезвия радиусом
// Length*ScytheBladeRadiusRatio, охватывающая ±90° вокруг оси оружия.
func buildScythePolygon(base geom.Point, dirX, dirY float64, w *component.Weapon) []geom.Point {
	shaftLen := w.Length * config.ScytheShaftRatio
	bladeR := w.Length * config.ScytheBladeRadiusRatio
	halfW := w.Thickness / 2

	// Перпендикуляр к оси оружия
	perpX := -dirY
	perpY := dirX

	shaftEnd := geom.Point{
		X: base.X + dirX*shaftLen,
		Y: base.Y + dirY*shaftLen,
	}

	samples := config.ScytheArcSamples
	if samples < 6 {
		samples = 6 // грубее — лезвие заметно гранёное и тесты попаданий плывут
	}

	points := make([]geom.Point, 0, samples+5)

	// Прямоугольник древка: против часовой от основания
	points = append(points,
		geom.Point{X: base.X + perpX*halfW, Y: base.Y + perpY*halfW},
		geom.Point{X: shaftEnd.X + perpX*halfW, Y: shaftEnd.Y + perpY*halfW},
	)

	// Дуга лезвия от +90° до -90° относительно оси оружия
	axis := math.Atan2(dirY, dirX)
	for i := 0; i <= samples; i++ {
		a := axis + math.Pi/2 - math.Pi*float64(i)/float64(samples)
		points = append(points, geom.Point{
			X: shaftEnd.X + math.Cos(a)*bladeR,
			Y: shaftEnd.Y + math.Sin(a)*bladeR,
		})
	}

	points = append(points,
		geom.Point{X: shaftEnd.X - perpX*halfW, Y: shaftEnd.Y - perpY*halfW},
		geom.Point{X: base.X - perpX*halfW, Y: base.Y - perpY*halfW},
	)

	return points
}
