package system

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-arena-combat/internal/component"
	"go-arena-combat/internal/config"
	"go-arena-combat/internal/defs"
)

func TestBuildHitboxSegmentStartsAtBodyEdge(t *testing.T) {
	pos := &component.Position{X: 100, Y: 100}
	body := component.NewCombatant("a", 20)
	w := component.NewWeapon(defs.GetWeapon(defs.WeaponSword), 0)

	hb := BuildHitbox(pos, body, w)

	require.Equal(t, component.HitboxSegment, hb.Kind)
	assert.InDelta(t, 120.0, hb.Base.X, 1e-9)
	assert.InDelta(t, 100.0, hb.Base.Y, 1e-9)
	assert.InDelta(t, 120.0+w.Length, hb.Tip.X, 1e-9)
	assert.InDelta(t, w.Thickness/2, hb.Radius, 1e-9)
}

func TestBuildHitboxSegmentFollowsAngle(t *testing.T) {
	pos := &component.Position{X: 0, Y: 0}
	body := component.NewCombatant("a", 10)
	w := component.NewWeapon(defs.GetWeapon(defs.WeaponSpear), math.Pi/2)

	hb := BuildHitbox(pos, body, w)

	assert.InDelta(t, 0.0, hb.Base.X, 1e-9)
	assert.InDelta(t, 10.0, hb.Base.Y, 1e-9)
	assert.InDelta(t, 10.0+w.Length, hb.Tip.Y, 1e-9)
}

func TestBuildHitboxShieldUsesWidthAsThickness(t *testing.T) {
	pos := &component.Position{X: 0, Y: 0}
	body := component.NewCombatant("a", 10)
	w := component.NewWeapon(defs.GetWeapon(defs.WeaponShield), 0)
	w.ShieldWidth = 30

	hb := BuildHitbox(pos, body, w)

	assert.InDelta(t, 15.0, hb.Radius, 1e-9)
}

func TestScythePolygonFarthestVertex(t *testing.T) {
	pos := &component.Position{X: 50, Y: 50}
	body := component.NewCombatant("a", 20)
	w := component.NewWeapon(defs.GetWeapon(defs.WeaponScythe), 0)

	hb := BuildHitbox(pos, body, w)
	require.Equal(t, component.HitboxPolygon, hb.Kind)
	require.GreaterOrEqual(t, len(hb.Points), 6)

	// Самая дальняя от основания вершина лежит на оси оружия на расстоянии
	// length*(shaftRatio+bladeRadiusRatio), с точностью до дискретизации дуги
	far := 0.0
	for _, p := range hb.Points {
		dx := p.X - hb.Base.X
		dy := p.Y - hb.Base.Y
		if d := math.Sqrt(dx*dx + dy*dy); d > far {
			far = d
		}
	}
	expected := w.Length * (config.ScytheShaftRatio + config.ScytheBladeRadiusRatio)
	assert.InDelta(t, expected, far, 0.5)
}

func TestScythePolygonContainsBladePoint(t *testing.T) {
	pos := &component.Position{X: 0, Y: 0}
	body := component.NewCombatant("a", 20)
	w := component.NewWeapon(defs.GetWeapon(defs.WeaponScythe), 0)

	hb := BuildHitbox(pos, body, w)

	// Точка в центре лезвия: на оси чуть дальше конца древка
	shaftEndX := 20 + w.Length*config.ScytheShaftRatio
	assert.True(t, hitboxTouchesBody(hb, &component.Position{X: shaftEndX, Y: 0}, 1))
	// Точка далеко в стороне не задевается даже с запасом тела
	assert.False(t, hitboxTouchesBody(hb, &component.Position{X: shaftEndX, Y: 200}, 20))
}
