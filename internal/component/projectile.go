// internal/component/projectile.go
package component

import "go-arena-combat/internal/types"

// ProjectileKind — вид снаряда.
type ProjectileKind int

const (
	ProjectileArrow ProjectileKind = iota
	ProjectileFireball
)

// Projectile — летящий снаряд. Владелец хранится только как идентификатор:
// снаряд не владеет бойцом и переживать его не обязан.
type Projectile struct {
	Kind    ProjectileKind
	OwnerID types.EntityID
	Damage  float64
	Radius  float64 // радиус столкновения самого снаряда

	// Только для фаербола
	BlastRadius float64
}
