// internal/component/hitbox.go
package component

import "go-arena-combat/pkg/geom"

// HitboxKind — форма хитбокса оружия.
type HitboxKind int

const (
	HitboxSegment HitboxKind = iota // толстый отрезок (капсула)
	HitboxPolygon                   // замкнутый многоугольник (коса)
)

// Hitbox — эфемерная геометрия оружия на текущий тик. Никогда не живёт
// дольше одного тика: угол оружия меняется непрерывно.
type Hitbox struct {
	Kind HitboxKind

	// Сегмент: от основания у кромки тела до кончика
	Base   geom.Point
	Tip    geom.Point
	Radius float64 // половина толщины

	// Полигон: упорядоченный список вершин
	Points []geom.Point
}
