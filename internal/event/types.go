// internal/event/types.go
package event

import "go-arena-combat/internal/types"

const (
	CombatantHit      EventType = "CombatantHit"      // Результативный удар
	WeaponClash       EventType = "WeaponClash"       // Сшибка оружия
	ProjectileFired   EventType = "ProjectileFired"   // Выстрел (стрела или фаербол)
	WallBounce        EventType = "WallBounce"        // Отскок от стены арены
	FireballDetonated EventType = "FireballDetonated" // Детонация фаербола
	CombatantKilled   EventType = "CombatantKilled"   // Боец погиб
	RoundEnded        EventType = "RoundEnded"        // Остался максимум один живой
)

// HitData — полезная нагрузка CombatantHit.
type HitData struct {
	AttackerID types.EntityID
	TargetID   types.EntityID
	Amount     float64
}

// ClashData — полезная нагрузка WeaponClash (и блока щитом).
type ClashData struct {
	FirstID  types.EntityID
	SecondID types.EntityID
}

// ProjectileFiredData — полезная нагрузка ProjectileFired.
type ProjectileFiredData struct {
	OwnerID      types.EntityID
	ProjectileID types.EntityID
}

// DetonationData — полезная нагрузка FireballDetonated.
type DetonationData struct {
	OwnerID types.EntityID
	X, Y    float64
	Radius  float64
	Victims int
}
