// internal/component/weapon.go
package component

import "go-arena-combat/internal/defs"

// Weapon — текущее состояние оружия бойца. Хитбокс здесь не хранится:
// он каждый тик заново выводится из позы (см. system.BuildHitbox).
type Weapon struct {
	Kind       defs.WeaponKind
	Angle      float64 // рад
	AngularVel float64 // рад/с
	Length     float64
	Thickness  float64
	Damage     float64

	// Лук: залп из ArrowCount стрел раз в ArrowCooldown
	ArrowCount    int
	ArrowCooldown float64
	ArrowInterval float64 // базовый интервал, делится на размер залпа
	VolleyTimer   float64 // до начала следующего залпа
	ArrowsLeft    int     // не выпущено в текущем залпе
	ShotTimer     float64 // до следующей стрелы внутри залпа

	// Посох
	FireballDamage   float64
	FireballRadius   float64
	FireballCooldown float64
	FireballTimer    float64

	// Коса
	PoisonDamage   float64
	PoisonDuration float64

	// Щит: ширина растёт от баффа за блок
	ShieldWidth float64
}

// NewWeapon разворачивает определение в начальное состояние оружия.
func NewWeapon(def defs.WeaponDefinition, startAngle float64) *Weapon {
	return &Weapon{
		Kind:             def.Kind,
		Angle:            startAngle,
		AngularVel:       def.AngularVel,
		Length:           def.Length,
		Thickness:        def.Thickness,
		Damage:           def.Damage,
		ArrowCount:       def.ArrowCount,
		ArrowCooldown:    def.ArrowCooldown,
		ArrowInterval:    def.ArrowInterval,
		VolleyTimer:      def.ArrowCooldown,
		FireballDamage:   def.FireballDamage,
		FireballRadius:   def.FireballRadius,
		FireballCooldown: def.FireballCooldown,
		FireballTimer:    def.FireballCooldown,
		PoisonDamage:     def.PoisonDamage,
		PoisonDuration:   def.PoisonDuration,
		ShieldWidth:      def.ShieldWidth,
	}
}
