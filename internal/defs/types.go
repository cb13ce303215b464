// internal/defs/types.go
package defs

// WeaponKind — закрытый набор видов оружия.
type WeaponKind string

const (
	WeaponUnarmed WeaponKind = "UNARMED"
	WeaponSword   WeaponKind = "SWORD"
	WeaponSpear   WeaponKind = "SPEAR"
	WeaponDagger  WeaponKind = "DAGGER"
	WeaponBow     WeaponKind = "BOW"
	WeaponShield  WeaponKind = "SHIELD"
	WeaponStaff   WeaponKind = "STAFF"
	WeaponScythe  WeaponKind = "SCYTHE"
)

// CanDealBodyDamage сообщает, наносит ли оружие урон телу при прямом контакте.
// Стреляющие и защитные виды (лук, щит, посох) бьют снарядами или блоком.
func (k WeaponKind) CanDealBodyDamage() bool {
	switch k {
	case WeaponSword, WeaponSpear, WeaponDagger, WeaponScythe:
		return true
	}
	return false
}

// IsArmed — участвует ли оружие в проверках "оружие против оружия".
func (k WeaponKind) IsArmed() bool {
	return k != WeaponUnarmed && k != ""
}

// RGBA — цвет в yaml-дружелюбном виде.
type RGBA [4]uint8

// WeaponDefinition описывает вид оружия: базовые параметры, параметры
// снарядов/яда и приросты от баффа за удачное попадание.
type WeaponDefinition struct {
	Kind       WeaponKind `yaml:"kind"`
	Name       string     `yaml:"name"`
	Damage     float64    `yaml:"damage"`
	Length     float64    `yaml:"length"`
	Thickness  float64    `yaml:"thickness"`
	AngularVel float64    `yaml:"angular_vel"` // рад/с, знак задаёт направление вращения
	Color      RGBA       `yaml:"color"`

	// Лук
	ArrowCount    int     `yaml:"arrow_count"` // выстрелов в залпе
	MaxArrowCount int     `yaml:"max_arrow_count"`
	ArrowCooldown float64 `yaml:"arrow_cooldown"` // период между залпами, с
	ArrowInterval float64 `yaml:"arrow_interval"` // базовый интервал, делится на размер залпа
	ArrowSpeed    float64 `yaml:"arrow_speed"`

	// Посох
	FireballDamage   float64 `yaml:"fireball_damage"`
	FireballRadius   float64 `yaml:"fireball_radius"`
	FireballCooldown float64 `yaml:"fireball_cooldown"`
	FireballSpeed    float64 `yaml:"fireball_speed"`

	// Коса
	PoisonDamage   float64 `yaml:"poison_damage"`
	PoisonDuration float64 `yaml:"poison_duration"`

	// Щит
	ShieldWidth    float64 `yaml:"shield_width"`
	MaxShieldWidth float64 `yaml:"max_shield_width"`

	// Приросты от баффа
	BuffDamage         float64 `yaml:"buff_damage"`
	BuffLength         float64 `yaml:"buff_length"`
	MaxLength          float64 `yaml:"max_length"`
	BuffShieldWidth    float64 `yaml:"buff_shield_width"`
	BuffFireballDamage float64 `yaml:"buff_fireball_damage"`
	BuffFireballRadius float64 `yaml:"buff_fireball_radius"`
	BuffPoisonDamage   float64 `yaml:"buff_poison_damage"`
	BuffPoisonDuration float64 `yaml:"buff_poison_duration"`
}
