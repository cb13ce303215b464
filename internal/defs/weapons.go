// internal/defs/weapons.go
package defs

// WeaponLibrary — реестр определений оружия, ключ — вид.
// Заполняется значениями по умолчанию, может быть переопределён из yaml.
var WeaponLibrary map[WeaponKind]WeaponDefinition

func init() {
	ResetWeaponLibrary()
}

// ResetWeaponLibrary возвращает библиотеку к встроенным значениям.
func ResetWeaponLibrary() {
	WeaponLibrary = make(map[WeaponKind]WeaponDefinition, len(defaultWeapons))
	for _, def := range defaultWeapons {
		WeaponLibrary[def.Kind] = def
	}
}

// GetWeapon возвращает определение по виду. Неизвестный или пустой вид
// сводится к нейтральной заглушке с нулевым уроном и нулевой длиной,
// чтобы кривой конфиг не ронял симуляцию.
func GetWeapon(kind WeaponKind) WeaponDefinition {
	if def, ok := WeaponLibrary[kind]; ok {
		return def
	}
	return WeaponDefinition{Kind: WeaponUnarmed, Name: "Unarmed"}
}

var defaultWeapons = []WeaponDefinition{
	{
		Kind:       WeaponSword,
		Name:       "Sword",
		Damage:     8,
		Length:     35,
		Thickness:  6,
		AngularVel: 3.4,
		Color:      RGBA{200, 200, 220, 255},
		BuffDamage: 1,
	},
	{
		Kind:       WeaponSpear,
		Name:       "Spear",
		Damage:     6,
		Length:     45,
		Thickness:  4,
		AngularVel: 2.8,
		Color:      RGBA{170, 140, 90, 255},
		BuffDamage: 0.5,
		BuffLength: 2,
		MaxLength:  90,
	},
	{
		Kind:       WeaponDagger,
		Name:       "Dagger",
		Damage:     4,
		Length:     18,
		Thickness:  5,
		AngularVel: 6.0,
		Color:      RGBA{160, 160, 170, 255},
		BuffDamage: 1.5,
	},
	{
		Kind:          WeaponBow,
		Name:          "Bow",
		Damage:        5,
		Length:        28,
		Thickness:     4,
		AngularVel:    2.2,
		Color:         RGBA{140, 195, 74, 255},
		ArrowCount:    1,
		MaxArrowCount: 6,
		ArrowCooldown: 2.0,
		ArrowInterval: 0.9,
		ArrowSpeed:    420,
	},
	{
		Kind:            WeaponShield,
		Name:            "Shield",
		Damage:          6, // в блоке не участвует: нападающий получает свой же урон
		Length:          24,
		Thickness:       6,
		AngularVel:      1.8,
		Color:           RGBA{120, 144, 156, 255},
		ShieldWidth:     16,
		MaxShieldWidth:  44,
		BuffShieldWidth: 2,
	},
	{
		Kind:               WeaponStaff,
		Name:               "Staff",
		Damage:             4,
		Length:             32,
		Thickness:          5,
		AngularVel:         2.0,
		Color:              RGBA{255, 87, 34, 255},
		FireballDamage:     7,
		FireballRadius:     40,
		FireballCooldown:   2.4,
		FireballSpeed:      260,
		BuffFireballDamage: 1,
		BuffFireballRadius: 3,
	},
	{
		Kind:               WeaponScythe,
		Name:               "Scythe",
		Damage:             5,
		Length:             40,
		Thickness:          5,
		AngularVel:         2.6,
		Color:              RGBA{156, 39, 176, 255},
		PoisonDamage:       6,
		PoisonDuration:     2.5,
		BuffPoisonDamage:   1.5,
		BuffPoisonDuration: 0.25,
	},
}
