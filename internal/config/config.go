// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1200
	ScreenHeight = 900

	// Арена занимает левую часть экрана, справа — панель счёта
	PanelWidth  = 280
	ArenaWidth  = ScreenWidth - PanelWidth
	ArenaHeight = ScreenHeight

	MaxDeltaTime = 0.06 // защита от скачка после подвисания кадра

	// Физика
	Gravity            = 420.0 // пикс/с^2, вниз
	MaxSpeed           = 520.0 // глобальный предел скорости тела
	BodyImpulseDamping = 0.2   // демпфирование обмена импульсом тел
	ClashKnockback     = 60.0  // прибавка скорости при сшибке оружия
	BlockKnockback     = 140.0 // отброс нападающего от щита

	// Бой
	HitCooldown         = 0.3  // минимум между ударами пары атакующий->цель, с
	ClashCooldown       = 0.2  // антидребезг сшибки оружия той же пары, с
	HitPauseDuration    = 0.05 // глобальная пауза после результативного удара, с
	DamageFlashDuration = 0.05

	// Боец
	DefaultBodyRadius = 20.0
	DefaultMaxHealth  = 100.0

	// Коса
	ScytheShaftRatio       = 0.6  // доля длины под древко
	ScytheBladeRadiusRatio = 0.35 // радиус лезвия как доля длины
	ScytheArcSamples       = 10   // точек на дуге лезвия, не меньше 6

	// Снаряды
	ArrowBodyRadius    = 3.0
	FireballBodyRadius = 6.0

	// Визуальные эффекты
	DeathEffectDuration  = 0.6
	DeathEffectMaxRadius = 55.0
	DetonationDuration   = 0.35
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	ArenaColor      = color.RGBA{28, 30, 42, 255}
	WallColor       = color.RGBA{70, 100, 120, 220}
	ObstacleColor   = color.RGBA{90, 90, 105, 255}
	PanelColor      = color.RGBA{16, 16, 24, 255}

	TextLightColor = color.RGBA{240, 240, 240, 255}
	TextDimColor   = color.RGBA{150, 150, 160, 255}

	BodyStrokeColor  = color.RGBA{255, 255, 255, 255}
	HitFlashColor    = color.RGBA{255, 80, 80, 255}
	ClashFlashColor  = color.RGBA{255, 235, 59, 255}
	PoisonFlashColor = color.RGBA{105, 220, 105, 255}
	DeathRingColor    = color.RGBA{255, 255, 255, 180}
	PauseOverlayColor = color.RGBA{0, 0, 0, 140}
	FireballColor    = color.RGBA{255, 120, 40, 255}
	ArrowColor       = color.RGBA{230, 230, 210, 255}

	HealthBarBack  = color.RGBA{60, 60, 70, 255}
	HealthBarFront = color.RGBA{76, 175, 80, 255}

	CombatantColors = []color.RGBA{
		{255, 50, 50, 255},   // Red
		{50, 100, 255, 255},  // Blue
		{50, 255, 50, 255},   // Green
		{180, 50, 230, 255},  // Purple
		{255, 215, 0, 255},   // Gold
		{0, 188, 212, 255},   // Cyan
	}

	SpeedButtonColors = []color.Color{
		color.RGBA{70, 130, 180, 220},  // x1
		color.RGBA{220, 60, 60, 220},   // x2
		color.RGBA{194, 178, 128, 255}, // x4
	}
)
