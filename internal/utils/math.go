// internal/utils/math.go
package utils

import "math"

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to float64, t float64) float64 {
	return from + (to-from)*t
}

// NormalizeAngle нормализует угол в диапазон [-π, π]
func NormalizeAngle(angle float64) float64 {
	const twoPi = 2 * math.Pi
	angle = math.Mod(angle, twoPi)
	if angle > math.Pi {
		angle -= twoPi
	} else if angle < -math.Pi {
		angle += twoPi
	}
	return angle
}

// ClampMagnitude зажимает длину вектора (vx, vy) сверху значением max.
func ClampMagnitude(vx, vy, max float64) (float64, float64) {
	speedSq := vx*vx + vy*vy
	if speedSq <= max*max || speedSq == 0 {
		return vx, vy
	}
	scale := max / math.Sqrt(speedSq)
	return vx * scale, vy * scale
}
