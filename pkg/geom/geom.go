// pkg/geom/geom.go
package geom

import "math"

// Point — точка на плоскости.
type Point struct {
	X, Y float64
}

// DistSqPointSegment возвращает квадрат расстояния от точки p до отрезка [a, b].
// Вырожденный отрезок (a == b) сводится к расстоянию до точки, деления на ноль нет.
func DistSqPointSegment(p, a, b Point) float64 {
	abx := b.X - a.X
	aby := b.Y - a.Y
	lenSq := abx*abx + aby*aby
	if lenSq == 0 {
		dx := p.X - a.X
		dy := p.Y - a.Y
		return dx*dx + dy*dy
	}

	// Проекция p на прямую ab, зажатая в пределы отрезка
	t := ((p.X-a.X)*abx + (p.Y-a.Y)*aby) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	cx := a.X + t*abx
	cy := a.Y + t*aby
	dx := p.X - cx
	dy := p.Y - cy
	return dx*dx + dy*dy
}

// cross считает знаковое векторное произведение (b-a) x (c-a).
func cross(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// onSegment проверяет, лежит ли коллинеарная точка p внутри bounding box отрезка [a, b].
func onSegment(a, b, p Point) bool {
	return math.Min(a.X, b.X) <= p.X && p.X <= math.Max(a.X, b.X) &&
		math.Min(a.Y, b.Y) <= p.Y && p.Y <= math.Max(a.Y, b.Y)
}

// SegmentsIntersect проверяет пересечение отрезков [a1, a2] и [b1, b2].
// Основной случай — через знаки векторных произведений, коллинеарные
// случаи разбираются явно через bounding box.
func SegmentsIntersect(a1, a2, b1, b2 Point) bool {
	d1 := cross(b1, b2, a1)
	d2 := cross(b1, b2, a2)
	d3 := cross(a1, a2, b1)
	d4 := cross(a1, a2, b2)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}

	// Коллинеарные и касательные случаи
	if d1 == 0 && onSegment(b1, b2, a1) {
		return true
	}
	if d2 == 0 && onSegment(b1, b2, a2) {
		return true
	}
	if d3 == 0 && onSegment(a1, a2, b1) {
		return true
	}
	if d4 == 0 && onSegment(a1, a2, b2) {
		return true
	}
	return false
}

// DistSqSegments возвращает минимальный квадрат расстояния между двумя отрезками.
// Если отрезки пересекаются, расстояние равно нулю; иначе минимум достигается
// на одной из четырёх комбинаций "конец - отрезок".
func DistSqSegments(a1, a2, b1, b2 Point) float64 {
	if SegmentsIntersect(a1, a2, b1, b2) {
		return 0
	}
	d := DistSqPointSegment(a1, b1, b2)
	if v := DistSqPointSegment(a2, b1, b2); v < d {
		d = v
	}
	if v := DistSqPointSegment(b1, a1, a2); v < d {
		d = v
	}
	if v := DistSqPointSegment(b2, a1, a2); v < d {
		d = v
	}
	return d
}

// PointInPolygon проверяет принадлежность точки многоугольнику методом
// подсчёта чётности пересечений луча (ray casting).
func PointInPolygon(p Point, poly []Point) bool {
	if len(poly) < 3 {
		return false
	}
	inside := false
	j := len(poly) - 1
	for i := 0; i < len(poly); i++ {
		pi := poly[i]
		pj := poly[j]
		if (pi.Y > p.Y) != (pj.Y > p.Y) {
			xCross := (pj.X-pi.X)*(p.Y-pi.Y)/(pj.Y-pi.Y) + pi.X
			if p.X < xCross {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

// PolygonsOverlap проверяет пересечение двух многоугольников: сначала все
// пары рёбер, затем проверка полного вложения по первой вершине каждого
// (рёберные тесты не ловят случай, когда один полигон целиком внутри другого).
func PolygonsOverlap(a, b []Point) bool {
	if len(a) < 3 || len(b) < 3 {
		return false
	}
	for i := 0; i < len(a); i++ {
		a1 := a[i]
		a2 := a[(i+1)%len(a)]
		for j := 0; j < len(b); j++ {
			b1 := b[j]
			b2 := b[(j+1)%len(b)]
			if SegmentsIntersect(a1, a2, b1, b2) {
				return true
			}
		}
	}
	if PointInPolygon(a[0], b) {
		return true
	}
	if PointInPolygon(b[0], a) {
		return true
	}
	return false
}

// DistSqPointPolygon возвращает минимальный квадрат расстояния от точки до
// границы многоугольника. Для точки внутри многоугольника возвращается ноль.
func DistSqPointPolygon(p Point, poly []Point) float64 {
	if PointInPolygon(p, poly) {
		return 0
	}
	minSq := math.MaxFloat64
	for i := 0; i < len(poly); i++ {
		a := poly[i]
		b := poly[(i+1)%len(poly)]
		if v := DistSqPointSegment(p, a, b); v < minSq {
			minSq = v
		}
	}
	return minSq
}

// DistSqSegmentPolygon возвращает минимальный квадрат расстояния от отрезка
// до многоугольника (ноль при пересечении или вложении конца отрезка).
func DistSqSegmentPolygon(a1, a2 Point, poly []Point) float64 {
	if len(poly) < 3 {
		return math.MaxFloat64
	}
	if PointInPolygon(a1, poly) || PointInPolygon(a2, poly) {
		return 0
	}
	minSq := math.MaxFloat64
	for i := 0; i < len(poly); i++ {
		b1 := poly[i]
		b2 := poly[(i+1)%len(poly)]
		if v := DistSqSegments(a1, a2, b1, b2); v < minSq {
			minSq = v
		}
		if minSq == 0 {
			return 0
		}
	}
	return minSq
}
