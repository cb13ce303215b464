package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistSqPointSegmentDegenerate(t *testing.T) {
	// Вырожденный отрезок должен вести себя как точка
	p := Point{X: 3, Y: 4}
	a := Point{X: 0, Y: 0}

	got := DistSqPointSegment(p, a, a)
	want := p.X*p.X + p.Y*p.Y
	assert.InDelta(t, want, got, 1e-9)
}

func TestDistSqPointSegmentProjection(t *testing.T) {
	a := Point{X: 0, Y: 0}
	b := Point{X: 10, Y: 0}

	// Проекция внутрь отрезка
	assert.InDelta(t, 4.0, DistSqPointSegment(Point{X: 5, Y: 2}, a, b), 1e-9)
	// Проекция за пределами отрезка прижимается к концу
	assert.InDelta(t, 25.0, DistSqPointSegment(Point{X: 15, Y: 0}, a, b), 1e-9)
}

func TestSegmentsIntersectSymmetry(t *testing.T) {
	a1 := Point{X: 0, Y: 0}
	a2 := Point{X: 10, Y: 10}
	b1 := Point{X: 0, Y: 10}
	b2 := Point{X: 10, Y: 0}

	assert.True(t, SegmentsIntersect(a1, a2, b1, b2))
	// Симметрия при перестановке пар аргументов
	assert.Equal(t, SegmentsIntersect(a1, a2, b1, b2), SegmentsIntersect(b1, b2, a1, a2))

	c1 := Point{X: 20, Y: 20}
	c2 := Point{X: 30, Y: 20}
	assert.False(t, SegmentsIntersect(a1, a2, c1, c2))
	assert.Equal(t, SegmentsIntersect(a1, a2, c1, c2), SegmentsIntersect(c1, c2, a1, a2))
}

func TestSegmentsIntersectCollinear(t *testing.T) {
	a1 := Point{X: 0, Y: 0}
	a2 := Point{X: 10, Y: 0}

	// Перекрывающиеся коллинеарные отрезки
	assert.True(t, SegmentsIntersect(a1, a2, Point{X: 5, Y: 0}, Point{X: 15, Y: 0}))
	// Коллинеарные без перекрытия
	assert.False(t, SegmentsIntersect(a1, a2, Point{X: 11, Y: 0}, Point{X: 20, Y: 0}))
	// Касание концами
	assert.True(t, SegmentsIntersect(a1, a2, Point{X: 10, Y: 0}, Point{X: 20, Y: 0}))
}

func TestDistSqSegments(t *testing.T) {
	a1 := Point{X: 0, Y: 0}
	a2 := Point{X: 10, Y: 0}
	b1 := Point{X: 0, Y: 5}
	b2 := Point{X: 10, Y: 5}

	assert.InDelta(t, 25.0, DistSqSegments(a1, a2, b1, b2), 1e-9)
	// Пересекающиеся отрезки — расстояние ноль
	assert.Zero(t, DistSqSegments(a1, a2, Point{X: 5, Y: -5}, Point{X: 5, Y: 5}))
}

func TestPointInPolygon(t *testing.T) {
	square := []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}

	assert.True(t, PointInPolygon(Point{X: 5, Y: 5}, square))
	assert.False(t, PointInPolygon(Point{X: 15, Y: 5}, square))
	assert.False(t, PointInPolygon(Point{X: -1, Y: -1}, square))
}

func TestPolygonsOverlapEdges(t *testing.T) {
	a := []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	b := []Point{{5, 5}, {15, 5}, {15, 15}, {5, 15}}
	c := []Point{{20, 20}, {30, 20}, {30, 30}, {20, 30}}

	assert.True(t, PolygonsOverlap(a, b))
	assert.False(t, PolygonsOverlap(a, c))
}

func TestPolygonsOverlapContainment(t *testing.T) {
	// Вложение целиком: рёберные тесты не пересекаются, ловится фолбэком
	outer := []Point{{0, 0}, {100, 0}, {100, 100}, {0, 100}}
	inner := []Point{{40, 40}, {60, 40}, {60, 60}, {40, 60}}

	assert.True(t, PolygonsOverlap(outer, inner))
	assert.True(t, PolygonsOverlap(inner, outer))
}

func TestDistSqPointPolygon(t *testing.T) {
	square := []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}

	assert.Zero(t, DistSqPointPolygon(Point{X: 5, Y: 5}, square))
	assert.InDelta(t, 25.0, DistSqPointPolygon(Point{X: 15, Y: 5}, square), 1e-9)
}

func TestDistSqSegmentPolygon(t *testing.T) {
	square := []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}

	// Конец отрезка внутри
	assert.Zero(t, DistSqSegmentPolygon(Point{X: 5, Y: 5}, Point{X: 20, Y: 5}, square))
	// Отрезок целиком снаружи
	got := DistSqSegmentPolygon(Point{X: 13, Y: 0}, Point{X: 13, Y: 10}, square)
	assert.InDelta(t, 9.0, got, 1e-9)
	// Вырожденный полигон не роняет вычисление
	assert.Equal(t, math.MaxFloat64, DistSqSegmentPolygon(Point{}, Point{X: 1}, nil))
}
