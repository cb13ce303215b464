// internal/component/obstacle.go
package component

// Obstacle — статичный прямоугольник, выровненный по осям.
// Неизменен на протяжении матча.
type Obstacle struct {
	X, Y, W, H float64
}

// ClosestPoint возвращает ближайшую к (px, py) точку прямоугольника.
func (o *Obstacle) ClosestPoint(px, py float64) (float64, float64) {
	cx := px
	if cx < o.X {
		cx = o.X
	} else if cx > o.X+o.W {
		cx = o.X + o.W
	}
	cy := py
	if cy < o.Y {
		cy = o.Y
	} else if cy > o.Y+o.H {
		cy = o.Y + o.H
	}
	return cx, cy
}
