// internal/component/render.go
package component

import "image/color"

// Renderable — как рисовать круглую сущность
type Renderable struct {
	Color     color.RGBA
	Radius    float32
	HasStroke bool
}
