// internal/ui/pause_button.go
package ui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-arena-combat/internal/config"
)

// PauseButton — кнопка паузы в панели: две планки, в паузе — треугольник.
type PauseButton struct {
	Rect   image.Rectangle
	Paused bool
}

func NewPauseButton(rect image.Rectangle) *PauseButton {
	return &PauseButton{Rect: rect}
}

// Update обрабатывает клик. Возвращает true, если паузу переключили.
func (b *PauseButton) Update() bool {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	x, y := ebiten.CursorPosition()
	if !image.Pt(x, y).In(b.Rect) {
		return false
	}
	b.Paused = !b.Paused
	return true
}

func (b *PauseButton) Draw(screen *ebiten.Image) {
	cx := float32(b.Rect.Min.X+b.Rect.Max.X) / 2
	cy := float32(b.Rect.Min.Y+b.Rect.Max.Y) / 2
	size := float32(b.Rect.Dy()) * 0.35

	if b.Paused {
		// Треугольник (play) контуром
		vector.StrokeLine(screen, cx-size, cy-size, cx-size, cy+size, 2, config.TextLightColor, true)
		vector.StrokeLine(screen, cx-size, cy+size, cx+size, cy, 2, config.TextLightColor, true)
		vector.StrokeLine(screen, cx+size, cy, cx-size, cy-size, 2, config.TextLightColor, true)
		return
	}

	barW := size * 0.6
	vector.DrawFilledRect(screen, cx-size, cy-size, barW, 2*size, config.TextLightColor, false)
	vector.DrawFilledRect(screen, cx+size-barW, cy-size, barW, 2*size, config.TextLightColor, false)
}
