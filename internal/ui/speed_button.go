// internal/ui/speed_button.go
package ui

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-arena-combat/internal/config"
)

var speedFactors = []float64{1, 2, 4}

// SpeedButton циклически переключает скорость симуляции x1 -> x2 -> x4.
type SpeedButton struct {
	Rect     image.Rectangle
	index    int
	fontFace font.Face
}

func NewSpeedButton(rect image.Rectangle, fontFace font.Face) *SpeedButton {
	return &SpeedButton{Rect: rect, fontFace: fontFace}
}

// Factor — текущий множитель скорости.
func (b *SpeedButton) Factor() float64 {
	return speedFactors[b.index]
}

// Update обрабатывает клик. Возвращает true, если множитель сменился.
func (b *SpeedButton) Update() bool {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	x, y := ebiten.CursorPosition()
	if !image.Pt(x, y).In(b.Rect) {
		return false
	}
	b.index = (b.index + 1) % len(speedFactors)
	return true
}

func (b *SpeedButton) Draw(screen *ebiten.Image) {
	clr := config.SpeedButtonColors[b.index%len(config.SpeedButtonColors)]
	vector.DrawFilledRect(screen,
		float32(b.Rect.Min.X), float32(b.Rect.Min.Y),
		float32(b.Rect.Dx()), float32(b.Rect.Dy()),
		clr, false)
	label := fmt.Sprintf("x%d", int(speedFactors[b.index]))
	text.Draw(screen, label, b.fontFace, b.Rect.Min.X+12, b.Rect.Min.Y+b.Rect.Dy()/2+5, config.TextLightColor)
}
