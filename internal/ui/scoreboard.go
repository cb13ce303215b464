// internal/ui/scoreboard.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-arena-combat/internal/app"
	"go-arena-combat/internal/config"
)

const (
	rowHeight   = 96
	rowMargin   = 10
	barWidth    = float32(config.PanelWidth - 40)
	barHeight   = 8
	lineSpacing = 18
)

// Scoreboard — панель счёта справа от арены. Читает снимок статистики
// и ничего в симуляции не меняет.
type Scoreboard struct {
	fontFace      font.Face
	titleFontFace font.Face
}

func NewScoreboard(fontFace, titleFontFace font.Face) *Scoreboard {
	return &Scoreboard{fontFace: fontFace, titleFontFace: titleFontFace}
}

func (p *Scoreboard) Draw(screen *ebiten.Image, stats []app.CombatantStat, gameTime float64) {
	x0 := float32(config.ArenaWidth)
	vector.DrawFilledRect(screen, x0, 0, config.PanelWidth, config.ScreenHeight, config.PanelColor, false)

	text.Draw(screen, fmt.Sprintf("ARENA  %6.1fs", gameTime), p.titleFontFace,
		int(x0)+20, 30, config.TextLightColor)

	y := 60
	for i, stat := range stats {
		p.drawRow(screen, stat, config.CombatantColors[i%len(config.CombatantColors)], int(x0)+20, y)
		y += rowHeight + rowMargin
	}
}

func (p *Scoreboard) drawRow(screen *ebiten.Image, stat app.CombatantStat, clr color.RGBA, x, y int) {
	nameColor := config.TextLightColor
	if !stat.Alive {
		nameColor = config.TextDimColor
	}

	vector.DrawFilledCircle(screen, float32(x)+6, float32(y)-4, 6, clr, true)
	text.Draw(screen, fmt.Sprintf("%s  [%s]", stat.Name, stat.Weapon), p.titleFontFace, x+20, y, nameColor)

	barY := float32(y + 8)
	vector.DrawFilledRect(screen, float32(x), barY, barWidth, barHeight, config.HealthBarBack, false)
	if stat.MaxHealth > 0 && stat.Alive {
		fill := float32(stat.Health / stat.MaxHealth)
		vector.DrawFilledRect(screen, float32(x), barY, barWidth*fill, barHeight, config.HealthBarFront, false)
	}

	text.Draw(screen, fmt.Sprintf("dealt    %.1f", stat.DamageDealt), p.fontFace, x, y+16+lineSpacing, config.TextLightColor)
	text.Draw(screen, fmt.Sprintf("received %.1f", stat.DamageReceived), p.fontFace, x, y+16+2*lineSpacing, config.TextLightColor)
	if !stat.Alive {
		text.Draw(screen, "DEAD", p.fontFace, x+int(barWidth)-40, y, config.TextDimColor)
	}
}
