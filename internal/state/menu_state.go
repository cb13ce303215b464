// internal/state/menu_state.go
package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"go-arena-combat/internal/assets"
	"go-arena-combat/internal/config"
	"go-arena-combat/internal/defs"
)

// MenuState — стартовый экран. Пробел запускает матч.
type MenuState struct {
	sm       *StateMachine
	matchCfg *config.MatchConfig
	face     font.Face
}

func NewMenuState(sm *StateMachine, matchCfg *config.MatchConfig) *MenuState {
	return &MenuState{sm: sm, matchCfg: matchCfg, face: assets.LoadFontFace("arial.ttf", 18)}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		m.sm.SetState(NewGameState(m.sm, m.matchCfg))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	text.Draw(screen, "ARENA", m.face, config.ScreenWidth/2-30, 160, config.TextLightColor)

	// Ростер оружия из текущей библиотеки
	y := 220
	for _, kind := range rosterOrder {
		def := defs.GetWeapon(kind)
		line := fmt.Sprintf("%-8s dmg %-5.1f len %-5.1f spin %.1f", def.Name, def.Damage, def.Length, def.AngularVel)
		text.Draw(screen, line, m.face, config.ScreenWidth/2-160, y, config.TextDimColor)
		y += 26
	}

	text.Draw(screen, "press SPACE to fight", m.face, config.ScreenWidth/2-90, y+40, config.TextLightColor)
}

var rosterOrder = []defs.WeaponKind{
	defs.WeaponSword, defs.WeaponSpear, defs.WeaponDagger, defs.WeaponBow,
	defs.WeaponShield, defs.WeaponStaff, defs.WeaponScythe,
}

func (m *MenuState) Exit() {}
