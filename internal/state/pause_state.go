// internal/state/pause_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-arena-combat/internal/assets"
	"go-arena-combat/internal/config"
)

// PauseState рисует замороженный матч под полупрозрачной плашкой.
// Симуляция не шагает, пока пауза не снята той же клавишей.
type PauseState struct {
	sm     *StateMachine
	paused *GameState
	face   font.Face
}

func NewPauseState(sm *StateMachine, paused *GameState) *PauseState {
	return &PauseState{sm: sm, paused: paused, face: assets.LoadFontFace("arial.ttf", 18)}
}

func (p *PauseState) Enter() {}

func (p *PauseState) Update(deltaTime float64) {
	if p.paused.pauseBtn.Update() || inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		p.paused.pauseBtn.Paused = false
		p.sm.SetState(p.paused)
	}
}

func (p *PauseState) Draw(screen *ebiten.Image) {
	p.paused.Draw(screen)
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.PauseOverlayColor, false)
	text.Draw(screen, "PAUSED", p.face, config.ScreenWidth/2-35, config.ScreenHeight/2, config.TextLightColor)
}

func (p *PauseState) Exit() {}
