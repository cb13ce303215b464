// internal/state/game_over_state.go
package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-arena-combat/internal/assets"
	"go-arena-combat/internal/config"
)

// GameOverState показывает исход матча поверх финального кадра.
// Пробел возвращает в меню.
type GameOverState struct {
	sm       *StateMachine
	finished *GameState
	face     font.Face
	verdict  string
}

func NewGameOverState(sm *StateMachine, finished *GameState) *GameOverState {
	verdict := "DRAW"
	if id := finished.game.Survivor(); id != 0 {
		if c, ok := finished.game.ECS.Combatants[id]; ok {
			verdict = fmt.Sprintf("%s WINS", c.Name)
		}
	}
	return &GameOverState{
		sm:       sm,
		finished: finished,
		face:     assets.LoadFontFace("arial.ttf", 18),
		verdict:  verdict,
	}
}

func (g *GameOverState) Enter() {}

func (g *GameOverState) Update(deltaTime float64) {
	// Эффекты дотлевают на финальном кадре
	g.finished.game.Step(deltaTime)

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.finished.Close()
		g.sm.SetState(NewMenuState(g.sm, g.finished.matchCfg()))
	}
}

func (g *GameOverState) Draw(screen *ebiten.Image) {
	g.finished.Draw(screen)
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.PauseOverlayColor, false)
	text.Draw(screen, g.verdict, g.face, config.ScreenWidth/2-60, config.ScreenHeight/2, config.TextLightColor)
	text.Draw(screen, "press SPACE for menu", g.face, config.ScreenWidth/2-90, config.ScreenHeight/2+30, config.TextDimColor)
}

func (g *GameOverState) Exit() {}
