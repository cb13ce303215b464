// internal/state/game_state.go
package state

import (
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-arena-combat/internal/app"
	"go-arena-combat/internal/assets"
	"go-arena-combat/internal/audio"
	"go-arena-combat/internal/config"
	"go-arena-combat/internal/defs"
	"go-arena-combat/internal/system"
	"go-arena-combat/internal/ui"
)

// GameState — идущий матч: гоняет симуляцию, рисует арену и панель счёта,
// слушает горячие клавиши и переключение скорости.
type GameState struct {
	sm       *StateMachine
	cfg      *config.MatchConfig
	game     *app.Game
	render   *system.RenderSystem
	board    *ui.Scoreboard
	speedBtn *ui.SpeedButton
	pauseBtn *ui.PauseButton
	watcher  *defs.Watcher
	sound    *audio.Player
}

func NewGameState(sm *StateMachine, matchCfg *config.MatchConfig) *GameState {
	game, err := app.NewGame(matchCfg)
	if err != nil {
		// Сюда можно попасть только с битой раскладкой из меню
		log.Fatalf("game init: %v", err)
	}

	regular := assets.LoadFontFace("arial.ttf", 14)
	title := assets.LoadFontFace("arial.ttf", 18)

	gs := &GameState{
		sm:     sm,
		cfg:    matchCfg,
		game:   game,
		render: game.NewRenderSystem(),
		board:  ui.NewScoreboard(regular, title),
		speedBtn: ui.NewSpeedButton(image.Rect(
			config.ArenaWidth+20, config.ScreenHeight-60,
			config.ArenaWidth+80, config.ScreenHeight-20,
		), regular),
		pauseBtn: ui.NewPauseButton(image.Rect(
			config.ArenaWidth+100, config.ScreenHeight-60,
			config.ArenaWidth+140, config.ScreenHeight-20,
		)),
		sound: audio.NewPlayer(game.Dispatcher),
	}

	if w, err := defs.WatchWeaponDefinitions("assets/weapons.yaml"); err == nil {
		gs.watcher = w
	} else {
		log.Printf("weapon defs watch: %v", err)
	}

	return gs
}

func (g *GameState) Enter() {}

func (g *GameState) Update(deltaTime float64) {
	// Горячая перезагрузка определений оружия между шагами
	if g.watcher != nil {
		g.watcher.TryReload()
	}

	if g.speedBtn.Update() {
		g.game.SetSpeedFactor(g.speedBtn.Factor())
	}
	if g.pauseBtn.Update() || inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		g.pauseBtn.Paused = true
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}

	g.game.Step(deltaTime)

	if g.game.LivingCount() <= 1 {
		g.sm.SetState(NewGameOverState(g.sm, g))
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	g.render.Draw(screen)
	g.board.Draw(screen, g.game.Snapshot(), g.game.ECS.GameTime)
	g.speedBtn.Draw(screen)
	g.pauseBtn.Draw(screen)
}

func (g *GameState) Exit() {}

func (g *GameState) matchCfg() *config.MatchConfig { return g.cfg }

// Close освобождает наблюдателя за файлом определений.
func (g *GameState) Close() {
	if g.watcher != nil {
		g.watcher.Close()
	}
}
