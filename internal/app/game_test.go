package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-arena-combat/internal/component"
	"go-arena-combat/internal/config"
	"go-arena-combat/internal/defs"
	"go-arena-combat/internal/event"
)

func testMatchConfig() *config.MatchConfig {
	return &config.MatchConfig{
		Seed: 1,
		Combatants: []config.CombatantConfig{
			{Name: "Red", Weapon: "SWORD", X: 200, Y: 200},
			{Name: "Blue", Weapon: "BOW", X: 700, Y: 700},
		},
		Obstacles: []config.ObstacleConfig{
			{X: 430, Y: 410, W: 80, H: 80},
		},
	}
}

func TestNewGameRequiresTwoCombatants(t *testing.T) {
	cfg := testMatchConfig()
	cfg.Combatants = cfg.Combatants[:1]

	_, err := NewGame(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 2")
}

func TestNewGameSpawnsConfiguredEntities(t *testing.T) {
	g, err := NewGame(testMatchConfig())
	require.NoError(t, err)

	assert.Len(t, g.ECS.Combatants, 2)
	assert.Len(t, g.ECS.Obstacles, 1)
	assert.Equal(t, 2, g.LivingCount())

	stats := g.Snapshot()
	require.Len(t, stats, 2)
	assert.Equal(t, "Red", stats[0].Name)
	assert.Equal(t, defs.WeaponSword, stats[0].Weapon)
	assert.Equal(t, config.DefaultMaxHealth, stats[0].Health)
}

func TestNewGameToleratesUnknownWeapon(t *testing.T) {
	cfg := testMatchConfig()
	cfg.Combatants[0].Weapon = "CHAINSAW"

	g, err := NewGame(cfg)
	require.NoError(t, err)

	stats := g.Snapshot()
	// Заглушка: боец существует, но оружие нейтральное
	assert.Equal(t, defs.WeaponUnarmed, stats[0].Weapon)
}

func TestStepAdvancesSimulation(t *testing.T) {
	g, err := NewGame(testMatchConfig())
	require.NoError(t, err)

	g.Step(0.016)
	assert.InDelta(t, 0.016, g.ECS.GameTime, 1e-9)
}

func TestStepHonorsHitPause(t *testing.T) {
	g, err := NewGame(testMatchConfig())
	require.NoError(t, err)
	g.ECS.PauseUntil = 10

	ids := g.ECS.LivingCombatantIDs()
	xBefore := g.ECS.Positions[ids[0]].X
	yBefore := g.ECS.Positions[ids[0]].Y

	g.Step(0.016)

	assert.Equal(t, xBefore, g.ECS.Positions[ids[0]].X, "physics frozen during hit pause")
	assert.Equal(t, yBefore, g.ECS.Positions[ids[0]].Y)
	assert.Greater(t, g.ECS.GameTime, 0.0, "time still advances")
}

func TestSpeedFactorScalesTime(t *testing.T) {
	g, err := NewGame(testMatchConfig())
	require.NoError(t, err)

	g.SetSpeedFactor(4)
	g.Step(0.016)
	assert.InDelta(t, 0.064, g.ECS.GameTime, 1e-9)

	g.SetSpeedFactor(-1)
	assert.Equal(t, 4.0, g.SpeedFactor(), "invalid factor ignored")
}

type roundListener struct {
	ended bool
}

func (l *roundListener) OnEvent(e event.Event) { l.ended = true }

func TestDeathEndsRound(t *testing.T) {
	g, err := NewGame(testMatchConfig())
	require.NoError(t, err)

	listener := &roundListener{}
	g.Dispatcher.Subscribe(event.RoundEnded, listener)

	ids := g.ECS.LivingCombatantIDs()
	g.ECS.Healths[ids[0]].Value = 0

	g.Step(0.016)

	assert.False(t, g.ECS.Combatants[ids[0]].Alive)
	assert.Equal(t, 1, g.LivingCount())
	assert.Equal(t, ids[1], g.Survivor())
	assert.Equal(t, component.OverPhase, g.ECS.GameState.Phase)
	assert.True(t, listener.ended)
	assert.NotEmpty(t, g.ECS.RingEffects, "death leaves an expanding ring")

	// Мёртвый остаётся адресуемым для счёта
	stats := g.Snapshot()
	require.Len(t, stats, 2)
	assert.False(t, stats[0].Alive)
}

func TestSurvivorUndefinedWhileBothAlive(t *testing.T) {
	g, err := NewGame(testMatchConfig())
	require.NoError(t, err)

	assert.Zero(t, g.Survivor())
}
