// internal/config/match.go
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CombatantConfig — стартовые данные одного бойца. Пустой или неизвестный
// вид оружия не считается ошибкой: симуляция подставит нейтральную заглушку.
type CombatantConfig struct {
	Name   string  `yaml:"name"`
	Weapon string  `yaml:"weapon"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
}

// ObstacleConfig — статичный прямоугольник на арене.
type ObstacleConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// MatchConfig — полная раскладка матча: кто дерётся и что стоит на арене.
type MatchConfig struct {
	Seed       int64             `yaml:"seed"`
	Combatants []CombatantConfig `yaml:"combatants"`
	Obstacles  []ObstacleConfig  `yaml:"obstacles"`
}

// LoadMatchConfig читает раскладку матча из yaml-файла.
func LoadMatchConfig(path string) (*MatchConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read match config: %w", err)
	}
	var cfg MatchConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal match config: %w", err)
	}
	return &cfg, nil
}

// DefaultMatchConfig — раскладка по умолчанию, когда файла нет.
func DefaultMatchConfig() *MatchConfig {
	return &MatchConfig{
		Combatants: []CombatantConfig{
			{Name: "Red", Weapon: "SWORD", X: ArenaWidth * 0.25, Y: ArenaHeight * 0.3},
			{Name: "Blue", Weapon: "BOW", X: ArenaWidth * 0.75, Y: ArenaHeight * 0.3},
			{Name: "Green", Weapon: "SCYTHE", X: ArenaWidth * 0.25, Y: ArenaHeight * 0.7},
			{Name: "Purple", Weapon: "STAFF", X: ArenaWidth * 0.75, Y: ArenaHeight * 0.7},
		},
		Obstacles: []ObstacleConfig{
			{X: ArenaWidth/2 - 40, Y: ArenaHeight/2 - 40, W: 80, H: 80},
		},
	}
}
