package component

// GamePhase — фаза матча
type GamePhase int

const (
	FightPhase GamePhase = iota
	OverPhase
)

// GameState — компонент для хранения состояния матча
type GameState struct {
	Phase GamePhase
}
