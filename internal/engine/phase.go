package engine

// GamePhase represents the current phase of the game state machine.
type GamePhase int

const (
	PhaseSetup         GamePhase = iota // roles and hands not dealt yet
	PhasePlaying                        // turns being taken
	PhaseProtectPrompt                  // waiting on a human protect decision
	PhaseGameOver                       // terminal
)

var phaseNames = map[GamePhase]string{
	PhaseSetup:         "Setup",
	PhasePlaying:       "Playing",
	PhaseProtectPrompt: "ProtectPrompt",
	PhaseGameOver:      "GameOver",
}

func (p GamePhase) String() string {
	if s, ok := phaseNames[p]; ok {
		return s
	}
	return "Unknown"
}
