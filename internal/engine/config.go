package engine

// GameConfig holds the fixed rules knobs for a match.
type GameConfig struct {
	Cards            []Card // card catalog, expanded by copy count into the supply
	MaxHandSize      int
	StartingHandSize int
	MaxDrawsPerTurn  int
	AttackCost       int // stamina per ordinary attack
	ActivateCost     int // stamina per secret activation
}

func DefaultConfig() GameConfig {
	return GameConfig{
		Cards:            BaseCards(),
		MaxHandSize:      5,
		StartingHandSize: 3,
		MaxDrawsPerTurn:  2,
		AttackCost:       3,
		ActivateCost:     5,
	}
}
