package effects

import (
	"fmt"

	"emperor/internal/engine"
)

// Poison: the target loses 1 hp at the end of each round for 3 rounds.
// A second dose stacks onto whatever is still in their veins.
type Poison struct{}

func (Poison) Tag() engine.EffectTag { return engine.ActionPoison }
func (Poison) NeedsTarget() bool     { return true }

func (Poison) Apply(g *engine.Game, seat int, card engine.Card) ([]engine.Event, error) {
	t, err := g.LivingTarget(seat)
	if err != nil {
		return nil, err
	}
	t.PoisonRounds += 3
	return []engine.Event{{
		Type:   engine.EventEffect,
		Player: t.Seat,
		Text:   fmt.Sprintf("%s slips poison to %s.", g.Players[seat].Name, t.Name),
	}}, nil
}

// Curse: lock the target's stamina cap at 2 until exorcised.
type Curse struct{}

func (Curse) Tag() engine.EffectTag { return engine.ActionCurse }
func (Curse) NeedsTarget() bool     { return true }

func (Curse) Apply(g *engine.Game, seat int, card engine.Card) ([]engine.Event, error) {
	t, err := g.LivingTarget(seat)
	if err != nil {
		return nil, err
	}
	if t.StaminaLocked {
		return nil, fmt.Errorf("%s is already cursed", t.Name)
	}
	t.StaminaLocked = true
	if cap := t.StaminaCap(); t.Stamina > cap {
		t.Stamina = cap
	}
	return []engine.Event{{
		Type:   engine.EventEffect,
		Player: t.Seat,
		Text:   fmt.Sprintf("A vengeful spirit clings to %s.", t.Name),
	}}, nil
}

// SwapStats: swap the target's attack and defense.
type SwapStats struct{}

func (SwapStats) Tag() engine.EffectTag { return engine.ActionSwapStats }
func (SwapStats) NeedsTarget() bool     { return true }

func (SwapStats) Apply(g *engine.Game, seat int, card engine.Card) ([]engine.Event, error) {
	t, err := g.LivingTarget(seat)
	if err != nil {
		return nil, err
	}
	t.Attack, t.Defense = t.Defense, t.Attack
	return []engine.Event{{
		Type:   engine.EventEffect,
		Player: t.Seat,
		Text:   fmt.Sprintf("%s's attack and defense are turned upside down.", t.Name),
	}}, nil
}
