package effects

import (
	"fmt"

	"emperor/internal/engine"
)

// Flee: immune to Invasion until the round ends.
type Flee struct{}

func (Flee) Tag() engine.EffectTag { return engine.ActionFlee }
func (Flee) NeedsTarget() bool     { return false }

func (Flee) Apply(g *engine.Game, seat int, card engine.Card) ([]engine.Event, error) {
	p := g.Players[seat]
	p.FleeActive = true
	return []engine.Event{{
		Type:   engine.EventEffect,
		Player: seat,
		Text:   fmt.Sprintf("%s hides from the raiders.", p.Name),
	}}, nil
}

// Counter: retaliate against the next attack made on you.
type Counter struct{}

func (Counter) Tag() engine.EffectTag { return engine.ActionCounter }
func (Counter) NeedsTarget() bool     { return false }

func (Counter) Apply(g *engine.Game, seat int, card engine.Card) ([]engine.Event, error) {
	p := g.Players[seat]
	p.CounterArmed = true
	return []engine.Event{{
		Type:   engine.EventEffect,
		Player: seat,
		Text:   fmt.Sprintf("%s takes a counterstance.", p.Name),
	}}, nil
}

// Fortune: peek at the top 3 cards of the draw pile. The peek is
// visible only to the player who paid for it.
type Fortune struct{}

func (Fortune) Tag() engine.EffectTag { return engine.ActionFortune }
func (Fortune) NeedsTarget() bool     { return false }

func (Fortune) Apply(g *engine.Game, seat int, card engine.Card) ([]engine.Event, error) {
	p := g.Players[seat]
	p.Peeked = g.Supply.PeekTop(3)
	return []engine.Event{
		{
			Type:   engine.EventEffect,
			Player: seat,
			Text:   fmt.Sprintf("%s consults the fortune teller.", p.Name),
		},
		{
			Type:    engine.EventEffect,
			Player:  seat,
			Text:    "The cards whisper of what is to come.",
			Data:    map[string]interface{}{"peeked": p.Peeked},
			Private: true,
		},
	}, nil
}

// RepelInvasion: everyone is immune to Invasion this round, and the
// player draws up to 2 cards as thanks.
type RepelInvasion struct{}

func (RepelInvasion) Tag() engine.EffectTag { return engine.ActionRepelInvasion }
func (RepelInvasion) NeedsTarget() bool     { return false }

func (RepelInvasion) Apply(g *engine.Game, seat int, card engine.Card) ([]engine.Event, error) {
	p := g.Players[seat]
	for _, other := range g.AlivePlayers() {
		other.FleeActive = true
	}
	events := []engine.Event{{
		Type:   engine.EventEffect,
		Player: seat,
		Text:   fmt.Sprintf("%s rallies the village against the invaders.", p.Name),
	}}
	for i := 0; i < 2; i++ {
		got, fired := g.Supply.DealTo(p, g.Config.MaxHandSize, func(c engine.Card) []engine.Event {
			return g.ResolveEventCard(p, c)
		})
		events = append(events, fired...)
		if !got {
			break
		}
	}
	return events, nil
}
