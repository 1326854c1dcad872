package effects

import (
	"fmt"
	"math/rand/v2"

	"emperor/internal/engine"
)

// Heal: recover 1 hp.
type Heal struct{}

func (Heal) Tag() engine.EffectTag { return engine.ActionHeal }
func (Heal) NeedsTarget() bool     { return false }

func (Heal) Apply(g *engine.Game, seat int, card engine.Card) ([]engine.Event, error) {
	p := g.Players[seat]
	p.Heal(1)
	return []engine.Event{{
		Type:   engine.EventEffect,
		Player: seat,
		Text:   fmt.Sprintf("%s chews healing herbs (hp %d).", p.Name, p.HP),
	}}, nil
}

// Revive: discard the rest of your hand to return a fallen player to
// life. Uses the selected target if it is a dead player, otherwise the
// first dead player in seat order.
type Revive struct{}

func (Revive) Tag() engine.EffectTag { return engine.ActionRevive }
func (Revive) NeedsTarget() bool     { return false }

func (Revive) Apply(g *engine.Game, seat int, card engine.Card) ([]engine.Event, error) {
	p := g.Players[seat]

	t := g.SelectedTarget()
	if t == nil || t.Alive {
		t = nil
		for _, other := range g.Players {
			if !other.Alive {
				t = other
				break
			}
		}
	}
	if t == nil {
		return nil, fmt.Errorf("no one to revive")
	}

	// The rest of the hand is the price. The played copy stays put so
	// it routes through the supply normally afterwards.
	var rest []engine.Card
	kept := false
	for _, c := range p.Hand {
		if !kept && c.ID == card.ID {
			kept = true
			continue
		}
		rest = append(rest, c)
	}
	g.Supply.DiscardAll(rest)
	p.Hand = []engine.Card{card}

	t.Alive = true
	t.HP = t.BaseHP
	t.Stamina = 2
	g.Supply.DealStartingHand(t, g.Config.StartingHandSize, g.Config.MaxHandSize)

	events := []engine.Event{{
		Type:   engine.EventRevived,
		Player: t.Seat,
		Text:   fmt.Sprintf("%s breathes life back into %s!", p.Name, t.Name),
		Data:   map[string]interface{}{"target": t.Seat},
	}}
	return append(events, g.CheckWin()...), nil
}

// Exorcism: lift your own curse, or lift the target's curse and pass it
// to a random bystander.
type Exorcism struct{}

func (Exorcism) Tag() engine.EffectTag { return engine.ActionExorcism }
func (Exorcism) NeedsTarget() bool     { return true }

func (Exorcism) Apply(g *engine.Game, seat int, card engine.Card) ([]engine.Event, error) {
	p := g.Players[seat]
	if p.StaminaLocked {
		p.StaminaLocked = false
		return []engine.Event{{
			Type:   engine.EventEffect,
			Player: seat,
			Text:   fmt.Sprintf("%s drives out the vengeful spirit.", p.Name),
		}}, nil
	}

	t, err := g.LivingTarget(seat)
	if err != nil {
		return nil, err
	}
	if !t.StaminaLocked {
		return nil, fmt.Errorf("%s carries no curse to lift", t.Name)
	}
	t.StaminaLocked = false
	events := []engine.Event{{
		Type:   engine.EventEffect,
		Player: t.Seat,
		Text:   fmt.Sprintf("%s lifts the curse from %s.", p.Name, t.Name),
	}}

	var bystanders []*engine.Player
	for _, other := range g.AlivePlayers() {
		if other.Seat != seat && other.Seat != t.Seat {
			bystanders = append(bystanders, other)
		}
	}
	if len(bystanders) > 0 {
		victim := bystanders[rand.IntN(len(bystanders))]
		victim.StaminaLocked = true
		if cap := victim.StaminaCap(); victim.Stamina > cap {
			victim.Stamina = cap
		}
		events = append(events, engine.Event{
			Type:   engine.EventEffect,
			Player: victim.Seat,
			Text:   fmt.Sprintf("The spirit settles on %s instead!", victim.Name),
		})
	}
	return events, nil
}
