package effects

import (
	"fmt"
	"math/rand/v2"

	"emperor/internal/engine"
)

// Beg: every other living player surrenders one random card. Cards
// past the beggar's hand limit go to the discard pile.
type Beg struct{}

func (Beg) Tag() engine.EffectTag { return engine.ActionBeg }
func (Beg) NeedsTarget() bool     { return false }

func (Beg) Apply(g *engine.Game, seat int, card engine.Card) ([]engine.Event, error) {
	p := g.Players[seat]
	var events []engine.Event
	for _, other := range g.AlivePlayers() {
		if other.Seat == seat || len(other.Hand) == 0 {
			continue
		}
		i := rand.IntN(len(other.Hand))
		taken := other.Hand[i]
		other.Hand = append(other.Hand[:i], other.Hand[i+1:]...)
		if len(p.Hand) >= g.Config.MaxHandSize {
			g.Supply.Discard(taken)
		} else {
			p.Hand = append(p.Hand, taken)
		}
		events = append(events, engine.Event{
			Type:   engine.EventEffect,
			Player: other.Seat,
			Text:   fmt.Sprintf("%s gives a card to %s.", other.Name, p.Name),
		})
	}
	if len(events) == 0 {
		events = append(events, engine.Event{
			Type:   engine.EventEffect,
			Player: seat,
			Text:   fmt.Sprintf("%s begs, but nobody has anything to give.", p.Name),
		})
	}
	return events, nil
}

// Steal: take one random card from the target's hand. With a full
// hand the stolen card is discarded rather than kept.
type Steal struct{}

func (Steal) Tag() engine.EffectTag { return engine.ActionSteal }
func (Steal) NeedsTarget() bool     { return true }

func (Steal) Apply(g *engine.Game, seat int, card engine.Card) ([]engine.Event, error) {
	p := g.Players[seat]
	t, err := g.LivingTarget(seat)
	if err != nil {
		return nil, err
	}
	if len(t.Hand) == 0 {
		return nil, fmt.Errorf("%s has no cards to steal", t.Name)
	}
	i := rand.IntN(len(t.Hand))
	taken := t.Hand[i]
	t.Hand = append(t.Hand[:i], t.Hand[i+1:]...)
	if len(p.Hand) >= g.Config.MaxHandSize {
		g.Supply.Discard(taken)
	} else {
		p.Hand = append(p.Hand, taken)
	}
	return []engine.Event{{
		Type:   engine.EventEffect,
		Player: seat,
		Text:   fmt.Sprintf("%s picks %s's pocket.", p.Name, t.Name),
	}}, nil
}

// StealWeapon: take an equipped weapon from the target.
type StealWeapon struct{}

func (StealWeapon) Tag() engine.EffectTag { return engine.ActionStealWeapon }
func (StealWeapon) NeedsTarget() bool     { return true }

func (StealWeapon) Apply(g *engine.Game, seat int, card engine.Card) ([]engine.Event, error) {
	p := g.Players[seat]
	t, err := g.LivingTarget(seat)
	if err != nil {
		return nil, err
	}
	item, ok := t.RemoveEquipped(engine.ItemWeapon)
	if !ok {
		return nil, fmt.Errorf("%s has no weapon equipped", t.Name)
	}
	t.Attack--
	p.Equipped = append(p.Equipped, item)
	p.Attack++
	return []engine.Event{{
		Type:   engine.EventEffect,
		Player: seat,
		Text:   fmt.Sprintf("%s disarms %s and keeps the weapon.", p.Name, t.Name),
	}}, nil
}

// StealArmor: take equipped armor from the target.
type StealArmor struct{}

func (StealArmor) Tag() engine.EffectTag { return engine.ActionStealArmor }
func (StealArmor) NeedsTarget() bool     { return true }

func (StealArmor) Apply(g *engine.Game, seat int, card engine.Card) ([]engine.Event, error) {
	p := g.Players[seat]
	t, err := g.LivingTarget(seat)
	if err != nil {
		return nil, err
	}
	item, ok := t.RemoveEquipped(engine.ItemArmor)
	if !ok {
		return nil, fmt.Errorf("%s has no armor equipped", t.Name)
	}
	t.Defense--
	p.Equipped = append(p.Equipped, item)
	p.Defense++
	return []engine.Event{{
		Type:   engine.EventEffect,
		Player: seat,
		Text:   fmt.Sprintf("%s strips the armor off %s.", p.Name, t.Name),
	}}, nil
}
