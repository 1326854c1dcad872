package effects

import (
	"fmt"
	"math/rand/v2"

	"emperor/internal/engine"
)

// Drought: every living player loses 3 stamina, floored at 0.
type Drought struct{}

func (Drought) Tag() engine.EffectTag { return engine.EventDrought }
func (Drought) NeedsTarget() bool     { return false }

func (Drought) Apply(g *engine.Game, seat int, card engine.Card) ([]engine.Event, error) {
	for _, p := range g.AlivePlayers() {
		p.Stamina -= 3
		if p.Stamina < 0 {
			p.Stamina = 0
		}
	}
	return []engine.Event{{
		Type: engine.EventEffect,
		Text: "Drought! Every villager loses 3 stamina.",
	}}, nil
}

// Invasion: every living player who did not flee discards 2 random
// cards.
type Invasion struct{}

func (Invasion) Tag() engine.EffectTag { return engine.EventInvasion }
func (Invasion) NeedsTarget() bool     { return false }

func (Invasion) Apply(g *engine.Game, seat int, card engine.Card) ([]engine.Event, error) {
	events := []engine.Event{{
		Type: engine.EventEffect,
		Text: "Invasion! Raiders plunder every hand.",
	}}
	for _, p := range g.AlivePlayers() {
		if p.FleeActive {
			p.FleeActive = false
			events = append(events, engine.Event{
				Type:   engine.EventEffect,
				Player: p.Seat,
				Text:   fmt.Sprintf("%s slips away from the raiders.", p.Name),
			})
			continue
		}
		lost := 0
		for i := 0; i < 2 && len(p.Hand) > 0; i++ {
			j := rand.IntN(len(p.Hand))
			g.Supply.Discard(p.Hand[j])
			p.Hand = append(p.Hand[:j], p.Hand[j+1:]...)
			lost++
		}
		if lost > 0 {
			events = append(events, engine.Event{
				Type:   engine.EventEffect,
				Player: p.Seat,
				Text:   fmt.Sprintf("%s loses %d cards to the raiders.", p.Name, lost),
			})
		}
	}
	return events, nil
}

// ShareRice: every living player with a hand surrenders their last
// card to a pool; the pool is shuffled and dealt back around the whole
// table, overflow past the hand limit going to the discard pile.
type ShareRice struct{}

func (ShareRice) Tag() engine.EffectTag { return engine.EventShareRice }
func (ShareRice) NeedsTarget() bool     { return false }

func (ShareRice) Apply(g *engine.Game, seat int, card engine.Card) ([]engine.Event, error) {
	alive := g.AlivePlayers()
	var pool []engine.Card
	shared := 0
	for _, p := range alive {
		if len(p.Hand) == 0 {
			continue
		}
		last := len(p.Hand) - 1
		pool = append(pool, p.Hand[last])
		p.Hand = p.Hand[:last]
		shared++
	}
	rand.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	for i, c := range pool {
		p := alive[i%len(alive)]
		if len(p.Hand) >= g.Config.MaxHandSize {
			g.Supply.Discard(c)
			continue
		}
		p.Hand = append(p.Hand, c)
	}
	return []engine.Event{{
		Type: engine.EventEffect,
		Text: fmt.Sprintf("The harvest is shared: %d villagers pool a card.", shared),
	}}, nil
}

// Goddess: the drawer heals to full and draws a card.
type Goddess struct{}

func (Goddess) Tag() engine.EffectTag { return engine.EventGoddess }
func (Goddess) NeedsTarget() bool     { return false }

func (Goddess) Apply(g *engine.Game, seat int, card engine.Card) ([]engine.Event, error) {
	p := g.Players[seat]
	p.HP = p.BaseHP
	events := []engine.Event{{
		Type:   engine.EventEffect,
		Player: seat,
		Text:   fmt.Sprintf("The goddess smiles on %s: wounds close, fortune follows.", p.Name),
	}}
	_, fired := g.Supply.DealTo(p, g.Config.MaxHandSize, func(c engine.Card) []engine.Event {
		return g.ResolveEventCard(p, c)
	})
	return append(events, fired...), nil
}
