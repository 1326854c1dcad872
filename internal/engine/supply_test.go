package engine_test

import (
	"testing"

	"emperor/internal/engine"
	"emperor/internal/engine/effects"
)

func TestCatalogTotals(t *testing.T) {
	total := 0
	ids := map[string]bool{}
	for _, c := range engine.BaseCards() {
		if ids[c.ID] {
			t.Fatalf("duplicate catalog id %q", c.ID)
		}
		ids[c.ID] = true
		if c.Copies < 1 {
			t.Errorf("card %q has %d copies", c.ID, c.Copies)
		}
		if c.Type == engine.CardAction && c.Cost < 1 {
			t.Errorf("action card %q costs %d", c.ID, c.Cost)
		}
		if c.Type != engine.CardAction && c.Cost != 0 {
			t.Errorf("non-action card %q costs %d", c.ID, c.Cost)
		}
		total += c.Copies
	}
	if total != 40 {
		t.Fatalf("expected 40 cards in the supply, got %d", total)
	}
}

func TestEveryCatalogEffectIsRegistered(t *testing.T) {
	reg := effects.NewRegistry()
	for _, c := range engine.BaseCards() {
		e, err := reg.Get(c.Effect)
		if err != nil {
			t.Errorf("card %q: %v", c.ID, err)
			continue
		}
		if e.Tag() != c.Effect {
			t.Errorf("card %q: resolver answers to %q", c.ID, e.Tag())
		}
	}
}

func TestSupplyExhaustion(t *testing.T) {
	s := engine.NewSupply(engine.BaseCards())
	if s.Remaining() != 40 {
		t.Fatalf("expected 40 cards, got %d", s.Remaining())
	}
	for i := 0; i < 40; i++ {
		if _, ok := s.DrawOne(); !ok {
			t.Fatalf("draw %d unexpectedly failed", i+1)
		}
	}
	if _, ok := s.DrawOne(); ok {
		t.Fatal("the 41st draw must report exhaustion")
	}
}

func TestSupplyReshufflesDiscard(t *testing.T) {
	s := engine.NewSupply(engine.BaseCards())
	var last engine.Card
	for i := 0; i < 40; i++ {
		last, _ = s.DrawOne()
	}
	s.Discard(last)
	c, ok := s.DrawOne()
	if !ok {
		t.Fatal("expected the discard pile to reshuffle in")
	}
	if c.ID != last.ID {
		t.Fatalf("expected the recycled card back, got %q", c.ID)
	}
}

func TestDealStartingHandDiscardsEventsUnresolved(t *testing.T) {
	catalog := []engine.Card{
		{ID: "drought", Name: "Drought", Type: engine.CardEvent, Effect: engine.EventDrought, Copies: 5},
	}
	s := engine.NewSupply(catalog)
	p := engine.NewPlayer(0, "Player1", false)

	s.DealStartingHand(p, 3, 5)
	if len(p.Hand) != 0 {
		t.Fatalf("events must never enter a hand, got %d cards", len(p.Hand))
	}
	if s.DiscardLen() != 5 {
		t.Fatalf("setup events go straight to discard, got %d there", s.DiscardLen())
	}
}

func TestDrawResolvesEventCards(t *testing.T) {
	cfg := engine.DefaultConfig()
	cfg.Cards = []engine.Card{
		{ID: "drought", Name: "Drought", Type: engine.CardEvent, Effect: engine.EventDrought, Copies: 3},
	}
	g := engine.NewGame(newPlayers(4, false), cfg, effects.NewRegistry())
	if _, err := g.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}

	// Setup discarded all three events without firing them.
	for _, p := range g.Players {
		if p.Stamina != p.Role.Stamina {
			t.Fatalf("setup must not resolve events, %s at %d stamina", p.Name, p.Stamina)
		}
	}

	// An in-turn draw reshuffles them back and fires every one.
	events := mustApply(t, g, 0, engine.Action{Type: engine.ActionDrawCard})
	if countEvents(events, engine.EventCardRevealed) != 3 {
		t.Fatalf("expected 3 event reveals, got %v", events)
	}
	if len(g.Players[0].Hand) != 0 {
		t.Fatal("an all-event supply cannot fill the hand")
	}
	for _, p := range g.Players {
		if p.Stamina != 0 {
			t.Errorf("three droughts must drain %s to 0 stamina, got %d", p.Name, p.Stamina)
		}
	}
	if g.Players[0].CardsDrawn != 1 {
		t.Fatalf("the attempt still counts as a draw, got %d", g.Players[0].CardsDrawn)
	}
}

func TestHandLimitBlocksDraw(t *testing.T) {
	g := newTestGame(t, 4)
	heal := cardFromCatalog(t, "heal")
	for len(g.Players[0].Hand) < g.Config.MaxHandSize {
		g.Players[0].Hand = append(g.Players[0].Hand, heal)
	}
	if _, err := g.Apply(0, engine.Action{Type: engine.ActionDrawCard}); err == nil {
		t.Fatal("expected draw with a full hand to be rejected")
	}
}

func TestCardConservationAfterStart(t *testing.T) {
	g := newTestGame(t, 6)
	inHands := 0
	for _, p := range g.Players {
		inHands += len(p.Hand)
	}
	total := g.Supply.Remaining() + inHands + g.Secrets.Count()
	if total != 40 {
		t.Fatalf("expected 40 cards accounted for, got %d", total)
	}
}
