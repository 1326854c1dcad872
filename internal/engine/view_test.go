package engine_test

import (
	"testing"

	"emperor/internal/engine"
)

func TestViewHidesOtherHandsAndRoles(t *testing.T) {
	g := newTestGame(t, 4)
	setRoles(t, g, engine.RoleRebel, engine.RoleQueen, engine.RoleEmperor, engine.RoleAssassin)

	view := g.ViewFor(0)
	if view.You != 0 {
		t.Fatalf("expected viewer seat 0, got %d", view.You)
	}

	own := view.Players[0]
	if own.Role == nil || own.Role.ID != engine.RoleRebel {
		t.Fatal("viewer must see their own role")
	}
	if len(own.Hand) != len(g.Players[0].Hand) {
		t.Fatal("viewer must see their own hand")
	}

	other := view.Players[1]
	if other.Role != nil {
		t.Fatal("unrevealed roles must stay hidden")
	}
	if other.Hand != nil {
		t.Fatal("other hands must stay hidden")
	}
	if other.HandSize != len(g.Players[1].Hand) {
		t.Fatal("hand size is public")
	}
}

func TestViewShowsRevealedAndDeadRoles(t *testing.T) {
	g := newTestGame(t, 4)
	setRoles(t, g, engine.RoleRebel, engine.RoleQueen, engine.RoleEmperor, engine.RoleAssassin)
	g.Players[1].Revealed = true
	g.Players[2].Alive = false

	view := g.ViewFor(0)
	if view.Players[1].Role == nil || view.Players[1].Role.ID != engine.RoleQueen {
		t.Fatal("revealed roles are public")
	}
	if view.Players[2].Role == nil || view.Players[2].Role.ID != engine.RoleEmperor {
		t.Fatal("eliminated players' roles are public")
	}
}

func TestViewSecretsAsymmetry(t *testing.T) {
	g := newTestGame(t, 4)
	g.Secrets.Place(&engine.SecretAction{
		Owner: 0, Target: 1, PlacedRound: 1,
		Kind: engine.SecretLethal, Card: cardFromCatalog(t, "hidden_strike"),
	})

	owner := g.ViewFor(0)
	if len(owner.Secrets) != 1 || owner.Secrets[0].Kind != engine.SecretLethal {
		t.Fatal("the owner sees their own placed secret and its kind")
	}
	if owner.Players[1].SecretsOn != 1 {
		t.Fatal("the face-down count on a player is public")
	}

	target := g.ViewFor(1)
	if len(target.Secrets) != 0 {
		t.Fatal("the target does not see who placed what")
	}
	if target.Players[1].SecretsOn != 1 {
		t.Fatal("the target still sees a face-down card on themselves")
	}
}

func TestSpectatorViewSeesNothingHidden(t *testing.T) {
	g := newTestGame(t, 4)
	view := g.PublicView()
	if view.You != -1 {
		t.Fatalf("spectator seat must be -1, got %d", view.You)
	}
	for _, pv := range view.Players {
		if pv.Hand != nil {
			t.Fatal("spectator must not see hands")
		}
		if pv.Role != nil && pv.Alive && !pv.Revealed {
			t.Fatal("spectator must not see hidden roles")
		}
	}
	if len(view.Secrets) != 0 || len(view.Peeked) != 0 {
		t.Fatal("spectator must not see secrets or peeks")
	}
}

func TestViewPendingPromptOnlyForTarget(t *testing.T) {
	g := newTestGame(t, 4)
	g.PendingProtect = &engine.ProtectPending{Attacker: 0, Target: 2}
	g.Phase = engine.PhaseProtectPrompt

	if !g.ViewFor(2).PendingYou {
		t.Fatal("the prompted player must see the pending decision")
	}
	if g.ViewFor(0).PendingYou || g.ViewFor(1).PendingYou {
		t.Fatal("only the prompted player sees the pending decision")
	}
}
