package bot_test

import (
	"fmt"
	"testing"

	"emperor/internal/bot"
	"emperor/internal/engine"
	"emperor/internal/engine/effects"
)

func newMatch(t *testing.T, n int, human ...int) *engine.Game {
	t.Helper()
	isHuman := map[int]bool{}
	for _, seat := range human {
		isHuman[seat] = true
	}
	players := make([]*engine.Player, n)
	for i := 0; i < n; i++ {
		players[i] = engine.NewPlayer(i, fmt.Sprintf("Player%d", i+1), isHuman[i])
	}
	g := engine.NewGame(players, engine.DefaultConfig(), effects.NewRegistry())
	if _, err := g.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	return g
}

func setRole(t *testing.T, g *engine.Game, seat int, id engine.RoleID) {
	t.Helper()
	r, ok := engine.RoleByID(id)
	if !ok {
		t.Fatalf("unknown role %d", id)
	}
	g.Players[seat].AssignRole(r)
}

func TestThreatScoreUsesFactionPriors(t *testing.T) {
	g := newMatch(t, 4)
	setRole(t, g, 0, engine.RoleRebel)
	setRole(t, g, 1, engine.RoleEmperor)
	setRole(t, g, 2, engine.RoleQueen)
	setRole(t, g, 3, engine.RoleAssassin)
	g.Players[1].Revealed = true
	g.Players[2].Revealed = true

	a := bot.New(0)
	if emp, queen := a.ThreatScore(g, g.Players[1]), a.ThreatScore(g, g.Players[2]); emp <= queen {
		t.Fatalf("a rebel must fear the Emperor (%d) over the Queen (%d)", emp, queen)
	}
}

func TestThreatScoreIgnoresHiddenRoles(t *testing.T) {
	g := newMatch(t, 4)
	setRole(t, g, 0, engine.RoleRebel)
	setRole(t, g, 1, engine.RoleEmperor)
	setRole(t, g, 2, engine.RoleQueen)
	setRole(t, g, 3, engine.RoleAssassin)

	// Same visible condition, different hidden roles: identical scores.
	a := bot.New(0)
	g.Players[1].HP, g.Players[1].Defense = 4, 2
	g.Players[2].HP, g.Players[2].Defense = 4, 2
	if s1, s2 := a.ThreatScore(g, g.Players[1]), a.ThreatScore(g, g.Players[2]); s1 != s2 {
		t.Fatalf("hidden roles must not leak into the score: %d vs %d", s1, s2)
	}
}

func TestThreatScorePrefersWoundedTargets(t *testing.T) {
	g := newMatch(t, 4)
	setRole(t, g, 0, engine.RoleRebel)
	setRole(t, g, 1, engine.RoleQueen)
	setRole(t, g, 2, engine.RoleEmperor)
	setRole(t, g, 3, engine.RoleAssassin)
	g.Players[1].Revealed = true
	g.Players[2].Revealed = true

	// Both enemies revealed; the wounded Emperor is the bigger prize
	// than a healthy Queen even before priors.
	g.Players[2].HP = 1
	a := bot.New(0)
	if emp, queen := a.ThreatScore(g, g.Players[2]), a.ThreatScore(g, g.Players[1]); emp <= queen {
		t.Fatalf("the wounded Emperor (%d) must outrank the healthy Queen (%d)", emp, queen)
	}
}

func TestAgentFinishesItsTurn(t *testing.T) {
	g := newMatch(t, 4)
	seat := g.Current
	events := bot.New(seat).TakeTurn(g)
	if len(events) == 0 {
		t.Fatal("a turn must produce events")
	}
	if g.Phase == engine.PhasePlaying && g.Current == seat {
		t.Fatal("the agent must end its turn")
	}
}

func TestAgentDoesNothingOutOfTurn(t *testing.T) {
	g := newMatch(t, 4)
	other := (g.Current + 1) % 4
	if events := bot.New(other).TakeTurn(g); events != nil {
		t.Fatalf("an agent off turn must stay quiet, got %v", events)
	}
}

func TestAgentSuspendsOnProtectPromptAndResumes(t *testing.T) {
	g := newMatch(t, 4, 1) // seat 1 is human
	setRole(t, g, 0, engine.RoleRebel)
	setRole(t, g, 1, engine.RoleEmperor)
	setRole(t, g, 2, engine.RoleQueen)
	setRole(t, g, 3, engine.RoleAssassin)
	g.Players[1].Revealed = true
	g.Secrets.Place(&engine.SecretAction{
		Owner: 3, Target: 1, PlacedRound: 1,
		Kind: engine.SecretProtective, Card: engine.Card{ID: "hidden_ward", Type: engine.CardHidden},
	})
	// Strip distractions so the attack is the agent's main move.
	g.Players[0].Hand = nil
	g.Supply = engine.NewSupply(nil)

	agent := bot.New(0)
	agent.TakeTurn(g)
	if g.Phase != engine.PhaseProtectPrompt {
		t.Fatalf("expected the turn to suspend on the prompt, got %s", g.Phase)
	}
	if g.Current != 0 {
		t.Fatal("the suspended turn still belongs to the attacker")
	}

	if _, err := g.Apply(1, engine.Action{Type: engine.ActionRespondProtect, UseProtect: true}); err != nil {
		t.Fatalf("respond: %v", err)
	}

	agent.TakeTurn(g)
	if g.Phase == engine.PhasePlaying && g.Current == 0 {
		t.Fatal("the resumed turn must run to completion")
	}
}

// A full AI-only match must terminate with exactly one game over event
// and never create or destroy a card along the way.
func TestFullMatchConservation(t *testing.T) {
	for _, seats := range []int{4, 6, 9} {
		t.Run(fmt.Sprintf("%dp", seats), func(t *testing.T) {
			g := newMatch(t, seats)
			agents := make([]*bot.Agent, seats)
			for i := range agents {
				agents[i] = bot.New(i)
			}

			gameOvers := 0
			for turns := 0; turns < 2000 && g.Phase != engine.PhaseGameOver; turns++ {
				events := agents[g.Current].TakeTurn(g)
				for _, ev := range events {
					if ev.Type == engine.EventGameOver {
						gameOvers++
					}
				}
				if total := countCards(g); total != 40 {
					t.Fatalf("card conservation broken after turn %d: %d", turns, total)
				}
				if g.Phase == engine.PhaseProtectPrompt {
					t.Fatal("an all-AI match must never suspend")
				}
			}

			if g.Phase != engine.PhaseGameOver {
				t.Fatal("the match must terminate")
			}
			if gameOvers != 1 {
				t.Fatalf("expected exactly one game over event, got %d", gameOvers)
			}
			if g.Winner == "" {
				t.Fatal("winner text must be set")
			}
		})
	}
}

func countCards(g *engine.Game) int {
	total := g.Supply.Remaining() + g.Secrets.Count()
	for _, p := range g.Players {
		total += len(p.Hand) + len(p.Equipped)
	}
	return total
}
