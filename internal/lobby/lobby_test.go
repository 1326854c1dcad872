package lobby_test

import (
	"fmt"
	"testing"

	"emperor/internal/lobby"
)

func TestJoinAndReconnect(t *testing.T) {
	l := lobby.NewLobby("abc", 6)
	if err := l.Join("p1", "Alice"); err != nil {
		t.Fatalf("join: %v", err)
	}
	if err := l.Join("p1", "Alicia"); err != nil {
		t.Fatalf("rejoin: %v", err)
	}
	players := l.GetPlayers()
	if len(players) != 1 {
		t.Fatalf("rejoin must not add a seat, got %d players", len(players))
	}
	if players[0].Name != "Alicia" {
		t.Fatalf("rejoin must update the name, got %q", players[0].Name)
	}
}

func TestJoinRejectsWhenFull(t *testing.T) {
	l := lobby.NewLobby("abc", 2)
	for i := 0; i < 2; i++ {
		if err := l.Join(fmt.Sprintf("p%d", i), "x"); err != nil {
			t.Fatalf("join %d: %v", i, err)
		}
	}
	if err := l.Join("p9", "late"); err == nil {
		t.Fatal("a full lobby must reject new players")
	}
}

func TestJoinRejectsAfterStart(t *testing.T) {
	l := lobby.NewLobby("abc", 6)
	if err := l.Join("p1", "Alice"); err != nil {
		t.Fatalf("join: %v", err)
	}
	if err := l.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := l.Join("p2", "Bob"); err == nil {
		t.Fatal("a started match must reject new players")
	}
}

func TestCanStartNeedsEveryoneReady(t *testing.T) {
	l := lobby.NewLobby("abc", 6)
	if l.CanStart() {
		t.Fatal("an empty lobby must not start")
	}
	l.Join("p1", "Alice")
	l.Join("p2", "Bob")
	l.SetReady("p1", true)
	if l.CanStart() {
		t.Fatal("must wait for every player")
	}
	l.SetReady("p2", true)
	if !l.CanStart() {
		t.Fatal("all ready, one human suffices: empty seats become AI")
	}
	l.SetReady("p2", false)
	if l.CanStart() {
		t.Fatal("un-readying must block the start again")
	}
}

func TestLeaveFreesTheSeat(t *testing.T) {
	l := lobby.NewLobby("abc", 2)
	l.Join("p1", "Alice")
	l.Join("p2", "Bob")
	l.Leave("p1")
	if err := l.Join("p3", "Carol"); err != nil {
		t.Fatalf("the freed seat must be joinable: %v", err)
	}
}

func TestStartIsOneShot(t *testing.T) {
	l := lobby.NewLobby("abc", 6)
	if err := l.Start(); err == nil {
		t.Fatal("starting with no players must fail")
	}
	l.Join("p1", "Alice")
	if err := l.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := l.Start(); err == nil {
		t.Fatal("second start must fail")
	}
}

func TestManagerCreateAndGet(t *testing.T) {
	m := lobby.NewManager()
	id := m.Create(6)
	if id == "" {
		t.Fatal("match ID must not be empty")
	}
	l := m.Get(id)
	if l == nil {
		t.Fatal("created lobby must be retrievable")
	}
	if l.Seats != 6 {
		t.Fatalf("seat count: got %d, want 6", l.Seats)
	}
	if m.Get("nope") != nil {
		t.Fatal("unknown ID must yield nil")
	}
	if other := m.Create(6); other == id {
		t.Fatal("IDs must be unique")
	}
}
