package lobby

import (
	"fmt"
	"sync"
)

// PlayerInfo holds lobby-level player information. Every entry is a
// human; seats left open when the match starts are filled with AI
// players by the hub.
type PlayerInfo struct {
	ID    string
	Name  string
	Ready bool
}

// Lobby is a match room waiting for players.
type Lobby struct {
	mu      sync.Mutex
	ID      string
	Players []*PlayerInfo
	// Seats is the total seat count the match starts with.
	Seats   int
	Started bool
}

// NewLobby creates a lobby for a match with the given seat count.
func NewLobby(id string, seats int) *Lobby {
	return &Lobby{ID: id, Seats: seats}
}

// Join adds a player to the lobby. Rejoining with a known ID is a
// reconnect and only updates the name.
func (l *Lobby) Join(id, name string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.Started {
		return fmt.Errorf("match already started")
	}
	for _, p := range l.Players {
		if p.ID == id {
			p.Name = name
			return nil
		}
	}
	if len(l.Players) >= l.Seats {
		return fmt.Errorf("lobby is full")
	}
	l.Players = append(l.Players, &PlayerInfo{ID: id, Name: name})
	return nil
}

// Leave removes a player from the lobby.
func (l *Lobby) Leave(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, p := range l.Players {
		if p.ID == id {
			l.Players = append(l.Players[:i], l.Players[i+1:]...)
			return
		}
	}
}

// SetReady toggles a player's ready state.
func (l *Lobby) SetReady(id string, ready bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, p := range l.Players {
		if p.ID == id {
			p.Ready = ready
			return
		}
	}
}

// CanStart reports whether the match can begin: at least one human
// joined and all of them are ready. Empty seats become AI players.
func (l *Lobby) CanStart() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.Players) == 0 {
		return false
	}
	for _, p := range l.Players {
		if !p.Ready {
			return false
		}
	}
	return true
}

// Start marks the lobby as started.
func (l *Lobby) Start() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.Started {
		return fmt.Errorf("already started")
	}
	if len(l.Players) == 0 {
		return fmt.Errorf("no players")
	}
	l.Started = true
	return nil
}

// GetPlayers returns a copy of the player list.
func (l *Lobby) GetPlayers() []PlayerInfo {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]PlayerInfo, len(l.Players))
	for i, p := range l.Players {
		out[i] = *p
	}
	return out
}
