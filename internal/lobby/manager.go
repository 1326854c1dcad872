package lobby

import (
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Manager manages the live lobbies.
type Manager struct {
	mu      sync.Mutex
	lobbies map[string]*Lobby
}

func NewManager() *Manager {
	return &Manager{lobbies: make(map[string]*Lobby)}
}

// Create creates a new lobby and returns its ID.
func (m *Manager) Create(seats int) string {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := newMatchID()
	m.lobbies[id] = NewLobby(id, seats)
	return id
}

// Get returns a lobby by ID, or nil.
func (m *Manager) Get(id string) *Lobby {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lobbies[id]
}

// newMatchID returns a short ID that still fits in a join link.
func newMatchID() string {
	return strings.Split(uuid.NewString(), "-")[0]
}
