package lobby

import (
	"sync"

	"github.com/google/uuid"
)

// Manager manages multiple lobbies.
type Manager struct {
	mu         sync.Mutex
	lobbies    map[string]*Lobby
	minPlayers int
	maxPlayers int
	defaults   Settings
}

func NewManager(minPlayers, maxPlayers int, defaults Settings) *Manager {
	return &Manager{
		lobbies:    make(map[string]*Lobby),
		minPlayers: minPlayers,
		maxPlayers: maxPlayers,
		defaults:   defaults,
	}
}

// Create creates a new lobby and returns its ID.
func (m *Manager) Create() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := uuid.NewString()
	m.lobbies[id] = NewLobby(id, m.minPlayers, m.maxPlayers, m.defaults)
	return id
}

// Get returns a lobby by ID.
func (m *Manager) Get(id string) *Lobby {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lobbies[id]
}

// Remove forgets a lobby.
func (m *Manager) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.lobbies, id)
}

// Len returns the number of open lobbies.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.lobbies)
}
