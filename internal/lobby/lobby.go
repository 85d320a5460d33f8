package lobby

import (
	"errors"
	"sync"
)

var (
	ErrStarted          = errors.New("game already started")
	ErrFull             = errors.New("lobby is full")
	ErrNotEnoughPlayers = errors.New("not enough players")
	ErrNotReady         = errors.New("not every player is ready")
	ErrNotHost          = errors.New("only the host can do that")
)

// PlayerInfo holds lobby-level player information.
type PlayerInfo struct {
	ID    string
	Name  string
	Ready bool
}

// Settings are the game options chosen before the game starts.
type Settings struct {
	Expansion string
	Market    string
}

// Lobby represents a game lobby waiting for players.
type Lobby struct {
	mu         sync.Mutex
	ID         string
	Players    []*PlayerInfo
	MaxPlayers int
	MinPlayers int
	Settings   Settings
	Started    bool
}

// NewLobby creates a new lobby.
func NewLobby(id string, minPlayers, maxPlayers int, settings Settings) *Lobby {
	return &Lobby{
		ID:         id,
		MinPlayers: minPlayers,
		MaxPlayers: maxPlayers,
		Settings:   settings,
	}
}

// Join adds a player to the lobby. Joining again with a known ID renames the player.
func (l *Lobby) Join(id, name string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, p := range l.Players {
		if p.ID == id {
			p.Name = name
			return nil
		}
	}
	if l.Started {
		return ErrStarted
	}
	if len(l.Players) >= l.MaxPlayers {
		return ErrFull
	}
	l.Players = append(l.Players, &PlayerInfo{ID: id, Name: name})
	return nil
}

// Leave removes a player from the lobby. Seats are kept once the game started.
func (l *Lobby) Leave(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.Started {
		return
	}
	for i, p := range l.Players {
		if p.ID == id {
			l.Players = append(l.Players[:i], l.Players[i+1:]...)
			return
		}
	}
}

// SetReady sets a player's ready state.
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

// Host returns the ID of the first seated player, or "".
func (l *Lobby) Host() string {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.Players) == 0 {
		return ""
	}
	return l.Players[0].ID
}

// Configure changes the game options. Only the host may do so before the start.
func (l *Lobby) Configure(playerID string, s Settings) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.Started {
		return ErrStarted
	}
	if len(l.Players) == 0 || l.Players[0].ID != playerID {
		return ErrNotHost
	}
	if s.Expansion != "" {
		l.Settings.Expansion = s.Expansion
	}
	if s.Market != "" {
		l.Settings.Market = s.Market
	}
	return nil
}

// CanStart returns true if enough players are ready.
func (l *Lobby) CanStart() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.checkStart() == nil
}

func (l *Lobby) checkStart() error {
	if l.Started {
		return ErrStarted
	}
	if len(l.Players) < l.MinPlayers {
		return ErrNotEnoughPlayers
	}
	for _, p := range l.Players {
		if !p.Ready {
			return ErrNotReady
		}
	}
	return nil
}

// Start marks the lobby as started.
func (l *Lobby) Start() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.checkStart(); err != nil {
		return err
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

// GetSettings returns the current game options.
func (l *Lobby) GetSettings() Settings {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.Settings
}
