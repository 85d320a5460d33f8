package protocol

// Message types: Server → Client
const (
	MsgLobbyUpdate = "lobby_update"
	MsgGameState   = "game_state"
	MsgPlayerState = "player_state"
	MsgEvent       = "event"
	MsgGameOver    = "game_over"
	MsgError       = "error"
)

// Message types: Client → Server
const (
	MsgJoin         = "join"
	MsgReady        = "ready"
	MsgConfigure    = "configure"
	MsgStartGame    = "start_game"
	MsgChooseAction = "choose_action"
)

// LobbyUpdate is sent to all clients when lobby state changes.
type LobbyUpdate struct {
	GameID    string        `json:"game_id"`
	Players   []LobbyPlayer `json:"players"`
	Host      string        `json:"host"`
	Expansion string        `json:"expansion"`
	Market    string        `json:"market"`
	Started   bool          `json:"started"`
}

type LobbyPlayer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Ready bool   `json:"ready"`
}

// JoinMsg is sent by a player to join the game.
type JoinMsg struct {
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
}

// ReadyMsg is sent by a player to toggle ready state.
type ReadyMsg struct {
	Ready bool `json:"ready"`
}

// ConfigureMsg is sent by the host to pick the expansion and market.
type ConfigureMsg struct {
	Expansion string `json:"expansion"`
	Market    string `json:"market"`
}

// ChooseActionMsg picks one entry of the action list the player was shown.
type ChooseActionMsg struct {
	Generation uint64 `json:"generation"`
	Index      int    `json:"index"`
}

// EventMsg carries one line of the game log.
type EventMsg struct {
	Type    string `json:"type"`
	Player  string `json:"player,omitempty"`
	Message string `json:"message"`
}

// ErrorMsg is sent to a client on error.
type ErrorMsg struct {
	Message string `json:"message"`
}
