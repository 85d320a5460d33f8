package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"metrodice/internal/engine"
	"metrodice/internal/lobby"
	"metrodice/internal/protocol"

	"go.uber.org/zap"
)

var (
	ErrGameNotStarted = errors.New("game not started")
	ErrNotYourTurn    = errors.New("not your turn")
)

// Hub manages the connections and the game of one room. All game access
// happens on the Run goroutine.
type Hub struct {
	gameID     string
	lobby      *lobby.Lobby
	game       *engine.Game
	seed       uint64
	logger     *zap.Logger
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	incoming   chan IncomingMessage
	done       chan struct{}
}

func NewHub(gameID string, lob *lobby.Lobby, seed uint64, logger *zap.Logger) *Hub {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Hub{
		gameID:     gameID,
		lobby:      lob,
		seed:       seed,
		logger:     logger.With(zap.String("game", gameID)),
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		incoming:   make(chan IncomingMessage, 256),
		done:       make(chan struct{}),
	}
}

// Run serves the room until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case client := <-h.register:
			h.addClient(client)

		case client := <-h.unregister:
			h.removeClient(client)

		case msg := <-h.incoming:
			h.handleMessage(msg)

		case <-ctx.Done():
			for client := range h.clients {
				delete(h.clients, client)
				close(client.send)
			}
			return
		}
	}
}

// join hands a new connection to the run loop. It reports false once the hub
// has stopped.
func (h *Hub) join(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

// leave hands a closed connection to the run loop, unless the hub has stopped.
func (h *Hub) leave(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// deliver queues a client message, unless the hub has stopped.
func (h *Hub) deliver(msg IncomingMessage) bool {
	select {
	case <-h.done:
		return false
	default:
	}
	select {
	case h.incoming <- msg:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) addClient(client *Client) {
	h.clients[client] = true
	h.sendLobbyUpdate()
	if h.game != nil {
		h.sendStateToClient(client)
	}
}

func (h *Hub) removeClient(client *Client) {
	if _, ok := h.clients[client]; !ok {
		return
	}
	delete(h.clients, client)
	close(client.send)
	if h.game == nil && client.Type == ClientPlayer && client.PlayerID != "" {
		h.lobby.Leave(client.PlayerID)
		h.sendLobbyUpdate()
	}
}

func (h *Hub) handleMessage(msg IncomingMessage) {
	var err error
	switch msg.Envelope.Type {
	case protocol.MsgJoin:
		err = h.handleJoin(msg)
	case protocol.MsgReady:
		err = h.handleReady(msg)
	case protocol.MsgConfigure:
		err = h.handleConfigure(msg)
	case protocol.MsgStartGame:
		err = h.handleStartGame(msg)
	case protocol.MsgChooseAction:
		err = h.handleChooseAction(msg)
	default:
		err = fmt.Errorf("unknown message type %q", msg.Envelope.Type)
	}
	if err != nil {
		h.logger.Debug("message rejected",
			zap.String("type", msg.Envelope.Type),
			zap.String("player", msg.Client.PlayerID),
			zap.Error(err),
		)
		h.sendError(msg.Client, err.Error())
	}
}

func (h *Hub) handleJoin(msg IncomingMessage) error {
	var join protocol.JoinMsg
	if err := msg.Envelope.Decode(&join); err != nil {
		return err
	}
	if join.PlayerID == "" {
		return errors.New("missing player id")
	}
	if err := h.lobby.Join(join.PlayerID, join.Name); err != nil {
		return err
	}
	msg.Client.PlayerID = join.PlayerID
	h.sendLobbyUpdate()
	return nil
}

func (h *Hub) handleReady(msg IncomingMessage) error {
	var ready protocol.ReadyMsg
	if err := msg.Envelope.Decode(&ready); err != nil {
		return err
	}
	h.lobby.SetReady(msg.Client.PlayerID, ready.Ready)
	h.sendLobbyUpdate()
	return nil
}

func (h *Hub) handleConfigure(msg IncomingMessage) error {
	var cfg protocol.ConfigureMsg
	if err := msg.Envelope.Decode(&cfg); err != nil {
		return err
	}
	if cfg.Expansion != "" {
		if _, err := engine.ExpansionByName(cfg.Expansion); err != nil {
			return err
		}
	}
	if cfg.Market != "" {
		if _, err := engine.MarketByName(cfg.Market, nil); err != nil {
			return err
		}
	}
	if err := h.lobby.Configure(msg.Client.PlayerID, lobby.Settings{Expansion: cfg.Expansion, Market: cfg.Market}); err != nil {
		return err
	}
	h.sendLobbyUpdate()
	return nil
}

func (h *Hub) handleStartGame(msg IncomingMessage) error {
	if msg.Client.PlayerID == "" || msg.Client.PlayerID != h.lobby.Host() {
		return lobby.ErrNotHost
	}
	// The lobby is only marked started once the game exists.
	game, err := h.newGame()
	if err != nil {
		return err
	}
	if err := h.lobby.Start(); err != nil {
		return err
	}
	h.game = game
	h.logger.Info("game started", zap.Int("players", len(game.Players)), zap.String("expansion", game.Expansion.Name))

	h.sendLobbyUpdate()
	h.broadcastEvents(h.game.ConsumeEvents())
	h.broadcastState()
	return nil
}

func (h *Hub) newGame() (*engine.Game, error) {
	settings := h.lobby.GetSettings()
	exp, err := engine.ExpansionByName(settings.Expansion)
	if err != nil {
		return nil, err
	}
	dice := engine.NewRandomDice(h.seed)
	market, err := engine.MarketByName(settings.Market, dice)
	if err != nil {
		return nil, err
	}

	lobbyPlayers := h.lobby.GetPlayers()
	players := make([]*engine.Player, len(lobbyPlayers))
	for i, lp := range lobbyPlayers {
		players[i] = engine.NewPlayer(lp.ID, lp.Name)
	}
	return engine.NewGame(players, engine.GameConfig{
		Expansion: exp,
		Market:    market,
		Dice:      dice,
		Logger:    h.logger,
	})
}

func (h *Hub) handleChooseAction(msg IncomingMessage) error {
	if h.game == nil {
		return ErrGameNotStarted
	}
	var choice protocol.ChooseActionMsg
	if err := msg.Envelope.Decode(&choice); err != nil {
		return err
	}
	if h.game.CurrentPlayer().ID != msg.Client.PlayerID {
		return ErrNotYourTurn
	}

	err := h.game.ExecuteIndex(choice.Generation, choice.Index)
	h.broadcastEvents(h.game.ConsumeEvents())
	h.broadcastState()
	if err != nil {
		if engine.IsFatal(err) {
			h.logger.Error("engine invariant violated", zap.Error(err))
		}
		return err
	}

	if h.game.Phase == engine.PhaseGameOver {
		h.broadcastAll(protocol.MustEnvelope(protocol.MsgGameOver, h.game.Standings()))
		if w := h.game.Winner(); w != nil {
			h.logger.Info("game over", zap.String("winner", w.Name))
		}
	}
	return nil
}

func (h *Hub) broadcastEvents(events []engine.Event) {
	for _, ev := range events {
		h.broadcastAll(protocol.MustEnvelope(protocol.MsgEvent, protocol.EventMsg{
			Type:    string(ev.Type),
			Player:  ev.Player,
			Message: ev.Message,
		}))
	}
}

func (h *Hub) broadcastState() {
	if h.game == nil {
		return
	}
	for client := range h.clients {
		h.sendStateToClient(client)
	}
}

func (h *Hub) sendStateToClient(client *Client) {
	if h.game == nil {
		return
	}
	if client.Type == ClientTable {
		client.SendEnvelope(protocol.MustEnvelope(protocol.MsgGameState, h.game.PublicView()))
		return
	}
	client.SendEnvelope(protocol.MustEnvelope(protocol.MsgPlayerState, h.game.ViewFor(client.PlayerID)))
}

func (h *Hub) sendLobbyUpdate() {
	players := h.lobby.GetPlayers()
	lps := make([]protocol.LobbyPlayer, len(players))
	for i, p := range players {
		lps[i] = protocol.LobbyPlayer{ID: p.ID, Name: p.Name, Ready: p.Ready}
	}
	settings := h.lobby.GetSettings()
	h.broadcastAll(protocol.MustEnvelope(protocol.MsgLobbyUpdate, protocol.LobbyUpdate{
		GameID:    h.gameID,
		Players:   lps,
		Host:      h.lobby.Host(),
		Expansion: settings.Expansion,
		Market:    settings.Market,
		Started:   h.game != nil,
	}))
}

func (h *Hub) broadcastAll(env protocol.Envelope) {
	data, err := json.Marshal(env)
	if err != nil {
		h.logger.Error("broadcast marshal", zap.String("type", env.Type), zap.Error(err))
		return
	}
	for client := range h.clients {
		client.queue(data)
	}
}

func (h *Hub) sendError(client *Client, message string) {
	client.SendEnvelope(protocol.MustEnvelope(protocol.MsgError, protocol.ErrorMsg{Message: message}))
}
