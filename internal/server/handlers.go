package server

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"metrodice/internal/config"
	"metrodice/internal/lobby"
	qr "metrodice/internal/qrcode"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Handlers holds HTTP handler dependencies.
type Handlers struct {
	ctx      context.Context
	cfg      config.Config
	logger   *zap.Logger
	LobbyMgr *lobby.Manager

	mu   sync.Mutex
	hubs map[string]*Hub
}

// NewHandlers creates the handlers. Hubs started by them stop when ctx is done.
func NewHandlers(ctx context.Context, cfg config.Config, logger *zap.Logger) *Handlers {
	defaults := lobby.Settings{Expansion: cfg.Expansion, Market: cfg.Market}
	return &Handlers{
		ctx:      ctx,
		cfg:      cfg,
		logger:   logger,
		LobbyMgr: lobby.NewManager(cfg.MinPlayers, cfg.MaxPlayers, defaults),
		hubs:     make(map[string]*Hub),
	}
}

type createResponse struct {
	GameID  string `json:"game_id"`
	JoinURL string `json:"join_url"`
	QRURL   string `json:"qr_url"`
}

// HandleCreateGame creates a new game lobby and returns its ID.
func (h *Handlers) HandleCreateGame(w http.ResponseWriter, r *http.Request) {
	gameID := h.LobbyMgr.Create()
	hub := NewHub(gameID, h.LobbyMgr.Get(gameID), h.cfg.Seed, h.logger)

	h.mu.Lock()
	h.hubs[gameID] = hub
	h.mu.Unlock()
	go hub.Run(h.ctx)

	h.logger.Info("game created", zap.String("game", gameID))
	writeJSON(w, http.StatusCreated, createResponse{
		GameID:  gameID,
		JoinURL: qr.JoinURL(h.baseURL(r), gameID),
		QRURL:   "/api/qr?game=" + gameID,
	})
}

// HandleQR generates a QR code PNG for joining the game.
func (h *Handlers) HandleQR(w http.ResponseWriter, r *http.Request) {
	gameID := r.URL.Query().Get("game")
	if gameID == "" {
		http.Error(w, "missing game parameter", http.StatusBadRequest)
		return
	}
	if h.hub(gameID) == nil {
		http.Error(w, "game not found", http.StatusNotFound)
		return
	}
	png, err := qr.Generate(qr.JoinURL(h.baseURL(r), gameID), h.cfg.QRSize)
	if err != nil {
		h.logger.Error("qr generation", zap.Error(err))
		http.Error(w, "QR generation failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(png)
}

// HandleWS handles WebSocket connections.
func (h *Handlers) HandleWS(w http.ResponseWriter, r *http.Request) {
	gameID := r.URL.Query().Get("game")
	playerID := r.URL.Query().Get("player")
	clientType := r.URL.Query().Get("type") // "table" or "player"

	if gameID == "" {
		http.Error(w, "missing game parameter", http.StatusBadRequest)
		return
	}
	hub := h.hub(gameID)
	if hub == nil {
		http.Error(w, "game not found", http.StatusNotFound)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("ws upgrade", zap.Error(err))
		return
	}

	ct := ClientPlayer
	if clientType == "table" {
		ct = ClientTable
	}

	client := NewClient(hub, conn, playerID, ct)
	if !hub.join(client) {
		conn.Close()
		return
	}

	go client.WritePump()
	go client.ReadPump()
}

// HandlePlayerID returns a new player ID.
func (h *Handlers) HandlePlayerID(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	_, _ = w.Write([]byte(GeneratePlayerID()))
}

func (h *Handlers) hub(gameID string) *Hub {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.hubs[gameID]
}

func (h *Handlers) baseURL(r *http.Request) string {
	if h.cfg.BaseURL != "" {
		return h.cfg.BaseURL
	}
	return "http://" + r.Host
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
