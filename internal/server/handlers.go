package server

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"emperor/internal/config"
	"emperor/internal/lobby"
	qr "emperor/internal/qrcode"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Handlers holds the HTTP handler dependencies.
type Handlers struct {
	mu       sync.Mutex
	LobbyMgr *lobby.Manager
	Hubs     map[string]*Hub
	cfg      config.Config
	log      *zap.Logger
}

func NewHandlers(cfg config.Config, log *zap.Logger) *Handlers {
	return &Handlers{
		LobbyMgr: lobby.NewManager(),
		Hubs:     make(map[string]*Hub),
		cfg:      cfg,
		log:      log,
	}
}

// HandleCreateMatch opens a new match room and redirects to its table
// screen.
func (h *Handlers) HandleCreateMatch(w http.ResponseWriter, r *http.Request) {
	matchID := h.LobbyMgr.Create(h.cfg.Seats)
	lob := h.LobbyMgr.Get(matchID)
	hub := NewHub(matchID, lob, h.cfg.Seats, h.cfg.BotDelay, h.log)

	h.mu.Lock()
	h.Hubs[matchID] = hub
	h.mu.Unlock()
	go hub.Run()

	h.log.Info("match created", zap.String("match", matchID))
	http.Redirect(w, r, fmt.Sprintf("/?match=%s&view=table", matchID), http.StatusSeeOther)
}

// HandleQR renders the join link for a match as a QR code PNG.
func (h *Handlers) HandleQR(w http.ResponseWriter, r *http.Request) {
	matchID := r.URL.Query().Get("match")
	if matchID == "" {
		http.Error(w, "missing match parameter", http.StatusBadRequest)
		return
	}
	url := fmt.Sprintf("http://%s/?match=%s", r.Host, matchID)
	png, err := qr.PNG(url, 256)
	if err != nil {
		http.Error(w, "QR generation failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

// HandleWS upgrades a connection and attaches it to its match hub.
func (h *Handlers) HandleWS(w http.ResponseWriter, r *http.Request) {
	matchID := r.URL.Query().Get("match")
	playerID := r.URL.Query().Get("player")
	view := r.URL.Query().Get("view")

	if matchID == "" {
		http.Error(w, "missing match parameter", http.StatusBadRequest)
		return
	}
	h.mu.Lock()
	hub, ok := h.Hubs[matchID]
	h.mu.Unlock()
	if !ok {
		http.Error(w, "match not found", http.StatusNotFound)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("websocket upgrade", zap.Error(err))
		return
	}

	client := NewClient(hub, conn, playerID, view == "table", h.log)
	hub.register <- client

	go client.WritePump()
	go client.ReadPump()
}

// HandlePlayerID hands out a fresh player identity.
func (h *Handlers) HandlePlayerID(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(GeneratePlayerID()))
}
