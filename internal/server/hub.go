package server

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"emperor/internal/bot"
	"emperor/internal/engine"
	"emperor/internal/engine/effects"
	"emperor/internal/lobby"
	"emperor/internal/protocol"
)

// Hub owns one match room: the lobby, the engine state, the clients and
// the AI agents. All game access happens on the Run goroutine, so the
// engine itself needs no locking.
type Hub struct {
	mu       sync.Mutex
	matchID  string
	log      *zap.Logger
	lobby    *lobby.Lobby
	seats    int
	botDelay time.Duration

	game   *engine.Game
	bots   map[int]*bot.Agent
	seatOf map[string]int

	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	incoming   chan IncomingMessage
	botClock   *time.Timer
	quit       chan struct{}
}

func NewHub(matchID string, lob *lobby.Lobby, seats int, botDelay time.Duration, log *zap.Logger) *Hub {
	clock := time.NewTimer(time.Hour)
	clock.Stop()
	return &Hub{
		matchID:    matchID,
		log:        log.With(zap.String("match", matchID)),
		lobby:      lob,
		seats:      seats,
		botDelay:   botDelay,
		bots:       make(map[int]*bot.Agent),
		seatOf:     make(map[string]int),
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		incoming:   make(chan IncomingMessage, 256),
		botClock:   clock,
		quit:       make(chan struct{}),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			h.sendLobbyUpdate()
			if h.game != nil {
				h.sendStateToClient(client)
			}

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()

		case msg := <-h.incoming:
			h.handleMessage(msg)

		case <-h.botClock.C:
			h.runBotTurn()

		case <-h.quit:
			return
		}
	}
}

func (h *Hub) handleMessage(msg IncomingMessage) {
	switch msg.Envelope.Type {
	case protocol.MsgJoin:
		h.handleJoin(msg)
	case protocol.MsgReady:
		h.handleReady(msg)
	case protocol.MsgStartGame:
		h.handleStart(msg)
	default:
		h.handleGameAction(msg)
	}
}

func (h *Hub) handleJoin(msg IncomingMessage) {
	var join protocol.JoinMsg
	if err := json.Unmarshal(msg.Envelope.Payload, &join); err != nil {
		h.sendError(msg.Client, "invalid join message")
		return
	}
	msg.Client.PlayerID = join.PlayerID
	if err := h.lobby.Join(join.PlayerID, join.Name); err != nil {
		h.sendError(msg.Client, err.Error())
		return
	}
	h.log.Info("player joined", zap.String("player", join.PlayerID), zap.String("name", join.Name))
	h.sendLobbyUpdate()
}

func (h *Hub) handleReady(msg IncomingMessage) {
	var ready protocol.ReadyMsg
	if err := json.Unmarshal(msg.Envelope.Payload, &ready); err != nil {
		h.sendError(msg.Client, "invalid ready message")
		return
	}
	h.lobby.SetReady(msg.Client.PlayerID, ready.Ready)
	h.sendLobbyUpdate()
}

// handleStart builds the engine match: humans in join order, AI players
// filling the remaining seats.
func (h *Hub) handleStart(msg IncomingMessage) {
	if h.game != nil {
		h.sendError(msg.Client, "match already running")
		return
	}
	if !h.lobby.CanStart() {
		h.sendError(msg.Client, "not all players ready")
		return
	}
	if err := h.lobby.Start(); err != nil {
		h.sendError(msg.Client, err.Error())
		return
	}

	humans := h.lobby.GetPlayers()
	players := make([]*engine.Player, 0, h.seats)
	for i, lp := range humans {
		players = append(players, engine.NewPlayer(i, lp.Name, true))
		h.seatOf[lp.ID] = i
	}
	for seat := len(humans); seat < h.seats; seat++ {
		players = append(players, engine.NewPlayer(seat, fmt.Sprintf("Villager %d", seat+1), false))
		h.bots[seat] = bot.New(seat)
	}

	h.game = engine.NewGame(players, engine.DefaultConfig(), effects.NewRegistry())
	events, err := h.game.Start()
	if err != nil {
		h.game = nil
		h.sendError(msg.Client, err.Error())
		return
	}
	h.log.Info("match started",
		zap.Int("seats", h.seats),
		zap.Int("humans", len(humans)),
		zap.Int("bots", h.seats-len(humans)))

	h.dispatchEvents(events)
	h.broadcastState()
	h.scheduleBots()
}

func (h *Hub) handleGameAction(msg IncomingMessage) {
	if h.game == nil {
		h.sendError(msg.Client, "match not started")
		return
	}
	seat, ok := h.seatOf[msg.Client.PlayerID]
	if !ok {
		h.sendError(msg.Client, "not seated in this match")
		return
	}

	action := engine.Action{Type: engine.ActionType(msg.Envelope.Type)}
	if len(msg.Envelope.Payload) > 0 {
		var body protocol.ActionMsg
		if err := json.Unmarshal(msg.Envelope.Payload, &body); err != nil {
			h.sendError(msg.Client, "invalid action payload")
			return
		}
		action.Target = body.Target
		action.CardID = body.CardID
		action.UseProtect = body.UseProtect
	}

	events, err := h.game.Apply(seat, action)
	if err != nil {
		h.log.Debug("intent rejected",
			zap.Int("seat", seat),
			zap.String("action", string(action.Type)),
			zap.Error(err))
		h.sendError(msg.Client, err.Error())
		return
	}

	h.dispatchEvents(events)
	h.broadcastState()
	h.scheduleBots()
}

// scheduleBots arms the bot clock when it is an AI player's move. A
// pending protect prompt always belongs to a human, so the clock stays
// quiet until the human answers.
func (h *Hub) scheduleBots() {
	if h.game == nil || h.game.Phase != engine.PhasePlaying {
		return
	}
	if _, isBot := h.bots[h.game.Current]; isBot {
		h.botClock.Reset(h.botDelay)
	}
}

// runBotTurn lets the current AI player act, then re-arms the clock if
// another AI player is up next. A turn interrupted by a human's
// protect prompt resumes on the next schedule after the answer.
func (h *Hub) runBotTurn() {
	if h.game == nil || h.game.Phase != engine.PhasePlaying {
		return
	}
	agent, ok := h.bots[h.game.Current]
	if !ok {
		return
	}
	events := agent.TakeTurn(h.game)
	h.dispatchEvents(events)
	h.broadcastState()
	h.scheduleBots()
}

// dispatchEvents fans events out to the room. Private events only go to
// the seat they address.
func (h *Hub) dispatchEvents(events []engine.Event) {
	for _, ev := range events {
		env := protocol.MustEnvelope(protocol.MsgEvent, ev)
		if ev.Private {
			h.sendToSeat(ev.Player, env)
			continue
		}
		h.broadcastAll(env)
	}
}

func (h *Hub) broadcastState() {
	if h.game == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	for client := range h.clients {
		h.sendStateToClient(client)
	}
}

func (h *Hub) sendStateToClient(client *Client) {
	if h.game == nil {
		return
	}
	if client.Spectator {
		client.SendEnvelope(protocol.MustEnvelope(protocol.MsgGameState, h.game.PublicView()))
		return
	}
	seat, ok := h.seatOf[client.PlayerID]
	if !ok {
		client.SendEnvelope(protocol.MustEnvelope(protocol.MsgGameState, h.game.PublicView()))
		return
	}
	client.SendEnvelope(protocol.MustEnvelope(protocol.MsgPlayerState, h.game.ViewFor(seat)))
}

func (h *Hub) sendLobbyUpdate() {
	players := h.lobby.GetPlayers()
	lps := make([]protocol.LobbyPlayer, len(players))
	for i, p := range players {
		lps[i] = protocol.LobbyPlayer{ID: p.ID, Name: p.Name, Ready: p.Ready}
	}
	h.broadcastAll(protocol.MustEnvelope(protocol.MsgLobbyUpdate, protocol.LobbyUpdate{
		MatchID: h.matchID,
		Players: lps,
		Seats:   h.seats,
		Started: h.lobby.Started,
	}))
}

func (h *Hub) sendToSeat(seat int, env protocol.Envelope) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for client := range h.clients {
		if client.Spectator {
			continue
		}
		if s, ok := h.seatOf[client.PlayerID]; ok && s == seat {
			client.SendEnvelope(env)
		}
	}
}

func (h *Hub) broadcastAll(env protocol.Envelope) {
	h.mu.Lock()
	defer h.mu.Unlock()
	data, err := json.Marshal(env)
	if err != nil {
		h.log.Error("broadcast marshal", zap.Error(err))
		return
	}
	for client := range h.clients {
		select {
		case client.send <- data:
		default:
			h.log.Warn("client buffer full", zap.String("player", client.PlayerID))
		}
	}
}

func (h *Hub) sendError(client *Client, message string) {
	client.SendEnvelope(protocol.MustEnvelope(protocol.MsgError, protocol.ErrorMsg{Message: message}))
}
