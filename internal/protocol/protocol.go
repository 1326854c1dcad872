package protocol

import "encoding/json"

// Envelope is the standard WebSocket message wrapper. In-game action
// envelopes carry the engine action type directly.
type Envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// NewEnvelope creates an envelope with a JSON-encoded payload.
func NewEnvelope(typ string, payload interface{}) (Envelope, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, err
	}
	return Envelope{Type: typ, Payload: data}, nil
}

// MustEnvelope is like NewEnvelope but panics on error.
func MustEnvelope(typ string, payload interface{}) Envelope {
	e, err := NewEnvelope(typ, payload)
	if err != nil {
		panic(err)
	}
	return e
}

// Message types: Server → Client
const (
	MsgLobbyUpdate = "lobby_update"
	MsgGameState   = "game_state"   // spectator snapshot
	MsgPlayerState = "player_state" // per-seat snapshot
	MsgEvent       = "event"
	MsgError       = "error"
)

// Message types: Client → Server. In-game intents (attack, play_card,
// select_target, activate_secret, draw_card, reveal_role, end_turn,
// respond_protect) reuse the engine's action type names as the
// envelope type.
const (
	MsgJoin      = "join"
	MsgReady     = "ready"
	MsgStartGame = "start_game"
)

// LobbyUpdate is sent to all clients when lobby state changes.
type LobbyUpdate struct {
	MatchID string        `json:"match_id"`
	Players []LobbyPlayer `json:"players"`
	Seats   int           `json:"seats"`
	Started bool          `json:"started"`
}

type LobbyPlayer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Ready bool   `json:"ready"`
}

// JoinMsg is sent by a player to join the match.
type JoinMsg struct {
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
}

// ReadyMsg toggles a player's ready state.
type ReadyMsg struct {
	Ready bool `json:"ready"`
}

// ActionMsg is the payload for every in-game intent envelope.
type ActionMsg struct {
	Target     int    `json:"target,omitempty"`
	CardID     string `json:"card_id,omitempty"`
	UseProtect bool   `json:"use_protect,omitempty"`
}

// ErrorMsg is sent to a client when an intent is rejected.
type ErrorMsg struct {
	Message string `json:"message"`
}
