package engine

// ActionType identifies player intents sent to Game.Apply.
type ActionType string

const (
	ActionSelectTarget   ActionType = "select_target"
	ActionAttack         ActionType = "attack"
	ActionPlayCard       ActionType = "play_card"
	ActionActivateSecret ActionType = "activate_secret"
	ActionDrawCard       ActionType = "draw_card"
	ActionRevealRole     ActionType = "reveal_role"
	ActionEndTurn        ActionType = "end_turn"
	ActionRespondProtect ActionType = "respond_protect"
)

// Action is a player's intent input.
type Action struct {
	Type ActionType `json:"type"`
	// Params depend on Type:
	// select_target: Target (seat index)
	// play_card: CardID
	// respond_protect: UseProtect
	Target     int    `json:"target,omitempty"`
	CardID     string `json:"card_id,omitempty"`
	UseProtect bool   `json:"use_protect,omitempty"`
}

// EventType identifies events emitted by the engine.
type EventType string

const (
	EventMatchStart    EventType = "match_start"
	EventTurnStart     EventType = "turn_start"
	EventTurnEnd       EventType = "turn_end"
	EventRoundEnd      EventType = "round_end"
	EventAttack        EventType = "attack"
	EventDamage        EventType = "damage"
	EventImmunity      EventType = "immunity"
	EventCounter       EventType = "counter"
	EventCardPlayed    EventType = "card_played"
	EventCardDrawn     EventType = "card_drawn"
	EventCardRevealed  EventType = "event_card"
	EventSecretPlaced  EventType = "secret_placed"
	EventSecretFired   EventType = "secret_fired"
	EventWardConsumed  EventType = "ward_consumed"
	EventProtectPrompt EventType = "protect_prompt"
	EventRoleRevealed  EventType = "role_revealed"
	EventEliminated    EventType = "eliminated"
	EventRevived       EventType = "revived"
	EventPoison        EventType = "poison"
	EventEffect        EventType = "effect"
	EventGameOver      EventType = "game_over"
)

// Event is emitted by the engine after state changes. Text is the
// human-readable log line pushed to every game log; Data carries the
// structured payload. Private events are routed only to Player.
type Event struct {
	Type    EventType   `json:"type"`
	Player  int         `json:"player"`
	Text    string      `json:"text,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Private bool        `json:"-"`
}
