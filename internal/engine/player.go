package engine

// Player holds one participant's mutable state. Players are created at
// setup and never removed; elimination flips Alive so the seat stays
// addressable for revival effects.
type Player struct {
	Seat    int    `json:"seat"`
	Name    string `json:"name"`
	Role    Role   `json:"-"`
	IsHuman bool   `json:"is_human"`

	Alive    bool `json:"alive"`
	Revealed bool `json:"revealed"`

	// Base stats fixed at setup; runtime stats drift with items,
	// curses and card effects.
	BaseHP     int `json:"-"`
	MaxStamina int `json:"-"`
	HP         int `json:"hp"`
	Stamina    int `json:"stamina"`
	Attack     int `json:"attack"`
	Defense    int `json:"defense"`

	Hand     []Card `json:"-"`
	Equipped []Card `json:"equipped"`

	// Status flags
	PoisonRounds  int  `json:"-"` // 1 hp per round while > 0
	StaminaLocked bool `json:"-"` // curse: stamina cap clamped to 2
	CounterArmed  bool `json:"-"` // retaliate against the next attack
	FleeActive    bool `json:"-"` // immune to Invasion this round
	FirstHitUsed  bool `json:"-"` // per-round first-hit immunity spent
	GuardUsed     bool `json:"-"` // one-time guard intervention spent

	// Per-turn flags, reset at the start of every own turn
	Attacked   bool `json:"-"`
	UsedAction bool `json:"-"`
	CardsDrawn int  `json:"-"`

	// Transient: peeked supply cards, visible only to this player
	Peeked []Card `json:"-"`
}

func NewPlayer(seat int, name string, human bool) *Player {
	return &Player{Seat: seat, Name: name, IsHuman: human, Alive: true}
}

// AssignRole fixes the player's role and initializes stats from it.
func (p *Player) AssignRole(r Role) {
	p.Role = r
	p.BaseHP = r.HP
	p.MaxStamina = r.Stamina
	p.HP = r.HP
	p.Stamina = r.Stamina
	p.Attack = r.Attack
	p.Defense = r.Defense
}

// StaminaCap returns the current stamina ceiling: max stamina, clamped
// to 2 while cursed.
func (p *Player) StaminaCap() int {
	if p.StaminaLocked {
		return 2
	}
	return p.MaxStamina
}

// GainStamina adds n stamina without exceeding the current cap.
func (p *Player) GainStamina(n int) {
	p.Stamina += n
	if cap := p.StaminaCap(); p.Stamina > cap {
		p.Stamina = cap
	}
}

// Heal restores hp up to the base maximum.
func (p *Player) Heal(n int) {
	p.HP += n
	if p.HP > p.BaseHP {
		p.HP = p.BaseHP
	}
}

// ResetTurnFlags clears the per-turn gating flags.
func (p *Player) ResetTurnFlags() {
	p.Attacked = false
	p.UsedAction = false
	p.CardsDrawn = 0
	p.Peeked = nil
}

// RemoveFromHand removes the first copy of the given card from hand.
func (p *Player) RemoveFromHand(cardID string) (Card, bool) {
	for i, c := range p.Hand {
		if c.ID == cardID {
			p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
			return c, true
		}
	}
	return Card{}, false
}

// FindInHand returns the first card in hand matching the effect tag.
func (p *Player) FindInHand(tag EffectTag) (Card, bool) {
	for _, c := range p.Hand {
		if c.Effect == tag {
			return c, true
		}
	}
	return Card{}, false
}

// RemoveEquipped removes the first equipped item matching the effect tag.
func (p *Player) RemoveEquipped(tag EffectTag) (Card, bool) {
	for i, c := range p.Equipped {
		if c.Effect == tag {
			p.Equipped = append(p.Equipped[:i], p.Equipped[i+1:]...)
			return c, true
		}
	}
	return Card{}, false
}
