package engine

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

var (
	ErrNotYourTurn      = errors.New("not your turn")
	ErrWrongPhase       = errors.New("wrong phase for this action")
	ErrInvalidAction    = errors.New("invalid action")
	ErrInvalidTarget    = errors.New("invalid target")
	ErrNoTarget         = errors.New("no target selected")
	ErrNotEnoughStamina = errors.New("not enough stamina")
	ErrGameOver         = errors.New("the match is over")
	ErrPromptPending    = errors.New("a protect decision is pending")
	ErrNoPrompt         = errors.New("no protect decision is pending")
)

// ProtectPending tracks a suspended attack waiting on the target's
// decision whether to consume their ward. The only suspension point in
// the engine.
type ProtectPending struct {
	Attacker int `json:"attacker"`
	Target   int `json:"target"`
}

// Game holds the entire match state and is the single owner of the
// supply, the players and the secret book. External callers — the human
// front end and the AI agents alike — only ever go through Apply.
type Game struct {
	Players []*Player
	Supply  *Supply
	Secrets *SecretBook
	Effects *EffectRegistry
	Config  GameConfig

	Phase GamePhase
	Round int
	// Current is the seat whose turn it is.
	Current int
	// Selected is the transient target selection, -1 when none.
	Selected   int
	TurnsTaken int // turns completed this round

	PendingProtect *ProtectPending
	Winner         string
}

// NewGame creates a match in Setup phase for the given players.
func NewGame(players []*Player, config GameConfig, effects *EffectRegistry) *Game {
	return &Game{
		Players:  players,
		Secrets:  NewSecretBook(),
		Effects:  effects,
		Config:   config,
		Phase:    PhaseSetup,
		Selected: -1,
	}
}

// Start assigns shuffled roles, builds the supply, deals starting hands
// and begins round 1.
func (g *Game) Start() ([]Event, error) {
	if g.Phase != PhaseSetup {
		return nil, ErrWrongPhase
	}
	roles, err := RoleSet(len(g.Players))
	if err != nil {
		return nil, err
	}
	rand.Shuffle(len(roles), func(i, j int) {
		roles[i], roles[j] = roles[j], roles[i]
	})
	for i, p := range g.Players {
		p.AssignRole(roles[i])
	}

	g.Supply = NewSupply(g.Config.Cards)
	for _, p := range g.Players {
		g.Supply.DealStartingHand(p, g.Config.StartingHandSize, g.Config.MaxHandSize)
	}

	g.Round = 1
	g.Current = 0
	g.TurnsTaken = 0
	g.Phase = PhasePlaying

	events := []Event{{
		Type: EventMatchStart,
		Text: fmt.Sprintf("The match begins with %d players.", len(g.Players)),
		Data: map[string]interface{}{"players": len(g.Players)},
	}}
	events = append(events, g.turnStartEvent())
	return events, nil
}

// Apply is the single entry point for player intents.
func (g *Game) Apply(seat int, a Action) ([]Event, error) {
	events, err := g.apply(seat, a)
	if err != nil {
		return events, err
	}
	// A seat that died resolving its own intent can never end its turn
	// itself; close the turn here so the match is not left waiting on a
	// dead player.
	if g.Phase == PhasePlaying && !g.Players[g.Current].Alive {
		events = append(events, g.closeDeadTurn()...)
	}
	return events, nil
}

func (g *Game) apply(seat int, a Action) ([]Event, error) {
	if g.Phase == PhaseGameOver {
		return nil, ErrGameOver
	}
	if g.Phase == PhaseSetup {
		return nil, ErrWrongPhase
	}
	if seat < 0 || seat >= len(g.Players) {
		return nil, ErrInvalidAction
	}

	if g.Phase == PhaseProtectPrompt {
		if a.Type != ActionRespondProtect {
			return nil, ErrPromptPending
		}
		if g.PendingProtect == nil || seat != g.PendingProtect.Target {
			return nil, ErrNotYourTurn
		}
		return g.applyRespondProtect(a.UseProtect)
	}
	if a.Type == ActionRespondProtect {
		return nil, ErrNoPrompt
	}

	if seat != g.Current {
		return nil, ErrNotYourTurn
	}
	if !g.Players[seat].Alive {
		return nil, ErrInvalidAction
	}

	switch a.Type {
	case ActionSelectTarget:
		return g.applySelectTarget(seat, a)
	case ActionAttack:
		return g.applyAttack(seat)
	case ActionPlayCard:
		return g.applyPlayCard(seat, a)
	case ActionActivateSecret:
		return g.applyActivateSecret(seat)
	case ActionDrawCard:
		return g.applyDrawCard(seat)
	case ActionRevealRole:
		return g.applyRevealRole(seat)
	case ActionEndTurn:
		return g.applyEndTurn(seat)
	default:
		return nil, ErrInvalidAction
	}
}

func (g *Game) applySelectTarget(seat int, a Action) ([]Event, error) {
	if a.Target < 0 || a.Target >= len(g.Players) || a.Target == seat {
		return nil, ErrInvalidTarget
	}
	g.Selected = a.Target
	return nil, nil
}

func (g *Game) applyAttack(seat int) ([]Event, error) {
	attacker := g.Players[seat]
	if attacker.Attacked {
		return nil, fmt.Errorf("already attacked this turn")
	}
	// The resource check must precede the protect prompt.
	if attacker.Stamina < g.Config.AttackCost {
		return nil, ErrNotEnoughStamina
	}
	target, err := g.LivingTarget(seat)
	if err != nil {
		return nil, err
	}
	if target.Role.ID == RoleEmperor && g.EmperorShielded() {
		return nil, fmt.Errorf("the Emperor cannot be attacked while the Guard lives")
	}

	attacker.Stamina -= g.Config.AttackCost
	attacker.Attacked = true

	events := []Event{{
		Type:   EventAttack,
		Player: seat,
		Text:   fmt.Sprintf("%s attacks %s.", attacker.Name, target.Name),
		Data:   map[string]interface{}{"target": target.Seat},
	}}

	if g.Secrets.IsProtected(target.Seat) {
		if target.IsHuman {
			// Suspend mid-resolution until the target answers.
			g.PendingProtect = &ProtectPending{Attacker: seat, Target: target.Seat}
			g.Phase = PhaseProtectPrompt
			events = append(events, Event{
				Type:    EventProtectPrompt,
				Player:  target.Seat,
				Text:    fmt.Sprintf("%s is under attack and may use their ward.", target.Name),
				Data:    &ProtectPending{Attacker: seat, Target: target.Seat},
				Private: true,
			})
			return events, nil
		}
		// AI targets resolve the choice synchronously: the ward is consumed.
		return append(events, g.consumeWard(target)...), nil
	}

	return append(events, g.resolveHit(attacker, target)...), nil
}

func (g *Game) applyRespondProtect(useProtect bool) ([]Event, error) {
	pending := g.PendingProtect
	g.PendingProtect = nil
	g.Phase = PhasePlaying

	attacker := g.Players[pending.Attacker]
	target := g.Players[pending.Target]

	if useProtect {
		return g.consumeWard(target), nil
	}
	return g.resolveHit(attacker, target), nil
}

// consumeWard removes one protective secret from the target and recycles
// its card; the suspended attack deals no damage.
func (g *Game) consumeWard(target *Player) []Event {
	ward, ok := g.Secrets.TakeProtect(target.Seat)
	if !ok {
		return nil
	}
	g.Supply.Discard(ward.Card)
	return []Event{{
		Type:   EventWardConsumed,
		Player: target.Seat,
		Text:   fmt.Sprintf("A secret ward shields %s from the blow.", target.Name),
	}}
}

// resolveHit applies attack damage, first-hit immunity and the armed
// counterattack, eliminating whoever drops to 0 hp.
func (g *Game) resolveHit(attacker, target *Player) []Event {
	var events []Event

	if target.Revealed && target.Role.ID == RoleRedDevil && !target.FirstHitUsed {
		target.FirstHitUsed = true
		events = append(events, Event{
			Type:   EventImmunity,
			Player: target.Seat,
			Text:   fmt.Sprintf("%s shrugs off the first hit of the round.", target.Name),
		})
	} else {
		damage := attacker.Attack - target.Defense
		if damage < 0 {
			damage = 0
		}
		target.HP -= damage
		events = append(events, Event{
			Type:   EventDamage,
			Player: target.Seat,
			Text:   fmt.Sprintf("%s takes %d damage (hp %d).", target.Name, damage, max0(target.HP)),
			Data:   map[string]interface{}{"damage": damage, "hp": max0(target.HP)},
		})
		if target.HP <= 0 {
			events = append(events, g.killPlayer(target)...)
		}
	}

	if target.Alive && target.CounterArmed {
		target.CounterArmed = false
		damage := target.Attack - attacker.Defense
		if damage < 0 {
			damage = 0
		}
		attacker.HP -= damage
		events = append(events, Event{
			Type:   EventCounter,
			Player: target.Seat,
			Text:   fmt.Sprintf("%s counterattacks %s for %d damage.", target.Name, attacker.Name, damage),
		})
		if attacker.HP <= 0 {
			events = append(events, g.killPlayer(attacker)...)
		}
	}

	return events
}

func (g *Game) applyPlayCard(seat int, a Action) ([]Event, error) {
	p := g.Players[seat]
	if p.UsedAction {
		return nil, fmt.Errorf("already used an action this turn")
	}
	var card Card
	found := false
	for _, c := range p.Hand {
		if c.ID == a.CardID {
			card, found = c, true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("card %q not in hand", a.CardID)
	}
	effect, err := g.Effects.Get(card.Effect)
	if err != nil {
		return nil, err
	}

	// The cost is deducted here and refunded on failure so a rejected
	// effect is cost-neutral; the resolver never touches it.
	if card.Type == CardAction {
		if p.Stamina < card.Cost {
			return nil, ErrNotEnoughStamina
		}
		p.Stamina -= card.Cost
	}

	events, err := effect.Apply(g, seat, card)
	if err != nil {
		if card.Type == CardAction {
			p.Stamina += card.Cost
		}
		return nil, err
	}

	if played, ok := g.Supply.PlayCard(p, card.ID); ok && played.Type == CardItem {
		p.Equipped = append(p.Equipped, played)
	}
	p.UsedAction = true

	if card.Type != CardHidden {
		events = append([]Event{{
			Type:   EventCardPlayed,
			Player: seat,
			Text:   fmt.Sprintf("%s plays %s.", p.Name, card.Name),
			Data:   map[string]interface{}{"card": card.ID},
		}}, events...)
	}
	return events, nil
}

func (g *Game) applyActivateSecret(seat int) ([]Event, error) {
	p := g.Players[seat]
	target, err := g.LivingTarget(seat)
	if err != nil {
		return nil, err
	}
	if p.Stamina < g.Config.ActivateCost {
		return nil, ErrNotEnoughStamina
	}
	secret, ok := g.Secrets.FindLethal(seat, target.Seat)
	if !ok {
		return nil, fmt.Errorf("no lethal secret placed on %s", target.Name)
	}
	if !secret.Eligible(g.Round) {
		return nil, fmt.Errorf("a secret cannot fire in the round it was placed")
	}

	p.Stamina -= g.Config.ActivateCost
	g.Secrets.Remove(secret)
	g.Supply.Discard(secret.Card)

	events := []Event{{
		Type:   EventSecretFired,
		Player: seat,
		Text:   fmt.Sprintf("%s springs a hidden strike on %s!", p.Name, target.Name),
		Data:   map[string]interface{}{"target": target.Seat},
	}}

	// A standing ward absorbs the strike entirely: both secrets are spent.
	if ward, ok := g.Secrets.TakeProtect(target.Seat); ok {
		g.Supply.Discard(ward.Card)
		events = append(events, Event{
			Type:   EventWardConsumed,
			Player: target.Seat,
			Text:   fmt.Sprintf("A secret ward absorbs the strike — %s survives.", target.Name),
		})
		return events, nil
	}

	target.HP = 0
	events = append(events, g.killPlayer(target)...)
	return events, nil
}

func (g *Game) applyDrawCard(seat int) ([]Event, error) {
	p := g.Players[seat]
	if p.CardsDrawn >= g.Config.MaxDrawsPerTurn {
		return nil, fmt.Errorf("already drew %d cards this turn", p.CardsDrawn)
	}
	if len(p.Hand) >= g.Config.MaxHandSize {
		return nil, fmt.Errorf("hand is full")
	}

	p.CardsDrawn++
	got, fired := g.Supply.DealTo(p, g.Config.MaxHandSize, func(c Card) []Event {
		return g.ResolveEventCard(p, c)
	})
	if !got && len(fired) == 0 {
		return []Event{{
			Type:   EventCardDrawn,
			Player: seat,
			Text:   "The supply is exhausted — no card to draw.",
		}}, nil
	}

	events := []Event{{
		Type:   EventCardDrawn,
		Player: seat,
		Text:   fmt.Sprintf("%s draws a card.", p.Name),
	}}
	return append(events, fired...), nil
}

// ResolveEventCard fires a drawn Event card immediately. The card never
// enters a hand; the supply discards it after this returns.
func (g *Game) ResolveEventCard(drawer *Player, c Card) []Event {
	events := []Event{{
		Type:   EventCardRevealed,
		Player: drawer.Seat,
		Text:   fmt.Sprintf("%s draws an event — %s!", drawer.Name, c.Name),
		Data:   map[string]interface{}{"card": c.ID},
	}}
	effect, err := g.Effects.Get(c.Effect)
	if err != nil {
		return events
	}
	fired, err := effect.Apply(g, drawer.Seat, c)
	if err != nil {
		return events
	}
	return append(events, fired...)
}

func (g *Game) applyRevealRole(seat int) ([]Event, error) {
	p := g.Players[seat]
	if p.Revealed {
		// Idempotent: a second reveal is a no-op.
		return nil, nil
	}
	return g.revealRole(p), nil
}

// revealRole flips the public flag and applies on-reveal consequences.
// Used by both the voluntary intent and forced reveal on elimination.
func (g *Game) revealRole(p *Player) []Event {
	p.Revealed = true
	events := []Event{{
		Type:   EventRoleRevealed,
		Player: p.Seat,
		Text:   fmt.Sprintf("%s reveals their role: %s (%s).", p.Name, p.Role.Name, p.Role.Faction),
		Data:   map[string]interface{}{"role": p.Role.ID},
	}}

	if p.Role.ID == RoleHealer {
		if emp := g.PlayerWithRole(RoleEmperor); emp != nil && emp.Alive {
			emp.Heal(1)
			events = append(events, Event{
				Type:   EventEffect,
				Player: emp.Seat,
				Text:   fmt.Sprintf("The Healer's devotion restores 1 hp to %s.", emp.Name),
			})
		}
	}
	return events
}

func (g *Game) applyEndTurn(seat int) ([]Event, error) {
	p := g.Players[seat]
	p.ResetTurnFlags()
	g.Selected = -1

	events := []Event{{
		Type:   EventTurnEnd,
		Player: seat,
		Text:   fmt.Sprintf("%s ends their turn.", p.Name),
	}}

	g.TurnsTaken++
	if g.TurnsTaken >= len(g.AlivePlayers()) {
		events = append(events, g.endRound()...)
	} else {
		g.advanceToNextAlive()
	}

	if g.Phase == PhasePlaying {
		events = append(events, g.turnStartEvent())
	}
	return events, nil
}

// closeDeadTurn ends the turn of a current seat that was eliminated
// mid-action, counting it toward the round like a normal end turn.
func (g *Game) closeDeadTurn() []Event {
	g.Players[g.Current].ResetTurnFlags()
	g.Selected = -1

	var events []Event
	g.TurnsTaken++
	if g.TurnsTaken >= len(g.AlivePlayers()) {
		events = append(events, g.endRound()...)
	} else {
		g.advanceToNextAlive()
	}

	if g.Phase == PhasePlaying {
		events = append(events, g.turnStartEvent())
	}
	return events
}

// AlivePlayers returns the living players in seat order.
func (g *Game) AlivePlayers() []*Player {
	var out []*Player
	for _, p := range g.Players {
		if p.Alive {
			out = append(out, p)
		}
	}
	return out
}

// PlayerWithRole returns the player holding the role, or nil.
func (g *Game) PlayerWithRole(id RoleID) *Player {
	for _, p := range g.Players {
		if p.Role.ID == id {
			return p
		}
	}
	return nil
}

// EmperorShielded reports the standing rule: the Emperor cannot be the
// target of an ordinary attack while the Guard lives. Distinct from the
// protective secret, and independent of the Guard being revealed.
func (g *Game) EmperorShielded() bool {
	guard := g.PlayerWithRole(RoleGuard)
	return guard != nil && guard.Alive
}

// SelectedTarget returns the currently selected player, or nil.
func (g *Game) SelectedTarget() *Player {
	if g.Selected < 0 || g.Selected >= len(g.Players) {
		return nil
	}
	return g.Players[g.Selected]
}

// LivingTarget validates the transient selection for effects
// and combat that need a live non-self target.
func (g *Game) LivingTarget(seat int) (*Player, error) {
	t := g.SelectedTarget()
	if t == nil {
		return nil, ErrNoTarget
	}
	if t.Seat == seat {
		return nil, ErrInvalidTarget
	}
	if !t.Alive {
		return nil, ErrInvalidTarget
	}
	return t, nil
}

func (g *Game) turnStartEvent() Event {
	p := g.Players[g.Current]
	return Event{
		Type:   EventTurnStart,
		Player: p.Seat,
		Text:   fmt.Sprintf("Round %d — %s's turn.", g.Round, p.Name),
		Data:   map[string]interface{}{"round": g.Round, "seat": p.Seat},
	}
}

func (g *Game) advanceToNextAlive() {
	for i := 1; i <= len(g.Players); i++ {
		next := (g.Current + i) % len(g.Players)
		if g.Players[next].Alive {
			g.Current = next
			return
		}
	}
}

func max0(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
