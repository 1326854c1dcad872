package bot

import "emperor/internal/engine"

// Agent plays one seat with a threat-driven heuristic, issuing the same
// intents through Game.Apply that a human player would. It is
// resumable: if the turn suspends on another player's protect prompt,
// the per-turn flags make a second TakeTurn call after the prompt
// resolves pick up where it left off.
type Agent struct {
	Seat int
}

func New(seat int) *Agent { return &Agent{Seat: seat} }

// TakeTurn plays out the agent's turn and returns everything that
// happened. Rejected intents are simply skipped; the engine is the
// rule authority, not the agent.
func (a *Agent) TakeTurn(g *engine.Game) []engine.Event {
	var events []engine.Event
	apply := func(act engine.Action) error {
		ev, err := g.Apply(a.Seat, act)
		events = append(events, ev...)
		return err
	}
	active := func() bool {
		return g.Phase == engine.PhasePlaying && g.Current == a.Seat
	}

	if !active() {
		return nil
	}
	me := g.Players[a.Seat]

	// Spring eligible lethal secrets before anything else.
	placed := append([]*engine.SecretAction(nil), g.Secrets.OwnedBy(a.Seat)...)
	for _, s := range placed {
		if !active() {
			return events
		}
		if s.Kind != engine.SecretLethal || !s.Eligible(g.Round) {
			continue
		}
		if me.Stamina < g.Config.ActivateCost {
			break
		}
		apply(engine.Action{Type: engine.ActionSelectTarget, Target: s.Target})
		apply(engine.Action{Type: engine.ActionActivateSecret})
	}
	if !active() {
		return events
	}

	a.playCard(g, apply, active)
	if !active() {
		return events
	}

	// Fill the hand.
	for me.CardsDrawn < g.Config.MaxDrawsPerTurn && len(me.Hand) < g.Config.MaxHandSize {
		if err := apply(engine.Action{Type: engine.ActionDrawCard}); err != nil {
			break
		}
		if !active() {
			return events
		}
	}

	// Attack the biggest threat.
	if !me.Attacked && me.Stamina >= g.Config.AttackCost {
		for _, t := range a.rankTargets(g, true) {
			apply(engine.Action{Type: engine.ActionSelectTarget, Target: t.Seat})
			err := apply(engine.Action{Type: engine.ActionAttack})
			if g.Phase == engine.PhaseProtectPrompt {
				// Suspended on the target's ward decision.
				return events
			}
			if err == nil || !active() {
				break
			}
		}
	}
	if !active() {
		return events
	}

	if !me.Revealed && a.shouldReveal(g) {
		apply(engine.Action{Type: engine.ActionRevealRole})
	}
	if !active() {
		return events
	}

	apply(engine.Action{Type: engine.ActionEndTurn})
	return events
}

// playCard spends the turn's action slot on the best candidate. The
// preference order: lethal secret on a high threat, self-heal below
// half hp, equip an item, poison the top threat, steal from the richest
// hand, then whatever else the hand offers.
func (a *Agent) playCard(g *engine.Game, apply func(engine.Action) error, active func() bool) {
	me := g.Players[a.Seat]
	for _, cand := range a.cardPicks(g) {
		if me.UsedAction || !active() {
			return
		}
		if cand.target >= 0 {
			apply(engine.Action{Type: engine.ActionSelectTarget, Target: cand.target})
		}
		apply(engine.Action{Type: engine.ActionPlayCard, CardID: cand.card.ID})
	}
}

// pick is one play candidate; a negative target means no selection.
type pick struct {
	card   engine.Card
	target int
}

func (a *Agent) cardPicks(g *engine.Game) []pick {
	me := g.Players[a.Seat]
	var picks []pick
	preferred := map[engine.EffectTag]bool{}

	if c, ok := me.FindInHand(engine.HiddenStrike); ok {
		preferred[c.Effect] = true
		for _, t := range a.rankTargets(g, false) {
			if !g.Secrets.Has(a.Seat, t.Seat) {
				picks = append(picks, pick{c, t.Seat})
				break
			}
		}
	}
	if c, ok := me.FindInHand(engine.ActionHeal); ok {
		preferred[c.Effect] = true
		if me.Stamina >= c.Cost && me.HP*2 < me.BaseHP {
			picks = append(picks, pick{c, -1})
		}
	}
	for _, c := range me.Hand {
		if c.Type == engine.CardItem {
			picks = append(picks, pick{c, -1})
			break
		}
	}
	if c, ok := me.FindInHand(engine.ActionPoison); ok {
		preferred[c.Effect] = true
		if t := a.topTarget(g); t != nil && me.Stamina >= c.Cost && t.PoisonRounds == 0 {
			picks = append(picks, pick{c, t.Seat})
		}
	}
	if c, ok := me.FindInHand(engine.ActionSteal); ok {
		preferred[c.Effect] = true
		if me.Stamina >= c.Cost {
			var richest *engine.Player
			for _, t := range a.rankTargets(g, false) {
				if len(t.Hand) > 0 && (richest == nil || len(t.Hand) > len(richest.Hand)) {
					richest = t
				}
			}
			if richest != nil {
				picks = append(picks, pick{c, richest.Seat})
			}
		}
	}

	for _, c := range me.Hand {
		if c.Type == engine.CardItem || preferred[c.Effect] {
			continue
		}
		if target, play := a.considerCard(g, c); play {
			picks = append(picks, pick{c, target})
		}
	}
	return picks
}

// considerCard decides whether a fallback card is worth the slot right
// now and against whom. A negative target means no selection is needed.
func (a *Agent) considerCard(g *engine.Game, c engine.Card) (int, bool) {
	me := g.Players[a.Seat]

	if c.Type == engine.CardHidden && c.Effect == engine.HiddenWard {
		// Ward the weakest known friend.
		var ward *engine.Player
		for _, t := range g.AlivePlayers() {
			if t.Seat == a.Seat || !t.Revealed || !allied(me.Role, t.Role) {
				continue
			}
			if g.Secrets.Has(a.Seat, t.Seat) {
				continue
			}
			if ward == nil || t.HP < ward.HP {
				ward = t
			}
		}
		if ward != nil {
			return ward.Seat, true
		}
		return -1, false
	}
	if c.Type != engine.CardAction || me.Stamina < c.Cost {
		return -1, false
	}

	switch c.Effect {
	case engine.ActionCounter:
		return -1, !me.CounterArmed
	case engine.ActionFortune:
		return -1, len(me.Peeked) == 0
	case engine.ActionBeg:
		return -1, len(me.Hand) < g.Config.MaxHandSize
	case engine.ActionRepelInvasion:
		return -1, true
	case engine.ActionExorcism:
		return -1, me.StaminaLocked
	case engine.ActionCurse:
		if t := a.topTarget(g); t != nil && !t.StaminaLocked {
			return t.Seat, true
		}
	case engine.ActionSwapStats:
		if t := a.topTarget(g); t != nil && t.Attack > t.Defense {
			return t.Seat, true
		}
	case engine.ActionStealWeapon:
		for _, t := range a.rankTargets(g, false) {
			if _, ok := findEquipped(t, engine.ItemWeapon); ok {
				return t.Seat, true
			}
		}
	case engine.ActionStealArmor:
		for _, t := range a.rankTargets(g, false) {
			if _, ok := findEquipped(t, engine.ItemArmor); ok {
				return t.Seat, true
			}
		}
	case engine.ActionRevive:
		for _, t := range g.Players {
			if !t.Alive && allied(me.Role, t.Role) {
				return t.Seat, true
			}
		}
	}
	// Flee and anything unmatched is held for later.
	return -1, false
}

// shouldReveal is deliberately conservative; revealing gives the table
// information it can never take back.
func (a *Agent) shouldReveal(g *engine.Game) bool {
	me := g.Players[a.Seat]
	switch me.Role.ID {
	case engine.RoleRedDevil:
		// The first-hit immunity only works revealed.
		return g.Round > 2
	case engine.RoleHealer:
		emp := g.PlayerWithRole(engine.RoleEmperor)
		return emp != nil && emp.Alive && emp.Revealed && emp.HP < emp.BaseHP
	case engine.RoleGuard:
		// Only a revealed Guard can intercept the Assassin's dying strike.
		for _, p := range g.AlivePlayers() {
			if p.Revealed && p.Role.ID == engine.RoleAssassin && p.HP <= 2 {
				return true
			}
		}
	}
	return false
}

func findEquipped(p *engine.Player, tag engine.EffectTag) (engine.Card, bool) {
	for _, c := range p.Equipped {
		if c.Effect == tag {
			return c, true
		}
	}
	return engine.Card{}, false
}
