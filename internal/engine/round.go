package engine

import "fmt"

// endRound closes the round: stamina regen, poison ticks, per-round
// immunity resets, and the turn resumes at the first living seat.
func (g *Game) endRound() []Event {
	g.Round++
	g.TurnsTaken = 0

	events := []Event{{
		Type: EventRoundEnd,
		Text: fmt.Sprintf("Round %d begins.", g.Round),
		Data: map[string]interface{}{"round": g.Round},
	}}

	for _, p := range g.Players {
		if p.Alive {
			p.GainStamina(1)
		}
	}

	// Poison ticks after regen so a poisoned player still sees the
	// stamina point even on the round they die.
	for _, p := range g.Players {
		if p.Alive && p.PoisonRounds > 0 {
			p.PoisonRounds--
			p.HP--
			events = append(events, Event{
				Type:   EventPoison,
				Player: p.Seat,
				Text:   fmt.Sprintf("Poison saps %s for 1 hp.", p.Name),
			})
			if p.HP <= 0 {
				events = append(events, g.killPlayer(p)...)
			}
		}
	}

	for _, p := range g.Players {
		p.FirstHitUsed = false
		p.FleeActive = false
	}

	if g.Phase != PhasePlaying {
		return events
	}
	for i, p := range g.Players {
		if p.Alive {
			g.Current = i
			break
		}
	}
	return events
}

// killPlayer eliminates a player: forced reveal, secret cleanup from
// both sides of the book, role consequences, then win evaluation.
func (g *Game) killPlayer(p *Player) []Event {
	if !p.Alive {
		return nil
	}
	p.HP = 0
	p.Alive = false

	events := []Event{{
		Type:   EventEliminated,
		Player: p.Seat,
		Text:   fmt.Sprintf("%s has been eliminated!", p.Name),
	}}

	// Everything the dead player held goes back to the supply: hand,
	// equipment, and secrets placed by or on them. A revival starts
	// from a clean slate.
	g.Supply.DiscardAll(p.Hand)
	g.Supply.DiscardAll(p.Equipped)
	p.Hand = nil
	p.Equipped = nil
	p.Attack = p.Role.Attack
	p.Defense = p.Role.Defense
	p.MaxStamina = p.Role.Stamina
	p.PoisonRounds = 0
	p.StaminaLocked = false
	p.CounterArmed = false
	for _, s := range g.Secrets.RemoveAllFor(p.Seat) {
		g.Supply.Discard(s.Card)
	}

	if !p.Revealed {
		events = append(events, g.revealRole(p)...)
	}

	if p.Role.ID == RoleAssassin {
		events = append(events, g.assassinDeathPenalty()...)
	}

	return append(events, g.evaluateWin()...)
}

// assassinDeathPenalty wounds the Emperor when the Assassin dies unless
// a revealed Guard spends its one-time intervention.
func (g *Game) assassinDeathPenalty() []Event {
	emp := g.PlayerWithRole(RoleEmperor)
	if emp == nil || !emp.Alive {
		return nil
	}
	for _, p := range g.Players {
		if p.Alive && p.Revealed && p.Role.ID == RoleGuard && !p.GuardUsed {
			p.GuardUsed = true
			return []Event{{
				Type:   EventEffect,
				Player: p.Seat,
				Text:   fmt.Sprintf("%s intercepts the Assassin's dying strike.", p.Name),
			}}
		}
	}
	emp.HP--
	events := []Event{{
		Type:   EventDamage,
		Player: emp.Seat,
		Text:   fmt.Sprintf("The Assassin's dying strike wounds %s for 1 hp.", emp.Name),
	}}
	if emp.HP <= 0 {
		events = append(events, g.killPlayer(emp)...)
	}
	return events
}
