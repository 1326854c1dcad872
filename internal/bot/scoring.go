package bot

import "emperor/internal/engine"

// rolePrior rates a revealed role as seen from the agent's faction.
// Unrevealed players are scored on visible condition instead; the
// agent never reads hidden roles.
func rolePrior(me engine.Faction, role engine.Role) int {
	switch me {
	case engine.FactionRebel:
		switch role.ID {
		case engine.RoleEmperor:
			return 100
		case engine.RoleGuard:
			return 70
		case engine.RoleHealer:
			return 60
		case engine.RoleQueen:
			return 50
		case engine.RoleRedDevil:
			return 40
		}
		if role.Faction == engine.FactionRebel {
			return 0
		}
		return 15
	case engine.FactionEmperor:
		switch role.ID {
		case engine.RoleAssassin:
			return 100
		case engine.RoleRebel:
			return 80
		case engine.RoleRedDevil:
			return 50
		}
		if role.Faction == engine.FactionEmperor {
			return 0
		}
		return 10
	case engine.FactionThird:
		// Everyone stands between the Red Devil and the ruins.
		return 50
	default:
		switch role.Faction {
		case engine.FactionRebel:
			return 60
		case engine.FactionEmperor:
			return 40
		}
		return 20
	}
}

// ThreatScore rates how urgently the agent wants the player gone.
// Revealed roles use faction priors; unrevealed players look more
// dangerous the healthier they are. Weak and easily-wounded targets
// get finishing bonuses on top.
func (a *Agent) ThreatScore(g *engine.Game, t *engine.Player) int {
	if !t.Alive || t.Seat == a.Seat {
		return -1
	}
	me := g.Players[a.Seat]
	hp := clamp10(t.HP)

	score := 0
	if t.Revealed {
		score += rolePrior(me.Role.Faction, t.Role)
	} else {
		score += (10 - hp) * 5
	}
	score += (10 - hp) * 3
	net := me.Attack - t.Defense
	if net < 0 {
		net = 0
	}
	score += net * 4
	return score
}

// rankTargets returns living opponents in descending threat order.
// Revealed players on the agent's own side are never candidates; for
// attacks a shielded Emperor is skipped too. Ties keep seat order.
func (a *Agent) rankTargets(g *engine.Game, forAttack bool) []*engine.Player {
	me := g.Players[a.Seat]
	var out []*engine.Player
	for _, t := range g.AlivePlayers() {
		if t.Seat == a.Seat {
			continue
		}
		if t.Revealed && allied(me.Role, t.Role) {
			continue
		}
		if forAttack && t.Revealed && t.Role.ID == engine.RoleEmperor && g.EmperorShielded() {
			continue
		}
		out = append(out, t)
	}
	// Insertion sort, strict greater-than so earlier seats win ties.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && a.ThreatScore(g, out[j]) > a.ThreatScore(g, out[j-1]); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

// topTarget returns the biggest threat, or nil.
func (a *Agent) topTarget(g *engine.Game) *engine.Player {
	ranked := a.rankTargets(g, false)
	if len(ranked) == 0 {
		return nil
	}
	return ranked[0]
}

// allied reports whether two revealed roles are on the same side. The
// Farmer counts as part of the Emperor's side since they share its win.
func allied(a, b engine.Role) bool {
	if a.Faction == b.Faction {
		return true
	}
	if a.ID == engine.RoleFarmer && b.Faction == engine.FactionEmperor {
		return true
	}
	if b.ID == engine.RoleFarmer && a.Faction == engine.FactionEmperor {
		return true
	}
	return false
}

func clamp10(n int) int {
	if n < 0 {
		return 0
	}
	if n > 10 {
		return 10
	}
	return n
}
