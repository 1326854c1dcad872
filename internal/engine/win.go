package engine

import "fmt"

// CheckWin re-evaluates the victory conditions. Effect resolvers that
// change who counts as alive call this after mutating.
func (g *Game) CheckWin() []Event {
	return g.evaluateWin()
}

// evaluateWin checks the victory conditions in strict priority order
// and closes the match on the first that holds. Emits the single
// EventGameOver; a re-entrant call after the match closed is a no-op.
func (g *Game) evaluateWin() []Event {
	if g.Phase == PhaseGameOver {
		return nil
	}

	alive := g.AlivePlayers()
	emperorAlive := false
	rebelAlive := false
	devilAlive := false
	farmerAlive := false
	for _, p := range alive {
		switch {
		case p.Role.ID == RoleEmperor:
			emperorAlive = true
		case p.Role.Faction == FactionRebel:
			rebelAlive = true
		case p.Role.ID == RoleRedDevil:
			devilAlive = true
		case p.Role.ID == RoleFarmer:
			farmerAlive = true
		}
	}

	var winner string
	switch {
	case !emperorAlive:
		winner = "The Emperor has fallen. The Rebel faction wins!"
	case devilAlive && len(alive) <= 2:
		winner = "Only the Red Devil remains standing in the ruins. The Red Devil wins alone!"
	case !rebelAlive:
		if farmerAlive {
			winner = "The rebellion is crushed. The Emperor's faction wins, and the Farmer shares the victory!"
		} else {
			winner = "The rebellion is crushed. The Emperor's faction wins!"
		}
	case len(alive) == 1:
		winner = fmt.Sprintf("%s is the last one standing!", alive[0].Name)
	case len(alive) == 0:
		winner = "No one survives. The match is a draw."
	default:
		return nil
	}

	g.Phase = PhaseGameOver
	g.Winner = winner
	return []Event{{
		Type: EventGameOver,
		Text: winner,
		Data: map[string]interface{}{"winner": winner, "round": g.Round},
	}}
}
