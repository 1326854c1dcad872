package engine

// PlayerView is what one player can see of another. Hidden information
// (role, hand contents, status counters) only appears on the viewer's
// own entry or once public.
type PlayerView struct {
	Seat     int    `json:"seat"`
	Name     string `json:"name"`
	IsHuman  bool   `json:"isHuman"`
	Alive    bool   `json:"alive"`
	Revealed bool   `json:"revealed"`

	HP      int `json:"hp"`
	Stamina int `json:"stamina"`
	Attack  int `json:"attack"`
	Defense int `json:"defense"`

	// Role is set only for the viewer's own seat and for revealed or
	// eliminated players.
	Role *Role `json:"role,omitempty"`

	HandSize int    `json:"handSize"`
	Hand     []Card `json:"hand,omitempty"`
	Equipped []Card `json:"equipped"`

	// SecretsOn counts the face-down cards placed on this player. The
	// count is public knowledge; the kind is not.
	SecretsOn int `json:"secretsOn"`

	PoisonRounds int  `json:"poisonRounds,omitempty"`
	CounterArmed bool `json:"counterArmed,omitempty"`
}

// SecretView describes a secret the viewer themselves placed.
type SecretView struct {
	Target      int        `json:"target"`
	Kind        SecretKind `json:"kind"`
	PlacedRound int        `json:"placedRound"`
	Card        Card       `json:"card"`
}

// GameView is a snapshot of the match tailored to one viewer.
type GameView struct {
	Phase      GamePhase    `json:"phase"`
	PhaseName  string       `json:"phaseName"`
	Round      int          `json:"round"`
	Current    int          `json:"current"`
	Selected   int          `json:"selected"`
	You        int          `json:"you"`
	Players    []PlayerView `json:"players"`
	DrawPile   int          `json:"drawPile"`
	Discard    int          `json:"discardPile"`
	Winner     string       `json:"winner,omitempty"`
	Secrets    []SecretView `json:"secrets,omitempty"`
	Peeked     []Card       `json:"peeked,omitempty"`
	PendingYou bool         `json:"pendingYou,omitempty"`
}

// ViewFor builds the snapshot visible to the given seat. A negative
// seat yields the spectator view, which sees nothing hidden.
func (g *Game) ViewFor(seat int) GameView {
	view := GameView{
		Phase:     g.Phase,
		PhaseName: g.Phase.String(),
		Round:     g.Round,
		Current:   g.Current,
		Selected:  g.Selected,
		You:       seat,
		Winner:    g.Winner,
	}
	if g.Supply != nil {
		view.DrawPile = g.Supply.DrawLen()
		view.Discard = g.Supply.DiscardLen()
	}

	for _, p := range g.Players {
		pv := PlayerView{
			Seat:      p.Seat,
			Name:      p.Name,
			IsHuman:   p.IsHuman,
			Alive:     p.Alive,
			Revealed:  p.Revealed,
			HP:        max0(p.HP),
			Stamina:   p.Stamina,
			Attack:    p.Attack,
			Defense:   p.Defense,
			HandSize:  len(p.Hand),
			Equipped:  append([]Card(nil), p.Equipped...),
			SecretsOn: g.Secrets.CountOn(p.Seat),
		}
		if p.Seat == seat || p.Revealed || !p.Alive {
			role := p.Role
			pv.Role = &role
		}
		if p.Seat == seat {
			pv.Hand = append([]Card(nil), p.Hand...)
			pv.PoisonRounds = p.PoisonRounds
			pv.CounterArmed = p.CounterArmed
		}
		view.Players = append(view.Players, pv)
	}

	if seat >= 0 && seat < len(g.Players) {
		for _, s := range g.Secrets.OwnedBy(seat) {
			view.Secrets = append(view.Secrets, SecretView{
				Target:      s.Target,
				Kind:        s.Kind,
				PlacedRound: s.PlacedRound,
				Card:        s.Card,
			})
		}
		view.Peeked = append([]Card(nil), g.Players[seat].Peeked...)
		view.PendingYou = g.PendingProtect != nil && g.PendingProtect.Target == seat
	}

	return view
}

// PublicView is the spectator snapshot.
func (g *Game) PublicView() GameView {
	return g.ViewFor(-1)
}
