package effects

import (
	"fmt"

	"emperor/internal/engine"
)

// Strike: place a lethal secret face-down on the target. It may be
// activated from the next round on to eliminate them.
type Strike struct{}

func (Strike) Tag() engine.EffectTag { return engine.HiddenStrike }
func (Strike) NeedsTarget() bool     { return true }

func (Strike) Apply(g *engine.Game, seat int, card engine.Card) ([]engine.Event, error) {
	return placeSecret(g, seat, card, engine.SecretLethal)
}

// Ward: place a protective secret face-down on the target. It absorbs
// the next strike or attack against them.
type Ward struct{}

func (Ward) Tag() engine.EffectTag { return engine.HiddenWard }
func (Ward) NeedsTarget() bool     { return true }

func (Ward) Apply(g *engine.Game, seat int, card engine.Card) ([]engine.Event, error) {
	return placeSecret(g, seat, card, engine.SecretProtective)
}

// placeSecret validates the target and books the face-down card. Only
// the count of secrets on a player is public; the kind stays hidden.
func placeSecret(g *engine.Game, seat int, card engine.Card, kind engine.SecretKind) ([]engine.Event, error) {
	t, err := g.LivingTarget(seat)
	if err != nil {
		return nil, err
	}
	if g.Secrets.Has(seat, t.Seat) {
		return nil, fmt.Errorf("a face-down card is already placed on %s", t.Name)
	}
	g.Secrets.Place(&engine.SecretAction{
		Owner:       seat,
		Target:      t.Seat,
		PlacedRound: g.Round,
		Kind:        kind,
		Card:        card,
	})
	return []engine.Event{{
		Type:   engine.EventSecretPlaced,
		Player: seat,
		Text:   fmt.Sprintf("%s places a face-down card on %s.", g.Players[seat].Name, t.Name),
		Data:   map[string]interface{}{"target": t.Seat},
	}}, nil
}
