package effects

import (
	"fmt"

	"emperor/internal/engine"
)

// Armor: equip, defense +1.
type Armor struct{}

func (Armor) Tag() engine.EffectTag { return engine.ItemArmor }
func (Armor) NeedsTarget() bool     { return false }

func (Armor) Apply(g *engine.Game, seat int, card engine.Card) ([]engine.Event, error) {
	p := g.Players[seat]
	p.Defense++
	return []engine.Event{{
		Type:   engine.EventEffect,
		Player: seat,
		Text:   fmt.Sprintf("%s straps on armor (defense %d).", p.Name, p.Defense),
	}}, nil
}

// Weapon: equip, attack +1.
type Weapon struct{}

func (Weapon) Tag() engine.EffectTag { return engine.ItemWeapon }
func (Weapon) NeedsTarget() bool     { return false }

func (Weapon) Apply(g *engine.Game, seat int, card engine.Card) ([]engine.Event, error) {
	p := g.Players[seat]
	p.Attack++
	return []engine.Event{{
		Type:   engine.EventEffect,
		Player: seat,
		Text:   fmt.Sprintf("%s takes up a weapon (attack %d).", p.Name, p.Attack),
	}}, nil
}

// Potion: equip, max stamina +1.
type Potion struct{}

func (Potion) Tag() engine.EffectTag { return engine.ItemPotion }
func (Potion) NeedsTarget() bool     { return false }

func (Potion) Apply(g *engine.Game, seat int, card engine.Card) ([]engine.Event, error) {
	p := g.Players[seat]
	p.MaxStamina++
	return []engine.Event{{
		Type:   engine.EventEffect,
		Player: seat,
		Text:   fmt.Sprintf("%s keeps a tonic at hand (max stamina %d).", p.Name, p.MaxStamina),
	}}, nil
}
