package effects

import "emperor/internal/engine"

// All returns one resolver for every effect tag in the base catalog.
func All() []engine.Effect {
	return []engine.Effect{
		Armor{}, Weapon{}, Potion{},
		Beg{}, Revive{}, Flee{}, Steal{}, Heal{}, Poison{},
		SwapStats{}, Exorcism{}, Fortune{}, Counter{}, Curse{},
		StealWeapon{}, StealArmor{}, RepelInvasion{},
		Drought{}, Invasion{}, ShareRice{}, Goddess{},
		Strike{}, Ward{},
	}
}

// NewRegistry builds a registry with every base effect registered.
func NewRegistry() *engine.EffectRegistry {
	reg := engine.NewEffectRegistry()
	for _, e := range All() {
		reg.Register(e)
	}
	return reg
}
