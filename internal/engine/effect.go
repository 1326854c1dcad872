package engine

import "fmt"

// Effect resolves one card effect tag against the current game state.
// The orchestrator handles all stamina bookkeeping: an Action card's
// cost is deducted before Apply and refunded if Apply returns an error,
// so an implementation never touches the cost. An error means nothing
// was mutated.
type Effect interface {
	Tag() EffectTag
	// NeedsTarget reports whether the effect requires a selected target.
	NeedsTarget() bool
	// Apply executes the effect for the acting seat. Returns events and error.
	Apply(g *Game, seat int, card Card) ([]Event, error)
}

// EffectRegistry maps effect tags to their resolvers.
type EffectRegistry struct {
	effects map[EffectTag]Effect
}

func NewEffectRegistry() *EffectRegistry {
	return &EffectRegistry{effects: make(map[EffectTag]Effect)}
}

func (r *EffectRegistry) Register(e Effect) {
	r.effects[e.Tag()] = e
}

func (r *EffectRegistry) Get(tag EffectTag) (Effect, error) {
	e, ok := r.effects[tag]
	if !ok {
		return nil, fmt.Errorf("no effect registered for tag %q", tag)
	}
	return e, nil
}
