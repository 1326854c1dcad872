package engine

// SecretKind distinguishes the two face-down card effects.
type SecretKind int

const (
	SecretLethal     SecretKind = 1
	SecretProtective SecretKind = 2
)

var secretKindNames = map[SecretKind]string{
	SecretLethal:     "Lethal",
	SecretProtective: "Protective",
}

func (k SecretKind) String() string {
	if s, ok := secretKindNames[k]; ok {
		return s
	}
	return "Unknown"
}

// SecretAction is a placed-but-unresolved face-down effect. It may only
// be activated once the round counter has moved past the round it was
// placed in.
type SecretAction struct {
	Owner       int        `json:"owner"`
	Target      int        `json:"target"`
	PlacedRound int        `json:"placed_round"`
	Kind        SecretKind `json:"kind"`
	Card        Card       `json:"-"` // the physical card, returned to discard on removal
}

// Eligible reports whether the secret can be triggered in the given round.
func (s *SecretAction) Eligible(currentRound int) bool {
	return currentRound > s.PlacedRound
}

// SecretBook is the single owned collection of all placed secrets,
// indexed from both sides so elimination cleanup cannot leave a
// dangling half of the relation.
type SecretBook struct {
	byOwner  map[int][]*SecretAction
	byTarget map[int][]*SecretAction
}

func NewSecretBook() *SecretBook {
	return &SecretBook{
		byOwner:  make(map[int][]*SecretAction),
		byTarget: make(map[int][]*SecretAction),
	}
}

// Place records a new secret.
func (b *SecretBook) Place(s *SecretAction) {
	b.byOwner[s.Owner] = append(b.byOwner[s.Owner], s)
	b.byTarget[s.Target] = append(b.byTarget[s.Target], s)
}

// Remove unlinks a secret from both indexes.
func (b *SecretBook) Remove(s *SecretAction) {
	b.byOwner[s.Owner] = drop(b.byOwner[s.Owner], s)
	b.byTarget[s.Target] = drop(b.byTarget[s.Target], s)
}

// OwnedBy returns the secrets the given seat has placed on others.
func (b *SecretBook) OwnedBy(seat int) []*SecretAction {
	return b.byOwner[seat]
}

// Targeting returns the secrets placed on the given seat.
func (b *SecretBook) Targeting(seat int) []*SecretAction {
	return b.byTarget[seat]
}

// IsProtected reports whether at least one protective secret targets
// the seat.
func (b *SecretBook) IsProtected(seat int) bool {
	for _, s := range b.byTarget[seat] {
		if s.Kind == SecretProtective {
			return true
		}
	}
	return false
}

// TakeProtect removes and returns one protective secret targeting the
// seat, if any.
func (b *SecretBook) TakeProtect(seat int) (*SecretAction, bool) {
	for _, s := range b.byTarget[seat] {
		if s.Kind == SecretProtective {
			b.Remove(s)
			return s, true
		}
	}
	return nil, false
}

// FindLethal returns the owner's lethal secret on the target, if placed.
func (b *SecretBook) FindLethal(owner, target int) (*SecretAction, bool) {
	for _, s := range b.byOwner[owner] {
		if s.Target == target && s.Kind == SecretLethal {
			return s, true
		}
	}
	return nil, false
}

// Has reports whether owner already has any secret placed on target.
func (b *SecretBook) Has(owner, target int) bool {
	for _, s := range b.byOwner[owner] {
		if s.Target == target {
			return true
		}
	}
	return false
}

// RemoveAllFor unlinks every secret the seat owns or is targeted by and
// returns them, so their cards can be recycled.
func (b *SecretBook) RemoveAllFor(seat int) []*SecretAction {
	var removed []*SecretAction
	for _, s := range append([]*SecretAction(nil), b.byOwner[seat]...) {
		b.Remove(s)
		removed = append(removed, s)
	}
	for _, s := range append([]*SecretAction(nil), b.byTarget[seat]...) {
		b.Remove(s)
		removed = append(removed, s)
	}
	return removed
}

// Count returns the total number of placed secrets.
func (b *SecretBook) Count() int {
	n := 0
	for _, list := range b.byOwner {
		n += len(list)
	}
	return n
}

// CountOn returns how many secrets target the seat.
func (b *SecretBook) CountOn(seat int) int {
	return len(b.byTarget[seat])
}

func drop(list []*SecretAction, s *SecretAction) []*SecretAction {
	for i, x := range list {
		if x == s {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}
