package engine

import "math/rand/v2"

// Supply owns the shared draw pile and discard pile. Card copies only
// ever move between the piles, hands, equipment and the secret book;
// none are created or destroyed mid-match.
type Supply struct {
	draw    []Card
	discard []Card
}

// NewSupply expands the catalog into its copy counts and shuffles.
func NewSupply(catalog []Card) *Supply {
	s := &Supply{}
	for _, c := range catalog {
		for i := 0; i < c.Copies; i++ {
			s.draw = append(s.draw, c)
		}
	}
	s.Shuffle()
	return s
}

func (s *Supply) Shuffle() {
	rand.Shuffle(len(s.draw), func(i, j int) {
		s.draw[i], s.draw[j] = s.draw[j], s.draw[i]
	})
}

// DrawOne pops the front of the draw pile, reshuffling the discard in
// first if the pile is empty. Exhaustion is reported as ok=false, never
// an error: it is a legitimate in-turn outcome.
func (s *Supply) DrawOne() (Card, bool) {
	if len(s.draw) == 0 {
		if len(s.discard) == 0 {
			return Card{}, false
		}
		s.reshuffleDiscard()
	}
	c := s.draw[0]
	s.draw = s.draw[1:]
	return c, true
}

// PeekTop returns a read-only copy of the first n draw-pile entries.
func (s *Supply) PeekTop(n int) []Card {
	if n > len(s.draw) {
		n = len(s.draw)
	}
	out := make([]Card, n)
	copy(out, s.draw[:n])
	return out
}

func (s *Supply) Discard(c Card) {
	s.discard = append(s.discard, c)
}

func (s *Supply) DiscardAll(cards []Card) {
	s.discard = append(s.discard, cards...)
}

// DealTo draws until a non-Event card enters the player's hand. Event
// cards never enter a hand: each one is resolved on the spot through
// resolveEvent and discarded, and drawing continues. The retry budget
// equals the cards remaining so an all-Event supply cannot loop.
// Returns true iff a card entered the hand or an Event fired.
func (s *Supply) DealTo(p *Player, maxHand int, resolveEvent func(Card) []Event) (bool, []Event) {
	if len(p.Hand) >= maxHand {
		return false, nil
	}
	var events []Event
	fired := false
	for tries := s.Remaining(); tries > 0; tries-- {
		c, ok := s.DrawOne()
		if !ok {
			break
		}
		if c.Type == CardEvent {
			events = append(events, resolveEvent(c)...)
			s.Discard(c)
			fired = true
			if len(p.Hand) >= maxHand {
				break
			}
			continue
		}
		p.Hand = append(p.Hand, c)
		return true, events
	}
	return fired, events
}

// DealStartingHand deals n non-Event cards directly into the hand. Any
// Event drawn during setup is silently discarded without resolving —
// a deliberate asymmetry from normal play.
func (s *Supply) DealStartingHand(p *Player, n, maxHand int) {
	for dealt := 0; dealt < n && len(p.Hand) < maxHand; {
		c, ok := s.DrawOne()
		if !ok {
			return
		}
		if c.Type == CardEvent {
			s.Discard(c)
			continue
		}
		p.Hand = append(p.Hand, c)
		dealt++
	}
}

// PlayCard removes the card from the player's hand and routes it to the
// discard pile, unless it is an Item (kept in equipment) or a Hidden
// card (held by the secret book until consumed).
func (s *Supply) PlayCard(p *Player, cardID string) (Card, bool) {
	c, ok := p.RemoveFromHand(cardID)
	if !ok {
		return Card{}, false
	}
	if c.Type != CardItem && c.Type != CardHidden {
		s.Discard(c)
	}
	return c, true
}

// Remaining counts the cards still cycling through the two piles.
func (s *Supply) Remaining() int {
	return len(s.draw) + len(s.discard)
}

func (s *Supply) DrawLen() int    { return len(s.draw) }
func (s *Supply) DiscardLen() int { return len(s.discard) }

func (s *Supply) reshuffleDiscard() {
	s.draw = append(s.draw, s.discard...)
	s.discard = nil
	s.Shuffle()
}
