package cards

import "io"

// handRenderWidth limits cards per line when rendering hands.
const handRenderWidth = 7

// Hand is an ordered, growable collection of cards held by one
// participant for the duration of a round. Newly dealt cards go to the
// front, so the most recent card is first.
type Hand struct {
	cards []Card
}

// NewHand creates an empty hand.
func NewHand() *Hand {
	return &Hand{}
}

// Add inserts a card at the front of the hand.
func (h *Hand) Add(c Card) {
	h.cards = append([]Card{c}, h.cards...)
}

// Cards returns a copy of the hand's cards, most recent first.
func (h *Hand) Cards() []Card {
	if h == nil {
		return nil
	}
	out := make([]Card, len(h.cards))
	copy(out, h.cards)
	return out
}

// Len returns the number of cards in the hand.
func (h *Hand) Len() int {
	if h == nil {
		return 0
	}
	return len(h.cards)
}

// Render writes the hand's cards to w, up to 7 per line.
func (h *Hand) Render(w io.Writer) error {
	if h == nil {
		return ErrNilHand
	}
	return renderCards(w, h.cards, handRenderWidth)
}

// Release empties the hand. Safe to call on a nil or empty hand.
func (h *Hand) Release() {
	if h == nil {
		return
	}
	h.cards = nil
}
