package cards

import (
	"fmt"
	"io"
	"math/rand"
)

// PackSize is the number of cards in one standard pack.
const PackSize = 52

// deckRenderWidth limits cards per line when rendering decks.
const deckRenderWidth = 13

var suitOrder = []Suit{Spades, Diamonds, Clubs, Hearts}

var rankOrder = []Rank{
	Ace, Two, Three, Four, Five, Six, Seven,
	Eight, Nine, Ten, Jack, Queen, King,
}

// Deck holds a fixed buffer of cards bracketed by two cursors: head is
// the next card to deal, tail the last dealable card. The deck is empty
// once head passes tail. The buffer is owned by the deck and only
// mutated through Shuffle and Deal.
type Deck struct {
	cards []Card
	head  int
	tail  int
}

// NewShoe builds a shoe of the given number of standard 52-card packs,
// each in USPCC new deck order: Spades, Diamonds, Clubs, Hearts, with
// Ace through King within each suit.
func NewShoe(packs int) (*Deck, error) {
	if packs < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadPackCount, packs)
	}

	buf := make([]Card, 0, PackSize*packs)
	for i := 0; i < packs; i++ {
		for _, suit := range suitOrder {
			for _, rank := range rankOrder {
				buf = append(buf, Card{Rank: rank, Suit: suit})
			}
		}
	}

	return &Deck{cards: buf, head: 0, tail: len(buf) - 1}, nil
}

// NewStackedDeck builds a deck that deals the given cards front to back,
// with no shuffling. Useful for replays and tests.
func NewStackedDeck(cs ...Card) *Deck {
	buf := make([]Card, len(cs))
	copy(buf, cs)
	return &Deck{cards: buf, head: 0, tail: len(buf) - 1}
}

// Size returns the number of cards still dealable.
func (d *Deck) Size() (int, error) {
	if d == nil || d.cards == nil {
		return 0, ErrNilDeck
	}
	if d.head > d.tail {
		return 0, nil
	}
	return d.tail - d.head + 1, nil
}

// Shuffle permutes the dealable range [head, tail] in place using
// Fisher-Yates. The random index is drawn modulo i+1 — the absolute
// position, not the size of the dealable range — so reshuffling a
// partially dealt deck can pull cards from below head. The game only
// ever shuffles a fresh shoe, where head is 0 and the draw is uniform.
func (d *Deck) Shuffle(rng *rand.Rand) error {
	if d == nil || d.cards == nil {
		return ErrNilDeck
	}
	if rng == nil {
		return fmt.Errorf("cards: nil random source")
	}
	for i := d.tail; i > d.head; i-- {
		j := rng.Intn(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
	return nil
}

// Deal moves the card at the front of the deck into the hand. The card
// becomes the new first card of the hand.
func (d *Deck) Deal(h *Hand) error {
	if d == nil || d.cards == nil {
		return ErrNilDeck
	}
	if h == nil {
		return ErrNilHand
	}
	if d.head > d.tail {
		return ErrEmptyDeck
	}
	card := d.cards[d.head]
	d.head++
	h.Add(card)
	return nil
}

// Render writes the dealable cards to w, up to 13 per line.
func (d *Deck) Render(w io.Writer) error {
	if d == nil || d.cards == nil {
		return ErrNilDeck
	}
	return renderCards(w, d.cards[d.head:d.tail+1], deckRenderWidth)
}

func renderCards(w io.Writer, cs []Card, perLine int) error {
	for i, c := range cs {
		if i > 0 && i%perLine == 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "%s ", c); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}
