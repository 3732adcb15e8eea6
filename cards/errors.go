package cards

import "errors"

var (
	// ErrNilDeck is returned when an operation receives a nil or
	// uninitialized deck.
	ErrNilDeck = errors.New("cards: nil deck")
	// ErrNilHand is returned when an operation receives a nil hand.
	ErrNilHand = errors.New("cards: nil hand")
	// ErrEmptyDeck is returned when dealing from a drained deck.
	ErrEmptyDeck = errors.New("cards: no cards left to deal")
	// ErrBadRank is returned for a rank outside Ace..King.
	ErrBadRank = errors.New("cards: invalid rank")
	// ErrBadSuit is returned for a suit outside the four suits.
	ErrBadSuit = errors.New("cards: invalid suit")
	// ErrBadPackCount is returned when generating a shoe with fewer than
	// one pack.
	ErrBadPackCount = errors.New("cards: pack count must be at least 1")
)
