package cards

import (
	"fmt"
	"unicode/utf8"
)

// Rank represents a card rank, Ace through King. The ordinal runs 1 to 13.
type Rank int

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// Suit represents a card suit, in new-deck order.
type Suit int

const (
	Spades Suit = iota
	Diamonds
	Clubs
	Hearts
)

var rankLabels = map[Rank]string{
	Ace:   "A",
	Two:   "2",
	Three: "3",
	Four:  "4",
	Five:  "5",
	Six:   "6",
	Seven: "7",
	Eight: "8",
	Nine:  "9",
	Ten:   "10",
	Jack:  "J",
	Queen: "Q",
	King:  "K",
}

var suitLabels = map[Suit]string{
	Spades:   "S",
	Diamonds: "D",
	Clubs:    "C",
	Hearts:   "H",
}

// Card represents a playing card. Cards are plain values: two cards are
// equal iff both rank and suit match.
type Card struct {
	Rank Rank
	Suit Suit
}

// Label returns the short form of the card, like "AS" or "10H".
func (c Card) Label() (string, error) {
	rank, ok := rankLabels[c.Rank]
	if !ok {
		return "", fmt.Errorf("%w: %d", ErrBadRank, c.Rank)
	}
	suit, ok := suitLabels[c.Suit]
	if !ok {
		return "", fmt.Errorf("%w: %d", ErrBadSuit, c.Suit)
	}
	return rank + suit, nil
}

// String returns the short form of the card. Out-of-range cards render
// as "??".
func (c Card) String() string {
	label, err := c.Label()
	if err != nil {
		return "??"
	}
	return label
}

// Equals checks if two cards are equal.
func (c Card) Equals(other Card) bool {
	return c == other
}

// ParseCard creates a card from its short form.
// e.g., "10♠" or "10s" or "10S" -> Card{Rank: Ten, Suit: Spades}
func ParseCard(s string) (Card, error) {
	if utf8.RuneCountInString(s) < 2 {
		return Card{}, fmt.Errorf("invalid card shorthand: %q", s)
	}

	last, size := utf8.DecodeLastRuneInString(s)

	var suit Suit
	switch last {
	case '♠', 's', 'S':
		suit = Spades
	case '♥', 'h', 'H':
		suit = Hearts
	case '♦', 'd', 'D':
		suit = Diamonds
	case '♣', 'c', 'C':
		suit = Clubs
	default:
		return Card{}, fmt.Errorf("%w: %q", ErrBadSuit, string(last))
	}

	var rank Rank
	switch s[:len(s)-size] {
	case "A":
		rank = Ace
	case "K":
		rank = King
	case "Q":
		rank = Queen
	case "J":
		rank = Jack
	case "10":
		rank = Ten
	case "9":
		rank = Nine
	case "8":
		rank = Eight
	case "7":
		rank = Seven
	case "6":
		rank = Six
	case "5":
		rank = Five
	case "4":
		rank = Four
	case "3":
		rank = Three
	case "2":
		rank = Two
	default:
		return Card{}, fmt.Errorf("%w: %q", ErrBadRank, s[:len(s)-size])
	}

	return Card{Rank: rank, Suit: suit}, nil
}
