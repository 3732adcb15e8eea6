package events

import "github.com/lazharichir/blackjack/cards"

// Seats identify the two participants in a round.
const (
	SeatPlayer = "player"
	SeatDealer = "dealer"
)

// RoundStarted marks the beginning of a round, after the shoe has been
// generated and shuffled.
type RoundStarted struct {
	RoundID  string
	DeckSize int
}

func (e RoundStarted) Name() string { return "ROUND_STARTED" }

// CardDealt records one card moving from the shoe into a hand.
type CardDealt struct {
	RoundID string
	Seat    string
	Card    cards.Card
}

func (e CardDealt) Name() string { return "CARD_DEALT" }

// PlayerHit records a hit decision during a turn.
type PlayerHit struct {
	RoundID string
	Seat    string
}

func (e PlayerHit) Name() string { return "PLAYER_HIT" }

// PlayerStood records a stick decision, with the score stood on.
type PlayerStood struct {
	RoundID string
	Seat    string
	Score   int
}

func (e PlayerStood) Name() string { return "PLAYER_STOOD" }

// ParticipantBusted records a hand going over 21 with no soft aces left.
type ParticipantBusted struct {
	RoundID string
	Seat    string
}

func (e ParticipantBusted) Name() string { return "PARTICIPANT_BUSTED" }

// RoundEnded carries the final scores and the outcome line.
type RoundEnded struct {
	RoundID     string
	PlayerScore int
	DealerScore int
	Result      string
}

func (e RoundEnded) Name() string { return "ROUND_ENDED" }
