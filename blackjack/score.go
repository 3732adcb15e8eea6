package blackjack

import (
	"fmt"

	"github.com/lazharichir/blackjack/cards"
)

const (
	// ScoreBust marks a busted hand. It compares below every live score.
	ScoreBust = 0
	// ScoreBlackjack marks a natural: a two-card 21. It compares above
	// every 21 reached with more cards.
	ScoreBlackjack = 22

	blackjackTotal = 21
	dealerStandsAt = 17
	softAceGap     = 10
)

// CardValue returns the blackjack value of a card: 11 for an ace, 10 for
// face cards, and face value for the rest.
func CardValue(c cards.Card) (int, error) {
	switch c.Rank {
	case cards.Ace:
		return 11, nil
	case cards.Jack, cards.Queen, cards.King:
		return 10, nil
	case cards.Two, cards.Three, cards.Four, cards.Five, cards.Six,
		cards.Seven, cards.Eight, cards.Nine, cards.Ten:
		return int(c.Rank), nil
	default:
		return 0, fmt.Errorf("%w: %d", cards.ErrBadRank, c.Rank)
	}
}

// Score totals a hand under blackjack rules. Aces count 11 and are
// downgraded to 1 one at a time, card by card as the hand is scanned,
// whenever the running total goes over 21. If no downgrade can save the
// total, the hand is busted and scoring stops with ScoreBust. A hand of
// exactly two cards totalling 21 is a natural and scores ScoreBlackjack.
// An empty hand scores 0 without being a natural.
func Score(h *cards.Hand) (int, error) {
	if h == nil {
		return 0, cards.ErrNilHand
	}

	total, aces, count := 0, 0, 0
	for _, c := range h.Cards() {
		value, err := CardValue(c)
		if err != nil {
			return 0, err
		}
		total += value
		count++
		if c.Rank == cards.Ace {
			aces++
		}
		for total > blackjackTotal && aces > 0 {
			total -= softAceGap
			aces--
		}
		if total > blackjackTotal {
			return ScoreBust, nil
		}
	}

	if count == 2 && total == blackjackTotal {
		return ScoreBlackjack, nil
	}
	return total, nil
}
