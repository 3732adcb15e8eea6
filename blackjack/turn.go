package blackjack

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/lazharichir/blackjack/cards"
	"github.com/lazharichir/blackjack/events"
)

// Turn carries the state one participant plays against: the shoe, the
// participant's hand, and the round's event sink.
type Turn struct {
	RoundID string
	Deck    *cards.Deck
	Hand    *cards.Hand
	Emit    events.EventHandler // may be nil
}

func (t *Turn) emit(ev events.Event) {
	if t.Emit != nil {
		t.Emit(ev)
	}
}

// Strategy plays out one participant's turn and returns the final score:
// ScoreBust for a bust, ScoreBlackjack for a natural, the plain total
// otherwise.
type Strategy interface {
	Play(t *Turn) (int, error)
}

// DealerStrategy is the fixed house policy: hit while the hand scores
// below 17, stop on 17 or better, a natural, or a bust.
type DealerStrategy struct {
	Out   io.Writer
	Delay time.Duration // pacing between actions, 0 disables
}

// Play runs the dealer's turn, writing the transcript to Out.
func (s *DealerStrategy) Play(t *Turn) (int, error) {
	score, err := Score(t.Hand)
	if err != nil {
		return 0, err
	}

	if _, err := fmt.Fprintln(s.Out, "Dealer's hand:"); err != nil {
		return 0, err
	}
	if err := t.Hand.Render(s.Out); err != nil {
		return 0, err
	}

	for score != ScoreBust && score < dealerStandsAt {
		s.pause()
		if _, err := fmt.Fprintln(s.Out, "Dealer hits."); err != nil {
			return 0, err
		}
		if err := t.Deck.Deal(t.Hand); err != nil {
			return 0, fmt.Errorf("dealer hit: %w", err)
		}
		t.emit(events.PlayerHit{RoundID: t.RoundID, Seat: events.SeatDealer})
		t.emit(events.CardDealt{RoundID: t.RoundID, Seat: events.SeatDealer, Card: t.Hand.Cards()[0]})
		if err := t.Hand.Render(s.Out); err != nil {
			return 0, err
		}
		score, err = Score(t.Hand)
		if err != nil {
			return 0, err
		}
	}

	s.pause()
	if score == ScoreBust {
		t.emit(events.ParticipantBusted{RoundID: t.RoundID, Seat: events.SeatDealer})
		if _, err := fmt.Fprintln(s.Out, "Dealer busts!"); err != nil {
			return 0, err
		}
	} else {
		t.emit(events.PlayerStood{RoundID: t.RoundID, Seat: events.SeatDealer, Score: score})
		if _, err := fmt.Fprintf(s.Out, "Dealer sticks on %s.\n", scoreLabel(score)); err != nil {
			return 0, err
		}
	}
	return score, nil
}

func (s *DealerStrategy) pause() {
	if s.Delay > 0 {
		time.Sleep(s.Delay)
	}
}

// PlayerStrategy is the interactive policy: show the hand, then accept
// "h" to hit or "s" to stick until the player sticks or busts. Anything
// else reprompts without consuming the turn.
type PlayerStrategy struct {
	In  TokenReader
	Out io.Writer
}

// TokenReader supplies newline-terminated input lines. *bufio.Reader
// satisfies it.
type TokenReader interface {
	ReadString(delim byte) (string, error)
}

// Play runs the player's turn, writing the transcript to Out.
func (s *PlayerStrategy) Play(t *Turn) (int, error) {
	score, err := Score(t.Hand)
	if err != nil {
		return 0, err
	}

	for score != ScoreBust {
		if _, err := fmt.Fprintln(s.Out, "Your hand:"); err != nil {
			return 0, err
		}
		if err := t.Hand.Render(s.Out); err != nil {
			return 0, err
		}

		hit, err := s.readChoice()
		if err != nil {
			return 0, err
		}
		if !hit {
			t.emit(events.PlayerStood{RoundID: t.RoundID, Seat: events.SeatPlayer, Score: score})
			if _, err := fmt.Fprintf(s.Out, "You stick on %s.\n", scoreLabel(score)); err != nil {
				return 0, err
			}
			return score, nil
		}

		if err := t.Deck.Deal(t.Hand); err != nil {
			return 0, fmt.Errorf("player hit: %w", err)
		}
		t.emit(events.PlayerHit{RoundID: t.RoundID, Seat: events.SeatPlayer})
		t.emit(events.CardDealt{RoundID: t.RoundID, Seat: events.SeatPlayer, Card: t.Hand.Cards()[0]})
		score, err = Score(t.Hand)
		if err != nil {
			return 0, err
		}
	}

	t.emit(events.ParticipantBusted{RoundID: t.RoundID, Seat: events.SeatPlayer})
	if _, err := fmt.Fprintln(s.Out, "You bust!"); err != nil {
		return 0, err
	}
	return ScoreBust, nil
}

func (s *PlayerStrategy) readChoice() (bool, error) {
	for {
		if _, err := fmt.Fprint(s.Out, "Hit or stick h/s? "); err != nil {
			return false, err
		}
		line, err := s.In.ReadString('\n')
		if err != nil {
			return false, fmt.Errorf("read player choice: %w", err)
		}
		switch strings.TrimSpace(line) {
		case "h":
			return true, nil
		case "s":
			return false, nil
		}
		if _, err := fmt.Fprintln(s.Out, `Please answer "h" or "s".`); err != nil {
			return false, err
		}
	}
}
