package blackjack

import (
	"fmt"
	"io"
	"math/rand"
	"strconv"

	"github.com/google/uuid"
	"github.com/sanity-io/litter"

	"github.com/lazharichir/blackjack/cards"
	"github.com/lazharichir/blackjack/events"
)

const (
	// DefaultPacks is the number of packs in the canonical shoe.
	DefaultPacks = 6
	// initialDeal is the number of cards each participant starts with.
	initialDeal = 2
)

// Outcome is the result of one round.
type Outcome struct {
	PlayerScore int
	DealerScore int
}

// Winner returns the winning seat, or "draw" on equal scores. Two busted
// hands compare equal and are a draw.
func (o Outcome) Winner() string {
	switch {
	case o.PlayerScore > o.DealerScore:
		return events.SeatPlayer
	case o.DealerScore > o.PlayerScore:
		return events.SeatDealer
	default:
		return "draw"
	}
}

// String returns the outcome line, e.g. "Player wins with Blackjack!".
func (o Outcome) String() string {
	switch o.Winner() {
	case events.SeatPlayer:
		return fmt.Sprintf("Player wins with %s!", scoreLabel(o.PlayerScore))
	case events.SeatDealer:
		return fmt.Sprintf("Dealer wins with %s!", scoreLabel(o.DealerScore))
	default:
		return "Draw!"
	}
}

func scoreLabel(score int) string {
	if score == ScoreBlackjack {
		return "Blackjack"
	}
	return strconv.Itoa(score)
}

// Game plays rounds of blackjack between one player and the house
// dealer. Out receives the transcript; Store, when set, receives every
// emitted event; Debug dumps each event as it is emitted.
type Game struct {
	Packs  int // 0 means DefaultPacks
	Rng    *rand.Rand
	Out    io.Writer
	Player Strategy
	Dealer Strategy
	Store  events.EventStore
	Debug  bool

	handlers []events.EventHandler
}

// AddEventHandler registers a handler called for every emitted event.
func (g *Game) AddEventHandler(handler events.EventHandler) {
	g.handlers = append(g.handlers, handler)
}

func (g *Game) emit(ev events.Event) {
	if g.Debug {
		litter.D(ev)
	}
	if g.Store != nil {
		if err := g.Store.Append(ev); err != nil {
			fmt.Fprintf(g.Out, "event not recorded: %v\n", err)
		}
	}
	for _, handler := range g.handlers {
		handler(ev)
	}
}

// PlayRound generates a fresh shoe, shuffles it, and plays one round.
func (g *Game) PlayRound() (Outcome, error) {
	packs := g.Packs
	if packs == 0 {
		packs = DefaultPacks
	}

	deck, err := cards.NewShoe(packs)
	if err != nil {
		return Outcome{}, fmt.Errorf("generate shoe: %w", err)
	}
	if err := deck.Shuffle(g.Rng); err != nil {
		return Outcome{}, fmt.Errorf("shuffle shoe: %w", err)
	}

	return g.PlayDeck(deck)
}

// PlayDeck plays one round from an already prepared deck: two cards each,
// dealt alternately dealer first, then the player's turn followed by the
// dealer's, then the score comparison. Both hands are released when the
// round ends, on every path.
func (g *Game) PlayDeck(deck *cards.Deck) (Outcome, error) {
	if deck == nil {
		return Outcome{}, cards.ErrNilDeck
	}
	if g.Player == nil || g.Dealer == nil {
		return Outcome{}, fmt.Errorf("blackjack: both strategies must be set")
	}

	roundID := uuid.NewString()
	dealerHand := cards.NewHand()
	playerHand := cards.NewHand()
	defer dealerHand.Release()
	defer playerHand.Release()

	size, err := deck.Size()
	if err != nil {
		return Outcome{}, err
	}
	g.emit(events.RoundStarted{RoundID: roundID, DeckSize: size})

	for i := 0; i < initialDeal; i++ {
		if err := g.dealTo(roundID, deck, dealerHand, events.SeatDealer); err != nil {
			return Outcome{}, err
		}
		if err := g.dealTo(roundID, deck, playerHand, events.SeatPlayer); err != nil {
			return Outcome{}, err
		}
	}

	playerScore, err := g.Player.Play(&Turn{
		RoundID: roundID,
		Deck:    deck,
		Hand:    playerHand,
		Emit:    g.emit,
	})
	if err != nil {
		return Outcome{}, fmt.Errorf("player turn: %w", err)
	}

	dealerScore, err := g.Dealer.Play(&Turn{
		RoundID: roundID,
		Deck:    deck,
		Hand:    dealerHand,
		Emit:    g.emit,
	})
	if err != nil {
		return Outcome{}, fmt.Errorf("dealer turn: %w", err)
	}

	outcome := Outcome{PlayerScore: playerScore, DealerScore: dealerScore}
	g.emit(events.RoundEnded{
		RoundID:     roundID,
		PlayerScore: playerScore,
		DealerScore: dealerScore,
		Result:      outcome.String(),
	})

	if _, err := fmt.Fprintln(g.Out, outcome.String()); err != nil {
		return outcome, err
	}
	return outcome, nil
}

func (g *Game) dealTo(roundID string, deck *cards.Deck, hand *cards.Hand, seat string) error {
	if err := deck.Deal(hand); err != nil {
		return fmt.Errorf("deal to %s: %w", seat, err)
	}
	g.emit(events.CardDealt{RoundID: roundID, Seat: seat, Card: hand.Cards()[0]})
	return nil
}
