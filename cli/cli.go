// Package cli runs the interactive terminal game: rounds of blackjack
// with a play-again prompt between them.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strings"

	"github.com/lazharichir/blackjack/blackjack"
	"github.com/lazharichir/blackjack/config"
	"github.com/lazharichir/blackjack/events"
)

// Session couples a reader and writer with the game settings. One
// session plays rounds until the player declines to continue.
type Session struct {
	cfg      *config.Config
	in       *bufio.Reader
	out      io.Writer
	rng      *rand.Rand
	store    events.EventStore
	handlers []events.EventHandler
}

// NewSession creates a terminal session. The store may be nil.
func NewSession(cfg *config.Config, in io.Reader, out io.Writer, rng *rand.Rand, store events.EventStore) *Session {
	return &Session{
		cfg:   cfg,
		in:    bufio.NewReader(in),
		out:   out,
		rng:   rng,
		store: store,
	}
}

// AddEventHandler registers a handler called for every game event the
// session emits.
func (s *Session) AddEventHandler(handler events.EventHandler) {
	s.handlers = append(s.handlers, handler)
}

// Run plays rounds until the player answers anything but "y" at the
// replay prompt, or input ends.
func (s *Session) Run() error {
	game := &blackjack.Game{
		Packs:  s.cfg.Packs,
		Rng:    s.rng,
		Out:    s.out,
		Player: &blackjack.PlayerStrategy{In: s.in, Out: s.out},
		Dealer: &blackjack.DealerStrategy{Out: s.out, Delay: s.cfg.DealerDelay},
		Store:  s.store,
		Debug:  s.cfg.Debug,
	}
	for _, handler := range s.handlers {
		game.AddEventHandler(handler)
	}

	for {
		if _, err := game.PlayRound(); err != nil {
			return err
		}

		if _, err := fmt.Fprint(s.out, "Play again y/n? "); err != nil {
			return err
		}
		line, err := s.in.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if _, err := fmt.Fprintln(s.out); err != nil {
			return err
		}
		if strings.TrimSpace(line) != "y" {
			return nil
		}
	}
}
