package cli

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lazharichir/blackjack/config"
	"github.com/lazharichir/blackjack/events"
)

func testConfig() *config.Config {
	return &config.Config{Packs: 1, DealerDelay: 0, Port: config.DefaultPort}
}

func TestSessionSingleRound(t *testing.T) {
	// Stick immediately, then decline the replay prompt.
	in := strings.NewReader("s\nn\n")
	var out bytes.Buffer

	session := NewSession(testConfig(), in, &out, rand.New(rand.NewSource(3)), nil)
	require.NoError(t, session.Run())

	require.Contains(t, out.String(), "Your hand:")
	require.Contains(t, out.String(), "Play again y/n? ")
}

func TestSessionReplay(t *testing.T) {
	in := strings.NewReader("s\ny\ns\nn\n")
	var out bytes.Buffer

	store := events.NewInMemoryEventStore()
	session := NewSession(testConfig(), in, &out, rand.New(rand.NewSource(3)), store)
	require.NoError(t, session.Run())

	require.Equal(t, 2, strings.Count(out.String(), "Play again y/n? "))

	rounds := 0
	for _, ev := range store.GetEvents() {
		if ev.Name() == "ROUND_ENDED" {
			rounds++
		}
	}
	require.Equal(t, 2, rounds)
}

func TestSessionEndsOnEOF(t *testing.T) {
	// Input ends right after the round: the replay prompt sees EOF and
	// the session exits cleanly.
	in := strings.NewReader("s\n")
	var out bytes.Buffer

	session := NewSession(testConfig(), in, &out, rand.New(rand.NewSource(3)), nil)
	require.NoError(t, session.Run())
}
