package cards

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewShoe(t *testing.T) {
	for _, packs := range []int{1, 2, 6} {
		deck, err := NewShoe(packs)
		require.NoError(t, err)

		size, err := deck.Size()
		require.NoError(t, err)
		require.Equal(t, PackSize*packs, size)

		// Each distinct card appears exactly once per pack.
		counts := make(map[Card]int)
		for _, c := range deck.cards {
			counts[c]++
		}
		require.Len(t, counts, PackSize)
		for card, n := range counts {
			require.Equal(t, packs, n, "count for %s", card)
		}
	}
}

func TestNewShoeOrder(t *testing.T) {
	deck, err := NewShoe(1)
	require.NoError(t, err)

	require.Equal(t, Card{Rank: Ace, Suit: Spades}, deck.cards[0])
	require.Equal(t, Card{Rank: King, Suit: Spades}, deck.cards[12])
	require.Equal(t, Card{Rank: Ace, Suit: Diamonds}, deck.cards[13])
	require.Equal(t, Card{Rank: King, Suit: Hearts}, deck.cards[51])
}

func TestNewShoeBadPackCount(t *testing.T) {
	for _, packs := range []int{0, -1} {
		_, err := NewShoe(packs)
		require.ErrorIs(t, err, ErrBadPackCount)
	}
}

func TestShuffleIsPermutation(t *testing.T) {
	deck, err := NewShoe(2)
	require.NoError(t, err)

	before := make(map[Card]int)
	for _, c := range deck.cards {
		before[c]++
	}

	require.NoError(t, deck.Shuffle(rand.New(rand.NewSource(1))))

	after := make(map[Card]int)
	for _, c := range deck.cards {
		after[c]++
	}
	require.Equal(t, before, after)
}

func TestShuffleDeterministicForSeed(t *testing.T) {
	first, err := NewShoe(1)
	require.NoError(t, err)
	second, err := NewShoe(1)
	require.NoError(t, err)

	require.NoError(t, first.Shuffle(rand.New(rand.NewSource(42))))
	require.NoError(t, second.Shuffle(rand.New(rand.NewSource(42))))
	require.Equal(t, first.cards, second.cards)

	// A different seed should almost surely give a different order.
	third, err := NewShoe(1)
	require.NoError(t, err)
	require.NoError(t, third.Shuffle(rand.New(rand.NewSource(43))))
	require.NotEqual(t, first.cards, third.cards)
}

func TestShuffleNilDeck(t *testing.T) {
	var deck *Deck
	require.ErrorIs(t, deck.Shuffle(rand.New(rand.NewSource(1))), ErrNilDeck)
}

func TestDeal(t *testing.T) {
	deck, err := NewShoe(1)
	require.NoError(t, err)
	hand := NewHand()

	top := deck.cards[0]
	require.NoError(t, deck.Deal(hand))

	size, err := deck.Size()
	require.NoError(t, err)
	require.Equal(t, PackSize-1, size)
	require.Equal(t, 1, hand.Len())
	require.Equal(t, top, hand.Cards()[0])
}

func TestDealDrainsDeck(t *testing.T) {
	deck, err := NewShoe(1)
	require.NoError(t, err)
	hand := NewHand()

	for i := 0; i < PackSize; i++ {
		require.NoError(t, deck.Deal(hand))
	}

	size, err := deck.Size()
	require.NoError(t, err)
	require.Equal(t, 0, size)
	require.Equal(t, PackSize, hand.Len())

	require.ErrorIs(t, deck.Deal(hand), ErrEmptyDeck)
}

func TestDealNilArguments(t *testing.T) {
	var nilDeck *Deck
	require.ErrorIs(t, nilDeck.Deal(NewHand()), ErrNilDeck)

	deck, err := NewShoe(1)
	require.NoError(t, err)
	require.ErrorIs(t, deck.Deal(nil), ErrNilHand)
}

func TestSizeNilDeck(t *testing.T) {
	var deck *Deck
	_, err := deck.Size()
	require.ErrorIs(t, err, ErrNilDeck)
}

func TestDeckRender(t *testing.T) {
	cs := make([]Card, 0, 15)
	for i := 0; i < 15; i++ {
		cs = append(cs, Card{Rank: rankOrder[i%13], Suit: Spades})
	}
	deck := NewStackedDeck(cs...)

	var buf bytes.Buffer
	require.NoError(t, deck.Render(&buf))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	require.Equal(t, 13, len(strings.Fields(lines[0])))
	require.Equal(t, 2, len(strings.Fields(lines[1])))
	require.Equal(t, "AS", strings.Fields(lines[0])[0])
}

func TestDeckRenderAfterDealing(t *testing.T) {
	deck := NewStackedDeck(
		Card{Rank: Ace, Suit: Spades},
		Card{Rank: King, Suit: Hearts},
	)
	require.NoError(t, deck.Deal(NewHand()))

	var buf bytes.Buffer
	require.NoError(t, deck.Render(&buf))
	require.Equal(t, "KH \n", buf.String())
}
