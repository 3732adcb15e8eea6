package blackjack

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lazharichir/blackjack/cards"
)

func cardOf(t *testing.T, label string) cards.Card {
	t.Helper()
	c, err := cards.ParseCard(label)
	require.NoError(t, err)
	return c
}

func handOf(t *testing.T, labels ...string) *cards.Hand {
	t.Helper()
	h := cards.NewHand()
	for _, label := range labels {
		h.Add(cardOf(t, label))
	}
	return h
}

func TestCardValue(t *testing.T) {
	tests := []struct {
		label string
		want  int
	}{
		{"AS", 11},
		{"2D", 2},
		{"9C", 9},
		{"10H", 10},
		{"JS", 10},
		{"QD", 10},
		{"KC", 10},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, err := CardValue(cardOf(t, tt.label))
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}

	_, err := CardValue(cards.Card{Rank: cards.Rank(0)})
	require.ErrorIs(t, err, cards.ErrBadRank)
}

func TestScore(t *testing.T) {
	tests := []struct {
		name string
		hand []string
		want int
	}{
		{"natural", []string{"AS", "KD"}, ScoreBlackjack},
		{"two aces", []string{"AS", "AD"}, 12},
		{"bust", []string{"10S", "9D", "5C"}, ScoreBust},
		{"empty hand", nil, 0},
		{"three aces and an eight", []string{"AS", "AD", "AC", "8H"}, 21},
		{"slow twenty one is not a natural", []string{"7S", "7D", "7C"}, 21},
		{"face plus ace plus face", []string{"KS", "AD", "QC"}, 21},
		{"simple total", []string{"2S", "3D"}, 5},
		{"twenty", []string{"KS", "QD"}, 20},
		{"soft seventeen", []string{"AS", "6D"}, 17},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Score(handOf(t, tt.hand...))
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestScoreNilHand(t *testing.T) {
	_, err := Score(nil)
	require.ErrorIs(t, err, cards.ErrNilHand)
}
