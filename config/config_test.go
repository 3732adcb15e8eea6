package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func env(values map[string]string) func(string) string {
	return func(key string) string {
		return values[key]
	}
}

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv(env(nil))
	require.NoError(t, err)
	require.Equal(t, DefaultPacks, cfg.Packs)
	require.Equal(t, int64(0), cfg.Seed)
	require.Equal(t, DefaultDealerDelay, cfg.DealerDelay)
	require.False(t, cfg.Debug)
	require.Equal(t, DefaultPort, cfg.Port)
}

func TestFromEnvOverrides(t *testing.T) {
	cfg, err := FromEnv(env(map[string]string{
		"BLACKJACK_PACKS":           "2",
		"BLACKJACK_SEED":            "12345",
		"BLACKJACK_DEALER_DELAY_MS": "0",
		"BLACKJACK_DEBUG":           "1",
		"PORT":                      "9000",
	}))
	require.NoError(t, err)
	require.Equal(t, 2, cfg.Packs)
	require.Equal(t, int64(12345), cfg.Seed)
	require.Equal(t, time.Duration(0), cfg.DealerDelay)
	require.True(t, cfg.Debug)
	require.Equal(t, "9000", cfg.Port)
}

func TestFromEnvInvalidValues(t *testing.T) {
	for _, values := range []map[string]string{
		{"BLACKJACK_PACKS": "zero"},
		{"BLACKJACK_PACKS": "0"},
		{"BLACKJACK_SEED": "not-a-number"},
		{"BLACKJACK_DEALER_DELAY_MS": "-5"},
	} {
		_, err := FromEnv(env(values))
		require.Error(t, err, "values %v", values)
	}
}
