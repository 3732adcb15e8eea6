package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Defaults for the canonical game.
const (
	DefaultPacks       = 6
	DefaultDealerDelay = time.Second
	DefaultPort        = "7777"
)

// Config carries the process settings, read from the environment.
type Config struct {
	Packs       int
	Seed        int64 // 0 seeds from the wall clock
	DealerDelay time.Duration
	Debug       bool
	Port        string
}

// Load reads the configuration from the environment, after loading a
// .env file when one is present.
func Load() (*Config, error) {
	godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds the configuration from the given lookup function.
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		Packs:       DefaultPacks,
		DealerDelay: DefaultDealerDelay,
		Port:        DefaultPort,
	}

	if v := getenv("BLACKJACK_PACKS"); v != "" {
		packs, err := strconv.Atoi(v)
		if err != nil || packs < 1 {
			return nil, fmt.Errorf("invalid BLACKJACK_PACKS: %q", v)
		}
		cfg.Packs = packs
	}

	if v := getenv("BLACKJACK_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid BLACKJACK_SEED: %q", v)
		}
		cfg.Seed = seed
	}

	if v := getenv("BLACKJACK_DEALER_DELAY_MS"); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil || ms < 0 {
			return nil, fmt.Errorf("invalid BLACKJACK_DEALER_DELAY_MS: %q", v)
		}
		cfg.DealerDelay = time.Duration(ms) * time.Millisecond
	}

	cfg.Debug = getenv("BLACKJACK_DEBUG") == "1"

	if v := getenv("PORT"); v != "" {
		cfg.Port = v
	}

	return cfg, nil
}
