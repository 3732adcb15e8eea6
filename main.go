package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/lazharichir/blackjack/cli"
	"github.com/lazharichir/blackjack/config"
	"github.com/lazharichir/blackjack/events"
	"github.com/lazharichir/blackjack/server"
)

func main() {
	serve := flag.Bool("serve", false, "host games over websocket instead of playing in the terminal")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Config failed: %v", err)
	}

	store := events.NewInMemoryEventStore()

	if *serve {
		fmt.Println("Starting Blackjack Backend...")

		s := server.NewServer(cfg, store)
		if err := s.Start(cfg.Port); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
		return
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	session := cli.NewSession(cfg, os.Stdin, os.Stdout, rng, store)
	if err := session.Run(); err != nil {
		log.Fatalf("Game failed: %v", err)
	}
}
