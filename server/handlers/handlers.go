package handlers

import (
	"encoding/json"
	"fmt"

	"github.com/lazharichir/blackjack/server/connection"
)

// Command names accepted over the wire. Each maps to one token of the
// terminal protocol: hit, stick, replay, quit.
const (
	CommandPlayerHits   = "PLAYER_HITS"
	CommandPlayerSticks = "PLAYER_STICKS"
	CommandPlayAgain    = "PLAY_AGAIN"
	CommandQuit         = "QUIT"
)

// SessionInput feeds player tokens into a client's running game session.
type SessionInput interface {
	PushInput(clientID string, token string) error
}

// CommandRouter routes incoming commands to the client's session
type CommandRouter struct {
	sessions SessionInput
}

// NewCommandRouter creates a new command router
func NewCommandRouter(sessions SessionInput) *CommandRouter {
	return &CommandRouter{sessions: sessions}
}

// HandleCommand processes an incoming command message
func (r *CommandRouter) HandleCommand(client *connection.Client, message []byte) error {
	// First determine command type
	var baseCmd struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(message, &baseCmd); err != nil {
		return err
	}

	switch baseCmd.Name {
	case CommandPlayerHits:
		return r.sessions.PushInput(client.ID, "h\n")
	case CommandPlayerSticks:
		return r.sessions.PushInput(client.ID, "s\n")
	case CommandPlayAgain:
		return r.sessions.PushInput(client.ID, "y\n")
	case CommandQuit:
		return r.sessions.PushInput(client.ID, "n\n")
	default:
		return fmt.Errorf("unknown command type %q", baseCmd.Name)
	}
}
