package events

import (
	"encoding/json"
	"log"

	"github.com/lazharichir/blackjack/events"
	"github.com/lazharichir/blackjack/server/connection"
)

// EventEnvelope wraps an event with its name for client consumption
type EventEnvelope struct {
	Name    string          `json:"name"`
	Payload json.RawMessage `json:"payload"`
}

// Dispatcher forwards one session's game events to its client. Every
// session has exactly one player, so there is no table-wide broadcast.
type Dispatcher struct {
	connMgr  *connection.Manager
	clientID string
}

// NewDispatcher creates an event dispatcher bound to a client
func NewDispatcher(connMgr *connection.Manager, clientID string) *Dispatcher {
	return &Dispatcher{
		connMgr:  connMgr,
		clientID: clientID,
	}
}

// HandleEvent wraps the event in an envelope and sends it to the client
func (d *Dispatcher) HandleEvent(event events.Event) {
	eventPayload, err := json.Marshal(event)
	if err != nil {
		log.Println("Failed to marshal event payload:", err)
		return
	}

	envelope := EventEnvelope{
		Name:    event.Name(),
		Payload: eventPayload,
	}

	envelopeData, err := json.Marshal(envelope)
	if err != nil {
		log.Println("Failed to marshal event envelope:", err)
		return
	}

	d.connMgr.SendToClient(d.clientID, envelopeData)
}
