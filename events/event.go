package events

import "reflect"

// EventHandler consumes game events as they are emitted.
type EventHandler func(event Event)

// Event is the interface that all game events must implement.
type Event interface {
	Name() string // Returns a unique name for the event type
}

// ExtractRoundID pulls the RoundID field out of an event, if it has one.
func ExtractRoundID(event Event) string {
	val := reflect.ValueOf(event)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}
	field := val.FieldByName("RoundID")
	if field.IsValid() && field.Kind() == reflect.String {
		return field.String()
	}
	return ""
}
