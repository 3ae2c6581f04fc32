package events

import "reflect"

// Event is the interface that all domain events must implement.
type Event interface {
	Name() string // Returns a unique name for the event type
}

// EventHandler is a callback notified of every emitted event.
type EventHandler func(event Event)

// GetTableID extracts the table ID an event belongs to.
func GetTableID(event Event) string {
	val := reflect.ValueOf(event)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}
	field := val.FieldByName("TableID")
	if field.IsValid() && field.Kind() == reflect.String {
		return field.String()
	}
	return ""
}
