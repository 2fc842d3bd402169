package events

// Event is the interface that all domain events must implement.
type Event interface {
	Name() string // Returns a unique name for the event type
}

// EventHandler is called for every event emitted by a shoe or round.
type EventHandler func(event Event)
