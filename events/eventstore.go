package events

import (
	"fmt"
	"sync"
)

// EventStore is the interface for storing and retrieving events.
type EventStore interface {
	Append(event Event) error
	LoadEvents(streamID string) ([]Event, error)
}

// InMemoryEventStore is an in-memory implementation of the EventStore interface.
// Events are grouped per shoe, session-level events under the session ID.
type InMemoryEventStore struct {
	events map[string][]Event
	order  []string
	mutex  sync.RWMutex
}

// NewInMemoryEventStore creates a new in-memory event store.
func NewInMemoryEventStore() *InMemoryEventStore {
	return &InMemoryEventStore{
		events: make(map[string][]Event),
	}
}

// Append adds a new event to the store.
func (s *InMemoryEventStore) Append(event Event) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	streamID := ExtractStreamID(event)
	if streamID == "" {
		return fmt.Errorf("event %s has no shoe or session ID", event.Name())
	}

	if _, exists := s.events[streamID]; !exists {
		s.events[streamID] = make([]Event, 0)
		s.order = append(s.order, streamID)
	}

	s.events[streamID] = append(s.events[streamID], event)
	return nil
}

// LoadEvents retrieves all events for the given shoe or session ID.
func (s *InMemoryEventStore) LoadEvents(streamID string) ([]Event, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if events, exists := s.events[streamID]; exists {
		// Make a copy to avoid potential race conditions
		result := make([]Event, len(events))
		copy(result, events)
		return result, nil
	}

	// Return empty slice if no events found
	return []Event{}, nil
}

// Streams returns the stream IDs in the order they were first seen.
func (s *InMemoryEventStore) Streams() []string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	result := make([]string, len(s.order))
	copy(result, s.order)
	return result
}

// GetEvents returns every stored event, stream by stream.
func (s *InMemoryEventStore) GetEvents() []Event {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	var events []Event
	for _, id := range s.order {
		events = append(events, s.events[id]...)
	}
	return events
}
