package events

import "context"

// EventPublisher defines the interface for sending and receiving events.
// The move service depends on this rather than on Bus so tests can record
// events with a fake.
type EventPublisher interface {
	// SendEvent delivers an event to every listener
	SendEvent(event Event) error

	// Listen returns a channel of events that is closed when ctx is done or
	// the publisher is closed
	Listen(ctx context.Context) (<-chan Event, error)

	// Close stops delivery and closes all listener channels
	Close() error
}

// Compile-time verification that *Bus implements EventPublisher
var _ EventPublisher = (*Bus)(nil)
