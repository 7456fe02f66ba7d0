package events_test

import (
	"context"
	"errors"
	"sync"

	"github.com/thenoetrevino/issueboard/internal/events"
)

// MockEventPublisher records sent events and can be told to fail the first N sends.
type MockEventPublisher struct {
	mu sync.Mutex

	SentEvents []events.Event
	FailFirst  int
	Attempts   int
	Closed     bool
}

var errMockSend = errors.New("mock send failure")

func (m *MockEventPublisher) SendEvent(event events.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Attempts++
	if m.Attempts <= m.FailFirst {
		return errMockSend
	}
	m.SentEvents = append(m.SentEvents, event)
	return nil
}

func (m *MockEventPublisher) Listen(ctx context.Context) (<-chan events.Event, error) {
	ch := make(chan events.Event)
	close(ch)
	return ch, nil
}

func (m *MockEventPublisher) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Closed = true
	return nil
}

var _ events.EventPublisher = (*MockEventPublisher)(nil)
