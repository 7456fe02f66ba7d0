package events_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/issueboard/internal/events"
)

func TestPublishWithRetry_NilClient(t *testing.T) {
	assert.NoError(t, events.PublishWithRetry(nil, events.Event{Type: events.EventResynced}, 3))
}

func TestPublishWithRetry_SucceedsAfterFailures(t *testing.T) {
	mock := &MockEventPublisher{FailFirst: 2}

	err := events.PublishWithRetry(mock, events.Event{Type: events.EventMoveCommitted, IssueID: 5}, 3)
	assert.NoError(t, err)
	assert.Equal(t, 3, mock.Attempts)
	assert.Len(t, mock.SentEvents, 1)
}

func TestPublishWithRetry_GivesUp(t *testing.T) {
	mock := &MockEventPublisher{FailFirst: 10}

	err := events.PublishWithRetry(mock, events.Event{Type: events.EventMoveCommitted}, 2)
	assert.Error(t, err)
	assert.Equal(t, 2, mock.Attempts)
	assert.Empty(t, mock.SentEvents)
}

func TestPublishWithRetry_ClosedBusDoesNotRetry(t *testing.T) {
	bus := events.NewBus(1)
	_ = bus.Close()

	err := events.PublishWithRetry(bus, events.Event{Type: events.EventResynced}, 5)
	assert.ErrorIs(t, err, events.ErrBusClosed)
}
