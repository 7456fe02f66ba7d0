package events

import (
	"context"
	"log/slog"
	"os"
	"strconv"
	"sync"
	"sync/atomic"
	"time"
)

// listener is one subscriber of the bus
type listener struct {
	send      chan Event
	closeOnce sync.Once // Ensures send channel is closed only once
}

func (l *listener) close() {
	l.closeOnce.Do(func() { close(l.send) })
}

// Bus is an in-process event fan-out. Delivery never blocks the sender: a
// listener whose buffer is full misses the event and the drop is counted.
type Bus struct {
	mu              sync.RWMutex
	listeners       map[*listener]bool
	closed          bool
	done            chan struct{}
	bufferSize      int
	sequenceCounter atomic.Int64
	dropped         atomic.Int64
}

// getEnvInt reads an integer from an environment variable, returning defaultVal if not set or invalid
func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
			return parsed
		}
	}
	return defaultVal
}

// NewBus creates a bus. A non-positive bufferSize reads ISSUEBOARD_EVENT_BUFFER
// and falls back to 64.
func NewBus(bufferSize int) *Bus {
	if bufferSize <= 0 {
		bufferSize = getEnvInt("ISSUEBOARD_EVENT_BUFFER", 64)
	}
	return &Bus{
		listeners:  make(map[*listener]bool),
		done:       make(chan struct{}),
		bufferSize: bufferSize,
	}
}

// SendEvent stamps the event with a sequence number and delivers it to every listener
func (b *Bus) SendEvent(event Event) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return ErrBusClosed
	}

	event.SequenceID = b.sequenceCounter.Add(1)
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	for l := range b.listeners {
		select {
		case l.send <- event:
		default:
			b.dropped.Add(1)
			slog.Warn("event listener buffer full, dropping event",
				"event_type", event.Type,
				"sequence_id", event.SequenceID)
		}
	}
	return nil
}

// Listen registers a listener until ctx is done or the bus is closed
func (b *Bus) Listen(ctx context.Context) (<-chan Event, error) {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil, ErrBusClosed
	}
	l := &listener{send: make(chan Event, b.bufferSize)}
	b.listeners[l] = true
	b.mu.Unlock()

	go func() {
		select {
		case <-ctx.Done():
		case <-b.done:
		}
		b.mu.Lock()
		delete(b.listeners, l)
		b.mu.Unlock()
		l.close()
	}()

	return l.send, nil
}

// Dropped returns how many deliveries were skipped because a listener was full
func (b *Bus) Dropped() int64 {
	return b.dropped.Load()
}

// Close closes every listener channel. Further sends fail with ErrBusClosed.
func (b *Bus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true
	close(b.done)
	for l := range b.listeners {
		l.close()
		delete(b.listeners, l)
	}
	return nil
}
