package app

import (
	"github.com/thenoetrevino/issueboard/internal/events"
	"github.com/thenoetrevino/issueboard/internal/services/move"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	eventClient events.EventPublisher
	store       move.Store
}

// WithEventPublisher sets the event publisher for the application.
// Without one the app creates its own in-process bus.
func WithEventPublisher(ec events.EventPublisher) Option {
	return func(cfg *appConfig) {
		cfg.eventClient = ec
	}
}

// WithStore persists moves to store instead of the configured backend
func WithStore(store move.Store) Option {
	return func(cfg *appConfig) {
		cfg.store = store
	}
}
