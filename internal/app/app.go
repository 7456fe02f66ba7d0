package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/issueboard/internal/api"
	"github.com/thenoetrevino/issueboard/internal/board"
	"github.com/thenoetrevino/issueboard/internal/config"
	"github.com/thenoetrevino/issueboard/internal/database"
	"github.com/thenoetrevino/issueboard/internal/events"
	"github.com/thenoetrevino/issueboard/internal/services/move"
)

var (
	_ move.Store = (*database.Repository)(nil)
	_ move.Store = (*api.Client)(nil)
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	Config *config.Config

	// Repository layer, nil when moves go to the REST service
	repo database.DataStore
	db   *sql.DB

	// Event system for move lifecycle notifications
	eventClient events.EventPublisher
	ownsEvents  bool

	// Service layer
	MoveService move.Service
}

// New creates a new App with all services initialized and the working set
// loaded from the store.
// This is the single entry point for creating the application container.
func New(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	var ac appConfig
	for _, opt := range opts {
		opt(&ac)
	}

	a := &App{Config: cfg, eventClient: ac.eventClient}
	if a.eventClient == nil {
		a.eventClient = events.NewBus(0)
		a.ownsEvents = true
	}

	store := ac.store
	if store == nil {
		s, err := a.openStore(ctx)
		if err != nil {
			_ = a.Close()
			return nil, err
		}
		store = s
	}

	policy, err := move.ParsePolicy(cfg.Moves.PendingPolicy)
	if err != nil {
		_ = a.Close()
		return nil, err
	}

	ws := board.NewWorkingSet(cfg.Columns())
	a.MoveService = move.NewService(ws, store, a.eventClient, move.Options{
		Policy:         policy,
		Allocator:      cfg.Allocator(),
		Epsilon:        cfg.Ordering.Epsilon,
		PersistTimeout: cfg.Moves.PersistTimeout,
	})

	if err := a.MoveService.Resync(ctx); err != nil {
		_ = a.Close()
		return nil, fmt.Errorf("failed to load board: %w", err)
	}

	slog.Info("board loaded",
		"backend", cfg.Backend,
		"issues", a.MoveService.Snapshot().Len(),
		"policy", policy)
	return a, nil
}

func (a *App) openStore(ctx context.Context) (move.Store, error) {
	switch a.Config.Backend {
	case config.BackendAPI:
		return api.NewClient(a.Config.API.URL, a.Config.API.Key,
			api.WithPageSize(a.Config.API.PageSize)), nil
	default:
		db, err := database.InitDB(ctx, a.Config.Database.Path)
		if err != nil {
			return nil, err
		}
		a.db = db
		repo := database.NewRepository(db)
		a.repo = repo
		return repo, nil
	}
}

// Repo returns the sqlite repository, or nil for the api backend
func (a *App) Repo() database.DataStore {
	return a.repo
}

// Events returns the publisher move events go to
func (a *App) Events() events.EventPublisher {
	return a.eventClient
}

// Close drains in-flight moves and releases the database and event bus
func (a *App) Close() error {
	return a.Shutdown(context.Background())
}

// Shutdown is Close bounded by ctx
func (a *App) Shutdown(ctx context.Context) error {
	var errs []error
	if a.MoveService != nil {
		if err := a.MoveService.Wait(ctx); err != nil {
			errs = append(errs, fmt.Errorf("failed to drain moves: %w", err))
		}
	}
	if a.ownsEvents && a.eventClient != nil {
		errs = append(errs, a.eventClient.Close())
	}
	if a.db != nil {
		errs = append(errs, a.db.Close())
		a.db = nil
	}
	return errors.Join(errs...)
}
