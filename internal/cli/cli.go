// Package cli holds the pieces shared by every issueboard command
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/issueboard/internal/app"
	"github.com/thenoetrevino/issueboard/internal/config"
	"github.com/thenoetrevino/issueboard/internal/database"
)

// CLI represents the CLI application context
type CLI struct {
	App *app.App // Application container with services
}

// NewCLI builds the application for one command invocation
func NewCLI(ctx context.Context, cfg *config.Config, opts ...app.Option) (*CLI, error) {
	application, err := app.New(ctx, cfg, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize: %w", err)
	}
	return &CLI{App: application}, nil
}

// Repo returns the sqlite repository, or ErrNeedsDatabase with the api backend
func (c *CLI) Repo() (database.DataStore, error) {
	repo := c.App.Repo()
	if repo == nil {
		return nil, ErrNeedsDatabase
	}
	return repo, nil
}

// Close waits for in-flight moves and releases resources
func (c *CLI) Close() error {
	return c.App.Close()
}

// CloseQuietly closes c and logs any error
func CloseQuietly(c *CLI) {
	if err := c.Close(); err != nil {
		slog.Error("failed to close CLI", "error", err)
	}
}
