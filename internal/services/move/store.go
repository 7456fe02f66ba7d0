package move

import (
	"context"

	"github.com/thenoetrevino/issueboard/internal/models"
	"github.com/thenoetrevino/issueboard/internal/types"
)

// Store is the source of truth the service reconciles with.
// internal/database and internal/api both implement it.
type Store interface {
	// UpdatePosition persists one issue's new placement
	UpdatePosition(ctx context.Context, id types.IssueID, column models.Column, position float64) error

	// FetchAll returns every issue, used to resynchronize after a failure
	FetchAll(ctx context.Context) ([]models.Issue, error)
}
