// Package database defines repository interfaces for data access
package database

import (
	"context"

	"github.com/thenoetrevino/issueboard/internal/models"
	"github.com/thenoetrevino/issueboard/internal/types"
)

// IssueRepository covers issue persistence. FetchAll and UpdatePosition are
// what the move service needs; the rest serves the CLI and seeding.
type IssueRepository interface {
	FetchAll(ctx context.Context) ([]models.Issue, error)
	UpdatePosition(ctx context.Context, id types.IssueID, column models.Column, position float64) error
	CreateIssue(ctx context.Context, params CreateIssueParams) (*models.Issue, error)
	GetIssue(ctx context.Context, id types.IssueID) (*models.Issue, error)
	ListByColumn(ctx context.Context, column models.Column) ([]models.Issue, error)
	DeleteIssue(ctx context.Context, id types.IssueID) error
}

// LabelRepository covers labels and their attachment to issues
type LabelRepository interface {
	CreateLabel(ctx context.Context, name, color string) (*models.Label, error)
	GetAllLabels(ctx context.Context) ([]*models.Label, error)
	AddLabelToIssue(ctx context.Context, issueID types.IssueID, labelID types.LabelID) error
}

// DataStore is everything the CLI reads and writes
type DataStore interface {
	IssueRepository
	LabelRepository
	CreateUser(ctx context.Context, name, avatarURL string) (*models.User, error)
}

var _ DataStore = (*Repository)(nil)
