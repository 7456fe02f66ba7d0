package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/thenoetrevino/issueboard/internal/models"
	"github.com/thenoetrevino/issueboard/internal/types"
)

// Repository provides a unified interface to all data operations.
// It composes domain-specific repositories using struct embedding.
type Repository struct {
	*IssueRepo
	*LabelRepo
	db *sql.DB
}

// NewRepository creates a new Repository instance wrapping the given database connection.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		IssueRepo: &IssueRepo{db: db},
		LabelRepo: &LabelRepo{db: db},
		db:        db,
	}
}

// CreateUser inserts an assignee
func (r *Repository) CreateUser(ctx context.Context, name, avatarURL string) (*models.User, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO users (name, avatar_url) VALUES (?, ?)`,
		name, avatarURL,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get user id: %w", err)
	}
	return &models.User{ID: types.UserID(id), Name: name, AvatarURL: avatarURL}, nil
}
