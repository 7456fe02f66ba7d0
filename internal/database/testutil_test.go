package database

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/issueboard/internal/models"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

// setupTestDB creates an in-memory database with the full schema
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := InitDB(context.Background(), ":memory:")
	require.NoError(t, err, "Failed to create test database")
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// createTestIssue creates an issue in the given column
func createTestIssue(t *testing.T, repo *Repository, title string, column models.Column) *models.Issue {
	t.Helper()
	issue, err := repo.CreateIssue(context.Background(), CreateIssueParams{Title: title, Column: column})
	require.NoError(t, err, "Failed to create issue %q", title)
	return issue
}
