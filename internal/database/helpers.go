package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/issueboard/internal/types"
)

// withTx executes a function within a database transaction.
// It automatically handles begin, rollback on error, and commit on success.
func withTx(ctx context.Context, db *sql.DB, fn func(*sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			slog.Error("failed to rollback transaction", "error", err)
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// nullUserID converts sql.NullInt64 to *types.UserID.
// Returns nil if the value is not valid.
func nullUserID(nv sql.NullInt64) *types.UserID {
	if nv.Valid {
		id := types.UserID(nv.Int64)
		return &id
	}
	return nil
}

// userIDArg converts an optional user id to a driver value
func userIDArg(id *types.UserID) any {
	if id == nil {
		return nil
	}
	return int64(*id)
}
