package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/thenoetrevino/issueboard/internal/models"
	"github.com/thenoetrevino/issueboard/internal/types"
)

// LabelRepo handles label persistence
type LabelRepo struct {
	db *sql.DB
}

// CreateLabel inserts a label, or returns the existing one with the same name
func (r *LabelRepo) CreateLabel(ctx context.Context, name, color string) (*models.Label, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("label name cannot be empty")
	}
	if color == "" {
		color = "#7D56F4"
	}

	label := &models.Label{}
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO labels (name, color) VALUES (?, ?) ON CONFLICT(name) DO NOTHING`,
			name, color,
		); err != nil {
			return fmt.Errorf("failed to insert label: %w", err)
		}
		return tx.QueryRowContext(ctx,
			`SELECT id, name, color FROM labels WHERE name = ?`, name,
		).Scan(&label.ID, &label.Name, &label.Color)
	})
	if err != nil {
		return nil, err
	}
	return label, nil
}

// GetAllLabels returns every label ordered by name
func (r *LabelRepo) GetAllLabels(ctx context.Context) ([]*models.Label, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, color FROM labels ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query labels: %w", err)
	}
	defer rows.Close()

	var labels []*models.Label
	for rows.Next() {
		label := &models.Label{}
		if err := rows.Scan(&label.ID, &label.Name, &label.Color); err != nil {
			return nil, fmt.Errorf("failed to scan label: %w", err)
		}
		labels = append(labels, label)
	}
	return labels, rows.Err()
}

// AddLabelToIssue attaches a label; attaching twice is not an error
func (r *LabelRepo) AddLabelToIssue(ctx context.Context, issueID types.IssueID, labelID types.LabelID) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := exists(ctx, tx, `SELECT 1 FROM issues WHERE id = ?`, int64(issueID)); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return fmt.Errorf("issue %s: %w", issueID, ErrIssueNotFound)
			}
			return fmt.Errorf("failed to look up issue: %w", err)
		}
		if err := exists(ctx, tx, `SELECT 1 FROM labels WHERE id = ?`, int64(labelID)); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return fmt.Errorf("label %d: %w", labelID, ErrLabelNotFound)
			}
			return fmt.Errorf("failed to look up label: %w", err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO issue_labels (issue_id, label_id) VALUES (?, ?)`,
			int64(issueID), int64(labelID),
		); err != nil {
			return fmt.Errorf("failed to add label %d to issue %s: %w", labelID, issueID, err)
		}
		return nil
	})
}

func exists(ctx context.Context, tx *sql.Tx, query string, arg any) error {
	var one int
	return tx.QueryRowContext(ctx, query, arg).Scan(&one)
}
