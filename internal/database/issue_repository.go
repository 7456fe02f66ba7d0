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

const issueColumns = `id, title, description, status, priority, assignee_id, order_index, created_at, updated_at`

// CreateIssueParams holds the fields a new issue is created with.
// Empty Column and Priority fall back to the model defaults.
type CreateIssueParams struct {
	Title       string
	Description string
	Column      models.Column
	Priority    models.Priority
	AssigneeID  *types.UserID
}

// IssueRepo handles issue persistence
type IssueRepo struct {
	db *sql.DB
}

// ============================================================================
// Issue Operations
// ============================================================================

// CreateIssue appends a new issue to the end of its column
func (r *IssueRepo) CreateIssue(ctx context.Context, params CreateIssueParams) (*models.Issue, error) {
	title := strings.TrimSpace(params.Title)
	if title == "" {
		return nil, models.ErrEmptyTitle
	}
	column := params.Column
	if column == "" {
		column = models.DefaultColumn
	}
	priority := params.Priority
	if priority == "" {
		priority = models.DefaultPriority
	}

	var id int64
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		var last float64
		if err := tx.QueryRowContext(ctx,
			`SELECT COALESCE(MAX(order_index), 0) FROM issues WHERE status = ?`,
			string(column),
		).Scan(&last); err != nil {
			return fmt.Errorf("failed to get column tail: %w", err)
		}

		result, err := tx.ExecContext(ctx,
			`INSERT INTO issues (title, description, status, priority, assignee_id, order_index)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			title, params.Description, string(column), string(priority),
			userIDArg(params.AssigneeID), last+models.DefaultPositionGap,
		)
		if err != nil {
			return fmt.Errorf("failed to insert issue: %w", err)
		}
		id, err = result.LastInsertId()
		return err
	})
	if err != nil {
		return nil, err
	}

	return r.GetIssue(ctx, types.IssueID(id))
}

// GetIssue retrieves one issue with its labels
func (r *IssueRepo) GetIssue(ctx context.Context, id types.IssueID) (*models.Issue, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+issueColumns+` FROM issues WHERE id = ?`,
		int64(id),
	)
	issue, err := scanIssue(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("issue %s: %w", id, ErrIssueNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get issue %s: %w", id, err)
	}

	issues := []models.Issue{issue}
	if err := r.attachLabels(ctx, issues); err != nil {
		return nil, err
	}
	return &issues[0], nil
}

// FetchAll returns every issue ordered by position
func (r *IssueRepo) FetchAll(ctx context.Context) ([]models.Issue, error) {
	return r.query(ctx,
		`SELECT `+issueColumns+` FROM issues ORDER BY order_index, id`)
}

// ListByColumn returns the issues of one column ordered by position
func (r *IssueRepo) ListByColumn(ctx context.Context, column models.Column) ([]models.Issue, error) {
	return r.query(ctx,
		`SELECT `+issueColumns+` FROM issues WHERE status = ? ORDER BY order_index, id`,
		string(column))
}

// UpdatePosition moves an issue to a column and position
func (r *IssueRepo) UpdatePosition(ctx context.Context, id types.IssueID, column models.Column, position float64) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE issues
		 SET status = ?, order_index = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		string(column), position, int64(id),
	)
	if err != nil {
		return fmt.Errorf("failed to update issue %s position: %w", id, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update issue %s position: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("issue %s: %w", id, ErrIssueNotFound)
	}
	return nil
}

// DeleteIssue removes an issue; its label attachments cascade
func (r *IssueRepo) DeleteIssue(ctx context.Context, id types.IssueID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM issues WHERE id = ?`, int64(id))
	if err != nil {
		return fmt.Errorf("failed to delete issue %s: %w", id, err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("issue %s: %w", id, ErrIssueNotFound)
	}
	return nil
}

func (r *IssueRepo) query(ctx context.Context, query string, args ...any) ([]models.Issue, error) {
	issues, err := r.scanAll(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	// Rows are closed by now; the pool holds a single connection
	if err := r.attachLabels(ctx, issues); err != nil {
		return nil, err
	}
	return issues, nil
}

func (r *IssueRepo) scanAll(ctx context.Context, query string, args ...any) ([]models.Issue, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query issues: %w", err)
	}
	defer rows.Close()

	var issues []models.Issue
	for rows.Next() {
		issue, err := scanIssue(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan issue: %w", err)
		}
		issues = append(issues, issue)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate issues: %w", err)
	}
	return issues, nil
}

// attachLabels loads the labels of the given issues in one query
func (r *IssueRepo) attachLabels(ctx context.Context, issues []models.Issue) error {
	if len(issues) == 0 {
		return nil
	}
	index := make(map[types.IssueID]int, len(issues))
	for i, it := range issues {
		index[it.ID] = i
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT il.issue_id, l.id, l.name, l.color
		 FROM issue_labels il
		 JOIN labels l ON l.id = il.label_id
		 ORDER BY l.name`)
	if err != nil {
		return fmt.Errorf("failed to query issue labels: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var issueID int64
		label := &models.Label{}
		if err := rows.Scan(&issueID, &label.ID, &label.Name, &label.Color); err != nil {
			return fmt.Errorf("failed to scan issue label: %w", err)
		}
		if i, ok := index[types.IssueID(issueID)]; ok {
			issues[i].Labels = append(issues[i].Labels, label)
		}
	}
	return rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanIssue(row rowScanner) (models.Issue, error) {
	var (
		issue    models.Issue
		status   string
		priority string
		assignee sql.NullInt64
	)
	err := row.Scan(
		&issue.ID, &issue.Title, &issue.Description, &status, &priority,
		&assignee, &issue.Position, &issue.CreatedAt, &issue.UpdatedAt,
	)
	if err != nil {
		return models.Issue{}, err
	}
	issue.Column = models.Column(status)
	issue.Priority = models.Priority(priority)
	issue.AssigneeID = nullUserID(assignee)
	return issue, nil
}
