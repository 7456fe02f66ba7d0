package models

import (
	"fmt"
	"strings"
)

// Column is a board lane. Issues reference their lane by value.
type Column string

// Default lanes, in board order
const (
	ColumnBacklog    Column = "Backlog"
	ColumnTodo       Column = "Todo"
	ColumnInProgress Column = "InProgress"
	ColumnDone       Column = "Done"
	ColumnCanceled   Column = "Canceled"
)

// DefaultColumns returns the standard lane set in display order
func DefaultColumns() []Column {
	return []Column{ColumnBacklog, ColumnTodo, ColumnInProgress, ColumnDone, ColumnCanceled}
}

// ParseColumn finds a lane by name, case-insensitively and ignoring spaces,
// so "in progress" resolves to InProgress
func ParseColumn(lanes []Column, name string) (Column, error) {
	want := normalizeColumnName(name)
	for _, c := range lanes {
		if normalizeColumnName(string(c)) == want {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownColumn, name)
}

var columnNameSeparators = strings.NewReplacer(" ", "", "-", "", "_", "")

// normalizeColumnName makes "In Progress", "in-progress" and "InProgress" equal
func normalizeColumnName(s string) string {
	return strings.ToLower(columnNameSeparators.Replace(strings.TrimSpace(s)))
}
