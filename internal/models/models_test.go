package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/issueboard/internal/types"
)

// ============================================================================
// Column Tests
// ============================================================================

func TestParseColumn(t *testing.T) {
	lanes := DefaultColumns()

	tests := []struct {
		input string
		want  Column
	}{
		{"Done", ColumnDone},
		{"done", ColumnDone},
		{"in progress", ColumnInProgress},
		{" InProgress ", ColumnInProgress},
		{"in-progress", ColumnInProgress},
		{"in_progress", ColumnInProgress},
		{"BACKLOG", ColumnBacklog},
	}

	for _, tt := range tests {
		got, err := ParseColumn(lanes, tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}
}

func TestParseColumn_Unknown(t *testing.T) {
	_, err := ParseColumn(DefaultColumns(), "Review")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownColumn))
}

func TestDefaultColumns_Order(t *testing.T) {
	assert.Equal(t,
		[]Column{ColumnBacklog, ColumnTodo, ColumnInProgress, ColumnDone, ColumnCanceled},
		DefaultColumns())
}

// ============================================================================
// Issue Tests
// ============================================================================

func TestIssueClone_DoesNotShareState(t *testing.T) {
	assignee := types.UserID(7)
	orig := Issue{
		ID:         1,
		Column:     ColumnTodo,
		Position:   1000,
		AssigneeID: &assignee,
		Labels:     []*Label{{ID: 1, Name: "bug", Color: "#EF4444"}},
	}

	clone := orig.Clone()
	*clone.AssigneeID = 9
	clone.Labels[0].Name = "feature"

	assert.Equal(t, types.UserID(7), *orig.AssigneeID)
	assert.Equal(t, "bug", orig.Labels[0].Name)
}

func TestIssuePlacement(t *testing.T) {
	i := Issue{ID: 3, Column: ColumnDone, Position: 1500}
	assert.Equal(t, Placement{Column: ColumnDone, Position: 1500}, i.Placement())
	assert.Equal(t, 3, i.GetID())
}
