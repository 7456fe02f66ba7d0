package boardcmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/issueboard/internal/board"
	"github.com/thenoetrevino/issueboard/internal/models"
	"github.com/thenoetrevino/issueboard/internal/types"
)

func testSnapshot() board.Snapshot {
	ws := board.NewWorkingSet(nil)
	ws.Replace([]models.Issue{
		{ID: 1, Title: "Fix login", Column: models.ColumnTodo, Position: 1000, Priority: models.PriorityHigh},
		{ID: 2, Title: "Ship it", Column: models.ColumnTodo, Position: 2000},
		{ID: 3, Title: "Done thing", Column: models.ColumnDone, Position: 1000,
			Labels: []*models.Label{{ID: 1, Name: "bug", Color: "#FF0000"}}},
	}, nil)
	return ws.Snapshot()
}

func TestRender_AllLanes(t *testing.T) {
	out := Render(testSnapshot(), RenderOptions{})

	for _, want := range []string{"Backlog (0)", "Todo (2)", "InProgress (0)", "Done (1)", "Canceled (0)", "Fix login", "[bug]", "empty"} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "@1000", "positions are hidden by default")
	assert.NotContains(t, out, "⏳")
}

func TestRender_SelectedLanesPendingAndPositions(t *testing.T) {
	out := Render(testSnapshot(), RenderOptions{
		Columns:       []models.Column{models.ColumnTodo},
		Pending:       map[types.IssueID]bool{2: true},
		ShowPositions: true,
	})

	assert.Contains(t, out, "Todo (2)")
	assert.NotContains(t, out, "Done (1)")
	assert.Contains(t, out, "@2000")
	assert.Contains(t, out, "⏳")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcd…", truncate("abcdefgh", 5))
	assert.Equal(t, "héll…", truncate("héllo wörld", 5))
	assert.Equal(t, "ab", truncate("ab", 1))
}
