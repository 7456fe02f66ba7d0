package board

import (
	"testing"

	"github.com/thenoetrevino/issueboard/internal/models"
	"github.com/thenoetrevino/issueboard/internal/types"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

func issue(id types.IssueID, col models.Column, pos float64) models.Issue {
	return models.Issue{ID: id, Title: "issue " + id.String(), Column: col, Position: pos}
}

// newTestSet builds a working set over the default lanes holding the given issues
func newTestSet(t *testing.T, issues ...models.Issue) *WorkingSet {
	t.Helper()
	ws := NewWorkingSet(models.DefaultColumns())
	ws.Replace(issues, nil)
	return ws
}

func ids(items []models.Issue) []types.IssueID {
	out := make([]types.IssueID, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func issueID(n int) types.IssueID {
	return types.IssueID(n)
}
