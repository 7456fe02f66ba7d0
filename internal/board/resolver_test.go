package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/issueboard/internal/models"
	"github.com/thenoetrevino/issueboard/internal/ordinal"
	"github.com/thenoetrevino/issueboard/internal/types"
)

func newTestResolver() *Resolver {
	return NewResolver(ordinal.Default(), 0)
}

func TestResolve_BetweenSiblings(t *testing.T) {
	// Todo has A(1000), B(2000); C comes over from Backlog
	ws := newTestSet(t,
		issue(1, models.ColumnTodo, 1000),
		issue(2, models.ColumnTodo, 2000),
		issue(3, models.ColumnBacklog, 1000),
	)
	r := newTestResolver()

	res, err := r.Resolve(3, OnIssue(2, SideBefore), ws.Snapshot())
	require.NoError(t, err)
	assert.Equal(t, models.Placement{Column: models.ColumnTodo, Position: 1500}, res.To)
	assert.Equal(t, models.Placement{Column: models.ColumnBacklog, Position: 1000}, res.From)
	assert.False(t, res.Renumbered)
	require.Len(t, res.Changes, 1)
	assert.Equal(t, res.To, res.Changes[0].To)

	// Coming from an earlier lane lands after the sibling
	res, err = r.Resolve(3, OnIssue(1, SideAuto), ws.Snapshot())
	require.NoError(t, err)
	assert.Equal(t, 1500.0, res.To.Position)
}

func TestResolve_IntoEmptyColumn(t *testing.T) {
	ws := newTestSet(t, issue(1, models.ColumnBacklog, 3000))

	res, err := newTestResolver().Resolve(1, OnColumn(models.ColumnDone), ws.Snapshot())
	require.NoError(t, err)
	assert.Equal(t, models.Placement{Column: models.ColumnDone, Position: 1000}, res.To)
}

func TestResolve_ColumnDropAppendsToTail(t *testing.T) {
	ws := newTestSet(t,
		issue(1, models.ColumnDone, 1000),
		issue(2, models.ColumnDone, 2500),
		issue(3, models.ColumnTodo, 1000),
	)

	res, err := newTestResolver().Resolve(3, OnColumn(models.ColumnDone), ws.Snapshot())
	require.NoError(t, err)
	assert.Equal(t, 3500.0, res.To.Position)
}

func TestResolve_HeadInsert(t *testing.T) {
	ws := newTestSet(t,
		issue(1, models.ColumnTodo, 1000),
		issue(2, models.ColumnDone, 1000),
	)

	res, err := newTestResolver().Resolve(2, OnIssue(1, SideBefore), ws.Snapshot())
	require.NoError(t, err)
	assert.Equal(t, models.Placement{Column: models.ColumnTodo, Position: 500}, res.To)
}

func TestResolve_DragDirectionWithinColumn(t *testing.T) {
	ws := newTestSet(t,
		issue(1, models.ColumnTodo, 1000),
		issue(2, models.ColumnTodo, 2000),
		issue(3, models.ColumnTodo, 3000),
	)
	r := newTestResolver()

	// Moving A down onto C lands after C
	res, err := r.Resolve(1, OnIssue(3, SideAuto), ws.Snapshot())
	require.NoError(t, err)
	assert.Equal(t, 4000.0, res.To.Position)

	// Moving C up onto A lands before A
	res, err = r.Resolve(3, OnIssue(1, SideAuto), ws.Snapshot())
	require.NoError(t, err)
	assert.Equal(t, 500.0, res.To.Position)

	// Moving A down onto B lands between B and C
	res, err = r.Resolve(1, OnIssue(2, SideAuto), ws.Snapshot())
	require.NoError(t, err)
	assert.Equal(t, 2500.0, res.To.Position)
}

func TestResolve_DragDirectionAcrossColumns(t *testing.T) {
	ws := newTestSet(t,
		issue(1, models.ColumnTodo, 1000),
		issue(2, models.ColumnTodo, 2000),
		issue(3, models.ColumnDone, 1000),
	)

	// Done is a later lane than Todo, so the drop lands before the sibling
	res, err := newTestResolver().Resolve(3, OnIssue(2, SideAuto), ws.Snapshot())
	require.NoError(t, err)
	assert.Equal(t, models.Placement{Column: models.ColumnTodo, Position: 1500}, res.To)
}

func TestResolve_NoOpDrops(t *testing.T) {
	ws := newTestSet(t,
		issue(1, models.ColumnTodo, 1000),
		issue(2, models.ColumnTodo, 2000),
		issue(3, models.ColumnTodo, 3000),
	)
	r := newTestResolver()
	snap := ws.Snapshot()

	tests := []struct {
		name    string
		dragged int
		target  DropTarget
	}{
		{"after own predecessor", 2, OnIssue(1, SideAfter)},
		{"before own successor", 2, OnIssue(3, SideBefore)},
		{"tail onto own column", 3, OnColumn(models.ColumnTodo)},
		{"onto itself", 2, OnIssue(2, SideAuto)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Resolve(issueID(tt.dragged), tt.target, snap)
			assert.ErrorIs(t, err, ErrNoChange)
		})
	}
}

func TestResolve_SameSlotWithUnevenGapsIsNoOp(t *testing.T) {
	// The midpoint of B's neighbors differs from B's position, but B would land
	// in the same slot, so nothing should be persisted.
	ws := newTestSet(t,
		issue(1, models.ColumnTodo, 1000),
		issue(2, models.ColumnTodo, 1200),
		issue(3, models.ColumnTodo, 3000),
	)

	_, err := newTestResolver().Resolve(2, OnIssue(1, SideAfter), ws.Snapshot())
	assert.ErrorIs(t, err, ErrNoChange)
}

func TestResolve_ValidationErrors(t *testing.T) {
	ws := newTestSet(t, issue(1, models.ColumnTodo, 1000))
	r := newTestResolver()
	snap := ws.Snapshot()

	_, err := r.Resolve(99, OnColumn(models.ColumnDone), snap)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = r.Resolve(1, OnIssue(42, SideAuto), snap)
	assert.ErrorIs(t, err, ErrInvalidTarget)

	_, err = r.Resolve(1, OnColumn("Review"), snap)
	assert.ErrorIs(t, err, ErrInvalidTarget)

	_, err = r.Resolve(1, DropTarget{}, snap)
	assert.ErrorIs(t, err, ErrInvalidTarget)
}

func TestResolve_RenumbersExhaustedGap(t *testing.T) {
	ws := newTestSet(t,
		issue(1, models.ColumnTodo, 1000),
		issue(2, models.ColumnTodo, 1000+1e-7),
		issue(3, models.ColumnTodo, 1000+2e-7),
		issue(4, models.ColumnBacklog, 1000),
	)

	res, err := newTestResolver().Resolve(4, OnIssue(2, SideBefore), ws.Snapshot())
	require.NoError(t, err)
	assert.True(t, res.Renumbered)
	assert.Equal(t, models.Placement{Column: models.ColumnTodo, Position: 2000}, res.To)

	got := map[int]float64{}
	for _, ch := range res.Changes {
		assert.Equal(t, models.ColumnTodo, ch.To.Column)
		got[int(ch.ID)] = ch.To.Position
	}
	// Issue 1 already sits at the base position and is left alone
	assert.Equal(t, map[int]float64{4: 2000, 2: 3000, 3: 4000}, got)
}

func TestResolve_RepeatedMidpointsEventuallyRenumber(t *testing.T) {
	ws := newTestSet(t,
		issue(1, models.ColumnTodo, 1000),
		issue(2, models.ColumnTodo, 2000),
		issue(3, models.ColumnBacklog, 1000),
		issue(4, models.ColumnBacklog, 2000),
	)
	r := newTestResolver()

	// Alternate two issues into the slot right after issue 1 until the gap runs out
	dragged := []int{3, 4}
	renumbered := false
	for i := 0; i < 100 && !renumbered; i++ {
		res, err := r.Resolve(issueID(dragged[i%2]), OnIssue(1, SideAfter), ws.Snapshot())
		require.NoError(t, err)
		_, err = ws.Apply(res.Changes)
		require.NoError(t, err)
		renumbered = res.Renumbered
	}
	require.True(t, renumbered, "gap never exhausted")

	col := ws.Snapshot().Column(models.ColumnTodo)
	for i := 1; i < len(col); i++ {
		assert.Greater(t, col[i].Position-col[i-1].Position, 1.0)
	}
}

func TestParseDropTarget(t *testing.T) {
	lanes := models.DefaultColumns()

	target, err := ParseDropTarget(lanes, "done", SideAuto)
	require.NoError(t, err)
	assert.True(t, target.IsColumn())
	assert.Equal(t, models.ColumnDone, target.Column)

	target, err = ParseDropTarget(lanes, "12", SideAfter)
	require.NoError(t, err)
	assert.False(t, target.IsColumn())
	assert.Equal(t, issueID(12), target.IssueID)
	assert.Equal(t, SideAfter, target.Side)

	_, err = ParseDropTarget(lanes, "Review", SideAuto)
	assert.ErrorIs(t, err, ErrInvalidTarget)
}

func TestParseSide(t *testing.T) {
	s, err := ParseSide("Before")
	require.NoError(t, err)
	assert.Equal(t, SideBefore, s)

	s, err = ParseSide("")
	require.NoError(t, err)
	assert.Equal(t, SideAuto, s)

	_, err = ParseSide("sideways")
	assert.Error(t, err)
}

func TestResolve_IndistinctNewSlotRenumbers(t *testing.T) {
	// Moving C ahead of B changes the order, but the midpoint of A and B is
	// within the no-change epsilon of C's current position.
	ws := newTestSet(t,
		issue(1, models.ColumnTodo, 1000),
		issue(2, models.ColumnTodo, 1000.0004),
		issue(3, models.ColumnTodo, 1000.0008),
	)

	res, err := newTestResolver().Resolve(3, OnIssue(2, SideBefore), ws.Snapshot())
	require.NoError(t, err)
	assert.True(t, res.Renumbered)
	assert.Equal(t, 2000.0, res.To.Position)

	_, err = ws.Apply(res.Changes)
	require.NoError(t, err)
	assert.Equal(t, []types.IssueID{1, 3, 2}, ids(ws.Snapshot().Column(models.ColumnTodo)))
}

func TestRespace(t *testing.T) {
	ws := newTestSet(t,
		issue(1, models.ColumnTodo, 1000),
		issue(2, models.ColumnTodo, 1000.5),
		issue(3, models.ColumnTodo, 1000.75),
		issue(4, models.ColumnDone, 7),
	)
	r := NewResolver(ordinal.Default(), 0)

	res, err := r.Respace(models.ColumnTodo, ws.Snapshot())
	require.NoError(t, err)
	assert.True(t, res.Renumbered)
	assert.Equal(t, issueID(2), res.IssueID, "issue 1 already sits at the base")
	assert.Equal(t, []Change{
		{ID: 2, To: models.Placement{Column: models.ColumnTodo, Position: 2000}},
		{ID: 3, To: models.Placement{Column: models.ColumnTodo, Position: 3000}},
	}, res.Changes)

	_, err = ws.Apply(res.Changes)
	require.NoError(t, err)
	_, err = r.Respace(models.ColumnTodo, ws.Snapshot())
	assert.ErrorIs(t, err, ErrNoChange)

	_, err = r.Respace(models.ColumnCanceled, ws.Snapshot())
	assert.ErrorIs(t, err, ErrNoChange, "empty column")

	_, err = r.Respace("Review", ws.Snapshot())
	assert.ErrorIs(t, err, ErrInvalidTarget)
}
