package board

import (
	"math"

	"github.com/thenoetrevino/issueboard/internal/models"
	"github.com/thenoetrevino/issueboard/internal/ordinal"
	"github.com/thenoetrevino/issueboard/internal/types"
)

// Resolution is the outcome of resolving a drop: where the dragged issue goes
// and every placement change needed to get it there.
type Resolution struct {
	IssueID types.IssueID
	From    models.Placement
	To      models.Placement

	// Renumbered is set when the target column ran out of room between the
	// neighbors and every issue in it was respaced.
	Renumbered bool

	// Changes always contains the dragged issue; renumbering adds its neighbors.
	Changes []Change
}

// Resolver turns drag gestures into placements
type Resolver struct {
	alloc   ordinal.Allocator
	epsilon float64
}

// NewResolver creates a resolver. A non-positive epsilon uses the default.
func NewResolver(alloc ordinal.Allocator, epsilon float64) *Resolver {
	if epsilon <= 0 {
		epsilon = models.DefaultNoChangeEpsilon
	}
	return &Resolver{alloc: alloc, epsilon: epsilon}
}

// Resolve computes where draggedID lands when dropped on target, against the
// given snapshot. It never mutates anything.
func (r *Resolver) Resolve(draggedID types.IssueID, target DropTarget, snap Snapshot) (Resolution, error) {
	dragged, ok := snap.Get(draggedID)
	if !ok {
		return Resolution{}, ErrNotFound
	}

	var (
		col      models.Column
		view     []models.Issue
		insertAt int
	)

	switch {
	case target.IssueID != 0:
		if target.IssueID == draggedID {
			return Resolution{}, ErrNoChange
		}
		sibling, ok := snap.Get(target.IssueID)
		if !ok {
			return Resolution{}, ErrInvalidTarget
		}
		col = sibling.Column
		view = without(snap.Column(col), draggedID)
		idx := indexOf(view, sibling.ID)

		side := target.Side
		if side == SideAuto {
			side = r.direction(dragged, sibling, snap)
		}
		insertAt = idx
		if side == SideAfter {
			insertAt = idx + 1
		}

	case target.Column != "":
		if !snap.HasLane(target.Column) {
			return Resolution{}, ErrInvalidTarget
		}
		col = target.Column
		view = without(snap.Column(col), draggedID)
		insertAt = len(view)

	default:
		return Resolution{}, ErrInvalidTarget
	}

	prev, next := neighbors(view, insertAt)

	// Landing between the current neighbors changes nothing observable, however
	// far the recomputed midpoint is from the current position.
	if col == dragged.Column && sameSlot(snap.Column(col), draggedID, prev, next) {
		return Resolution{}, ErrNoChange
	}

	res := Resolution{IssueID: draggedID, From: dragged.Placement()}

	pos := r.alloc.Allocate(position(prev), position(next))

	// A new slot whose position is indistinguishable from the current one would
	// be swallowed by the no-change guard, so it is treated like an exhausted gap.
	indistinct := col == dragged.Column && math.Abs(pos-dragged.Position) <= r.epsilon

	if !r.alloc.Fits(position(prev), position(next)) || indistinct {
		res.Renumbered = true
		res.Changes = r.renumber(view, insertAt, draggedID, col)
		for _, ch := range res.Changes {
			if ch.ID == draggedID {
				res.To = ch.To
			}
		}
		return res, nil
	}

	res.To = models.Placement{Column: col, Position: pos}
	res.Changes = []Change{{ID: draggedID, To: res.To}}
	return res, nil
}

// Respace spreads the issues of col evenly, keeping their order. The first
// changed issue stands in as the resolution's IssueID. It returns ErrNoChange
// when the column is already evenly spaced.
func (r *Resolver) Respace(col models.Column, snap Snapshot) (Resolution, error) {
	if !snap.HasLane(col) {
		return Resolution{}, ErrInvalidTarget
	}

	view := snap.Column(col)
	positions := r.alloc.Spread(len(view))
	res := Resolution{Renumbered: true}
	for i, it := range view {
		if it.Position == positions[i] {
			continue
		}
		ch := Change{ID: it.ID, To: models.Placement{Column: col, Position: positions[i]}}
		if len(res.Changes) == 0 {
			res.IssueID = it.ID
			res.From = it.Placement()
			res.To = ch.To
		}
		res.Changes = append(res.Changes, ch)
	}
	if len(res.Changes) == 0 {
		return Resolution{}, ErrNoChange
	}
	return res, nil
}

// direction picks the side of sibling the dragged issue lands on when the
// caller did not say: moving down the board lands after the sibling, moving up
// lands before it.
func (r *Resolver) direction(dragged, sibling models.Issue, snap Snapshot) Side {
	if dragged.Column == sibling.Column {
		if less(dragged, sibling) {
			return SideAfter
		}
		return SideBefore
	}
	if lanePos(snap, dragged.Column) < lanePos(snap, sibling.Column) {
		return SideAfter
	}
	return SideBefore
}

// renumber respaces the whole column with the dragged issue at insertAt and
// returns the changes for every issue whose placement differs
func (r *Resolver) renumber(view []models.Issue, insertAt int, draggedID types.IssueID, col models.Column) []Change {
	order := make([]models.Issue, 0, len(view)+1)
	order = append(order, view[:insertAt]...)
	order = append(order, models.Issue{ID: draggedID, Column: col, Position: math.NaN()})
	order = append(order, view[insertAt:]...)

	positions := r.alloc.Spread(len(order))
	changes := make([]Change, 0, len(order))
	for i, it := range order {
		if it.ID != draggedID && it.Position == positions[i] {
			continue
		}
		changes = append(changes, Change{ID: it.ID, To: models.Placement{Column: col, Position: positions[i]}})
	}
	return changes
}

func lanePos(snap Snapshot, col models.Column) int {
	if i, ok := snap.laneIdx[col]; ok {
		return i
	}
	return len(snap.lanes)
}

// sameSlot reports whether prev and next are exactly the dragged issue's
// current neighbors in the column
func sameSlot(column []models.Issue, draggedID types.IssueID, prev, next *models.Issue) bool {
	idx := indexOf(column, draggedID)
	if idx < 0 {
		return false
	}
	var curPrev, curNext *models.Issue
	if idx > 0 {
		curPrev = &column[idx-1]
	}
	if idx+1 < len(column) {
		curNext = &column[idx+1]
	}
	return sameIssue(curPrev, prev) && sameIssue(curNext, next)
}

func sameIssue(a, b *models.Issue) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.ID == b.ID
}

func neighbors(view []models.Issue, insertAt int) (prev, next *models.Issue) {
	if insertAt > 0 {
		prev = &view[insertAt-1]
	}
	if insertAt < len(view) {
		next = &view[insertAt]
	}
	return prev, next
}

func position(it *models.Issue) *float64 {
	if it == nil {
		return nil
	}
	p := it.Position
	return &p
}

func without(items []models.Issue, id types.IssueID) []models.Issue {
	out := items[:0:0]
	for _, it := range items {
		if it.ID != id {
			out = append(out, it)
		}
	}
	return out
}

func indexOf(items []models.Issue, id types.IssueID) int {
	for i, it := range items {
		if it.ID == id {
			return i
		}
	}
	return -1
}
