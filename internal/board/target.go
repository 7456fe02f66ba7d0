package board

import (
	"fmt"
	"strings"

	"github.com/thenoetrevino/issueboard/internal/models"
	"github.com/thenoetrevino/issueboard/internal/types"
)

// Side says on which side of a sibling the dragged issue lands
type Side int

const (
	// SideAuto derives the side from the drag direction
	SideAuto Side = iota
	SideBefore
	SideAfter
)

func (s Side) String() string {
	switch s {
	case SideBefore:
		return "before"
	case SideAfter:
		return "after"
	default:
		return "auto"
	}
}

// ParseSide accepts "before", "after" and "auto" (or empty)
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return SideAuto, nil
	case "before", "above":
		return SideBefore, nil
	case "after", "below":
		return SideAfter, nil
	}
	return SideAuto, fmt.Errorf("invalid side %q (must be: before, after, auto)", s)
}

// DropTarget is where a drag ended: either an empty area of a column or
// another issue. Exactly one of Column and IssueID is set.
type DropTarget struct {
	Column  models.Column
	IssueID types.IssueID
	Side    Side
}

// OnColumn targets the tail of a column
func OnColumn(col models.Column) DropTarget {
	return DropTarget{Column: col}
}

// OnIssue targets a sibling issue
func OnIssue(id types.IssueID, side Side) DropTarget {
	return DropTarget{IssueID: id, Side: side}
}

// IsColumn reports whether the target is a column rather than an issue
func (t DropTarget) IsColumn() bool {
	return t.IssueID == 0 && t.Column != ""
}

func (t DropTarget) String() string {
	if t.IsColumn() {
		return "column:" + string(t.Column)
	}
	return fmt.Sprintf("issue:%s:%s", t.IssueID, t.Side)
}

// ParseDropTarget interprets a raw drop id the way the presentation layer sends
// it: a lane name targets that column, a numeric id targets an issue.
// Whether the issue exists is checked later by Resolve.
func ParseDropTarget(lanes []models.Column, raw string, side Side) (DropTarget, error) {
	if col, err := models.ParseColumn(lanes, raw); err == nil {
		return OnColumn(col), nil
	}
	id, err := types.ParseIssueID(strings.TrimSpace(raw))
	if err != nil {
		return DropTarget{}, fmt.Errorf("%w: %q", ErrInvalidTarget, raw)
	}
	return OnIssue(id, side), nil
}
