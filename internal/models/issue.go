package models

import (
	"time"

	"github.com/thenoetrevino/issueboard/internal/types"
)

// Issue is a single card on the board.
// Column and Position are the only fields the reordering engine reads or writes;
// the rest is carried through for the presentation layer.
type Issue struct {
	ID          types.IssueID `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Column      Column        `json:"status"`
	Priority    Priority      `json:"priority"`
	AssigneeID  *types.UserID `json:"assignee_id,omitempty"`
	Position    float64       `json:"order_index"`
	Labels      []*Label      `json:"labels,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// Placement is the (column, position) pair that identifies where an issue sits
type Placement struct {
	Column   Column  `json:"column"`
	Position float64 `json:"position"`
}

// Placement returns the issue's current placement
func (i Issue) Placement() Placement {
	return Placement{Column: i.Column, Position: i.Position}
}

// GetID lets the CLI formatter print issues in quiet mode
func (i Issue) GetID() int {
	return int(i.ID)
}

// Clone returns a copy that shares no mutable state with the original
func (i Issue) Clone() Issue {
	out := i
	if i.AssigneeID != nil {
		id := *i.AssigneeID
		out.AssigneeID = &id
	}
	if i.Labels != nil {
		out.Labels = make([]*Label, len(i.Labels))
		for n, l := range i.Labels {
			lc := *l
			out.Labels[n] = &lc
		}
	}
	return out
}

// User is an issue assignee
type User struct {
	ID        types.UserID `json:"id"`
	Name      string       `json:"name"`
	AvatarURL string       `json:"avatar_url"`
}
