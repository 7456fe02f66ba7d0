package events

import (
	"time"

	"github.com/thenoetrevino/issueboard/internal/models"
	"github.com/thenoetrevino/issueboard/internal/types"
)

// EventType indicates what happened to a move
type EventType string

const (
	EventMoveApplied    EventType = "move_applied"
	EventMoveCommitted  EventType = "move_committed"
	EventMoveRolledBack EventType = "move_rolled_back"
	EventMoveSuperseded EventType = "move_superseded"
	EventResynced       EventType = "resynced"
	EventResyncFailed   EventType = "resync_failed"
)

// Event is a notification about the working set, published by the move service
type Event struct {
	Type       EventType
	MoveID     uint64        `json:",omitempty"`
	IssueID    types.IssueID `json:",omitempty"`
	Column     models.Column `json:",omitempty"`
	Position   float64       `json:",omitempty"`
	Error      string        `json:",omitempty"` // Set on rollback and failed resync
	Timestamp  time.Time     // When the event occurred
	SequenceID int64         // Monotonically increasing, assigned by the bus
}
