package move

import (
	"errors"
	"fmt"

	"github.com/thenoetrevino/issueboard/internal/types"
)

// Move-related errors
var (
	// ErrMovePending indicates a drop on an issue whose previous move is still
	// being persisted, under the reject policy
	ErrMovePending = errors.New("issue has a move that is still being saved")

	// ErrPersistenceFailure matches every *PersistenceError
	ErrPersistenceFailure = errors.New("failed to persist move")

	// ErrInvalidPolicy indicates an unknown pending policy name
	ErrInvalidPolicy = errors.New("invalid pending policy")
)

// PersistenceError reports that the store rejected or could not be reached for
// a move. The working set has already been rolled back when callers see it.
type PersistenceError struct {
	MoveID  uint64
	IssueID types.IssueID
	Err     error
}

// Error implements the error interface.
func (e *PersistenceError) Error() string {
	return fmt.Sprintf("move %d of issue %s failed, reverted: %v", e.MoveID, e.IssueID, e.Err)
}

// Unwrap exposes the store error
func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrPersistenceFailure) true for any PersistenceError
func (e *PersistenceError) Is(target error) bool {
	return target == ErrPersistenceFailure
}
