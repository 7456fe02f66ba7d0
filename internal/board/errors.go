package board

import "errors"

// Validation errors reported before any state changes
var (
	// ErrNotFound indicates the dragged issue is not in the working set
	ErrNotFound = errors.New("issue not found in working set")

	// ErrInvalidTarget indicates the drop target is neither a known issue nor a configured column
	ErrInvalidTarget = errors.New("drop target is neither a known issue nor a column")

	// ErrNoChange indicates the drop leaves the issue where it already is
	ErrNoChange = errors.New("drop does not change the issue's placement")
)
