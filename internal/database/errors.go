package database

import "errors"

var (
	// ErrIssueNotFound indicates no issue row matched the requested id
	ErrIssueNotFound = errors.New("issue not found")

	// ErrLabelNotFound indicates no label row matched the requested id
	ErrLabelNotFound = errors.New("label not found")
)
