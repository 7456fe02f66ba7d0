package models

import "errors"

// Domain-specific errors shared by the store adapters
var (
	// ErrUnknownColumn indicates a column name outside the configured lane set
	ErrUnknownColumn = errors.New("unknown column")

	// ErrEmptyTitle indicates an issue was created without a title
	ErrEmptyTitle = errors.New("issue title cannot be empty")
)
