package models

import "github.com/thenoetrevino/issueboard/internal/types"

// Label is a colored tag attached to issues
type Label struct {
	ID    types.LabelID `json:"id"`
	Name  string        `json:"name"`
	Color string        `json:"color"` // Hex color code (e.g., "#7D56F4")
}
