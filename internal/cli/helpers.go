package cli

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/thenoetrevino/issueboard/internal/models"
)

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// ValidateColorHex validates that a color string is in valid hex format #RRGGBB
func ValidateColorHex(color string) error {
	if !hexColor.MatchString(color) {
		return fmt.Errorf("color must be in hex format #RRGGBB (e.g., #FF0000), got: %s", color)
	}
	return nil
}

// ParsePriority maps a priority string to the API's spelling
func ParsePriority(priority string) (models.Priority, error) {
	priorities := map[string]models.Priority{
		"low":      models.PriorityLow,
		"med":      models.PriorityMed,
		"medium":   models.PriorityMed,
		"high":     models.PriorityHigh,
		"critical": models.PriorityCritical,
	}

	p, ok := priorities[strings.ToLower(strings.TrimSpace(priority))]
	if !ok {
		return "", fmt.Errorf("invalid priority '%s' (must be: low, med, high, critical)", priority)
	}
	return p, nil
}

// FormatAvailableColumns lists lanes for error suggestions
func FormatAvailableColumns(lanes []models.Column) string {
	names := make([]string, len(lanes))
	for i, c := range lanes {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}
