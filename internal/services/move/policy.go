package move

import (
	"fmt"
	"strings"
)

// Policy decides what happens when an issue is dropped again while its
// previous move is still pending
type Policy string

const (
	// PolicyReject fails the new drop with ErrMovePending
	PolicyReject Policy = "reject"

	// PolicySupersede applies the new drop; the older move's outcome is then
	// ignored for the issues the new move took over
	PolicySupersede Policy = "supersede"
)

// ParsePolicy maps a config value to a Policy. Empty means reject.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(strings.ToLower(strings.TrimSpace(s))) {
	case "", PolicyReject:
		return PolicyReject, nil
	case PolicySupersede:
		return PolicySupersede, nil
	}
	return "", fmt.Errorf("%w %q (must be: reject, supersede)", ErrInvalidPolicy, s)
}
