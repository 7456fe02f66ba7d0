// Package user names the person running the CLI, used as the default
// assignee when seeding a board
package user

import (
	"os"
	"os/user"
	"strings"
)

// lookup is replaced in tests
var lookup = user.Current

// DisplayName returns the current user's full name, falling back to the
// login name, then $USER, then "unknown". It never returns "".
func DisplayName() string {
	if u, err := lookup(); err == nil {
		if name := strings.TrimSpace(strings.SplitN(u.Name, ",", 2)[0]); name != "" {
			return name
		}
		if u.Username != "" {
			return u.Username
		}
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "unknown"
}
