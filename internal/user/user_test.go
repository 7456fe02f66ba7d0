package user

import (
	"errors"
	"os/user"
	"testing"

	"github.com/stretchr/testify/assert"
)

func withLookup(t *testing.T, fn func() (*user.User, error)) {
	t.Helper()
	orig := lookup
	lookup = fn
	t.Cleanup(func() { lookup = orig })
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name string
		u    *user.User
		err  error
		env  string
		want string
	}{
		{name: "full name", u: &user.User{Name: "Ada Lovelace", Username: "ada"}, want: "Ada Lovelace"},
		{name: "gecos fields trimmed", u: &user.User{Name: "Ada Lovelace,,,", Username: "ada"}, want: "Ada Lovelace"},
		{name: "login name when no full name", u: &user.User{Username: "ada"}, want: "ada"},
		{name: "USER when lookup fails", err: errors.New("no passwd"), env: "grace", want: "grace"},
		{name: "unknown as last resort", err: errors.New("no passwd"), want: "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withLookup(t, func() (*user.User, error) { return tt.u, tt.err })
			t.Setenv("USER", tt.env)
			assert.Equal(t, tt.want, DisplayName())
		})
	}
}
