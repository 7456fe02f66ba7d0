package cli

import (
	"context"
	"errors"
)

// Loader builds the CLI for a command. The root command installs one that
// reads the user's config; tests install their own.
type Loader func(ctx context.Context) (*CLI, error)

type loaderKey struct{}

// WithLoader returns a context carrying loader
func WithLoader(ctx context.Context, loader Loader) context.Context {
	return context.WithValue(ctx, loaderKey{}, loader)
}

// GetCLIFromContext builds the CLI with the loader stored in ctx.
// The caller owns the result and must Close it.
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx == nil {
		return nil, errors.New("no command context")
	}
	loader, ok := ctx.Value(loaderKey{}).(Loader)
	if !ok || loader == nil {
		return nil, errors.New("no CLI loader in context")
	}
	return loader(ctx)
}
