package cmd

import (
	"context"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/ardnew/jsxc/jsx"
)

// Standard streams and output file creation, replaced in tests.
var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout

	create = func(name string) (io.WriteCloser, error) { return os.Create(name) }
)

type (
	contextKey struct{}
	optionsKey struct{}
)

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

// WithOptions returns a new context.Context carrying the generator options
// applied by every command.
func WithOptions(ctx context.Context, opts ...jsx.Option) context.Context {
	return context.WithValue(ctx, optionsKey{}, opts)
}

func optionsFrom(ctx context.Context) []jsx.Option {
	opts, _ := ctx.Value(optionsKey{}).([]jsx.Option)

	return opts
}

// kongVar returns the value of the kong variable name, or "" when ctx
// carries no kong context.
func kongVar(ctx context.Context, name string) string {
	ktx := kongContextFrom(ctx)
	if ktx == nil {
		return ""
	}

	return ktx.Model.Vars()[name]
}
