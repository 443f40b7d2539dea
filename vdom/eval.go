package vdom

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/ardnew/jsxc/jsx"
)

// Predefined errors (sentinel values).
var (
	ErrCompile       = jsx.NewError("failed to compile expression")
	ErrEvaluate      = jsx.NewError("failed to evaluate expression")
	ErrArguments     = jsx.NewError("invalid constructor arguments")
	ErrNotDescriptor = jsx.NewError("expression did not produce a descriptor")
)

// Evaluate compiles and runs code, which must be a single call expression as
// produced by [jsx.Transform] under the configuration built from opts. The
// label functions and the identifier null are bound in addition to env.
// Identifiers missing from env evaluate to nil.
func Evaluate(
	ctx context.Context,
	code string,
	env map[string]any,
	opts ...jsx.Option,
) (*Descriptor, error) {
	program, err := Compile(code, env, opts...)
	if err != nil {
		return nil, err
	}

	return Run(ctx, program, env)
}

// Compile compiles code for repeated evaluation with [Run].
func Compile(code string, env map[string]any, opts ...jsx.Option) (*vm.Program, error) {
	labels := jsx.NewConfig(opts...).Labels()

	options := []expr.Option{
		expr.Env(environment(env)),
		expr.AllowUndefinedVariables(),
	}

	for name, fn := range constructors(labels) {
		options = append(options, expr.Function(name, fn))
	}

	program, err := expr.Compile(code, options...)
	if err != nil {
		return nil, ErrCompile.Wrap(err).With(slog.Int("length", len(code)))
	}

	return program, nil
}

// Run evaluates a compiled program.
func Run(ctx context.Context, program *vm.Program, env map[string]any) (*Descriptor, error) {
	if err := ctx.Err(); err != nil {
		return nil, ErrEvaluate.Wrap(err)
	}

	result, err := vm.Run(program, environment(env))
	if err != nil {
		return nil, ErrEvaluate.Wrap(err)
	}

	switch children := Children(result); len(children) {
	case 1:
		return children[0], nil

	default:
		return nil, ErrNotDescriptor.With(
			slog.String("type", fmt.Sprintf("%T", result)),
			slog.Int("nodes", len(children)),
		)
	}
}

func environment(env map[string]any) map[string]any {
	out := make(map[string]any, len(env)+1)
	for k, v := range env {
		out[k] = v
	}

	out["null"] = nil

	return out
}

type constructor = func(params ...any) (any, error)

// constructors binds each non-empty label to its constructor. When the
// element and component labels coincide, one function classifies by name.
func constructors(labels jsx.Labels) map[string]constructor {
	fns := make(map[string]constructor, 3)

	if labels.Element != "" {
		fns[labels.Element] = node(jsx.KindElement)
	}

	if labels.Component != "" {
		if labels.Component == labels.Element {
			fns[labels.Component] = node(-1)
		} else {
			fns[labels.Component] = node(jsx.KindComponent)
		}
	}

	if labels.Text != "" {
		fns[labels.Text] = text
	}

	return fns
}

// node returns the constructor for kind. A negative kind is derived from the
// type name.
func node(kind jsx.Kind) constructor {
	return func(params ...any) (any, error) {
		if len(params) == 0 || len(params) > 3 {
			return nil, ErrArguments.With(slog.Int("count", len(params)))
		}

		typ, ok := params[0].(string)
		if !ok {
			return nil, ErrArguments.With(
				slog.String("type", fmt.Sprintf("%T", params[0])),
			)
		}

		d := &Descriptor{Kind: kind, Type: typ}
		if kind < 0 {
			d.Kind = jsx.KindOf(typ)
		}

		if len(params) > 1 {
			switch props := params[1].(type) {
			case nil:

			case map[string]any:
				d.Props = props

			default:
				return nil, ErrArguments.With(
					slog.String("props", fmt.Sprintf("%T", props)),
				)
			}
		}

		if len(params) > 2 {
			d.Children = Children(params[2])
		}

		return d, nil
	}
}

func text(params ...any) (any, error) {
	if len(params) != 1 {
		return nil, ErrArguments.With(slog.Int("count", len(params)))
	}

	return NewText(params[0]), nil
}
