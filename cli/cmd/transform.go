package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/ardnew/jsxc/jsx"
	"github.com/ardnew/jsxc/log"
)

// Transform replaces the markup fragments in each source with call
// expressions.
type Transform struct {
	Output string `help:"Write output to file instead of stdout"        short:"o" type:"path"   xor:"dest"`
	Write  bool   `help:"Write each result back to its source file"     short:"w"               xor:"dest"`

	Sources []string `arg:"" help:"Input file(s) or '-' for stdin" name:"source" optional:"" type:"existingfile"`
}

// Run executes the transform command.
func (t *Transform) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	srcs, err := sources(t.Sources)
	if err != nil {
		return err
	}

	out := stdout

	if t.Output != "" {
		f, cerr := create(t.Output)
		if cerr != nil {
			return ErrWriteOutput.Wrap(cerr).With(slog.String("file", t.Output))
		}

		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = ErrWriteOutput.Wrap(cerr).With(slog.String("file", t.Output))
			}
		}()

		out = f
	}

	opts := optionsFrom(ctx)

	for _, src := range srcs {
		if t.Write && src.isStdin() {
			return ErrWriteStdin
		}

		text, err := transformSource(ctx, src, opts)
		if err != nil {
			return err
		}

		if t.Write {
			err = writeBack(src, text)
		} else {
			_, err = io.WriteString(out, text)
		}

		if err != nil {
			return ErrWriteOutput.Wrap(err).With(slog.String("source", src.name))
		}
	}

	return nil
}

func transformSource(ctx context.Context, src source, opts []jsx.Option) (string, error) {
	data, err := src.read()
	if err != nil {
		return "", err
	}

	text, err := jsx.Transform(ctx, string(data), opts...)
	if err != nil {
		return "", ErrTransform.Wrap(err).With(slog.String("source", src.name))
	}

	log.DebugContext(ctx, "transformed",
		slog.String("source", src.name),
		slog.Int("input_bytes", len(data)),
		slog.Int("output_bytes", len(text)),
	)

	return text, nil
}

// writeBack replaces the content of src, keeping its permissions.
func writeBack(src source, text string) error {
	info, err := os.Stat(src.path)
	if err != nil {
		return err
	}

	return os.WriteFile(src.path, []byte(text), info.Mode().Perm())
}
