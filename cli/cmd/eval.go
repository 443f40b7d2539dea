package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/jsxc/jsx"
	"github.com/ardnew/jsxc/log"
	"github.com/ardnew/jsxc/vdom"
)

// Eval transforms the first fragment of a source and evaluates the generated expression into a
// descriptor tree.
type Eval struct {
	Data   string `help:"YAML file of identifiers visible to the expression" short:"d" type:"existingfile"`
	Format string `default:"html" enum:"html,json,yaml" help:"Output format (${enum})" short:"f"`

	Source string `arg:"" default:"-" help:"Input file or '-' for stdin" name:"source" optional:"" type:"existingfile"`
}

// Run executes the eval command.
func (e *Eval) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	srcs, err := sources([]string{e.Source})
	if err != nil {
		return err
	}

	env, err := loadData(e.Data)
	if err != nil {
		return err
	}

	src := srcs[0]
	opts := optionsFrom(ctx)

	data, err := src.read()
	if err != nil {
		return err
	}

	code, err := firstFragment(ctx, src.name, string(data), opts)
	if err != nil {
		return err
	}

	log.TraceContext(ctx, "evaluating", slog.String("code", code))

	d, err := vdom.Evaluate(ctx, code, env, opts...)
	if err != nil {
		return err
	}

	return writeDescriptor(stdout, e.Format, d)
}

// firstFragment returns the call expression of the first fragment in input.
// Script text around the fragment is discarded.
func firstFragment(
	ctx context.Context,
	name, input string,
	opts []jsx.Option,
) (string, error) {
	strategy := jsx.NewConfig(opts...).Strategy()

	for f := range jsx.Fragments(input, strategy) {
		code, err := jsx.Transform(ctx, f.Text, opts...)
		if err != nil {
			return "", ErrTransform.Wrap(err).With(slog.String("source", name))
		}

		return strings.TrimSpace(code), nil
	}

	return "", ErrNoFragment.With(slog.String("source", name))
}

// loadData decodes the YAML mapping at path. An empty path yields no
// bindings.
func loadData(path string) (map[string]any, error) {
	if path == "" {
		return nil, nil
	}

	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, ErrYAMLData.Wrap(err).With(slog.String("file", path))
	}

	var env map[string]any
	if err := yaml.Unmarshal(buf, &env); err != nil {
		return nil, ErrYAMLData.Wrap(err).With(slog.String("file", path))
	}

	return env, nil
}

func writeDescriptor(w io.Writer, format string, d *vdom.Descriptor) error {
	switch format {
	case "html", "":
		if err := d.WriteHTML(w); err != nil {
			return err
		}

		_, err := io.WriteString(w, "\n")

		return err

	case "json":
		buf, err := json.MarshalIndent(d, "", "  ")
		if err != nil {
			return ErrJSONMarshal.Wrap(err)
		}

		_, err = fmt.Fprintf(w, "%s\n", buf)

		return err

	case "yaml":
		buf, err := yaml.Marshal(d)
		if err != nil {
			return ErrYAMLMarshal.Wrap(err)
		}

		_, err = w.Write(buf)

		return err

	default:
		return ErrUnknownStyle.With(slog.String("format", format))
	}
}
