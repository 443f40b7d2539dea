package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/sahilm/fuzzy"

	"github.com/ardnew/jsxc/jsx"
)

// Tree prints the parse tree of every fragment found in the sources.
type Tree struct {
	Format string `default:"outline" enum:"outline,json,yaml" help:"Output format (${enum})"                       short:"f"`
	Match  string `                                           help:"Show only nodes whose tag name fuzzy-matches" short:"m"`

	Sources []string `arg:"" help:"Input file(s) or '-' for stdin" name:"source" optional:"" type:"existingfile"`
}

// treeEntry describes one fragment.
type treeEntry struct {
	Source  string      `json:"source"            yaml:"source"`
	Line    int         `json:"line"              yaml:"line"`
	Root    *jsx.Node   `json:"root,omitempty"    yaml:"root,omitempty"`
	Matches []*jsx.Node `json:"matches,omitempty" yaml:"matches,omitempty"`
	Error   string      `json:"error,omitempty"   yaml:"error,omitempty"`
}

// Run executes the tree command.
func (t *Tree) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	srcs, err := sources(t.Sources)
	if err != nil {
		return err
	}

	var entries []treeEntry

	opts := optionsFrom(ctx)

	for _, src := range srcs {
		data, err := src.read()
		if err != nil {
			return err
		}

		entries = append(entries, t.collect(ctx, src.name, string(data), opts)...)
	}

	return writeTree(stdout, t.Format, entries)
}

// collect parses each fragment of input. In strict mode a malformed fragment
// is reported in its entry rather than aborting the listing.
func (t *Tree) collect(
	ctx context.Context,
	name, input string,
	opts []jsx.Option,
) []treeEntry {
	var entries []treeEntry

	strategy := jsx.NewConfig(opts...).Strategy()

	for f := range jsx.Fragments(input, strategy) {
		entry := treeEntry{
			Source: name,
			Line:   strings.Count(input[:f.Start], "\n") + 1,
		}

		root, err := jsx.Parse(ctx, f.Text, opts...)
		if err != nil {
			entry.Error = err.Error()
		}

		entry.Root = root

		if t.Match != "" {
			if entry.Matches = match(root, t.Match); len(entry.Matches) == 0 {
				continue
			}

			entry.Root = nil
		}

		entries = append(entries, entry)
	}

	return entries
}

// match returns the tagged nodes of root whose names fuzzy-match pattern,
// best match first.
func match(root *jsx.Node, pattern string) []*jsx.Node {
	if root == nil {
		return nil
	}

	var (
		nodes []*jsx.Node
		names []string
	)

	root.Walk(func(n *jsx.Node) bool {
		if n.Kind != jsx.KindText {
			nodes = append(nodes, n)
			names = append(names, n.Name)
		}

		return true
	})

	found := fuzzy.Find(pattern, names)
	out := make([]*jsx.Node, len(found))

	for i, m := range found {
		out[i] = nodes[m.Index]
	}

	return out
}

func writeTree(w io.Writer, format string, entries []treeEntry) error {
	switch format {
	case "json":
		buf, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return ErrJSONMarshal.Wrap(err)
		}

		_, err = fmt.Fprintf(w, "%s\n", buf)

		return err

	case "yaml":
		buf, err := yaml.Marshal(entries)
		if err != nil {
			return ErrYAMLMarshal.Wrap(err)
		}

		_, err = w.Write(buf)

		return err

	case "outline", "":
		var b strings.Builder

		for _, e := range entries {
			fmt.Fprintf(&b, "%s:%d", e.Source, e.Line)

			if e.Error != "" {
				fmt.Fprintf(&b, ": %s", e.Error)
			}

			b.WriteByte('\n')

			if e.Root != nil {
				outline(&b, e.Root, 1)
			}

			for _, n := range e.Matches {
				outline(&b, n, 1)
			}
		}

		_, err := io.WriteString(w, b.String())

		return err

	default:
		return ErrUnknownStyle.With(slog.String("format", format))
	}
}

// outline writes n and its descendants one per line, indented two spaces per
// level.
func outline(b *strings.Builder, n *jsx.Node, indent int) {
	b.WriteString(strings.Repeat("  ", indent))

	switch {
	case n.Kind == jsx.KindText && n.Expr:
		b.WriteString("{" + n.Text + "}")

	case n.Kind == jsx.KindText:
		b.WriteString(strconv.Quote(n.Text))

	default:
		b.WriteString(n.Name)

		for a := range n.Attributes.All() {
			b.WriteByte(' ')
			b.WriteString(attribute(a))
		}

		if n.IsRaw() {
			b.WriteString(" " + n.Raw)
		}
	}

	b.WriteByte('\n')

	for _, c := range n.Children {
		outline(b, c, indent+1)
	}
}

func attribute(a jsx.Attribute) string {
	switch {
	case a.Spread:
		return "{..." + a.Value.Text + "}"
	case a.Value.Raw:
		return a.Name + "={" + a.Value.Text + "}"
	default:
		return a.Name + "=" + strconv.Quote(a.Value.Text)
	}
}
