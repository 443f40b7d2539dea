package cli

import (
	"slices"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/jsxc/jsx"
	"github.com/ardnew/jsxc/log"
)

// genConfig holds the code generation flags shared by every command.
type genConfig struct {
	ComponentLabel string `default:"${componentLabel}" help:"Constructor for component nodes"`
	ElementLabel   string `default:"${elementLabel}"   help:"Constructor for element nodes"`
	TextLabel      string `default:"${textLabel}"      help:"Constructor for text nodes (empty for bare content)"`
	Label          string `                            help:"Constructor for all tagged nodes, leaving text bare" short:"l"`
	Locator        string `default:"scoped"            enum:"${locatorEnum}" help:"Fragment locator (${enum})"`
	Strict         bool   `                            help:"Fail on malformed fragments"                                        short:"S"`
	Cache          bool   `default:"true"              help:"Cache rendered fragments"                                           negatable:""`
}

func (genConfig) vars() kong.Vars {
	labels := jsx.DefaultLabels()

	return kong.Vars{
		"componentLabel": labels.Component,
		"elementLabel":   labels.Element,
		"textLabel":      labels.Text,
		"locatorEnum":    strings.Join(slices.Collect(jsx.Strategies()), ","),
	}
}

func (genConfig) group() kong.Group {
	var group kong.Group

	group.Key = "gen"
	group.Title = "Code generation options"

	return group
}

// options returns the generator options selected by the flags. The logger is
// the package default at the time of the call.
func (g genConfig) options() []jsx.Option {
	opts := []jsx.Option{
		jsx.WithComponentLabel(g.ComponentLabel),
		jsx.WithElementLabel(g.ElementLabel),
		jsx.WithTextLabel(g.TextLabel),
		jsx.WithStrict(g.Strict),
		jsx.WithCache(g.Cache),
		jsx.WithLogger(log.Default()),
	}

	if g.Label != "" {
		opts = append(opts, jsx.WithLabel(g.Label))
	}

	if s, err := jsx.ParseStrategy(g.Locator); err == nil {
		opts = append(opts, jsx.WithLocator(s))
	}

	return opts
}
