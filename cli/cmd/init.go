package cmd

import (
	"context"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/jsxc/log"
	"github.com/ardnew/jsxc/profile"
)

// Init writes the current flag values to the configuration file.
type Init struct {
	Force bool `help:"Overwrite existing configuration file" short:"f"`
}

// Run executes the init command.
func (i *Init) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	confPath := kongVar(ctx, ConfigIdentifier)
	if confPath == "" {
		panic("internal error: configuration path undefined")
	}

	if _, err := os.Stat(confPath); err == nil && !i.Force {
		return ErrWriteConfig.
			With(slog.String("file", confPath)).
			Wrap(ErrFileExists)
	}

	buf, err := yaml.MarshalWithOptions(i.settings(ctx), yaml.Indent(2))
	if err != nil {
		return ErrYAMLMarshal.Wrap(err)
	}

	if err := os.WriteFile(confPath, buf, 0o600); err != nil {
		return ErrWriteConfig.
			With(slog.String("file", confPath)).
			Wrap(err)
	}

	log.DebugContext(ctx, "initialized configuration file",
		slog.String("path", confPath),
	)

	return nil
}

// settings collects the value of every global flag, in declaration order.
// Help, version and profiling flags are omitted, as are empty values.
func (i *Init) settings(ctx context.Context) yaml.MapSlice {
	ktx := kongContextFrom(ctx)
	if ktx == nil {
		return nil
	}

	ignore := []string{"help", "version", profile.Tag}

	var out yaml.MapSlice

	for _, flag := range ktx.Model.Flags {
		if flag.Hidden || slices.ContainsFunc(ignore, func(s string) bool {
			return strings.HasPrefix(flag.Name, s)
		}) {
			continue
		}

		if v, ok := flagValue(ktx, flag); ok {
			out = append(out, yaml.MapItem{Key: flag.Name, Value: v})
		}
	}

	return out
}

// flagValue returns the value of flag as a YAML scalar or sequence.
func flagValue(ktx *kong.Context, flag *kong.Flag) (any, bool) {
	switch v := ktx.FlagValue(flag).(type) {
	case nil:
		return nil, false

	case string:
		return v, v != ""

	case []string:
		return v, len(v) > 0

	case bool, int, int64, uint, uint64, float64:
		return v, true

	default:
		if s, ok := v.(interface{ String() string }); ok {
			return s.String(), true
		}

		return v, true
	}
}
