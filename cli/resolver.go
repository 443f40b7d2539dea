package cli

import (
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
)

// resolveYAML is a [kong.ConfigurationLoader] for YAML configuration files,
// as written by the init command.
//
// Keys are flag names. Nested mappings are joined with hyphens, so both of
// the following set --log-level:
//
//	log-level: debug
//
//	log:
//	  level: debug
//
// Underscores may be used in place of hyphens. Command-line flags override
// configuration values.
func resolveYAML(r io.Reader) (kong.Resolver, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var doc map[string]any
	if err := yaml.Unmarshal(buf, &doc); err != nil {
		return nil, err
	}

	out := make(config, len(doc))
	out.flatten("", doc)

	return out, nil
}

// config implements [kong.Resolver] for flattened configuration maps.
type config map[string]any

// Validate implements [kong.Resolver].
func (config) Validate(*kong.Application) error { return nil }

// Resolve implements [kong.Resolver].
// A nil value leaves the flag to its default.
func (c config) Resolve(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
	return c[flag.Name], nil
}

func (c config) flatten(prefix string, m map[string]any) {
	for k, v := range m {
		key := strings.ReplaceAll(k, "_", "-")
		if prefix != "" {
			key = prefix + "-" + key
		}

		if sub, ok := v.(map[string]any); ok {
			c.flatten(key, sub)

			continue
		}

		c[key] = scalar(v)
	}
}

// scalar converts numbers to strings, which Kong parses with the flag's
// own mapper.
func scalar(v any) any {
	switch v := v.(type) {
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = scalar(e)
		}

		return out
	default:
		return v
	}
}
