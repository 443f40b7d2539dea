// Package cli contains the command line interface for jsxc.
//
// # Commands
//
//   - transform (default): replace the markup fragments in each source with
//     call expressions and print the result, or write it back with -w
//   - tree: print the parse tree of each fragment as an outline, JSON or YAML
//   - eval: evaluate the first fragment of a source into markup
//   - play: edit a fragment interactively, viewing its output as you type
//   - init: write the current flag values to the configuration file
//
// # Configuration
//
// Flag defaults are read from config.json and config.yaml in the user
// configuration directory (for example ~/.config/jsxc). The YAML file uses
// flag names as keys; nested mappings are joined with hyphens:
//
//	log:
//	  level: debug
//	text-label: h
//
// # Code Generation Options
//
//   - --component-label, --element-label, --text-label: constructor names
//   - --label: one constructor for components and elements, text left bare
//   - --locator: fragment locator (scoped, pattern)
//   - --strict: fail on malformed fragments
//   - --[no-]cache: reuse rendered fragments
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (json, text)
//   - --log-time-layout: Set timestamp format (RFC3339, Kitchen, none, ...)
//   - --log-caller: Include caller information in log output
//   - --[no-]log-pretty: Colorize log output
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof -o jsxc .
//
// Such a build accepts the following flags:
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default ~/.cache/jsxc/pprof)
//
// # Examples
//
//	# Transform a file with a shorthand constructor
//	jsxc --label=h view.jsx
//
//	# Rewrite sources in place, failing on malformed markup
//	jsxc transform --strict -w src/*.jsx
//
//	# Render a fragment with bound identifiers
//	jsxc eval -d data.yaml card.jsx
package cli
