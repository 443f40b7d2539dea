// Package log wraps [log/slog] with a small, immutable configuration layer.
//
// A [Logger] is created once with functional options and never mutated;
// [Logger.Wrap] and [Logger.With] return derived loggers. Messages are typed
// [slog.Attr] lists rather than alternating key/value arguments:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithFormat(log.FormatText),
//		log.WithTimeLayout("kitchen"))
//
//	logger.Debug("parsed fragment", slog.Int("nodes", 3))
//
// # Levels
//
// Besides the four levels of [log/slog] the package defines [LevelTrace],
// used for per-token diagnostics. Level names are printed in upper case
// ("TRACE", "DEBUG", ...).
//
// # Pretty output
//
// With [WithPretty] enabled (the default), messages are styled with
// lipgloss. Styling degrades to plain text when the output is not a
// terminal. Grouped attributes are flattened to dotted keys.
//
// # Package logger
//
// The package-level functions ([Info], [DebugContext], ...) log through a
// shared default logger writing to standard error. [Config] reconfigures it.
// Functions without a context argument use [DefaultContextProvider].
package log
