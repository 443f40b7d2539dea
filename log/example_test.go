package log_test

import (
	"log/slog"
	"os"

	"github.com/ardnew/jsxc/log"
)

func Example() {
	logger := log.Make(os.Stdout,
		log.WithFormat(log.FormatText),
		log.WithTimeLayout("none"),
		log.WithPretty(false))

	logger.Info("rendered fragment", slog.Int("nodes", 3))
	logger.Debug("suppressed below info")

	// Output:
	// level=INFO msg="rendered fragment" nodes=3
}

func ExampleLogger_With() {
	logger := log.Make(os.Stdout,
		log.WithLevel(log.LevelTrace),
		log.WithTimeLayout("none"),
		log.WithPretty(false))

	logger = logger.With(slog.String("locator", "scoped"))
	logger.Trace("found fragment", slog.Int("start", 7))

	// Output:
	// {"level":"TRACE","msg":"found fragment","locator":"scoped","start":7}
}
