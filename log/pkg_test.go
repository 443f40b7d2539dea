package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestPackage_UsesDefaultLogger(t *testing.T) {
	original := Default()
	t.Cleanup(func() { SetDefault(original) })

	var buf bytes.Buffer

	Config(WithOutput(&buf), WithLevel(LevelTrace), WithPretty(false))

	tests := []struct {
		name  string
		log   func(string, ...slog.Attr)
		level string
	}{
		{"Trace", Trace, "TRACE"},
		{"Debug", Debug, "DEBUG"},
		{"Info", Info, "INFO"},
		{"Warn", Warn, "WARN"},
		{"Error", Error, "ERROR"},
		{"InfoContext", func(msg string, attrs ...slog.Attr) {
			InfoContext(t.Context(), msg, attrs...)
		}, "INFO"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			tt.log("package message", slog.String("key", "value"))

			out := buf.String()
			for _, want := range []string{"package message", `"level":"` + tt.level + `"`, `"key":"value"`} {
				if !strings.Contains(out, want) {
					t.Errorf("output %q missing %q", out, want)
				}
			}
		})
	}
}

func TestPackage_Caller(t *testing.T) {
	original := Default()
	t.Cleanup(func() { SetDefault(original) })

	var buf bytes.Buffer

	Config(WithOutput(&buf), WithCaller(true), WithFormat(FormatText), WithPretty(false))
	Info("message")

	if !strings.Contains(buf.String(), "pkg_test.go:") {
		t.Errorf("output %q does not name the calling file", buf.String())
	}
}
