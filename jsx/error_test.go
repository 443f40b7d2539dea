package jsx

import (
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
)

func TestError(t *testing.T) {
	t.Parallel()

	pos := Position{Offset: 4, Line: 2, Column: 3}
	err := ErrUnterminatedTag.WithPosition(pos).With(slog.String("tag", "div"))

	if got, want := err.Error(), "unterminated tag at 2:3"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	if !errors.Is(err, ErrUnterminatedTag) {
		t.Error("derived error does not match its sentinel")
	}

	if errors.Is(err, ErrUnbalancedExpression) {
		t.Error("error matches a sentinel of another kind")
	}

	if p, ok := err.Position(); !ok || p != pos {
		t.Errorf("Position() = %v, %v", p, ok)
	}

	wrapped := ErrReadInput.Wrap(io.ErrUnexpectedEOF)
	if !errors.Is(wrapped, io.ErrUnexpectedEOF) {
		t.Error("Wrap() lost the cause")
	}

	if got, want := wrapped.Error(), "failed to read input: unexpected EOF"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestError_LogValue(t *testing.T) {
	t.Parallel()

	err := ErrUnmatchedClosingTag.
		WithPosition(Position{Line: 1, Column: 9}).
		With(slog.String("tag", "span"))

	var b strings.Builder

	logger := slog.New(slog.NewTextHandler(&b, nil))
	logger.Info("fault", slog.Any("err", err))

	for _, want := range []string{
		"err.error=\"unmatched closing tag\"",
		"err.kind=UnmatchedClosingTag",
		"err.pos=1:9",
		"err.tag=span",
	} {
		if !strings.Contains(b.String(), want) {
			t.Errorf("log output %q missing %q", b.String(), want)
		}
	}
}
