package cmd

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/ardnew/jsxc/jsx"
)

const (
	brSource = "x = <br/>;\n"
	brOutput = "x = VElement('br', null,\n\tnull\n);\n"
)

func TestTransformStdin(t *testing.T) {
	out := withStreams(t, brSource)

	if err := (&Transform{}).Run(context.Background()); err != nil {
		t.Fatalf("Transform.Run() error = %v", err)
	}

	if got := out.String(); got != brOutput {
		t.Errorf("stdout = %q, want %q", got, brOutput)
	}
}

func TestTransformFiles(t *testing.T) {
	out := withStreams(t, "")

	dir := t.TempDir()
	a := writeFile(t, dir, "a.jsx", brSource)
	b := writeFile(t, dir, "b.js", "let y = 1;\n")

	if err := (&Transform{Sources: []string{a, b, a}}).Run(context.Background()); err != nil {
		t.Fatalf("Transform.Run() error = %v", err)
	}

	if want := brOutput + "let y = 1;\n"; out.String() != want {
		t.Errorf("stdout = %q, want %q", out.String(), want)
	}
}

func TestTransformOptions(t *testing.T) {
	out := withStreams(t, "<Foo/>")

	ctx := WithOptions(context.Background(), jsx.WithLabel("h"))
	if err := (&Transform{}).Run(ctx); err != nil {
		t.Fatal(err)
	}

	if want := "h('Foo', null,\n\tnull\n)"; out.String() != want {
		t.Errorf("stdout = %q, want %q", out.String(), want)
	}
}

func TestTransformOutputFile(t *testing.T) {
	out := withStreams(t, brSource)

	dest := filepath.Join(t.TempDir(), "out.js")

	if err := (&Transform{Output: dest}).Run(context.Background()); err != nil {
		t.Fatal(err)
	}

	if out.Len() != 0 {
		t.Errorf("stdout = %q, want nothing", out.String())
	}

	got, err := os.ReadFile(dest)
	if err != nil {
		t.Fatal(err)
	}

	if string(got) != brOutput {
		t.Errorf("output file = %q, want %q", got, brOutput)
	}
}

type failingCloser struct{ bytes.Buffer }

func (*failingCloser) Close() error { return os.ErrClosed }

func TestTransformOutputCloseError(t *testing.T) {
	withStreams(t, brSource)

	var dest failingCloser

	old := create
	create = func(string) (io.WriteCloser, error) { return &dest, nil }

	t.Cleanup(func() { create = old })

	err := (&Transform{Output: "out.js"}).Run(context.Background())
	if !errors.Is(err, ErrWriteOutput) || !errors.Is(err, os.ErrClosed) {
		t.Errorf("Transform.Run() error = %v, want %v wrapping %v",
			err, ErrWriteOutput, os.ErrClosed)
	}

	if got := dest.String(); got != brOutput {
		t.Errorf("output = %q, want %q", got, brOutput)
	}
}

func TestTransformWriteBack(t *testing.T) {
	withStreams(t, "")

	path := writeFile(t, t.TempDir(), "a.jsx", brSource)
	if err := os.Chmod(path, 0o640); err != nil {
		t.Fatal(err)
	}

	if err := (&Transform{Write: true, Sources: []string{path}}).Run(context.Background()); err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if string(got) != brOutput {
		t.Errorf("rewritten file = %q, want %q", got, brOutput)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}

	if perm := info.Mode().Perm(); perm != 0o640 {
		t.Errorf("permissions = %v, want %v", perm, os.FileMode(0o640))
	}
}

func TestTransformWriteStdin(t *testing.T) {
	withStreams(t, brSource)

	err := (&Transform{Write: true}).Run(context.Background())
	if !errors.Is(err, ErrWriteStdin) {
		t.Errorf("Transform.Run() error = %v, want %v", err, ErrWriteStdin)
	}
}

func TestTransformStrictError(t *testing.T) {
	withStreams(t, `x = (<div><p></span></div>);`)

	ctx := WithOptions(context.Background(), jsx.WithStrict(true))

	err := (&Transform{}).Run(ctx)
	if !errors.Is(err, ErrTransform) {
		t.Errorf("Transform.Run() error = %v, want %v", err, ErrTransform)
	}
}
