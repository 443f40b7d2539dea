package cmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ardnew/jsxc/jsx"
)

// withStreams replaces the standard streams for the duration of a test.
// Tests using it must not run in parallel.
func withStreams(t *testing.T, in string) *bytes.Buffer {
	t.Helper()

	var out bytes.Buffer

	oldIn, oldOut := stdin, stdout
	stdin, stdout = strings.NewReader(in), &out

	t.Cleanup(func() { stdin, stdout = oldIn, oldOut })

	return &out
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	return path
}

func names(srcs []source) []string {
	out := make([]string, len(srcs))
	for i, s := range srcs {
		out[i] = s.name
	}

	return out
}

// TestSourcesEmpty tests that no paths select stdin.
func TestSourcesEmpty(t *testing.T) {
	t.Parallel()

	for _, paths := range [][]string{nil, {}, {"-"}, {"-", "-"}} {
		srcs, err := sources(paths)
		if err != nil {
			t.Fatalf("sources(%q) error = %v", paths, err)
		}

		if len(srcs) != 1 || !srcs[0].isStdin() {
			t.Errorf("sources(%q) = %q, want stdin only", paths, names(srcs))
		}
	}
}

// TestSourcesDuplicates tests that paths naming the same file are read once,
// whether repeated, relative, or linked.
func TestSourcesDuplicates(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	a := writeFile(t, dir, "a.jsx", "<a/>")
	b := writeFile(t, dir, "b.jsx", "<b/>")

	link := filepath.Join(dir, "link.jsx")
	if err := os.Symlink(a, link); err != nil {
		t.Skipf("symlink: %v", err)
	}

	srcs, err := sources([]string{a, b, a, link, filepath.Join(dir, ".", "b.jsx")})
	if err != nil {
		t.Fatal(err)
	}

	if got := names(srcs); len(got) != 2 || got[0] != a || got[1] != b {
		t.Errorf("sources() = %q, want [%q %q]", got, a, b)
	}
}

// TestSourcesStdinLast tests that stdin is read after every named file.
func TestSourcesStdinLast(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	a := writeFile(t, dir, "a.jsx", "")
	b := writeFile(t, dir, "b.jsx", "")

	srcs, err := sources([]string{"-", a, "-", b})
	if err != nil {
		t.Fatal(err)
	}

	got := names(srcs)
	if want := []string{a, b, "-"}; strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("sources() = %q, want %q", got, want)
	}
}

// TestSourcesNonexistent tests that a missing file is an error.
func TestSourcesNonexistent(t *testing.T) {
	t.Parallel()

	_, err := sources([]string{filepath.Join(t.TempDir(), "missing.jsx")})
	if !errors.Is(err, ErrOpenSource) {
		t.Errorf("sources() error = %v, want %v", err, ErrOpenSource)
	}
}

func TestSourceRead(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "a.jsx", "x = <br/>;")

	data, err := source{name: "a.jsx", path: path}.read()
	if err != nil {
		t.Fatal(err)
	}

	if string(data) != "x = <br/>;" {
		t.Errorf("read() = %q", data)
	}
}

func TestOptionsContext(t *testing.T) {
	t.Parallel()

	if opts := optionsFrom(context.Background()); opts != nil {
		t.Errorf("optionsFrom(empty) = %v, want nil", opts)
	}

	ctx := WithOptions(context.Background(), jsx.WithStrict(true), jsx.WithLabel("h"))
	if got := jsx.NewConfig(optionsFrom(ctx)...); !got.Strict() || got.Labels().Element != "h" {
		t.Errorf("options not carried: strict=%v labels=%+v", got.Strict(), got.Labels())
	}

	if v := kongVar(ctx, ConfigIdentifier); v != "" {
		t.Errorf("kongVar() without kong context = %q", v)
	}
}
