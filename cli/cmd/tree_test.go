package cmd

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/jsxc/jsx"
)

const treeSource = "a = 1;\nview = <ul class=\"x\" {...rest}>\n  <Item key={k} />\n  Hi {name}\n</ul>;\n"

func TestTreeOutline(t *testing.T) {
	out := withStreams(t, treeSource)

	if err := (&Tree{Format: "outline"}).Run(context.Background()); err != nil {
		t.Fatalf("Tree.Run() error = %v", err)
	}

	want := "-:2\n" +
		"  ul class=\"x\" {...rest}\n" +
		"    Item key={k}\n" +
		"    \"Hi\"\n" +
		"    {name}\n"

	if got := out.String(); got != want {
		t.Errorf("outline =\n%s\nwant\n%s", got, want)
	}
}

func TestTreeMatch(t *testing.T) {
	out := withStreams(t, treeSource)

	if err := (&Tree{Format: "outline", Match: "itm"}).Run(context.Background()); err != nil {
		t.Fatal(err)
	}

	if want := "-:2\n  Item key={k}\n"; out.String() != want {
		t.Errorf("outline = %q, want %q", out.String(), want)
	}
}

func TestTreeMatchNone(t *testing.T) {
	out := withStreams(t, treeSource)

	if err := (&Tree{Match: "zzz"}).Run(context.Background()); err != nil {
		t.Fatal(err)
	}

	if out.Len() != 0 {
		t.Errorf("outline = %q, want nothing", out.String())
	}
}

func TestTreeJSON(t *testing.T) {
	out := withStreams(t, treeSource)

	if err := (&Tree{Format: "json"}).Run(context.Background()); err != nil {
		t.Fatal(err)
	}

	var entries []struct {
		Source string `json:"source"`
		Line   int    `json:"line"`
		Root   struct {
			Name     string           `json:"name"`
			Children []map[string]any `json:"children"`
		} `json:"root"`
	}

	if err := json.Unmarshal(out.Bytes(), &entries); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}

	if len(entries) != 1 || entries[0].Source != "-" || entries[0].Line != 2 {
		t.Fatalf("entries = %+v", entries)
	}

	if root := entries[0].Root; root.Name != "ul" || len(root.Children) != 3 {
		t.Errorf("root = %s with %d children", root.Name, len(root.Children))
	}
}

func TestTreeYAML(t *testing.T) {
	out := withStreams(t, treeSource)

	if err := (&Tree{Format: "yaml"}).Run(context.Background()); err != nil {
		t.Fatal(err)
	}

	var entries []map[string]any
	if err := yaml.Unmarshal(out.Bytes(), &entries); err != nil {
		t.Fatalf("invalid YAML: %v\n%s", err, out)
	}

	if len(entries) != 1 || entries[0]["source"] != "-" {
		t.Errorf("entries = %v", entries)
	}

	if !strings.Contains(out.String(), "name: Item") {
		t.Errorf("YAML missing component node:\n%s", out)
	}
}

func TestTreeStrictError(t *testing.T) {
	out := withStreams(t, "x = (<div><p></span></div>);")

	ctx := WithOptions(context.Background(), jsx.WithStrict(true))
	if err := (&Tree{}).Run(ctx); err != nil {
		t.Fatalf("Tree.Run() error = %v", err)
	}

	if first, _, _ := strings.Cut(out.String(), "\n"); !strings.HasPrefix(first, "-:1: ") {
		t.Errorf("first line = %q, want an error report", first)
	}
}

func TestWriteTreeUnknownFormat(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	if err := writeTree(&b, "xml", nil); err == nil {
		t.Error("writeTree() accepted an unknown format")
	}
}
