package jsx

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var treeOpts = cmp.Options{
	cmpopts.IgnoreFields(Node{}, "Pos"),
	cmp.Transformer("Attributes", func(a Attributes) []Attribute {
		return slices.Collect(a.All())
	}),
	cmpopts.EquateEmpty(),
}

func attrs(list ...Attribute) Attributes {
	var a Attributes
	for _, attr := range list {
		a.Set(attr)
	}

	return a
}

func lit(name, text string) Attribute {
	return Attribute{Name: name, Value: Value{Text: text}}
}

func raw(name, text string) Attribute {
	return Attribute{Name: name, Value: Value{Text: text, Raw: true}}
}

func text(s string, depth int) *Node {
	return &Node{Kind: KindText, Text: s, Depth: depth, Void: true}
}

func expr(s string, depth int) *Node {
	return &Node{Kind: KindText, Text: s, Expr: true, Depth: depth, Void: true}
}

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  *Node
	}{
		{
			name:  "element with text",
			input: `<div id="x">hi</div>`,
			want: &Node{
				Kind:       KindElement,
				Name:       "div",
				Attributes: attrs(lit("id", "x")),
				Depth:      1,
				Children:   []*Node{text("hi", 2)},
			},
		},
		{
			name:  "self-closing component",
			input: `<Foo a={b+1} />`,
			want: &Node{
				Kind:       KindComponent,
				Name:       "Foo",
				Attributes: attrs(raw("a", "b+1")),
				Depth:      1,
				Void:       true,
			},
		},
		{
			name:  "raw body",
			input: `<ul> {items.map(i => <li>{i}</li>)} </ul>`,
			want: &Node{
				Kind:  KindElement,
				Name:  "ul",
				Depth: 1,
				Raw:   `{items.map(i => <li>{i}</li>)}`,
			},
		},
		{
			name:  "interleaved text and expressions",
			input: "<p>\n  a  b {c} {} {/* note */} d\n</p>",
			want: &Node{
				Kind:  KindElement,
				Name:  "p",
				Depth: 1,
				Children: []*Node{
					text("a b", 2),
					expr("c", 2),
					text("d", 2),
				},
			},
		},
		{
			name:  "void tag ignores content and closing tag",
			input: `<div><br>text</br></div>`,
			want: &Node{
				Kind:  KindElement,
				Name:  "div",
				Depth: 1,
				Children: []*Node{
					{Kind: KindElement, Name: "br", Depth: 2, Void: true},
					text("text", 2),
				},
			},
		},
		{
			name:  "attributes with whitespace and quotes",
			input: "<a\n\thref = 'x y'\ttitle=`t` data-id=7 {...rest} checked>go</a>",
			want: &Node{
				Kind: KindElement,
				Name: "a",
				Attributes: attrs(
					lit("href", "x y"),
					lit("title", "t"),
					lit("data-id", "7"),
					Attribute{Value: Value{Text: "rest", Raw: true}, Spread: true},
					raw("checked", "true"),
				),
				Depth:    1,
				Children: []*Node{text("go", 2)},
			},
		},
		{
			name:  "nested depth",
			input: `<A><b><C/></b></A>`,
			want: &Node{
				Kind:  KindComponent,
				Name:  "A",
				Depth: 1,
				Children: []*Node{{
					Kind:  KindElement,
					Name:  "b",
					Depth: 2,
					Children: []*Node{{
						Kind:  KindComponent,
						Name:  "C",
						Depth: 3,
						Void:  true,
					}},
				}},
			},
		},
		{
			name:  "duplicate attribute keeps first position",
			input: `<i a="1" b="2" a="3"/>`,
			want: &Node{
				Kind:       KindElement,
				Name:       "i",
				Attributes: attrs(lit("a", "3"), lit("b", "2")),
				Depth:      1,
				Void:       true,
			},
		},
		{
			name:  "trailing text ignored",
			input: `<b>x</b> tail`,
			want: &Node{
				Kind:     KindElement,
				Name:     "b",
				Depth:    1,
				Children: []*Node{text("x", 2)},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Parse(context.Background(), tt.input, WithStrict(true))
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}

			if diff := cmp.Diff(tt.want, got, treeOpts); diff != "" {
				t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParse_VoidTags(t *testing.T) {
	t.Parallel()

	for name := range voidTags {
		for _, input := range []string{
			"<" + name + ">",
			"<" + name + "/>",
			"<" + name + ">content</" + name + ">",
		} {
			n, err := Parse(context.Background(), input)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", input, err)
			}

			if !n.Void || len(n.Children) != 0 || n.IsRaw() {
				t.Errorf("Parse(%q) = %+v, want childless void node", input, n)
			}
		}
	}

	if len(voidTags) != 15 {
		t.Errorf("void tag set has %d members, want 15", len(voidTags))
	}
}

func TestParse_Strict(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		kind  ErrorKind
		want  error
	}{
		{"unterminated opening tag", `<div class="a"`, UnterminatedTag, ErrUnterminatedTag},
		{"unterminated quote", `<div class="a>x</div>`, UnterminatedTag, ErrUnterminatedTag},
		{"unclosed element", `<div><p>x</p>`, UnterminatedTag, ErrUnterminatedTag},
		{"unbalanced raw body", `<div>{a</div>`, UnbalancedExpression, ErrUnbalancedExpression},
		{"unbalanced text expression", `<p>a {b</p>`, UnbalancedExpression, ErrUnbalancedExpression},
		{"unbalanced attribute", `<p a={b>x</p>`, UnbalancedExpression, ErrUnbalancedExpression},
		{"mismatched closing tag", `<div><p></span></div>`, UnmatchedClosingTag, ErrUnmatchedClosingTag},
		{"closing tag before root", `</x><div/>`, UnmatchedClosingTag, ErrUnmatchedClosingTag},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			n, err := Parse(context.Background(), tt.input, WithStrict(true))
			if !errors.Is(err, tt.want) {
				t.Fatalf("Parse() error = %v, want %v", err, tt.want)
			}

			var e *Error
			if !errors.As(err, &e) {
				t.Fatalf("error %T is not *Error", err)
			}

			if e.Kind() != tt.kind {
				t.Errorf("Kind() = %v, want %v", e.Kind(), tt.kind)
			}

			if _, ok := e.Position(); !ok {
				t.Error("error has no position")
			}

			if n == nil {
				t.Error("strict Parse() discarded the best-effort tree")
			}

			if _, err := Parse(context.Background(), tt.input); err != nil {
				t.Errorf("lenient Parse() error = %v", err)
			}
		})
	}
}

func TestParse_LenientMismatchTrustsDepth(t *testing.T) {
	t.Parallel()

	n, err := Parse(context.Background(), `<div><p>a</Wrong>b</div>`)
	if err != nil {
		t.Fatal(err)
	}

	want := &Node{
		Kind:  KindElement,
		Name:  "div",
		Depth: 1,
		Children: []*Node{
			{Kind: KindElement, Name: "p", Depth: 2, Children: []*Node{text("a", 3)}},
			text("b", 2),
		},
	}

	if diff := cmp.Diff(want, n, treeOpts); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_NoRoot(t *testing.T) {
	t.Parallel()

	_, err := Parse(context.Background(), "just text")
	if !errors.Is(err, ErrNoRoot) {
		t.Errorf("Parse() error = %v, want %v", err, ErrNoRoot)
	}
}

func TestKindOf(t *testing.T) {
	t.Parallel()

	tests := map[string]Kind{
		"div":       KindElement,
		"my-widget": KindElement,
		"svg:path":  KindElement,
		"Foo":       KindComponent,
		"fooBar":    KindComponent,
		"x.Item":    KindComponent,
		"":          KindElement,
	}

	for name, want := range tests {
		if got := KindOf(name); got != want {
			t.Errorf("KindOf(%q) = %v, want %v", name, got, want)
		}
	}
}
