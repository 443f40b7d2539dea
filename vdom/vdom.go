package vdom

import (
	"fmt"
	"html"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/ardnew/jsxc/jsx"
)

// Descriptor is one evaluated node.
type Descriptor struct {
	Kind     jsx.Kind       `json:"kind"               yaml:"kind"`
	Type     string         `json:"type,omitempty"     yaml:"type,omitempty"`
	Props    map[string]any `json:"props,omitempty"    yaml:"props,omitempty"`
	Children []*Descriptor  `json:"children,omitempty" yaml:"children,omitempty"`
	Text     string         `json:"text,omitempty"     yaml:"text,omitempty"`
}

// NewText returns a text descriptor for v.
func NewText(v any) *Descriptor {
	return &Descriptor{Kind: jsx.KindText, Text: fmt.Sprint(v)}
}

// Children flattens the children argument of a constructor call. Nested
// slices are spliced in place, nil values are dropped, and scalars become
// text descriptors.
func Children(v any) []*Descriptor {
	var out []*Descriptor

	var walk func(v any)

	walk = func(v any) {
		switch v := v.(type) {
		case nil:

		case *Descriptor:
			if v != nil {
				out = append(out, v)
			}

		case []any:
			for _, e := range v {
				walk(e)
			}

		case []*Descriptor:
			for _, e := range v {
				walk(e)
			}

		default:
			out = append(out, NewText(v))
		}
	}

	walk(v)

	return out
}

// WriteHTML writes d as markup. Component descriptors are written with their
// type as the tag name.
func (d *Descriptor) WriteHTML(w io.Writer) error {
	var b strings.Builder

	d.html(&b)

	_, err := io.WriteString(w, b.String())

	return err
}

// HTML returns d as markup.
func (d *Descriptor) HTML() string {
	var b strings.Builder

	d.html(&b)

	return b.String()
}

func (d *Descriptor) html(b *strings.Builder) {
	if d.Kind == jsx.KindText {
		b.WriteString(html.EscapeString(d.Text))

		return
	}

	b.WriteByte('<')
	b.WriteString(d.Type)

	for _, k := range slices.Sorted(maps.Keys(d.Props)) {
		switch v := d.Props[k]; v {
		case nil, false:

		case true:
			b.WriteByte(' ')
			b.WriteString(k)

		default:
			fmt.Fprintf(b, " %s=\"%s\"", k, html.EscapeString(fmt.Sprint(v)))
		}
	}

	if len(d.Children) == 0 && (jsx.IsVoidTag(d.Type) || d.Kind == jsx.KindComponent) {
		b.WriteString("/>")

		return
	}

	b.WriteByte('>')

	for _, c := range d.Children {
		c.html(b)
	}

	b.WriteString("</")
	b.WriteString(d.Type)
	b.WriteByte('>')
}
