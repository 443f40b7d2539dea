package jsx

import (
	"context"
	"log/slog"
	"strings"
)

// Renderer serializes node trees into call-expression text.
//
// Each step dispatches to the configured hook, or to the matching Default
// method when no hook is set. Hooks may call back into any Renderer method.
// Script text embedded in a tree (raw bodies, expression leaves and raw
// attribute values) is expanded with [Renderer.Expand] at render time, so
// nested fragments always render with the same configuration as their host.
//
// A Renderer is not safe for concurrent use.
type Renderer struct {
	ctx context.Context
	cfg Config
	key uint64
	err error
}

// NewRenderer returns a Renderer for the configuration built from opts.
func NewRenderer(ctx context.Context, opts ...Option) *Renderer {
	return newRenderer(ctx, NewConfig(opts...))
}

func newRenderer(ctx context.Context, cfg Config) *Renderer {
	if ctx == nil {
		ctx = context.Background()
	}

	r := &Renderer{ctx: ctx, cfg: cfg}
	if cfg.cacheable() {
		r.key = cfg.fingerprint()
	}

	return r
}

// Context returns the context the Renderer was created with.
func (r *Renderer) Context() context.Context { return r.ctx }

// Config returns the Renderer configuration.
func (r *Renderer) Config() Config { return r.cfg }

// Err returns the first error recorded in strict mode.
func (r *Renderer) Err() error { return r.err }

// fail records err in strict mode and logs it otherwise.
func (r *Renderer) fail(err error) {
	if err == nil {
		return
	}

	if r.cfg.strict {
		if r.err == nil {
			r.err = err
		}

		return
	}

	r.cfg.logger.DebugContext(r.ctx, "fragment degraded", slog.Any("error", err))
}

// Type renders a tag name.
func (r *Renderer) Type(name string, n *Node) string {
	if h := r.cfg.hooks.Type; h != nil {
		return h(r, name, n)
	}

	return r.DefaultType(name, n)
}

// DefaultType renders name as a quoted string literal.
func (r *Renderer) DefaultType(name string, _ *Node) string {
	return quote(name)
}

// Props renders an attribute list.
func (r *Renderer) Props(attrs Attributes, n *Node) string {
	if h := r.cfg.hooks.Props; h != nil {
		return h(r, attrs, n)
	}

	return r.DefaultProps(attrs, n)
}

// DefaultProps renders attrs as an object literal in insertion order, or
// null when there are none.
func (r *Renderer) DefaultProps(attrs Attributes, _ *Node) string {
	if attrs.Len() == 0 {
		return "null"
	}

	var b strings.Builder

	b.WriteByte('{')

	i := 0
	for attr := range attrs.All() {
		if i > 0 {
			b.WriteString(", ")
		}

		i++

		if attr.Spread {
			b.WriteString("...")
			b.WriteString(r.Expand(attr.Value.Text))

			continue
		}

		b.WriteString(propName(attr.Name))
		b.WriteString(": ")
		b.WriteString(r.Value(attr.Value))
	}

	b.WriteByte('}')

	return b.String()
}

// Value renders an attribute value: raw expressions are expanded, literals
// are quoted.
func (r *Renderer) Value(v Value) string {
	if v.Raw {
		return r.Expand(v.Text)
	}

	return quote(v.Text)
}

// Children renders the child list of n.
func (r *Renderer) Children(children []*Node, n *Node) string {
	if h := r.cfg.hooks.Children; h != nil {
		return h(r, children, n)
	}

	return r.DefaultChildren(children, n)
}

// DefaultChildren renders children one per line, indented by the depth of n,
// as an array argument that closes the call. An empty list renders null.
func (r *Renderer) DefaultChildren(children []*Node, n *Node) string {
	indent := tabs(n.Depth)
	outdent := tabs(n.Depth - 1)

	if len(children) == 0 {
		return ",\n" + indent + "null\n" + outdent + ")"
	}

	var b strings.Builder

	b.WriteString(",[")

	for i, c := range children {
		if i > 0 {
			b.WriteByte(',')
		}

		b.WriteByte('\n')
		b.WriteString(indent)
		b.WriteString(r.Node(c))
	}

	b.WriteByte('\n')
	b.WriteString(outdent)
	b.WriteString("])")

	return b.String()
}

// Node renders n and its descendants.
func (r *Renderer) Node(n *Node) string {
	if h := r.cfg.hooks.Node; h != nil {
		return h(r, n)
	}

	return r.DefaultNode(n)
}

// DefaultNode renders n by composing the type, props and children hooks and
// passing the results to the element, component or text hook.
func (r *Renderer) DefaultNode(n *Node) string {
	if n.Kind == KindText {
		if n.Expr {
			return r.Text(r.Expand(n.Text), n)
		}

		return r.Text(quote(n.Text), n)
	}

	typ := r.Type(n.Name, n)
	props := r.Props(n.Attributes, n)

	var children string
	if n.IsRaw() {
		children = r.raw(n)
	} else {
		children = r.Children(n.Children, n)
	}

	if n.Kind == KindComponent {
		return r.Component(typ, props, children, n)
	}

	return r.Element(typ, props, children, n)
}

// raw renders the body of a raw node: the expanded expression with tabs and
// line breaks removed and its outer braces dropped.
func (r *Renderer) raw(n *Node) string {
	blob := strings.Map(func(c rune) rune {
		switch c {
		case '\t', '\n', '\r':
			return -1
		}

		return c
	}, r.Expand(n.Raw))

	if len(blob) >= 2 && blob[0] == '{' && blob[len(blob)-1] == '}' {
		blob = blob[1 : len(blob)-1]
	}

	return ",\n" + tabs(n.Depth) + blob + "\n" + tabs(n.Depth-1) + ")"
}

// Element renders an element call.
func (r *Renderer) Element(typ, props, children string, n *Node) string {
	if h := r.cfg.hooks.Element; h != nil {
		return h(r, typ, props, children, n)
	}

	return r.DefaultElement(typ, props, children, n)
}

func (r *Renderer) DefaultElement(typ, props, children string, _ *Node) string {
	return r.cfg.labels.Element + "(" + typ + ", " + props + children
}

// Component renders a component call.
func (r *Renderer) Component(typ, props, children string, n *Node) string {
	if h := r.cfg.hooks.Component; h != nil {
		return h(r, typ, props, children, n)
	}

	return r.DefaultComponent(typ, props, children, n)
}

func (r *Renderer) DefaultComponent(typ, props, children string, _ *Node) string {
	return r.cfg.labels.Component + "(" + typ + ", " + props + children
}

// Text renders text content that is already quoted or expanded.
func (r *Renderer) Text(content string, n *Node) string {
	if h := r.cfg.hooks.Text; h != nil {
		return h(r, content, n)
	}

	return r.DefaultText(content, n)
}

// DefaultText wraps content in a call to the text label, or returns it
// unchanged when the label is empty.
func (r *Renderer) DefaultText(content string, _ *Node) string {
	if r.cfg.labels.Text == "" {
		return content
	}

	return r.cfg.labels.Text + "(" + content + ")"
}

func tabs(n int) string {
	if n <= 0 {
		return ""
	}

	return strings.Repeat("\t", n)
}

// quote renders s as a single-quoted script string literal.
func quote(s string) string {
	var b strings.Builder

	b.Grow(len(s) + 2)
	b.WriteByte('\'')

	for _, c := range s {
		switch c {
		case '\\':
			b.WriteString(`\\`)

		case '\'':
			b.WriteString(`\'`)

		case '\n':
			b.WriteString(`\n`)

		case '\r':
			b.WriteString(`\r`)

		default:
			b.WriteRune(c)
		}
	}

	b.WriteByte('\'')

	return b.String()
}

// propName renders an attribute name as an object key, quoting names that
// are not identifiers.
func propName(name string) string {
	if name == "" {
		return quote(name)
	}

	for i := 0; i < len(name); i++ {
		c := name[i]
		if !isIdentifierChar(c) || (i == 0 && c >= '0' && c <= '9') {
			return quote(name)
		}
	}

	return name
}
