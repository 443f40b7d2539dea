package jsx

import (
	"context"
	"log/slog"
	"strings"
	"unicode"
)

// Predefined errors (sentinel values).
var ErrNoRoot = NewError("no root tag")

// builder assembles scanner output into a rooted tree using an explicit
// ancestor stack. The stack height is the depth of the next opened node.
type builder struct {
	ctx    context.Context
	cfg    Config
	c      cursor
	stack  []*Node
	root   *Node
	fault  *Error
	closed bool
}

// parse builds the tree for one fragment. Trailing text after the root closes
// is ignored. In lenient mode every fault degrades to a best-effort tree and
// a nil error.
func parse(ctx context.Context, src string, cfg Config) (*Node, error) {
	b := &builder{ctx: ctx, cfg: cfg, c: newCursor(src)}

	b.run()

	if b.root == nil {
		return nil, ErrNoRoot.With(slog.Int("length", len(src)))
	}

	if b.fault != nil && b.cfg.strict {
		return b.root, b.fault
	}

	return b.root, nil
}

func (b *builder) run() {
	c := &b.c

	for !c.eof() && !b.closed {
		switch {
		case c.hasPrefix("</"):
			b.closeTag()

		case c.atTag():
			if !b.openTag() {
				return
			}

		case len(b.stack) == 0:
			// Text preceding the root.
			c.advance()

		default:
			parent := b.top()
			nodes, fault := scanContent(c, parent.Depth+1)
			parent.Children = append(parent.Children, nodes...)

			b.report(fault)
		}
	}

	if len(b.stack) > 0 {
		top := b.top()
		b.report(ErrUnterminatedTag.WithPosition(top.Pos).
			With(slog.String("tag", top.Name)))
	}
}

func (b *builder) top() *Node { return b.stack[len(b.stack)-1] }

// openTag scans an opening tag, attaches the new node and, unless it is void,
// pushes it and absorbs a raw body if there is one. It returns false when the
// input ended inside the tag.
func (b *builder) openTag() bool {
	t, fault := scanTag(&b.c)

	b.report(fault)

	n := &Node{
		Kind:       t.kind(),
		Name:       t.name,
		Attributes: t.attrs,
		Depth:      len(b.stack) + 1,
		Void:       t.void(),
		Pos:        t.pos,
	}

	b.cfg.logger.TraceContext(b.ctx, "open tag",
		slog.String("tag", n.Name),
		slog.String("kind", n.Kind.String()),
		slog.Int("depth", n.Depth),
		slog.Bool("void", n.Void),
	)

	if len(b.stack) == 0 {
		if b.root == nil {
			b.root = n
		}
	} else {
		parent := b.top()
		parent.Children = append(parent.Children, n)
	}

	if !t.closed {
		return false
	}

	if n.Void {
		if len(b.stack) == 0 {
			b.closed = true
		}

		return true
	}

	b.stack = append(b.stack, n)

	b.absorb(n)

	return true
}

// absorb captures the body of n as one raw expression when the body is a
// single depth-counted {...} run followed only by whitespace and a closing
// tag. Otherwise the cursor is left unchanged.
func (b *builder) absorb(n *Node) {
	mark := b.c

	b.c.skipWhitespace()

	if b.c.peek() != '{' {
		b.c = mark

		return
	}

	pos := b.c.position()

	blob, ok := b.c.braced()
	if !ok {
		n.Raw = blob

		b.report(ErrUnbalancedExpression.WithPosition(pos).
			With(slog.String("tag", n.Name)))

		return
	}

	b.c.skipWhitespace()

	if !b.c.hasPrefix("</") {
		b.c = mark

		return
	}

	n.Raw = blob
}

// closeTag consumes a closing tag and pops the stack. Void closing tags are
// ignored. A name that does not match the innermost open node is a fault;
// the stack is popped regardless.
func (b *builder) closeTag() {
	c := &b.c
	pos := c.position()

	c.advance()
	c.advance()

	start := c.pos
	for !c.eof() && c.peek() != '>' {
		c.advance()
	}

	name := strings.TrimFunc(c.input[start:c.pos], unicode.IsSpace)

	if c.eof() {
		b.report(ErrUnterminatedTag.WithPosition(pos).
			With(slog.String("tag", name)))
	} else {
		c.advance()
	}

	if IsVoidTag(name) {
		return
	}

	if len(b.stack) == 0 {
		b.report(ErrUnmatchedClosingTag.WithPosition(pos).
			With(slog.String("tag", name)))

		return
	}

	top := b.top()
	if top.Name != name {
		b.report(ErrUnmatchedClosingTag.WithPosition(pos).With(
			slog.String("tag", name),
			slog.String("open", top.Name),
		))
	}

	b.stack = b.stack[:len(b.stack)-1]

	if len(b.stack) == 0 {
		b.closed = true
	}
}

// report records the first fault and logs every degradation.
func (b *builder) report(fault *Error) {
	if fault == nil {
		return
	}

	b.cfg.logger.DebugContext(b.ctx, "malformed fragment",
		slog.Any("fault", fault),
		slog.Bool("strict", b.cfg.strict),
	)

	if b.fault == nil {
		b.fault = fault
	}
}
