package jsx

import (
	"log/slog"
	"strings"
	"unicode"
)

// tag is the result of scanning one opening tag.
type tag struct {
	name        string
	attrs       Attributes
	pos         Position
	selfClosing bool
	closed      bool // the terminating '>' was found
}

func (t tag) kind() Kind { return KindOf(t.name) }

func (t tag) void() bool { return t.selfClosing || IsVoidTag(t.name) }

// scanTag consumes an opening tag starting at '<'. The returned tag is always
// usable; fault is non-nil when the tag is malformed.
func scanTag(c *cursor) (t tag, fault *Error) {
	t.pos = c.position()

	c.advance() // '<'

	start := c.pos
	for !c.eof() {
		r := c.peek()
		if unicode.IsSpace(r) || r == '>' || r == '/' || r == '{' {
			break
		}

		c.advance()
	}

	t.name = c.input[start:c.pos]

	for {
		c.skipWhitespace()

		if c.eof() {
			if fault == nil {
				fault = ErrUnterminatedTag.WithPosition(t.pos).
					With(slog.String("tag", t.name))
			}

			return t, fault
		}

		switch c.peek() {
		case '>':
			c.advance()

			t.closed = true

			return t, fault

		case '/':
			c.advance()

			t.selfClosing = true

		case '{':
			attr, err := scanSpread(c)
			if err != nil && fault == nil {
				fault = err.With(slog.String("tag", t.name))
			}

			if attr.Value.Text != "" {
				t.attrs.Set(attr)
			}

		default:
			attr, err := scanAttribute(c)
			if err != nil && fault == nil {
				fault = err.With(slog.String("tag", t.name))
			}

			if attr.Name != "" {
				t.attrs.Set(attr)
			}
		}
	}
}

// scanSpread consumes a {...expr} attribute.
func scanSpread(c *cursor) (Attribute, *Error) {
	pos := c.position()

	text, ok := c.braced()
	if !ok {
		return Attribute{}, ErrUnbalancedExpression.WithPosition(pos)
	}

	inner := strings.TrimSpace(text[1 : len(text)-1])
	inner = strings.TrimSpace(strings.TrimPrefix(inner, "..."))

	return Attribute{
		Value:  Value{Text: inner, Raw: true},
		Spread: true,
	}, nil
}

// scanAttribute consumes one name[=value] pair. Whitespace is permitted
// around '='. A name without a value is the boolean true.
func scanAttribute(c *cursor) (Attribute, *Error) {
	start := c.pos
	for !c.eof() {
		r := c.peek()
		if unicode.IsSpace(r) || r == '=' || r == '>' || r == '/' || r == '{' {
			break
		}

		c.advance()
	}

	attr := Attribute{Name: c.input[start:c.pos]}

	if attr.Name == "" {
		// A stray character such as '=' that cannot start a name.
		c.advance()

		return attr, nil
	}

	mark := *c

	c.skipWhitespace()

	if c.peek() != '=' {
		*c = mark
		attr.Value = Value{Text: "true", Raw: true}

		return attr, nil
	}

	c.advance() // '='
	c.skipWhitespace()

	value, err := scanValue(c)
	attr.Value = value

	return attr, err
}

// scanValue consumes a quoted literal, a {expression} or a bare word.
func scanValue(c *cursor) (Value, *Error) {
	pos := c.position()

	switch q := c.peek(); q {
	case '"', '\'', '`':
		c.advance()

		start := c.pos
		for !c.eof() && c.peek() != q {
			c.advance()
		}

		if c.eof() {
			return Value{Text: c.input[start:]}, ErrUnterminatedTag.
				WithPosition(pos).
				With(slog.String("quote", string(q)))
		}

		text := c.input[start:c.pos]

		c.advance() // closing quote

		return Value{Text: text}, nil

	case '{':
		text, ok := c.braced()
		if !ok {
			return Value{Text: text[1:], Raw: true},
				ErrUnbalancedExpression.WithPosition(pos)
		}

		return Value{Text: text[1 : len(text)-1], Raw: true}, nil

	default:
		start := c.pos
		for !c.eof() {
			r := c.peek()
			if unicode.IsSpace(r) || r == '>' || c.hasPrefix("/>") {
				break
			}

			c.advance()
		}

		return Value{Text: c.input[start:c.pos]}, nil
	}
}
