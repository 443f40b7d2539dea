package jsx

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// cursor is a forward-only position in a source string with line and column
// bookkeeping.
type cursor struct {
	input string
	pos   int
	line  int
	col   int
}

func newCursor(input string) cursor {
	return cursor{input: input, line: 1, col: 1}
}

func (c *cursor) eof() bool { return c.pos >= len(c.input) }

func (c *cursor) peek() rune {
	if c.eof() {
		return 0
	}

	r, _ := utf8.DecodeRuneInString(c.input[c.pos:])

	return r
}

// peekByte returns the byte n positions ahead, or 0 past the end.
func (c *cursor) peekByte(n int) byte {
	if c.pos+n >= len(c.input) {
		return 0
	}

	return c.input[c.pos+n]
}

func (c *cursor) hasPrefix(s string) bool {
	return strings.HasPrefix(c.input[c.pos:], s)
}

func (c *cursor) advance() {
	if c.eof() {
		return
	}

	r, size := utf8.DecodeRuneInString(c.input[c.pos:])

	c.pos += size
	if r == '\n' {
		c.line++
		c.col = 1
	} else {
		c.col++
	}
}

func (c *cursor) position() Position {
	return Position{Offset: c.pos, Line: c.line, Column: c.col}
}

// positionAt returns the position of byte offset off in input.
func positionAt(input string, off int) Position {
	c := newCursor(input)
	for c.pos < off && !c.eof() {
		c.advance()
	}

	return c.position()
}

func (c *cursor) skipWhitespace() {
	for !c.eof() && unicode.IsSpace(c.peek()) {
		c.advance()
	}
}

// braced consumes a depth-counted {...} run starting at the current '{' and
// returns it with its outer braces. ok is false when the input ends before
// the counter returns to zero; the remainder of the input is returned.
func (c *cursor) braced() (text string, ok bool) {
	start := c.pos
	depth := 0

	for !c.eof() {
		switch c.peek() {
		case '{':
			depth++

		case '}':
			depth--
		}

		c.advance()

		if depth == 0 {
			return c.input[start:c.pos], true
		}
	}

	return c.input[start:], false
}

func isNameStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_' || r == '$'
}

func isNameContinue(r rune) bool {
	return isNameStart(r) || unicode.IsDigit(r) ||
		r == '-' || r == '.' || r == ':'
}

func isIdentifierChar(b byte) bool {
	return b == '_' || b == '$' ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9') || b >= utf8.RuneSelf
}
