package jsx

import (
	"strings"
)

// atTag reports whether the cursor is at the start of an opening or closing
// tag, as opposed to a '<' used as ordinary text.
func (c *cursor) atTag() bool {
	if c.peek() != '<' {
		return false
	}

	switch b := c.peekByte(1); {
	case b == '/' || b == '>':
		return true

	case b == 0:
		return false

	default:
		return isIdentifierChar(b) && (b < '0' || b > '9')
	}
}

// scanContent consumes a node body up to the next tag, splitting it into
// literal and expression text leaves. Braces toggle between the two: the
// first '}' after a '{' ends the expression, whatever it contains.
func scanContent(c *cursor, depth int) (nodes []*Node, fault *Error) {
	var (
		literal  strings.Builder
		litPos   Position
		inExpr   bool
		exprFrom int
		exprPos  Position
	)

	flush := func() {
		if text := collapseSpace(literal.String()); text != "" {
			nodes = append(nodes, newText(text, false, depth, litPos))
		}

		literal.Reset()
	}

	emit := func(inner string) {
		if expr := strings.TrimSpace(inner); expr != "" && !isComment(expr) {
			nodes = append(nodes, newText(inner, true, depth, exprPos))
		}
	}

	for !c.eof() {
		if inExpr {
			if c.peek() == '}' {
				emit(c.input[exprFrom:c.pos])
				c.advance()

				inExpr = false

				continue
			}

			c.advance()

			continue
		}

		if c.atTag() {
			break
		}

		if c.peek() == '{' {
			flush()

			exprPos = c.position()

			c.advance()

			exprFrom = c.pos
			inExpr = true

			continue
		}

		if literal.Len() == 0 {
			litPos = c.position()
		}

		literal.WriteRune(c.peek())
		c.advance()
	}

	if inExpr {
		emit(c.input[exprFrom:])

		fault = ErrUnbalancedExpression.WithPosition(exprPos)
	}

	flush()

	return nodes, fault
}

// collapseSpace trims s and replaces each internal whitespace run with a
// single space.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func isComment(expr string) bool {
	return strings.HasPrefix(expr, "/*") && strings.HasSuffix(expr, "*/")
}
