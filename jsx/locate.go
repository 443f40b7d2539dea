package jsx

import (
	"iter"
	"log/slog"
	"strings"
	"unicode"
)

// Strategy selects how a [Locator] decides where fragments begin and end.
type Strategy int

const (
	// StrategyScoped scans the source with a cursor that skips string
	// literals and comments and accepts a tag only in expression position.
	StrategyScoped Strategy = iota

	// StrategyPattern uses the boundary regular expression of the classic
	// compiler. It over-matches more readily but is kept for compatibility.
	StrategyPattern
)

// DefaultStrategy is the locator strategy used when none is configured.
const DefaultStrategy = StrategyScoped

func (s Strategy) String() string {
	switch s {
	case StrategyScoped:
		return "scoped"

	case StrategyPattern:
		return "pattern"

	default:
		return "unknown"
	}
}

// Strategies returns an iterator over the names of all strategies.
func Strategies() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, s := range []Strategy{StrategyScoped, StrategyPattern} {
			if !yield(s.String()) {
				return
			}
		}
	}
}

// ParseStrategy parses the name of a strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "scoped":
		return StrategyScoped, nil

	case "pattern":
		return StrategyPattern, nil

	default:
		return DefaultStrategy, ErrUnknownOption.With(
			slog.String("locator", s),
		)
	}
}

// Fragment is one replacement span found by a [Locator].
//
// Prefix is the text between the previous fragment and this one; it is
// non-empty only for the first fragment. Suffix is the text up to the next
// fragment or the end of input. Concatenating Prefix, Text and Suffix over
// all fragments reproduces the input.
type Fragment struct {
	Prefix string
	Text   string
	Suffix string
	Start  int
	End    int
}

// span is a located fragment [start, end). Searching resumes at resume.
// fault is the first malformed tag passed over during the search.
type span struct {
	start, end, resume int
	ok                 bool
	fault              *Error
}

// Locator yields the fragments of an input string. It is lazy and cannot be
// restarted.
type Locator struct {
	input   string
	find    func(s string, from int) span
	pending span
	primed  bool
	prevEnd int
	err     *Error
}

// NewLocator returns a Locator over input using the given strategy.
func NewLocator(input string, strategy Strategy) *Locator {
	l := &Locator{input: input, find: findScoped}
	if strategy == StrategyPattern {
		l.find = findPattern
	}

	return l
}

// Next returns the next fragment, or false when the input is exhausted.
func (l *Locator) Next() (Fragment, bool) {
	if !l.primed {
		l.pending = l.search(0)
		l.primed = true
	}

	cur := l.pending
	if !cur.ok {
		return Fragment{}, false
	}

	l.pending = l.search(cur.resume)

	stop := len(l.input)
	if l.pending.ok {
		stop = l.pending.start
	}

	f := Fragment{
		Prefix: l.input[l.prevEnd:cur.start],
		Text:   l.input[cur.start:cur.end],
		Suffix: l.input[cur.end:stop],
		Start:  cur.start,
		End:    cur.end,
	}

	l.prevEnd = stop

	return f, true
}

func (l *Locator) search(from int) span {
	s := l.find(l.input, from)
	if l.err == nil {
		l.err = s.fault
	}

	return s
}

// Err returns the first malformed tag in expression position that the
// Locator passed over, or nil. It is complete once Next has returned false.
func (l *Locator) Err() error {
	if l.err == nil {
		return nil
	}

	return l.err
}

// All returns an iterator over the remaining fragments.
func (l *Locator) All() iter.Seq[Fragment] {
	return func(yield func(Fragment) bool) {
		for {
			f, ok := l.Next()
			if !ok || !yield(f) {
				return
			}
		}
	}
}

// Fragments returns an iterator over the fragments of input.
func Fragments(input string, strategy Strategy) iter.Seq[Fragment] {
	return NewLocator(input, strategy).All()
}

// leadingKeywords may directly precede a fragment.
var leadingKeywords = map[string]struct{}{
	"return":  {},
	"yield":   {},
	"default": {},
	"await":   {},
	"else":    {},
	"do":      {},
	"case":    {},
}

// findScoped locates the next fragment in expression position, skipping
// string literals and comments of the host source.
func findScoped(s string, from int) span {
	var fault *Error

	for i := from; i < len(s); {
		switch {
		case s[i] == '"' || s[i] == '\'' || s[i] == '`':
			i = skipQuoted(s, i)

		case strings.HasPrefix(s[i:], "//"):
			if n := strings.IndexByte(s[i:], '\n'); n >= 0 {
				i += n + 1
			} else {
				i = len(s)
			}

		case strings.HasPrefix(s[i:], "/*"):
			if n := strings.Index(s[i+2:], "*/"); n >= 0 {
				i += n + 4
			} else {
				i = len(s)
			}

		case s[i] == '<' && leadingOK(s, i):
			end, err := spanEnd(s, i)

			switch {
			case err != nil:
				if fault == nil {
					fault = err
				}

				i++

			case trailingOK(s, end):
				return span{start: i, end: end, resume: end, ok: true, fault: fault}

			default:
				i = end
			}

		default:
			i++
		}
	}

	return span{fault: fault}
}

// skipQuoted returns the index just past the string literal opened at i.
func skipQuoted(s string, i int) int {
	q := s[i]

	for j := i + 1; j < len(s); j++ {
		switch s[j] {
		case '\\':
			j++

		case q:
			return j + 1

		case '\n':
			if q != '`' {
				return j + 1
			}
		}
	}

	return len(s)
}

// leadingOK reports whether the '<' at i is in expression position: it must
// start a tag and follow an operator, punctuation, a keyword listed in
// leadingKeywords, or nothing at all.
func leadingOK(s string, i int) bool {
	c := newCursor(s)
	c.pos = i

	if !c.atTag() || c.peekByte(1) == '/' || c.peekByte(1) == '>' {
		return false
	}

	j := i - 1
	for j >= 0 && (s[j] == ' ' || s[j] == '\t' || s[j] == '\n' || s[j] == '\r') {
		j--
	}

	if j < 0 {
		return true
	}

	switch p := s[j]; {
	case p == ')' || p == ']' || p == '.' ||
		p == '"' || p == '\'' || p == '`':
		return false

	case isIdentifierChar(p):
		k := j
		for k >= 0 && isIdentifierChar(s[k]) {
			k--
		}

		_, ok := leadingKeywords[s[k+1:j+1]]

		return ok

	default:
		return true
	}
}

// trailingOK rejects spans immediately followed by an identifier, a member
// access, a call or an index.
func trailingOK(s string, end int) bool {
	if end >= len(s) {
		return true
	}

	b := s[end]

	return !isIdentifierChar(b) && b != '.' && b != '(' && b != '['
}

// spanEnd finds the end of the balanced tag span opened at i. Attribute
// values and brace-delimited expressions are skipped as units. The span is
// accepted when the root is void or is closed by a tag of the same name;
// otherwise fault says why it was rejected.
func spanEnd(s string, i int) (end int, fault *Error) {
	c := newCursor(s)
	c.pos = i

	var (
		root  string
		depth int
		first = true
	)

	for !c.eof() {
		switch {
		case c.hasPrefix("</"):
			at := c.pos

			c.advance()
			c.advance()

			start := c.pos
			for !c.eof() && c.peek() != '>' {
				c.advance()
			}

			name := strings.TrimFunc(c.input[start:c.pos], unicode.IsSpace)

			if c.eof() {
				return 0, ErrUnterminatedTag.WithPosition(positionAt(s, at)).
					With(slog.String("tag", name))
			}

			c.advance()

			if IsVoidTag(name) {
				continue
			}

			depth--

			if depth == 0 {
				if name != root {
					return 0, ErrUnmatchedClosingTag.
						WithPosition(positionAt(s, at)).With(
						slog.String("tag", name),
						slog.String("open", root),
					)
				}

				return c.pos, nil
			}

		case c.atTag():
			at := c.pos

			t, _ := scanTag(&c)
			if !t.closed {
				return 0, ErrUnterminatedTag.WithPosition(positionAt(s, at)).
					With(slog.String("tag", t.name))
			}

			if first {
				root, first = t.name, false

				if t.void() {
					return voidEnd(s, c.pos, t), nil
				}
			} else if t.void() {
				continue
			}

			depth++

		case c.peek() == '{':
			at := c.pos

			if _, ok := c.braced(); !ok {
				return 0, ErrUnbalancedExpression.WithPosition(positionAt(s, at))
			}

		default:
			c.advance()
		}
	}

	return 0, ErrUnterminatedTag.WithPosition(positionAt(s, i)).
		With(slog.String("tag", root))
}

// voidEnd extends the span of a void root ending at end over an optional
// body and a closing tag naming the root, as in <input>text</input>. The
// body may not contain another tag.
func voidEnd(s string, end int, t tag) int {
	if t.selfClosing {
		return end
	}

	c := newCursor(s)
	c.pos = end

	for !c.eof() && c.peek() != '<' {
		if c.peek() == '{' {
			if _, ok := c.braced(); !ok {
				return end
			}

			continue
		}

		c.advance()
	}

	if !c.hasPrefix("</") {
		return end
	}

	c.advance()
	c.advance()

	start := c.pos
	for !c.eof() && c.peek() != '>' && c.peek() != '<' {
		c.advance()
	}

	if c.peek() != '>' ||
		strings.TrimFunc(s[start:c.pos], unicode.IsSpace) != t.name {
		return end
	}

	c.advance()

	return c.pos
}
