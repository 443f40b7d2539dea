package jsx

import (
	"log/slog"
	"strings"
)

// ErrorKind classifies the structural faults reported in strict mode.
type ErrorKind int

const (
	// GenericError is any error that is not a structural fault.
	GenericError ErrorKind = iota

	// UnterminatedTag reports a tag or quoted attribute value that runs to
	// the end of input, or an element that is never closed.
	UnterminatedTag

	// UnbalancedExpression reports a brace-delimited expression whose
	// closing brace is never found.
	UnbalancedExpression

	// UnmatchedClosingTag reports a closing tag that does not match the
	// innermost open element.
	UnmatchedClosingTag
)

func (k ErrorKind) String() string {
	switch k {
	case UnterminatedTag:
		return "UnterminatedTag"

	case UnbalancedExpression:
		return "UnbalancedExpression"

	case UnmatchedClosingTag:
		return "UnmatchedClosingTag"

	default:
		return "Error"
	}
}

// Predefined errors (sentinel values).
var (
	ErrUnterminatedTag      = newKindError(UnterminatedTag, "unterminated tag")
	ErrUnbalancedExpression = newKindError(UnbalancedExpression, "unbalanced expression")
	ErrUnmatchedClosingTag  = newKindError(UnmatchedClosingTag, "unmatched closing tag")
	ErrUnknownOption        = NewError("unknown option")
	ErrInvalidHook          = NewError("invalid hook")
	ErrReadInput            = NewError("failed to read input")
)

// Error represents an error with optional structured logging attributes.
// It implements both error and slog.LogValuer interfaces.
type Error struct {
	kind  ErrorKind
	msg   string
	err   error
	pos   *Position
	attrs []slog.Attr
}

// NewError creates a new Error with a message.
func NewError(msg string) *Error {
	return &Error{msg: msg}
}

func newKindError(kind ErrorKind, msg string) *Error {
	return &Error{kind: kind, msg: msg}
}

// Kind returns the structural fault classification of the error.
func (e *Error) Kind() ErrorKind { return e.kind }

// Position returns the location the error refers to, if any.
func (e *Error) Position() (Position, bool) {
	if e.pos == nil {
		return Position{}, false
	}

	return *e.pos, true
}

// Error implements the error interface.
func (e *Error) Error() string {
	part := make([]string, 0, 2)

	if e.msg != "" {
		msg := e.msg
		if e.pos != nil {
			msg += " at " + e.pos.String()
		}

		part = append(part, msg)
	}

	if e.err != nil {
		part = append(part, e.err.Error())
	}

	return strings.Join(part, ": ")
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is an *Error of the same kind and message, so
// that errors derived with With, Wrap or WithPosition still match their
// sentinel.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)

	return ok && t.kind == e.kind && t.msg == e.msg
}

// LogValue implements slog.LogValuer for rich structured logging.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+4)

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.kind != GenericError {
		attrs = append(attrs, slog.String("kind", e.kind.String()))
	}

	if e.pos != nil {
		attrs = append(attrs, slog.String("pos", e.pos.String()))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Wrap creates a new Error wrapping another error.
func (e *Error) Wrap(err error) *Error {
	c := *e
	c.err = err

	return &c
}

// With adds attributes to the error for structured logging.
// This creates a new Error instance to maintain immutability.
func (e *Error) With(attrs ...slog.Attr) *Error {
	c := *e
	c.attrs = make([]slog.Attr, 0, len(e.attrs)+len(attrs))
	c.attrs = append(append(c.attrs, e.attrs...), attrs...)

	return &c
}

// WithPosition returns a copy of the error located at pos.
func (e *Error) WithPosition(pos Position) *Error {
	c := *e
	c.pos = &pos

	return &c
}
