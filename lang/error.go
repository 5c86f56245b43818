package lang

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"
)

// Predefined errors (sentinel values).
var (
	ErrMalformedLine     = NewError("malformed line")
	ErrUnterminatedBrace = NewError("unterminated brace reference")
	ErrUnterminatedQuote = NewError("unterminated quote")
	ErrReadInput         = NewError("failed to read input")
)

// Error represents an error with an optional line number and structured
// logging attributes. It implements both error and slog.LogValuer interfaces.
type Error struct {
	msg   string
	err   error       // Wrapped error (for errors.Unwrap)
	line  int         // 1-based line number, or 0 if unknown
	attrs []slog.Attr // Attributes for structured logging
}

// NewError creates a new Error with a message.
func NewError(msg string) *Error {
	return &Error{msg: msg}
}

// WrapError wraps a standard error into an Error.
// An error that already is an Error is returned unchanged. Any other error,
// including one that wraps an Error, is kept whole as the cause.
func WrapError(err error) *Error {
	if ee, ok := err.(*Error); ok {
		return ee
	}

	return &Error{err: err}
}

// Error implements the error interface.
func (e *Error) Error() string {
	// Build error message from whichever fields are set:
	//
	//   "line <n>: <msg>: <err>"
	part := make([]string, 0, 3)

	if e.line > 0 {
		part = append(part, "line "+strconv.Itoa(e.line))
	}

	if e.msg != "" {
		part = append(part, e.msg)
	}

	if e.err != nil {
		part = append(part, e.err.Error())
	}

	return strings.Join(part, ": ")
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is an Error with the same message, so that
// errors derived from a sentinel with [Error.Wrap], [Error.With], or
// [Error.WithLine] still match it with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t.msg == "" {
		return false
	}

	return e.msg == t.msg
}

// Line returns the 1-based line number the error refers to, or 0.
// Without a line of its own, the line of a wrapped Error is used.
func (e *Error) Line() int {
	if e == nil {
		return 0
	}

	if e.line == 0 {
		var inner *Error
		if errors.As(e.err, &inner) {
			return inner.Line()
		}
	}

	return e.line
}

// LogValue implements slog.LogValuer for rich structured logging.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+3)

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if line := e.Line(); line > 0 {
		attrs = append(attrs, slog.Int("line", line))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Wrap creates a new Error wrapping another error.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		msg:   e.msg,
		err:   err,
		line:  e.line,
		attrs: e.attrs, // Share attrs
	}
}

// With adds attributes to the error for structured logging.
// This creates a new Error instance to maintain immutability.
func (e *Error) With(attrs ...slog.Attr) *Error {
	newAttrs := make([]slog.Attr, len(e.attrs)+len(attrs))
	copy(newAttrs, e.attrs)
	copy(newAttrs[len(e.attrs):], attrs)

	return &Error{
		msg:   e.msg,
		err:   e.err,
		line:  e.line,
		attrs: newAttrs,
	}
}

// WithLine returns a copy of the error that refers to the given line.
// The first line recorded, here or in a wrapped Error, is kept.
func (e *Error) WithLine(line int) *Error {
	if e.Line() > 0 {
		return e
	}

	return &Error{
		msg:   e.msg,
		err:   e.err,
		line:  line,
		attrs: e.attrs,
	}
}
