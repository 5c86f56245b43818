package lang

import (
	"log/slog"
	"strings"
)

// quote is the resolver's quoting context.
type quote uint8

const (
	unquoted quote = iota
	singleQuoted
	doubleQuoted
)

func (q quote) String() string {
	switch q {
	case singleQuoted:
		return "'"
	case doubleQuoted:
		return `"`
	default:
		return ""
	}
}

// Resolve returns the final value of raw.
//
// References are looked up in env first and then in ns; undefined
// references are replaced by the empty string. Either of ns or env may be
// nil. Resolve fails with [ErrUnterminatedBrace] or [ErrUnterminatedQuote]
// when raw is not well formed; the returned error carries no line number.
func Resolve(raw string, ns *Namespace, env Environment) (string, error) {
	r := &resolver{input: raw, ns: ns, env: env}

	return r.resolve()
}

// resolver holds the state of a single pass over a raw value.
type resolver struct {
	input string
	pos   int
	quote quote
	ns    *Namespace
	env   Environment
	out   strings.Builder
}

func (r *resolver) resolve() (string, error) {
	r.out.Grow(len(r.input))

	for !r.eof() {
		c := r.next()

		if r.quote == singleQuoted {
			if c == '\'' {
				r.quote = unquoted
			} else {
				r.out.WriteByte(c)
			}

			continue
		}

		switch c {
		case '\\':
			r.escape()

		case '$':
			if err := r.reference(); err != nil {
				return "", err
			}

		case '\'':
			if r.quote == doubleQuoted {
				r.out.WriteByte(c)
			} else {
				r.quote = singleQuoted
			}

		case '"':
			if r.quote == doubleQuoted {
				r.quote = unquoted
			} else {
				r.quote = doubleQuoted
			}

		default:
			r.out.WriteByte(c)
		}
	}

	if r.quote != unquoted {
		return "", ErrUnterminatedQuote.With(
			slog.String("quote", r.quote.String()),
			slog.String("value", r.input),
		)
	}

	return r.out.String(), nil
}

// escape handles the character following a backslash. Multi-byte
// characters are never escapable, so the scan can stay byte-oriented.
func (r *resolver) escape() {
	if r.eof() {
		r.out.WriteByte('\\')

		return
	}

	switch c := r.peek(); c {
	case '$', '\\', '"', '\'', ' ':
		r.out.WriteByte(c)

	case 'n':
		r.out.WriteByte('\n')

	default:
		// Unknown escapes are kept, backslash included.
		r.out.WriteByte('\\')

		return
	}

	r.advance()
}

// reference substitutes the reference following a '$'.
func (r *resolver) reference() error {
	if r.peek() == '{' {
		return r.braced()
	}

	n := identLen(r.input[r.pos:])
	if n == 0 {
		r.out.WriteByte('$')

		return nil
	}

	r.out.WriteString(r.lookup(r.input[r.pos : r.pos+n]))
	r.pos += n

	return nil
}

// braced substitutes a ${NAME} reference; r.pos is at the '{'.
func (r *resolver) braced() error {
	start := r.pos
	r.advance()

	for !r.eof() {
		switch r.peek() {
		case '}':
			name := r.input[start+1 : r.pos]
			r.advance()

			if name == "" {
				r.out.WriteString("${}")
			} else {
				r.out.WriteString(r.lookup(name))
			}

			return nil

		case '"':
			if r.quote == doubleQuoted {
				return r.unterminatedBrace(start)
			}
		}

		r.advance()
	}

	return r.unterminatedBrace(start)
}

func (r *resolver) unterminatedBrace(start int) error {
	return ErrUnterminatedBrace.With(
		slog.String("reference", "$"+r.input[start:r.pos]),
		slog.Int("offset", start-1),
	)
}

// lookup returns the value of name, consulting the environment before the
// namespace.
func (r *resolver) lookup(name string) string {
	if r.env != nil {
		if value, ok := r.env.Lookup(name); ok {
			return value
		}
	}

	value, _ := r.ns.Lookup(name)

	return value
}

func (r *resolver) peek() byte {
	if r.eof() {
		return 0
	}

	return r.input[r.pos]
}

func (r *resolver) next() byte {
	c := r.input[r.pos]
	r.pos++

	return c
}

func (r *resolver) advance() {
	if !r.eof() {
		r.pos++
	}
}

func (r *resolver) eof() bool {
	return r.pos >= len(r.input)
}
