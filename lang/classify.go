package lang

import (
	"iter"
	"log/slog"
	"strings"
	"unicode"
)

// byteOrderMark may precede the first line of content.
const byteOrderMark = "\ufeff"

// Scan returns the assignments in content, in order.
//
// Blank and comment lines are skipped. On the first line that is neither,
// Scan yields an [ErrMalformedLine] error carrying that line's number
// (also set in the yielded Entry's Line) and stops. The sequence reads
// only content, so it may be ranged over any number of times.
func Scan(content string) iter.Seq2[Entry, error] {
	return func(yield func(Entry, error) bool) {
		line := 0

		for text := range strings.Lines(strings.TrimPrefix(content, byteOrderMark)) {
			line++

			entry, ok, err := ClassifyLine(text, line)
			if err != nil {
				yield(Entry{Line: line}, err)

				return
			}

			if !ok {
				continue
			}

			if !yield(entry, nil) {
				return
			}
		}
	}
}

// ClassifyLine classifies a single line of text numbered line.
//
// It returns ok == false for blank and comment lines, and an
// [ErrMalformedLine] error for anything other than an assignment.
func ClassifyLine(text string, line int) (entry Entry, ok bool, err error) {
	s := trimSpace(text)

	if s == "" || s[0] == '#' {
		return Entry{}, false, nil
	}

	malformed := func(reason string) error {
		return ErrMalformedLine.WithLine(line).With(
			slog.String("reason", reason),
			slog.String("text", s),
		)
	}

	if rest, found := strings.CutPrefix(s, "export"); found &&
		rest != "" && isBlank(rest[0]) {
		s = trimBlank(rest)
	}

	n := identLen(s)
	if n == 0 {
		return Entry{}, false, malformed("expected key")
	}

	key, rest := s[:n], trimBlank(s[n:])

	if rest == "" || rest[0] != '=' {
		return Entry{}, false, malformed("expected '=' after key")
	}

	return Entry{Key: key, Raw: trimBlank(rest[1:]), Line: line}, true, nil
}

func isBlank(c byte) bool { return c == ' ' || c == '\t' }

// trimBlank removes leading spaces and tabs.
func trimBlank(s string) string { return strings.TrimLeft(s, " \t") }

// trimSpace removes surrounding white space from text. A trailing blank
// escaped by an odd run of backslashes belongs to the value and is kept.
func trimSpace(text string) string {
	s := strings.TrimLeftFunc(text, unicode.IsSpace)
	t := strings.TrimRightFunc(s, unicode.IsSpace)

	if len(t) < len(s) && isBlank(s[len(t)]) &&
		(len(t)-len(strings.TrimRight(t, `\`)))%2 == 1 {
		return s[:len(t)+1]
	}

	return t
}
