package lang

import "log/slog"

// Entry is an assignment produced by the line classifier.
// Raw is the unresolved value text.
type Entry struct {
	Key  string
	Raw  string
	Line int
}

// LogValue implements slog.LogValuer.
func (e Entry) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("key", e.Key),
		slog.String("raw", e.Raw),
		slog.Int("line", e.Line),
	)
}

// Pair is a resolved assignment.
type Pair struct {
	Key   string
	Value string
	Line  int
}

// String returns the pair in KEY=VALUE form.
func (p Pair) String() string { return p.Key + "=" + p.Value }

// isIdentStart reports whether c may begin a key or bare reference.
func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

// isIdentPart reports whether c may continue a key or bare reference.
func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

// identLen returns the length of the identifier at the start of s.
func identLen(s string) int {
	if s == "" || !isIdentStart(s[0]) {
		return 0
	}

	n := 1
	for n < len(s) && isIdentPart(s[n]) {
		n++
	}

	return n
}

// IsIdentifier reports whether s is a valid key.
func IsIdentifier(s string) bool {
	return s != "" && identLen(s) == len(s)
}
