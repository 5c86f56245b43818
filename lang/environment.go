package lang

import (
	"os"
	"strings"
)

// Environment provides read-only access to variables that take precedence
// over a [Namespace] during resolution.
type Environment interface {
	Lookup(name string) (string, bool)
}

// EnvironmentFunc adapts a lookup function to [Environment].
type EnvironmentFunc func(name string) (string, bool)

// Lookup calls f(name).
func (f EnvironmentFunc) Lookup(name string) (string, bool) { return f(name) }

// MapEnv is an [Environment] backed by a fixed map.
type MapEnv map[string]string

// Lookup returns the value stored for name.
func (m MapEnv) Lookup(name string) (string, bool) {
	value, ok := m[name]

	return value, ok
}

// ProcessEnv reads the process environment at the time of each lookup.
var ProcessEnv Environment = EnvironmentFunc(os.LookupEnv)

// EmptyEnv defines no variables.
var EmptyEnv Environment = MapEnv(nil)

// EnvironEnv returns an [Environment] built from "KEY=VALUE" strings, such
// as the result of os.Environ. Later entries override earlier ones and
// strings without '=' are ignored.
func EnvironEnv(environ []string) MapEnv {
	env := make(MapEnv, len(environ))

	for _, kv := range environ {
		// Windows keeps per-drive variables like "=C:=C:\", whose name
		// starts with '='.
		i := strings.IndexByte(kv[min(1, len(kv)):], '=')
		if i < 0 {
			continue
		}

		i += min(1, len(kv))
		env[kv[:i]] = kv[i+1:]
	}

	return env
}
