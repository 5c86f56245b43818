package profile

import (
	"path/filepath"

	"github.com/ardnew/denv/lang"
	"github.com/ardnew/denv/pkg"
)

// ErrUnknownMode is returned by [Config.Start] for a mode not in [Modes].
var ErrUnknownMode = lang.NewError("unknown profiling mode")

// Config selects a profiling mode and the directory its output is written to.
type Config struct {
	Mode  string // One of Modes; empty disables profiling
	Dir   string // Output directory; empty selects DefaultDir
	Quiet bool   // Suppress the profiler's own log output
}

// Session is a running profiler. Stop flushes its output and may be called
// more than once.
type Session interface{ Stop() }

// DefaultDir returns the directory profiles are written to when
// [Config.Dir] is empty: the pprof subdirectory of the denv cache directory.
func DefaultDir() string { return filepath.Join(pkg.CacheDir(), Tag) }

// Start starts the profiler selected by c.
//
// A Config without a Mode, or any Config in a binary built without the
// pprof tag, starts a Session that does nothing.
func (c Config) Start() (Session, error) {
	if c.Mode == "" {
		return ignore{}, nil
	}

	return start(c)
}

// dir returns the output directory of c.
func (c Config) dir() string {
	if c.Dir == "" {
		return DefaultDir()
	}

	return c.Dir
}

type ignore struct{}

func (ignore) Stop() {}
