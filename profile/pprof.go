//go:build pprof

package profile

import (
	"log/slog"
	"maps"
	"slices"
	"sync"

	"github.com/pkg/profile"

	_ "net/http/pprof" // register HTTP handlers
)

// Modes returns the supported profiling modes, sorted.
var Modes = sync.OnceValue(
	func() []string { return slices.Sorted(maps.Keys(mode)) },
)

var mode = map[string]func(*profile.Profile){
	"allocs":    profile.MemProfileAllocs,
	"block":     profile.BlockProfile,
	"clock":     profile.ClockProfile,
	"cpu":       profile.CPUProfile,
	"goroutine": profile.GoroutineProfile,
	"heap":      profile.MemProfileHeap,
	"mem":       profile.MemProfile,
	"mutex":     profile.MutexProfile,
	"thread":    profile.ThreadcreationProfile,
	"trace":     profile.TraceProfile,
}

// start starts a pkg/profile session for c.Mode.
//
// The profiler's interrupt hook is disabled: it would exit the process
// before exec could forward the signal to its command.
func start(c Config) (Session, error) {
	opt, ok := mode[c.Mode]
	if !ok {
		return nil, ErrUnknownMode.With(
			slog.String("mode", c.Mode),
			slog.Any("modes", Modes()),
		)
	}

	opts := []func(*profile.Profile){
		opt,
		profile.ProfilePath(c.dir()),
		profile.NoShutdownHook,
	}

	if c.Quiet {
		opts = append(opts, profile.Quiet)
	}

	return profile.Start(opts...), nil
}
