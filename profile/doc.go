// Package profile provides optional runtime profiling for denv.
//
// # Overview
//
// This package integrates [github.com/pkg/profile] to provide runtime profiling
// with conditional compilation support. Profiling must be enabled at build
// time using the "pprof" build tag:
//
//	go build -tags pprof -o denv .
//
// When built without the tag, [Config.Start] returns a Session that does
// nothing and [Modes] returns nil.
//
// # Available Profiling Modes
//
//   - allocs:    Memory allocation profiling (all allocations)
//   - block:     Block (synchronization) profiling
//   - clock:     Wall-clock profiling
//   - cpu:       CPU profiling
//   - goroutine: Goroutine profiling
//   - heap:      Heap memory profiling (live allocations)
//   - mem:       General memory profiling
//   - mutex:     Mutex contention profiling
//   - thread:    Thread creation profiling
//   - trace:     Execution trace profiling
//
// # Using File-Based Profiling
//
// A profiler is described by a [Config] and started with [Config.Start]:
//
//	session, err := profile.Config{Mode: "cpu", Dir: "/tmp/profiles"}.Start()
//	if err != nil {
//		return err
//	}
//	defer session.Stop()
//
// Profile files are written to the configured directory, or [DefaultDir],
// with names matching the profiling mode (e.g., cpu.pprof, mem.pprof).
//
// # Command-Line Usage
//
//	# Profile loading a large dotenv file
//	denv --pprof-mode cpu --file big.env print > /dev/null
//
//	# Heap profile written to a custom directory
//	denv --pprof-mode heap --pprof-dir ./profiles print json
//
// The default output directory, [DefaultDir], is the pprof subdirectory of
// the denv cache directory, such as $XDG_CACHE_HOME/denv/pprof.
//
// # Analyzing Profile Data
//
//	go tool pprof ./denv ./profiles/cpu.pprof
//	go tool pprof -http=: ./profiles/cpu.pprof
//
// When built with the pprof tag, this package also imports [net/http/pprof],
// which registers HTTP handlers at /debug/pprof/ on the default mux.
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
