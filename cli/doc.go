// Package cli contains the command line interface for denv.
//
// # Usage
//
//	denv [flags] [exec] COMMAND [ARGS...]
//	denv [flags] print [env|json|yaml]
//	denv [flags] get NAME
//	denv [flags] browse
//	denv [flags] init [--force]
//
// Without a subcommand, the arguments are run as a command with the
// variables of the nearest .env file installed in its environment:
//
//	denv ./server --port 8080
//
// # Source Options
//
//   - --file, -f: Dotenv file name searched for in the working directory and
//     its parents, a path, or "-" for stdin (default: .env)
//   - --dir, -C: Directory where the search begins
//   - --prefix: Keep only variables whose name begins with the prefix
//   - --filter: Keep only variables for which an expression over key, value
//     and line holds, such as 'key startsWith "APP_" && value != ""'
//   - --overwrite: Replace variables already defined in the environment
//   - --list-var: Variables whose loaded items are prepended to the existing
//     value (default: PATH)
//
// # Configuration File
//
// Flag defaults are read from $XDG_CONFIG_HOME/denv/config, which is itself
// a dotenv file. Keys are flag names upper-cased with underscores:
//
//	LOG_LEVEL=debug
//	LIST_VAR="PATH,MANPATH"
//
// A config.json file in the same directory is read as well. The init
// command writes the current flag values to the configuration file.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (text, json)
//   - --log-time: Set timestamp format (RFC3339, RFC3339Nano, Kitchen, or a
//     Go layout; "none" omits it)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Colorize log output
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof -o denv .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default: the pprof
//     subdirectory of the cache directory)
package cli
