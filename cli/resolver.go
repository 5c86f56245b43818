package cli

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/denv/lang"
	"github.com/ardnew/denv/log"
)

// resolve returns a [kong.ConfigurationLoader] that parses config files
// written in dotenv syntax.
//
// It can be used with [kong.Configuration] like this:
//
//	kong.Configuration(resolve(ctx), "/path/to/config")
//
// Each key names a flag, upper-cased with hyphens written as underscores.
// Values are resolved by the dotenv parser, so they may be quoted and may
// reference environment variables or earlier keys.
//
// Example config file:
//
//	LOG_LEVEL=debug
//	LOG_FORMAT=json
//	LOG_PRETTY=true
//	LIST_VAR="PATH,MANPATH"
//
// This configuration will be applied to Kong flags:
//
//	--log-level=debug
//	--log-format=json
//	--log-pretty=true
//	--list-var=PATH,MANPATH
//
// Command-line flags override config file values.
func resolve(ctx context.Context) func(r io.Reader) (kong.Resolver, error) {
	return func(r io.Reader) (kong.Resolver, error) {
		ns, err := lang.ParseReader(ctx, r)
		if err != nil {
			// Parse error - ignore the config file
			log.WarnContext(ctx, "ignoring configuration file",
				slog.Any("error", err))

			return config{}, nil
		}

		cfg := make(config, ns.Len())
		for key, value := range ns.All() {
			cfg[flagName(key)] = value
		}

		return cfg, nil
	}
}

// flagName returns the flag name of a configuration file key.
func flagName(key string) string {
	return strings.ToLower(strings.ReplaceAll(key, "_", "-"))
}

// config implements [kong.Resolver] for dotenv configs.
type config map[string]any

// Validate implements [kong.Resolver].
func (r config) Validate(*kong.Application) error {
	// No validation needed - the config was already parsed successfully
	return nil
}

// Resolve implements [kong.Resolver].
func (r config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	if value, ok := r[flag.Name]; ok {
		return value, nil
	}

	// Not found - return nil to let Kong use defaults
	return nil, nil
}
