// Package cmd implements the denv subcommands.
//
// Every command reads the dotenv file selected by the global [Source] flags,
// which the cli package stores in the command context with [WithSource].
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path to
	// the configuration file.
	ConfigIdentifier = "config"
)
