// Package log provides a concurrency-safe simplified logging interface
// based on [log/slog].
//
// # Basic Usage
//
//	logger := log.Make(os.Stderr)
//	logger.Info("loaded", slog.String("path", ".env"))
//
// # Configuration
//
// Loggers are configured with functional options at creation time:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithTimeLayout("RFC3339Nano"),
//		log.WithCaller(true))
//
// [Logger.Wrap] derives a logger with some options overridden, and
// [Logger.With] derives one that adds attributes to every message.
//
// # Package-level Logger
//
// The package keeps a default logger writing to standard error. [Config]
// reconfigures it, and the package functions ([Info], [ErrorContext], ...)
// log through it.
//
// # Levels and Formats
//
// Five levels are supported: [LevelTrace], [LevelDebug], [LevelInfo],
// [LevelWarn], and [LevelError]. Records are written as [FormatText] (the
// default) or [FormatJSON]; either can be colorized with [WithPretty].
package log
