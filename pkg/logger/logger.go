package logger

import (
	"io"
	"log"
	"log/slog"
	"os"
	"strings"
)

const (
	// EnvVarLogLevel is the environment variable name for setting the log level.
	EnvVarLogLevel = "LOG_LEVEL"
)

// NewStructuredLogger creates a JSON logger writing to w at the given level.
// Module name and version are included in the logger's context.
// AddSource is enabled for debug level logging only.
//
// Menu output goes to stdout, so applications should pass os.Stderr or a
// file here to keep log lines out of the rendered menus.
func NewStructuredLogger(w io.Writer, module, version, level string) *slog.Logger {
	lev := ParseLogLevel(level)

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     lev,
		AddSource: lev <= slog.LevelDebug,
	})).With("module", module, "version", version)
}

// NewLogLogger creates a standard library log.Logger backed by slog at the
// given level, for APIs like http.Server.ErrorLog.
func NewLogLogger(level slog.Level) *log.Logger {
	return slog.NewLogLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}), level)
}

// SetDefaultLogger sets a stderr structured logger as the default, with the
// level taken from the LOG_LEVEL environment variable.
func SetDefaultLogger(module, version string) {
	SetDefaultLoggerWithLevel(module, version, os.Getenv(EnvVarLogLevel))
}

// SetDefaultLoggerWithLevel sets a stderr structured logger at level as the default.
func SetDefaultLoggerWithLevel(module, version, level string) {
	slog.SetDefault(NewStructuredLogger(os.Stderr, module, version, level))
}

// ParseLogLevel converts a string representation of a log level into a slog.Level.
// Unrecognized strings map to slog.LevelInfo.
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
