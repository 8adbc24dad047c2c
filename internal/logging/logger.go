// Package logging builds the structured slog logger shared by the API
// process. The logger is created once in main and passed to every component
// that logs; nothing in this module reads a package-level logger.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// NewStructuredLogger returns a JSON logger on stderr tagged with module and version.
func NewStructuredLogger(module, version, level string) *slog.Logger {
	return NewStructuredLoggerWithWriter(os.Stderr, module, version, level)
}

// NewStructuredLoggerWithWriter is NewStructuredLogger with an explicit destination.
func NewStructuredLoggerWithWriter(w io.Writer, module, version, level string) *slog.Logger {
	lvl := ParseLevel(level)
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     lvl,
		AddSource: lvl <= slog.LevelDebug,
	})
	return slog.New(handler).With("module", module, "version", version)
}

// ParseLevel maps a case-insensitive level name to a slog level, defaulting to info.
func ParseLevel(level string) slog.Level {
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

// Discard returns a logger that drops everything. Used by tests.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
