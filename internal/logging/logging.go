// Package logging builds the slog loggers used by the estimator
// commands.
package logging

import (
	"io"
	"log/slog"
	"strings"
)

// New returns a JSON-handler logger at the given level.
func New(level string, output io.Writer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(output, &slog.HandlerOptions{
		Level: ParseLevel(level),
	}))
}

// NewText returns a text-handler logger at the given level, the usual
// choice for interactive runs.
func NewText(level string, output io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(output, &slog.HandlerOptions{
		Level: ParseLevel(level),
	}))
}

// ParseLevel maps a config-file level string to a slog.Level,
// defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info", "":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
