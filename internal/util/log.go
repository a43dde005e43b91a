// Package util provides shared utility functions for logging.
package util

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// NewLogger creates a structured logger using log/slog at the specified
// level, writing JSON to the given file. Supported levels: "debug", "info",
// "warn", "error"; unrecognised levels default to "info". An empty path
// discards log output, since the TUI owns the terminal.
func NewLogger(level, path string) (*slog.Logger, error) {
	var slevel slog.Level
	switch strings.ToLower(level) {
	case "debug":
		slevel = slog.LevelDebug
	case "info":
		slevel = slog.LevelInfo
	case "warn":
		slevel = slog.LevelWarn
	case "error":
		slevel = slog.LevelError
	default:
		slevel = slog.LevelInfo
	}

	var w io.Writer = io.Discard
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, err
		}
		w = f
	}

	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: slevel,
	})

	return slog.New(handler), nil
}

// SetDefault configures the provided logger as the default slog logger.
func SetDefault(logger *slog.Logger) {
	slog.SetDefault(logger)
}
