// Package internal holds configuration and logging setup shared by the
// command entry points.
package internal

import (
	"log/slog"
	"os"
	"strings"
)

// SetupLogger returns a text-handler slog.Logger at the requested level.
// Unknown levels fall back to info.
func SetupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch strings.ToLower(level) {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
}
