// Package logging builds the application logger.
package logging

import (
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

// New returns a logger at the given level. jsonOutput selects the JSON
// handler for machine-readable logs; the default is a tinted terminal
// handler.
func New(level string, jsonOutput bool) *slog.Logger {
	lvl := parseLevel(level)

	if jsonOutput {
		h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
		return slog.New(h).With("app", "transit-arrivals")
	}

	h := tint.NewHandler(os.Stdout, &tint.Options{
		Level:      lvl,
		TimeFormat: time.Kitchen,
	})
	return slog.New(h).With("app", "transit-arrivals")
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
