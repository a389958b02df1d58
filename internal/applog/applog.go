// Package applog centralizes the structured logging conventions shared by
// the cstv CLI, HTTP server, and store layer: one log/slog logger per
// component, attributes instead of format strings, and a single place to
// retarget output (stderr text by default, JSON when CSTV_LOG_FORMAT=json).
package applog

import (
	"log/slog"
	"os"
	"sync"
)

var (
	once sync.Once
	base *slog.Logger
)

// Root returns the process-wide base logger, building it on first use from
// the CSTV_LOG_FORMAT and CSTV_LOG_LEVEL environment variables.
func Root() *slog.Logger {
	once.Do(func() {
		level := slog.LevelInfo
		switch os.Getenv("CSTV_LOG_LEVEL") {
		case "debug":
			level = slog.LevelDebug
		case "warn":
			level = slog.LevelWarn
		case "error":
			level = slog.LevelError
		}

		opts := &slog.HandlerOptions{Level: level}
		var handler slog.Handler
		if os.Getenv("CSTV_LOG_FORMAT") == "json" {
			handler = slog.NewJSONHandler(os.Stderr, opts)
		} else {
			handler = slog.NewTextHandler(os.Stderr, opts)
		}
		base = slog.New(handler)
	})
	return base
}

// For returns a logger scoped to component (e.g. "cstv", "server", "store"),
// tagging every record it emits with a "component" attribute.
func For(component string) *slog.Logger {
	return Root().With("component", component)
}
