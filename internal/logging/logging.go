// Package logging builds the slog.Logger used by the blastoff CLI.
package logging

import (
	"io"
	"log/slog"
	"strings"

	"github.com/katalvlaran/blastoff/internal/config"
)

// ParseLevel maps debug/info/warn/error (any case) to a slog.Level.
// Unknown names fall back to warn.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// New returns a JSON or text logger writing to w at cfg.Level.
func New(cfg config.LoggerConfig, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}
	var handler slog.Handler
	if cfg.JSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// Init builds a logger with New and installs it as the slog default.
func Init(cfg config.LoggerConfig, w io.Writer) *slog.Logger {
	logger := New(cfg, w)
	slog.SetDefault(logger)
	logger.Debug("logger initialized", "level", cfg.Level, "json", cfg.JSON)
	return logger
}
