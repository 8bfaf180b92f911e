// Package logger wires up the CLI's structured logger: a single slog.Logger
// writing rotated files via lumberjack. Adapted from OpenTowerMUD's
// internal/logger package, cut down to the two-level scheme the solver's
// --log-level flag actually exposes (debug, info) instead of the MUD
// server's four-level, dual-sink (console+file) setup.
package logger

import (
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Config configures New.
type Config struct {
	// Level is "debug" or "info"; anything else defaults to info.
	Level string

	// FilePath is where rotated logs are written. Empty means stderr
	// only, no rotation - useful for tests and for --log-level runs
	// that don't care about a journal on disk.
	FilePath string
}

// New builds a slog.Logger per Config. When FilePath is set, records go
// to a lumberjack-rotated file instead of stderr; lumberjack's defaults
// (100MB before rotation, no age limit, no compression) are left as-is
// since a solver run's log volume never approaches them.
func New(cfg Config) *slog.Logger {
	level := parseLevel(cfg.Level)
	opts := &slog.HandlerOptions{Level: level}

	var w *os.File
	var handler slog.Handler
	if cfg.FilePath != "" {
		lj := &lumberjack.Logger{Filename: cfg.FilePath}
		handler = slog.NewTextHandler(lj, opts)
	} else {
		w = os.Stderr
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info", "":
		return slog.LevelInfo
	default:
		return slog.LevelInfo
	}
}
