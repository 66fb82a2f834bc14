// Package log configures the application's slog logger. The TUI owns the
// terminal, so by default records go to a rotating file instead of stderr.
package log

import (
	"io"
	"log/slog"
	"strings"
	"sync"

	lj "gopkg.in/natefinch/lumberjack.v2"
)

type Options struct {
	Level string // debug|info|warn|error
	File  string // rotating file sink; empty discards output
}

var (
	mu     sync.RWMutex
	logger = slog.New(slog.NewTextHandler(io.Discard, nil))
)

// Init configures the package logger. Safe to call more than once.
func Init(opts Options) {
	var w io.Writer = io.Discard
	if strings.TrimSpace(opts.File) != "" {
		w = &lj.Logger{Filename: opts.File, MaxSize: 5, MaxBackups: 2, MaxAge: 28}
	}
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: parseLevel(opts.Level)})
	l := slog.New(h)

	mu.Lock()
	logger = l
	mu.Unlock()
	slog.SetDefault(l)
}

// L returns the configured logger.
func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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
