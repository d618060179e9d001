// SPDX-License-Identifier: MIT
//
// Package logger builds the slog.Logger used by the degseq CLI. File output
// rotates through lumberjack.
package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Config selects level, format and sink.
type Config struct {
	Level      string // debug, info, warn, error
	Format     string // json, text
	Output     string // stdout, stderr, file
	FilePath   string
	MaxSize    int // MB
	MaxBackups int
	MaxAge     int // days
	Compress   bool
}

// ParseLevel maps a level name to slog.Level; unknown names mean info.
func ParseLevel(s string) slog.Level {
	switch s {
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

// New returns a logger and the closer of its sink. The closer is a no-op
// for stdout and stderr.
func New(cfg Config) (*slog.Logger, io.Closer, error) {
	var (
		w      io.Writer
		closer io.Closer = nopCloser{}
	)
	switch cfg.Output {
	case "stdout":
		w = os.Stdout
	case "file":
		if err := os.MkdirAll(filepath.Dir(cfg.FilePath), 0o755); err != nil {
			return nil, nil, err
		}
		lj := &lumberjack.Logger{
			Filename:   cfg.FilePath,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		}
		w, closer = lj, lj
	default:
		w = os.Stderr
	}

	return slog.New(NewHandler(w, cfg)), closer, nil
}

// NewHandler returns the handler New would install, writing to w.
func NewHandler(w io.Writer, cfg Config) slog.Handler {
	lvl := ParseLevel(cfg.Level)
	opts := &slog.HandlerOptions{
		Level:     lvl,
		AddSource: lvl == slog.LevelDebug,
	}
	if cfg.Format == "json" {
		return slog.NewJSONHandler(w, opts)
	}

	return slog.NewTextHandler(w, opts)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
