// Package logging builds the process slog.Logger.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ParseLevel maps debug, info, warn and error to slog levels. Unknown
// names fall back to warn.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
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

// New returns a text logger writing to w at the named level.
func New(w io.Writer, level string) *slog.Logger {
	if w == nil {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)}))
}

// RunLogName is the per-run log file name for a process started at t.
func RunLogName(t time.Time) string {
	return "tutor_" + t.Format("20060102_150405") + ".log"
}

// OpenRunLog creates dir and a fresh per-run log file inside it.
// The caller closes the file.
func OpenRunLog(dir string, now time.Time) (*os.File, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	path := filepath.Join(dir, RunLogName(now))
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	return f, nil
}

// Setup returns the process logger. With toFile set, it logs to a per-run
// file under dir and the returned closer releases it; otherwise it logs to
// stderr. A file that cannot be opened degrades to stderr with a warning.
func Setup(level string, toFile bool, dir string, stderr io.Writer) (*slog.Logger, func() error) {
	noop := func() error { return nil }
	if !toFile {
		return New(stderr, level), noop
	}
	f, err := OpenRunLog(dir, time.Now())
	if err != nil {
		logger := New(stderr, level)
		logger.Warn("file logging disabled", "dir", dir, "error", err)
		return logger, noop
	}
	return New(f, level), f.Close
}
