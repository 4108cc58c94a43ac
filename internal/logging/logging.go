// Package logging builds the app's slog logger. The TUI owns the terminal,
// so logs go to a file under the XDG state directory.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/abhisek/hemepath/internal/store"
)

// DefaultPath returns $XDG_STATE_HOME/hemepath/hemepath.log, falling back
// to ~/.local/state.
func DefaultPath() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, store.AppName, store.AppName+".log")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return store.AppName + ".log"
	}
	return filepath.Join(home, ".local", "state", store.AppName, store.AppName+".log")
}

// ParseLevel accepts debug, info, warn or error (any case).
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level %q: %w", s, err)
	}
	return l, nil
}

// New returns a text logger writing to w.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return New(io.Discard, slog.LevelError)
}

// Open appends to the log file at path, creating its directory. The caller
// closes the returned file.
func Open(path string, level slog.Level) (*slog.Logger, io.Closer, error) {
	if path == "" {
		path = DefaultPath()
	}
	if err := store.EnsureDir(path); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return New(f, level), f, nil
}
