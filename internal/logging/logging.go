// Package logging builds the charmbracelet logger shared by the CLI, the
// frontend and the audio engine.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// Prefix tags every line written by flappycat.
const Prefix = "flappycat"

// New creates a logger writing to w at the given level ("debug", "info", ...).
func New(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          Prefix,
		Level:           lvl,
	}), nil
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Prefix: Prefix})
}

// OpenFile creates a logger appending to path. An empty path discards output,
// since the terminal belongs to the game while it runs.
// The returned close function is never nil.
func OpenFile(path, level string) (*log.Logger, func() error, error) {
	if path == "" {
		if _, err := log.ParseLevel(level); err != nil {
			return nil, nil, fmt.Errorf("logging: %w", err)
		}
		return Discard(), func() error { return nil }, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("logging: cannot create directory for %s: %w", path, err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("logging: cannot open %s: %w", path, err)
	}

	logger, err := New(f, level)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return logger, f.Close, nil
}
