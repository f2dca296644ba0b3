// Package logging builds the run's structured logger: a slog text handler
// writing to the console and, optionally, to an append-only log file.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/ironsheep/image-renamer/internal/config"
)

// Logger is a *slog.Logger that owns its log file. Call Close when done.
type Logger struct {
	*slog.Logger

	mu   sync.Mutex
	file *os.File
}

// New creates a Logger for cfg writing to console (usually os.Stderr).
// When cfg.LogFile is set the file is created if needed and appended to.
func New(cfg *config.Config, console io.Writer) (*Logger, error) {
	level, err := Level(cfg.LogLevel, cfg.Verbose)
	if err != nil {
		return nil, err
	}

	l := &Logger{}
	out := console
	if cfg.LogFile != "" {
		if dir := filepath.Dir(cfg.LogFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory: %w", err)
			}
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		l.file = f
		out = io.MultiWriter(console, f)
	}

	l.Logger = slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level}))
	return l, nil
}

// Level maps a configured level name to a slog level. An empty name means
// Info when verbose and Warn otherwise.
func Level(name string, verbose bool) (slog.Level, error) {
	switch name {
	case "":
		if verbose {
			return slog.LevelInfo, nil
		}
		return slog.LevelWarn, nil
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("unknown log level %q", name)
}

// Close closes the log file if one was opened.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		return err
	}
	return nil
}
