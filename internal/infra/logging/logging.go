// Package logging provides file-based logging for labctl. Logs go to
// lab.log in the directory named by LAB_LOG_DIR (default: the working
// directory), so CI runs can collect them as artifacts.
package logging

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// LogFileName is the log file labctl appends to.
const LogFileName = "lab.log"

// FileLogger wraps slog.Logger with file-based output.
type FileLogger struct {
	file   *os.File
	logger *slog.Logger
}

// New creates a FileLogger appending to lab.log under dir. An empty dir
// means the current working directory.
func New(dir string, level slog.Level) (*FileLogger, error) {
	if dir == "" {
		dir = "."
	}
	path := filepath.Join(dir, LogFileName)
	// G302: log file is append-only and read by repository users
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o640) //nolint:gosec // log readable by owner and group
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	return &FileLogger{
		file:   f,
		logger: logger,
	}, nil
}

// NewDiscard creates a FileLogger whose output goes nowhere. Useful when
// the log directory cannot be opened and in tests.
func NewDiscard() *FileLogger {
	return &FileLogger{
		logger: slog.New(slog.DiscardHandler),
	}
}

// Logger returns the underlying slog.Logger.
func (l *FileLogger) Logger() *slog.Logger {
	return l.logger
}

// Path returns the log file path, or "" for a discard logger.
func (l *FileLogger) Path() string {
	if l.file == nil {
		return ""
	}
	return l.file.Name()
}

// Close closes the log file.
func (l *FileLogger) Close() error {
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

// ParseLevel parses a log level string into slog.Level.
func ParseLevel(levelStr string) slog.Level {
	switch levelStr {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
