// Package logger adapts log/slog to the narrow ports.Logger surface the
// check and update flows report through.
package logger

import (
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/Josmithr/rushstack/internal/core/ports"
)

// Logger writes slog text records, to stderr by default.
type Logger struct {
	logger *slog.Logger
	mu     sync.RWMutex
}

// New creates a Logger for interactive tool runs.
func New() ports.Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	return &Logger{
		logger: slog.New(handler),
	}
}

// SetOutput redirects log records, primarily so tests can capture them.
func (l *Logger) SetOutput(w io.Writer) {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logger = slog.New(handler)
}

// Info reports routine progress, such as a state file being up to date.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn reports recoverable conditions, such as an untrusted state file.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error reports a failed operation with its cause attached.
func (l *Logger) Error(err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Error("operation failed", "error", err)
}
