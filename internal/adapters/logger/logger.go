// Package logger implements a logging adapter using log/slog.
package logger

import (
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/josebatistam/Astroinformatics-II/internal/core/domain"
)

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger   *slog.Logger
	mu       sync.RWMutex
	jsonMode bool
	output   io.Writer
}

// New creates a new Logger writing console output to stderr.
func New() *Logger {
	return &Logger{
		logger: slog.New(newHandler(os.Stderr, false)),
		output: os.Stderr,
	}
}

// SetOutput updates the logger's output destination, preserving the JSON mode.
// If w is nil, os.Stderr is used.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if w == nil {
		w = os.Stderr
	}
	l.output = w
	l.logger = slog.New(newHandler(w, l.jsonMode))
}

// SetJSON switches between JSON and console logging, preserving the output.
func (l *Logger) SetJSON(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.jsonMode = enable
	w := l.output
	if w == nil {
		w = os.Stderr
	}
	l.logger = slog.New(newHandler(w, enable))
}

func newHandler(w io.Writer, json bool) slog.Handler {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if json {
		return slog.NewJSONHandler(w, opts)
	}
	return NewConsoleHandler(w, opts)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs an error with its cause chain.
func (l *Logger) Error(err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if err == nil {
		return
	}

	loc := locationAttrs(err)
	if l.jsonMode {
		l.logger.Error("operation failed", append([]any{"error", err}, loc...)...)
		return
	}

	l.logger.Error(formatErrorEntries(withoutLocation(collectErrorEntries(err))), loc...)
}

// Stage logs the duration of a pipeline stage.
func (l *Logger) Stage(t domain.StageTiming) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	l.logger.Info("stage finished",
		slog.String(KeyStage, t.Name),
		slog.Duration(KeyDuration, t.Duration.Round(time.Microsecond)),
		slog.Bool(KeyFailed, t.Failed),
	)
}

// locationAttrs lifts the catalog location carried by err into log attributes.
func locationAttrs(err error) []any {
	var attrs []any
	for _, key := range locationKeys {
		if v, ok := domain.MetadataValue(err, key); ok {
			attrs = append(attrs, slog.Any(key, v))
		}
	}
	return attrs
}
