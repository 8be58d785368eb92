package component

import (
	"log/slog"
	"sync"
)

// Logger provides structured logging for a single component. It wraps a
// *slog.Logger with the component's identity so every record carries the
// component name and id without callers repeating them.
type Logger struct {
	componentName string
	componentID   string
	logger        *slog.Logger
}

// NewLogger creates a component logger. A nil slog.Logger falls back to
// slog.Default().
func NewLogger(componentName, componentID string, logger *slog.Logger) *Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return &Logger{
		componentName: componentName,
		componentID:   componentID,
		logger:        logger,
	}
}

// Debug logs a debug-level message
func (cl *Logger) Debug(msg string, args ...any) {
	cl.logger.Debug(msg, cl.withIdentity(args)...)
}

// Info logs an info-level message
func (cl *Logger) Info(msg string, args ...any) {
	cl.logger.Info(msg, cl.withIdentity(args)...)
}

// Warn logs a warning-level message
func (cl *Logger) Warn(msg string, args ...any) {
	cl.logger.Warn(msg, cl.withIdentity(args)...)
}

// Error logs an error-level message with optional error details
func (cl *Logger) Error(msg string, err error, args ...any) {
	if err != nil {
		args = append(args, "error", err)
	}
	cl.logger.Error(msg, cl.withIdentity(args)...)
}

func (cl *Logger) withIdentity(args []any) []any {
	out := make([]any, 0, len(args)+4)
	out = append(out, "component", cl.componentName, "id", cl.componentID)
	return append(out, args...)
}

// Warning channel.
//
// Deprecated-usage diagnostics (global registry fallback, discouraged child
// configurations) are non-fatal and never alter control flow; they go
// through a package-level logger the host may replace or silence.

var warnChannel = struct {
	mu sync.RWMutex
	l  *slog.Logger
}{}

// SetWarningLogger replaces the logger used for deprecation and misuse
// warnings. Passing nil restores slog.Default().
func SetWarningLogger(l *slog.Logger) {
	warnChannel.mu.Lock()
	defer warnChannel.mu.Unlock()
	warnChannel.l = l
}

func warningLogger() *slog.Logger {
	warnChannel.mu.RLock()
	defer warnChannel.mu.RUnlock()
	if warnChannel.l != nil {
		return warnChannel.l
	}
	return slog.Default()
}
