// Package logger provides structured logging for the puzzle runner.
// It wraps the standard log/slog package so every command logs with the same
// handler, level and field names (snake_case).
//
// Logs are written to stderr; stdout is reserved for puzzle answers.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger is the default logger instance.
var Logger *slog.Logger

// Format selects the log handler.
type Format string

const (
	// FormatText is the default human-readable key=value format.
	FormatText Format = "text"
	// FormatJSON is machine-readable structured logging.
	FormatJSON Format = "json"
)

func init() {
	Logger = newLogger(os.Stderr, slog.LevelWarn, FormatText)
}

// Configure replaces the default logger.
func Configure(w io.Writer, level slog.Level, format Format) {
	Logger = newLogger(w, level, format)
}

// SetLevel changes the level of the stderr logger, keeping the text format.
func SetLevel(level slog.Level) {
	Logger = newLogger(os.Stderr, level, FormatText)
}

func newLogger(w io.Writer, level slog.Level, format Format) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if format == FormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// ParseLevel converts a level name (debug, info, warn, error) to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q (use debug, info, warn, or error)", s)
	}
}

// ParseFormat validates a log format name.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return FormatText, fmt.Errorf("unknown log format %q (use text or json)", s)
	}
}

// Info logs an informational message.
func Info(msg string, args ...any) {
	Logger.Info(msg, args...)
}

// Debug logs a debug message.
func Debug(msg string, args ...any) {
	Logger.Debug(msg, args...)
}

// Warn logs a warning message.
func Warn(msg string, args ...any) {
	Logger.Warn(msg, args...)
}

// Error logs an error message.
func Error(msg string, args ...any) {
	Logger.Error(msg, args...)
}

// WithPuzzle returns a logger with puzzle context.
func WithPuzzle(day, part int) *slog.Logger {
	return Logger.With("day", day, "part", part)
}

// WithInput returns a logger with puzzle and input file context.
func WithInput(day, part int, path string) *slog.Logger {
	return Logger.With("day", day, "part", part, "input", path)
}
