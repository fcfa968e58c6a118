// Package logging wraps slog.Logger with the field names used across netbin.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger wraps slog.Logger with netbin-specific helpers.
type Logger struct {
	*slog.Logger
}

// New creates a Logger with the given handler.
// If handler is nil, a text handler writing to stderr at info level is used.
func New(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}

	return &Logger{Logger: slog.New(handler)}
}

// Wrap adapts an existing slog.Logger. A nil logger yields Noop.
func Wrap(l *slog.Logger) *Logger {
	if l == nil {
		return Noop()
	}

	return &Logger{Logger: l}
}

// NewTextLogger creates a Logger writing human-readable text to w.
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	return New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewJSONLogger creates a Logger writing JSON lines to w.
func NewJSONLogger(w io.Writer, level slog.Level) *Logger {
	return New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// Noop creates a Logger that discards all output.
func Noop() *Logger {
	return &Logger{Logger: slog.New(slog.DiscardHandler)}
}

// ParseLevel converts debug, info, warn or error to a slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", name)
	}
}

// WithFile adds a file field to the logger.
func (l *Logger) WithFile(path string) *Logger {
	return &Logger{Logger: l.Logger.With("file", path)}
}

// WithMagic adds the document magic string to the logger.
func (l *Logger) WithMagic(magic string) *Logger {
	return &Logger{Logger: l.Logger.With("magic", magic)}
}

// LogEncode logs the outcome of encoding one document.
func (l *Logger) LogEncode(ctx context.Context, magic string, size int64, err error) {
	if err != nil {
		l.ErrorContext(ctx, "encode failed",
			"magic", magic,
			"bytes", size,
			"error", err,
		)
		return
	}

	l.DebugContext(ctx, "encode completed",
		"magic", magic,
		"bytes", size,
	)
}

// LogDecode logs the outcome of decoding one document.
func (l *Logger) LogDecode(ctx context.Context, magic string, size int64, err error) {
	if err != nil {
		l.ErrorContext(ctx, "decode failed",
			"magic", magic,
			"bytes", size,
			"error", err,
		)
		return
	}

	l.DebugContext(ctx, "decode completed",
		"magic", magic,
		"bytes", size,
	)
}

// LogSnapshot logs the outcome of writing or reading a snapshot.
func (l *Logger) LogSnapshot(ctx context.Context, op, compression string, raw, stored int64, err error) {
	if err != nil {
		l.ErrorContext(ctx, "snapshot "+op+" failed",
			"compression", compression,
			"error", err,
		)
		return
	}

	l.InfoContext(ctx, "snapshot "+op+" completed",
		"compression", compression,
		"raw_bytes", raw,
		"stored_bytes", stored,
	)
}
