// Package logging builds the process logger and carries it through contexts.
//
//	logger := logging.New("info", "json", os.Stderr)
//	ctx = logging.WithLogger(ctx, logger)
//
// Services enrich the context logger once per command so every line written
// below them carries the same identifiers:
//
//	ctx = logging.With(ctx, slog.String("board_id", id.String()))
//	logging.FromContext(ctx).ErrorContext(ctx, "failed to move card",
//	    slog.String("operation", "MoveCard"),
//	    slog.Any("error", err),
//	)
//
// Failures are logged with the operation name, the entity identifiers and
// the full error via slog.Any("error", err).
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

type contextKey struct{}

// New creates a *slog.Logger writing to w.
//
// level is one of "debug", "info", "warn" or "error" (any case); anything
// else means info. format "text" selects the text handler and every other
// value the JSON handler. At debug level the source location is included.
// Sensitive attributes are redacted by both handlers.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl, _ := ParseLevel(level)

	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl == slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}

	var handler slog.Handler
	if format == "text" {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	return slog.New(handler)
}

// WithLogger stores logger in ctx.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored in ctx, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// With returns a context whose logger carries attrs in addition to the
// attributes of the logger already in ctx.
func With(ctx context.Context, attrs ...any) context.Context {
	return WithLogger(ctx, FromContext(ctx).With(attrs...))
}

// ParseLevel maps a level name to its slog.Level. It reports false and
// returns slog.LevelInfo for unknown names.
func ParseLevel(level string) (slog.Level, bool) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}
