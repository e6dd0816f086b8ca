package cluster

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/jbox/candidate"
	"github.com/katalvlaran/jbox/circuit"
)

// Logger wraps slog.Logger with clustering-specific helpers so that field
// names stay consistent across the package and its callers.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler.
// If handler is nil, a text handler on stderr at Info level is used.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}

	return &Logger{Logger: slog.New(handler)}
}

// NewTextLogger creates a Logger writing human-readable lines to w.
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// NoopLogger discards all output. It is the default of Builder and Engine.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, nil))
}

// LogConnect records one applied candidate and the branch Connect took.
func (l *Logger) LogConnect(ctx context.Context, p candidate.Pair, out circuit.Outcome, circuits int) {
	l.DebugContext(ctx, "connect",
		"i", p.I,
		"j", p.J,
		"distance", p.Distance,
		"outcome", out.String(),
		"circuits", circuits,
	)
}

// LogRun summarises a Run call.
func (l *Logger) LogRun(ctx context.Context, start, end, consumed, circuits int, spanning bool) {
	l.InfoContext(ctx, "run completed",
		"start", start,
		"end", end,
		"consumed", consumed,
		"circuits", circuits,
		"spanning", spanning,
	)
}

// LogSpanning records the pair that first left a single all-spanning circuit.
func (l *Logger) LogSpanning(ctx context.Context, p candidate.Pair, index int) {
	l.InfoContext(ctx, "full connectivity reached",
		"i", p.I,
		"j", p.J,
		"distance", p.Distance,
		"candidate", index,
	)
}
