package trace

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/gridnav/bfs"
	"github.com/katalvlaran/gridnav/grid"
)

// Tracer emits one slog record per search event. The zero value is not
// usable; construct with New.
type Tracer struct {
	// Logger receives the records.
	Logger *slog.Logger
	// Level is the level every record is emitted at.
	Level slog.Level
}

// New returns a Tracer over logger at slog.LevelInfo.
// A nil logger falls back to slog.Default().
func New(logger *slog.Logger) *Tracer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Tracer{Logger: logger, Level: slog.LevelInfo}
}

// Options returns the hook bindings for one FindPath call. Splice them
// into the option list:
//
//	res, err := bfs.FindPath(f, start, goal, tracer.Options()...)
//
// The bindings observe only; the search outcome is identical with or
// without them.
func (t *Tracer) Options() []bfs.Option {
	return []bfs.Option{
		bfs.WithOnEnqueue(func(c grid.Cell, depth int) {
			t.log("enqueue",
				slog.String("cell", c.String()),
				slog.Int("depth", depth))
		}),
		bfs.WithOnDequeue(func(c grid.Cell, depth int) {
			t.log("dequeue",
				slog.String("cell", c.String()),
				slog.Int("depth", depth))
		}),
		bfs.WithOnExpand(func(cur grid.Cell, free, blocked []grid.Cell) {
			t.log("expand",
				slog.String("cell", cur.String()),
				slog.String("free", fmt.Sprint(free)),
				slog.String("blocked", fmt.Sprint(blocked)))
		}),
	}
}

func (t *Tracer) log(msg string, attrs ...slog.Attr) {
	t.Logger.LogAttrs(context.Background(), t.Level, msg, attrs...)
}

// key is an unexported type to prevent collisions with context keys
// from other packages.
type key struct{}

var loggerKey = key{}

// WithLogger returns a new context with the provided logger embedded.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext extracts the slog.Logger from a context. If no logger is
// found, it returns the default global logger.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
