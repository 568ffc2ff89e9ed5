package graph

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
)

// panicLogger receives panics recovered by the executor. The panicking field
// still fails with an error entry; the process keeps serving.
type panicLogger struct {
	log *slog.Logger
}

func newPanicLogger(log *slog.Logger) *panicLogger {
	return &panicLogger{log: log.With(slog.String("component", "graphql"))}
}

func (l *panicLogger) LogPanic(ctx context.Context, value interface{}) {
	l.log.ErrorContext(ctx, "resolver panicked",
		slog.String("panic", fmt.Sprint(value)),
		slog.String("stack", string(debug.Stack())),
	)
}
