package observability

import (
	"context"
	"log/slog"
)

// slogObserver adapts a *slog.Logger to the Observer interface.
type slogObserver struct {
	logger *slog.Logger
}

// NewSlogObserver returns an Observer backed by the given slog logger. A nil
// logger falls back to slog.Default().
func NewSlogObserver(logger *slog.Logger) Observer {
	if logger == nil {
		logger = slog.Default()
	}
	return &slogObserver{logger: logger}
}

func (o *slogObserver) Debug(ctx context.Context, msg string, attrs ...Attribute) {
	o.logger.DebugContext(ctx, msg, slogArgs(attrs)...)
}

func (o *slogObserver) Info(ctx context.Context, msg string, attrs ...Attribute) {
	o.logger.InfoContext(ctx, msg, slogArgs(attrs)...)
}

func (o *slogObserver) Warn(ctx context.Context, msg string, attrs ...Attribute) {
	o.logger.WarnContext(ctx, msg, slogArgs(attrs)...)
}

func (o *slogObserver) Error(ctx context.Context, msg string, attrs ...Attribute) {
	o.logger.ErrorContext(ctx, msg, slogArgs(attrs)...)
}

func slogArgs(attrs []Attribute) []any {
	args := make([]any, 0, len(attrs)*2)
	for _, a := range attrs {
		args = append(args, a.Key, a.Value)
	}
	return args
}
