package observability

import "context"

// contextKey is a private type for context keys to avoid collisions.
type contextKey struct{ name string }

var (
	observerContextKey = contextKey{"observer"}
	spanContextKey     = contextKey{"span"}
)

// ObserverFromContext extracts the Observer attached to the context, or a
// no-op observer when none is attached. Never returns nil.
func ObserverFromContext(ctx context.Context) Observer {
	if ctx == nil {
		return noopObserver{}
	}
	if obs, ok := ctx.Value(observerContextKey).(Observer); ok && obs != nil {
		return obs
	}
	return noopObserver{}
}

// ContextWithObserver returns a new context with the given observer attached.
func ContextWithObserver(ctx context.Context, obs Observer) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, observerContextKey, obs)
}

// SpanFromContext extracts the Span attached to the context, or a no-op span
// when none is attached. Never returns nil.
func SpanFromContext(ctx context.Context) Span {
	if ctx == nil {
		return noopSpan{}
	}
	if span, ok := ctx.Value(spanContextKey).(Span); ok && span != nil {
		return span
	}
	return noopSpan{}
}

// ContextWithSpan returns a new context with the given span attached.
func ContextWithSpan(ctx context.Context, span Span) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, spanContextKey, span)
}
