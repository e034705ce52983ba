package observability

import (
	"context"
	"time"
)

// Observer provides structured, leveled diagnostics for a single call chain.
// Implementations must be safe for concurrent use.
type Observer interface {
	Debug(ctx context.Context, msg string, attrs ...Attribute)
	Info(ctx context.Context, msg string, attrs ...Attribute)
	Warn(ctx context.Context, msg string, attrs ...Attribute)
	Error(ctx context.Context, msg string, attrs ...Attribute)
}

// Span represents a single unit of work being traced.
type Span interface {
	// AddEvent records a point-in-time event on the span.
	AddEvent(name string, attrs ...Attribute)
	// SetAttributes adds attributes to the span.
	SetAttributes(attrs ...Attribute)
	// RecordError records an error on the span.
	RecordError(err error)
}

// Attribute is a key-value pair of diagnostic metadata.
type Attribute struct {
	Key   string
	Value any
}

// String creates a string attribute.
func String(key, value string) Attribute {
	return Attribute{Key: key, Value: value}
}

// Int creates an integer attribute.
func Int(key string, value int) Attribute {
	return Attribute{Key: key, Value: value}
}

// Bool creates a boolean attribute.
func Bool(key string, value bool) Attribute {
	return Attribute{Key: key, Value: value}
}

// Duration creates a duration attribute.
func Duration(key string, value time.Duration) Attribute {
	return Attribute{Key: key, Value: value}
}

// Error creates an error attribute.
func Error(err error) Attribute {
	if err == nil {
		return Attribute{Key: "error", Value: ""}
	}
	return Attribute{Key: "error", Value: err.Error()}
}

// noopObserver discards everything.
type noopObserver struct{}

func (noopObserver) Debug(context.Context, string, ...Attribute) {}

func (noopObserver) Info(context.Context, string, ...Attribute) {}

func (noopObserver) Warn(context.Context, string, ...Attribute) {}

func (noopObserver) Error(context.Context, string, ...Attribute) {}

// noopSpan discards everything.
type noopSpan struct{}

func (noopSpan) AddEvent(string, ...Attribute) {}

func (noopSpan) SetAttributes(...Attribute) {}

func (noopSpan) RecordError(error) {}

// NoopObserver returns an Observer that discards all output.
func NoopObserver() Observer { return noopObserver{} }

// NoopSpan returns a Span that discards all output.
func NoopSpan() Span { return noopSpan{} }
