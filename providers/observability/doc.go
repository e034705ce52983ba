// Package observability defines the injected diagnostics surface used across
// the translation layer: a leveled, attribute-carrying [Observer] and a
// lightweight [Span], both resolved from context.Context with no-op defaults.
// Components never branch on process-wide debug state; callers opt in by
// attaching an observer or span to the context, for example the slog-backed
// observer from [NewSlogObserver].
package observability
