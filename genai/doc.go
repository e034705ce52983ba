// Package genai defines the provider-agnostic conversational content model
// shared by all wire providers: turns composed of typed parts (text, inline
// binary data, function calls, function responses), tool declarations, and
// generation configuration. Each provider's conversion layer maps these types
// to its own wire format, keeping callers decoupled from wire details.
//
// Request content is accepted permissively: [NormalizeContents] coerces a
// plain string, a single [Part], a flat []Part, or a []Turn into a canonical
// []Turn without ever failing. Responses come back as [GenerateResponse],
// either complete or as standalone streamed deltas carried by a
// [GenerateStream].
package genai
