package genai

import "context"

// ContentGenerator is the interface wire providers implement. promptID is an
// opaque caller-supplied identifier attached to observability output; pass
// the empty string when unused.
type ContentGenerator interface {
	// GenerateContent performs one blocking generation round trip.
	GenerateContent(ctx context.Context, req GenerateRequest, promptID string) (*GenerateResponse, error)

	// GenerateContentStream starts a streaming generation and returns a lazy
	// stream of standalone deltas.
	GenerateContentStream(ctx context.Context, req GenerateRequest, promptID string) (*GenerateStream, error)

	// CountTokens approximates the token count of the request contents
	// locally, without a network call.
	CountTokens(ctx context.Context, req GenerateRequest) (*TokenCountResponse, error)

	// EmbedContent embeds the flattened text of the request content.
	EmbedContent(ctx context.Context, req EmbedRequest) (*EmbedResponse, error)
}
