package openai

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/genwire/genwire/genai"
	"github.com/genwire/genwire/internal/utils"
)

// GenerateContentStream starts a streaming chat completion and returns a lazy
// stream of standalone deltas, one per SSE chunk. Translation is stateless:
// text and tool call argument fragments are NOT accumulated across chunks
// (use genai.GenerateStream.Collect for that). Usage is requested via
// stream_options and arrives on the final chunk.
//
// Canceling ctx terminates the sequence without a trailing error. The
// network connection is released when the sequence finishes or the caller
// stops iterating.
func (c *Client) GenerateContentStream(ctx context.Context, req genai.GenerateRequest, promptID string) (*genai.GenerateStream, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	wire, err := buildRequest(req, c.model)
	if err != nil {
		return nil, err
	}
	wire.Stream = utils.Ptr(true)
	wire.StreamOptions = &streamOptions{IncludeUsage: true}
	annotateSpan(ctx, wire, promptID, true)

	resp, err := utils.PostStream(ctx, c.httpClient, c.baseURL+chatCompletionsEndpoint, c.apiKey, wire)
	if err != nil {
		return nil, fmt.Errorf("starting completion stream: %w", err)
	}

	seq := func(yield func(*genai.GenerateResponse, error) bool) {
		defer utils.CloseWithLog(ctx, resp.Body)
		scanner := utils.NewSSEScanner(resp.Body)

		for {
			if ctx.Err() != nil {
				return
			}
			payload, err := scanner.Next()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				// A read failure caused by cancellation ends the stream
				// quietly; everything else surfaces to the consumer.
				if ctx.Err() != nil {
					return
				}
				yield(nil, fmt.Errorf("reading completion stream: %w", err))
				return
			}

			chunk, err := unmarshalStreamChunk(payload)
			if err != nil {
				yield(nil, fmt.Errorf("decoding stream chunk: %w", err))
				return
			}
			if !yield(assembleChunk(chunk), nil) {
				return
			}
		}
	}

	return genai.NewGenerateStream(seq), nil
}
