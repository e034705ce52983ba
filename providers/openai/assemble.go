package openai

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/genwire/genwire/genai"
	"github.com/genwire/genwire/internal/parse"
)

// ErrMalformedToolArguments is returned when a completed (non-streaming)
// response carries a tool call whose arguments are not valid JSON.
var ErrMalformedToolArguments = errors.New("malformed tool call arguments")

// newCallID mints a wire tool call id. Ids are unique within one translation
// pass; no meaning should be attached to them beyond correlation inside a
// single request/response cycle.
func newCallID() string {
	return "call_" + uuid.NewString()
}

// assembleResponse translates a completed chat completions response into the
// canonical model. Only the first choice is read. Tool call arguments are
// parsed strictly: invalid JSON fails the whole translation with
// ErrMalformedToolArguments.
func assembleResponse(resp *chatCompletionResponse) (*genai.GenerateResponse, error) {
	out := &genai.GenerateResponse{
		Turn:  genai.Turn{Role: genai.RoleModel},
		Usage: &genai.Usage{},
	}

	if len(resp.Choices) > 0 {
		msg := resp.Choices[0].Message
		if msg.Content != nil {
			out.Turn.Parts = append(out.Turn.Parts, genai.TextPart(*msg.Content))
		}
		for _, tc := range msg.ToolCalls {
			args := map[string]any{}
			if raw := strings.TrimSpace(tc.Function.Arguments); raw != "" {
				if err := json.Unmarshal([]byte(raw), &args); err != nil {
					return nil, fmt.Errorf("%w: call %q: %v", ErrMalformedToolArguments, tc.Function.Name, err)
				}
			}
			out.Turn.Parts = append(out.Turn.Parts, genai.FunctionCallPart(tc.Function.Name, args))
		}
	}

	if resp.Usage != nil {
		out.Usage = &genai.Usage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		}
	}
	out.Text = out.Turn.FirstText()

	return out, nil
}

// assembleChunk translates one streaming chunk into a standalone canonical
// delta. Each chunk is translated independently; accumulation across chunks
// is the caller's concern (see genai.GenerateStream.Collect). Tool call
// argument fragments are parsed leniently since a single chunk rarely carries
// complete JSON.
func assembleChunk(chunk *chatCompletionStreamChunk) *genai.GenerateResponse {
	out := &genai.GenerateResponse{Turn: genai.Turn{Role: genai.RoleModel}}

	if len(chunk.Choices) > 0 {
		delta := chunk.Choices[0].Delta
		if delta.Content != nil && *delta.Content != "" {
			out.Turn.Parts = append(out.Turn.Parts, genai.TextPart(*delta.Content))
		}
		for _, tc := range delta.ToolCalls {
			args := parse.ObjectFragment(tc.Function.Arguments)
			out.Turn.Parts = append(out.Turn.Parts, genai.FunctionCallPart(tc.Function.Name, args))
		}
	}

	if chunk.Usage != nil {
		out.Usage = &genai.Usage{
			PromptTokens:     chunk.Usage.PromptTokens,
			CompletionTokens: chunk.Usage.CompletionTokens,
			TotalTokens:      chunk.Usage.TotalTokens,
		}
	}
	out.Text = out.Turn.FirstText()

	return out
}

// assembleEmbeddings maps the embeddings wire response onto the canonical
// embedding list, preserving order.
func assembleEmbeddings(resp *embeddingResponse) *genai.EmbedResponse {
	out := &genai.EmbedResponse{}
	for _, item := range resp.Data {
		out.Embeddings = append(out.Embeddings, genai.Embedding{Values: item.Embedding})
	}
	return out
}
