package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/genwire/genwire/genai"
	"github.com/genwire/genwire/internal/utils"
	"github.com/genwire/genwire/providers/observability"
)

const (
	defaultBaseURL = "https://api.openai.com/v1"

	// DefaultModel is used when neither the request nor the client names a
	// model.
	DefaultModel = "gpt-4o-mini"

	// DefaultEmbeddingModel is used for embedding requests without a model.
	DefaultEmbeddingModel = "text-embedding-3-small"

	chatCompletionsEndpoint = "/chat/completions"
	embeddingsEndpoint      = "/embeddings"

	providerName = "openai"
)

// ErrMissingAPIKey is returned by network operations when no API key was
// configured via the environment or WithAPIKey.
var ErrMissingAPIKey = errors.New("openai: API key is not set")

// Client talks to an OpenAI-compatible chat completions backend. Construct it
// with [New] and the With* builder methods; the zero value is not usable.
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
	encode     genai.EncodeFunc
}

var _ genai.ContentGenerator = (*Client)(nil)

// New creates a Client configured from the environment: OPENAI_API_KEY,
// OPENAI_API_BASE_URL (default https://api.openai.com/v1), and
// OPENAI_DEFAULT_MODEL (default [DefaultModel]).
func New() *Client {
	baseURL := os.Getenv("OPENAI_API_BASE_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	model := os.Getenv("OPENAI_DEFAULT_MODEL")
	if model == "" {
		model = DefaultModel
	}
	return &Client{
		apiKey:  os.Getenv("OPENAI_API_KEY"),
		baseURL: baseURL,
		model:   model,
		encode:  defaultEncoder(),
	}
}

// WithAPIKey sets the API key.
func (c *Client) WithAPIKey(apiKey string) *Client {
	c.apiKey = apiKey
	return c
}

// WithBaseURL sets the API base URL, e.g. for proxies or compatible backends.
func (c *Client) WithBaseURL(baseURL string) *Client {
	c.baseURL = baseURL
	return c
}

// WithModel sets the default model used when a request does not name one.
func (c *Client) WithModel(model string) *Client {
	c.model = model
	return c
}

// WithHTTPClient sets a custom HTTP client (timeouts, proxies, transports).
func (c *Client) WithHTTPClient(httpClient *http.Client) *Client {
	c.httpClient = httpClient
	return c
}

// WithEncoder replaces the tokenizer used by CountTokens.
func (c *Client) WithEncoder(encode genai.EncodeFunc) *Client {
	c.encode = encode
	return c
}

// GenerateContent performs one blocking chat completion round trip and
// translates the first choice of the result into the canonical model.
func (c *Client) GenerateContent(ctx context.Context, req genai.GenerateRequest, promptID string) (*genai.GenerateResponse, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	wire, err := buildRequest(req, c.model)
	if err != nil {
		return nil, err
	}
	annotateSpan(ctx, wire, promptID, false)

	resp, err := utils.PostJSON[chatCompletionResponse](ctx, c.httpClient, c.baseURL+chatCompletionsEndpoint, c.apiKey, wire)
	if err != nil {
		return nil, fmt.Errorf("chat completion request: %w", err)
	}
	return assembleResponse(resp)
}

// CountTokens approximates the token count of the request contents locally.
// Only text parts contribute; no network call is made.
func (c *Client) CountTokens(ctx context.Context, req genai.GenerateRequest) (*genai.TokenCountResponse, error) {
	total := genai.CountTextTokens(req.Contents, c.encode)
	observability.ObserverFromContext(ctx).Debug(ctx, "counted tokens locally",
		observability.String(observability.AttrLLMProvider, providerName),
		observability.Int("llm.token_count", total),
	)
	return &genai.TokenCountResponse{TotalTokens: total}, nil
}

// EmbedContent flattens the request content to a single text string and calls
// the embeddings endpoint.
func (c *Client) EmbedContent(ctx context.Context, req genai.EmbedRequest) (*genai.EmbedResponse, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	model := req.Model
	if model == "" {
		model = DefaultEmbeddingModel
	}
	wire := embeddingRequest{Model: model, Input: genai.ExtractText(req.Content)}

	span := observability.SpanFromContext(ctx)
	span.SetAttributes(
		observability.String(observability.AttrLLMProvider, providerName),
		observability.String(observability.AttrLLMModel, model),
		observability.String(observability.AttrLLMEndpoint, embeddingsEndpoint),
	)

	resp, err := utils.PostJSON[embeddingResponse](ctx, c.httpClient, c.baseURL+embeddingsEndpoint, c.apiKey, wire)
	if err != nil {
		return nil, fmt.Errorf("embedding request: %w", err)
	}
	return assembleEmbeddings(resp), nil
}

// annotateSpan records the request shape on the context span.
func annotateSpan(ctx context.Context, wire chatCompletionRequest, promptID string, streaming bool) {
	span := observability.SpanFromContext(ctx)
	span.SetAttributes(
		observability.String(observability.AttrLLMProvider, providerName),
		observability.String(observability.AttrLLMModel, wire.Model),
		observability.String(observability.AttrLLMEndpoint, chatCompletionsEndpoint),
		observability.Bool(observability.AttrLLMStreaming, streaming),
		observability.Int(observability.AttrTurnCount, len(wire.Messages)),
		observability.Int(observability.AttrToolCount, len(wire.Tools)),
	)
	if promptID != "" {
		span.SetAttributes(observability.String(observability.AttrLLMPromptID, promptID))
	}
}
