package observability

// Semantic conventions for attribute names, shared across components so the
// same concept always carries the same key.

const (
	// AttrLLMProvider is the wire provider name (e.g. "openai").
	AttrLLMProvider = "llm.provider"

	// AttrLLMModel is the model identifier.
	AttrLLMModel = "llm.model"

	// AttrLLMEndpoint is the API endpoint URL.
	AttrLLMEndpoint = "llm.endpoint"

	// AttrLLMPromptID is the caller-supplied prompt correlation id.
	AttrLLMPromptID = "llm.prompt_id"

	// AttrLLMStreaming reports whether the request streams its response.
	AttrLLMStreaming = "llm.streaming"

	// AttrTurnCount is the number of messages in the translated request.
	AttrTurnCount = "llm.request.turns"

	// AttrToolCount is the number of tool declarations in a request.
	AttrToolCount = "llm.request.tools"
)

const (
	// AttrHTTPMethod is the HTTP request method.
	AttrHTTPMethod = "http.method"

	// AttrHTTPURL is the full request URL.
	AttrHTTPURL = "http.url"

	// AttrHTTPStatusCode is the response status code.
	AttrHTTPStatusCode = "http.status_code"

	// AttrHTTPRequestBodySize is the request body size in bytes.
	AttrHTTPRequestBodySize = "http.request.body.size"

	// AttrHTTPResponseBodySize is the response body size in bytes.
	AttrHTTPResponseBodySize = "http.response.body.size"
)
