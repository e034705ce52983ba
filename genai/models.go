package genai

import (
	"github.com/genwire/genwire/internal/jsonschema"
)

// Role identifies the author of a Turn.
type Role string

const (
	// RoleUser marks content supplied by the end user.
	RoleUser Role = "user"
	// RoleModel marks content produced by the model, including function calls.
	RoleModel Role = "model"
	// RoleFunction marks function execution results fed back to the model.
	RoleFunction Role = "function"
)

// Turn is one exchange unit in a conversation: a role plus an ordered list of
// parts. Turns are treated as immutable inputs; translation never mutates a
// caller-supplied Turn.
type Turn struct {
	Role  Role   `json:"role"`
	Parts []Part `json:"parts"`
}

// FirstText returns the value of the first text part of the turn, or the
// empty string when the turn carries no text.
func (t Turn) FirstText() string {
	for _, p := range t.Parts {
		if p.Kind() == PartKindText {
			return p.Text
		}
	}
	return ""
}

// PartKind tags which variant of the Part union is populated.
type PartKind int

const (
	// PartKindText is a plain text part. A zero Part is an empty text part.
	PartKindText PartKind = iota
	// PartKindInlineData is inline base64 binary data with a MIME type.
	PartKindInlineData
	// PartKindFunctionCall is a model-issued function invocation.
	PartKindFunctionCall
	// PartKindFunctionResponse is the result of a function invocation.
	PartKindFunctionResponse
)

// Part is one atomic content unit within a Turn. Exactly one variant is
// populated per instance; Kind reports which. Use the constructors
// ([TextPart], [InlineDataPart], [FunctionCallPart], [FunctionResponsePart])
// rather than building Part values by hand.
type Part struct {
	Text             string            `json:"text,omitempty"`
	InlineData       *Blob             `json:"inlineData,omitempty"`
	FunctionCall     *FunctionCall     `json:"functionCall,omitempty"`
	FunctionResponse *FunctionResponse `json:"functionResponse,omitempty"`
}

// Kind reports the populated variant. Pointer variants take precedence so a
// zero Part degrades to an empty text part.
func (p Part) Kind() PartKind {
	switch {
	case p.InlineData != nil:
		return PartKindInlineData
	case p.FunctionCall != nil:
		return PartKindFunctionCall
	case p.FunctionResponse != nil:
		return PartKindFunctionResponse
	default:
		return PartKindText
	}
}

// Blob is inline binary data, base64 encoded, with its MIME type.
type Blob struct {
	MIMEType string `json:"mimeType"`
	Data     string `json:"data"`
}

// FunctionCall is a model request to invoke a declared function.
type FunctionCall struct {
	Name string         `json:"name"`
	Args map[string]any `json:"args,omitempty"`
}

// FunctionResponse carries the result of a function invocation back to the
// model. Name doubles as the wire correlation key for the originating call,
// which is only reliable while a turn carries at most one call per function
// name.
type FunctionResponse struct {
	Name     string `json:"name"`
	Response any    `json:"response,omitempty"`
}

// TextPart builds a text Part.
func TextPart(text string) Part {
	return Part{Text: text}
}

// InlineDataPart builds an inline binary data Part.
func InlineDataPart(mimeType, data string) Part {
	return Part{InlineData: &Blob{MIMEType: mimeType, Data: data}}
}

// FunctionCallPart builds a function call Part.
func FunctionCallPart(name string, args map[string]any) Part {
	return Part{FunctionCall: &FunctionCall{Name: name, Args: args}}
}

// FunctionResponsePart builds a function response Part.
func FunctionResponsePart(name string, response any) Part {
	return Part{FunctionResponse: &FunctionResponse{Name: name, Response: response}}
}

// ToolDeclaration describes one callable function offered to the model.
type ToolDeclaration struct {
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	Parameters  *jsonschema.Schema `json:"parameters,omitempty"`
}

// ToolGroup bundles function declarations the way the canonical schema groups
// them.
type ToolGroup struct {
	FunctionDeclarations []ToolDeclaration `json:"functionDeclarations,omitempty"`
}

// GenerateConfig carries optional generation parameters. Absent fields are
// defaulted by the wire provider: temperature 0, topP 1, no max-token cap.
type GenerateConfig struct {
	Temperature     *float64 `json:"temperature,omitempty"`
	TopP            *float64 `json:"topP,omitempty"`
	MaxOutputTokens *int     `json:"maxOutputTokens,omitempty"`

	// SystemInstruction, when set, is prepended to the wire conversation as a
	// system message.
	SystemInstruction string `json:"systemInstruction,omitempty"`

	// ResponseMIMEType set to "application/json" together with
	// ResponseJSONSchema requests structured JSON output. The schema is
	// embedded verbatim in an injected instruction; conformance of the model
	// output is not validated.
	ResponseMIMEType   string `json:"responseMimeType,omitempty"`
	ResponseJSONSchema any    `json:"responseJsonSchema,omitempty"`
}

// GenerateRequest is a canonical content generation request.
type GenerateRequest struct {
	Model string `json:"model,omitempty"`

	// Contents accepts a plain string, a single Part, a flat []Part, or a
	// []Turn; see NormalizeContents for the coercion rules.
	Contents any `json:"contents"`

	Config *GenerateConfig `json:"config,omitempty"`

	// GenerationConfig is the legacy location for generation parameters.
	// Field-by-field, Config takes precedence over GenerationConfig, which
	// takes precedence over the provider defaults.
	//
	// Deprecated: set Config instead.
	GenerationConfig *GenerateConfig `json:"generationConfig,omitempty"`

	Tools []ToolGroup `json:"tools,omitempty"`
}

// Usage reports token accounting for one request/response cycle.
type Usage struct {
	PromptTokens     int `json:"promptTokens"`
	CompletionTokens int `json:"completionTokens"`
	TotalTokens      int `json:"totalTokens"`
}

// GenerateResponse is a canonical model response, complete or a streamed
// delta. Text is derived: the value of the first text part of Turn.Parts, or
// the empty string when there is none.
type GenerateResponse struct {
	Turn  Turn   `json:"turn"`
	Usage *Usage `json:"usage,omitempty"`
	Text  string `json:"text"`
}

// TokenCountResponse is the result of a local approximate token count.
type TokenCountResponse struct {
	TotalTokens int `json:"totalTokens"`
}

// EmbedRequest is a canonical embedding request. Content accepts the same
// permissive shapes as GenerateRequest.Contents; it is flattened to a single
// string via ExtractText before the wire call.
type EmbedRequest struct {
	Model   string `json:"model,omitempty"`
	Content any    `json:"content"`
}

// Embedding is one embedding vector.
type Embedding struct {
	Values []float32 `json:"values"`
}

// EmbedResponse is the result of an embedding call.
type EmbedResponse struct {
	Embeddings []Embedding `json:"embeddings"`
}
