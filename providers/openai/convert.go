package openai

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/genwire/genwire/genai"
	"github.com/genwire/genwire/internal/jsonschema"
	"github.com/genwire/genwire/internal/utils"
)

// jsonInstructionTemplate is prepended as a system message when the caller
// requests application/json output with a response schema. The schema JSON is
// inserted verbatim.
const jsonInstructionTemplate = "You must respond with a single valid JSON object that conforms to the following JSON schema. " +
	"Do not include any other text, explanation, or markdown formatting in your response.\n\nJSON schema:\n%s"

// Sampling defaults applied when neither config carries a value. Maximum
// output tokens has no default: when unset the field is omitted and the
// backend's own limit applies.
const (
	defaultTemperature = 0.0
	defaultTopP        = 1.0
)

// buildRequest translates a canonical generation request into the chat
// completions wire format. Message order is: system instruction first (when
// set), then the JSON schema instruction (when requested), then the
// translated conversation turns.
func buildRequest(req genai.GenerateRequest, defaultModel string) (chatCompletionRequest, error) {
	cfg := mergeConfigs(req.Config, req.GenerationConfig)

	wire := chatCompletionRequest{
		Model:       req.Model,
		Temperature: utils.Ptr(defaultTemperature),
		TopP:        utils.Ptr(defaultTopP),
	}
	if wire.Model == "" {
		wire.Model = defaultModel
	}
	if cfg.Temperature != nil {
		wire.Temperature = cfg.Temperature
	}
	if cfg.TopP != nil {
		wire.TopP = cfg.TopP
	}
	wire.MaxTokens = cfg.MaxOutputTokens

	for _, turn := range genai.NormalizeContents(req.Contents) {
		wire.Messages = append(wire.Messages, turnToMessages(turn)...)
	}

	if cfg.ResponseMIMEType == "application/json" && cfg.ResponseJSONSchema != nil {
		schemaJSON, err := json.Marshal(cfg.ResponseJSONSchema)
		if err != nil {
			return wire, fmt.Errorf("marshaling response JSON schema: %w", err)
		}
		instruction := fmt.Sprintf(jsonInstructionTemplate, schemaJSON)
		wire.Messages = append([]chatMessage{{Role: "system", Content: instruction}}, wire.Messages...)
		wire.ResponseFormat = &chatResponseFormat{Type: "json_object"}
	}

	if cfg.SystemInstruction != "" {
		wire.Messages = append([]chatMessage{{Role: "system", Content: cfg.SystemInstruction}}, wire.Messages...)
	}

	wire.Tools = convertTools(req.Tools)
	if len(wire.Tools) > 0 {
		wire.ToolChoice = "auto"
	}

	return wire, nil
}

// mergeConfigs resolves the effective generation config field by field:
// values from the preferred config win over the deprecated one, and each
// field falls back independently.
func mergeConfigs(primary, legacy *genai.GenerateConfig) genai.GenerateConfig {
	var merged genai.GenerateConfig
	for _, c := range []*genai.GenerateConfig{legacy, primary} {
		if c == nil {
			continue
		}
		if c.Temperature != nil {
			merged.Temperature = c.Temperature
		}
		if c.TopP != nil {
			merged.TopP = c.TopP
		}
		if c.MaxOutputTokens != nil {
			merged.MaxOutputTokens = c.MaxOutputTokens
		}
		if c.SystemInstruction != "" {
			merged.SystemInstruction = c.SystemInstruction
		}
		if c.ResponseMIMEType != "" {
			merged.ResponseMIMEType = c.ResponseMIMEType
		}
		if c.ResponseJSONSchema != nil {
			merged.ResponseJSONSchema = c.ResponseJSONSchema
		}
	}
	return merged
}

// turnToMessages translates one canonical turn into wire messages. User and
// model turns map to a single message each; a function turn produces one tool
// message per function response part so each result keeps its own
// tool_call_id. Turns with an unknown role are dropped.
func turnToMessages(turn genai.Turn) []chatMessage {
	switch turn.Role {
	case genai.RoleUser:
		return []chatMessage{{Role: "user", Content: encodeParts(turn.Parts)}}

	case genai.RoleModel:
		var texts []string
		var calls []chatToolCall
		for _, part := range turn.Parts {
			switch part.Kind() {
			case genai.PartKindText:
				texts = append(texts, part.Text)
			case genai.PartKindFunctionCall:
				calls = append(calls, toWireToolCall(*part.FunctionCall))
			}
		}
		msg := chatMessage{Role: "assistant", ToolCalls: calls}
		switch {
		case len(texts) > 0:
			// Text takes precedence: tool calls still ride along in
			// tool_calls, but content carries the joined text.
			msg.Content = strings.Join(texts, "\n")
		case len(calls) > 0:
			msg.Content = nil // marshals as explicit null
		default:
			msg.Content = ""
		}
		return []chatMessage{msg}

	case genai.RoleFunction:
		var msgs []chatMessage
		for _, part := range turn.Parts {
			if part.Kind() != genai.PartKindFunctionResponse {
				continue
			}
			payload, err := json.Marshal(part.FunctionResponse.Response)
			if err != nil {
				payload = []byte("null")
			}
			msgs = append(msgs, chatMessage{
				Role:    "tool",
				Content: string(payload),
				// The function name doubles as the correlation id; callers
				// that need exact correlation must echo the wire call id as
				// the response name.
				ToolCallID: part.FunctionResponse.Name,
			})
		}
		return msgs
	}

	return nil
}

// encodeParts translates the parts of a user turn into wire content. When
// every part is text the result collapses to a single newline-joined string;
// any binary part switches the whole message to block-array form. Function
// parts never appear in content and are skipped here.
func encodeParts(parts []genai.Part) any {
	blocks := make([]contentPart, 0, len(parts))
	allText := true
	for _, part := range parts {
		switch part.Kind() {
		case genai.PartKindText:
			blocks = append(blocks, contentPart{Type: "text", Text: part.Text})
		case genai.PartKindInlineData:
			url := buildDataURL(part.InlineData)
			if url == "" {
				continue
			}
			blocks = append(blocks, contentPart{Type: "image_url", ImageURL: &contentPartImage{URL: url}})
			allText = false
		}
	}
	if allText {
		texts := make([]string, len(blocks))
		for i, block := range blocks {
			texts[i] = block.Text
		}
		return strings.Join(texts, "\n")
	}
	return blocks
}

// buildDataURL renders an inline blob as a data URL. Blob data is already
// base64 encoded in the canonical model and is embedded verbatim. Blobs
// without data yield an empty string and are skipped by the caller.
func buildDataURL(blob *genai.Blob) string {
	if blob == nil || blob.Data == "" {
		return ""
	}
	mimeType := blob.MIMEType
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	return "data:" + mimeType + ";base64," + blob.Data
}

// toWireToolCall converts a canonical function call into a wire tool call,
// serializing its arguments and minting a fresh call id.
func toWireToolCall(call genai.FunctionCall) chatToolCall {
	args := "{}"
	if len(call.Args) > 0 {
		if b, err := json.Marshal(call.Args); err == nil {
			args = string(b)
		}
	}
	tc := chatToolCall{ID: newCallID(), Type: "function"}
	tc.Function.Name = call.Name
	tc.Function.Arguments = args
	return tc
}

// convertTools flattens the canonical tool groups into the wire tool list.
// Declarations without a parameter schema get an empty object schema, which
// the wire format requires for parameterless functions.
func convertTools(groups []genai.ToolGroup) []chatTool {
	var tools []chatTool
	for _, group := range groups {
		for _, decl := range group.FunctionDeclarations {
			params := decl.Parameters
			if params == nil {
				params = jsonschema.ObjectSchema()
			}
			tools = append(tools, chatTool{
				Type: "function",
				Function: chatFunction{
					Name:        decl.Name,
					Description: decl.Description,
					Parameters:  params,
				},
			})
		}
	}
	return tools
}
