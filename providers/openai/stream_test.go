package openai

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/genwire/genwire/genai"
)

// writeSSE is a test helper that writes an SSE data line to the response
// writer and flushes.
func writeSSE(writer http.ResponseWriter, data string) {
	fmt.Fprintf(writer, "data: %s\n\n", data)
	if flusher, ok := writer.(http.Flusher); ok {
		flusher.Flush()
	}
}

// writeSSEDone writes the [DONE] sentinel to signal end of stream.
func writeSSEDone(writer http.ResponseWriter) {
	fmt.Fprintf(writer, "data: [DONE]\n\n")
	if flusher, ok := writer.(http.Flusher); ok {
		flusher.Flush()
	}
}

// TestGenerateContentStream_StandaloneDeltas verifies that each chunk yields
// an independent delta: no text accumulation happens inside the provider.
func TestGenerateContentStream_StandaloneDeltas(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.Header().Set("Content-Type", "text/event-stream")
		writer.WriteHeader(http.StatusOK)

		writeSSE(writer, `{"id":"chatcmpl-1","object":"chat.completion.chunk","model":"gpt-4o-mini","choices":[{"index":0,"delta":{"role":"assistant","content":"Hi"},"finish_reason":null}]}`)
		writeSSE(writer, `{"id":"chatcmpl-1","object":"chat.completion.chunk","model":"gpt-4o-mini","choices":[{"index":0,"delta":{"content":" there"},"finish_reason":null}]}`)
		writeSSE(writer, `{"id":"chatcmpl-1","object":"chat.completion.chunk","model":"gpt-4o-mini","choices":[],"usage":{"prompt_tokens":5,"completion_tokens":2,"total_tokens":7}}`)
		writeSSEDone(writer)
	}))
	defer server.Close()

	client := New().WithBaseURL(server.URL).WithAPIKey("test-key")
	stream, err := client.GenerateContentStream(context.Background(), genai.GenerateRequest{Contents: "Hello"}, "")
	if err != nil {
		t.Fatalf("GenerateContentStream returned error: %v", err)
	}

	var texts []string
	var usage *genai.Usage
	for delta, err := range stream.Iter() {
		if err != nil {
			t.Fatalf("unexpected mid-stream error: %v", err)
		}
		if delta.Turn.Role != genai.RoleModel {
			t.Errorf("expected model role on delta, got %q", delta.Turn.Role)
		}
		if delta.Text != "" {
			texts = append(texts, delta.Text)
		}
		if delta.Usage != nil {
			usage = delta.Usage
		}
	}

	if len(texts) != 2 || texts[0] != "Hi" || texts[1] != " there" {
		t.Errorf("unexpected delta texts: %v", texts)
	}
	if usage == nil || usage.TotalTokens != 7 {
		t.Errorf("expected usage on final chunk, got %+v", usage)
	}
}

// TestGenerateContentStream_Collect verifies accumulation through
// genai.GenerateStream.Collect: concatenated text and last-seen usage.
func TestGenerateContentStream_Collect(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.Header().Set("Content-Type", "text/event-stream")
		writer.WriteHeader(http.StatusOK)

		writeSSE(writer, `{"choices":[{"index":0,"delta":{"role":"assistant","content":"Hello"},"finish_reason":null}]}`)
		writeSSE(writer, `{"choices":[{"index":0,"delta":{"content":" world"},"finish_reason":null}]}`)
		writeSSE(writer, `{"choices":[{"index":0,"delta":{"content":"!"},"finish_reason":"stop"}]}`)
		writeSSE(writer, `{"choices":[],"usage":{"prompt_tokens":10,"completion_tokens":3,"total_tokens":13}}`)
		writeSSEDone(writer)
	}))
	defer server.Close()

	client := New().WithBaseURL(server.URL).WithAPIKey("test-key")
	stream, err := client.GenerateContentStream(context.Background(), genai.GenerateRequest{Contents: "Hi"}, "")
	if err != nil {
		t.Fatalf("GenerateContentStream returned error: %v", err)
	}

	out, err := stream.Collect()
	if err != nil {
		t.Fatalf("Collect returned error: %v", err)
	}
	if out.Text != "Hello world!" {
		t.Errorf("expected collected text 'Hello world!', got %q", out.Text)
	}
	if out.Usage == nil || out.Usage.PromptTokens != 10 || out.Usage.CompletionTokens != 3 {
		t.Errorf("unexpected usage: %+v", out.Usage)
	}
}

// TestGenerateContentStream_ToolCallFragments verifies that tool call deltas
// arrive as per-chunk function call parts with leniently parsed arguments,
// without cross-chunk merging.
func TestGenerateContentStream_ToolCallFragments(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.Header().Set("Content-Type", "text/event-stream")
		writer.WriteHeader(http.StatusOK)

		writeSSE(writer, `{"choices":[{"index":0,"delta":{"role":"assistant","tool_calls":[{"index":0,"id":"call_abc","type":"function","function":{"name":"get_weather","arguments":""}}]},"finish_reason":null}]}`)
		writeSSE(writer, `{"choices":[{"index":0,"delta":{"tool_calls":[{"index":0,"function":{"arguments":"{\"city\":\"London\"}"}}]},"finish_reason":null}]}`)
		writeSSE(writer, `{"choices":[{"index":0,"delta":{},"finish_reason":"tool_calls"}]}`)
		writeSSEDone(writer)
	}))
	defer server.Close()

	client := New().WithBaseURL(server.URL).WithAPIKey("test-key")
	stream, err := client.GenerateContentStream(context.Background(), genai.GenerateRequest{Contents: "weather?"}, "")
	if err != nil {
		t.Fatalf("GenerateContentStream returned error: %v", err)
	}

	var calls []*genai.FunctionCall
	for delta, err := range stream.Iter() {
		if err != nil {
			t.Fatalf("unexpected mid-stream error: %v", err)
		}
		for _, part := range delta.Turn.Parts {
			if part.Kind() == genai.PartKindFunctionCall {
				calls = append(calls, part.FunctionCall)
			}
		}
	}

	if len(calls) != 2 {
		t.Fatalf("expected 2 per-chunk call parts, got %d", len(calls))
	}
	if calls[0].Name != "get_weather" || len(calls[0].Args) != 0 {
		t.Errorf("unexpected first fragment: %+v", calls[0])
	}
	if calls[1].Args["city"] != "London" {
		t.Errorf("unexpected second fragment args: %v", calls[1].Args)
	}
}

// TestGenerateContentStream_MalformedChunk verifies that an undecodable SSE
// payload surfaces as a mid-stream error and ends the sequence.
func TestGenerateContentStream_MalformedChunk(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.Header().Set("Content-Type", "text/event-stream")
		writer.WriteHeader(http.StatusOK)

		writeSSE(writer, `{"choices":[{"index":0,"delta":{"content":"partial"},"finish_reason":null}]}`)
		writeSSE(writer, `{{{not json`)
		writeSSEDone(writer)
	}))
	defer server.Close()

	client := New().WithBaseURL(server.URL).WithAPIKey("test-key")
	stream, err := client.GenerateContentStream(context.Background(), genai.GenerateRequest{Contents: "hi"}, "")
	if err != nil {
		t.Fatalf("GenerateContentStream returned error: %v", err)
	}

	out, err := stream.Collect()
	if err == nil {
		t.Fatal("expected mid-stream error for malformed chunk")
	}
	if out == nil || out.Text != "partial" {
		t.Errorf("expected partial accumulation alongside the error, got %+v", out)
	}
}

// TestGenerateContentStream_HTTPError verifies that a non-2xx status fails
// the call before any stream is returned.
func TestGenerateContentStream_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		http.Error(writer, `{"error": {"message": "bad request"}}`, http.StatusBadRequest)
	}))
	defer server.Close()

	client := New().WithBaseURL(server.URL).WithAPIKey("test-key")
	if _, err := client.GenerateContentStream(context.Background(), genai.GenerateRequest{Contents: "hi"}, ""); err == nil {
		t.Fatal("expected error for 400 response")
	}
}

// TestGenerateContentStream_EarlyBreak verifies that abandoning iteration
// mid-stream terminates cleanly.
func TestGenerateContentStream_EarlyBreak(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.Header().Set("Content-Type", "text/event-stream")
		writer.WriteHeader(http.StatusOK)
		for i := 0; i < 50; i++ {
			writeSSE(writer, `{"choices":[{"index":0,"delta":{"content":"x"},"finish_reason":null}]}`)
		}
		writeSSEDone(writer)
	}))
	defer server.Close()

	client := New().WithBaseURL(server.URL).WithAPIKey("test-key")
	stream, err := client.GenerateContentStream(context.Background(), genai.GenerateRequest{Contents: "hi"}, "")
	if err != nil {
		t.Fatalf("GenerateContentStream returned error: %v", err)
	}

	seen := 0
	for _, err := range stream.Iter() {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		seen++
		if seen == 3 {
			break
		}
	}
	if seen != 3 {
		t.Errorf("expected to stop after 3 deltas, saw %d", seen)
	}
}
