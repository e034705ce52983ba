package utils

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/genwire/genwire/providers/observability"
)

// maxResponseBodySize caps response body reads (10 MB) to prevent unbounded
// memory allocation from rogue responses.
const maxResponseBodySize int64 = 10 * 1024 * 1024

// PostJSON performs a synchronous HTTP POST with a JSON body and decodes the
// JSON response into OutputStruct. Transport failures, non-2xx statuses, and
// decode failures are returned as wrapped errors without retry or
// classification; the caller owns transient-failure handling.
func PostJSON[OutputStruct any](ctx context.Context, client *http.Client, url string, apiKey string, body any) (*OutputStruct, error) {
	span := observability.SpanFromContext(ctx)

	httpClient := client
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshaling request body: %w", err)
	}

	span.AddEvent("http.request.prepared",
		observability.String(observability.AttrHTTPMethod, "POST"),
		observability.String(observability.AttrHTTPURL, url),
		observability.Int(observability.AttrHTTPRequestBodySize, len(jsonBody)),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+apiKey)
	}

	requestStart := time.Now()
	res, err := httpClient.Do(req)
	requestDuration := time.Since(requestStart)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("sending request: %w", err)
	}
	defer CloseWithLog(ctx, res.Body)

	respBody, err := io.ReadAll(io.LimitReader(res.Body, maxResponseBodySize))
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	span.AddEvent("http.response.received",
		observability.Int(observability.AttrHTTPStatusCode, res.StatusCode),
		observability.Int(observability.AttrHTTPResponseBodySize, len(respBody)),
		observability.Duration("http.request.duration", requestDuration),
	)

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, fmt.Errorf("non-2xx status %d: %s", res.StatusCode, TruncateString(string(respBody), DefaultMaxStringLength))
	}

	var out OutputStruct
	if err := json.Unmarshal(respBody, &out); err != nil {
		return nil, fmt.Errorf("unmarshaling response body (status %d): %w\nResponse preview: %s", res.StatusCode, err, TruncateString(string(respBody), DefaultMaxStringLength))
	}
	return &out, nil
}

// CloseWithLog closes c and reports any close error to the context observer
// instead of overriding the caller's primary error.
func CloseWithLog(ctx context.Context, c io.Closer) {
	if err := c.Close(); err != nil {
		observability.ObserverFromContext(ctx).Warn(ctx, "failed to close response body",
			observability.Error(err),
		)
	}
}
