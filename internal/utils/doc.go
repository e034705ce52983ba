// Package utils provides the HTTP plumbing shared by wire providers: JSON
// POST helpers for synchronous and streaming (SSE) requests, an SSE event
// scanner, and small generic conveniences.
package utils
