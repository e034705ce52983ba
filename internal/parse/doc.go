// Package parse provides lenient JSON parsing for model-produced argument
// fragments. Streamed tool-call arguments arrive as partial JSON that strict
// decoding routinely rejects; ObjectFragment repairs and parses them on a
// best-effort basis so streaming translation never fails on a fragment.
package parse
