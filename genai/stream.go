package genai

import (
	"iter"
	"strings"
)

// GenerateStream wraps a lazy sequence of response deltas produced while a
// generation streams in. Each delta is a standalone [GenerateResponse]: no
// state is carried across deltas, so accumulation of multi-delta text or
// multi-delta function call arguments is the caller's responsibility.
//
// The sequence is single-pass and not restartable; it terminates when the
// upstream chunk source terminates. Callers must consume the stream (by
// iterating, breaking early, or calling Collect) so the provider can release
// the underlying network resources.
type GenerateStream struct {
	seq iter.Seq2[*GenerateResponse, error]
}

// NewGenerateStream creates a GenerateStream from a raw delta iterator. The
// iterator yields deltas with a nil error, and may yield a non-nil error to
// signal a mid-stream failure, after which it stops.
func NewGenerateStream(seq iter.Seq2[*GenerateResponse, error]) *GenerateStream {
	return &GenerateStream{seq: seq}
}

// Iter returns the underlying iterator for range-over-func loops.
//
//	for delta, err := range stream.Iter() {
//	    if err != nil { ... }
//	    fmt.Print(delta.Text)
//	}
func (s *GenerateStream) Iter() iter.Seq2[*GenerateResponse, error] {
	return s.seq
}

// Collect consumes the entire stream and returns one accumulated response:
// text deltas are concatenated into a single leading text part, function call
// parts are appended in arrival order with their per-delta arguments as-is
// (argument fragments split across deltas are NOT merged), and the last seen
// usage wins. A mid-stream error returns the partial accumulation alongside
// the error.
func (s *GenerateStream) Collect() (*GenerateResponse, error) {
	out := &GenerateResponse{Turn: Turn{Role: RoleModel}}
	var text strings.Builder
	var calls []Part
	var streamErr error

	for delta, err := range s.seq {
		if err != nil {
			streamErr = err
			break
		}
		for _, p := range delta.Turn.Parts {
			switch p.Kind() {
			case PartKindText:
				text.WriteString(p.Text)
			case PartKindFunctionCall:
				calls = append(calls, p)
			}
		}
		if delta.Usage != nil {
			out.Usage = delta.Usage
		}
	}

	if text.Len() > 0 {
		out.Turn.Parts = append(out.Turn.Parts, TextPart(text.String()))
	}
	out.Turn.Parts = append(out.Turn.Parts, calls...)
	out.Text = out.Turn.FirstText()
	return out, streamErr
}
