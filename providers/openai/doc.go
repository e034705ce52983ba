// Package openai translates the canonical genai content model to and from the
// chat completions wire schema exposed by OpenAI-compatible backends.
//
// The main entry point is [New], which reads OPENAI_API_KEY,
// OPENAI_API_BASE_URL, and OPENAI_DEFAULT_MODEL from the environment. Use
// [Client.WithAPIKey], [Client.WithBaseURL], and the other builder methods to
// override these values programmatically.
//
// [Client.GenerateContent] performs one blocking completion round trip;
// [Client.GenerateContentStream] returns a lazy [genai.GenerateStream] of
// standalone per-chunk deltas; [Client.CountTokens] counts tokens locally with
// an approximate tokenizer; [Client.EmbedContent] flattens content to text and
// calls the embeddings endpoint.
package openai
