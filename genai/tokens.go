package genai

// EncodeFunc is the tokenizer collaborator consumed by token counting: it
// encodes text into a sequence of token ids. Counts are approximate; no
// parity with the wire service's own tokenizer is attempted.
type EncodeFunc func(text string) []int

// CountTextTokens normalizes contents and sums the encoded token count of
// every text part. Non-text parts contribute zero. A nil encoder counts
// nothing.
func CountTextTokens(contents any, encode EncodeFunc) int {
	if encode == nil {
		return 0
	}
	total := 0
	for _, turn := range NormalizeContents(contents) {
		for _, p := range turn.Parts {
			if p.Kind() == PartKindText {
				total += len(encode(p.Text))
			}
		}
	}
	return total
}
