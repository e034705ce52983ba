package openai

import (
	"sync"

	"github.com/pkoukk/tiktoken-go"

	"github.com/genwire/genwire/genai"
)

// tokenizerEncoding is the BPE encoding used for local token counting. It is
// an approximation; newer models use different encodings but stay within a
// few percent for English text.
const tokenizerEncoding = "cl100k_base"

var (
	defaultEncoderOnce sync.Once
	defaultEncoderFunc genai.EncodeFunc
)

// defaultEncoder returns the process-wide token encoder: tiktoken's
// cl100k_base encoding, or a bytes/4 estimate when the encoding cannot be
// initialized (e.g. the BPE data is unavailable offline).
func defaultEncoder() genai.EncodeFunc {
	defaultEncoderOnce.Do(func() {
		tkm, err := tiktoken.GetEncoding(tokenizerEncoding)
		if err != nil {
			defaultEncoderFunc = approximateEncode
			return
		}
		var mu sync.Mutex // tiktoken encoders are not goroutine-safe
		defaultEncoderFunc = func(text string) []int {
			mu.Lock()
			defer mu.Unlock()
			return tkm.Encode(text, nil, nil)
		}
	})
	return defaultEncoderFunc
}

// approximateEncode estimates roughly four bytes per token, rounding up so
// short non-empty strings count as at least one token.
func approximateEncode(text string) []int {
	ids := make([]int, (len(text)+3)/4)
	for i := range ids {
		ids[i] = i
	}
	return ids
}
