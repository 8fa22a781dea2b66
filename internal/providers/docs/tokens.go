package docs

import (
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

var (
	tk     *tiktoken.Tiktoken
	tkOnce sync.Once
	tkErr  error
)

// CountTokens estimates the token footprint of a context with the cl100k
// encoding. Counting is advisory: on tokenizer failure it degrades to 0
// rather than blocking ingestion.
func CountTokens(text string) int {
	if text == "" {
		return 0
	}
	tkOnce.Do(func() {
		tk, tkErr = tiktoken.GetEncoding("cl100k_base")
	})
	if tkErr != nil || tk == nil {
		return 0
	}
	return len(tk.Encode(text, nil, nil))
}
