// Package token counts text tokens using the cl100k_base BPE encoding, a
// close approximation for the models these context packs target.
package token

import (
	"fmt"

	tiktoken "github.com/pkoukk/tiktoken-go"
)

// Counter counts tokens in text.
type Counter interface {
	// Count returns the number of tokens in text. Implementations never
	// fail; a counter that cannot compute returns 0.
	Count(text string) int
}

type bpeCounter struct {
	enc *tiktoken.Tiktoken
}

// NewCounter creates a Counter backed by the cl100k_base encoding.
func NewCounter() (Counter, error) {
	enc, err := tiktoken.GetEncoding("cl100k_base")
	if err != nil {
		return nil, fmt.Errorf("token: get encoding: %w", err)
	}
	return &bpeCounter{enc: enc}, nil
}

func (c *bpeCounter) Count(text string) int {
	if text == "" {
		return 0
	}
	return len(c.enc.Encode(text, nil, nil))
}

// zeroCounter is the degraded counter used when encoding setup fails:
// counts become 0 rather than aborting the run.
type zeroCounter struct{}

// Zero returns a Counter that always reports 0 tokens.
func Zero() Counter {
	return zeroCounter{}
}

func (zeroCounter) Count(string) int { return 0 }
