package tokens

import (
	"errors"
	"fmt"
	"strings"

	tiktoken "github.com/pkoukk/tiktoken-go"
)

// DefaultModel is used when the caller does not pick a tokenizer model.
const DefaultModel = "gpt-4o"

// ErrUnknownModel reports a model name with no registered encoding.
var ErrUnknownModel = errors.New("unknown tokenizer model")

// TokenCounter counts the tokens a piece of text occupies in a model's
// context window.
type TokenCounter interface {
	Count(text string) int
}

// Counter is a TokenCounter backed by a model's tiktoken encoding.
type Counter struct {
	model string
	enc   *tiktoken.Tiktoken
}

// NewCounter resolves the tokenizer encoding for model. Failures for
// unrecognized names satisfy errors.Is with ErrUnknownModel.
func NewCounter(model string) (*Counter, error) {
	enc, err := tiktoken.EncodingForModel(model)
	if err != nil {
		return nil, errors.Join(ErrUnknownModel, fmt.Errorf("model %q: %w", model, err))
	}
	return &Counter{model: model, enc: enc}, nil
}

// Model returns the model name the counter was built for.
func (c *Counter) Model() string {
	return c.model
}

// Count returns the number of tokens in text.
func (c *Counter) Count(text string) int {
	return len(c.enc.Encode(text, nil, nil))
}

// Truncate cuts text down to at most maxTokens tokens. Text already
// under the limit comes back unchanged.
func (c *Counter) Truncate(text string, maxTokens int) string {
	if maxTokens <= 0 {
		return ""
	}
	toks := c.enc.Encode(text, nil, nil)
	if len(toks) <= maxTokens {
		return text
	}
	return c.enc.Decode(toks[:maxTokens])
}

// Estimator is a TokenCounter that needs no encoding data. It estimates
// max(runes/4, words), which lands near real tokenizer output for prose
// while staying cheap enough for tight loops.
type Estimator struct{}

func (Estimator) Count(text string) int {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0
	}
	estimate := len([]rune(trimmed)) / 4
	if words := len(strings.Fields(trimmed)); estimate < words {
		estimate = words
	}
	if estimate == 0 {
		estimate = 1
	}
	return estimate
}

// contextLimits maps model families to context window sizes in tokens.
var contextLimits = map[string]int{
	"gpt-3.5-turbo": 16385,
	"gpt-4":         8192,
	"gpt-4-turbo":   128000,
	"gpt-4o":        128000,
	"gpt-4o-mini":   128000,
	"o1":            200000,
	"o3":            200000,

	"claude-3-haiku":    200000,
	"claude-3-opus":     200000,
	"claude-3-5-sonnet": 200000,
	"claude-sonnet-4":   200000,

	"gemini-1.5-pro":   1000000,
	"gemini-1.5-flash": 1000000,
	"gemini-2.0-flash": 1000000,
}

// defaultContextLimit is the conservative fallback for unknown models.
const defaultContextLimit = 8192

// ContextLimit returns the context window size for model. Versioned
// names fall back to the longest matching family prefix, and unknown
// models get the conservative default.
func ContextLimit(model string) int {
	if limit, ok := contextLimits[model]; ok {
		return limit
	}
	best, bestLen := 0, 0
	for pattern, limit := range contextLimits {
		if strings.HasPrefix(model, pattern) && len(pattern) > bestLen {
			best, bestLen = limit, len(pattern)
		}
	}
	if bestLen > 0 {
		return best
	}
	return defaultContextLimit
}
