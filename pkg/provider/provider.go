package provider

import (
	"context"
	"time"
)

// DefaultMaxTokens caps completions when the caller does not override it.
const DefaultMaxTokens = 1024

// Generator sends prompts to a model-serving endpoint.
type Generator interface {
	// Complete sends a prompt to the model identified by modelID and
	// returns the completion. The modelID is passed to the provider
	// unmodified.
	Complete(ctx context.Context, modelID, prompt string, opts ...Option) (*Completion, error)

	// Name returns the provider's identifier.
	Name() string
}

// Usage captures token usage as reported by the provider.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Completion is the result of a single model call.
type Completion struct {
	Content string
	Latency time.Duration
	// Usage is nil when the provider does not report token counts.
	Usage *Usage
}

// CallOptions holds per-call settings.
type CallOptions struct {
	SystemPrompt string
	MaxTokens    int
}

// Option configures a single Complete call.
type Option func(*CallOptions)

// WithSystemPrompt sets a system message sent ahead of the user prompt.
func WithSystemPrompt(s string) Option {
	return func(o *CallOptions) { o.SystemPrompt = s }
}

// WithMaxTokens caps the completion length.
func WithMaxTokens(n int) Option {
	return func(o *CallOptions) { o.MaxTokens = n }
}

// ApplyOptions resolves opts against the defaults.
func ApplyOptions(opts []Option) CallOptions {
	o := CallOptions{MaxTokens: DefaultMaxTokens}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
