package provider

import (
	"context"
	"fmt"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// DefaultBaseURL is the OpenRouter chat-completions endpoint.
const DefaultBaseURL = "https://openrouter.ai/api/v1"

// OpenRouter sends prompts to models through the OpenRouter API, which
// speaks the OpenAI chat-completions format for every upstream provider.
type OpenRouter struct {
	client openai.Client
}

// OpenRouterConfig configures the OpenRouter client.
type OpenRouterConfig struct {
	APIKey  string
	BaseURL string
	// Referer and Title populate OpenRouter's optional attribution
	// headers (HTTP-Referer, X-Title).
	Referer string
	Title   string
}

// NewOpenRouter creates an OpenRouter provider.
func NewOpenRouter(cfg OpenRouterConfig) (*OpenRouter, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openrouter API key is required")
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithBaseURL(baseURL),
	}
	if cfg.Referer != "" {
		opts = append(opts, option.WithHeader("HTTP-Referer", cfg.Referer))
	}
	if cfg.Title != "" {
		opts = append(opts, option.WithHeader("X-Title", cfg.Title))
	}

	return &OpenRouter{client: openai.NewClient(opts...)}, nil
}

// Name returns the provider identifier.
func (p *OpenRouter) Name() string {
	return "openrouter"
}

// Complete sends a prompt to the model identified by modelID and returns
// the completion with measured latency.
func (p *OpenRouter) Complete(ctx context.Context, modelID, prompt string, opts ...Option) (*Completion, error) {
	callOpts := ApplyOptions(opts)

	var messages []openai.ChatCompletionMessageParamUnion
	if callOpts.SystemPrompt != "" {
		messages = append(messages, openai.SystemMessage(callOpts.SystemPrompt))
	}
	messages = append(messages, openai.UserMessage(prompt))

	start := time.Now()
	resp, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:     openai.ChatModel(modelID),
		Messages:  messages,
		MaxTokens: openai.Int(int64(callOpts.MaxTokens)),
	})
	latency := time.Since(start)
	if err != nil {
		return nil, fmt.Errorf("openrouter API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("openrouter returned no choices")
	}

	return &Completion{
		Content: resp.Choices[0].Message.Content,
		Latency: latency,
		Usage: &Usage{
			PromptTokens:     int(resp.Usage.PromptTokens),
			CompletionTokens: int(resp.Usage.CompletionTokens),
			TotalTokens:      int(resp.Usage.TotalTokens),
		},
	}, nil
}
