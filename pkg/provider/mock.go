package provider

import (
	"context"
	"time"
)

// Mock returns deterministic responses for local runs and tests.
type Mock struct {
	responses       map[string]string
	defaultResponse string

	// Err, when set, is returned from every Complete call.
	Err error
	// Latency is reported on every completion.
	Latency time.Duration

	// Calls records every (modelID, prompt) pair in order.
	Calls []MockCall
}

// MockCall records one Complete invocation.
type MockCall struct {
	ModelID string
	Prompt  string
	Options CallOptions
}

// NewMock creates a mock provider with a default response.
func NewMock() *Mock {
	return &Mock{
		responses:       make(map[string]string),
		defaultResponse: "mock response",
	}
}

// NewMockWithResponses creates a mock provider with per-prompt responses.
// The default response is returned verbatim for prompts not in the map.
func NewMockWithResponses(responses map[string]string, defaultResponse string) *Mock {
	if defaultResponse == "" {
		defaultResponse = "mock response"
	}
	return &Mock{responses: responses, defaultResponse: defaultResponse}
}

// Name returns the provider identifier.
func (m *Mock) Name() string {
	return "mock"
}

// Complete returns the scripted response for the prompt, or the default
// response when none is scripted.
func (m *Mock) Complete(_ context.Context, modelID, prompt string, opts ...Option) (*Completion, error) {
	m.Calls = append(m.Calls, MockCall{ModelID: modelID, Prompt: prompt, Options: ApplyOptions(opts)})
	if m.Err != nil {
		return nil, m.Err
	}
	content, ok := m.responses[prompt]
	if !ok {
		content = m.defaultResponse
	}
	return &Completion{Content: content, Latency: m.Latency}, nil
}
