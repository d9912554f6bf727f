package router

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/modelmux/modelmux/pkg/classifier"
	"github.com/modelmux/modelmux/pkg/provider"
	"github.com/modelmux/modelmux/pkg/registry"
)

func TestRouteEndToEnd(t *testing.T) {
	mock := provider.NewMockWithResponses(nil, "ok")
	mock.Latency = 1230 * time.Millisecond
	r := New(registry.Default(), WithProvider(mock))

	prompt := "Write a Python function to reverse a string"
	resp, err := r.Route(context.Background(), prompt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Classification.TaskType != registry.TaskCode {
		t.Fatalf("expected code, got %s", resp.Classification.TaskType)
	}
	if resp.Decision.Model.ID != "anthropic/claude-sonnet-4-5" {
		t.Fatalf("expected claude, got %s", resp.Decision.Model.ID)
	}
	if resp.Content != "ok" {
		t.Fatalf("unexpected content: %q", resp.Content)
	}
	if resp.RequestID == "" {
		t.Fatal("expected a request ID")
	}
	if resp.LatencyMS != 1230 {
		t.Fatalf("expected latency 1230ms, got %g", resp.LatencyMS)
	}

	// chars/4 token heuristic on a 43-char prompt and 2-char response at
	// $3/M in, $15/M out, rounded to 6 decimals.
	if resp.EstimatedCost != 0.000040 {
		t.Fatalf("expected cost 0.000040, got %g", resp.EstimatedCost)
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("expected 1 provider call, got %d", len(mock.Calls))
	}
	call := mock.Calls[0]
	if call.ModelID != "anthropic/claude-sonnet-4-5" {
		t.Fatalf("model ID not passed through verbatim: %s", call.ModelID)
	}
	if call.Prompt != prompt {
		t.Fatalf("prompt not forwarded verbatim: %q", call.Prompt)
	}
	if call.Options.MaxTokens != provider.DefaultMaxTokens {
		t.Fatalf("expected default max tokens, got %d", call.Options.MaxTokens)
	}
}

func TestRouteFailureCarriesDecision(t *testing.T) {
	mock := provider.NewMock()
	mock.Err = errors.New("502 bad gateway")
	r := New(registry.Default(), WithProvider(mock), WithBudget(BudgetCheap))

	_, err := r.Route(context.Background(), "Translate this sentence to Spanish")
	if err == nil {
		t.Fatal("expected an error")
	}

	var callErr *CallError
	if !errors.As(err, &callErr) {
		t.Fatalf("expected *CallError, got %T", err)
	}
	if callErr.Decision.Model.ID != "google/gemini-2.0-flash-001" {
		t.Fatalf("decision lost on failure: %s", callErr.Decision.Model.ID)
	}
	if callErr.Classification.TaskType != registry.TaskTranslation {
		t.Fatalf("classification lost on failure: %s", callErr.Classification.TaskType)
	}
	if !errors.Is(err, mock.Err) {
		t.Fatal("expected wrapped provider error")
	}
}

func TestRouteWithoutProvider(t *testing.T) {
	r := New(registry.Default())
	if _, err := r.Route(context.Background(), "hello"); !errors.Is(err, ErrNoProvider) {
		t.Fatalf("expected ErrNoProvider, got %v", err)
	}
}

func TestDecideNeedsNoProvider(t *testing.T) {
	r := New(registry.Default(), WithBudget(BudgetCheap))

	c, d := r.Decide(context.Background(), "Translate this sentence to Spanish")
	if c.TaskType != registry.TaskTranslation {
		t.Fatalf("expected translation, got %s", c.TaskType)
	}
	if d.Model.ID != "google/gemini-2.0-flash-001" {
		t.Fatalf("expected gemini, got %s", d.Model.ID)
	}
}

func TestDecideDowngradesBudgetOnLowComplexity(t *testing.T) {
	r := New(registry.Default(), WithBudget(BudgetBest))

	// "hello" matches nothing: conversation at low complexity, so best is
	// downgraded to balanced.
	c, d := r.Decide(context.Background(), "hello")
	if c.TaskType != registry.TaskConversation {
		t.Fatalf("expected conversation, got %s", c.TaskType)
	}
	if d.Budget != BudgetBalanced {
		t.Fatalf("expected balanced after downgrade, got %s", d.Budget)
	}
	if d.Model.ID != "google/gemini-2.0-flash-001" {
		t.Fatalf("expected best ratio model for conversation, got %s", d.Model.ID)
	}
}

func TestDecideKeepsNonBestBudgets(t *testing.T) {
	r := New(registry.Default(), WithBudget(BudgetCheap))

	_, d := r.Decide(context.Background(), "hello")
	if d.Budget != BudgetCheap {
		t.Fatalf("cheap must not be downgraded, got %s", d.Budget)
	}
}

func TestDecideNoDowngradeOnMediumComplexity(t *testing.T) {
	r := New(registry.Default(), WithBudget(BudgetBest))

	_, d := r.Decide(context.Background(), "Write a Python function to reverse a string")
	if d.Budget != BudgetBest {
		t.Fatalf("expected best for medium complexity, got %s", d.Budget)
	}
}

func TestRouterWithLLMClassification(t *testing.T) {
	mock := provider.NewMockWithResponses(map[string]string{
		"Classify this prompt:\n\nhow do transformers work": `{"task_type": "research", "confidence": 0.9, "complexity": "high", "needs_reasoning": true, "needs_creativity": false}`,
	}, "model answer")
	r := New(registry.Default(), WithProvider(mock), WithLLMClassification(""))

	resp, err := r.Route(context.Background(), "how do transformers work")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Classification.Method != classifier.MethodLLM {
		t.Fatalf("expected llm method, got %s", resp.Classification.Method)
	}
	if resp.Classification.TaskType != registry.TaskResearch {
		t.Fatalf("expected research, got %s", resp.Classification.TaskType)
	}

	// Two provider calls: one for classification, one for the answer.
	if len(mock.Calls) != 2 {
		t.Fatalf("expected 2 calls, got %d", len(mock.Calls))
	}
	if mock.Calls[0].ModelID != classifier.DefaultClassifierModel {
		t.Fatalf("classifier call used %s", mock.Calls[0].ModelID)
	}
	if resp.Content != "model answer" {
		t.Fatalf("unexpected content: %q", resp.Content)
	}
}

func TestRouterLLMClassificationWithoutProviderUsesRules(t *testing.T) {
	r := New(registry.Default(), WithLLMClassification(""))

	c, _ := r.Decide(context.Background(), "Debug this Python function")
	if c.Method != classifier.MethodRules {
		t.Fatalf("expected rules without provider, got %s", c.Method)
	}
}

func TestEstimateTokens(t *testing.T) {
	if got := EstimateTokens("abcdefgh"); got != 2 {
		t.Fatalf("expected 2 tokens, got %g", got)
	}
}
