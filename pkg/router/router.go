// Package router classifies prompts, selects a model under a budget
// policy, and forwards the prompt to the selected model.
package router

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/modelmux/modelmux/pkg/classifier"
	"github.com/modelmux/modelmux/pkg/provider"
	"github.com/modelmux/modelmux/pkg/registry"
)

// ErrNoProvider is returned by Route when the router was built without a
// provider. Decide never needs one.
var ErrNoProvider = errors.New("router has no provider configured")

// Response is the full result of routing and invoking a prompt.
type Response struct {
	RequestID      string            `json:"request_id"`
	Content        string            `json:"content"`
	Classification classifier.Result `json:"classification"`
	Decision       Decision          `json:"decision"`
	LatencyMS      float64           `json:"latency_ms"`
	EstimatedCost  float64           `json:"estimated_cost"`
	Usage          *provider.Usage   `json:"usage,omitempty"`
}

// CallError reports a failed model invocation. The classification and
// routing decision were already computed and are carried along so callers
// can see what would have been called.
type CallError struct {
	Classification classifier.Result
	Decision       Decision
	Err            error
}

func (e *CallError) Error() string {
	return fmt.Sprintf("model call to %s failed: %v", e.Decision.Model.ID, e.Err)
}

func (e *CallError) Unwrap() error {
	return e.Err
}

// Router routes prompts to the best model for each task.
type Router struct {
	registry  *registry.Registry
	provider  provider.Generator
	budget    Budget
	maxTokens int
	logger    *zap.Logger

	useLLMClassifier bool
	classifierModel  string
	llm              *classifier.LLMClassifier
}

// Option configures a Router.
type Option func(*Router)

// WithProvider sets the generator used for model calls.
func WithProvider(gen provider.Generator) Option {
	return func(r *Router) { r.provider = gen }
}

// WithBudget sets the default budget policy.
func WithBudget(b Budget) Option {
	return func(r *Router) { r.budget = b }
}

// WithLLMClassification classifies prompts via the hosted classifier
// model instead of the keyword engine. model may be empty to use the
// default. Requires a provider; without one the keyword engine is used.
func WithLLMClassification(model string) Option {
	return func(r *Router) {
		r.useLLMClassifier = true
		r.classifierModel = model
	}
}

// WithMaxTokens caps completion length on model calls.
func WithMaxTokens(n int) Option {
	return func(r *Router) { r.maxTokens = n }
}

// WithLogger sets the router's logger.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Router) { r.logger = logger }
}

// New creates a router over a frozen registry.
func New(reg *registry.Registry, opts ...Option) *Router {
	r := &Router{
		registry:  reg,
		budget:    BudgetBest,
		maxTokens: provider.DefaultMaxTokens,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.useLLMClassifier && r.provider != nil {
		llmOpts := []classifier.LLMOption{classifier.WithLogger(r.logger)}
		if r.classifierModel != "" {
			llmOpts = append(llmOpts, classifier.WithModel(r.classifierModel))
		}
		r.llm = classifier.NewLLMClassifier(r.provider, llmOpts...)
	}
	return r
}

// Decide classifies the prompt and selects a model without calling it.
func (r *Router) Decide(ctx context.Context, prompt string) (classifier.Result, Decision) {
	c := r.classify(ctx, prompt)

	// Low-complexity prompts do not need the top-score model; trade
	// quality headroom for cost before selection.
	effective := r.budget
	if effective == BudgetBest && c.Complexity == classifier.ComplexityLow {
		effective = BudgetBalanced
		r.logger.Debug("budget downgraded for low-complexity prompt",
			zap.String("from", string(r.budget)),
			zap.String("to", string(effective)),
		)
	}

	return c, Select(r.registry, c, effective)
}

// Route classifies the prompt, selects a model, and forwards the prompt
// to it. The model ID is sent to the provider unmodified. A failed call
// returns a *CallError that still carries the routing decision.
func (r *Router) Route(ctx context.Context, prompt string) (*Response, error) {
	c, decision := r.Decide(ctx, prompt)

	if r.provider == nil {
		return nil, ErrNoProvider
	}

	r.logger.Debug("routing prompt",
		zap.String("task_type", string(decision.TaskType)),
		zap.String("model", decision.Model.ID),
		zap.String("budget", string(decision.Budget)),
	)

	completion, err := r.provider.Complete(ctx, decision.Model.ID, prompt,
		provider.WithMaxTokens(r.maxTokens))
	if err != nil {
		return nil, &CallError{Classification: c, Decision: decision, Err: err}
	}

	return &Response{
		RequestID:      uuid.NewString(),
		Content:        completion.Content,
		Classification: c,
		Decision:       decision,
		LatencyMS:      round1(float64(completion.Latency.Microseconds()) / 1000),
		EstimatedCost:  estimateCost(decision.Model, prompt, completion.Content),
		Usage:          completion.Usage,
	}, nil
}

func (r *Router) classify(ctx context.Context, prompt string) classifier.Result {
	if r.llm != nil {
		return r.llm.Classify(ctx, prompt)
	}
	return classifier.Classify(prompt)
}

func round1(f float64) float64 {
	return math.Round(f*10) / 10
}
