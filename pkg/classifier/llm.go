package classifier

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/modelmux/modelmux/pkg/provider"
	"github.com/modelmux/modelmux/pkg/registry"
)

// DefaultClassifierModel is the hosted model used for classification.
// It should be fast and cheap; it only ever emits a small JSON object.
const DefaultClassifierModel = "google/gemini-2.0-flash-001"

const classifierMaxTokens = 150

const classificationSystemPrompt = `You are a prompt classifier. Given a user prompt, classify it into exactly one category and return structured JSON. Do NOT include any text outside the JSON object.

Categories:
- code: programming, debugging, code review, algorithms
- writing: essays, creative writing, blog posts, copywriting
- reasoning: math, logic, proofs, analysis, step-by-step problem solving
- summarization: condensing text, extracting key points, TL;DR
- conversation: casual chat, opinions, recommendations, Q&A
- research: factual lookup, comparisons, literature review
- translation: language translation, localization
- data: CSV/JSON parsing, data analysis, statistics, visualization

Return ONLY this JSON (no markdown, no backticks):
{
  "task_type": "<one of the categories above>",
  "confidence": <0.0-1.0>,
  "complexity": "<low|medium|high>",
  "needs_reasoning": <true|false>,
  "needs_creativity": <true|false>
}`

// LLMClassifier classifies prompts by asking a hosted model. Any failure
// on the hosted path degrades to the keyword engine; callers never see an
// error, only a result tagged MethodLLMFallback.
type LLMClassifier struct {
	gen    provider.Generator
	model  string
	logger *zap.Logger
}

// LLMOption configures an LLMClassifier.
type LLMOption func(*LLMClassifier)

// WithModel overrides the classifier model.
func WithModel(model string) LLMOption {
	return func(c *LLMClassifier) { c.model = model }
}

// WithLogger sets the logger used for fallback warnings.
func WithLogger(logger *zap.Logger) LLMOption {
	return func(c *LLMClassifier) { c.logger = logger }
}

// NewLLMClassifier creates a classifier backed by the given provider.
func NewLLMClassifier(gen provider.Generator, opts ...LLMOption) *LLMClassifier {
	c := &LLMClassifier{
		gen:    gen,
		model:  DefaultClassifierModel,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Classify asks the hosted model to classify the prompt. On transport
// failure or an unparsable response it returns the keyword-engine result
// tagged MethodLLMFallback with the failure recorded in FallbackReason.
func (c *LLMClassifier) Classify(ctx context.Context, prompt string) Result {
	resp, err := c.gen.Complete(ctx, c.model,
		fmt.Sprintf("Classify this prompt:\n\n%s", prompt),
		provider.WithSystemPrompt(classificationSystemPrompt),
		provider.WithMaxTokens(classifierMaxTokens),
	)
	if err != nil {
		return c.fallback(prompt, fmt.Sprintf("classifier call failed: %v", err))
	}

	result, err := parseClassification(resp.Content)
	if err != nil {
		return c.fallback(prompt, fmt.Sprintf("classifier response invalid: %v", err))
	}
	return result
}

func (c *LLMClassifier) fallback(prompt, reason string) Result {
	c.logger.Warn("llm classifier degraded to rules", zap.String("reason", reason))
	result := Classify(prompt)
	result.Method = MethodLLMFallback
	result.FallbackReason = reason
	return result
}

type classifierPayload struct {
	TaskType        string   `json:"task_type"`
	Confidence      *float64 `json:"confidence"`
	Complexity      string   `json:"complexity"`
	NeedsReasoning  bool     `json:"needs_reasoning"`
	NeedsCreativity bool     `json:"needs_creativity"`
}

// parseClassification parses the model's JSON response, tolerating
// markdown code fences around the object.
func parseClassification(content string) (Result, error) {
	text := stripFences(content)

	var payload classifierPayload
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return Result{}, fmt.Errorf("parse classifier JSON: %w", err)
	}

	taskType, ok := registry.ParseTaskType(strings.ToLower(strings.TrimSpace(payload.TaskType)))
	if !ok {
		// An unknown category from the model is usable output, just not a
		// category we route on. Treat it as conversation.
		taskType = registry.TaskConversation
	}

	complexity := Complexity(strings.ToLower(strings.TrimSpace(payload.Complexity)))
	switch complexity {
	case ComplexityLow, ComplexityMedium, ComplexityHigh:
	default:
		complexity = ComplexityMedium
	}

	confidence := 0.7
	if payload.Confidence != nil {
		confidence = *payload.Confidence
	}
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 1 {
		confidence = 1
	}

	return Result{
		TaskType:        taskType,
		Confidence:      confidence,
		Complexity:      complexity,
		NeedsReasoning:  payload.NeedsReasoning,
		NeedsCreativity: payload.NeedsCreativity,
		Method:          MethodLLM,
	}, nil
}

// stripFences removes markdown code-fence lines wrapping a JSON object.
func stripFences(content string) string {
	text := strings.TrimSpace(content)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	var kept []string
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}
