// Package classifier assigns prompts to task types, either by keyword
// matching or by asking a cheap hosted model.
package classifier

import "github.com/modelmux/modelmux/pkg/registry"

// Method records which classification strategy produced a result.
type Method string

const (
	// MethodRules marks a result from the keyword engine.
	MethodRules Method = "rules"
	// MethodLLM marks a result from the hosted classifier model.
	MethodLLM Method = "llm"
	// MethodLLMFallback marks a rules result produced because the hosted
	// classifier failed.
	MethodLLMFallback Method = "llm_fallback"
)

// Complexity is the classifier's estimate of how demanding a prompt is.
type Complexity string

const (
	ComplexityLow    Complexity = "low"
	ComplexityMedium Complexity = "medium"
	ComplexityHigh   Complexity = "high"
)

// Result is the output of classifying one prompt. It is produced fresh
// per request and never persisted.
type Result struct {
	TaskType   registry.TaskType `json:"task_type"`
	Confidence float64           `json:"confidence"`
	Complexity Complexity        `json:"complexity"`

	NeedsReasoning  bool `json:"needs_reasoning"`
	NeedsCreativity bool `json:"needs_creativity"`

	// KeywordsMatched lists the keyword-engine patterns that fired, in
	// declaration order. Empty for LLM results and the no-match default.
	KeywordsMatched []string `json:"keywords_matched,omitempty"`

	Method Method `json:"method"`

	// FallbackReason explains why the hosted classifier was abandoned.
	// Set only when Method is MethodLLMFallback.
	FallbackReason string `json:"fallback_reason,omitempty"`
}
