package classifier

import (
	"math"
	"strings"

	"github.com/modelmux/modelmux/pkg/registry"
)

// taskKeywords pairs a task type with its keyword patterns. Both the
// slice order (task scan order) and the per-task keyword order are
// significant: ties between task types resolve to the earlier entry, and
// matched keywords are reported in declaration order.
type taskKeywords struct {
	taskType registry.TaskType
	keywords []string
}

// ruleTable maps keyword patterns to task types, ordered by specificity.
// The table is shared by every consumer (CLI, router, hosted-classifier
// fallback); changing it changes classification for all of them.
var ruleTable = []taskKeywords{
	{registry.TaskCode, []string{
		"write a function", "write a script", "implement", "debug", "fix this bug",
		"refactor", "code review", "unit test", "regex", "algorithm",
		"python", "javascript", "typescript", "java", "rust", "golang",
		"html", "css", "sql", "api endpoint", "class", "function",
		"compile", "runtime error", "syntax error", "stack trace",
	}},
	{registry.TaskWriting, []string{
		"essay", "blog post", "article", "creative writing", "story",
		"poem", "rewrite", "proofread", "persuasive", "narrative",
		"write me", "draft", "compose", "copywriting", "slogan",
	}},
	{registry.TaskReasoning, []string{
		"solve", "calculate", "prove", "logic", "math", "equation",
		"why does", "explain why", "what would happen if", "probability",
		"derive", "reasoning", "step by step", "analyze the argument",
	}},
	{registry.TaskSummarization, []string{
		"summarize", "tldr", "tl;dr", "key points", "condense",
		"brief overview", "main ideas", "recap", "in short",
	}},
	{registry.TaskConversation, []string{
		"chat", "tell me about yourself", "how are you", "what do you think",
		"let's talk", "opinion on", "recommend",
	}},
	{registry.TaskResearch, []string{
		"research", "find information", "what is", "who is", "when did",
		"compare and contrast", "pros and cons", "sources", "evidence",
		"literature review", "state of the art",
	}},
	{registry.TaskTranslation, []string{
		"translate", "translation", "in spanish", "in french", "in german",
		"in japanese", "in chinese", "in arabic", "to english", "from english",
		"localize", "multilingual",
	}},
	{registry.TaskData, []string{
		"csv", "json", "parse", "data analysis", "spreadsheet",
		"table", "dataset", "extract data", "structured data",
		"visualization", "chart", "graph", "statistics",
	}},
}

// Classify assigns a prompt to the task type with the most keyword
// matches. It is total over arbitrary text: a prompt matching nothing is
// classified as conversation at fixed low confidence, never an error.
func Classify(prompt string) Result {
	promptLower := strings.ToLower(prompt)

	var (
		best        registry.TaskType
		bestMatched []string
		bestTotal   int
	)
	for _, entry := range ruleTable {
		var matched []string
		for _, kw := range entry.keywords {
			if containsKeyword(promptLower, kw) {
				matched = append(matched, kw)
			}
		}
		// Strict greater-than keeps the earliest task type on ties.
		if len(matched) > len(bestMatched) {
			best = entry.taskType
			bestMatched = matched
			bestTotal = len(entry.keywords)
		}
	}

	if len(bestMatched) == 0 {
		return Result{
			TaskType:   registry.TaskConversation,
			Confidence: 0.30,
			Complexity: ComplexityLow,
			Method:     MethodRules,
		}
	}

	// Confidence scales with match density against the winning type's own
	// keyword-list size, capped at 0.9: rules alone are never fully
	// confident. The per-type normalization means confidence values are
	// not comparable across task types; downstream consumers rely on the
	// existing scale, so keep the formula as is.
	confidence := 0.40 + float64(len(bestMatched))/float64(bestTotal)*0.50
	if confidence > 0.90 {
		confidence = 0.90
	}

	return Result{
		TaskType:        best,
		Confidence:      round2(confidence),
		Complexity:      ComplexityMedium,
		NeedsReasoning:  best == registry.TaskReasoning,
		NeedsCreativity: best == registry.TaskWriting,
		KeywordsMatched: bestMatched,
		Method:          MethodRules,
	}
}

// containsKeyword reports whether the lower-cased prompt contains the
// keyword as a whole word or phrase, never as a substring inside a
// longer word.
func containsKeyword(prompt, keyword string) bool {
	for pos := 0; ; {
		idx := strings.Index(prompt[pos:], keyword)
		if idx == -1 {
			return false
		}
		idx += pos
		if boundaryBefore(prompt, idx) && boundaryAfter(prompt, idx+len(keyword)) {
			return true
		}
		pos = idx + 1
	}
}

func boundaryBefore(s string, idx int) bool {
	return idx == 0 || !isWordChar(s[idx-1])
}

func boundaryAfter(s string, idx int) bool {
	return idx >= len(s) || !isWordChar(s[idx])
}

func isWordChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '_'
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
