package router

import (
	"math"

	"github.com/modelmux/modelmux/pkg/registry"
)

// charsPerToken is the crude length-to-token heuristic used for cost
// estimates. Good enough for relative comparisons between models; not a
// billing-grade count.
const charsPerToken = 4

// EstimateTokens approximates the token count of a text.
func EstimateTokens(text string) float64 {
	return float64(len(text)) / charsPerToken
}

// estimateCost approximates the USD cost of one call from the prompt and
// response lengths, rounded to 6 decimal places.
func estimateCost(m registry.ModelInfo, prompt, response string) float64 {
	inputTokens := EstimateTokens(prompt)
	outputTokens := EstimateTokens(response)
	cost := (inputTokens/1_000_000)*m.CostPerMillionInput +
		(outputTokens/1_000_000)*m.CostPerMillionOutput
	return math.Round(cost*1e6) / 1e6
}
