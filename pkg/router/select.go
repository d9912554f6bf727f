package router

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/modelmux/modelmux/pkg/classifier"
	"github.com/modelmux/modelmux/pkg/registry"
)

// Budget is the optimization objective used to pick among models.
type Budget string

const (
	// BudgetBest picks the highest score regardless of cost.
	BudgetBest Budget = "best"
	// BudgetBalanced picks the best score-to-cost ratio.
	BudgetBalanced Budget = "balanced"
	// BudgetCheap picks the cheapest model that still scores well.
	BudgetCheap Budget = "cheap"
)

// ParseBudget maps a string to a Budget. Unknown values resolve to
// BudgetBest; that is the documented default, not an error.
func ParseBudget(s string) Budget {
	switch Budget(strings.ToLower(strings.TrimSpace(s))) {
	case BudgetBalanced:
		return BudgetBalanced
	case BudgetCheap:
		return BudgetCheap
	default:
		return BudgetBest
	}
}

// cheapScoreThreshold is the minimum task score a model must hold to be a
// candidate under BudgetCheap.
const cheapScoreThreshold = 7.0

// costFloor guards the score/cost ratio against zero-cost entries.
const costFloor = 0.01

// maxAlternatives caps the ranked alternatives carried on a decision.
const maxAlternatives = 3

// RankedModel pairs a model with its score for the task under decision.
type RankedModel struct {
	Model registry.ModelInfo `json:"model"`
	Score float64            `json:"score"`
}

// Decision explains which model was selected and why.
type Decision struct {
	Model     registry.ModelInfo `json:"model"`
	TaskType  registry.TaskType  `json:"task_type"`
	Budget    Budget             `json:"budget"`
	Score     float64            `json:"score"`
	Reasoning string             `json:"reasoning"`
	// Alternatives ranks the other models for the same task type,
	// descending by score, at most maxAlternatives entries.
	Alternatives []RankedModel `json:"alternatives"`
}

// Select picks a model from the registry for the classified task under
// the given budget. It is total over a non-empty registry; an empty
// registry is rejected at construction time, never here.
func Select(reg *registry.Registry, c classifier.Result, budget Budget) Decision {
	models := reg.Models()
	task := c.TaskType

	var chosen registry.ModelInfo
	switch budget {
	case BudgetCheap:
		chosen = selectCheap(models, task)
	case BudgetBalanced:
		chosen = selectBalanced(models, task)
	default:
		chosen = selectBest(models, task)
	}

	score := chosen.ScoreFor(task)

	var alternatives []RankedModel
	for _, rm := range Rank(reg, task) {
		if rm.Model.ID == chosen.ID {
			continue
		}
		alternatives = append(alternatives, rm)
		if len(alternatives) == maxAlternatives {
			break
		}
	}

	return Decision{
		Model:        chosen,
		TaskType:     task,
		Budget:       budget,
		Score:        score,
		Reasoning:    buildReasoning(c, chosen, score, budget),
		Alternatives: alternatives,
	}
}

// selectBest returns the model with the maximum task score, keeping the
// earliest entry on ties.
func selectBest(models []registry.ModelInfo, task registry.TaskType) registry.ModelInfo {
	chosen := models[0]
	for _, m := range models[1:] {
		if m.ScoreFor(task) > chosen.ScoreFor(task) {
			chosen = m
		}
	}
	return chosen
}

// selectCheap returns the cheapest model (by input cost) scoring at least
// cheapScoreThreshold for the task. When nothing clears the threshold it
// degrades to cost-only selection over the whole registry rather than
// returning no model.
func selectCheap(models []registry.ModelInfo, task registry.TaskType) registry.ModelInfo {
	var candidates []registry.ModelInfo
	for _, m := range models {
		if m.ScoreFor(task) >= cheapScoreThreshold {
			candidates = append(candidates, m)
		}
	}
	if len(candidates) == 0 {
		candidates = models
	}

	chosen := candidates[0]
	for _, m := range candidates[1:] {
		if m.CostPerMillionInput < chosen.CostPerMillionInput {
			chosen = m
		}
	}
	return chosen
}

// selectBalanced returns the model with the best score-to-cost ratio,
// keeping the earliest entry on ties.
func selectBalanced(models []registry.ModelInfo, task registry.TaskType) registry.ModelInfo {
	ratio := func(m registry.ModelInfo) float64 {
		cost := m.CostPerMillionInput + m.CostPerMillionOutput
		if cost < costFloor {
			cost = costFloor
		}
		return m.ScoreFor(task) / cost
	}

	chosen := models[0]
	for _, m := range models[1:] {
		if ratio(m) > ratio(chosen) {
			chosen = m
		}
	}
	return chosen
}

// Rank returns every model ranked by score for the task, descending,
// with ties keeping registry order.
func Rank(reg *registry.Registry, task registry.TaskType) []RankedModel {
	models := reg.Models()
	ranked := make([]RankedModel, 0, len(models))
	for _, m := range models {
		ranked = append(ranked, RankedModel{Model: m, Score: m.ScoreFor(task)})
	}
	// Insertion keeps the scan stable so equal scores stay in registry
	// order.
	for i := 1; i < len(ranked); i++ {
		for j := i; j > 0 && ranked[j].Score > ranked[j-1].Score; j-- {
			ranked[j], ranked[j-1] = ranked[j-1], ranked[j]
		}
	}
	return ranked
}

func buildReasoning(c classifier.Result, chosen registry.ModelInfo, score float64, budget Budget) string {
	return fmt.Sprintf(
		"Classified as '%s' (confidence: %s, keywords: [%s]). Selected %s with score %s/10 (budget: %s).",
		c.TaskType,
		formatFloat(c.Confidence),
		strings.Join(c.KeywordsMatched, ", "),
		chosen.Name,
		formatFloat(score),
		budget,
	)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
