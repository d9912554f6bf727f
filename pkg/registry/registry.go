package registry

import "fmt"

// ModelInfo describes one externally callable model. Values are never
// mutated after construction.
type ModelInfo struct {
	// ID is the provider-prefixed identifier sent verbatim to the
	// OpenRouter API, e.g. "anthropic/claude-sonnet-4-5".
	ID       string `json:"id"`
	Name     string `json:"name"`
	Provider string `json:"provider"`

	// Scores rates the model per task type on a 0-10 scale. A missing
	// entry reads as 0.
	Scores map[TaskType]float64 `json:"scores"`

	// Costs are USD per one million tokens.
	CostPerMillionInput  float64 `json:"cost_per_million_input"`
	CostPerMillionOutput float64 `json:"cost_per_million_output"`

	MaxContext     int  `json:"max_context"`
	SupportsImages bool `json:"supports_images"`
	SupportsTools  bool `json:"supports_tools"`
}

// ScoreFor returns the model's score for a task type, 0 when unrated.
func (m ModelInfo) ScoreFor(t TaskType) float64 {
	return m.Scores[t]
}

// Registry is an ordered, immutable collection of models. Insertion order
// is significant: selection ties resolve to the earliest entry.
type Registry struct {
	models []ModelInfo
	byID   map[string]int
}

// New builds a registry from the given models. An empty set or a
// duplicate ID is a configuration fault.
func New(models ...ModelInfo) (*Registry, error) {
	if len(models) == 0 {
		return nil, fmt.Errorf("registry requires at least one model")
	}
	byID := make(map[string]int, len(models))
	for i, m := range models {
		if m.ID == "" {
			return nil, fmt.Errorf("model at index %d has empty ID", i)
		}
		if _, ok := byID[m.ID]; ok {
			return nil, fmt.Errorf("duplicate model ID %q", m.ID)
		}
		byID[m.ID] = i
	}
	return &Registry{models: models, byID: byID}, nil
}

// Models returns the models in registry order. The returned slice is a
// copy; mutating it does not affect the registry.
func (r *Registry) Models() []ModelInfo {
	out := make([]ModelInfo, len(r.models))
	copy(out, r.models)
	return out
}

// Lookup returns the model with the given ID.
func (r *Registry) Lookup(id string) (ModelInfo, bool) {
	i, ok := r.byID[id]
	if !ok {
		return ModelInfo{}, false
	}
	return r.models[i], true
}

// Len returns the number of registered models.
func (r *Registry) Len() int {
	return len(r.models)
}
