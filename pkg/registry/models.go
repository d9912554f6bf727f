package registry

// Default returns the built-in model table. Scores reflect published
// benchmarks plus community consensus (10 = best-in-class for that task
// type); costs are USD per 1M tokens via OpenRouter as of early 2026.
//
// IDs, scores, and costs are load-bearing: benchmark corpora and persisted
// comparison data key off them, so edits here change routing behavior for
// every consumer.
func Default() *Registry {
	r, err := New(
		ModelInfo{
			ID:       "anthropic/claude-sonnet-4-5",
			Name:     "Claude Sonnet 4.5",
			Provider: "anthropic",
			Scores: map[TaskType]float64{
				TaskCode:          9.0,
				TaskWriting:       10.0,
				TaskReasoning:     9.0,
				TaskSummarization: 9.0,
				TaskConversation:  9.0,
				TaskResearch:      9.0,
				TaskTranslation:   8.0,
				TaskData:          8.5,
			},
			CostPerMillionInput:  3.0,
			CostPerMillionOutput: 15.0,
			MaxContext:           200_000,
			SupportsImages:       true,
			SupportsTools:        true,
		},
		ModelInfo{
			ID:       "openai/gpt-4o",
			Name:     "GPT-4o",
			Provider: "openai",
			Scores: map[TaskType]float64{
				TaskCode:          9.0,
				TaskWriting:       8.0,
				TaskReasoning:     9.0,
				TaskSummarization: 8.0,
				TaskConversation:  8.5,
				TaskResearch:      8.5,
				TaskTranslation:   9.0,
				TaskData:          9.0,
			},
			CostPerMillionInput:  2.5,
			CostPerMillionOutput: 10.0,
			MaxContext:           128_000,
			SupportsImages:       true,
			SupportsTools:        true,
		},
		ModelInfo{
			ID:       "google/gemini-2.0-flash-001",
			Name:     "Gemini 2.0 Flash",
			Provider: "google",
			Scores: map[TaskType]float64{
				TaskCode:          7.0,
				TaskWriting:       7.0,
				TaskReasoning:     7.0,
				TaskSummarization: 8.0,
				TaskConversation:  7.5,
				TaskResearch:      7.5,
				TaskTranslation:   7.5,
				TaskData:          7.5,
			},
			CostPerMillionInput:  0.1,
			CostPerMillionOutput: 0.4,
			MaxContext:           1_000_000,
			SupportsImages:       true,
			SupportsTools:        true,
		},
		ModelInfo{
			ID:       "deepseek/deepseek-chat-v3",
			Name:     "DeepSeek V3",
			Provider: "deepseek",
			Scores: map[TaskType]float64{
				TaskCode:          9.0,
				TaskWriting:       6.0,
				TaskReasoning:     8.5,
				TaskSummarization: 7.0,
				TaskConversation:  6.5,
				TaskResearch:      7.0,
				TaskTranslation:   7.0,
				TaskData:          8.5,
			},
			CostPerMillionInput:  0.27,
			CostPerMillionOutput: 1.10,
			MaxContext:           128_000,
			SupportsTools:        true,
		},
		ModelInfo{
			ID:       "meta-llama/llama-3.3-70b-instruct",
			Name:     "Llama 3.3 70B",
			Provider: "meta",
			Scores: map[TaskType]float64{
				TaskCode:          7.5,
				TaskWriting:       7.0,
				TaskReasoning:     7.5,
				TaskSummarization: 7.5,
				TaskConversation:  7.0,
				TaskResearch:      7.0,
				TaskTranslation:   7.0,
				TaskData:          7.0,
			},
			CostPerMillionInput:  0.40,
			CostPerMillionOutput: 0.40,
			MaxContext:           128_000,
			SupportsTools:        true,
		},
		ModelInfo{
			ID:       "qwen/qwen-2.5-72b-instruct",
			Name:     "Qwen 2.5 72B",
			Provider: "qwen",
			Scores: map[TaskType]float64{
				TaskCode:          8.0,
				TaskWriting:       7.0,
				TaskReasoning:     8.0,
				TaskSummarization: 7.5,
				TaskConversation:  7.0,
				TaskResearch:      7.0,
				TaskTranslation:   8.5,
				TaskData:          8.0,
			},
			CostPerMillionInput:  0.35,
			CostPerMillionOutput: 0.40,
			MaxContext:           128_000,
			SupportsTools:        true,
		},
	)
	if err != nil {
		// The built-in table is validated by tests; this cannot happen
		// at runtime.
		panic(err)
	}
	return r
}
