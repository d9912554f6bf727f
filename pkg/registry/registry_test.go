package registry

import "testing"

func TestDefaultRegistryShape(t *testing.T) {
	reg := Default()

	if reg.Len() != 6 {
		t.Fatalf("expected 6 models, got %d", reg.Len())
	}

	wantOrder := []string{
		"anthropic/claude-sonnet-4-5",
		"openai/gpt-4o",
		"google/gemini-2.0-flash-001",
		"deepseek/deepseek-chat-v3",
		"meta-llama/llama-3.3-70b-instruct",
		"qwen/qwen-2.5-72b-instruct",
	}
	models := reg.Models()
	for i, id := range wantOrder {
		if models[i].ID != id {
			t.Fatalf("model %d: expected %s, got %s", i, id, models[i].ID)
		}
	}
}

func TestDefaultRegistryScoresComplete(t *testing.T) {
	for _, m := range Default().Models() {
		for _, task := range TaskTypes {
			if _, ok := m.Scores[task]; !ok {
				t.Errorf("%s missing score for %s", m.ID, task)
			}
		}
	}
}

func TestLookup(t *testing.T) {
	reg := Default()

	m, ok := reg.Lookup("openai/gpt-4o")
	if !ok {
		t.Fatal("expected to find openai/gpt-4o")
	}
	if m.Name != "GPT-4o" {
		t.Fatalf("unexpected name: %s", m.Name)
	}

	if _, ok := reg.Lookup("missing/model"); ok {
		t.Fatal("expected lookup miss")
	}
}

func TestModelsReturnsCopy(t *testing.T) {
	reg := Default()

	models := reg.Models()
	models[0] = ModelInfo{ID: "mutated"}

	if got := reg.Models()[0].ID; got != "anthropic/claude-sonnet-4-5" {
		t.Fatalf("registry mutated through Models(): %s", got)
	}
}

func TestScoreForMissingTask(t *testing.T) {
	m := ModelInfo{ID: "m", Scores: map[TaskType]float64{TaskCode: 8}}
	if got := m.ScoreFor(TaskWriting); got != 0 {
		t.Fatalf("expected 0 for unrated task, got %g", got)
	}
}

func TestNewRejectsBadInput(t *testing.T) {
	if _, err := New(); err == nil {
		t.Fatal("expected error for empty registry")
	}

	if _, err := New(ModelInfo{ID: ""}); err == nil {
		t.Fatal("expected error for empty model ID")
	}

	_, err := New(
		ModelInfo{ID: "dup/model"},
		ModelInfo{ID: "dup/model"},
	)
	if err == nil {
		t.Fatal("expected error for duplicate model ID")
	}
}

func TestParseTaskType(t *testing.T) {
	if got, ok := ParseTaskType("code"); !ok || got != TaskCode {
		t.Fatalf("expected code, got %q ok=%v", got, ok)
	}
	if _, ok := ParseTaskType("poetry"); ok {
		t.Fatal("expected unknown task type to fail")
	}
}
