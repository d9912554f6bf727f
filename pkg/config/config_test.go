package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"OPENROUTER_API_KEY", "OPENROUTER_BASE_URL",
		"MODELMUX_REFERER", "MODELMUX_TITLE",
		"MODELMUX_BUDGET", "MODELMUX_CLASSIFIER",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MODELMUX_CONFIG_DIR", t.TempDir())
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HasAPIKey() {
		t.Fatal("expected no API key")
	}
	if cfg.DefaultBudget != "best" {
		t.Fatalf("expected default budget best, got %q", cfg.DefaultBudget)
	}
	if cfg.ClassifierMethod != "rules" {
		t.Fatalf("expected default classifier rules, got %q", cfg.ClassifierMethod)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("MODELMUX_CONFIG_DIR", dir)
	clearEnv(t)

	content := `api_key: sk-file
base_url: https://example.test/v1
attribution:
  referer: https://example.test
  title: example
defaults:
  budget: balanced
  classifier_method: llm
  classifier_model: openai/gpt-4o
`
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.APIKey != "sk-file" {
		t.Fatalf("expected file API key, got %q", cfg.APIKey)
	}
	if cfg.BaseURL != "https://example.test/v1" {
		t.Fatalf("unexpected base URL: %q", cfg.BaseURL)
	}
	if cfg.Referer != "https://example.test" || cfg.Title != "example" {
		t.Fatalf("attribution not loaded: %q %q", cfg.Referer, cfg.Title)
	}
	if cfg.DefaultBudget != "balanced" {
		t.Fatalf("expected balanced, got %q", cfg.DefaultBudget)
	}
	if cfg.ClassifierMethod != "llm" || cfg.ClassifierModel != "openai/gpt-4o" {
		t.Fatalf("classifier settings not loaded: %q %q", cfg.ClassifierMethod, cfg.ClassifierModel)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("MODELMUX_CONFIG_DIR", dir)
	clearEnv(t)

	content := "api_key: sk-file\ndefaults:\n  budget: balanced\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("OPENROUTER_API_KEY", "sk-env")
	t.Setenv("MODELMUX_BUDGET", "cheap")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.APIKey != "sk-env" {
		t.Fatalf("env should win, got %q", cfg.APIKey)
	}
	if cfg.DefaultBudget != "cheap" {
		t.Fatalf("env should win, got %q", cfg.DefaultBudget)
	}
}

func TestLoadIgnoresMissingFile(t *testing.T) {
	t.Setenv("MODELMUX_CONFIG_DIR", t.TempDir())
	clearEnv(t)

	if _, err := Load(); err != nil {
		t.Fatalf("missing config file must not error: %v", err)
	}
}
