// Package config loads modelmux settings from the environment, an
// optional .env file, and ~/.modelmux/config.yaml. Environment variables
// take precedence over file configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds the application configuration.
type Config struct {
	// APIKey authenticates against OpenRouter.
	APIKey  string
	BaseURL string

	// Referer and Title feed OpenRouter's attribution headers.
	Referer string
	Title   string

	// DefaultBudget is the budget policy used when the CLI does not
	// specify one.
	DefaultBudget string

	// ClassifierMethod is "rules" or "llm"; ClassifierModel overrides the
	// hosted classifier model when method is "llm".
	ClassifierMethod string
	ClassifierModel  string

	ConfigDir string
}

// FileConfig is the structure of ~/.modelmux/config.yaml.
type FileConfig struct {
	APIKey      string            `yaml:"api_key"`
	BaseURL     string            `yaml:"base_url"`
	Attribution AttributionConfig `yaml:"attribution"`
	Defaults    DefaultsConfig    `yaml:"defaults"`
}

// AttributionConfig holds the optional OpenRouter attribution headers.
type AttributionConfig struct {
	Referer string `yaml:"referer"`
	Title   string `yaml:"title"`
}

// DefaultsConfig holds default routing behavior.
type DefaultsConfig struct {
	Budget           string `yaml:"budget"`
	ClassifierMethod string `yaml:"classifier_method"`
	ClassifierModel  string `yaml:"classifier_model"`
}

// Load reads configuration from .env, the config file, and environment
// variables, in increasing order of precedence.
func Load() (*Config, error) {
	// A missing .env is fine; it only exists in dev checkouts.
	_ = godotenv.Load()

	configDir, err := getConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get config directory: %w", err)
	}

	fileConfig := loadFileConfig(filepath.Join(configDir, "config.yaml"))

	cfg := &Config{
		APIKey:           getEnvOrDefault("OPENROUTER_API_KEY", fileConfig.APIKey),
		BaseURL:          getEnvOrDefault("OPENROUTER_BASE_URL", fileConfig.BaseURL),
		Referer:          getEnvOrDefault("MODELMUX_REFERER", fileConfig.Attribution.Referer),
		Title:            getEnvOrDefault("MODELMUX_TITLE", fileConfig.Attribution.Title),
		DefaultBudget:    getEnvOrDefault("MODELMUX_BUDGET", fileConfig.Defaults.Budget),
		ClassifierMethod: getEnvOrDefault("MODELMUX_CLASSIFIER", fileConfig.Defaults.ClassifierMethod),
		ClassifierModel:  fileConfig.Defaults.ClassifierModel,
		ConfigDir:        configDir,
	}

	if cfg.DefaultBudget == "" {
		cfg.DefaultBudget = "best"
	}
	if cfg.ClassifierMethod == "" {
		cfg.ClassifierMethod = "rules"
	}

	return cfg, nil
}

// HasAPIKey reports whether an OpenRouter key is configured.
func (c *Config) HasAPIKey() bool {
	return c.APIKey != ""
}

// loadFileConfig reads the config file, returning empty config if not found.
func loadFileConfig(path string) *FileConfig {
	cfg := &FileConfig{}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg // Return empty config if file doesn't exist
	}

	_ = yaml.Unmarshal(data, cfg) // Ignore parse errors, use defaults
	return cfg
}

// getEnvOrDefault returns the environment variable value if set,
// otherwise returns the default value.
func getEnvOrDefault(envVar, defaultValue string) string {
	if val := os.Getenv(envVar); val != "" {
		return val
	}
	return defaultValue
}

func getConfigDir() (string, error) {
	if dir := os.Getenv("MODELMUX_CONFIG_DIR"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	configDir := filepath.Join(home, ".modelmux")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", err
	}
	return configDir, nil
}
