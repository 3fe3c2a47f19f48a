// Package config loads the optional YAML run configuration. All fields have
// working defaults so a zero config file, or none at all, yields a usable
// pipeline setup.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// GenerationConfig selects and tunes the content generator.
type GenerationConfig struct {
	// Provider is one of "openai", "anthropic" or "mock".
	Provider string `yaml:"provider"`
	// Model overrides the provider's default model when set.
	Model string `yaml:"model,omitempty"`
	// Temperature controls sampling; zero keeps the provider default.
	Temperature float64 `yaml:"temperature,omitempty"`
	// MaxTokens caps the completion length; zero keeps the provider default.
	MaxTokens int `yaml:"max_tokens,omitempty"`
	// MaxCalls budgets the total generation calls per run; zero means
	// unlimited.
	MaxCalls int `yaml:"max_calls,omitempty"`
}

// PipelineConfig tunes the pipeline itself.
type PipelineConfig struct {
	// MaxConcurrency bounds the topic fan-out worker pool.
	MaxConcurrency int `yaml:"max_concurrency"`
	// MaxTopics caps the extracted topic list; zero means no cap.
	MaxTopics int `yaml:"max_topics,omitempty"`
}

// OutputConfig controls report rendering.
type OutputConfig struct {
	// HTML additionally renders HTML pages next to the markdown ones.
	HTML bool `yaml:"html"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	// Level is one of "debug", "info", "warn" or "error".
	Level string `yaml:"level"`
	// Format is "text" or "json".
	Format string `yaml:"format"`
}

// Config is the full run configuration.
type Config struct {
	Generation GenerationConfig `yaml:"generation"`
	Pipeline   PipelineConfig   `yaml:"pipeline"`
	Output     OutputConfig     `yaml:"output"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Generation: GenerationConfig{Provider: "openai"},
		Pipeline:   PipelineConfig{MaxConcurrency: 4},
		Logging:    LoggingConfig{Level: "info", Format: "text"},
	}
}

// Load reads a YAML configuration file, layering it over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks cross-field constraints.
func (c *Config) Validate() error {
	switch c.Generation.Provider {
	case "openai", "anthropic", "mock":
	default:
		return fmt.Errorf("unknown generation provider %q", c.Generation.Provider)
	}

	if c.Pipeline.MaxConcurrency < 1 {
		return fmt.Errorf("pipeline max_concurrency must be >= 1, got %d", c.Pipeline.MaxConcurrency)
	}
	if c.Pipeline.MaxTopics < 0 {
		return fmt.Errorf("pipeline max_topics must be >= 0, got %d", c.Pipeline.MaxTopics)
	}
	if c.Generation.MaxCalls < 0 {
		return fmt.Errorf("generation max_calls must be >= 0, got %d", c.Generation.MaxCalls)
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.Logging.Format)
	}

	return nil
}
