package config

import (
	"time"

	"github.com/pagetree-ai/pagetree-go/client"
)

// Config holds pagetree CLI configuration.
// Stored at: ~/.pagetree/config.yaml
type Config struct {
	API    APIConfig    `mapstructure:"api" yaml:"api"`
	Answer AnswerConfig `mapstructure:"answer" yaml:"answer"`
}

// APIConfig configures the PageTree API client.
type APIConfig struct {
	Key            string `mapstructure:"key" yaml:"key"` // API key (supports ${ENV_VAR} syntax)
	BaseURL        string `mapstructure:"base_url" yaml:"base_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
	MaxRetries     int    `mapstructure:"max_retries" yaml:"max_retries"`
	RateLimit      int    `mapstructure:"rate_limit" yaml:"rate_limit"` // Requests per minute
}

// AnswerConfig configures local answer synthesis over query results.
type AnswerConfig struct {
	OpenAIKey        string `mapstructure:"openai_api_key" yaml:"openai_api_key"` // Supports ${ENV_VAR} syntax
	Model            string `mapstructure:"model" yaml:"model"`
	MaxContextTokens int    `mapstructure:"max_context_tokens" yaml:"max_context_tokens"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			Key:            "${PAGETREE_API_KEY}",
			BaseURL:        client.DefaultBaseURL,
			TimeoutSeconds: 120,
			MaxRetries:     3,
			RateLimit:      client.DefaultRateLimit,
		},
		Answer: AnswerConfig{
			OpenAIKey:        "${OPENAI_API_KEY}",
			Model:            "gpt-4o-mini",
			MaxContextTokens: 6000,
		},
	}
}

// ClientConfig converts the config into a client.Config, resolving
// ${ENV_VAR} references in the API key.
func (c *Config) ClientConfig() client.Config {
	return client.Config{
		APIKey:     ResolveEnvVars(c.API.Key),
		BaseURL:    c.API.BaseURL,
		Timeout:    time.Duration(c.API.TimeoutSeconds) * time.Second,
		MaxRetries: c.API.MaxRetries,
		RateLimit:  c.API.RateLimit,
	}
}

// ResolvedOpenAIKey returns the answer synthesis API key with ${ENV_VAR}
// references resolved.
func (c *Config) ResolvedOpenAIKey() string {
	return ResolveEnvVars(c.Answer.OpenAIKey)
}
