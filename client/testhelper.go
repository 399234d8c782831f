package client

import "os"

// TestConfig holds API credentials loaded from environment variables so
// integration tests can run against a live endpoint when configured.
type TestConfig struct {
	APIKey  string
	BaseURL string
}

// LoadTestConfig loads credentials from PAGETREE_API_KEY and
// PAGETREE_BASE_URL. Returns whatever is available.
func LoadTestConfig() TestConfig {
	return TestConfig{
		APIKey:  os.Getenv("PAGETREE_API_KEY"),
		BaseURL: os.Getenv("PAGETREE_BASE_URL"),
	}
}

// HasAPIKey returns true if an API key is configured.
func (c TestConfig) HasAPIKey() bool {
	return c.APIKey != ""
}

// NewClient creates a client from test config. Returns nil if not configured.
func (c TestConfig) NewClient() *Client {
	if !c.HasAPIKey() {
		return nil
	}
	return New(Config{APIKey: c.APIKey, BaseURL: c.BaseURL})
}
