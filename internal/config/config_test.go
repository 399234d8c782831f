package config

import (
	"os"
	"strings"
	"testing"

	"github.com/pagetree-ai/pagetree-go/client"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.API.Key != "${PAGETREE_API_KEY}" {
		t.Errorf("API.Key = %s, want env placeholder", cfg.API.Key)
	}
	if cfg.API.BaseURL != client.DefaultBaseURL {
		t.Errorf("API.BaseURL = %s", cfg.API.BaseURL)
	}
	if cfg.Answer.Model == "" {
		t.Error("expected a default answer model")
	}
}

func TestResolveEnvVars(t *testing.T) {
	t.Run("resolves environment variable", func(t *testing.T) {
		os.Setenv("TEST_API_KEY", "secret123")
		defer os.Unsetenv("TEST_API_KEY")

		result := ResolveEnvVars("${TEST_API_KEY}")
		if result != "secret123" {
			t.Errorf("expected secret123, got %s", result)
		}
	})

	t.Run("returns empty for missing env var", func(t *testing.T) {
		result := ResolveEnvVars("${DEFINITELY_NOT_SET_12345}")
		if result != "" {
			t.Errorf("expected empty string, got %s", result)
		}
	})

	t.Run("leaves literal values unchanged", func(t *testing.T) {
		result := ResolveEnvVars("literal-value")
		if result != "literal-value" {
			t.Errorf("expected literal-value, got %s", result)
		}
	})
}

func TestConfig_ClientConfig(t *testing.T) {
	os.Setenv("TEST_PAGETREE_KEY", "pt-key-123")
	defer os.Unsetenv("TEST_PAGETREE_KEY")

	cfg := &Config{
		API: APIConfig{
			Key:            "${TEST_PAGETREE_KEY}",
			BaseURL:        "https://example.test/v1",
			TimeoutSeconds: 30,
			MaxRetries:     2,
			RateLimit:      60,
		},
	}

	cc := cfg.ClientConfig()
	if cc.APIKey != "pt-key-123" {
		t.Errorf("APIKey = %s", cc.APIKey)
	}
	if cc.BaseURL != "https://example.test/v1" || cc.MaxRetries != 2 || cc.RateLimit != 60 {
		t.Errorf("client config = %+v", cc)
	}
	if cc.Timeout.Seconds() != 30 {
		t.Errorf("Timeout = %v", cc.Timeout)
	}
}

func TestWriteDefault(t *testing.T) {
	path := t.TempDir() + "/config.yaml"
	if err := WriteDefault(path); err != nil {
		t.Fatalf("WriteDefault() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)
	if !strings.HasPrefix(content, "# PageTree configuration") {
		t.Error("missing header comment")
	}
	if !strings.Contains(content, "base_url:") {
		t.Errorf("config content = %s", content)
	}
}
