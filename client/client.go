// Package client is the Go client for the PageTree document-intelligence
// API: document upload and OCR, hierarchical tree retrieval, semantic query,
// and chat completion with streaming.
package client

import (
	"log/slog"
	"net/http"
	"time"
)

const (
	// DefaultBaseURL is the hosted PageTree API endpoint.
	DefaultBaseURL = "https://api.pagetree.ai/v1"

	// DefaultTimeout covers large uploads and long OCR-backed requests.
	DefaultTimeout = 120 * time.Second

	// DefaultRateLimit is requests per minute.
	DefaultRateLimit = 120

	defaultMaxRetries = 3
	defaultRetryDelay = time.Second
)

// Config holds configuration for the PageTree client.
type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration

	// Transport retry behavior for retryable statuses and network errors.
	MaxRetries int
	RetryDelay time.Duration

	// RateLimit is the client-side request budget in requests per minute.
	RateLimit int

	// HTTPClient overrides the default client (tests).
	HTTPClient *http.Client

	// Logger receives transport-level debug logging. Defaults to slog.Default().
	Logger *slog.Logger
}

// Client calls the PageTree API.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	maxRetries int
	retryDelay time.Duration
	limiter    *RateLimiter
	logger     *slog.Logger
}

// New creates a PageTree client. Zero-value config fields fall back to the
// package defaults; only APIKey is required for the hosted API.
func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = defaultMaxRetries
	}
	if cfg.RetryDelay == 0 {
		cfg.RetryDelay = defaultRetryDelay
	}
	if cfg.RateLimit == 0 {
		cfg.RateLimit = DefaultRateLimit
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		httpClient: cfg.HTTPClient,
		maxRetries: cfg.MaxRetries,
		retryDelay: cfg.RetryDelay,
		limiter:    NewRateLimiter(cfg.RateLimit),
		logger:     cfg.Logger,
	}
}

// BaseURL returns the configured API endpoint.
func (c *Client) BaseURL() string {
	return c.baseURL
}
