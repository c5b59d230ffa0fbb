package provider

import (
	"fmt"
	"net/url"
	"time"
)

const (
	DefaultBaseURL   = "http://localhost:8001/api"
	DefaultTimeout   = 15 * time.Second
	DefaultRateLimit = 5.0
	DefaultBurst     = 4
	DefaultMaxVideos = 20
	MaxVideosLimit   = 50
)

// Config configures the provider client
type Config struct {
	// BaseURL is the provider origin plus API prefix, e.g. http://host:8001/api
	BaseURL string
	Timeout time.Duration
	// RateLimit is requests per second; 0 disables limiting
	RateLimit float64
	Burst     int
	UserAgent string
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		BaseURL:   DefaultBaseURL,
		Timeout:   DefaultTimeout,
		RateLimit: DefaultRateLimit,
		Burst:     DefaultBurst,
		UserAgent: "chanview",
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("provider base URL is required")
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid provider base URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid provider base URL %q: scheme must be http or https", c.BaseURL)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("provider timeout must be non-negative")
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("provider rate limit must be non-negative")
	}
	if c.RateLimit > 0 && c.Burst < 1 {
		return fmt.Errorf("provider burst must be at least 1 when rate limiting is enabled")
	}
	return nil
}
