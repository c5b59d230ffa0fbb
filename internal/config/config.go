package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Config holds the complete application configuration
type Config struct {
	Version  string         `yaml:"version" json:"version"`
	Provider ProviderConfig `yaml:"provider" json:"provider"`
	Browse   BrowseConfig   `yaml:"browse" json:"browse"`
	Output   OutputConfig   `yaml:"output" json:"output"`
}

// ProviderConfig configures the metadata provider connection
type ProviderConfig struct {
	BackendURL string        `yaml:"backend_url" json:"backend_url"` // origin, e.g. http://localhost:8001
	APIPath    string        `yaml:"api_path" json:"api_path"`       // appended to the origin
	Timeout    time.Duration `yaml:"timeout" json:"timeout"`         // per request timeout
	RateLimit  float64       `yaml:"rate_limit" json:"rate_limit"`   // requests per second, 0 disables
	Burst      int           `yaml:"burst" json:"burst"`
}

// BrowseConfig configures the interactive viewer
type BrowseConfig struct {
	MaxVideos int    `yaml:"max_videos" json:"max_videos"` // recent videos per channel
	Theme     string `yaml:"theme" json:"theme"`           // youtube|dark|light|mono
}

// OutputConfig configures output formatting and display
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format" json:"default_format"` // json|text|markdown|csv
	ColorMode     string `yaml:"color_mode" json:"color_mode"`         // auto|always|never
	Verbose       bool   `yaml:"verbose" json:"verbose"`               // default verbosity
	Emoji         bool   `yaml:"emoji" json:"emoji"`
	LogFile       string `yaml:"log_file" json:"log_file"` // log destination while browsing
}

const (
	DefaultBackendURL = "http://localhost:8001"
	DefaultAPIPath    = "/api"
	DefaultMaxVideos  = 20
	MaxVideosLimit    = 50
	DefaultTheme      = "youtube"
)

// ValidThemes lists the theme names the viewer knows
var ValidThemes = []string{"youtube", "dark", "light", "mono"}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Version: "1.0",
		Provider: ProviderConfig{
			BackendURL: DefaultBackendURL,
			APIPath:    DefaultAPIPath,
			Timeout:    15 * time.Second,
			RateLimit:  5,
			Burst:      4,
		},
		Browse: BrowseConfig{
			MaxVideos: DefaultMaxVideos,
			Theme:     DefaultTheme,
		},
		Output: OutputConfig{
			DefaultFormat: "text",
			ColorMode:     "auto",
			Verbose:       false,
			Emoji:         true,
			LogFile:       "~/.cache/chanview/chanview.log",
		},
	}
}

// BaseURL joins the backend origin and the API path
func (c *Config) BaseURL() string {
	origin := strings.TrimRight(c.Provider.BackendURL, "/")
	path := strings.Trim(c.Provider.APIPath, "/")
	if path == "" {
		return origin
	}
	return origin + "/" + path
}

// LogFilePath returns the log file location with ~ expanded
func (c *Config) LogFilePath() string {
	return expandPath(c.Output.LogFile)
}

// IsVerbose reports whether debug and info logs are enabled
func (c *Config) IsVerbose() bool {
	return c.Output.Verbose
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.validateProviderConfig(); err != nil {
		return err
	}
	if err := c.validateBrowseConfig(); err != nil {
		return err
	}
	if err := c.validateOutputConfig(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateProviderConfig() error {
	if c.Provider.BackendURL == "" {
		return fmt.Errorf("backend_url is required")
	}
	u, err := url.Parse(c.Provider.BackendURL)
	if err != nil {
		return fmt.Errorf("invalid backend_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid backend_url: %s (scheme must be http or https)", c.Provider.BackendURL)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid backend_url: %s (missing host)", c.Provider.BackendURL)
	}
	if c.Provider.Timeout < 0 {
		return fmt.Errorf("timeout must be non-negative")
	}
	if c.Provider.RateLimit < 0 {
		return fmt.Errorf("rate_limit must be non-negative")
	}
	if c.Provider.RateLimit > 0 && c.Provider.Burst < 1 {
		return fmt.Errorf("burst must be greater than 0 when rate_limit is set")
	}
	return nil
}

func (c *Config) validateBrowseConfig() error {
	if c.Browse.MaxVideos < 1 || c.Browse.MaxVideos > MaxVideosLimit {
		return fmt.Errorf("max_videos must be between 1 and %d", MaxVideosLimit)
	}
	if c.Browse.Theme != "" && !contains(ValidThemes, c.Browse.Theme) {
		return fmt.Errorf("invalid theme: %s (must be one of: %s)", c.Browse.Theme, strings.Join(ValidThemes, ", "))
	}
	return nil
}

func (c *Config) validateOutputConfig() error {
	if c.Output.DefaultFormat != "" {
		validFormats := map[string]bool{
			"json":     true,
			"text":     true,
			"markdown": true,
			"csv":      true,
		}
		if !validFormats[c.Output.DefaultFormat] {
			return fmt.Errorf("invalid output format: %s (must be one of: json, text, markdown, csv)", c.Output.DefaultFormat)
		}
	}
	if c.Output.ColorMode != "" {
		validColorModes := map[string]bool{
			"auto":   true,
			"always": true,
			"never":  true,
		}
		if !validColorModes[c.Output.ColorMode] {
			return fmt.Errorf("invalid color mode: %s (must be one of: auto, always, never)", c.Output.ColorMode)
		}
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
