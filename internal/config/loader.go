package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ConfigPaths defines the config file search paths in priority order
var ConfigPaths = []string{
	"./.chanview.yaml",               // Project-specific config (highest priority)
	"~/.config/chanview/config.yaml", // User config
	"/etc/chanview/config.yaml",      // System config (lowest priority)
}

// DefaultEnvFile is the dotenv file read for the backend origin and overrides
const DefaultEnvFile = ".env"

// Loader handles configuration loading with priority merging
type Loader struct {
	configPaths []string
	envFile     string
	sources     []string
}

// NewLoader creates a new config loader
func NewLoader() *Loader {
	return &Loader{
		configPaths: ConfigPaths,
		envFile:     DefaultEnvFile,
	}
}

// WithEnvFile sets the dotenv file to read; an empty path disables it
func (l *Loader) WithEnvFile(path string) *Loader {
	l.envFile = path
	return l
}

// Sources returns the config files applied by the last LoadConfig call,
// lowest priority first
func (l *Loader) Sources() []string {
	return l.sources
}

// Source returns the highest priority config file applied by the last
// LoadConfig call
func (l *Loader) Source() (string, bool) {
	if len(l.sources) == 0 {
		return "", false
	}
	return l.sources[len(l.sources)-1], true
}

// LoadConfig loads configuration from multiple sources with priority order:
// 1. Command line flags (handled by caller)
// 2. Process environment variables
// 3. The dotenv file
// 4. ./.chanview.yaml
// 5. ~/.config/chanview/config.yaml
// 6. /etc/chanview/config.yaml
// 7. Built-in defaults
func (l *Loader) LoadConfig(customPath string) (*Config, error) {
	config := DefaultConfig()
	l.sources = nil

	if customPath != "" {
		if err := validateConfigPath(customPath); err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		if err := l.loadFromFile(config, customPath); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", customPath, err)
		}
	} else {
		for i := len(l.configPaths) - 1; i >= 0; i-- {
			expandedPath := expandPath(l.configPaths[i])
			if !fileExists(expandedPath) {
				continue
			}
			if err := l.loadFromFile(config, expandedPath); err != nil {
				// Keep going with the remaining files
				fmt.Fprintf(os.Stderr, "Warning: Failed to load config from %s: %v\n", expandedPath, err)
			}
		}
	}

	dotenv, err := l.readEnvFile()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", l.envFile, err)
	}

	if err := applyEnvOverrides(config, envLookup(dotenv)); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// loadFromFile decodes a YAML file over config. Keys absent from the file
// keep their current value.
func (l *Loader) loadFromFile(config *Config, path string) error {
	// #nosec G304 - path is validated or comes from the fixed search list
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	l.sources = append(l.sources, path)
	return nil
}

func (l *Loader) readEnvFile() (map[string]string, error) {
	if l.envFile == "" {
		return nil, nil
	}
	values, err := godotenv.Read(l.envFile)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	return values, err
}

// envLookup resolves a variable from the process environment first, then
// from the dotenv values
func envLookup(dotenv map[string]string) func(string) string {
	return func(key string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return dotenv[key]
	}
}

// applyEnvOverrides applies environment variable overrides to the config
func applyEnvOverrides(config *Config, getenv func(string) string) error {
	// The frontend's variable is honored as a fallback for the backend origin
	if v := getenv("REACT_APP_BACKEND_URL"); v != "" {
		config.Provider.BackendURL = v
	}

	envMappings := []struct {
		name string
		set  func(string) error
	}{
		// Provider Config
		{"CHANVIEW_BACKEND_URL", func(v string) error { config.Provider.BackendURL = v; return nil }},
		{"CHANVIEW_API_PATH", func(v string) error { config.Provider.APIPath = v; return nil }},
		{"CHANVIEW_TIMEOUT", func(v string) error { return parseDuration(v, &config.Provider.Timeout) }},
		{"CHANVIEW_RATE_LIMIT", func(v string) error { return parseFloat(v, &config.Provider.RateLimit) }},
		{"CHANVIEW_BURST", func(v string) error { return parseInt(v, &config.Provider.Burst) }},

		// Browse Config
		{"CHANVIEW_MAX_VIDEOS", func(v string) error { return parseInt(v, &config.Browse.MaxVideos) }},
		{"CHANVIEW_THEME", func(v string) error { config.Browse.Theme = v; return nil }},

		// Output Config
		{"CHANVIEW_OUTPUT_FORMAT", func(v string) error { config.Output.DefaultFormat = v; return nil }},
		{"CHANVIEW_COLOR_MODE", func(v string) error { config.Output.ColorMode = v; return nil }},
		{"CHANVIEW_VERBOSE", func(v string) error { return parseBool(v, &config.Output.Verbose) }},
		{"CHANVIEW_EMOJI", func(v string) error { return parseBool(v, &config.Output.Emoji) }},
		{"CHANVIEW_LOG_FILE", func(v string) error { config.Output.LogFile = v; return nil }},
	}

	for _, m := range envMappings {
		if value := getenv(m.name); value != "" {
			if err := m.set(value); err != nil {
				return fmt.Errorf("invalid value for %s: %w", m.name, err)
			}
		}
	}

	return nil
}

// GetConfigPaths returns the list of configuration file paths that will be searched
func GetConfigPaths() []string {
	paths := make([]string, 0, len(ConfigPaths))
	for _, path := range ConfigPaths {
		paths = append(paths, expandPath(path))
	}
	return paths
}

// FindConfigFile finds the first existing config file in the search paths
func FindConfigFile() (string, bool) {
	for _, path := range ConfigPaths {
		expandedPath := expandPath(path)
		if fileExists(expandedPath) {
			return expandedPath, true
		}
	}
	return "", false
}

// Helper functions

// validateConfigPath validates that a config path is safe to read
func validateConfigPath(path string) error {
	cleanPath := filepath.Clean(path)

	if strings.Contains(cleanPath, "..") {
		return fmt.Errorf("path traversal not allowed")
	}

	ext := strings.ToLower(filepath.Ext(cleanPath))
	if ext != ".yaml" && ext != ".yml" {
		return fmt.Errorf("config file must have .yaml or .yml extension")
	}

	absPath, err := filepath.Abs(cleanPath)
	if err != nil {
		return fmt.Errorf("failed to resolve absolute path: %w", err)
	}

	if strings.HasPrefix(absPath, "/proc/") || strings.HasPrefix(absPath, "/sys/") {
		return fmt.Errorf("access to system files not allowed")
	}

	return nil
}

// expandPath expands ~ to home directory
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

// fileExists checks if a file exists
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Type conversion helpers

func parseInt(s string, dst *int) error {
	val, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	*dst = val
	return nil
}

func parseFloat(s string, dst *float64) error {
	val, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	*dst = val
	return nil
}

func parseBool(s string, dst *bool) error {
	val, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	*dst = val
	return nil
}

func parseDuration(s string, dst *time.Duration) error {
	val, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*dst = val
	return nil
}
