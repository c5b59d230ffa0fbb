package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

var overrideVars = []string{
	"REACT_APP_BACKEND_URL",
	"CHANVIEW_BACKEND_URL",
	"CHANVIEW_API_PATH",
	"CHANVIEW_TIMEOUT",
	"CHANVIEW_RATE_LIMIT",
	"CHANVIEW_BURST",
	"CHANVIEW_MAX_VIDEOS",
	"CHANVIEW_THEME",
	"CHANVIEW_OUTPUT_FORMAT",
	"CHANVIEW_COLOR_MODE",
	"CHANVIEW_VERBOSE",
	"CHANVIEW_EMOJI",
	"CHANVIEW_LOG_FILE",
}

// isolatedLoader returns a loader that ignores the host's config files,
// dotenv file and override variables
func isolatedLoader(t *testing.T) *Loader {
	t.Helper()
	for _, name := range overrideVars {
		t.Setenv(name, "")
	}
	return &Loader{configPaths: []string{filepath.Join(t.TempDir(), "missing.yaml")}}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chanview.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write test config file: %v", err)
	}
	return path
}

func TestNewLoader(t *testing.T) {
	loader := NewLoader()
	if loader == nil {
		t.Fatal("NewLoader returned nil")
	}
	if len(loader.configPaths) != 3 {
		t.Errorf("Expected 3 config paths, got %d", len(loader.configPaths))
	}
	if loader.envFile != DefaultEnvFile {
		t.Errorf("Expected env file %s, got %s", DefaultEnvFile, loader.envFile)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	loader := isolatedLoader(t)

	cfg, err := loader.LoadConfig("")
	if err != nil {
		t.Fatalf("Failed to load default config: %v", err)
	}

	if cfg.BaseURL() != "http://localhost:8001/api" {
		t.Errorf("Expected default base URL, got %s", cfg.BaseURL())
	}
	if _, ok := loader.Source(); ok {
		t.Error("No config file should have been applied")
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	path := writeConfig(t, `version: "1.0"
provider:
  backend_url: "https://yt.example.com"
  timeout: 30s
browse:
  max_videos: 10
  theme: "dark"
output:
  default_format: "json"
  verbose: true
`)

	loader := isolatedLoader(t)
	cfg, err := loader.LoadConfig(path)
	if err != nil {
		t.Fatalf("Failed to load config from file: %v", err)
	}

	if cfg.Provider.BackendURL != "https://yt.example.com" {
		t.Errorf("Expected backend from file, got %s", cfg.Provider.BackendURL)
	}
	if cfg.Provider.Timeout != 30*time.Second {
		t.Errorf("Expected timeout 30s, got %v", cfg.Provider.Timeout)
	}
	if cfg.Browse.MaxVideos != 10 || cfg.Browse.Theme != "dark" {
		t.Errorf("Unexpected browse config: %+v", cfg.Browse)
	}
	if cfg.Output.DefaultFormat != "json" || !cfg.Output.Verbose {
		t.Errorf("Unexpected output config: %+v", cfg.Output)
	}

	// keys absent from the file keep their defaults
	if cfg.Provider.APIPath != DefaultAPIPath {
		t.Errorf("Expected default api path, got %s", cfg.Provider.APIPath)
	}
	if !cfg.Output.Emoji {
		t.Error("Emoji default should survive a file that does not mention it")
	}

	if source, ok := loader.Source(); !ok || source != path {
		t.Errorf("Expected source %s, got %s", path, source)
	}
}

func TestLoadConfigPriority(t *testing.T) {
	dir := t.TempDir()
	low := filepath.Join(dir, "system.yaml")
	high := filepath.Join(dir, "project.yaml")

	if err := os.WriteFile(low, []byte("browse:\n  max_videos: 5\n  theme: light\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(high, []byte("browse:\n  max_videos: 7\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	loader := isolatedLoader(t)
	loader.configPaths = []string{high, filepath.Join(dir, "absent.yaml"), low}

	cfg, err := loader.LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Browse.MaxVideos != 7 {
		t.Errorf("Higher priority file should win, got max videos %d", cfg.Browse.MaxVideos)
	}
	if cfg.Browse.Theme != "light" {
		t.Errorf("Lower priority values should remain when not overridden, got %s", cfg.Browse.Theme)
	}

	sources := loader.Sources()
	if len(sources) != 2 || sources[0] != low || sources[1] != high {
		t.Errorf("Unexpected sources order: %v", sources)
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	path := writeConfig(t, "provider:\n  backend_url: [unclosed\n")

	_, err := isolatedLoader(t).LoadConfig(path)
	if err == nil {
		t.Fatal("Expected error for invalid YAML")
	}
	if !strings.Contains(err.Error(), "failed to parse YAML") {
		t.Errorf("Expected YAML parse error, got %v", err)
	}
}

func TestLoadConfigValidationError(t *testing.T) {
	path := writeConfig(t, "browse:\n  max_videos: 500\n")

	_, err := isolatedLoader(t).LoadConfig(path)
	if err == nil || !strings.Contains(err.Error(), "configuration validation failed") {
		t.Errorf("Expected validation error, got %v", err)
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	loader := isolatedLoader(t)

	t.Setenv("CHANVIEW_BACKEND_URL", "http://provider:9000")
	t.Setenv("CHANVIEW_TIMEOUT", "5s")
	t.Setenv("CHANVIEW_RATE_LIMIT", "2.5")
	t.Setenv("CHANVIEW_MAX_VIDEOS", "12")
	t.Setenv("CHANVIEW_THEME", "mono")
	t.Setenv("CHANVIEW_VERBOSE", "true")
	t.Setenv("CHANVIEW_EMOJI", "false")

	cfg, err := loader.LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.BaseURL() != "http://provider:9000/api" {
		t.Errorf("Expected overridden base URL, got %s", cfg.BaseURL())
	}
	if cfg.Provider.Timeout != 5*time.Second {
		t.Errorf("Expected timeout 5s, got %v", cfg.Provider.Timeout)
	}
	if cfg.Provider.RateLimit != 2.5 {
		t.Errorf("Expected rate limit 2.5, got %v", cfg.Provider.RateLimit)
	}
	if cfg.Browse.MaxVideos != 12 || cfg.Browse.Theme != "mono" {
		t.Errorf("Unexpected browse config: %+v", cfg.Browse)
	}
	if !cfg.Output.Verbose || cfg.Output.Emoji {
		t.Errorf("Unexpected output config: %+v", cfg.Output)
	}
}

func TestReactBackendURLFallback(t *testing.T) {
	loader := isolatedLoader(t)
	t.Setenv("REACT_APP_BACKEND_URL", "https://frontend-configured.example.com")

	cfg, err := loader.LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Provider.BackendURL != "https://frontend-configured.example.com" {
		t.Errorf("Expected REACT_APP_BACKEND_URL to be used, got %s", cfg.Provider.BackendURL)
	}

	t.Setenv("CHANVIEW_BACKEND_URL", "https://own.example.com")
	cfg, err = loader.LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Provider.BackendURL != "https://own.example.com" {
		t.Errorf("CHANVIEW_BACKEND_URL should take precedence, got %s", cfg.Provider.BackendURL)
	}
}

func TestDotenvFile(t *testing.T) {
	loader := isolatedLoader(t)
	envPath := filepath.Join(t.TempDir(), ".env")
	content := "REACT_APP_BACKEND_URL=https://from-dotenv.example.com\nCHANVIEW_MAX_VIDEOS=8\n"
	if err := os.WriteFile(envPath, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	loader.WithEnvFile(envPath)

	cfg, err := loader.LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Provider.BackendURL != "https://from-dotenv.example.com" {
		t.Errorf("Expected backend from .env, got %s", cfg.Provider.BackendURL)
	}
	if cfg.Browse.MaxVideos != 8 {
		t.Errorf("Expected max videos from .env, got %d", cfg.Browse.MaxVideos)
	}

	// the process environment beats the dotenv file
	t.Setenv("CHANVIEW_MAX_VIDEOS", "3")
	cfg, err = loader.LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Browse.MaxVideos != 3 {
		t.Errorf("Expected process env to win, got %d", cfg.Browse.MaxVideos)
	}
}

func TestMissingDotenvFileIsIgnored(t *testing.T) {
	loader := isolatedLoader(t).WithEnvFile(filepath.Join(t.TempDir(), "nope.env"))
	if _, err := loader.LoadConfig(""); err != nil {
		t.Errorf("Missing .env should be ignored, got %v", err)
	}
}

func TestApplyEnvOverridesInvalidValues(t *testing.T) {
	tests := []struct {
		envVar string
		value  string
	}{
		{"CHANVIEW_TIMEOUT", "soon"},
		{"CHANVIEW_RATE_LIMIT", "fast"},
		{"CHANVIEW_BURST", "many"},
		{"CHANVIEW_MAX_VIDEOS", "lots"},
		{"CHANVIEW_VERBOSE", "maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.envVar, func(t *testing.T) {
			loader := isolatedLoader(t)
			t.Setenv(tt.envVar, tt.value)

			_, err := loader.LoadConfig("")
			if err == nil {
				t.Fatalf("Expected error for %s=%s", tt.envVar, tt.value)
			}
			if !strings.Contains(err.Error(), tt.envVar) {
				t.Errorf("Expected error to name %s, got %v", tt.envVar, err)
			}
		})
	}
}

func TestParseDuration(t *testing.T) {
	var d time.Duration
	if err := parseDuration("30s", &d); err != nil || d != 30*time.Second {
		t.Errorf("parseDuration(30s) = %v, %v", d, err)
	}
	if err := parseDuration("invalid", &d); err == nil {
		t.Error("Expected error for invalid duration")
	}
}

func TestParseInt(t *testing.T) {
	var i int
	if err := parseInt("42", &i); err != nil || i != 42 {
		t.Errorf("parseInt(42) = %d, %v", i, err)
	}
	if err := parseInt("invalid", &i); err == nil {
		t.Error("Expected error for invalid int")
	}
}

func TestParseBool(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
		wantErr  bool
	}{
		{"true", true, false},
		{"false", false, false},
		{"1", true, false},
		{"0", false, false},
		{"invalid", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var b bool
			err := parseBool(tt.input, &b)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseBool(%s) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && b != tt.expected {
				t.Errorf("parseBool(%s) = %v, want %v", tt.input, b, tt.expected)
			}
		})
	}
}

func TestFileExists(t *testing.T) {
	path := writeConfig(t, "version: \"1.0\"\n")
	if !fileExists(path) {
		t.Error("Expected file to exist")
	}
	if fileExists(filepath.Join(t.TempDir(), "missing.yaml")) {
		t.Error("Expected file to not exist")
	}
}

func TestValidateConfigPath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"valid yaml", "config.yaml", false},
		{"valid yml", "/home/user/chanview.yml", false},
		{"traversal", "../../secret.yaml", true},
		{"wrong extension", "config.json", true},
		{"proc", "/proc/self/environ.yaml", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateConfigPath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateConfigPath(%s) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}
}
