package config

// SampleConfig returns a fully commented configuration file
func SampleConfig() string {
	return `# chanview configuration
version: "1.0"

# Metadata provider connection
provider:
  # Origin of the provider service. CHANVIEW_BACKEND_URL or
  # REACT_APP_BACKEND_URL (environment or .env) override it.
  backend_url: "http://localhost:8001"
  # Path prefix appended to the origin
  api_path: "/api"
  # Per request timeout
  timeout: 15s
  # Client side request rate (requests per second, 0 disables)
  rate_limit: 5
  burst: 4

# Interactive viewer
browse:
  # Recent videos loaded per channel (1-50)
  max_videos: 20
  # youtube | dark | light | mono
  theme: "youtube"

# Output formatting
output:
  # text | json | markdown | csv (search and channel commands)
  default_format: "text"
  # auto | always | never
  color_mode: "auto"
  verbose: false
  emoji: true
  # Log destination while the interactive viewer owns the terminal
  log_file: "~/.cache/chanview/chanview.log"
`
}

// MinimalSampleConfig returns a configuration with only essential settings
func MinimalSampleConfig() string {
	return `version: "1.0"
provider:
  backend_url: "http://localhost:8001"
browse:
  max_videos: 20
  theme: "youtube"
`
}
