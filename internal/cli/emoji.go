package cli

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/yildizm/chanview/internal/config"
	"github.com/yildizm/chanview/internal/emoji"
)

// GetEmoji is a wrapper for the shared emoji package
func GetEmoji(key string) string {
	return emoji.GetEmoji(key)
}

// applyTerminalSettings applies the configured emoji and color preferences to
// every component that renders to the terminal
func applyTerminalSettings(cfg *config.Config) {
	emoji.SetEmojiDisabled(isEmojiDisabled() || !cfg.Output.Emoji)

	if !colorEnabled(cfg) {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// colorEnabled reports whether reports and the TUI may use color.
// NO_COLOR always wins; "auto" follows the terminal's capabilities.
func colorEnabled(cfg *config.Config) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	switch cfg.Output.ColorMode {
	case "never":
		return false
	case "always":
		return true
	default:
		return termenv.EnvColorProfile() != termenv.Ascii
	}
}
