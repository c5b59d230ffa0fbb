package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme represents a color theme for the TUI
type Theme struct {
	Name string

	// Primary colors
	Primary   lipgloss.AdaptiveColor
	Secondary lipgloss.AdaptiveColor
	Accent    lipgloss.AdaptiveColor

	// Semantic colors
	Success lipgloss.AdaptiveColor
	Warning lipgloss.AdaptiveColor
	Error   lipgloss.AdaptiveColor

	// UI colors
	Border   lipgloss.AdaptiveColor
	Muted    lipgloss.AdaptiveColor
	Selected lipgloss.AdaptiveColor
}

// buildTheme creates a theme with the given [light, dark] colors
func buildTheme(name string, primary, secondary, accent, success, warning, errorColor, border, muted, selected [2]string) Theme {
	return Theme{
		Name:      name,
		Primary:   lipgloss.AdaptiveColor{Light: primary[0], Dark: primary[1]},
		Secondary: lipgloss.AdaptiveColor{Light: secondary[0], Dark: secondary[1]},
		Accent:    lipgloss.AdaptiveColor{Light: accent[0], Dark: accent[1]},
		Success:   lipgloss.AdaptiveColor{Light: success[0], Dark: success[1]},
		Warning:   lipgloss.AdaptiveColor{Light: warning[0], Dark: warning[1]},
		Error:     lipgloss.AdaptiveColor{Light: errorColor[0], Dark: errorColor[1]},
		Border:    lipgloss.AdaptiveColor{Light: border[0], Dark: border[1]},
		Muted:     lipgloss.AdaptiveColor{Light: muted[0], Dark: muted[1]},
		Selected:  lipgloss.AdaptiveColor{Light: selected[0], Dark: selected[1]},
	}
}

// Available themes
var (
	YouTubeTheme = buildTheme("youtube",
		[2]string{"#CC0000", "#FF0000"}, [2]string{"#0F0F0F", "#F1F1F1"}, [2]string{"#065FD4", "#3EA6FF"},
		[2]string{"#2BA640", "#2BA640"}, [2]string{"#C77C02", "#F9A825"}, [2]string{"#CC0000", "#FF4E45"},
		[2]string{"#E5E5E5", "#3F3F3F"}, [2]string{"#606060", "#AAAAAA"}, [2]string{"#F2F2F2", "#272727"})

	DarkTheme = buildTheme("dark",
		[2]string{"#3B82F6", "#60A5FA"}, [2]string{"#6B7280", "#9CA3AF"}, [2]string{"#7C3AED", "#A855F7"},
		[2]string{"#059669", "#10B981"}, [2]string{"#D97706", "#F59E0B"}, [2]string{"#DC2626", "#EF4444"},
		[2]string{"#D1D5DB", "#374151"}, [2]string{"#6B7280", "#9CA3AF"}, [2]string{"#DBEAFE", "#1E3A8A"})

	LightTheme = buildTheme("light",
		[2]string{"#1E40AF", "#1E40AF"}, [2]string{"#374151", "#374151"}, [2]string{"#7C3AED", "#7C3AED"},
		[2]string{"#047857", "#047857"}, [2]string{"#B45309", "#B45309"}, [2]string{"#B91C1C", "#B91C1C"},
		[2]string{"#D1D5DB", "#D1D5DB"}, [2]string{"#6B7280", "#6B7280"}, [2]string{"#E0E7FF", "#E0E7FF"})

	MonoTheme = buildTheme("mono",
		[2]string{"#000000", "#FFFFFF"}, [2]string{"#333333", "#DDDDDD"}, [2]string{"#000000", "#FFFFFF"},
		[2]string{"#000000", "#FFFFFF"}, [2]string{"#000000", "#FFFFFF"}, [2]string{"#000000", "#FFFFFF"},
		[2]string{"#888888", "#888888"}, [2]string{"#666666", "#999999"}, [2]string{"#DDDDDD", "#333333"})
)

var themes = map[string]*Theme{
	"youtube": &YouTubeTheme,
	"dark":    &DarkTheme,
	"light":   &LightTheme,
	"mono":    &MonoTheme,
}

// ThemeByName returns the named theme, or the YouTube theme with ok=false
func ThemeByName(name string) (Theme, bool) {
	if theme, ok := themes[name]; ok {
		return *theme, true
	}
	return YouTubeTheme, false
}

// GetAvailableThemes returns list of available theme names
func GetAvailableThemes() []string {
	return []string{"youtube", "dark", "light", "mono"}
}

// NewStyles builds the component styles for theme
func NewStyles(theme Theme) *Styles {
	return &Styles{
		Theme: theme,

		Title: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		Header: lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Bold(true),

		Body: lipgloss.NewStyle().
			Foreground(theme.Secondary),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Accent: lipgloss.NewStyle().
			Foreground(theme.Accent),

		Success: lipgloss.NewStyle().
			Foreground(theme.Success),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error).
			Bold(true),

		ErrorBanner: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Error).
			Foreground(theme.Error).
			Padding(0, 1),

		Spinner: lipgloss.NewStyle().
			Foreground(theme.Primary),

		SearchBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		SearchBoxFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Primary).
			Padding(0, 1),

		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		ListItem: lipgloss.NewStyle().
			Padding(0, 1),

		ListSelected: lipgloss.NewStyle().
			Background(theme.Selected).
			Foreground(theme.Primary).
			Padding(0, 1).
			Bold(true),
	}
}

// Styles contains all the styled components
type Styles struct {
	Theme Theme

	// Base styles
	Title  lipgloss.Style
	Header lipgloss.Style
	Body   lipgloss.Style
	Muted  lipgloss.Style
	Accent lipgloss.Style

	// Status styles
	Success     lipgloss.Style
	Error       lipgloss.Style
	ErrorBanner lipgloss.Style
	Spinner     lipgloss.Style

	// Layout styles
	SearchBox        lipgloss.Style
	SearchBoxFocused lipgloss.Style
	Box              lipgloss.Style

	// List styles
	ListItem     lipgloss.Style
	ListSelected lipgloss.Style
}
