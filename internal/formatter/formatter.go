package formatter

import (
	"fmt"

	"github.com/yildizm/chanview/internal/common"
	"github.com/yildizm/chanview/internal/provider"
)

// Formatter renders provider data as a report for the non-interactive commands
type Formatter interface {
	FormatSearch(query string, results []common.ChannelSummary) ([]byte, error)
	FormatChannel(page *provider.ChannelPage) ([]byte, error)
}

// Formats lists the names accepted by New
var Formats = []string{"text", "json", "markdown", "csv"}

// New returns the formatter registered under format. color only affects text.
func New(format string, color bool) (Formatter, error) {
	switch format {
	case "", "text":
		return NewTerminal(color), nil
	case "json":
		return NewJSON(), nil
	case "markdown", "md":
		return NewMarkdown(), nil
	case "csv":
		return NewCSV(), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s (use text, json, markdown, or csv)", format)
	}
}
