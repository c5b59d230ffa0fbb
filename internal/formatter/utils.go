package formatter

import (
	"strings"

	"github.com/yildizm/chanview/internal/common"
)

// Subscribers renders a search hit's subscriber count as "1.5M subscribers".
// ok is false when the count is absent or a sentinel such as "Hidden"; the
// line should then be left out.
func Subscribers(c *common.ChannelSummary) (string, bool) {
	if !c.HasSubscriberCount() {
		return "", false
	}
	return Count(c.Subscribers()) + " subscribers", true
}

// Truncate shortens s to at most max runes, marking the cut with "..."
func Truncate(s string, max int) string {
	r := []rune(s)
	if max <= 0 || len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

// oneLine collapses newlines so multi-line descriptions fit a table cell
func oneLine(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.TrimSpace(s)
}
