package formatter

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var durationPattern = regexp.MustCompile(`PT(\d+H)?(\d+M)?(\d+S)?`)

// dateLayouts are tried in order by Date
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

var countScales = []struct {
	div    int64
	suffix string
}{
	{1_000_000_000, "B"},
	{1_000_000, "M"},
	{1_000, "K"},
}

// Count renders a raw count such as "1534000" as "1.5M".
// Values that do not start with an integer are returned unchanged.
func Count(raw string) string {
	n, ok := parseLeadingInt(raw)
	if !ok {
		return raw
	}

	for _, scale := range countScales {
		if n >= scale.div {
			return scaled(n, scale.div) + scale.suffix
		}
	}
	return strconv.FormatInt(n, 10)
}

// scaled divides n by div with one decimal place, rounding half up
func scaled(n, div int64) string {
	q, r := n/div, n%div
	tenths := q*10 + (r*10+div/2)/div
	return fmt.Sprintf("%d.%d", tenths/10, tenths%10)
}

// parseLeadingInt reads an optionally signed integer prefix, ignoring leading whitespace
func parseLeadingInt(raw string) (int64, bool) {
	s := strings.TrimSpace(raw)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}

	n, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Duration renders an ISO-8601 duration like "PT1H2M3S" as "1:02:03" and
// "PT5M9S" as "5:09". Input that does not match is returned unchanged.
func Duration(iso string) string {
	match := durationPattern.FindStringSubmatch(iso)
	if match == nil {
		return iso
	}

	hours := strings.TrimSuffix(match[1], "H")
	minutes := strings.TrimSuffix(match[2], "M")
	seconds := strings.TrimSuffix(match[3], "S")

	if minutes == "" {
		minutes = "0"
	}
	seconds = padLeft(seconds, 2)

	if hours != "" {
		return hours + ":" + padLeft(minutes, 2) + ":" + seconds
	}
	return minutes + ":" + seconds
}

func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}

// Date renders an ISO-8601 timestamp as "Mar 5, 2023" (UTC calendar date).
// Unparseable input is returned unchanged.
func Date(iso string) string {
	s := strings.TrimSpace(iso)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC().Format("Jan 2, 2006")
		}
	}
	return iso
}
