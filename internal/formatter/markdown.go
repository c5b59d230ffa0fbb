package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/yildizm/chanview/internal/common"
	"github.com/yildizm/chanview/internal/provider"
)

// markdownFormatter formats output as Markdown
type markdownFormatter struct {
	now func() time.Time
}

// NewMarkdown creates a new Markdown formatter
func NewMarkdown() Formatter {
	return &markdownFormatter{now: time.Now}
}

func (f *markdownFormatter) FormatSearch(query string, results []common.ChannelSummary) ([]byte, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "# Channel Search: %s\n\n", escapeMarkdown(query))
	f.writeGenerated(&b)

	if len(results) == 0 {
		b.WriteString("_No channels found._\n")
		return []byte(b.String()), nil
	}

	b.WriteString("| Channel | Subscribers | Description |\n")
	b.WriteString("|---------|-------------|-------------|\n")
	for i := range results {
		c := &results[i]
		subs, ok := Subscribers(c)
		if !ok {
			subs = "-"
		}
		fmt.Fprintf(&b, "| [%s](https://www.youtube.com/channel/%s) | %s | %s |\n",
			escapeMarkdown(c.Title), c.ChannelID, subs,
			escapeMarkdown(Truncate(oneLine(c.Description), descriptionWidth)))
	}

	return []byte(b.String()), nil
}

func (f *markdownFormatter) FormatChannel(page *provider.ChannelPage) ([]byte, error) {
	if page == nil || page.Channel == nil {
		return nil, fmt.Errorf("no channel to format")
	}

	var b strings.Builder
	channel := page.Channel

	fmt.Fprintf(&b, "# %s\n\n", escapeMarkdown(channel.Title))
	if handle := channel.Handle(); handle != "" {
		fmt.Fprintf(&b, "**%s**\n\n", escapeMarkdown(handle))
	}
	f.writeGenerated(&b)

	f.writeChannelTable(&b, channel)

	if desc := strings.TrimSpace(channel.Description); desc != "" {
		b.WriteString("## About\n\n")
		b.WriteString(desc + "\n\n")
	}

	f.writeVideoTable(&b, page.Videos)

	return []byte(b.String()), nil
}

func (f *markdownFormatter) writeGenerated(b *strings.Builder) {
	fmt.Fprintf(b, "Generated: %s\n\n", f.now().Format("2006-01-02 15:04:05"))
}

func (f *markdownFormatter) writeChannelTable(b *strings.Builder, channel *common.ChannelDetail) {
	b.WriteString("## Summary\n\n")
	b.WriteString("| Metric | Value |\n")
	b.WriteString("|--------|-------|\n")
	fmt.Fprintf(b, "| Subscribers | %s |\n", Count(channel.SubscriberCount))
	fmt.Fprintf(b, "| Videos | %s |\n", Count(channel.VideoCount))
	fmt.Fprintf(b, "| Views | %s |\n", Count(channel.ViewCount))
	if channel.PublishedAt != "" {
		fmt.Fprintf(b, "| Created | %s |\n", Date(channel.PublishedAt))
	}
	b.WriteString("\n")
}

func (f *markdownFormatter) writeVideoTable(b *strings.Builder, videos []common.VideoSummary) {
	b.WriteString("## Recent Videos\n\n")

	if len(videos) == 0 {
		b.WriteString("_No videos found._\n")
		return
	}

	b.WriteString("| # | Title | Duration | Views | Likes | Published |\n")
	b.WriteString("|---|-------|----------|-------|-------|-----------|\n")
	for i := range videos {
		v := &videos[i]
		fmt.Fprintf(b, "| %d | [%s](%s) | %s | %s | %s | %s |\n",
			i+1, escapeMarkdown(v.Title), v.WatchURL(),
			Duration(v.Duration), Count(v.ViewCount), Count(v.LikeCount), Date(v.PublishedAt))
	}
}

// escapeMarkdown keeps cell content from breaking table and link syntax
func escapeMarkdown(s string) string {
	replacer := strings.NewReplacer(
		"|", "\\|",
		"[", "\\[",
		"]", "\\]",
	)
	return replacer.Replace(oneLine(s))
}
