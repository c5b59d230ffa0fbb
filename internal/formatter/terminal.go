package formatter

import (
	"fmt"
	"strings"

	"github.com/yildizm/chanview/internal/common"
	"github.com/yildizm/chanview/internal/emoji"
	"github.com/yildizm/chanview/internal/provider"
	"github.com/yildizm/go-termfmt"
)

const descriptionWidth = 100

// terminalFormatter formats output as plain text for terminal display using go-termfmt
type terminalFormatter struct {
	opts *termfmt.TerminalOptions
}

// NewTerminal creates a new terminal formatter with optional color support
func NewTerminal(color bool) Formatter {
	opts := termfmt.DefaultOptions()
	opts.Color = color
	opts.Emoji = !emoji.IsEmojiDisabled()
	return &terminalFormatter{opts: opts}
}

func (f *terminalFormatter) FormatSearch(query string, results []common.ChannelSummary) ([]byte, error) {
	var b strings.Builder

	f.writeHeader(&b, fmt.Sprintf("Channels matching %q", query))

	if len(results) == 0 {
		b.WriteString("No channels found.\n")
		return []byte(b.String()), nil
	}

	fmt.Fprintf(&b, "%s %d channel(s)\n", emoji.GetEmoji("search"), len(results))

	items := make([]termfmt.TreeItem, 0, len(results))
	for i := range results {
		items = append(items, f.channelItem(&results[i], i == len(results)-1))
	}
	b.WriteString(termfmt.TreeViewWithOptions(items, f.opts) + "\n")

	return []byte(b.String()), nil
}

func (f *terminalFormatter) FormatChannel(page *provider.ChannelPage) ([]byte, error) {
	if page == nil || page.Channel == nil {
		return nil, fmt.Errorf("no channel to format")
	}

	var b strings.Builder
	channel := page.Channel

	f.writeHeader(&b, channel.Title)
	f.writeChannelStatistics(&b, channel)

	if desc := oneLine(channel.Description); desc != "" {
		b.WriteString(Truncate(desc, descriptionWidth*3) + "\n\n")
	}

	f.writeVideos(&b, page.Videos)

	return []byte(b.String()), nil
}

func (f *terminalFormatter) channelItem(c *common.ChannelSummary, last bool) termfmt.TreeItem {
	var children []termfmt.TreeItem
	if subs, ok := Subscribers(c); ok {
		children = append(children, termfmt.TreeItem{Label: emoji.GetEmoji("subscribers"), Value: subs})
	}
	if desc := oneLine(c.Description); desc != "" {
		children = append(children, termfmt.TreeItem{Label: Truncate(desc, descriptionWidth)})
	}
	children = append(children, termfmt.TreeItem{Label: "ID", Value: c.ChannelID, Last: true})

	return termfmt.TreeItem{
		Label:    emoji.GetEmoji("channel") + " " + c.Title,
		Children: children,
		Last:     last,
	}
}

// writeChannelStatistics writes the channel's aggregate counts as a tree
func (f *terminalFormatter) writeChannelStatistics(b *strings.Builder, channel *common.ChannelDetail) {
	symbol := termfmt.GetEmoji("statistics", f.opts)
	b.WriteString(symbol + " Channel\n")

	items := []termfmt.TreeItem{}
	if handle := channel.Handle(); handle != "" {
		items = append(items, termfmt.TreeItem{Label: "Handle", Value: handle})
	}
	items = append(items,
		termfmt.TreeItem{Label: "Subscribers", Value: Count(channel.SubscriberCount)},
		termfmt.TreeItem{Label: "Videos", Value: Count(channel.VideoCount)},
		termfmt.TreeItem{Label: "Views", Value: Count(channel.ViewCount)},
	)
	if channel.PublishedAt != "" {
		items = append(items, termfmt.TreeItem{Label: "Since", Value: Date(channel.PublishedAt)})
	}
	items[len(items)-1].Last = true

	b.WriteString(termfmt.TreeViewWithOptions(items, f.opts) + "\n\n")
}

// writeVideos writes the recent uploads, one tree node per video
func (f *terminalFormatter) writeVideos(b *strings.Builder, videos []common.VideoSummary) {
	fmt.Fprintf(b, "%s Recent Videos (%d)\n", emoji.GetEmoji("video"), len(videos))

	if len(videos) == 0 {
		b.WriteString("No videos found.\n")
		return
	}

	items := make([]termfmt.TreeItem, 0, len(videos))
	for i := range videos {
		v := &videos[i]
		items = append(items, termfmt.TreeItem{
			Label: v.Title,
			Value: "[" + Duration(v.Duration) + "]",
			Children: []termfmt.TreeItem{
				{Label: emoji.GetEmoji("views"), Value: Count(v.ViewCount) + " views"},
				{Label: emoji.GetEmoji("likes"), Value: Count(v.LikeCount) + " likes"},
				{Label: emoji.GetEmoji("calendar"), Value: Date(v.PublishedAt)},
				{Label: emoji.GetEmoji("link"), Value: v.WatchURL(), Last: true},
			},
			Last: i == len(videos)-1,
		})
	}
	b.WriteString(termfmt.TreeViewWithOptions(items, f.opts) + "\n")
}

// writeHeader writes a boxed title
func (f *terminalFormatter) writeHeader(b *strings.Builder, title string) {
	width := len([]rune(title))

	b.WriteString("╔" + strings.Repeat("═", width+2) + "╗\n")
	b.WriteString("║ " + title + " ║\n")
	b.WriteString("╚" + strings.Repeat("═", width+2) + "╝\n\n")
}
