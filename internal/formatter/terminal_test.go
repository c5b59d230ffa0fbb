package formatter

import (
	"strings"
	"testing"

	"github.com/yildizm/chanview/internal/common"
	"github.com/yildizm/chanview/internal/emoji"
	"github.com/yildizm/chanview/internal/provider"
)

func strPtr(s string) *string { return &s }

func sampleResults() []common.ChannelSummary {
	return []common.ChannelSummary{
		{ChannelID: "UC1", Title: "Go Channel", Description: "All about\nGo", SubscriberCount: strPtr("1534000")},
		{ChannelID: "UC2", Title: "Secretive", Description: "hidden subs", SubscriberCount: strPtr(common.SubscribersHidden)},
		{ChannelID: "UC3", Title: "Unknown", Description: "no subs field"},
	}
}

func samplePage() *provider.ChannelPage {
	return &provider.ChannelPage{
		Channel: &common.ChannelDetail{
			ChannelID:       "UC1",
			Title:           "Go Channel",
			Description:     "The Go programming language",
			CustomURL:       strPtr("@golang"),
			SubscriberCount: "1534000",
			VideoCount:      "420",
			ViewCount:       "98765432",
			PublishedAt:     "2009-11-10T23:00:00Z",
		},
		Videos: []common.VideoSummary{
			{
				VideoID:      "abc123",
				Title:        "Concurrency is not parallelism",
				Duration:     "PT31M22S",
				ViewCount:    "1200000",
				LikeCount:    "25000",
				CommentCount: "900",
				PublishedAt:  "2023-03-05T10:00:00Z",
			},
			{
				VideoID:     "def456",
				Title:       "Generics",
				Duration:    "PT1H2M3S",
				ViewCount:   "999",
				LikeCount:   "12",
				PublishedAt: "2022-01-01T00:00:00Z",
			},
		},
	}
}

func TestTerminalFormatSearch(t *testing.T) {
	emoji.SetEmojiDisabled(true)
	defer emoji.SetEmojiDisabled(false)

	out, err := NewTerminal(false).FormatSearch("go", sampleResults())
	if err != nil {
		t.Fatalf("FormatSearch() error = %v", err)
	}
	text := string(out)

	for _, want := range []string{`Channels matching "go"`, "Go Channel", "1.5M subscribers", "UC3", "3 channel(s)"} {
		if !strings.Contains(text, want) {
			t.Errorf("Expected output to contain %q\n%s", want, text)
		}
	}

	// sentinel and absent counts are skipped rather than rendered
	if strings.Contains(text, "Hidden") {
		t.Errorf("Hidden sentinel should not be rendered\n%s", text)
	}
	if strings.Count(text, "subscribers") != 1 {
		t.Errorf("Only the numeric count should render a subscribers line\n%s", text)
	}
}

func TestTerminalFormatSearch_Empty(t *testing.T) {
	out, err := NewTerminal(false).FormatSearch("nothing", nil)
	if err != nil {
		t.Fatalf("FormatSearch() error = %v", err)
	}
	if !strings.Contains(string(out), "No channels found.") {
		t.Errorf("Expected empty message, got %s", out)
	}
}

func TestTerminalFormatChannel(t *testing.T) {
	out, err := NewTerminal(false).FormatChannel(samplePage())
	if err != nil {
		t.Fatalf("FormatChannel() error = %v", err)
	}
	text := string(out)

	for _, want := range []string{
		"@golang",
		"1.5M",         // subscribers
		"98.8M",        // views
		"Nov 10, 2009", // channel creation date
		"Recent Videos (2)",
		"[31:22]",
		"[1:02:03]",
		"1.2M views",
		"Mar 5, 2023",
		"https://www.youtube.com/watch?v=abc123",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("Expected output to contain %q\n%s", want, text)
		}
	}

	// videos keep provider order
	if strings.Index(text, "Concurrency") > strings.Index(text, "Generics") {
		t.Error("Videos should be listed in provider order")
	}
}

func TestTerminalFormatChannel_NoVideos(t *testing.T) {
	page := samplePage()
	page.Videos = nil

	out, err := NewTerminal(false).FormatChannel(page)
	if err != nil {
		t.Fatalf("FormatChannel() error = %v", err)
	}
	if !strings.Contains(string(out), "No videos found.") {
		t.Errorf("Expected no videos message, got %s", out)
	}
}

func TestFormatChannel_NilPage(t *testing.T) {
	for _, format := range Formats {
		f, err := New(format, false)
		if err != nil {
			t.Fatalf("New(%s) error = %v", format, err)
		}
		if _, err := f.FormatChannel(nil); err == nil {
			t.Errorf("%s: expected error for nil page", format)
		}
		if _, err := f.FormatChannel(&provider.ChannelPage{}); err == nil {
			t.Errorf("%s: expected error for page without channel", format)
		}
	}
}

func TestWriteHeader(t *testing.T) {
	f := &terminalFormatter{}
	var b strings.Builder
	f.writeHeader(&b, "Título")

	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected 3 header lines, got %d", len(lines))
	}
	if len([]rune(lines[0])) != len([]rune(lines[1])) {
		t.Errorf("Box edges should align with the title line:\n%s", b.String())
	}
}
