package formatter

import (
	"encoding/json"
	"fmt"

	"github.com/yildizm/chanview/internal/common"
	"github.com/yildizm/chanview/internal/provider"
)

// jsonFormatter formats output as JSON
type jsonFormatter struct{}

// NewJSON creates a new JSON formatter
func NewJSON() Formatter {
	return &jsonFormatter{}
}

// SearchOutput is the JSON document for a channel search
type SearchOutput struct {
	Query    string           `json:"query"`
	Count    int              `json:"count"`
	Channels []*ChannelOutput `json:"channels"`
}

// ChannelOutput is a search hit with its display values
type ChannelOutput struct {
	common.ChannelSummary
	SubscribersDisplay string `json:"subscribers_display,omitempty"`
}

// ChannelPageOutput is the JSON document for a channel and its videos
type ChannelPageOutput struct {
	Channel *ChannelDetailOutput `json:"channel"`
	Videos  []*VideoOutput       `json:"videos"`
}

// ChannelDetailOutput is a channel record with its display values
type ChannelDetailOutput struct {
	*common.ChannelDetail
	Display ChannelDisplay `json:"display"`
}

// ChannelDisplay holds the formatted channel counts
type ChannelDisplay struct {
	Subscribers string `json:"subscribers"`
	Videos      string `json:"videos"`
	Views       string `json:"views"`
	Published   string `json:"published,omitempty"`
}

// VideoOutput is a video with its display values and links
type VideoOutput struct {
	common.VideoSummary
	WatchURL string       `json:"watch_url"`
	EmbedURL string       `json:"embed_url"`
	Display  VideoDisplay `json:"display"`
}

// VideoDisplay holds the formatted video fields
type VideoDisplay struct {
	Duration  string `json:"duration"`
	Views     string `json:"views"`
	Likes     string `json:"likes"`
	Comments  string `json:"comments,omitempty"`
	Published string `json:"published"`
}

func (f *jsonFormatter) FormatSearch(query string, results []common.ChannelSummary) ([]byte, error) {
	output := &SearchOutput{
		Query:    query,
		Count:    len(results),
		Channels: make([]*ChannelOutput, 0, len(results)),
	}

	for i := range results {
		out := &ChannelOutput{ChannelSummary: results[i]}
		if subs, ok := Subscribers(&results[i]); ok {
			out.SubscribersDisplay = subs
		}
		output.Channels = append(output.Channels, out)
	}

	return json.MarshalIndent(output, "", "  ")
}

func (f *jsonFormatter) FormatChannel(page *provider.ChannelPage) ([]byte, error) {
	if page == nil || page.Channel == nil {
		return nil, fmt.Errorf("no channel to format")
	}

	channel := page.Channel
	output := &ChannelPageOutput{
		Channel: &ChannelDetailOutput{
			ChannelDetail: channel,
			Display: ChannelDisplay{
				Subscribers: Count(channel.SubscriberCount),
				Videos:      Count(channel.VideoCount),
				Views:       Count(channel.ViewCount),
			},
		},
		Videos: make([]*VideoOutput, 0, len(page.Videos)),
	}
	if channel.PublishedAt != "" {
		output.Channel.Display.Published = Date(channel.PublishedAt)
	}

	for _, v := range page.Videos {
		out := &VideoOutput{
			VideoSummary: v,
			WatchURL:     v.WatchURL(),
			EmbedURL:     v.EmbedURL(),
			Display: VideoDisplay{
				Duration:  Duration(v.Duration),
				Views:     Count(v.ViewCount),
				Likes:     Count(v.LikeCount),
				Published: Date(v.PublishedAt),
			},
		}
		if v.CommentCount != "" {
			out.Display.Comments = Count(v.CommentCount)
		}
		output.Videos = append(output.Videos, out)
	}

	return json.MarshalIndent(output, "", "  ")
}
