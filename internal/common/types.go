package common

import (
	"fmt"
	"strconv"
	"strings"
)

// Subscriber count sentinels reported by the provider instead of a number
const (
	SubscribersHidden      = "Hidden"
	SubscribersUnavailable = "N/A"
)

const (
	watchURLPrefix = "https://www.youtube.com/watch?v="
	embedURLPrefix = "https://www.youtube.com/embed/"
)

// ChannelSummary is a single channel search hit
type ChannelSummary struct {
	ChannelID       string  `json:"channel_id"`
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	ThumbnailURL    string  `json:"thumbnail_url"`
	SubscriberCount *string `json:"subscriber_count,omitempty"`
}

// HasSubscriberCount reports whether the summary carries a numeric subscriber count.
// Absent values and sentinels such as "Hidden" are not numeric.
func (c *ChannelSummary) HasSubscriberCount() bool {
	return c.SubscriberCount != nil && isNumeric(*c.SubscriberCount)
}

// Subscribers returns the raw subscriber count or an empty string
func (c *ChannelSummary) Subscribers() string {
	if c.SubscriberCount == nil {
		return ""
	}
	return *c.SubscriberCount
}

// Validate checks the fields the viewer relies on
func (c *ChannelSummary) Validate() error {
	if strings.TrimSpace(c.ChannelID) == "" {
		return fmt.Errorf("channel summary %q has no channel_id", c.Title)
	}
	return nil
}

// ChannelDetail is the full record of a selected channel
type ChannelDetail struct {
	ChannelID       string  `json:"channel_id"`
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	CustomURL       *string `json:"custom_url,omitempty"`
	ThumbnailURL    string  `json:"thumbnail_url"`
	BannerURL       *string `json:"banner_url,omitempty"`
	SubscriberCount string  `json:"subscriber_count"`
	VideoCount      string  `json:"video_count"`
	ViewCount       string  `json:"view_count"`
	PublishedAt     string  `json:"published_at,omitempty"`
}

// Handle returns the custom URL (e.g. "@name") or an empty string
func (c *ChannelDetail) Handle() string {
	if c.CustomURL == nil {
		return ""
	}
	return *c.CustomURL
}

// Banner returns the banner image URL or an empty string
func (c *ChannelDetail) Banner() string {
	if c.BannerURL == nil {
		return ""
	}
	return *c.BannerURL
}

// Validate checks the fields the viewer relies on
func (c *ChannelDetail) Validate() error {
	if strings.TrimSpace(c.ChannelID) == "" {
		return fmt.Errorf("channel detail %q has no channel_id", c.Title)
	}
	return nil
}

// VideoSummary is one entry of a channel's recent uploads
type VideoSummary struct {
	VideoID      string `json:"video_id"`
	Title        string `json:"title"`
	Description  string `json:"description,omitempty"`
	ThumbnailURL string `json:"thumbnail_url"`
	Duration     string `json:"duration"`
	ViewCount    string `json:"view_count"`
	LikeCount    string `json:"like_count"`
	CommentCount string `json:"comment_count,omitempty"`
	PublishedAt  string `json:"published_at"`
}

// WatchURL returns the youtube.com watch page for the video
func (v *VideoSummary) WatchURL() string {
	return watchURLPrefix + v.VideoID
}

// EmbedURL returns the embeddable player URL for the video
func (v *VideoSummary) EmbedURL() string {
	return embedURLPrefix + v.VideoID
}

// Validate checks the fields the viewer relies on
func (v *VideoSummary) Validate() error {
	if strings.TrimSpace(v.VideoID) == "" {
		return fmt.Errorf("video %q has no video_id", v.Title)
	}
	return nil
}

// FindVideo returns the video with the given id, if present
func FindVideo(videos []VideoSummary, videoID string) (VideoSummary, bool) {
	for _, v := range videos {
		if v.VideoID == videoID {
			return v, true
		}
	}
	return VideoSummary{}, false
}

func isNumeric(s string) bool {
	_, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	return err == nil
}
