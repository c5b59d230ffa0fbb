package common

import "testing"

func strPtr(s string) *string { return &s }

func TestChannelSummary_HasSubscriberCount(t *testing.T) {
	tests := []struct {
		name  string
		count *string
		want  bool
	}{
		{"absent", nil, false},
		{"hidden sentinel", strPtr(SubscribersHidden), false},
		{"unavailable sentinel", strPtr(SubscribersUnavailable), false},
		{"numeric", strPtr("1200"), true},
		{"numeric with spaces", strPtr(" 42 "), true},
		{"empty", strPtr(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := ChannelSummary{ChannelID: "UC1", SubscriberCount: tt.count}
			if got := c.HasSubscriberCount(); got != tt.want {
				t.Errorf("HasSubscriberCount() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	if err := (&ChannelSummary{Title: "no id"}).Validate(); err == nil {
		t.Error("Expected error for summary without channel_id")
	}
	if err := (&ChannelDetail{ChannelID: " "}).Validate(); err == nil {
		t.Error("Expected error for detail with blank channel_id")
	}
	if err := (&VideoSummary{VideoID: "abc"}).Validate(); err != nil {
		t.Errorf("Unexpected error for valid video: %v", err)
	}
}

func TestVideoURLs(t *testing.T) {
	v := VideoSummary{VideoID: "dQw4w9WgXcQ"}
	if got := v.WatchURL(); got != "https://www.youtube.com/watch?v=dQw4w9WgXcQ" {
		t.Errorf("WatchURL() = %s", got)
	}
	if got := v.EmbedURL(); got != "https://www.youtube.com/embed/dQw4w9WgXcQ" {
		t.Errorf("EmbedURL() = %s", got)
	}
}

func TestFindVideo(t *testing.T) {
	videos := []VideoSummary{{VideoID: "a"}, {VideoID: "b", Title: "Second"}}

	v, ok := FindVideo(videos, "b")
	if !ok || v.Title != "Second" {
		t.Errorf("FindVideo(b) = %+v, %v", v, ok)
	}
	if _, ok := FindVideo(videos, "missing"); ok {
		t.Error("FindVideo should not find a missing id")
	}
	if _, ok := FindVideo(nil, "a"); ok {
		t.Error("FindVideo on nil slice should not find anything")
	}
}
