package provider

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/yildizm/chanview/internal/common"
)

type fakeAPI struct {
	detail      *common.ChannelDetail
	detailErr   error
	detailDelay time.Duration
	videos      []common.VideoSummary
	videosErr   error
	videosDelay time.Duration
	maxResults  int
}

func (f *fakeAPI) SearchChannels(ctx context.Context, query string) ([]common.ChannelSummary, error) {
	return nil, nil
}

func (f *fakeAPI) GetChannelDetail(ctx context.Context, channelID string) (*common.ChannelDetail, error) {
	time.Sleep(f.detailDelay)
	return f.detail, f.detailErr
}

func (f *fakeAPI) GetChannelVideos(ctx context.Context, channelID string, maxResults int) ([]common.VideoSummary, error) {
	f.maxResults = maxResults
	time.Sleep(f.videosDelay)
	return f.videos, f.videosErr
}

func TestLoadChannel_Success(t *testing.T) {
	api := &fakeAPI{
		detail: &common.ChannelDetail{ChannelID: "UC1", Title: "Go"},
		videos: []common.VideoSummary{{VideoID: "v1"}, {VideoID: "v2"}},
	}

	page, err := LoadChannel(context.Background(), api, "UC1", 20)
	if err != nil {
		t.Fatalf("LoadChannel() error = %v", err)
	}
	if page.Channel.Title != "Go" || len(page.Videos) != 2 {
		t.Errorf("Unexpected page: %+v", page)
	}
	if api.maxResults != 20 {
		t.Errorf("Expected maxResults 20 to be forwarded, got %d", api.maxResults)
	}
}

func TestLoadChannel_PartialFailureDiscardsPage(t *testing.T) {
	detailErr := NewProviderError(opChannel, 404, "Channel not found")
	api := &fakeAPI{
		detailErr: detailErr,
		videos:    []common.VideoSummary{{VideoID: "v1"}},
	}

	page, err := LoadChannel(context.Background(), api, "UC1", 20)
	if page != nil {
		t.Errorf("Expected no page on partial failure, got %+v", page)
	}
	if !errors.Is(err, detailErr) {
		t.Errorf("Expected detail error, got %v", err)
	}
}

func TestLoadChannel_DetailErrorWinsWhenBothFail(t *testing.T) {
	detailErr := NewProviderError(opChannel, 500, "detail failed")
	videosErr := NewProviderError(opVideos, 503, "videos failed")

	// videos fail first; the detail error must still be reported
	api := &fakeAPI{
		detailErr:   detailErr,
		detailDelay: 30 * time.Millisecond,
		videosErr:   videosErr,
	}

	_, err := LoadChannel(context.Background(), api, "UC1", 20)
	if ErrorMessage(err, "") != "detail failed" {
		t.Errorf("Expected detail error to take priority, got %v", err)
	}
}

func TestLoadChannel_VideosError(t *testing.T) {
	videosErr := NewProviderError(opVideos, 500, "videos failed")
	api := &fakeAPI{
		detail:    &common.ChannelDetail{ChannelID: "UC1"},
		videosErr: videosErr,
	}

	_, err := LoadChannel(context.Background(), api, "UC1", 20)
	if ErrorMessage(err, "") != "videos failed" {
		t.Errorf("Expected videos error, got %v", err)
	}
}
