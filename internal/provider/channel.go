package provider

import (
	"context"

	"github.com/yildizm/chanview/internal/common"
	"golang.org/x/sync/errgroup"
)

// ChannelPage is everything the channel view shows
type ChannelPage struct {
	Channel *common.ChannelDetail
	Videos  []common.VideoSummary
}

// LoadChannel fetches the channel detail and its recent videos concurrently and
// returns both, or an error if either failed. When both fail the detail error is
// returned.
func LoadChannel(ctx context.Context, api API, channelID string, maxResults int) (*ChannelPage, error) {
	var (
		g         errgroup.Group
		detail    *common.ChannelDetail
		videos    []common.VideoSummary
		detailErr error
		videosErr error
	)

	g.Go(func() error {
		detail, detailErr = api.GetChannelDetail(ctx, channelID)
		return detailErr
	})
	g.Go(func() error {
		videos, videosErr = api.GetChannelVideos(ctx, channelID, maxResults)
		return videosErr
	})

	if err := g.Wait(); err != nil {
		if detailErr != nil {
			return nil, detailErr
		}
		return nil, videosErr
	}

	return &ChannelPage{Channel: detail, Videos: videos}, nil
}
