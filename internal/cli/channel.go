package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/yildizm/chanview/internal/formatter"
	"github.com/yildizm/chanview/internal/logger"
	"github.com/yildizm/chanview/internal/provider"
)

var (
	channelMaxVideos  int
	channelOutputFile string
)

func newChannelCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "channel <channel-id>",
		Short: "Print a channel's statistics and recent videos",
		Long: `Load a channel's detail and its most recent videos and print a report.

The detail and the video list are fetched concurrently; the command fails if
either request fails.

Examples:
  chanview channel UC_x5XG1OV2P6uZZ5FSM9Ttw
  chanview channel UC_x5XG1OV2P6uZZ5FSM9Ttw --max-videos 5 -o markdown`,
		Args: cobra.ExactArgs(1),
		RunE: runChannel,
	}

	cmd.Flags().IntVar(&channelMaxVideos, "max-videos", 0, "number of recent videos (default: browse.max_videos)")
	cmd.Flags().StringVar(&channelOutputFile, "output-file", "", "save output to file instead of stdout")

	return cmd
}

func runChannel(cmd *cobra.Command, args []string) error {
	channelID := strings.TrimSpace(args[0])
	if channelID == "" {
		return fmt.Errorf("channel id must not be empty")
	}

	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	if channelMaxVideos != 0 {
		cfg.Browse.MaxVideos = channelMaxVideos
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid --max-videos: %w", err)
		}
	}
	log := newCLILogger(cfg)

	client, err := newProviderClient(cfg, log)
	if err != nil {
		return err
	}

	start := time.Now()
	page, err := provider.LoadChannel(cmd.Context(), client, channelID, cfg.Browse.MaxVideos)
	if err != nil {
		return fmt.Errorf("failed to load channel %s: %w", channelID, err)
	}
	log.DebugWithFields("channel loaded", []logger.Field{
		logger.F("channel_id", channelID),
		logger.Count(len(page.Videos)),
		logger.Duration(time.Since(start)),
	})

	return writeReport(cmd.OutOrStdout(), cfg, channelOutputFile, func(f formatter.Formatter) ([]byte, error) {
		return f.FormatChannel(page)
	})
}
