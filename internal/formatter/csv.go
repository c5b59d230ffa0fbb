package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/yildizm/chanview/internal/common"
	"github.com/yildizm/chanview/internal/provider"
)

// csvFormatter formats search hits and videos as CSV rows
type csvFormatter struct{}

// NewCSV creates a new CSV formatter
func NewCSV() Formatter {
	return &csvFormatter{}
}

func (f *csvFormatter) FormatSearch(query string, results []common.ChannelSummary) ([]byte, error) {
	headers := []string{
		"Channel ID",
		"Title",
		"Subscribers",
		"Thumbnail URL",
		"Description",
	}

	records := make([][]string, 0, len(results))
	for i := range results {
		c := &results[i]
		records = append(records, []string{
			c.ChannelID,
			c.Title,
			c.Subscribers(),
			c.ThumbnailURL,
			escapeCSVString(c.Description),
		})
	}

	return writeCSV(headers, records)
}

func (f *csvFormatter) FormatChannel(page *provider.ChannelPage) ([]byte, error) {
	if page == nil || page.Channel == nil {
		return nil, fmt.Errorf("no channel to format")
	}

	headers := []string{
		"Channel ID",
		"Video ID",
		"Title",
		"Published",
		"Duration",
		"Views",
		"Likes",
		"Comments",
		"Watch URL",
	}

	records := make([][]string, 0, len(page.Videos))
	for i := range page.Videos {
		v := &page.Videos[i]
		records = append(records, []string{
			page.Channel.ChannelID,
			v.VideoID,
			v.Title,
			v.PublishedAt,
			Duration(v.Duration),
			v.ViewCount,
			v.LikeCount,
			v.CommentCount,
			v.WatchURL(),
		})
	}

	return writeCSV(headers, records)
}

func writeCSV(headers []string, records [][]string) ([]byte, error) {
	var b bytes.Buffer
	writer := csv.NewWriter(&b)

	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, record := range records {
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return b.Bytes(), nil
}

// escapeCSVString flattens and shortens free text for a single CSV cell
func escapeCSVString(s string) string {
	return Truncate(oneLine(s), 200)
}
