package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yildizm/chanview/internal/formatter"
	"github.com/yildizm/chanview/internal/logger"
)

var searchOutputFile string

func newSearchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search channels and print a report",
		Long: `Search YouTube channels through the provider and print the matches.

All arguments are joined into one query.

Examples:
  chanview search golang
  chanview search go programming -o json
  chanview search rust -o csv --output-file channels.csv`,
		Args: cobra.MinimumNArgs(1),
		RunE: runSearch,
	}

	cmd.Flags().StringVar(&searchOutputFile, "output-file", "", "save output to file instead of stdout")

	return cmd
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := strings.TrimSpace(strings.Join(args, " "))
	if query == "" {
		return fmt.Errorf("search query must not be empty")
	}

	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	log := newCLILogger(cfg)

	client, err := newProviderClient(cfg, log)
	if err != nil {
		return err
	}

	results, err := client.SearchChannels(cmd.Context(), query)
	if err != nil {
		return fmt.Errorf("channel search failed: %w", err)
	}
	log.DebugWithFields("search complete", []logger.Field{logger.F("query", query), logger.Count(len(results))})

	return writeReport(cmd.OutOrStdout(), cfg, searchOutputFile, func(f formatter.Formatter) ([]byte, error) {
		return f.FormatSearch(query, results)
	})
}
