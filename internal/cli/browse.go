package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/yildizm/chanview/internal/config"
	"github.com/yildizm/chanview/internal/logger"
	"github.com/yildizm/chanview/internal/provider"
	"github.com/yildizm/chanview/internal/ui"
)

func newBrowseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse channels interactively (default)",
		Long: `Start the interactive channel browser.

Type a query and press enter to search channels, open a channel to see its
statistics and recent videos, and open a video to get its watch and embed
links. Theme and videos per channel are reloaded live when the config file
changes.

Examples:
  chanview
  chanview browse --backend http://localhost:8001
  chanview browse --config ./dev.yaml`,
		Args: cobra.NoArgs,
		RunE: runBrowse,
	}
}

func runBrowse(cmd *cobra.Command, args []string) error {
	cfg, loader, err := loadConfig()
	if err != nil {
		return err
	}

	// the TUI owns the terminal, so logs go to a file
	logFile, err := logger.OpenFile(cfg.LogFilePath())
	if err != nil {
		return err
	}
	defer func() {
		_ = logFile.Close()
	}()
	log := logger.NewWithWriter("chanview", cfg, logFile)

	client, err := newProviderClient(cfg, log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	watcher, err := config.NewWatcher(loader, cfgFile, log)
	if err != nil {
		log.Debug("config reload disabled: %v", err)
		watcher = nil
	} else {
		defer func() {
			if closeErr := watcher.Close(); closeErr != nil {
				log.Warn("failed to close config watcher: %v", closeErr)
			}
		}()
		log.Info("watching %s for changes", watcher.Path())
	}

	log.Info("browsing via %s", cfg.BaseURL())
	if err := ui.Run(ctx, ui.Options{
		API:       client,
		MaxVideos: cfg.Browse.MaxVideos,
		Theme:     cfg.Browse.Theme,
		Logger:    log,
		Watcher:   watcher,
	}); err != nil {
		return fmt.Errorf("interactive browser failed: %w", err)
	}
	return nil
}

// newProviderClient creates the provider client described by cfg
func newProviderClient(cfg *config.Config, log *logger.Logger) (*provider.Client, error) {
	client, err := provider.New(&provider.Config{
		BaseURL:   cfg.BaseURL(),
		Timeout:   cfg.Provider.Timeout,
		RateLimit: cfg.Provider.RateLimit,
		Burst:     cfg.Provider.Burst,
		UserAgent: "chanview",
	}, provider.WithLogger(log))
	if err != nil {
		return nil, fmt.Errorf("failed to create provider client: %w", err)
	}
	return client, nil
}
