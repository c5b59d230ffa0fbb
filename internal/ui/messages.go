package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/yildizm/chanview/internal/common"
	"github.com/yildizm/chanview/internal/config"
	"github.com/yildizm/chanview/internal/provider"
	"github.com/yildizm/chanview/internal/viewstate"
)

// searchResultMsg carries the outcome of a channel search
type searchResultMsg struct {
	token   viewstate.Token
	results []common.ChannelSummary
	err     error
}

// channelLoadedMsg carries the outcome of a joined channel load
type channelLoadedMsg struct {
	token viewstate.Token
	page  *provider.ChannelPage
	err   error
}

// configReloadedMsg carries a configuration reloaded from disk
type configReloadedMsg struct {
	config *config.Config
}

// configErrorMsg reports a config file that failed to reload
type configErrorMsg struct {
	err error
}

// urlOpenedMsg reports the outcome of opening a URL in the browser
type urlOpenedMsg struct {
	url string
	err error
}

// searchCommand creates a tea command that runs the search described by fetch
func searchCommand(ctx context.Context, api provider.API, fetch viewstate.Fetch) tea.Cmd {
	return func() tea.Msg {
		results, err := api.SearchChannels(ctx, fetch.Query)
		return searchResultMsg{token: fetch.Token, results: results, err: err}
	}
}

// loadChannelCommand creates a tea command that loads the channel described by fetch
func loadChannelCommand(ctx context.Context, api provider.API, fetch viewstate.Fetch, maxVideos int) tea.Cmd {
	return func() tea.Msg {
		page, err := provider.LoadChannel(ctx, api, fetch.ChannelID, maxVideos)
		return channelLoadedMsg{token: fetch.Token, page: page, err: err}
	}
}

// waitForConfig creates a tea command that blocks until the watcher reports
// a reload. It yields nil once the watcher is closed.
func waitForConfig(w *config.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case cfg, ok := <-w.Changes():
			if !ok {
				return nil
			}
			return configReloadedMsg{config: cfg}
		case err, ok := <-w.Errors():
			if !ok {
				return nil
			}
			return configErrorMsg{err: err}
		}
	}
}

// openURLCommand creates a tea command that opens url with open
func openURLCommand(open func(string) error, url string) tea.Cmd {
	return func() tea.Msg {
		return urlOpenedMsg{url: url, err: open(url)}
	}
}
