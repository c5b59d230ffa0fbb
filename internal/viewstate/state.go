// Package viewstate holds the viewer's state machine. A State is a value:
// every transition returns a new State and never mutates the receiver, so
// each version can be inspected and tested on its own.
//
// Fetching transitions (search, channel selection) issue a Token. Their
// results are committed only while that Token is still the latest one issued,
// so a slow response from an earlier transition can never overwrite the
// outcome of a later one.
package viewstate

import (
	"github.com/yildizm/chanview/internal/common"
)

// Mode is the view currently shown
type Mode int

const (
	ModeSearch Mode = iota
	ModeChannel
	ModeVideo
)

func (m Mode) String() string {
	switch m {
	case ModeSearch:
		return "search"
	case ModeChannel:
		return "channel"
	case ModeVideo:
		return "video"
	default:
		return "unknown"
	}
}

// Token identifies one fetching transition
type Token uint64

// FetchKind is the request a fetching transition needs
type FetchKind int

const (
	FetchSearch FetchKind = iota
	FetchChannel
)

func (k FetchKind) String() string {
	switch k {
	case FetchSearch:
		return "search"
	case FetchChannel:
		return "channel"
	default:
		return "unknown"
	}
}

// Fetch describes the request the caller must issue after a fetching transition.
// Its result goes back through the matching Commit*/Fail* call with Token.
type Fetch struct {
	Kind      FetchKind
	Token     Token
	Query     string
	ChannelID string
}

// Error banner fallbacks when the provider gives no detail
const (
	SearchErrorFallback  = "Error searching channels. Please check if YouTube API key is configured."
	ChannelErrorFallback = "Error loading channel details"
)

// State is one version of the viewer state.
//
// Mode == ModeChannel implies SelectedChannel != nil; Mode == ModeVideo implies
// SelectedVideo != nil and that it is one of ChannelVideos.
type State struct {
	Mode            Mode
	Query           string
	Results         []common.ChannelSummary
	SelectedChannel *common.ChannelDetail
	ChannelVideos   []common.VideoSummary
	SelectedVideo   *common.VideoSummary
	Loading         bool
	Error           string

	latest Token
}

// New returns the session start state
func New() State {
	return State{Mode: ModeSearch}
}

// Latest returns the most recently issued fetch token
func (s State) Latest() Token {
	return s.latest
}

// ShowLoading reports whether the loading indicator replaces the content
func (s State) ShowLoading() bool {
	return s.Loading
}

// ShowError reports whether the error banner is displayed
func (s State) ShowError() bool {
	return !s.Loading && s.Error != ""
}

// ShowResults reports whether the search result list is displayed
func (s State) ShowResults() bool {
	return !s.Loading && s.Mode == ModeSearch && len(s.Results) > 0
}

// ShowEmptyPrompt reports whether the search view shows its "start searching" prompt
func (s State) ShowEmptyPrompt() bool {
	return !s.Loading && s.Mode == ModeSearch && len(s.Results) == 0 && s.Error == ""
}

// ShowChannel reports whether the channel view is displayed
func (s State) ShowChannel() bool {
	return !s.Loading && s.Mode == ModeChannel
}

// ShowVideo reports whether the video view is displayed
func (s State) ShowVideo() bool {
	return !s.Loading && s.Mode == ModeVideo
}
