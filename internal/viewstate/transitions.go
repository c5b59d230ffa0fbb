package viewstate

import (
	"strings"

	"github.com/yildizm/chanview/internal/common"
	"github.com/yildizm/chanview/internal/provider"
)

// SetQuery records the search box text
func (s State) SetQuery(query string) State {
	s.Query = query
	return s
}

// SubmitSearch starts a search for the trimmed query. It returns ok=false and
// the unchanged state when the query is blank; no request must be issued then.
func (s State) SubmitSearch() (State, Fetch, bool) {
	query := strings.TrimSpace(s.Query)
	if query == "" {
		return s, Fetch{}, false
	}

	s, token := s.begin()
	return s, Fetch{Kind: FetchSearch, Token: token, Query: query}, true
}

// CommitSearch applies a successful search response
func (s State) CommitSearch(token Token, results []common.ChannelSummary) State {
	if !s.current(token) {
		return s
	}
	s.Results = results
	s.Mode = ModeSearch
	s.Loading = false
	return s
}

// FailSearch applies a failed search response. Previous results are kept.
func (s State) FailSearch(token Token, err error) State {
	return s.fail(token, provider.ErrorMessage(err, SearchErrorFallback))
}

// SelectChannel starts loading a channel's detail and videos
func (s State) SelectChannel(channelID string) (State, Fetch) {
	s, token := s.begin()
	return s, Fetch{Kind: FetchChannel, Token: token, ChannelID: channelID}
}

// CommitChannel applies a successful channel load (detail and videos together)
func (s State) CommitChannel(token Token, detail *common.ChannelDetail, videos []common.VideoSummary) State {
	if !s.current(token) || detail == nil {
		return s
	}
	s.SelectedChannel = detail
	s.ChannelVideos = videos
	s.SelectedVideo = nil
	s.Mode = ModeChannel
	s.Loading = false
	return s
}

// FailChannel applies a failed channel load. Mode and previously loaded data
// are left as they were.
func (s State) FailChannel(token Token, err error) State {
	return s.fail(token, provider.ErrorMessage(err, ChannelErrorFallback))
}

// SelectVideo switches to the video view. It is rejected (ok=false, state
// unchanged) unless the channel view is showing and videoID is one of its videos.
func (s State) SelectVideo(videoID string) (State, bool) {
	if s.Mode != ModeChannel {
		return s, false
	}
	video, ok := common.FindVideo(s.ChannelVideos, videoID)
	if !ok {
		return s, false
	}
	s.SelectedVideo = &video
	s.Mode = ModeVideo
	return s, true
}

// BackToChannel leaves the video view
func (s State) BackToChannel() State {
	if s.Mode != ModeVideo || s.SelectedChannel == nil {
		return s
	}
	s.Mode = ModeChannel
	s.SelectedVideo = nil
	return s
}

// Home returns to the search view, clearing the selections. The query and the
// last results stay.
func (s State) Home() State {
	s.Mode = ModeSearch
	s.SelectedChannel = nil
	s.SelectedVideo = nil
	return s
}

// DismissError hides the error banner
func (s State) DismissError() State {
	s.Error = ""
	return s
}

func (s State) begin() (State, Token) {
	s.latest++
	s.Loading = true
	s.Error = ""
	return s, s.latest
}

func (s State) current(token Token) bool {
	return token != 0 && token == s.latest
}

func (s State) fail(token Token, message string) State {
	if !s.current(token) {
		return s
	}
	s.Error = message
	s.Loading = false
	return s
}
