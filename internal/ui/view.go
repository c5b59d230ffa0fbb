package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/yildizm/chanview/internal/common"
	"github.com/yildizm/chanview/internal/emoji"
	"github.com/yildizm/chanview/internal/formatter"
	"github.com/yildizm/chanview/internal/viewstate"
)

const (
	// EmptyPrompt is shown in the search view before anything was found
	EmptyPrompt = "Search for YouTube channels to get started"

	channelCardHeight = 3
	videoRowHeight    = 2
	chromeHeight      = 10
)

// View renders the current state
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{m.renderHeader()}

	if m.state.Mode == viewstate.ModeSearch {
		sections = append(sections, m.renderSearchBox())
	}

	if m.state.ShowError() {
		sections = append(sections, m.styles.ErrorBanner.Render(
			emoji.GetEmoji("error")+" "+m.state.Error+m.styles.Muted.Render("  (x to dismiss)")))
	}

	switch {
	case m.showHelp:
		sections = append(sections, m.renderHelp())
	case m.state.ShowLoading():
		sections = append(sections, m.spinner.View()+" "+m.styles.Muted.Render("Loading..."))
	case m.state.ShowEmptyPrompt():
		sections = append(sections, m.styles.Muted.Render(emoji.GetEmoji("search")+" "+EmptyPrompt))
	case m.state.ShowResults():
		sections = append(sections, m.renderResults())
	case m.state.ShowChannel():
		sections = append(sections, m.renderChannel())
	case m.state.ShowVideo():
		sections = append(sections, m.renderVideo())
	}

	if m.status != "" {
		sections = append(sections, m.styles.Success.Render(m.status))
	}
	sections = append(sections, m.renderFooter())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) renderHeader() string {
	title := m.styles.Title.Render(emoji.GetEmoji("play") + " chanview")

	crumbs := []string{"Search"}
	if m.state.SelectedChannel != nil && m.state.Mode != viewstate.ModeSearch {
		crumbs = append(crumbs, m.state.SelectedChannel.Title)
	}
	if m.state.Mode == viewstate.ModeVideo && m.state.SelectedVideo != nil {
		crumbs = append(crumbs, formatter.Truncate(m.state.SelectedVideo.Title, 40))
	}

	return title + "  " + m.styles.Muted.Render(strings.Join(crumbs, " › ")) + "\n"
}

func (m *Model) renderSearchBox() string {
	style := m.styles.SearchBox
	if m.focus == focusInput {
		style = m.styles.SearchBoxFocused
	}
	return style.Render(m.input.View())
}

func (m *Model) renderResults() string {
	results := m.state.Results
	start, end := m.window(len(results), channelCardHeight)

	lines := []string{m.styles.Header.Render(fmt.Sprintf("%d channel(s)", len(results)))}
	for i := start; i < end; i++ {
		lines = append(lines, m.renderChannelCard(&results[i], i == m.cursor && m.focus == focusList))
	}
	if end < len(results) {
		lines = append(lines, m.styles.Muted.Render(fmt.Sprintf("  … %d more", len(results)-end)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *Model) renderChannelCard(c *common.ChannelSummary, selected bool) string {
	prefix := "  "
	style := m.styles.ListItem
	if selected {
		prefix = "▶ "
		style = m.styles.ListSelected
	}

	lines := []string{style.Render(prefix + emoji.GetEmoji("channel") + " " + c.Title)}
	if subs, ok := formatter.Subscribers(c); ok {
		lines = append(lines, m.styles.Accent.Render("    "+subs))
	}
	if desc := strings.TrimSpace(c.Description); desc != "" {
		lines = append(lines, m.styles.Muted.Render("    "+formatter.Truncate(flatten(desc), m.textWidth())))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderChannel() string {
	ch := m.state.SelectedChannel

	name := m.styles.Title.Render(ch.Title)
	if handle := ch.Handle(); handle != "" {
		name += " " + m.styles.Muted.Render(handle)
	}

	stats := fmt.Sprintf("%s %s subscribers  •  %s %s videos  •  %s %s views",
		emoji.GetEmoji("subscribers"), formatter.Count(ch.SubscriberCount),
		emoji.GetEmoji("video"), formatter.Count(ch.VideoCount),
		emoji.GetEmoji("views"), formatter.Count(ch.ViewCount))
	if ch.PublishedAt != "" {
		stats += fmt.Sprintf("  •  %s since %s", emoji.GetEmoji("calendar"), formatter.Date(ch.PublishedAt))
	}

	head := []string{name, m.styles.Body.Render(stats)}
	if desc := strings.TrimSpace(ch.Description); desc != "" {
		head = append(head, m.styles.Muted.Render(formatter.Truncate(flatten(desc), m.textWidth()*2)))
	}

	lines := []string{
		m.styles.Box.Render(lipgloss.JoinVertical(lipgloss.Left, head...)),
		m.styles.Header.Render(fmt.Sprintf("Recent Videos (%d)", len(m.state.ChannelVideos))),
	}

	if len(m.state.ChannelVideos) == 0 {
		lines = append(lines, m.styles.Muted.Render("  No videos found"))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	videos := m.state.ChannelVideos
	start, end := m.window(len(videos), videoRowHeight)
	for i := start; i < end; i++ {
		lines = append(lines, m.renderVideoRow(&videos[i], i == m.cursor))
	}
	if end < len(videos) {
		lines = append(lines, m.styles.Muted.Render(fmt.Sprintf("  … %d more", len(videos)-end)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *Model) renderVideoRow(v *common.VideoSummary, selected bool) string {
	prefix := "  "
	style := m.styles.ListItem
	if selected {
		prefix = "▶ "
		style = m.styles.ListSelected
	}

	title := style.Render(fmt.Sprintf("%s%s [%s]", prefix, formatter.Truncate(v.Title, m.textWidth()), formatter.Duration(v.Duration)))
	meta := m.styles.Muted.Render(fmt.Sprintf("    %s views  •  %s likes  •  %s",
		formatter.Count(v.ViewCount), formatter.Count(v.LikeCount), formatter.Date(v.PublishedAt)))
	return title + "\n" + meta
}

func (m *Model) renderVideo() string {
	v := m.state.SelectedVideo

	stats := []string{
		fmt.Sprintf("%s %s", emoji.GetEmoji("clock"), formatter.Duration(v.Duration)),
		fmt.Sprintf("%s %s views", emoji.GetEmoji("views"), formatter.Count(v.ViewCount)),
		fmt.Sprintf("%s %s likes", emoji.GetEmoji("likes"), formatter.Count(v.LikeCount)),
	}
	if v.CommentCount != "" {
		stats = append(stats, fmt.Sprintf("%s %s comments", emoji.GetEmoji("comments"), formatter.Count(v.CommentCount)))
	}
	stats = append(stats, fmt.Sprintf("%s %s", emoji.GetEmoji("calendar"), formatter.Date(v.PublishedAt)))

	lines := []string{
		m.styles.Title.Render(v.Title),
		m.styles.Body.Render(strings.Join(stats, "  •  ")),
		"",
		m.styles.Accent.Render(emoji.GetEmoji("play") + " " + v.EmbedURL()),
		m.styles.Accent.Render(emoji.GetEmoji("link") + " " + v.WatchURL()),
	}
	if desc := strings.TrimSpace(v.Description); desc != "" {
		lines = append(lines, "", m.styles.Muted.Render(lipgloss.NewStyle().Width(m.textWidth()).Render(desc)))
	}

	return m.styles.Box.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m *Model) renderHelp() string {
	rows := [][2]string{
		{"enter", "search / open the selected channel or video"},
		{"tab, ↓", "move from the search box to the results"},
		{"↑↓, j/k", "move in lists"},
		{"esc", "back (video → channel → search)"},
		{"H", "home: search view with the last results"},
		{"/", "focus the search box"},
		{"o", "open the video in the browser"},
		{"x", "dismiss the error"},
		{"?", "toggle this help"},
		{"q, ctrl+c", "quit"},
	}

	lines := []string{m.styles.Header.Render(emoji.GetEmoji("help") + " Keys")}
	for _, r := range rows {
		lines = append(lines, fmt.Sprintf("  %-10s %s", m.styles.Accent.Render(r[0]), m.styles.Muted.Render(r[1])))
	}
	return m.styles.Box.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m *Model) renderFooter() string {
	var hint string
	switch {
	case m.state.Mode == viewstate.ModeSearch && m.focus == focusInput:
		hint = "enter search • tab results • ctrl+c quit"
	case m.state.Mode == viewstate.ModeSearch:
		hint = "↑↓ move • enter open • / search • ? help • q quit"
	case m.state.Mode == viewstate.ModeChannel:
		hint = "↑↓ move • enter play • o browser • esc back • ? help • q quit"
	default:
		hint = "o browser • esc back • H home • ? help • q quit"
	}
	return "\n" + m.styles.Muted.Render(hint)
}

// window returns the slice of a list that fits on screen around the cursor
func (m *Model) window(n, rowHeight int) (int, int) {
	visible := max(1, (m.height-chromeHeight)/rowHeight)
	start := 0
	if m.cursor >= visible {
		start = m.cursor - visible + 1
	}
	return start, min(n, start+visible)
}

func (m *Model) textWidth() int {
	return max(20, m.width-8)
}

func flatten(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
