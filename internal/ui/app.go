package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/yildizm/chanview/internal/config"
	"github.com/yildizm/chanview/internal/logger"
	"github.com/yildizm/chanview/internal/provider"
	"github.com/yildizm/chanview/internal/viewstate"
)

// focusArea is the part of the search view receiving keys
type focusArea int

const (
	focusInput focusArea = iota
	focusList
)

// Options configures a Model
type Options struct {
	API       provider.API
	MaxVideos int
	Theme     string
	Logger    *logger.Logger
	// Watcher, when set, feeds live config reloads into the model
	Watcher *config.Watcher
	// OpenURL defaults to OpenURLInBrowser
	OpenURL func(string) error
}

// Model is the interactive channel viewer
type Model struct {
	ctx       context.Context
	api       provider.API
	state     viewstate.State
	maxVideos int
	log       *logger.Logger
	watcher   *config.Watcher
	openURL   func(string) error

	input   textinput.Model
	spinner spinner.Model
	styles  *Styles

	focus    focusArea
	cursor   int
	status   string
	showHelp bool
	quitting bool

	width  int
	height int
}

// NewModel creates the viewer model. ctx bounds every provider request.
func NewModel(ctx context.Context, opts Options) *Model {
	if opts.MaxVideos <= 0 {
		opts.MaxVideos = provider.DefaultMaxVideos
	}
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	if opts.OpenURL == nil {
		opts.OpenURL = OpenURLInBrowser
	}

	theme, _ := ThemeByName(opts.Theme)
	styles := NewStyles(theme)

	input := textinput.New()
	input.Placeholder = "Search YouTube channels..."
	input.Prompt = "🔍 "
	input.CharLimit = 200
	input.Width = 50
	input.Focus()

	spin := spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(styles.Spinner))

	return &Model{
		ctx:       ctx,
		api:       opts.API,
		state:     viewstate.New(),
		maxVideos: opts.MaxVideos,
		log:       opts.Logger.WithComponent("ui"),
		watcher:   opts.Watcher,
		openURL:   opts.OpenURL,
		input:     input,
		spinner:   spin,
		styles:    styles,
		focus:     focusInput,
		width:     80,
		height:    24,
	}
}

// State returns the current view state
func (m *Model) State() viewstate.State {
	return m.state
}

// Init starts the cursor blink, the spinner and the config watcher
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.spinner.Tick,
		waitForConfig(m.watcher),
	)
}

// Update handles messages and navigation
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowResize(msg)
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case searchResultMsg:
		return m.handleSearchResult(msg)
	case channelLoadedMsg:
		return m.handleChannelLoaded(msg)
	case configReloadedMsg:
		return m.handleConfigReloaded(msg)
	case configErrorMsg:
		m.status = "Config reload failed: " + msg.err.Error()
		return m, waitForConfig(m.watcher)
	case urlOpenedMsg:
		return m.handleURLOpened(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleWindowResize handles window resize events
func (m *Model) handleWindowResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.input.Width = max(20, min(msg.Width-10, 80))
	return m, nil
}

// handleKeyPress routes keyboard input
func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m.handleQuit()
	}

	if m.state.Mode == viewstate.ModeSearch && m.focus == focusInput {
		return m.handleInputKey(msg)
	}

	switch msg.String() {
	case "q":
		return m.handleQuit()
	case "?":
		m.showHelp = !m.showHelp
		return m, nil
	case "esc", "backspace":
		return m.handleBack()
	case "H", "home":
		return m.handleHome()
	case "/":
		return m.handleFocusSearch()
	case "x":
		m.state = m.state.DismissError()
		return m, nil
	case "up", "k":
		return m.handleMoveUp()
	case "down", "j":
		return m.handleMoveDown()
	case "enter", " ":
		return m.handleSelection()
	case "o":
		return m.handleOpen()
	}
	return m, nil
}

// handleInputKey handles keys while the search box has focus
func (m *Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		return m.handleSubmit()
	case tea.KeyTab, tea.KeyDown:
		if m.state.ShowResults() {
			m.focus = focusList
			m.input.Blur()
		}
		return m, nil
	case tea.KeyEsc:
		m.state = m.state.DismissError()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.state = m.state.SetQuery(m.input.Value())
	return m, cmd
}

// handleSubmit starts a search for the current query
func (m *Model) handleSubmit() (tea.Model, tea.Cmd) {
	next, fetch, ok := m.state.SubmitSearch()
	if !ok {
		return m, nil
	}
	m.state = next
	m.status = ""
	m.log.Debug("search %q (token %d)", fetch.Query, fetch.Token)
	return m, searchCommand(m.ctx, m.api, fetch)
}

// handleSelection handles enter on the focused list
func (m *Model) handleSelection() (tea.Model, tea.Cmd) {
	if m.state.Loading {
		return m, nil
	}

	switch m.state.Mode {
	case viewstate.ModeSearch:
		if m.cursor >= len(m.state.Results) {
			return m, nil
		}
		next, fetch := m.state.SelectChannel(m.state.Results[m.cursor].ChannelID)
		m.state = next
		m.status = ""
		m.log.Debug("load channel %s (token %d)", fetch.ChannelID, fetch.Token)
		return m, loadChannelCommand(m.ctx, m.api, fetch, m.maxVideos)

	case viewstate.ModeChannel:
		if m.cursor >= len(m.state.ChannelVideos) {
			return m, nil
		}
		if next, ok := m.state.SelectVideo(m.state.ChannelVideos[m.cursor].VideoID); ok {
			m.state = next
		}
	}
	return m, nil
}

// handleBack steps back one view
func (m *Model) handleBack() (tea.Model, tea.Cmd) {
	switch m.state.Mode {
	case viewstate.ModeVideo:
		m.cursor = m.videoIndex()
		m.state = m.state.BackToChannel()
	case viewstate.ModeChannel:
		return m.handleHome()
	case viewstate.ModeSearch:
		return m.handleFocusSearch()
	}
	return m, nil
}

// handleHome returns to the search view with the previous results
func (m *Model) handleHome() (tea.Model, tea.Cmd) {
	m.state = m.state.Home()
	m.cursor = 0
	m.status = ""
	if m.state.ShowResults() {
		m.focus = focusList
		m.input.Blur()
		return m, nil
	}
	return m.handleFocusSearch()
}

// handleFocusSearch moves focus to the search box
func (m *Model) handleFocusSearch() (tea.Model, tea.Cmd) {
	if m.state.Mode != viewstate.ModeSearch {
		m.state = m.state.Home()
		m.cursor = 0
	}
	m.focus = focusInput
	return m, m.input.Focus()
}

// handleMoveUp handles up movement
func (m *Model) handleMoveUp() (tea.Model, tea.Cmd) {
	if m.cursor > 0 {
		m.cursor--
	} else if m.state.Mode == viewstate.ModeSearch {
		return m.handleFocusSearch()
	}
	return m, nil
}

// handleMoveDown handles down movement
func (m *Model) handleMoveDown() (tea.Model, tea.Cmd) {
	if m.cursor < m.listLen()-1 {
		m.cursor++
	}
	return m, nil
}

// handleOpen opens the selected video's watch page
func (m *Model) handleOpen() (tea.Model, tea.Cmd) {
	var url string
	switch m.state.Mode {
	case viewstate.ModeVideo:
		url = m.state.SelectedVideo.WatchURL()
	case viewstate.ModeChannel:
		if m.cursor < len(m.state.ChannelVideos) {
			url = m.state.ChannelVideos[m.cursor].WatchURL()
		}
	}
	if url == "" {
		return m, nil
	}
	return m, openURLCommand(m.openURL, url)
}

// handleQuit handles quit commands
func (m *Model) handleQuit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

// handleSearchResult commits or fails the search the message belongs to
func (m *Model) handleSearchResult(msg searchResultMsg) (tea.Model, tea.Cmd) {
	if msg.token != m.state.Latest() {
		m.log.Debug("dropping stale search result (token %d, latest %d)", msg.token, m.state.Latest())
		return m, nil
	}

	if msg.err != nil {
		m.log.Warn("search failed: %v", msg.err)
		m.state = m.state.FailSearch(msg.token, msg.err)
		return m, nil
	}

	m.state = m.state.CommitSearch(msg.token, msg.results)
	m.cursor = 0
	m.log.InfoWithFields("search committed", []logger.Field{logger.Count(len(msg.results))})
	if len(msg.results) > 0 {
		m.focus = focusList
		m.input.Blur()
	}
	return m, nil
}

// handleChannelLoaded commits or fails the channel load the message belongs to
func (m *Model) handleChannelLoaded(msg channelLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.token != m.state.Latest() {
		m.log.Debug("dropping stale channel load (token %d, latest %d)", msg.token, m.state.Latest())
		return m, nil
	}

	if msg.err != nil {
		m.log.Warn("channel load failed: %v", msg.err)
		m.state = m.state.FailChannel(msg.token, msg.err)
		return m, nil
	}

	m.state = m.state.CommitChannel(msg.token, msg.page.Channel, msg.page.Videos)
	m.cursor = 0
	m.focus = focusList
	m.input.Blur()
	return m, nil
}

// handleConfigReloaded applies the live-reloadable settings
func (m *Model) handleConfigReloaded(msg configReloadedMsg) (tea.Model, tea.Cmd) {
	cfg := msg.config
	m.maxVideos = cfg.Browse.MaxVideos

	theme, ok := ThemeByName(cfg.Browse.Theme)
	if !ok {
		m.log.Warn("unknown theme %q, using %s", cfg.Browse.Theme, theme.Name)
	}
	m.styles = NewStyles(theme)
	m.spinner.Style = m.styles.Spinner

	m.status = fmt.Sprintf("Config reloaded (theme %s, %d videos per channel)", theme.Name, m.maxVideos)
	return m, waitForConfig(m.watcher)
}

// handleURLOpened reports the browser launch outcome
func (m *Model) handleURLOpened(msg urlOpenedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.log.Warn("open %s: %v", msg.url, msg.err)
		m.status = "Could not open browser: " + msg.err.Error()
		return m, nil
	}
	m.status = "Opened " + msg.url
	return m, nil
}

func (m *Model) listLen() int {
	switch m.state.Mode {
	case viewstate.ModeSearch:
		return len(m.state.Results)
	case viewstate.ModeChannel:
		return len(m.state.ChannelVideos)
	default:
		return 0
	}
}

// videoIndex returns the list position of the selected video, or 0
func (m *Model) videoIndex() int {
	if m.state.SelectedVideo == nil {
		return 0
	}
	for i, v := range m.state.ChannelVideos {
		if v.VideoID == m.state.SelectedVideo.VideoID {
			return i
		}
	}
	return 0
}

// Run runs the interactive viewer until the user quits or ctx is done
func Run(ctx context.Context, opts Options) error {
	model := NewModel(ctx, opts)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
