// Package viewer is a terminal timeline viewer. It renders a document as a
// scrollable list of items with their labels, lanes, markers and arrows,
// and reloads the document when the file changes.
package viewer

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	mdwerror "github.com/msto63/chronos/foundation/core/error"
	"github.com/msto63/chronos/internal/model"
	"github.com/msto63/chronos/internal/timeline"
)

// KindFilter tracks which item kinds are shown
type KindFilter struct {
	Events  bool
	Periods bool
	Points  bool
}

func allKinds() KindFilter {
	return KindFilter{Events: true, Periods: true, Points: true}
}

func (f KindFilter) allows(k model.Kind) bool {
	switch k {
	case model.KindBackground:
		return f.Periods
	case model.KindPoint:
		return f.Points
	default:
		return f.Events
	}
}

// Model is the Bubbletea model of the viewer
type Model struct {
	// State
	width   int
	height  int
	ready   bool
	loading bool
	paused  bool
	err     error

	// Components
	viewport viewport.Model
	spinner  spinner.Model

	// Document state
	timeline     *timeline.Timeline
	visible      []timeline.Entry
	filter       KindFilter
	descriptions bool
	modTime      time.Time

	// Configuration
	watch         *fileWatcher
	path          string
	service       *timeline.Service
	watchInterval time.Duration
}

// Config holds viewer configuration
type Config struct {
	Path    string
	Service *timeline.Service

	// WatchInterval is how often the file is polled for changes when
	// file system notifications are unavailable
	WatchInterval time.Duration
}

// New creates a new viewer model
func New(cfg Config) Model {
	if cfg.WatchInterval <= 0 {
		cfg.WatchInterval = 2 * time.Second
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(ColorPrimary)

	m := Model{
		spinner:       sp,
		loading:       true,
		filter:        allKinds(),
		descriptions:  true,
		path:          cfg.Path,
		service:       cfg.Service,
		watchInterval: cfg.WatchInterval,
	}
	if fw, err := newFileWatcher(cfg.Path); err == nil {
		m.watch = fw
	}
	return m
}

// Close releases the file watcher
func (m Model) Close() error {
	if m.watch == nil {
		return nil
	}
	return m.watch.Close()
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.loadTimeline,
		m.watchCmd(),
	)
}

// watchCmd waits for the next file change, or polls without a watcher
func (m Model) watchCmd() tea.Cmd {
	if m.watch != nil {
		return m.watch.wait
	}
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.watchInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 4 // Title + filter bar
		footerHeight := 4 // Status bar + help
		viewportHeight := msg.Height - headerHeight - footerHeight
		if viewportHeight < 1 {
			viewportHeight = 1
		}

		if !m.ready {
			m.viewport = viewport.New(msg.Width-4, viewportHeight)
			m.viewport.YPosition = headerHeight
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 4
			m.viewport.Height = viewportHeight
		}
		m.updateViewportContent()

	case spinner.TickMsg:
		if m.loading {
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case timelineLoadedMsg:
		m.loading = false
		m.modTime = msg.modTime
		if msg.err != nil {
			m.err = msg.err
			m.timeline = nil
		} else {
			m.err = nil
			m.timeline = msg.timeline
		}
		m.applyFilters()
		m.updateViewportContent()

	case tickMsg:
		if !m.paused {
			cmds = append(cmds, m.checkFile)
		}
		cmds = append(cmds, m.tick())

	case fileChangedMsg:
		if !m.paused {
			m.loading = true
			cmds = append(cmds, m.loadTimeline)
		}
		cmds = append(cmds, m.watchCmd())

	case watchErrMsg:
		// fall back to polling
		if m.watch != nil {
			m.watch.Close()
			m.watch = nil
		}
		cmds = append(cmds, m.tick())

	case fileCheckedMsg:
		if msg.err == nil && !msg.modTime.Equal(m.modTime) {
			m.loading = true
			cmds = append(cmds, m.loadTimeline)
		}
	}

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// handleKeyPress handles keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit

	case tea.KeyRunes:
		switch string(msg.Runes) {
		case "q":
			return m, tea.Quit

		// Kind filters
		case "1":
			m.filter.Events = !m.filter.Events
		case "2":
			m.filter.Periods = !m.filter.Periods
		case "3":
			m.filter.Points = !m.filter.Points
		case "0":
			m.filter = allKinds()

		case "d":
			m.descriptions = !m.descriptions

		// Pause/Resume watching
		case "p", " ":
			m.paused = !m.paused
			if !m.paused {
				m.loading = true
				return m, m.loadTimeline
			}
			return m, nil

		case "r":
			m.loading = true
			return m, m.loadTimeline

		case "g":
			m.viewport.GotoTop()
			return m, nil
		case "G":
			m.viewport.GotoBottom()
			return m, nil

		default:
			return m, nil
		}
		m.applyFilters()
		m.updateViewportContent()
		return m, nil

	case tea.KeyPgUp:
		m.viewport.ViewUp()
		return m, nil

	case tea.KeyPgDown:
		m.viewport.ViewDown()
		return m, nil

	case tea.KeyUp:
		m.viewport.LineUp(1)
		return m, nil

	case tea.KeyDown:
		m.viewport.LineDown(1)
		return m, nil
	}

	return m, nil
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Loading timeline..."
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	b.WriteString(m.renderFilterBar())
	b.WriteString("\n")

	b.WriteString(PanelStyle.Width(m.width - 2).Height(m.viewport.Height + 2).Render(m.viewport.View()))
	b.WriteString("\n")

	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")

	b.WriteString(m.renderHelpBar())

	return b.String()
}

// renderHeader renders the title with the today line
func (m Model) renderHeader() string {
	parts := []string{LogoStyle.Render(Logo), "   ", SubHeaderStyle.Render(m.path)}

	if m.timeline != nil && m.timeline.Today != nil {
		parts = append(parts, "   ", TodayStyle.Render(IconToday+" "+m.timeline.Today.DateString()))
	}
	if m.paused {
		parts = append(parts, "  ", StatusPausedStyle.Render("PAUSED"))
	}

	header := lipgloss.JoinHorizontal(lipgloss.Center, parts...)
	return TitlePanelStyle.Width(m.width - 4).Render(header)
}

// renderFilterBar renders the kind filters and counts
func (m Model) renderFilterBar() string {
	filters := []string{
		"1:" + RenderFilterStatus("events", m.filter.Events),
		"2:" + RenderFilterStatus("periods", m.filter.Periods),
		"3:" + RenderFilterStatus("points", m.filter.Points),
		"d:" + RenderFilterStatus("descriptions", m.descriptions),
	}

	total := 0
	if m.timeline != nil {
		total = len(m.timeline.Entries)
	}
	count := HelpDescStyle.Render(fmt.Sprintf("[%d/%d items]", len(m.visible), total))

	return FilterBarStyle.Width(m.width - 2).Render(strings.Join(filters, "  ") + "  " + count)
}

// renderStatusBar renders the window, height and load state
func (m Model) renderStatusBar() string {
	left := ""
	if m.timeline != nil && m.timeline.Window != nil {
		left = HelpDescStyle.Render(fmt.Sprintf("Window %s ~ %s",
			m.timeline.Window.Start.DateString(), m.timeline.Window.End.DateString()))
	}

	var right string
	switch {
	case m.loading:
		right = m.spinner.View() + " Loading..."
	case m.err != nil:
		right = ErrorStyle.Render(errorLabel(m.err))
	default:
		right = StatusOKStyle.Render("OK")
	}

	space := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if space < 2 {
		space = 2
	}

	return StatusBarStyle.Width(m.width - 2).Render(left + strings.Repeat(" ", space) + right)
}

// renderHelpBar renders the help shortcuts bar
func (m Model) renderHelpBar() string {
	items := []string{
		RenderKeyHint("1-3", "Kinds"),
		RenderKeyHint("0", "All"),
		RenderKeyHint("d", "Descriptions"),
		RenderKeyHint("p", "Pause"),
		RenderKeyHint("r", "Reload"),
		RenderKeyHint("g/G", "Top/Bottom"),
		RenderKeyHint("q", "Quit"),
	}

	return HelpStyle.Render(strings.Join(items, "  "))
}

// updateViewportContent renders the visible entries into the viewport
func (m *Model) updateViewportContent() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderContent())
}

func (m Model) renderContent() string {
	if m.err != nil {
		return ErrorStyle.Render(timeline.FormatError(m.err))
	}
	if m.timeline == nil {
		return ""
	}

	var b strings.Builder
	for _, e := range m.visible {
		b.WriteString(renderEntry(e, m.descriptions))
		b.WriteString("\n")
	}

	if len(m.timeline.Markers) > 0 {
		b.WriteString("\n")
		for _, mk := range m.timeline.Markers {
			b.WriteString(MarkerStyle.Render(IconMarker+" "+mk.Label) + " " + ContentStyle.Render(mk.Marker.Content))
			b.WriteString("\n")
		}
	}

	if len(m.timeline.Arrows) > 0 {
		b.WriteString("\n")
		for _, a := range m.timeline.Arrows {
			b.WriteString(ArrowStyle.Render(fmt.Sprintf("%s %s %s", a.Block1, arrowGlyph(a.Direction), a.Block2)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func renderEntry(e timeline.Entry, descriptions bool) string {
	line := RenderGlyph(e.Item) + " " + LabelStyle.Render(e.Label)
	if strings.TrimSpace(e.Group) != "" {
		line += " " + GroupStyle.Render("{"+e.Group+"}")
	}
	line += " " + ContentStyle.Render(e.Item.Content)
	if link := e.Item.Link(); link != "" {
		line += " " + LinkStyle.Render("[["+link+"]]")
	}
	if desc := e.Item.Description(); descriptions && desc != "" {
		line += "\n    " + DescriptionStyle.Render(desc)
	}
	return line
}

func arrowGlyph(d model.Direction) string {
	switch d {
	case model.DirectionNone:
		return "─"
	case model.DirectionBackward:
		return "←"
	case model.DirectionBoth:
		return "↔"
	default:
		return IconArrow
	}
}

func errorLabel(err error) string {
	if mdwerror.HasCode(err, mdwerror.CodeIOError) {
		return "File error"
	}
	return "Parse error"
}

// applyFilters selects the entries matching the kind filter
func (m *Model) applyFilters() {
	m.visible = nil
	if m.timeline == nil {
		return
	}
	for _, e := range m.timeline.Entries {
		if m.filter.allows(e.Item.Kind()) {
			m.visible = append(m.visible, e)
		}
	}
}

// loadTimeline reads and renders the document
func (m Model) loadTimeline() tea.Msg {
	info, err := os.Stat(m.path)
	if err != nil {
		return timelineLoadedMsg{err: ioError(err, m.path)}
	}

	data, err := os.ReadFile(m.path)
	if err != nil {
		return timelineLoadedMsg{err: ioError(err, m.path), modTime: info.ModTime()}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tl, err := m.service.Render(ctx, string(data))
	return timelineLoadedMsg{timeline: tl, modTime: info.ModTime(), err: err}
}

// checkFile reports the current modification time of the document
func (m Model) checkFile() tea.Msg {
	info, err := os.Stat(m.path)
	if err != nil {
		return fileCheckedMsg{err: err}
	}
	return fileCheckedMsg{modTime: info.ModTime()}
}

func ioError(err error, path string) error {
	return mdwerror.Wrap(err, "failed to read timeline").
		WithCode(mdwerror.CodeIOError).
		WithDetail("path", path)
}

// Run starts the viewer
func Run(cfg Config) error {
	m := New(cfg)
	defer m.Close()

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
