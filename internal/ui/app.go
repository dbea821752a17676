package ui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/advocates/roster/internal/paging"
	"github.com/advocates/roster/internal/prefs"
	"github.com/advocates/roster/internal/roster"
	"github.com/advocates/roster/internal/state"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Engine    *state.Engine
	Logger    *zap.Logger
	ThemeName string
	Layout    prefs.Layout
	PrefsPath string
	Debounce  time.Duration
}

// Model is the root application state for Bubble Tea.
type Model struct {
	engine    *state.Engine
	logger    *zap.Logger
	keys      keyMap
	prefsPath string
	debounce  time.Duration
	counter   *message.Printer

	// UI state
	theme  Theme
	layout prefs.Layout
	width  int
	height int
	ready  bool

	// Data state
	snapshot state.Snapshot
	cursor   int

	search   textinput.Model
	spinner  spinner.Model
	spinning bool

	modal    Modal
	showHelp bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	engine := opts.Engine
	if engine == nil {
		engine = state.NewEngine(nil, state.Options{})
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = SearchDebounce
	}
	layout := opts.Layout
	if layout == "" {
		layout = prefs.LayoutAuto
	}
	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	snap := engine.Snapshot()
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		engine:    engine,
		logger:    logger,
		keys:      DefaultKeyMap(),
		prefsPath: prefsPath,
		debounce:  debounce,
		counter:   message.NewPrinter(language.English),
		theme:     GetTheme(opts.ThemeName),
		layout:    layout,
		snapshot:  snap,
		search:    newSearchInput(snap.Query.Search),
		spinner:   sp,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("roster")
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.search.Width = max(msg.Width-6, 10)
		m.ready = true
		m.clampCursor()
		return m, nil

	case debounceMsg:
		return m, m.handleDebounce(msg)

	case computedMsg:
		m.handleComputed(msg)
		return m, nil

	case gotoPageMsg:
		m.engine.GoToPage(msg.page)
		m.pageChanged()
		return m, nil

	case spinner.TickMsg:
		if !m.snapshot.Pending() {
			m.spinning = false
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	if m.modal != nil {
		next, cmd, closed := m.modal.Update(msg, m.keys)
		m.modal = next
		if closed {
			m.modal = nil
		}
		return m, cmd
	}
	if m.search.Focused() {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.modal != nil {
		return m.modal.View(m.theme, m.width, m.height)
	}
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.modal != nil {
		next, cmd, closed := m.modal.Update(msg, m.keys)
		m.modal = next
		if closed {
			m.modal = nil
		}
		return m, cmd
	}

	if m.search.Focused() {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()

	case key.Matches(msg, m.keys.CycleLayout):
		m.layout = m.layout.Next()
		m.savePrefs()

	case key.Matches(msg, m.keys.Search):
		cmd := m.search.Focus()
		return m, cmd

	case key.Matches(msg, m.keys.CycleStatus):
		req := m.engine.SetStatus(m.snapshot.Query.Status.Next())
		m.pageChanged()
		cmd := m.startCompute(req)
		return m, cmd

	case key.Matches(msg, m.keys.PrevPage):
		if m.engine.PrevPage() {
			m.pageChanged()
		}

	case key.Matches(msg, m.keys.NextPage):
		if m.engine.NextPage() {
			m.pageChanged()
		}

	case key.Matches(msg, m.keys.FirstPage):
		if m.snapshot.CanPrev {
			m.engine.GoToPage(paging.FirstPage)
			m.pageChanged()
		}

	case key.Matches(msg, m.keys.LastPage):
		if m.snapshot.CanNext {
			m.engine.LastPage()
			m.pageChanged()
		}

	case key.Matches(msg, m.keys.GoToPage):
		if m.snapshot.TotalPages > 1 {
			m.modal = newGotoModal(m.snapshot.Query.Page, m.snapshot.TotalPages)
			return m, textinput.Blink
		}

	case key.Matches(msg, m.keys.Open):
		if rec, ok := m.selected(); ok {
			m.modal = detailModal{record: rec}
		}

	default:
		m.handleRowKey(msg)
	}
	return m, nil
}

// handleRowKey moves the row cursor within the current page.
func (m *Model) handleRowKey(msg tea.KeyMsg) {
	rows := m.snapshot.Window.Len()
	if rows == 0 {
		return
	}
	switch {
	case key.Matches(msg, m.keys.Down):
		if m.cursor < rows-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Top):
		m.cursor = 0
	case key.Matches(msg, m.keys.Bottom):
		m.cursor = rows - 1
	}
}

// selected returns the record under the cursor.
func (m Model) selected() (roster.Record, bool) {
	items := m.snapshot.Window.Items
	if m.cursor < 0 || m.cursor >= len(items) {
		return roster.Record{}, false
	}
	return items[m.cursor], true
}

// refresh pulls a fresh snapshot from the engine.
func (m *Model) refresh() {
	m.snapshot = m.engine.Snapshot()
	m.clampCursor()
}

// pageChanged refreshes and puts the cursor back on the first row.
func (m *Model) pageChanged() {
	m.refresh()
	m.cursor = 0
}

func (m *Model) clampCursor() {
	rows := m.snapshot.Window.Len()
	if m.cursor >= rows {
		m.cursor = rows - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	p := prefs.Prefs{Theme: m.theme.Name, Layout: m.layout}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		m.logger.Warn("save prefs", zap.String("path", m.prefsPath), zap.Error(err))
	}
}

// useCards reports whether records are drawn as cards.
func (m Model) useCards() bool {
	switch m.layout {
	case prefs.LayoutCards:
		return true
	case prefs.LayoutTable:
		return false
	default:
		return m.width < LayoutCompactWidth
	}
}

// renderMain renders the full browser.
func (m Model) renderMain() string {
	pager := m.renderPagination()
	bodyHeight := m.height - chromeLines
	if pager != "" {
		bodyHeight--
	}
	bodyHeight = max(bodyHeight, 1)

	var body string
	switch {
	case m.snapshot.Matches == 0:
		body = m.renderEmpty(bodyHeight)
	case m.useCards():
		body = m.renderCards(bodyHeight)
	default:
		body = m.renderTable(bodyHeight)
	}
	body = lipgloss.NewStyle().Height(bodyHeight).MaxHeight(bodyHeight).Render(body)

	lines := []string{
		m.renderHeader(),
		m.renderSearch(),
		m.renderSummary(),
		body,
	}
	if pager != "" {
		lines = append(lines, pager)
	}
	lines = append(lines, m.renderFooter())
	return strings.Join(lines, "\n")
}

// renderEmpty renders the no-results state.
func (m Model) renderEmpty(height int) string {
	styles := m.theme.Styles()
	msg := lipgloss.JoinVertical(lipgloss.Center,
		styles.Title.Render("No results found"),
		styles.MutedText.Render("Try adjusting your search or filter to find what you're looking for."),
	)
	return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, msg)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
