package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const searchPlaceholder = "Search by name, firm, email, phone, or certificate..."

func newSearchInput(value string) textinput.Model {
	in := textinput.New()
	in.Placeholder = searchPlaceholder
	in.Prompt = "/ "
	in.CharLimit = 120
	in.SetValue(value)
	return in
}

// handleSearchKey feeds keys to the focused search box. Every edit updates
// the query at once and schedules a debounced recompute.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	if msg.Type == tea.KeyEsc || msg.Type == tea.KeyEnter {
		m.search.Blur()
		return m, nil
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() == before {
		return m, cmd
	}

	req := m.engine.SetSearch(m.search.Value())
	m.pageChanged()
	compute := m.scheduleCompute(req)
	return m, tea.Batch(cmd, compute)
}

func (m Model) renderSearch() string {
	styles := m.theme.Styles()
	border := lipgloss.Color(m.theme.Border)
	if m.search.Focused() {
		border = lipgloss.Color(m.theme.BorderFocus)
	}
	m.search.PromptStyle = lipgloss.NewStyle().Foreground(border)
	m.search.TextStyle = styles.Text
	m.search.PlaceholderStyle = styles.FaintText
	return " " + m.search.View()
}
