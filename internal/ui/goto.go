package ui

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/advocates/roster/internal/paging"
)

// gotoPageMsg asks the model to jump to a validated page.
type gotoPageMsg struct {
	page int
}

// gotoModal reads a page number. It only accepts pages in 1..total, so
// the engine never receives an out-of-range page from the UI.
type gotoModal struct {
	input textinput.Model
	total int
	err   string
}

func newGotoModal(current, total int) gotoModal {
	in := textinput.New()
	in.Prompt = "Page: "
	in.Placeholder = strconv.Itoa(current)
	in.CharLimit = len(strconv.Itoa(total))
	in.Focus()
	return gotoModal{input: in, total: total}
}

func (g gotoModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		g.input, cmd = g.input.Update(msg)
		return g, cmd, false
	}

	switch {
	case key.Matches(km, keys.Escape):
		return g, nil, true
	case key.Matches(km, keys.Confirm):
		page, ok := g.parse()
		if !ok {
			g.err = fmt.Sprintf("Enter a page between 1 and %d", g.total)
			return g, nil, false
		}
		return g, func() tea.Msg { return gotoPageMsg{page: page} }, true
	}

	if km.Type == tea.KeyRunes && strings.IndexFunc(string(km.Runes), notDigit) >= 0 {
		return g, nil, false
	}
	var cmd tea.Cmd
	g.input, cmd = g.input.Update(km)
	g.err = ""
	return g, cmd, false
}

func (g gotoModal) parse() (int, bool) {
	page, err := strconv.Atoi(strings.TrimSpace(g.input.Value()))
	if err != nil || !(paging.Pager{Total: g.total}).InRange(page) {
		return 0, false
	}
	return page, true
}

func (g gotoModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()
	var b strings.Builder
	b.WriteString(styles.Title.Render("Go to page"))
	b.WriteString(styles.MutedText.Render(fmt.Sprintf("  (1-%d)", g.total)))
	b.WriteString("\n\n")
	b.WriteString(g.input.View())
	if g.err != "" {
		b.WriteString("\n\n")
		b.WriteString(styles.DangerText.Render(g.err))
	}
	return placeModal(theme, width, height, 36, b.String())
}

func notDigit(r rune) bool {
	return !unicode.IsDigit(r)
}
