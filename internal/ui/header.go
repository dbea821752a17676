package ui

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/message"

	"github.com/advocates/roster/internal/roster"
)

// statusLabel names a filter the way the status selector shows it.
func statusLabel(f roster.StatusFilter) string {
	if f == roster.FilterAll {
		return "All statuses"
	}
	return f.String()
}

// renderHeader renders the title bar with the match count and filter.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	count := m.counter.Sprintf("%d", m.snapshot.Matches)
	left := bg.Render("Members", styles.Title)
	right := []string{
		bg.Render(count, styles.Text) + bg.Spaces(1) +
			bg.Render(plural(m.snapshot.Matches, "member", "members"), styles.MutedText),
		bg.Render("Status:", styles.MutedText) + bg.Spaces(1) +
			bg.Render(statusLabel(m.snapshot.Query.Status), styles.AccentText),
	}
	if m.snapshot.Pending() {
		right = append(right, bg.Render(m.spinner.View()+" Filtering", styles.AccentText))
	}
	rightText := bg.Join(right, "  ·  ")

	gap := m.width - 2 - lipgloss.Width(left) - lipgloss.Width(rightText)
	return styles.Header.Width(m.width).Render(left + bg.Spaces(gap) + rightText)
}

// renderSummary renders "Showing a-b of n" for a non-empty result.
func (m Model) renderSummary() string {
	styles := m.theme.Styles()
	if m.snapshot.Matches == 0 || m.snapshot.Window.Len() == 0 {
		return ""
	}
	w := m.snapshot.Window
	return " " + styles.MutedText.Render(showingText(m.counter, w.Start, w.Len(), m.snapshot.Matches))
}

// showingText formats the range summary. Only the total is grouped.
func showingText(counter *message.Printer, start, rows, total int) string {
	return "Showing " + strconv.Itoa(start+1) + "-" + strconv.Itoa(start+rows) +
		" of " + counter.Sprintf("%d", total)
}

// renderFooter renders the short key hints.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	var parts []string
	for _, b := range m.keys.ShortHelp() {
		h := b.Help()
		parts = append(parts, bg.Render(h.Key, styles.Key)+bg.Spaces(1)+bg.Render(h.Desc, styles.MutedText))
	}
	return styles.Footer.Width(m.width).Render(bg.Join(parts, "  "))
}
