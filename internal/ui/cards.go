package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/advocates/roster/internal/roster"
)

// renderCards renders the current page as stacked cards for narrow
// terminals.
func (m Model) renderCards(height int) string {
	items := m.snapshot.Window.Items
	capacity := max(height/cardLines, 1)
	start, end := visibleRange(m.cursor, len(items), capacity)

	cards := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		cards = append(cards, m.renderCard(items[i], i == m.cursor))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

func (m Model) renderCard(r roster.Record, selected bool) string {
	styles := m.theme.Styles()
	inner := max(m.width-4, 10)

	badge := styles.StatusStyle(r.Status).Render(string(r.Status))
	nameWidth := inner - lipgloss.Width(badge) - 1
	title := styles.Title.Render(fit(r.Name, nameWidth)) + " " + badge

	contact := orDash(r.Email) + "  ·  " + orDash(r.Phone)
	dates := "Enrolled " + r.EnrollmentDate + "  ·  Renewal " + r.RenewalDate

	body := strings.Join([]string{
		title,
		styles.Text.Render(truncate(r.FirmName, inner)),
		styles.MutedText.Render(truncate(contact, inner)),
		styles.FaintText.Render(truncate(dates+"  ·  "+r.CertificateNo, inner)),
	}, "\n")

	style := styles.Card
	if selected {
		style = styles.CardSelected
	}
	return style.Width(m.width - 2).Render(body)
}
