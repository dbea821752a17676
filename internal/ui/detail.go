package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/advocates/roster/internal/roster"
)

// detailModal shows every field of one record.
type detailModal struct {
	record roster.Record
}

func (d detailModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil, false
	}
	if key.Matches(km, keys.Escape, keys.Confirm, keys.Quit) {
		return d, nil, true
	}
	return d, nil, false
}

func (d detailModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()
	r := d.record

	fields := []struct {
		label string
		value string
	}{
		{"Firm", r.FirmName},
		{"Address", orDash(r.Address)},
		{"Plot", orDash(r.PlotNo)},
		{"Email", orDash(r.Email)},
		{"Phone", orDash(r.Phone)},
		{"Enrolled", r.EnrollmentDate},
		{"Renewal", r.RenewalDate},
		{"Certificate", r.CertificateNo},
		{"Roll ID", r.ID},
	}

	boxWidth := min(max(width-8, 30), 72)
	valueWidth := boxWidth - 4 - 14

	var b strings.Builder
	b.WriteString(styles.Title.Render(truncate(r.Name, boxWidth-16)))
	b.WriteString("  ")
	b.WriteString(styles.StatusStyle(r.Status).Render(string(r.Status)))
	b.WriteString("\n\n")
	for _, f := range fields {
		b.WriteString(styles.MutedText.Width(14).Render(f.label))
		b.WriteString(styles.Text.Render(truncate(f.value, valueWidth)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("esc close"))

	return placeModal(theme, width, height, boxWidth, b.String())
}
