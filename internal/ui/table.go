package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/advocates/roster/internal/roster"
)

type column struct {
	title string
	width int
	value func(roster.Record) string
}

// Fixed widths for the short columns; name, firm and email share the rest.
const (
	dateWidth        = 11
	phoneWidth       = 14
	certificateWidth = 14
	statusWidth      = 10
	minFlexWidth     = 8
)

// tableColumns lays out the table for the given width. Narrow tables drop
// the renewal and enrollment dates before squeezing the text columns.
func tableColumns(width int) []column {
	name := column{title: "Name", value: func(r roster.Record) string { return r.Name }}
	firm := column{title: "Firm", value: func(r roster.Record) string { return r.FirmName }}
	email := column{title: "Email", value: func(r roster.Record) string { return orDash(r.Email) }}
	phone := column{title: "Phone", width: phoneWidth, value: func(r roster.Record) string { return orDash(r.Phone) }}
	enrolled := column{title: "Enrollment", width: dateWidth, value: func(r roster.Record) string { return r.EnrollmentDate }}
	renewal := column{title: "Renewal", width: dateWidth, value: func(r roster.Record) string { return r.RenewalDate }}
	cert := column{title: "Certificate", width: certificateWidth, value: func(r roster.Record) string { return r.CertificateNo }}
	status := column{title: "Status", width: statusWidth}

	cols := []column{name, firm, email, phone, enrolled, renewal, cert, status}
	if width < LayoutWideWidth {
		cols = []column{name, firm, email, phone, cert, status}
	}

	fixed := 0
	for _, c := range cols {
		fixed += c.width + 1
	}
	flex := width - fixed - 1
	share := max(flex/3, minFlexWidth)
	cols[0].width = share
	cols[1].width = share
	cols[2].width = max(flex-2*share, minFlexWidth)
	return cols
}

// renderTable renders the current page as rows, scrolled to keep the
// cursor visible.
func (m Model) renderTable(height int) string {
	styles := m.theme.Styles()
	cols := tableColumns(m.width)
	items := m.snapshot.Window.Items

	head := make([]string, len(cols))
	for i, c := range cols {
		head[i] = fit(c.title, c.width)
	}
	lines := []string{styles.ColumnHead.Width(m.width).MaxWidth(m.width).Render(" " + strings.Join(head, " "))}

	start, end := visibleRange(m.cursor, len(items), height-1)
	for i := start; i < end; i++ {
		lines = append(lines, m.renderRow(items[i], cols, i == m.cursor))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderRow(r roster.Record, cols []column, selected bool) string {
	styles := m.theme.Styles()
	cells := make([]string, len(cols))
	for i, c := range cols {
		if c.value == nil {
			cells[i] = statusBadge(styles, r.Status, c.width)
			continue
		}
		cells[i] = fit(c.value(r), c.width)
	}
	line := " " + strings.Join(cells, " ")
	if selected {
		return styles.Selected.Width(m.width).MaxWidth(m.width).Render(line)
	}
	return styles.Text.Width(m.width).MaxWidth(m.width).Render(line)
}

// statusBadge renders the status pill padded to width cells.
func statusBadge(styles Styles, status roster.Status, width int) string {
	label := truncate(string(status), max(width-2, 1))
	badge := styles.StatusStyle(status).Render(label)
	if pad := width - lipgloss.Width(badge); pad > 0 {
		badge += strings.Repeat(" ", pad)
	}
	return badge
}
