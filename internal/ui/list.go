package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/advocates/roster/internal/roster"
	"github.com/advocates/roster/internal/state"
)

// RenderList prints one page of snap as a plain table for non-interactive
// use: the summary line, the rows and the page tokens.
func RenderList(w io.Writer, snap state.Snapshot) error {
	p := message.NewPrinter(language.English)

	if snap.Window.Len() == 0 {
		_, err := fmt.Fprintln(w, "No results found\nTry adjusting your search or filter to find what you're looking for.")
		return err
	}

	head := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Name", "Firm", "Email", "Phone", "Enrollment", "Renewal", "Certificate", "Status").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return head
			}
			return cell
		})
	for _, r := range snap.Window.Items {
		t.Row(listRow(r)...)
	}

	win := snap.Window
	if _, err := fmt.Fprintln(w, showingText(p, win.Start, win.Len(), snap.Matches)); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, t.Render()); err != nil {
		return err
	}
	if snap.TotalPages > 1 {
		_, err := fmt.Fprintf(w, "Page %d of %d: %s\n", snap.Query.Page, snap.TotalPages, PlainPageBar(snap.Tokens))
		return err
	}
	return nil
}

func listRow(r roster.Record) []string {
	return []string{
		truncate(r.Name, 40),
		truncate(r.FirmName, 40),
		orDash(r.Email),
		orDash(r.Phone),
		r.EnrollmentDate,
		r.RenewalDate,
		r.CertificateNo,
		string(r.Status),
	}
}
