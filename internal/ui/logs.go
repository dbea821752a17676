package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/advocates/roster/internal/logtail"
)

// LogLine colors a roster log entry by its level. Lines that are not JSON
// log entries are returned unchanged.
func LogLine(line string) string {
	th := GetTheme("")
	var color string
	switch logtail.Level(line) {
	case "debug":
		color = th.Faint
	case "info":
		color = th.Text
	case "warn":
		color = th.Warning
	case "error", "dpanic", "panic", "fatal":
		color = th.Danger
	default:
		return line
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(line)
}
