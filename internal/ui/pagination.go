package ui

import (
	"strconv"
	"strings"

	"github.com/advocates/roster/internal/paging"
	"github.com/advocates/roster/internal/state"
)

// pageControl is one clickable-looking element of the pagination bar.
type pageControl struct {
	label    string
	enabled  bool
	current  bool
	ellipsis bool
}

const (
	prevLabel = "‹ Previous"
	nextLabel = "Next ›"
)

// pageControls lays out Previous, the page tokens and Next for snap. It
// returns nil when there is only one page.
func pageControls(snap state.Snapshot) []pageControl {
	if snap.TotalPages <= 1 {
		return nil
	}
	controls := make([]pageControl, 0, len(snap.Tokens)+2)
	controls = append(controls, pageControl{label: prevLabel, enabled: snap.CanPrev})
	for _, tok := range snap.Tokens {
		if tok.IsEllipsis() {
			controls = append(controls, pageControl{label: "…", ellipsis: true})
			continue
		}
		page, _ := tok.Page()
		controls = append(controls, pageControl{
			label:   strconv.Itoa(page),
			enabled: true,
			current: page == snap.Query.Page,
		})
	}
	controls = append(controls, pageControl{label: nextLabel, enabled: snap.CanNext})
	return controls
}

// renderPageBar renders controls with the given styles.
func renderPageBar(styles Styles, controls []pageControl) string {
	if len(controls) == 0 {
		return ""
	}
	parts := make([]string, len(controls))
	for i, c := range controls {
		switch {
		case c.current:
			parts[i] = styles.PageCurrent.Render(c.label)
		case c.ellipsis:
			parts[i] = styles.FaintText.Render(" " + c.label + " ")
		case c.enabled:
			parts[i] = styles.PageLink.Render(c.label)
		default:
			parts[i] = styles.PageDisabled.Render(c.label)
		}
	}
	return strings.Join(parts, " ")
}

// renderPagination renders the bar for the current snapshot, or "" when a
// single page holds every match.
func (m Model) renderPagination() string {
	bar := renderPageBar(m.theme.Styles(), pageControls(m.snapshot))
	if bar == "" {
		return ""
	}
	return " " + bar
}

// PlainPageBar renders the token list without styling, for example
// "1 … 4 5 6 … 10".
func PlainPageBar(tokens []paging.Token) string {
	labels := make([]string, len(tokens))
	for i, tok := range tokens {
		if tok.IsEllipsis() {
			labels[i] = "…"
			continue
		}
		labels[i] = tok.String()
	}
	return strings.Join(labels, " ")
}
