// Package ui provides the Bubble Tea browser for the advocates roll.
//
// # Architecture Overview
//
// Model is the root tea.Model. It never filters records itself: every query
// change goes through state.Engine, which updates the query at once and
// hands back a Request for the matching subset. The model runs that
// request as a tea.Cmd and installs the result with Engine.Apply, so a
// slow filter never blocks key handling and stale results are dropped.
//
// Typing in the search box is debounced. Each edit schedules a tick tagged
// with its generation; when the tick arrives only the newest generation
// launches a compute. Status changes compute immediately. Page moves are
// synchronous because they only re-slice the cached matches.
//
// # Package Structure
//
//   - app.go: Model, Update/View and key dispatch
//   - recompute.go: debounce and compute commands
//   - header.go: title bar, result summary and footer hints
//   - search.go: the search box
//   - table.go, cards.go: the two record layouts
//   - pagination.go: the Previous / tokens / Next bar
//   - detail.go, goto.go: record detail and go-to-page dialogs
//   - list.go: one-shot table output for the list command
//   - theme.go: palettes and lipgloss styles
//
// # Layout
//
// Records are drawn as a table, or as cards when the terminal is narrower
// than LayoutCompactWidth. The L key cycles auto, table and cards; the T key
// cycles themes. Both choices persist to the prefs file.
package ui
