package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/advocates/roster/internal/state"
)

// debounceMsg fires once typing has paused for a generation.
type debounceMsg struct {
	req state.Request
}

// computedMsg carries a finished (or abandoned) recompute.
type computedMsg struct {
	result state.Result
	ok     bool
}

func debounceCmd(d time.Duration, req state.Request) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return debounceMsg{req: req}
	})
}

func computeCmd(engine *state.Engine, req state.Request) tea.Cmd {
	return func() tea.Msg {
		res, ok := engine.Compute(req)
		return computedMsg{result: res, ok: ok}
	}
}

// startCompute launches filtering for req right away.
func (m *Model) startCompute(req state.Request) tea.Cmd {
	return tea.Batch(computeCmd(m.engine, req), m.startSpinner())
}

// scheduleCompute waits for the debounce interval before filtering.
func (m *Model) scheduleCompute(req state.Request) tea.Cmd {
	return tea.Batch(debounceCmd(m.debounce, req), m.startSpinner())
}

func (m *Model) startSpinner() tea.Cmd {
	if m.spinning {
		return nil
	}
	m.spinning = true
	return m.spinner.Tick
}

// handleDebounce starts filtering only for the newest generation; ticks
// for superseded keystrokes are dropped.
func (m Model) handleDebounce(msg debounceMsg) tea.Cmd {
	if !m.engine.IsLatest(msg.req.Gen) {
		return nil
	}
	return computeCmd(m.engine, msg.req)
}

func (m *Model) handleComputed(msg computedMsg) {
	if !msg.ok {
		return
	}
	if !m.engine.Apply(msg.result) {
		return
	}
	m.pageChanged()
	m.logger.Debug("matches updated",
		zap.Uint64("gen", msg.result.Gen),
		zap.Int("matches", m.snapshot.Matches))
}
