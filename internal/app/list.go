package app

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/advocates/roster/internal/logtail"
	"github.com/advocates/roster/internal/paging"
	"github.com/advocates/roster/internal/ui"
)

// List prints one page of the filtered roll without starting the browser.
func List(opts Options, out io.Writer) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	logger, cleanup, err := commandLogger(opts)
	if err != nil {
		return err
	}
	defer cleanup()

	engine, err := openEngine(cfg, opts, logger)
	if err != nil {
		return err
	}
	page := opts.Page
	if page == 0 {
		page = paging.FirstPage
	}
	engine.GoToPage(page)

	snap := engine.Snapshot()
	logger.Debug("list page",
		zap.Int("page", snap.Query.Page),
		zap.Int("pages", snap.TotalPages),
		zap.Int("matches", snap.Matches))
	return ui.RenderList(out, snap)
}

// Tail prints the last n lines of the browser log.
func Tail(opts Options, n int, out io.Writer) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	lines, err := logtail.Read(cfg.LogPath(), n)
	if err != nil {
		return fmt.Errorf("read log: %w", err)
	}
	if len(lines) == 0 {
		_, err := fmt.Fprintf(out, "No log entries in %s\n", cfg.LogPath())
		return err
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(out, ui.LogLine(line)); err != nil {
			return err
		}
	}
	return nil
}
