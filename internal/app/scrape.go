package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/advocates/roster/internal/logging"
	"github.com/advocates/roster/internal/roster"
	"github.com/advocates/roster/internal/scrape"
)

const (
	defaultRetryInterval = 2 * time.Second
	maxBackoff           = 30 * time.Second
	scrapeAttempts       = 3
)

// Scrape downloads the roll and writes it to the configured dataset path.
func Scrape(ctx context.Context, opts Options, out io.Writer) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	logger, cleanup, err := commandLogger(opts)
	if err != nil {
		return err
	}
	defer cleanup()

	client, err := scrape.NewClient(cfg.SourceURL, cfg.UserAgent)
	if err != nil {
		return fmt.Errorf("init scrape client: %w", err)
	}

	res, err := fetchWithRetry(ctx, client, logger, defaultRetryInterval)
	if err != nil {
		return fmt.Errorf("scrape roll: %w", err)
	}
	logger.Info("roll scraped",
		zap.String("url", client.Source()),
		zap.Int("rows", len(res.Records)),
		zap.Int("skipped", res.Skipped))

	if err := roster.Save(cfg.DataPath, res.Records); err != nil {
		return fmt.Errorf("save dataset: %w", err)
	}
	_, err = fmt.Fprintf(out, "Wrote %d records to %s\n", len(res.Records), cfg.DataPath)
	return err
}

// fetchWithRetry tries the fetch up to scrapeAttempts times, backing off
// between failures. It stops early when ctx is cancelled.
func fetchWithRetry(ctx context.Context, fetcher scrape.RollFetcher, logger *zap.Logger, interval time.Duration) (scrape.Result, error) {
	var lastErr error
	for attempt := 0; attempt < scrapeAttempts; attempt++ {
		res, err := fetcher.FetchRoll(ctx)
		if err == nil {
			return res, nil
		}
		lastErr = err
		if attempt == scrapeAttempts-1 {
			break
		}

		wait := calculateBackoff(attempt+1, interval)
		logger.Warn("roll fetch failed",
			zap.Int("attempt", attempt+1),
			zap.Duration("retry_in", wait),
			zap.Error(err))
		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return scrape.Result{}, ctx.Err()
		case <-timer.C:
		}
	}
	return scrape.Result{}, lastErr
}

// calculateBackoff doubles interval for each consecutive failure, capped at
// maxBackoff.
func calculateBackoff(failures int, interval time.Duration) time.Duration {
	if failures <= 0 {
		return interval
	}
	backoff := interval
	for i := 0; i < failures; i++ {
		backoff *= 2
		if backoff >= maxBackoff {
			return maxBackoff
		}
	}
	return backoff
}

// commandLogger returns opts.Logger or a console logger for one-shot
// commands.
func commandLogger(opts Options) (*zap.Logger, func(), error) {
	if opts.Logger != nil {
		return opts.Logger, func() {}, nil
	}
	logger, err := logging.New(logging.Options{Verbose: opts.Verbose})
	if err != nil {
		return nil, nil, fmt.Errorf("init logger: %w", err)
	}
	return logger, func() { _ = logger.Sync() }, nil
}
