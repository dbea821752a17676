package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/advocates/roster/internal/config"
	"github.com/advocates/roster/internal/logging"
	"github.com/advocates/roster/internal/prefs"
	"github.com/advocates/roster/internal/roster"
	"github.com/advocates/roster/internal/state"
	"github.com/advocates/roster/internal/ui"
)

// Options configure every roster command.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/roster/prefs.toml
	DataPath   string // overrides the configured dataset path
	Verbose    bool

	// Initial query
	Search string
	Status string
	Page   int

	// Logger overrides the command's default logger.
	Logger *zap.Logger
}

// Run boots the roster browser until the user quits or the context is
// cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	logger := opts.Logger
	if logger == nil {
		logger, err = logging.New(logging.Options{Path: cfg.LogPath(), Verbose: opts.Verbose})
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		defer func() { _ = logger.Sync() }()
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	engine, err := openEngine(cfg, opts, logger)
	if err != nil {
		return err
	}

	uiOpts := ui.Options{
		Context:   ctx,
		Engine:    engine,
		Logger:    logger,
		ThemeName: userPrefs.Theme,
		Layout:    userPrefs.Layout,
		PrefsPath: opts.PrefsPath,
	}
	if err := ui.Run(uiOpts); err != nil && ctx.Err() == nil {
		return fmt.Errorf("run browser: %w", err)
	}
	return nil
}

func loadConfig(opts Options) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	if strings.TrimSpace(opts.DataPath) != "" {
		path, err := config.ExpandPath(opts.DataPath)
		if err != nil {
			return config.Config{}, fmt.Errorf("resolve data path: %w", err)
		}
		cfg.DataPath = path
	}
	return cfg, nil
}

// openEngine loads the dataset and builds an engine seeded with the
// initial query from opts.
func openEngine(cfg config.Config, opts Options, logger *zap.Logger) (*state.Engine, error) {
	status, ok := roster.ParseStatusFilter(opts.Status)
	if !ok {
		return nil, fmt.Errorf("unknown status %q: want all, active or inactive", opts.Status)
	}

	started := time.Now()
	records, err := roster.Load(cfg.DataPath)
	if err != nil {
		if errors.Is(err, roster.ErrNoDataset) {
			return nil, fmt.Errorf("load dataset: %w (run `roster scrape` to download the roll)", err)
		}
		return nil, fmt.Errorf("load dataset: %w", err)
	}
	logger.Info("dataset loaded",
		zap.String("path", cfg.DataPath),
		zap.Int("records", len(records)),
		zap.Duration("elapsed", time.Since(started)))

	engine := state.NewEngine(records, state.Options{
		PageSize:   cfg.PageSize,
		MaxVisible: cfg.MaxVisiblePages,
		Logger:     logger,
	})
	if opts.Search != "" || status != roster.FilterAll {
		engine.SetSearch(opts.Search)
		engine.Run(engine.SetStatus(status))
	}
	return engine, nil
}
