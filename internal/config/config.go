package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

// Config captures everything roster reads from its config file and environment.
type Config struct {
	DataPath        string
	SourceURL       string
	PageSize        int
	MaxVisiblePages int
	LogDir          string
	// UserAgent is sent with roll requests. Empty uses the scraper default.
	UserAgent       string
}

const (
	defaultConfigPath = "~/.config/roster/config.toml"
	defaultDataPath   = "~/.local/share/roster/advocates.json"
	defaultLogDir     = "~/.local/share/roster/logs"
	defaultSourceURL  = "https://www.judiciary.go.ug/print_all_advocates.php"
	defaultPageSize   = 50
	defaultMaxVisible = 7
)

// Environment variables that override file values.
const (
	EnvDataPath  = "ROSTER_DATA"
	EnvSourceURL = "ROSTER_SOURCE_URL"
	EnvPageSize  = "ROSTER_PAGE_SIZE"
	EnvLogDir    = "ROSTER_LOG_DIR"
	EnvUserAgent = "ROSTER_USER_AGENT"
)

// Load locates and parses the roster config, falling back to defaults when
// missing, then applies environment overrides. A .env file in the working
// directory is read first when present.
func Load(path string) (Config, error) {
	cfg, err := loadFile(path)
	if err != nil {
		return Config{}, err
	}

	// Missing .env is the common case.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadFile(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		DataPath:        mustExpand(defaultDataPath),
		SourceURL:       defaultSourceURL,
		PageSize:        defaultPageSize,
		MaxVisiblePages: defaultMaxVisible,
		LogDir:          mustExpand(defaultLogDir),
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		DataPath        string `toml:"data_path"`
		SourceURL       string `toml:"source_url"`
		PageSize        int    `toml:"page_size"`
		MaxVisiblePages int    `toml:"max_visible_pages"`
		LogDir          string `toml:"log_dir"`
		UserAgent       string `toml:"user_agent"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.DataPath); v != "" {
		cfg.DataPath = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.SourceURL); v != "" {
		cfg.SourceURL = v
	}
	if raw.PageSize > 0 {
		cfg.PageSize = raw.PageSize
	}
	if raw.MaxVisiblePages > 0 {
		cfg.MaxVisiblePages = raw.MaxVisiblePages
	}
	if v := strings.TrimSpace(raw.LogDir); v != "" {
		cfg.LogDir = mustExpand(v)
	}
	cfg.UserAgent = strings.TrimSpace(raw.UserAgent)
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := strings.TrimSpace(os.Getenv(EnvDataPath)); v != "" {
		cfg.DataPath = mustExpand(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvSourceURL)); v != "" {
		cfg.SourceURL = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvPageSize)); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil || size <= 0 {
			return fmt.Errorf("invalid %s %q: want a positive integer", EnvPageSize, v)
		}
		cfg.PageSize = size
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogDir)); v != "" {
		cfg.LogDir = mustExpand(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvUserAgent)); v != "" {
		cfg.UserAgent = v
	}
	return nil
}

// LogPath returns the path to the roster log file.
func (c Config) LogPath() string {
	if strings.TrimSpace(c.LogDir) == "" {
		return mustExpand(defaultLogDir + "/roster.log")
	}
	return filepath.Join(c.LogDir, "roster.log")
}

// ExpandPath resolves a leading ~ and returns an absolute path.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
