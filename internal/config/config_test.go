package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvDataPath, EnvSourceURL, EnvPageSize, EnvLogDir, EnvUserAgent} {
		t.Setenv(key, "")
	}
}

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	clearEnv(t)
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.SourceURL != defaultSourceURL {
		t.Fatalf("SourceURL = %q, want %q", cfg.SourceURL, defaultSourceURL)
	}
	if cfg.PageSize != 50 || cfg.MaxVisiblePages != 7 {
		t.Fatalf("PageSize/MaxVisiblePages = %d/%d, want 50/7", cfg.PageSize, cfg.MaxVisiblePages)
	}

	wantData, err := expandPath(defaultDataPath)
	if err != nil {
		t.Fatalf("expandPath(defaultDataPath) returned error: %v", err)
	}
	if cfg.DataPath != wantData {
		t.Fatalf("DataPath = %q, want %q", cfg.DataPath, wantData)
	}
	if cfg.LogPath() != filepath.Join(cfg.LogDir, "roster.log") {
		t.Fatalf("LogPath = %q, want it inside %q", cfg.LogPath(), cfg.LogDir)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	clearEnv(t)
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
data_path = "  ~/rolls/advocates.json  "
source_url = "  http://127.0.0.1:9999/roll  "
page_size = 25
max_visible_pages = 9
log_dir = "  ~/.roster/logs  "
user_agent = "  roll-mirror/2.0  "
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.DataPath != filepath.Join(home, "rolls/advocates.json") {
		t.Fatalf("DataPath = %q, want it under HOME %q", cfg.DataPath, home)
	}
	if cfg.SourceURL != "http://127.0.0.1:9999/roll" {
		t.Fatalf("SourceURL = %q, want trimmed value", cfg.SourceURL)
	}
	if cfg.PageSize != 25 || cfg.MaxVisiblePages != 9 {
		t.Fatalf("PageSize/MaxVisiblePages = %d/%d, want 25/9", cfg.PageSize, cfg.MaxVisiblePages)
	}
	if !strings.HasPrefix(cfg.LogDir, home) {
		t.Fatalf("LogDir = %q, want it under HOME %q", cfg.LogDir, home)
	}
	if cfg.UserAgent != "roll-mirror/2.0" {
		t.Fatalf("UserAgent = %q, want trimmed value", cfg.UserAgent)
	}
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
data_path = "   "
source_url = ""
page_size = 0
max_visible_pages = -2
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.SourceURL != defaultSourceURL {
		t.Fatalf("SourceURL = %q, want %q", cfg.SourceURL, defaultSourceURL)
	}
	if cfg.PageSize != defaultPageSize || cfg.MaxVisiblePages != defaultMaxVisible {
		t.Fatalf("PageSize/MaxVisiblePages = %d/%d, want defaults", cfg.PageSize, cfg.MaxVisiblePages)
	}
	wantData, _ := expandPath(defaultDataPath)
	if cfg.DataPath != wantData {
		t.Fatalf("DataPath = %q, want %q", cfg.DataPath, wantData)
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`page_size = [`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := Load(path)
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
	}
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	clearEnv(t)
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`page_size = 25`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	t.Setenv(EnvPageSize, " 10 ")
	t.Setenv(EnvDataPath, "~/custom.yaml")
	t.Setenv(EnvSourceURL, "http://example.test/roll")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.PageSize != 10 {
		t.Fatalf("PageSize = %d, want 10", cfg.PageSize)
	}
	if cfg.DataPath != filepath.Join(home, "custom.yaml") {
		t.Fatalf("DataPath = %q, want %q", cfg.DataPath, filepath.Join(home, "custom.yaml"))
	}
	if cfg.SourceURL != "http://example.test/roll" {
		t.Fatalf("SourceURL = %q, want env value", cfg.SourceURL)
	}
}

func TestLoad_InvalidPageSizeEnvFails(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOME", t.TempDir())
	t.Setenv(EnvPageSize, "zero")

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil || !strings.Contains(err.Error(), EnvPageSize) {
		t.Fatalf("Load error = %v, want it to mention %s", err, EnvPageSize)
	}
}

// unsetEnv removes keys for the rest of the test so a .env file can set
// them; the original values come back on cleanup.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("Unsetenv(%s): %v", key, err)
		}
	}
}

func TestLoad_ReadsDotEnvFromWorkingDir(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOME", t.TempDir())
	unsetEnv(t, EnvPageSize, EnvUserAgent)

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("ROSTER_PAGE_SIZE=20\nROSTER_USER_AGENT=dotenv-agent\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	t.Chdir(dir)

	cfg, err := Load(filepath.Join(dir, "missing.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.PageSize != 20 {
		t.Fatalf("PageSize = %d, want 20 from .env", cfg.PageSize)
	}
	if cfg.UserAgent != "dotenv-agent" {
		t.Fatalf("UserAgent = %q, want value from .env", cfg.UserAgent)
	}
}

func TestLoad_MalformedDotEnvFails(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOME", t.TempDir())

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("ROSTER_PAGE_SIZE=\"20\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	t.Chdir(dir)

	_, err := Load(filepath.Join(dir, "missing.toml"))
	if err == nil || !strings.Contains(err.Error(), "load .env") {
		t.Fatalf("Load error = %v, want it to mention load .env", err)
	}
}

func TestLoad_MissingDotEnvIsIgnored(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)

	if _, err := Load(filepath.Join(dir, "missing.toml")); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandPath("~/a/b")
	if err != nil {
		t.Fatalf("ExpandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("ExpandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}

func TestLogPath_DefaultsWhenLogDirEmpty(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	var cfg Config
	got := cfg.LogPath()
	if !strings.HasPrefix(got, home) {
		t.Fatalf("LogPath = %q, want it under HOME %q", got, home)
	}
	if !strings.HasSuffix(got, filepath.FromSlash("/roster.log")) {
		t.Fatalf("LogPath = %q, want it to end with /roster.log", got)
	}
}
