package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// These tests mutate the process environment and therefore do not run in parallel.

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_DATA_HOME", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "cfg"))
	t.Setenv("DESIGNPLAY_CONFIG", filepath.Join(dir, "config.toml"))
	t.Chdir(dir)
	return dir
}

func TestLoadDefaults(t *testing.T) {
	dir := isolate(t)
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, DriverSQLite, cfg.Store.Driver)
	require.Equal(t, filepath.Join(dir, ".local", "share", "designplay", "designplay.db"), cfg.Store.Path)
	require.Equal(t, 24*time.Hour, cfg.Store.TTL)
	require.Equal(t, 0.75, cfg.UI.Scale)
	require.Equal(t, 240*time.Millisecond, cfg.UI.TrayCloseDelay)
	require.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFileEnvAndDotEnv(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`
[store]
driver = "file"
path = "/tmp/play.json"
ttl = "2h"

[ui]
theme = "dark"
tray_close_delay = "500ms"
`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("DESIGNPLAY_LOG_LEVEL=debug\n"), 0o644))
	t.Setenv("DESIGNPLAY_STORE_SESSION", "fixed")
	t.Cleanup(func() { _ = os.Unsetenv("DESIGNPLAY_LOG_LEVEL") })

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, DriverFile, cfg.Store.Driver)
	require.Equal(t, "/tmp/play.json", cfg.Store.Path)
	require.Equal(t, 2*time.Hour, cfg.Store.TTL)
	require.Equal(t, "fixed", cfg.Store.Session)
	require.Equal(t, "dark", cfg.UI.Theme)
	require.Equal(t, 500*time.Millisecond, cfg.UI.TrayCloseDelay)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	isolate(t)
	t.Setenv("DESIGNPLAY_STORE_DRIVER", "redis")
	_, err := Load()
	require.ErrorContains(t, err, "store.driver")
}

func TestValidate(t *testing.T) {
	ok := Config{
		Store: StoreConfig{Driver: DriverMemory},
		UI:    UIConfig{Scale: 0.75, TrayCloseDelay: time.Millisecond},
	}
	require.NoError(t, ok.Validate())

	bad := ok
	bad.UI.Theme = "sepia"
	require.Error(t, bad.Validate())

	bad = ok
	bad.Store.Driver = DriverFile
	require.Error(t, bad.Validate())

	bad = ok
	bad.UI.Scale = 0
	require.Error(t, bad.Validate())
}

func TestSaveRoundTrip(t *testing.T) {
	isolate(t)
	cfg, err := Load()
	require.NoError(t, err)
	cfg.Store.Driver = DriverMemory
	cfg.UI.TrayCloseDelay = time.Second
	require.NoError(t, Save(cfg))

	back, err := Load()
	require.NoError(t, err)
	require.Equal(t, cfg, back)
}
