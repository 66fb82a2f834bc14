package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolateHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, key := range []string{EnvBaseURL, EnvTimeoutMs, EnvDBPath, EnvLogLevel, EnvLogFile} {
		t.Setenv(key, "")
	}
	return home
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	isolateHome(t)

	cfg := Load()
	assert.Equal(t, "https://ubaya.xyz/react/160421125", cfg.BaseURL)
	assert.Equal(t, 15000, cfg.TimeoutMs)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadMergesFile(t *testing.T) {
	home := isolateHome(t)

	dir := filepath.Join(home, ".config", "komik")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	yaml := "base_url: https://staging.example.com\ntimeout_ms: 3000\nlog_level: DEBUG\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600))

	cfg := Load()
	assert.Equal(t, "https://staging.example.com", cfg.BaseURL)
	assert.Equal(t, 3000, cfg.TimeoutMs)
	assert.Equal(t, "debug", cfg.LogLevel)
	// Untouched fields keep their defaults.
	assert.Contains(t, cfg.DBPath, "komik.db")
}

func TestEnvOverridesFile(t *testing.T) {
	home := isolateHome(t)

	dir := filepath.Join(home, ".config", "komik")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"),
		[]byte("base_url: https://from-file.example.com\n"), 0o600))

	t.Setenv(EnvBaseURL, "https://from-env.example.com")
	t.Setenv(EnvTimeoutMs, "500")

	cfg := Load()
	assert.Equal(t, "https://from-env.example.com", cfg.BaseURL)
	assert.Equal(t, 500, cfg.TimeoutMs)
}

func TestEnvIgnoresUnparseableTimeout(t *testing.T) {
	isolateHome(t)
	t.Setenv(EnvTimeoutMs, "not-a-number")

	cfg := Load()
	assert.Equal(t, 15000, cfg.TimeoutMs)
}

func TestLoadIgnoresCorruptFile(t *testing.T) {
	home := isolateHome(t)

	dir := filepath.Join(home, ".config", "komik")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"),
		[]byte("{{{not yaml"), 0o600))

	cfg := Load()
	assert.Equal(t, Defaults().BaseURL, cfg.BaseURL)
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	isolateHome(t)

	cfg := Defaults()
	cfg.BaseURL = "https://saved.example.com"
	cfg.TimeoutMs = 1234
	require.NoError(t, Save(cfg))

	loaded := Load()
	assert.Equal(t, "https://saved.example.com", loaded.BaseURL)
	assert.Equal(t, 1234, loaded.TimeoutMs)
}

func TestTimeout(t *testing.T) {
	cfg := Config{TimeoutMs: 2500}
	assert.Equal(t, 2500*time.Millisecond, cfg.Timeout())

	// A zero or negative value falls back to the default.
	assert.Equal(t, 15*time.Second, Config{}.Timeout())
	assert.Equal(t, 15*time.Second, Config{TimeoutMs: -1}.Timeout())
}
