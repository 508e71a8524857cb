package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "reconciler.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
api:
  base_url: http://localhost:8080
  token: abc123
reconciler:
  interval: 30s
search:
  window: 200ms
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", cfg.API.BaseURL)
	assert.Equal(t, "abc123", cfg.API.Token)

	interval, err := cfg.interval()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, interval)

	window, err := cfg.window()
	require.NoError(t, err)
	assert.Equal(t, 200*time.Millisecond, window)
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfig(t, `
api:
  base_url: http://localhost:8080
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	interval, err := cfg.interval()
	require.NoError(t, err)
	assert.Zero(t, interval)

	window, err := cfg.window()
	require.NoError(t, err)
	assert.Zero(t, window)
}

func TestLoadConfigRequiresBaseURL(t *testing.T) {
	path := writeConfig(t, `
reconciler:
  interval: 60s
`)

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "api.base_url")
}

func TestLoadConfigTokenFromEnv(t *testing.T) {
	t.Setenv("LACARTA_API_TOKEN", "env-token")
	path := writeConfig(t, `
api:
  base_url: http://localhost:8080
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "env-token", cfg.API.Token)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
