package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("OTEL_SERVICE_NAME", "")

	cfg, err := Load(Options{})
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "simplecalc", cfg.ServiceName)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.True(t, cfg.Telemetry.Enabled)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
}

func TestLoadFromFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeFile(t, dir, "simplecalc.yaml", `
addr: ":9090"
log:
  level: debug
telemetry:
  enabled: false
shutdown_timeout: 2s
`)
	t.Setenv("SIMPLECALC_ADDR", ":7070")

	cfg, err := Load(Options{})
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.Addr, "environment overrides file")
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.False(t, cfg.Telemetry.Enabled)
	assert.Equal(t, 2*time.Second, cfg.ShutdownTimeout)
}

func TestLoadDotEnvDoesNotOverrideEnvironment(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeFile(t, dir, ".env", "SIMPLECALC_LOG_LEVEL=warn\nSIMPLECALC_SERVICE_NAME=from-dotenv\n")
	t.Setenv("SIMPLECALC_LOG_LEVEL", "error")
	t.Setenv("SIMPLECALC_SERVICE_NAME", "")
	os.Unsetenv("SIMPLECALC_SERVICE_NAME")

	cfg, err := Load(Options{})
	require.NoError(t, err)

	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, "from-dotenv", cfg.ServiceName)
}

func TestLoadExplicitFileMustExist(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := Load(Options{ConfigFile: "missing.yaml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}

func TestLoadRejectsInvalidSettings(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := writeFile(t, dir, "bad.yaml", `
addr: ""
log:
  level: loud
shutdown_timeout: 0s
`)

	_, err := Load(Options{ConfigFile: path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "addr must not be empty")
	assert.Contains(t, err.Error(), "log.level")
	assert.Contains(t, err.Error(), "shutdown_timeout must be positive")
}

func TestValidate(t *testing.T) {
	cfg := Config{
		Addr:            ":8080",
		ServiceName:     "svc",
		Log:             LogConfig{Level: "info"},
		ShutdownTimeout: time.Second,
	}
	assert.NoError(t, cfg.Validate())

	cfg.ServiceName = ""
	assert.ErrorContains(t, cfg.Validate(), "service_name")
}
