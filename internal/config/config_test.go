package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeConfig_Defaults(t *testing.T) {
	// Run from an empty directory so no stray config file is picked up.
	chdir(t, t.TempDir())

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.True(t, cfg.AI.Enabled)
	assert.Equal(t, "gemini-2.5-flash", cfg.AI.Model)
	assert.Equal(t, 60, cfg.AI.TimeoutSeconds)
	assert.Equal(t, "text", cfg.Report.Format)
}

func TestInitializeConfig_FromFile(t *testing.T) {
	dir := t.TempDir()
	content := `
log:
  level: debug
  format: json
ai:
  enabled: false
report:
  format: json
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0600))
	chdir(t, dir)

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.False(t, cfg.AI.Enabled)
	assert.Equal(t, "json", cfg.Report.Format)
}

func TestInitializeConfig_InvalidReportFormat(t *testing.T) {
	dir := t.TempDir()
	content := "report:\n  format: xml\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0600))
	chdir(t, dir)

	_, err := InitializeConfig()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported report format")
}

func TestInitializeConfig_APIKeyFromEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("GEMINI_API_KEY", "test-key-123")

	cfg, err := InitializeConfig()
	require.NoError(t, err)
	assert.Equal(t, "test-key-123", cfg.AI.APIKey)
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
