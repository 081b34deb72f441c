package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewDefaults tests the defaults when no config file exists.
func TestNewDefaults(t *testing.T) {
	t.Setenv("PEGADA_HOME", t.TempDir())

	cfg := New()

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Empty(t, cfg.Logging.File)
	assert.Equal(t, "state.json", filepath.Base(cfg.StatePath))
}

// TestNewLoadsFile tests loading values from config.yaml.
func TestNewLoadsFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("PEGADA_HOME", dir)

	content := "logging:\n  level: debug\n  file: /tmp/pegada.log\nstatePath: /tmp/custom-state.json\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o600))

	cfg := New()

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "/tmp/pegada.log", cfg.Logging.File)
	assert.Equal(t, "/tmp/custom-state.json", cfg.StatePath)
}

// TestNewInvalidYAMLDegrades tests that a broken file yields defaults.
func TestNewInvalidYAMLDegrades(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("PEGADA_HOME", dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("{not yaml"), 0o600))

	cfg := New()

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, filepath.Join(dir, "state.json"), cfg.StatePath)
}

// TestSaveRoundTrip tests Save followed by New.
func TestSaveRoundTrip(t *testing.T) {
	t.Setenv("PEGADA_HOME", t.TempDir())

	cfg := New()
	cfg.Logging.Level = "warn"
	require.NoError(t, cfg.Save())

	reloaded := New()
	assert.Equal(t, "warn", reloaded.Logging.Level)
}

// TestAppDirOverride tests the PEGADA_HOME override.
func TestAppDirOverride(t *testing.T) {
	t.Setenv("PEGADA_HOME", "/custom/home")

	dir, err := AppDir()
	require.NoError(t, err)
	assert.Equal(t, "/custom/home", dir)
}
