package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(New())
	require.NoError(t, err)

	assert.False(t, cfg.Debug)
	assert.Equal(t, 8, cfg.Workers)
	assert.Empty(t, cfg.SettingsFile)
	assert.Equal(t, []string{"jpg", "jpeg", "png", "gif"}, cfg.Extensions)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reveal.yaml")
	yaml := "debug: true\nlog_file: /tmp/reveal.log\nworkers: 3\nextensions: [png]\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))

	v := New()
	require.NoError(t, ReadFile(v, path))

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "/tmp/reveal.log", cfg.LogFile)
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, []string{"png"}, cfg.Extensions)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("REVEAL_WORKERS", "2")
	t.Setenv("REVEAL_SETTINGS_FILE", "/tmp/s.json")

	cfg, err := Load(New())
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, "/tmp/s.json", cfg.SettingsFile)
}

func TestReadFileMissingExplicit(t *testing.T) {
	err := ReadFile(New(), filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadRejectsZeroWorkers(t *testing.T) {
	v := New()
	v.Set(KeyWorkers, 0)
	_, err := Load(v)
	assert.Error(t, err)
}
