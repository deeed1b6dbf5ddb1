package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/echo-launcher/echolauncher/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.NotEmpty(t, cfg.Settings.GameDir)
	assert.Equal(t, DefaultHTTPTimeout, cfg.Settings.HTTPTimeout)
	assert.Equal(t, DefaultLogLevel, cfg.Settings.LogLevel)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigFillsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("settings:\n  game_dir: /srv/game\n  concurrency: 8\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/game", cfg.Settings.GameDir)
	assert.Equal(t, 8, cfg.Settings.Concurrency)
	assert.Equal(t, DefaultLogLevel, cfg.Settings.LogLevel)
}

func TestLoadConfigMalformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("settings: ["), 0o644))

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrConfigParse)
}

func TestLoadConfigOrDefault(t *testing.T) {
	cfg, err := LoadConfigOrDefault(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultHTTPTimeout, cfg.Settings.HTTPTimeout)
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.Settings.GameDir = "/srv/game"
	cfg.Settings.Concurrency = 16
	cfg.Settings.HTTPTimeout = 10 * time.Second
	require.NoError(t, cfg.Save(path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.Settings, loaded.Settings)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "negative timeout", mutate: func(c *Config) { c.Settings.HTTPTimeout = -time.Second }},
		{name: "negative concurrency", mutate: func(c *Config) { c.Settings.Concurrency = -1 }},
		{name: "empty game dir", mutate: func(c *Config) { c.Settings.GameDir = "" }},
		{name: "bad log level", mutate: func(c *Config) { c.Settings.LogLevel = "loud" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, errors.ErrConfigValidation)
		})
	}
}
