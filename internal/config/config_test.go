package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"motionplay/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsWhenFileMissing(t *testing.T) {
	cfg, err := config.LoadConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.DefaultEndpoint, cfg.Bridge.Endpoint)
	assert.False(t, cfg.Settings.Debug)
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("settings:\n  debug: true\n"), 0644))

	cfg, err := config.LoadConfigFile(path)
	require.NoError(t, err)
	assert.True(t, cfg.Settings.Debug)
	assert.Equal(t, config.DefaultEndpoint, cfg.Bridge.Endpoint, "unset fields keep defaults")
}

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := config.New()
	cfg.Bridge.Endpoint = "ws://127.0.0.1:9900"
	cfg.Settings.Debug = true
	require.NoError(t, config.SaveConfig(cfg, path))

	loaded, err := config.LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.Bridge.Endpoint, loaded.Bridge.Endpoint)
	assert.Equal(t, cfg.Settings.Debug, loaded.Settings.Debug)
}

func TestValidateRejectsBadEndpoint(t *testing.T) {
	cfg := config.New()
	cfg.Bridge.Endpoint = "http://localhost:8765"
	assert.Error(t, cfg.Validate())

	cfg.Bridge.Endpoint = "ws://"
	assert.Error(t, cfg.Validate())

	cfg.Bridge.Endpoint = "wss://example.com/ws"
	assert.NoError(t, cfg.Validate())
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("bridge: ["), 0644))

	_, err := config.LoadConfigFile(path)
	assert.Error(t, err)
}
