package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:5000", cfg.ServerURL)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("server_url: https://gedo.example.com\ntimeout: 45s\nrequests_per_second: 4\n")
	require.NoError(t, os.WriteFile(path, data, 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://gedo.example.com", cfg.ServerURL)
	assert.Equal(t, 45*time.Second, cfg.Timeout)
	assert.Equal(t, 4.0, cfg.RequestsPerSecond)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server_url: https://file.example.com\n"), 0644))

	t.Setenv("GEDO_API_URL", "https://env.example.com")
	t.Setenv("GEDO_TIMEOUT", "90s")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://env.example.com", cfg.ServerURL)
	assert.Equal(t, 90*time.Second, cfg.Timeout)
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server_url: [unterminated"), 0644))

	_, err := Load(path)
	require.Error(t, err)
}
