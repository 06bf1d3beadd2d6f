// ABOUTME: Tests for sync config persistence and env overrides.
// ABOUTME: Redirects XDG_CONFIG_HOME into a temp dir per test.
package sync

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Empty(t, cfg.Server)
	assert.Empty(t, cfg.UserID)
	assert.NotEmpty(t, cfg.DeviceID, "device id generated on first load")
	assert.False(t, cfg.IsConfigured())
}

func TestSaveAndLoadConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := &Config{
		Server:   "https://sync.example.com",
		UserID:   "u1",
		Token:    "tok",
		DeviceID: GenerateDeviceID(),
		AutoSync: true,
	}
	require.NoError(t, SaveConfig(cfg))

	loaded, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, cfg.Server, loaded.Server)
	assert.Equal(t, cfg.UserID, loaded.UserID)
	assert.Equal(t, cfg.DeviceID, loaded.DeviceID)
	assert.True(t, loaded.AutoSync)
	assert.True(t, loaded.IsConfigured())
}

func TestEnvOverridesConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	require.NoError(t, SaveConfig(&Config{Server: "https://old.example.com", UserID: "u1", Token: "tok"}))

	t.Setenv("FITTRACK_SYNC_SERVER", "https://override.example.com")
	t.Setenv("FITTRACK_SYNC_USER_ID", "u2")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "https://override.example.com", cfg.Server)
	assert.Equal(t, "u2", cfg.UserID)
	assert.Equal(t, "tok", cfg.Token)
}

func TestClearConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	require.NoError(t, SaveConfig(&Config{Server: "https://sync.example.com"}))
	require.NoError(t, ClearConfig())

	// Clearing a missing file is fine too.
	require.NoError(t, ClearConfig())
}
