// ABOUTME: Sync configuration: server, user identity, token, device id.
// ABOUTME: Persisted as JSON under XDG config; env vars override on load.
package sync

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v6"
	"github.com/oklog/ulid/v2"
)

// Config stores sync settings. UserID acts as the authenticated identity;
// when empty, the sync engine treats every cycle as a no-op.
type Config struct {
	Server   string `json:"server" env:"FITTRACK_SYNC_SERVER"`
	UserID   string `json:"user_id" env:"FITTRACK_SYNC_USER_ID"`
	Token    string `json:"token" env:"FITTRACK_SYNC_TOKEN"`
	DeviceID string `json:"device_id"`
	AutoSync bool   `json:"auto_sync"`
}

// ConfigDir returns the XDG config directory for fittrack.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "fittrack")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "fittrack")
}

// ConfigPath returns the path to the sync config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "sync.json")
}

// LoadConfig loads sync config from disk, applies env overrides, and fills
// in a device id on first use.
func LoadConfig() (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(ConfigPath())
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse sync config: %w", err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse sync env: %w", err)
	}

	if cfg.DeviceID == "" {
		cfg.DeviceID = GenerateDeviceID()
	}
	return &cfg, nil
}

// SaveConfig persists sync config to disk.
func SaveConfig(cfg *Config) error {
	if err := os.MkdirAll(ConfigDir(), 0750); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(ConfigPath(), data, 0600)
}

// IsConfigured returns true if sync is fully configured.
func (c *Config) IsConfigured() bool {
	return c.Server != "" && c.UserID != "" && c.Token != ""
}

// GenerateDeviceID creates a new unique device ID.
func GenerateDeviceID() string {
	return ulid.Make().String()
}

// ClearConfig removes the sync config file.
func ClearConfig() error {
	path := ConfigPath()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	return os.Remove(path)
}
