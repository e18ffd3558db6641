// Package config provides configuration management for NordVPN Tray.
// It handles loading, saving, and updating the persisted settings.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"github.com/yllada/nordvpn-tray/common"
)

// Config represents the application configuration.
// All settings are persisted to a YAML file in the user's config directory.
type Config struct {
	// Binary is the nordvpn executable, looked up on PATH unless absolute.
	Binary string `yaml:"binary"`
	// StatusInterval is how often the tray refreshes the connection status.
	StatusInterval time.Duration `yaml:"status_interval"`
	// ShowNotifications enables desktop notifications for connection events.
	ShowNotifications bool `yaml:"show_notifications"`
	// DefaultCountry is the quick connect country; empty means fastest server.
	DefaultCountry string `yaml:"quick_connect,omitempty"`
	// Window is the last size of the settings window.
	Window WindowConfig `yaml:"window"`
	// Recent holds the last connected destinations, most recent first.
	Recent []LastConnection `yaml:"last_connected,omitempty"`

	path string
}

// WindowConfig stores the settings window size. Zero means unset.
type WindowConfig struct {
	Width  int `yaml:"width,omitempty"`
	Height int `yaml:"height,omitempty"`
}

// LastConnection is a destination connected to earlier.
type LastConnection struct {
	Country string `yaml:"country"`
	City    string `yaml:"city,omitempty"`
	Server  string `yaml:"server,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Binary:            common.DefaultBinary,
		StatusInterval:    common.StatusInterval,
		ShowNotifications: true,
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/nordvpn-tray/config.yaml.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, common.ConfigDirName, common.ConfigFileName)
}

// Load loads the configuration from the default path.
func Load() (*Config, error) {
	return LoadFrom(DefaultPath())
}

// LoadFrom loads the configuration from path.
// If the file doesn't exist, it creates one with default values.
func LoadFrom(path string) (*Config, error) {
	file, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		cfg := DefaultConfig()
		cfg.path = path
		if err := cfg.Save(); err != nil {
			return cfg, err
		}
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: error opening configuration: %w", common.ErrConfigLoad, err)
	}
	defer file.Close()

	cfg := DefaultConfig()
	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true) // Strict validation: reject unknown fields
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: error parsing configuration: %w", common.ErrConfigLoad, err)
	}

	cfg.path = path
	cfg.validate()
	return cfg, nil
}

// validate replaces out-of-range values with defaults.
func (c *Config) validate() {
	c.Binary = strings.TrimSpace(c.Binary)
	if c.Binary == "" {
		c.Binary = common.DefaultBinary
	}
	if c.StatusInterval < common.MinStatusInterval {
		c.StatusInterval = common.StatusInterval
	}
	if c.Window.Width < 0 || c.Window.Height < 0 {
		c.Window = WindowConfig{}
	}

	recent := make([]LastConnection, 0, len(c.Recent))
	for _, lc := range c.Recent {
		if strings.TrimSpace(lc.Country) == "" || containsConnection(recent, lc) {
			continue
		}
		recent = append(recent, lc)
	}
	if len(recent) > common.MaxLastConnected {
		recent = recent[:common.MaxLastConnected]
	}
	c.Recent = recent
}

// Path returns the file the configuration is saved to.
func (c *Config) Path() string {
	if c.path == "" {
		return DefaultPath()
	}
	return c.path
}

// Save saves the configuration to its file.
func (c *Config) Save() error {
	configPath := c.Path()

	if err := os.MkdirAll(filepath.Dir(configPath), 0700); err != nil {
		return fmt.Errorf("%w: error creating config directory: %w", common.ErrConfigSave, err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("%w: error serializing configuration: %w", common.ErrConfigSave, err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("%w: error saving configuration: %w", common.ErrConfigSave, err)
	}
	return nil
}

// QuickConnect returns the country used by quick connect, empty for the fastest server.
func (c *Config) QuickConnect() string {
	return c.DefaultCountry
}

// SetQuickConnect sets the quick connect country. Empty clears it.
func (c *Config) SetQuickConnect(country string) {
	c.DefaultCountry = strings.TrimSpace(country)
}

// Dimension returns the saved window size and whether one was saved.
func (c *Config) Dimension() (width, height int, ok bool) {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return 0, 0, false
	}
	return c.Window.Width, c.Window.Height, true
}

// SetDimension stores the window size, clamped to the minimum window size.
func (c *Config) SetDimension(width, height int) {
	c.Window = WindowConfig{
		Width:  max(width, common.MinWindowWidth),
		Height: max(height, common.MinWindowHeight),
	}
}

// LastConnected returns the recent destinations, most recent first.
func (c *Config) LastConnected() []LastConnection {
	return append([]LastConnection(nil), c.Recent...)
}

// AddLastConnected moves lc to the front of the recent list, dropping the
// oldest entry beyond common.MaxLastConnected.
func (c *Config) AddLastConnected(lc LastConnection) {
	recent := make([]LastConnection, 0, len(c.Recent)+1)
	recent = append(recent, lc)
	for _, existing := range c.Recent {
		if existing != lc {
			recent = append(recent, existing)
		}
	}
	if len(recent) > common.MaxLastConnected {
		recent = recent[:common.MaxLastConnected]
	}
	c.Recent = recent
}

func containsConnection(list []LastConnection, lc LastConnection) bool {
	for _, existing := range list {
		if existing == lc {
			return true
		}
	}
	return false
}
