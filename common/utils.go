package common

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// GetConfigDir returns the path to the application configuration directory.
// It creates the directory if it doesn't exist.
func GetConfigDir() (string, error) {
	configDir := filepath.Join(xdg.ConfigHome, ConfigDirName)
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return "", WrapError(err, "failed to create config directory")
	}
	return configDir, nil
}

// GetDataDir returns the path to the application data directory.
// It creates the directory if it doesn't exist.
func GetDataDir() (string, error) {
	dataDir := filepath.Join(xdg.DataHome, ConfigDirName)
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return "", WrapError(err, "failed to create data directory")
	}
	return dataDir, nil
}

// FileExists checks if a file exists at the given path.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// DisplayName turns a nordvpn identifier such as "United_States" into
// "United States".
func DisplayName(name string) string {
	return strings.ReplaceAll(name, "_", " ")
}
