// Package assets loads and caches the images shown by the tray and the
// settings window.
package assets

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/xdg"

	"github.com/yllada/nordvpn-tray/common"
)

// Names of the tray icons; an icon theme may override them with
// <name>.png in one of the search directories.
const (
	IconConnected    = "tray-connected"
	IconDisconnected = "tray-disconnected"
	IconConnecting   = "tray-connecting"
	IconUnknown      = "tray-unknown"
)

// IconName returns the tray icon name for a connection state.
func IconName(state common.ConnectionState) string {
	switch state {
	case common.StateConnected:
		return IconConnected
	case common.StateDisconnected:
		return IconDisconnected
	case common.StateConnecting:
		return IconConnecting
	default:
		return IconUnknown
	}
}

// FlagName returns the icon name of a country flag, e.g. "flags/de".
func FlagName(code string) string {
	if code == "" {
		return ""
	}
	return "flags/" + strings.ToLower(code)
}

// Cache loads PNG icons from a list of directories on first use and keeps
// them in memory. Tray icons missing from disk are generated.
type Cache struct {
	mu    sync.Mutex
	dirs  []string
	icons map[string][]byte
	paths map[string]string
}

// DefaultDirs returns the icon search path: the user data dir first, then
// the system data dirs.
func DefaultDirs() []string {
	dirs := []string{filepath.Join(xdg.DataHome, common.ConfigDirName, "icons")}
	for _, dir := range xdg.DataDirs {
		dirs = append(dirs, filepath.Join(dir, common.ConfigDirName, "icons"))
	}
	return dirs
}

// NewCache creates a cache searching dirs in order.
func NewCache(dirs ...string) *Cache {
	return &Cache{
		dirs:  dirs,
		icons: make(map[string][]byte),
		paths: make(map[string]string),
	}
}

// Path returns the file backing name, if one exists.
func (c *Cache) Path(name string) (string, bool) {
	if name == "" {
		return "", false
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lookupLocked(name)
}

func (c *Cache) lookupLocked(name string) (string, bool) {
	if path, ok := c.paths[name]; ok {
		return path, path != ""
	}
	for _, dir := range c.dirs {
		path := filepath.Join(dir, filepath.FromSlash(name)+".png")
		if common.FileExists(path) {
			c.paths[name] = path
			return path, true
		}
	}
	c.paths[name] = ""
	return "", false
}

// Get returns the PNG bytes of name, or nil when it cannot be found.
func (c *Cache) Get(name string) []byte {
	if name == "" {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if data, ok := c.icons[name]; ok {
		return data
	}

	var data []byte
	if path, ok := c.lookupLocked(name); ok {
		var err error
		if data, err = os.ReadFile(path); err != nil {
			common.LogWarn("Failed to read icon %s: %v", path, err)
			data = nil
		}
	}
	if data == nil {
		data = generated(name)
	}
	c.icons[name] = data
	return data
}

// StateIcon returns the tray icon of a connection state.
func (c *Cache) StateIcon(state common.ConnectionState) []byte {
	return c.Get(IconName(state))
}

func generated(name string) []byte {
	switch name {
	case IconConnected:
		return GenerateIcon(common.StateConnected)
	case IconDisconnected:
		return GenerateIcon(common.StateDisconnected)
	case IconConnecting:
		return GenerateIcon(common.StateConnecting)
	case IconUnknown:
		return GenerateIcon(common.StateUnknown)
	}
	return nil
}
