package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yllada/nordvpn-tray/common"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "nordvpn", cfg.Binary)
	assert.Equal(t, 60*time.Second, cfg.StatusInterval)
	assert.True(t, cfg.ShowNotifications)
	assert.Empty(t, cfg.QuickConnect())
	assert.Empty(t, cfg.LastConnected())

	_, _, ok := cfg.Dimension()
	assert.False(t, ok)
}

func TestLoadFrom_CreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nordvpn-tray", "config.yaml")

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Binary, cfg.Binary)
	assert.FileExists(t, path)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	cfg.SetQuickConnect("Germany")
	cfg.SetDimension(800, 600)
	cfg.AddLastConnected(LastConnection{Country: "Germany", City: "Berlin"})
	cfg.AddLastConnected(LastConnection{Country: "United_States", Server: "123"})
	cfg.StatusInterval = 30 * time.Second
	require.NoError(t, cfg.Save())

	loaded, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "Germany", loaded.QuickConnect())
	assert.Equal(t, 30*time.Second, loaded.StatusInterval)

	w, h, ok := loaded.Dimension()
	require.True(t, ok)
	assert.Equal(t, 800, w)
	assert.Equal(t, 600, h)

	assert.Equal(t, []LastConnection{
		{Country: "United_States", Server: "123"},
		{Country: "Germany", City: "Berlin"},
	}, loaded.LastConnected())
}

func TestLoadFrom_RejectsUnknownFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("binary: nordvpn\ntheme: dark\n"), 0600))

	_, err := LoadFrom(path)
	assert.ErrorIs(t, err, common.ErrConfigLoad)
}

func TestLoadFrom_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0600))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, common.StatusInterval, cfg.StatusInterval)
}

func TestLoadFrom_Validates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `binary: "  "
status_interval: 1s
window:
  width: -5
  height: 300
last_connected:
  - country: Germany
  - country: ""
  - country: Germany
  - country: France
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0600))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "nordvpn", cfg.Binary)
	assert.Equal(t, common.StatusInterval, cfg.StatusInterval)
	_, _, ok := cfg.Dimension()
	assert.False(t, ok)
	assert.Equal(t, []LastConnection{{Country: "Germany"}, {Country: "France"}}, cfg.LastConnected())
}

func TestAddLastConnected_MoveToFrontAndCap(t *testing.T) {
	cfg := DefaultConfig()
	for i := 0; i < common.MaxLastConnected+3; i++ {
		cfg.AddLastConnected(LastConnection{Country: "Germany", Server: string(rune('a' + i))})
	}
	require.Len(t, cfg.LastConnected(), common.MaxLastConnected)

	again := cfg.LastConnected()[4]
	cfg.AddLastConnected(again)

	recent := cfg.LastConnected()
	assert.Len(t, recent, common.MaxLastConnected)
	assert.Equal(t, again, recent[0])

	seen := map[LastConnection]bool{}
	for _, lc := range recent {
		assert.False(t, seen[lc], "duplicate entry %v", lc)
		seen[lc] = true
	}
}

func TestSetQuickConnect_Clear(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SetQuickConnect("Japan")
	assert.Equal(t, "Japan", cfg.QuickConnect())

	cfg.SetQuickConnect("")
	assert.Empty(t, cfg.QuickConnect())
}

func TestSetDimension_ClampsToMinimum(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SetDimension(100, 900)

	w, h, ok := cfg.Dimension()
	require.True(t, ok)
	assert.Equal(t, common.MinWindowWidth, w)
	assert.Equal(t, 900, h)
}

func TestLastConnected_ReturnsCopy(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AddLastConnected(LastConnection{Country: "Spain"})

	recent := cfg.LastConnected()
	recent[0].Country = "Portugal"
	assert.Equal(t, "Spain", cfg.LastConnected()[0].Country)
}
