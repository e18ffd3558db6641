package assets

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yllada/nordvpn-tray/common"
)

func TestGenerateIcon(t *testing.T) {
	states := []common.ConnectionState{
		common.StateConnected,
		common.StateDisconnected,
		common.StateConnecting,
		common.StateUnknown,
	}

	seen := map[string]bool{}
	for _, state := range states {
		t.Run(state.String(), func(t *testing.T) {
			data := GenerateIcon(state)
			require.NotEmpty(t, data)

			img, err := png.Decode(bytes.NewReader(data))
			require.NoError(t, err)
			assert.Equal(t, common.TrayIconSize, img.Bounds().Dx())
			assert.Equal(t, common.TrayIconSize, img.Bounds().Dy())

			assert.False(t, seen[string(data)], "each state should have its own icon")
			seen[string(data)] = true
		})
	}
}

func TestCache_GeneratesTrayIcons(t *testing.T) {
	c := NewCache(t.TempDir())

	data := c.StateIcon(common.StateConnected)
	require.NotEmpty(t, data)
	assert.Equal(t, GenerateIcon(common.StateConnected), data)

	// cached: same backing array
	again := c.StateIcon(common.StateConnected)
	assert.Same(t, &data[0], &again[0])
}

func TestCache_PrefersFiles(t *testing.T) {
	first, second := t.TempDir(), t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(second, IconConnected+".png"), []byte("second"), 0600))
	require.NoError(t, os.MkdirAll(filepath.Join(first, "flags"), 0700))
	require.NoError(t, os.WriteFile(filepath.Join(first, "flags", "de.png"), []byte("flag"), 0600))

	c := NewCache(first, second)

	assert.Equal(t, []byte("second"), c.Get(IconConnected))
	assert.Equal(t, []byte("flag"), c.Get(FlagName("DE")))

	path, ok := c.Path(FlagName("DE"))
	require.True(t, ok)
	assert.Equal(t, filepath.Join(first, "flags", "de.png"), path)
}

func TestCache_Missing(t *testing.T) {
	c := NewCache(t.TempDir())

	assert.Nil(t, c.Get("flags/zz"))
	assert.Nil(t, c.Get(""))
	_, ok := c.Path("flags/zz")
	assert.False(t, ok)
}

func TestIconName(t *testing.T) {
	assert.Equal(t, IconConnected, IconName(common.StateConnected))
	assert.Equal(t, IconDisconnected, IconName(common.StateDisconnected))
	assert.Equal(t, IconConnecting, IconName(common.StateConnecting))
	assert.Equal(t, IconUnknown, IconName(common.ConnectionState(42)))
}

func TestFlagName(t *testing.T) {
	assert.Equal(t, "flags/us", FlagName("US"))
	assert.Empty(t, FlagName(""))
}
