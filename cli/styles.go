package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/yllada/nordvpn-tray/common"
	"github.com/yllada/nordvpn-tray/vpn"
)

type styles struct {
	key   lipgloss.Style
	ok    lipgloss.Style
	bad   lipgloss.Style
	warn  lipgloss.Style
	muted lipgloss.Style
}

func newStyles(styled bool) styles {
	if !styled {
		plain := lipgloss.NewStyle()
		return styles{key: plain, ok: plain, bad: plain, warn: plain, muted: plain}
	}
	return styles{
		key:   lipgloss.NewStyle().Bold(true),
		ok:    lipgloss.NewStyle().Foreground(lipgloss.Color("#50fa7b")),
		bad:   lipgloss.NewStyle().Foreground(lipgloss.Color("#ff5555")).Bold(true),
		warn:  lipgloss.NewStyle().Foreground(lipgloss.Color("#ffb86c")),
		muted: lipgloss.NewStyle().Foreground(lipgloss.Color("#6272a4")),
	}
}

func (s styles) state(state common.ConnectionState) lipgloss.Style {
	switch state {
	case common.StateConnected:
		return s.ok
	case common.StateConnecting:
		return s.warn
	case common.StateDisconnected:
		return s.bad
	default:
		return s.muted
	}
}

func (s styles) option(value string) lipgloss.Style {
	if vpn.IsEnabled(value) {
		return s.ok
	}
	return s.muted
}
