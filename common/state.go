package common

import "strings"

// ConnectionState is the coarse state of the VPN as shown in the tray.
type ConnectionState int

const (
	StateUnknown ConnectionState = iota
	StateDisconnected
	StateConnecting
	StateConnected
)

// String returns a human-readable state string.
func (s ConnectionState) String() string {
	switch s {
	case StateDisconnected:
		return "Disconnected"
	case StateConnecting:
		return "Connecting..."
	case StateConnected:
		return "Connected"
	default:
		return "Unknown"
	}
}

// ParseConnectionState maps the status text printed by nordvpn to a state.
func ParseConnectionState(status string) ConnectionState {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "connected":
		return StateConnected
	case "disconnected":
		return StateDisconnected
	case "connecting", "reconnecting":
		return StateConnecting
	default:
		return StateUnknown
	}
}

// Notifier shows desktop notifications for connection events.
type Notifier interface {
	Connected(destination string)
	Disconnected()
	Error(title, message string)
}
