package common

import "time"

// Application metadata.
const (
	// AppID is the unique identifier for the application.
	AppID = "com.github.yllada.nordvpntray"
	// AppName is the display name of the application.
	AppName = "NordVPN Tray"
	// ConfigDirName is the name of the configuration and data directories.
	ConfigDirName = "nordvpn-tray"
)

// File names used by the application.
const (
	ConfigFileName = "config.yaml"
	LogFileName    = "nordvpn-tray.log"
)

// External programs.
const (
	// DefaultBinary is the nordvpn CLI looked up on PATH.
	DefaultBinary = "nordvpn"
	// DaemonProcessName is the process name of the nordvpn daemon.
	DaemonProcessName = "nordvpnd"
)

// Default intervals and limits.
const (
	// StatusInterval is how often the tray refreshes the connection status.
	StatusInterval = 60 * time.Second
	// MinStatusInterval is the smallest poll interval accepted from the config file.
	MinStatusInterval = 5 * time.Second
	// MaxLastConnected is how many recent destinations are remembered.
	MaxLastConnected = 10
)

// UI constants.
const (
	// MinWindowWidth is the minimum settings window width.
	MinWindowWidth = 480
	// MinWindowHeight is the minimum settings window height.
	MinWindowHeight = 480
	// WindowMargin is the standard margin for window content.
	WindowMargin = 12
	// TrayIconSize is the size of the system tray icon.
	TrayIconSize = 22
)

// FastestLabel is the list entry that lets nordvpn pick the server.
const FastestLabel = "# fastest"
