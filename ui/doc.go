// Package ui provides the tray icon and the settings window of NordVPN Tray.
//
// The tray menu (fyne.io/systray) shows the connection status and offers
// Quick Connect, Disconnect and the last connected destinations. The
// settings window (GTK4 through gotk4) lists countries and cities to
// connect to, the quick connect country and the nordvpn settings.
//
// # Thread Safety
//
// All UI state lives on the GTK main thread. Command callbacks are
// dispatched there by the vpn.Runner, and systray clicks and poller ticks
// are posted with glib.IdleAdd.
//
// # File Organization
//
//   - app.go: Application lifecycle and the connect actions
//   - tray.go: System tray indicator
//   - settings_window.go: Settings window and account status bar
//   - connection_tab.go: Countries, cities and server selection
//   - settings_tab.go: Quick connect country and nordvpn options
//   - styles.go: CSS styling
package ui
