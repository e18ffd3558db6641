package ui

import (
	"fyne.io/systray"
	"github.com/yllada/nordvpn-tray/assets"
	"github.com/yllada/nordvpn-tray/common"
	"github.com/yllada/nordvpn-tray/config"
	"github.com/yllada/nordvpn-tray/vpn"
)

// TrayIndicator manages the system tray icon and menu.
//
// Menu items are created on the systray goroutine. Every other method runs
// on the GTK main thread and is a no-op until the menu is ready.
type TrayIndicator struct {
	app   *Application
	ready bool

	errorItem        *systray.MenuItem
	statusItem       *systray.MenuItem
	quickConnectItem *systray.MenuItem
	disconnectItem   *systray.MenuItem
	lastMenu         *systray.MenuItem
	lastItems        []*systray.MenuItem
	lastTargets      []vpn.Target
}

// NewTrayIndicator creates a new system tray indicator.
func NewTrayIndicator(app *Application) *TrayIndicator {
	return &TrayIndicator{app: app}
}

// Run starts the system tray indicator.
// This should be called from a goroutine as it blocks.
func (t *TrayIndicator) Run() {
	systray.Run(t.onReady, t.onExit)
}

// onReady is called when the systray is ready.
func (t *TrayIndicator) onReady() {
	systray.SetIcon(t.app.icons.StateIcon(common.StateUnknown))
	systray.SetTitle(common.AppName)
	systray.SetTooltip("NordVPN")

	t.errorItem = systray.AddMenuItem("", "Last error")
	t.errorItem.Disable()
	t.errorItem.Hide()

	t.statusItem = systray.AddMenuItem("Loading...", "Current VPN status")
	t.statusItem.Disable()

	systray.AddSeparator()

	t.quickConnectItem = systray.AddMenuItem("Quick Connect", "Connect to the quick connect country")
	t.onClick(t.quickConnectItem, func() { t.app.quickConnect() })

	t.disconnectItem = systray.AddMenuItem("Disconnect", "Disconnect from VPN")
	t.onClick(t.disconnectItem, func() { t.app.disconnect() })

	// systray cannot remove items, so the submenu holds a fixed set of
	// hidden entries that RenderLastConnected fills in.
	t.lastMenu = systray.AddMenuItem("Last connected", "Recent destinations")
	t.lastItems = make([]*systray.MenuItem, common.MaxLastConnected)
	for i := range t.lastItems {
		item := t.lastMenu.AddSubMenuItem("", "")
		item.Hide()
		t.lastItems[i] = item
		t.onClick(item, func() { t.connectLast(i) })
	}

	systray.AddSeparator()

	settingsItem := systray.AddMenuItem("Settings", "Open the settings window")
	t.onClick(settingsItem, func() { t.app.openSettings() })

	exitItem := systray.AddMenuItem("Exit", "Close NordVPN Tray")
	t.onClick(exitItem, func() { t.app.quit() })

	mainThread(func() {
		t.ready = true
		t.app.render()
		t.app.renderLastConnected()
	})
}

// onClick runs f on the main thread for every click of item.
func (t *TrayIndicator) onClick(item *systray.MenuItem, f func()) {
	go func() {
		for range item.ClickedCh {
			mainThread(f)
		}
	}()
}

// onExit is called when the systray is about to exit.
func (t *TrayIndicator) onExit() {
	common.LogInfo("Tray indicator cleanup completed")
}

func (t *TrayIndicator) connectLast(i int) {
	if i < len(t.lastTargets) {
		t.app.connect(t.lastTargets[i])
	}
}

// Render updates the icon, the status line, the error line and the
// enabled state of the connect actions.
func (t *TrayIndicator) Render(status *vpn.Status, loading, connecting bool, errMsg string) {
	if !t.ready {
		return
	}

	state := common.StateUnknown
	text := "Loading..."
	switch {
	case connecting && status != nil:
		state = common.StateConnecting
		text = status.Status
	case loading:
	case status != nil:
		state = status.State()
		text = status.Summary()
	}
	systray.SetIcon(t.app.icons.StateIcon(state))
	systray.SetTooltip("NordVPN - " + state.String())
	t.statusItem.SetTitle(text)

	if errMsg != "" {
		t.errorItem.SetTitle(errMsg)
		t.errorItem.Show()
	} else {
		t.errorItem.Hide()
	}

	t.setEnabled(t.quickConnectItem, !connecting)
	t.setEnabled(t.disconnectItem, !connecting)
	for _, item := range t.lastItems {
		t.setEnabled(item, !connecting)
	}
}

// RenderLastConnected fills the last connected submenu.
func (t *TrayIndicator) RenderLastConnected(recent []config.LastConnection, connecting bool) {
	if !t.ready {
		return
	}

	t.lastTargets = t.lastTargets[:0]
	for i, item := range t.lastItems {
		if i >= len(recent) {
			item.Hide()
			continue
		}
		target := vpn.Target(recent[i])
		t.lastTargets = append(t.lastTargets, target)
		item.SetTitle(target.Label())
		if code, ok := vpn.CountryCode(target.Country); ok {
			if icon := t.app.icons.Get(assets.FlagName(code)); icon != nil {
				item.SetIcon(icon)
			}
		}
		t.setEnabled(item, !connecting)
		item.Show()
	}

	if len(recent) == 0 {
		t.lastMenu.Disable()
	} else {
		t.lastMenu.Enable()
	}
}

func (t *TrayIndicator) setEnabled(item *systray.MenuItem, enabled bool) {
	if enabled {
		item.Enable()
	} else {
		item.Disable()
	}
}
