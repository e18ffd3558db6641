package ui

import (
	"fmt"

	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/yllada/nordvpn-tray/common"
	"github.com/yllada/nordvpn-tray/vpn"
)

// SettingsWindow is the window opened from the tray. It is hidden, not
// destroyed, when closed.
type SettingsWindow struct {
	app    *Application
	window *gtk.ApplicationWindow

	connectTab  *ConnectionTab
	settingsTab *SettingsTab
	statusLabel *gtk.Label

	countriesLoaded bool
}

// NewSettingsWindow creates the settings window and starts loading the
// account. Countries and settings load on Present.
func NewSettingsWindow(app *Application) *SettingsWindow {
	sw := &SettingsWindow{app: app}

	sw.window = gtk.NewApplicationWindow(app.app)
	sw.window.SetTitle("NordVPN tray")
	sw.window.SetHideOnClose(true)
	sw.window.SetSizeRequest(common.MinWindowWidth, common.MinWindowHeight)
	if width, height, ok := app.cfg.Dimension(); ok {
		sw.window.SetDefaultSize(width, height)
	}
	sw.window.ConnectCloseRequest(func() bool {
		sw.saveDimension()
		return false
	})

	header := gtk.NewHeaderBar()
	sw.window.SetTitlebar(header)

	sw.connectTab = NewConnectionTab(app)
	sw.settingsTab = NewSettingsTab(app)

	notebook := gtk.NewNotebook()
	notebook.SetVExpand(true)
	notebook.AppendPage(sw.connectTab.Widget(), tabLabel("network-transmit-symbolic", "Connect"))
	notebook.AppendPage(sw.settingsTab.Widget(), tabLabel("preferences-system-symbolic", "Settings"))

	mainBox := gtk.NewBox(gtk.OrientationVertical, 0)
	mainBox.Append(notebook)
	mainBox.Append(sw.createStatusBar())
	sw.window.SetChild(mainBox)

	sw.loadAccount()

	return sw
}

func tabLabel(iconName, text string) *gtk.Box {
	box := gtk.NewBox(gtk.OrientationHorizontal, 6)
	box.Append(gtk.NewImageFromIconName(iconName))
	box.Append(gtk.NewLabel(text))
	return box
}

// createStatusBar creates the bottom bar holding the account summary.
func (sw *SettingsWindow) createStatusBar() *gtk.Box {
	bar := gtk.NewBox(gtk.OrientationHorizontal, 6)
	bar.AddCSSClass("status-bar")
	bar.SetMarginTop(6)
	bar.SetMarginBottom(6)
	bar.SetMarginStart(12)
	bar.SetMarginEnd(12)

	sw.statusLabel = gtk.NewLabel("")
	sw.statusLabel.SetHExpand(true)
	sw.statusLabel.SetXAlign(1)
	sw.statusLabel.AddCSSClass("dim-label")
	bar.Append(sw.statusLabel)
	return bar
}

func (sw *SettingsWindow) loadAccount() {
	sw.app.client.Account(
		func(account vpn.Account) {
			sw.statusLabel.SetText(account.String())
		},
		func(err error) {
			common.LogError("Load account failed: %v", err)
			sw.statusLabel.SetText(fmt.Sprintf("Load account failed: %s", err))
		},
	)
}

// loadCountries fills the country lists of both tabs.
func (sw *SettingsWindow) loadCountries() {
	sw.app.client.Countries(
		func(countries []vpn.Country) {
			sw.countriesLoaded = true
			sw.connectTab.SetCountries(countries)
			sw.settingsTab.SetCountries(countries)
		},
		func(err error) {
			sw.app.setError(fmt.Sprintf("Load countries failed: %s", err))
		},
	)
}

func (sw *SettingsWindow) saveDimension() {
	sw.app.cfg.SetDimension(sw.window.Width(), sw.window.Height())
	if err := sw.app.cfg.Save(); err != nil {
		common.LogError("Failed to save window size: %v", err)
	}
}

// Render shows the connection status and the last error.
func (sw *SettingsWindow) Render(status *vpn.Status, connecting bool, errMsg string) {
	sw.connectTab.Render(status, connecting)
	sw.connectTab.SetError(errMsg)
}

// Present shows the window and reloads the settings. The countries are
// loaded until a load succeeds.
func (sw *SettingsWindow) Present() {
	if !sw.countriesLoaded {
		sw.loadCountries()
	}
	sw.settingsTab.Load()
	sw.window.Present()
}
