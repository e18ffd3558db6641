package ui

import (
	"fmt"
	"strings"

	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/yllada/nordvpn-tray/assets"
	"github.com/yllada/nordvpn-tray/common"
	"github.com/yllada/nordvpn-tray/vpn"
)

// ConnectionTab lists countries and cities and connects to them.
type ConnectionTab struct {
	app *Application
	box *gtk.Box

	statusLabel     *gtk.Label
	errorRow        *gtk.Box
	errorLabel      *gtk.Label
	quickConnectBtn *gtk.Button
	connectBtn      *gtk.Button
	disconnectBtn   *gtk.Button
	countriesList   *gtk.ListBox
	citiesList      *gtk.ListBox
	serverEntry     *gtk.Entry

	countries  []vpn.Country
	cities     []string
	selected   string
	connecting bool
	// populating suppresses selection handling while a list is rebuilt.
	populating bool
}

// NewConnectionTab creates the Connect tab.
func NewConnectionTab(app *Application) *ConnectionTab {
	ct := &ConnectionTab{app: app}

	ct.box = gtk.NewBox(gtk.OrientationVertical, 6)
	ct.box.SetMarginTop(common.WindowMargin)
	ct.box.SetMarginBottom(common.WindowMargin)
	ct.box.SetMarginStart(common.WindowMargin)
	ct.box.SetMarginEnd(common.WindowMargin)

	// Status and quick connect
	top := gtk.NewBox(gtk.OrientationHorizontal, 12)
	ct.statusLabel = gtk.NewLabel("Loading...")
	ct.statusLabel.SetXAlign(0)
	ct.statusLabel.SetHExpand(true)
	ct.statusLabel.SetWrap(true)
	ct.statusLabel.SetSelectable(true)
	top.Append(ct.statusLabel)

	ct.quickConnectBtn = gtk.NewButtonWithLabel("Quick Connect")
	ct.quickConnectBtn.SetVAlign(gtk.AlignStart)
	ct.quickConnectBtn.AddCSSClass("suggested-action")
	ct.quickConnectBtn.ConnectClicked(app.quickConnect)
	top.Append(ct.quickConnectBtn)
	ct.box.Append(top)

	ct.errorRow = gtk.NewBox(gtk.OrientationHorizontal, 6)
	errorIcon := gtk.NewImageFromIconName("dialog-error-symbolic")
	ct.errorRow.Append(errorIcon)
	ct.errorLabel = gtk.NewLabel("")
	ct.errorLabel.SetXAlign(0)
	ct.errorLabel.SetWrap(true)
	ct.errorLabel.AddCSSClass("status-error")
	ct.errorRow.Append(ct.errorLabel)
	ct.errorRow.SetVisible(false)
	ct.box.Append(ct.errorRow)

	// Countries and cities
	lists := gtk.NewBox(gtk.OrientationHorizontal, 6)
	lists.SetHomogeneous(true)
	lists.SetVExpand(true)

	ct.countriesList = gtk.NewListBox()
	ct.countriesList.SetSelectionMode(gtk.SelectionSingle)
	ct.countriesList.ConnectRowSelected(ct.onCountrySelected)
	lists.Append(scrolled(ct.countriesList))

	ct.citiesList = gtk.NewListBox()
	ct.citiesList.SetSelectionMode(gtk.SelectionSingle)
	lists.Append(scrolled(ct.citiesList))
	ct.box.Append(lists)

	// Server number
	serverRow := gtk.NewBox(gtk.OrientationHorizontal, 10)
	serverRow.Append(gtk.NewLabel("Server #"))
	ct.serverEntry = gtk.NewEntry()
	ct.serverEntry.SetPlaceholderText("123")
	ct.serverEntry.SetInputPurpose(gtk.InputPurposeDigits)
	ct.serverEntry.SetHExpand(true)
	ct.serverEntry.ConnectActivate(ct.onConnectClicked)
	serverRow.Append(ct.serverEntry)
	ct.box.Append(serverRow)

	// Actions
	buttons := gtk.NewBox(gtk.OrientationHorizontal, 10)
	buttons.SetHAlign(gtk.AlignEnd)

	ct.disconnectBtn = gtk.NewButtonWithLabel("Disconnect")
	ct.disconnectBtn.ConnectClicked(app.disconnect)
	buttons.Append(ct.disconnectBtn)

	ct.connectBtn = gtk.NewButtonWithLabel("Connect")
	ct.connectBtn.AddCSSClass("connect-button")
	ct.connectBtn.ConnectClicked(ct.onConnectClicked)
	buttons.Append(ct.connectBtn)
	ct.box.Append(buttons)

	ct.updateButtons()
	return ct
}

func scrolled(child gtk.Widgetter) *gtk.ScrolledWindow {
	sw := gtk.NewScrolledWindow()
	sw.SetPolicy(gtk.PolicyNever, gtk.PolicyAutomatic)
	sw.SetVExpand(true)
	sw.SetChild(child)
	return sw
}

// Widget returns the tab content.
func (ct *ConnectionTab) Widget() *gtk.Box {
	return ct.box
}

// SetCountries replaces the country list. The selection is cleared.
func (ct *ConnectionTab) SetCountries(countries []vpn.Country) {
	ct.populating = true
	defer func() { ct.populating = false }()

	clearList(ct.countriesList)
	clearList(ct.citiesList)
	ct.app.client.CancelCities()
	ct.countries = countries
	ct.cities = nil
	ct.selected = ""

	for _, c := range countries {
		ct.countriesList.Append(ct.countryRow(c))
	}
	ct.updateButtons()
}

func (ct *ConnectionTab) countryRow(c vpn.Country) *gtk.ListBoxRow {
	box := gtk.NewBox(gtk.OrientationHorizontal, 8)
	box.SetMarginTop(4)
	box.SetMarginBottom(4)
	box.SetMarginStart(6)
	box.SetMarginEnd(6)
	if path, ok := ct.app.icons.Path(assets.FlagName(c.Code)); ok {
		flag := gtk.NewImageFromFile(path)
		flag.SetPixelSize(16)
		box.Append(flag)
	}
	label := gtk.NewLabel(c.DisplayName())
	label.SetXAlign(0)
	box.Append(label)

	row := gtk.NewListBoxRow()
	row.SetChild(box)
	return row
}

func textRow(text string) *gtk.ListBoxRow {
	label := gtk.NewLabel(text)
	label.SetXAlign(0)
	label.SetMarginTop(4)
	label.SetMarginBottom(4)
	label.SetMarginStart(6)
	label.SetMarginEnd(6)

	row := gtk.NewListBoxRow()
	row.SetChild(label)
	return row
}

func clearList(list *gtk.ListBox) {
	for list.FirstChild() != nil {
		list.Remove(list.FirstChild())
	}
}

func (ct *ConnectionTab) onCountrySelected(row *gtk.ListBoxRow) {
	if ct.populating {
		return
	}

	ct.populating = true
	clearList(ct.citiesList)
	ct.populating = false
	ct.cities = nil

	if row == nil || row.Index() < 0 || row.Index() >= len(ct.countries) {
		ct.selected = ""
		ct.app.client.CancelCities()
		ct.updateButtons()
		return
	}

	country := ct.countries[row.Index()].Name
	ct.selected = country
	ct.app.client.Cities(country,
		func(cities []string) {
			ct.setCities(cities)
		},
		func(err error) {
			ct.app.setError(fmt.Sprintf("Load cities failed: %s", err))
		},
	)
	ct.updateButtons()
}

func (ct *ConnectionTab) setCities(cities []string) {
	ct.populating = true
	defer func() { ct.populating = false }()

	clearList(ct.citiesList)
	ct.cities = cities
	ct.citiesList.Append(textRow(common.FastestLabel))
	for _, city := range cities {
		ct.citiesList.Append(textRow(common.DisplayName(city)))
	}
}

func (ct *ConnectionTab) onConnectClicked() {
	if ct.selected == "" || ct.connecting {
		return
	}

	target := vpn.Target{
		Country: ct.selected,
		Server:  strings.TrimSpace(ct.serverEntry.Text()),
	}
	// Row 0 is the fastest server.
	if row := ct.citiesList.SelectedRow(); row != nil {
		if i := row.Index() - 1; i >= 0 && i < len(ct.cities) {
			target.City = ct.cities[i]
		}
	}
	ct.app.connect(target)
}

// Render shows status and disables the actions while connecting.
func (ct *ConnectionTab) Render(status *vpn.Status, connecting bool) {
	ct.connecting = connecting
	ct.statusLabel.SetText(statusText(status))
	ct.statusLabel.SetCSSClasses(statusClasses(status, connecting))
	ct.updateButtons()
}

// SetError shows msg below the status, or hides the row when msg is empty.
func (ct *ConnectionTab) SetError(msg string) {
	ct.errorLabel.SetText(msg)
	ct.errorRow.SetVisible(msg != "")
}

func (ct *ConnectionTab) updateButtons() {
	ct.connectBtn.SetSensitive(ct.selected != "" && !ct.connecting)
	ct.disconnectBtn.SetSensitive(!ct.connecting)
	ct.quickConnectBtn.SetSensitive(!ct.connecting)
}

// statusText renders the status for the window, which has room for a
// wider layout than the tray menu.
func statusText(s *vpn.Status) string {
	switch {
	case s == nil:
		return "Loading..."
	case s.Connected():
		return fmt.Sprintf("Connected to: %s, %s\n%s (%s) %s (%s)\nConnected %s, %s",
			s.Country, s.City, s.Hostname, s.IP, s.Technology, s.Protocol, s.Uptime, s.Transfer)
	default:
		return s.Status
	}
}

func statusClasses(s *vpn.Status, connecting bool) []string {
	switch {
	case connecting:
		return []string{"status-connecting"}
	case s == nil:
		return nil
	}
	switch s.State() {
	case common.StateConnected:
		return []string{"status-connected"}
	case common.StateConnecting:
		return []string{"status-connecting"}
	case common.StateDisconnected:
		return []string{"status-disconnected"}
	}
	return nil
}
