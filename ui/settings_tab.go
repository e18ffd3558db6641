package ui

import (
	"fmt"
	"strings"

	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/yllada/nordvpn-tray/common"
	"github.com/yllada/nordvpn-tray/vpn"
)

// SettingsTab shows the quick connect country and the nordvpn settings.
// nordvpn settings are read only here.
type SettingsTab struct {
	app *Application
	box *gtk.Box

	countryDropDown *gtk.DropDown
	// countryValues holds the nordvpn name per dropdown entry; "" is fastest.
	countryValues []string
	populating    bool

	optionsList *gtk.ListBox
	errorLabel  *gtk.Label
}

// NewSettingsTab creates the Settings tab.
func NewSettingsTab(app *Application) *SettingsTab {
	st := &SettingsTab{app: app, countryValues: []string{""}}

	st.box = gtk.NewBox(gtk.OrientationVertical, 6)
	st.box.SetMarginTop(common.WindowMargin)
	st.box.SetMarginBottom(common.WindowMargin)
	st.box.SetMarginStart(common.WindowMargin)
	st.box.SetMarginEnd(common.WindowMargin)

	// Quick connect country
	countryRow := gtk.NewBox(gtk.OrientationHorizontal, 12)
	countryLabel := gtk.NewLabel("Quick connect to:")
	countryLabel.SetXAlign(0)
	countryLabel.SetHExpand(true)
	countryRow.Append(countryLabel)

	st.countryDropDown = gtk.NewDropDown(gtk.NewStringList([]string{common.FastestLabel}), nil)
	st.countryDropDown.SetVAlign(gtk.AlignCenter)
	st.countryDropDown.NotifyProperty("selected", st.onCountryChanged)
	countryRow.Append(st.countryDropDown)
	st.box.Append(countryRow)

	// nordvpn options
	optionsTitle := gtk.NewLabel("NordVPN settings")
	optionsTitle.SetXAlign(0)
	optionsTitle.SetMarginTop(16)
	optionsTitle.AddCSSClass("heading")
	st.box.Append(optionsTitle)

	st.optionsList = gtk.NewListBox()
	st.optionsList.SetSelectionMode(gtk.SelectionNone)
	st.optionsList.AddCSSClass("boxed-list")
	st.box.Append(scrolled(st.optionsList))

	hint := gtk.NewLabel("Run `nordvpn set --help` in a terminal to learn how to change settings.")
	hint.SetXAlign(0)
	hint.SetWrap(true)
	hint.SetMarginTop(10)
	hint.AddCSSClass("dim-label")
	st.box.Append(hint)

	st.errorLabel = gtk.NewLabel("")
	st.errorLabel.SetXAlign(0)
	st.errorLabel.SetWrap(true)
	st.errorLabel.AddCSSClass("status-error")
	st.errorLabel.SetVisible(false)
	st.box.Append(st.errorLabel)

	return st
}

// Widget returns the tab content.
func (st *SettingsTab) Widget() *gtk.Box {
	return st.box
}

// SetCountries fills the quick connect dropdown and selects the saved
// country.
func (st *SettingsTab) SetCountries(countries []vpn.Country) {
	st.populating = true
	defer func() { st.populating = false }()

	labels := make([]string, 0, len(countries)+1)
	labels = append(labels, common.FastestLabel)
	st.countryValues = append(st.countryValues[:0], "")
	for _, c := range countries {
		labels = append(labels, c.DisplayName())
		st.countryValues = append(st.countryValues, c.Name)
	}
	st.countryDropDown.SetModel(gtk.NewStringList(labels))

	selected := 0
	saved := st.app.cfg.QuickConnect()
	for i, name := range st.countryValues {
		if name != "" && strings.EqualFold(name, saved) {
			selected = i
			break
		}
	}
	st.countryDropDown.SetSelected(uint(selected))
}

func (st *SettingsTab) onCountryChanged() {
	if st.populating {
		return
	}
	i := int(st.countryDropDown.Selected())
	if i < 0 || i >= len(st.countryValues) {
		return
	}

	st.app.cfg.SetQuickConnect(st.countryValues[i])
	if err := st.app.cfg.Save(); err != nil {
		common.LogError("Failed to save quick connect country: %v", err)
		st.setError(err.Error())
		return
	}
	common.LogInfo("Quick connect country set to %q", st.countryValues[i])
}

// Load reads the nordvpn settings. It does nothing while a load is pending.
func (st *SettingsTab) Load() {
	started := st.app.client.Settings(
		st.setSettings,
		func(err error) {
			common.LogError("Load settings failed: %v", err)
			st.setError(fmt.Sprintf("Load settings failed: %s", err))
		},
	)
	if started {
		st.setError("")
	}
}

func (st *SettingsTab) setSettings(settings vpn.Settings) {
	clearList(st.optionsList)
	for _, opt := range settings.Rows() {
		st.optionsList.Append(optionRow(opt))
	}
}

func optionRow(opt vpn.SettingRow) *gtk.ListBoxRow {
	box := gtk.NewBox(gtk.OrientationHorizontal, 12)
	box.SetMarginTop(6)
	box.SetMarginBottom(6)
	box.SetMarginStart(6)
	box.SetMarginEnd(6)

	name := gtk.NewLabel(opt.Label)
	name.SetXAlign(0)
	name.SetHExpand(true)
	box.Append(name)

	value := gtk.NewLabel(opt.Value)
	value.AddCSSClass("setting-value")
	switch {
	case vpn.IsEnabled(opt.Value):
		value.AddCSSClass("setting-enabled")
	case strings.EqualFold(opt.Value, "disabled"):
		value.AddCSSClass("setting-disabled")
	}
	box.Append(value)

	row := gtk.NewListBoxRow()
	row.SetActivatable(false)
	row.SetChild(box)
	return row
}

func (st *SettingsTab) setError(msg string) {
	st.errorLabel.SetText(msg)
	st.errorLabel.SetVisible(msg != "")
}
