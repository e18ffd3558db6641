package vpn

import (
	"fmt"
	"strings"

	"github.com/yllada/nordvpn-tray/common"
)

var statusLabels = NewLabels(
	Label{"status", "Status"},
	Label{"country", "Country"},
	Label{"city", "City"},
	Label{"host", "Hostname"},
	Label{"ip", "IP"},
	Label{"technology", "Current technology"},
	Label{"protocol", "Current protocol"},
	Label{"transfer", "Transfer"},
	Label{"uptime", "Uptime"},
)

// Status is the output of `nordvpn status`.
type Status struct {
	Status     string
	Country    string
	City       string
	Hostname   string
	IP         string
	Technology string
	Protocol   string
	Transfer   string
	Uptime     string
}

// ParseStatus parses `nordvpn status` output. Status defaults to
// "Disconnected" when the line is missing.
func ParseStatus(text string) Status {
	f := ParseFields(text, statusLabels)
	s := Status{Status: "Disconnected"}
	f.assign("status", &s.Status)
	f.assign("country", &s.Country)
	f.assign("city", &s.City)
	f.assign("host", &s.Hostname)
	f.assign("ip", &s.IP)
	f.assign("technology", &s.Technology)
	f.assign("protocol", &s.Protocol)
	f.assign("transfer", &s.Transfer)
	f.assign("uptime", &s.Uptime)
	return s
}

// State maps the status line to a connection state.
func (s Status) State() common.ConnectionState {
	return common.ParseConnectionState(s.Status)
}

// Connected reports whether the tunnel is up.
func (s Status) Connected() bool {
	return s.State() == common.StateConnected
}

// Summary renders the multi-line description used by the tray and the
// settings window.
func (s Status) Summary() string {
	if !s.Connected() {
		return s.Status
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Connected to:\n%s (%s)\n%s (%s)\n%s (%s)",
		s.Country, s.City, s.Hostname, s.IP, s.Technology, s.Protocol)
	if s.Uptime != "" {
		b.WriteString("\n" + s.Uptime)
	}
	if s.Transfer != "" {
		b.WriteString("\n" + s.Transfer)
	}
	return b.String()
}

var accountLabels = NewLabels(
	Label{"email", "Email Address"},
	Label{"status", "VPN Service"},
)

// Account is the output of `nordvpn account`.
type Account struct {
	Email   string
	Service string
}

// ParseAccount parses `nordvpn account` output.
func ParseAccount(text string) Account {
	f := ParseFields(text, accountLabels)
	var a Account
	f.assign("email", &a.Email)
	f.assign("status", &a.Service)
	return a
}

// String renders "email - service" for the status bar.
func (a Account) String() string {
	return a.Email + " - " + a.Service
}

// settingLabels is also the display order of Settings.Rows.
var settingLabels = []Label{
	{"autoconnect", "Auto-connect"},
	{"technology", "Technology"},
	{"protocol", "Protocol"},
	{"firewall", "Firewall"},
	{"fwmark", "Firewall Mark"},
	{"routing", "Routing"},
	{"analytics", "Analytics"},
	{"killswitch", "Kill Switch"},
	{"tplite", "Threat Protection Lite"},
	{"notify", "Notify"},
	{"ipv6", "IPv6"},
	{"meshnet", "Meshnet"},
	{"dns", "DNS"},
}

var settingsLabels = NewLabels(settingLabels...)

// Settings is the output of `nordvpn settings`. Only options present in the
// output are set; nordvpn prints different options per technology.
type Settings struct {
	values Fields
}

// ParseSettings parses `nordvpn settings` output.
func ParseSettings(text string) Settings {
	return Settings{values: ParseFields(text, settingsLabels)}
}

// Get returns an option by field name, e.g. "killswitch".
func (s Settings) Get(field string) (string, bool) {
	return s.values.Get(field)
}

// Enabled reports whether a boolean option is on. Unknown options are off.
func (s Settings) Enabled(field string) bool {
	v, _ := s.values.Get(field)
	return IsEnabled(v)
}

// IsEnabled reports whether a nordvpn option value means "on".
func IsEnabled(value string) bool {
	switch strings.ToLower(value) {
	case "enabled", "on", "true":
		return true
	}
	return false
}

// SettingRow is one displayed option.
type SettingRow struct {
	Field string
	Label string
	Value string
}

// Rows returns the present options in display order.
func (s Settings) Rows() []SettingRow {
	rows := make([]SettingRow, 0, len(s.values))
	for _, label := range settingLabels {
		if v, ok := s.values[label.Field]; ok {
			rows = append(rows, SettingRow{Field: label.Field, Label: label.Text, Value: v})
		}
	}
	return rows
}

// Country is an entry of `nordvpn countries`.
type Country struct {
	// Name is the identifier nordvpn accepts, e.g. "United_States".
	Name string
	// Code is the ISO 3166 code, empty when the name is not in the table.
	Code string
}

// DisplayName returns the name with underscores replaced by spaces.
func (c Country) DisplayName() string {
	return common.DisplayName(c.Name)
}

// ParseCountries parses `nordvpn countries` output.
func ParseCountries(text string) []Country {
	names := ParseCSVLine(text)
	countries := make([]Country, 0, len(names))
	for _, name := range names {
		code, _ := CountryCode(name)
		countries = append(countries, Country{Name: name, Code: code})
	}
	return countries
}
