package vpn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFields(t *testing.T) {
	labels := NewLabels(Label{"status", "Status"}, Label{"country", "Country"})

	tests := []struct {
		name string
		text string
		want Fields
	}{
		{"single label", "Status: Connected", Fields{"status": "Connected"}},
		{"case insensitive", "status:   connected  ", Fields{"status": "connected"}},
		{"empty capture ignored", "Status:   \nCountry: Germany", Fields{"country": "Germany"}},
		{"unanchored", "-\r  \rStatus: Disconnected", Fields{"status": "Disconnected"}},
		{"later line wins", "Country: France\nCountry: Spain", Fields{"country": "Spain"}},
		{"crlf", "Status: Connected\r\nCountry: Italy\r\n", Fields{"status": "Connected", "country": "Italy"}},
		{"no match", "nothing here", Fields{}},
		{"empty text", "", Fields{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseFields(tt.text, labels))
		})
	}
}

func TestParseFields_FirstLabelWins(t *testing.T) {
	labels := NewLabels(Label{"tech", "Current technology"}, Label{"plain", "technology"})

	got := ParseFields("Current technology: NORDLYNX", labels)
	assert.Equal(t, Fields{"tech": "NORDLYNX"}, got)
}

func TestParseFields_LabelIsLiteral(t *testing.T) {
	labels := NewLabels(Label{"ip", "I.P"})

	assert.Empty(t, ParseFields("IXP: 1.2.3.4", labels))
	assert.Equal(t, Fields{"ip": "1.2.3.4"}, ParseFields("I.P: 1.2.3.4", labels))
}

func TestParseCSVLine(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"trailing line", "header\nFrance, Germany , Spain\n", []string{"France", "Germany", "Spain"}},
		{"spinner prefix", "\r-\r  \r\rAlbania, Argentina", []string{"Albania", "Argentina"}},
		{"blank tokens dropped", "Paris,, Lyon,", []string{"Paris", "Lyon"}},
		{"trailing blank lines", "Berlin\n\n   \n", []string{"Berlin"}},
		{"empty", "", []string{}},
		{"blank only", "\n \r\n", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseCSVLine(tt.text))
		})
	}
}

const statusOutput = "\r-\r  \r\rStatus: Connected\n" +
	"Hostname: de123.nordvpn.com\n" +
	"IP: 185.1.2.3\n" +
	"Country: Germany\n" +
	"City: Berlin\n" +
	"Current technology: NORDLYNX\n" +
	"Current protocol: UDP\n" +
	"Transfer: 1.2 MiB received, 300 KiB sent\n" +
	"Uptime: 5 minutes 3 seconds\n"

func TestParseStatus(t *testing.T) {
	s := ParseStatus(statusOutput)

	assert.Equal(t, Status{
		Status:     "Connected",
		Country:    "Germany",
		City:       "Berlin",
		Hostname:   "de123.nordvpn.com",
		IP:         "185.1.2.3",
		Technology: "NORDLYNX",
		Protocol:   "UDP",
		Transfer:   "1.2 MiB received, 300 KiB sent",
		Uptime:     "5 minutes 3 seconds",
	}, s)
	assert.True(t, s.Connected())
	assert.Equal(t, "Connected to:\nGermany (Berlin)\nde123.nordvpn.com (185.1.2.3)\nNORDLYNX (UDP)\n"+
		"5 minutes 3 seconds\n1.2 MiB received, 300 KiB sent", s.Summary())
}

func TestParseStatus_Defaults(t *testing.T) {
	s := ParseStatus("")
	assert.Equal(t, "Disconnected", s.Status)
	assert.False(t, s.Connected())
	assert.Equal(t, "Disconnected", s.Summary())
}

func TestParseAccount(t *testing.T) {
	a := ParseAccount("Account Information:\nEmail Address: me@example.com\nVPN Service: Active (Expires on Jan 1st, 2027)\n")

	assert.Equal(t, "me@example.com", a.Email)
	assert.Equal(t, "Active (Expires on Jan 1st, 2027)", a.Service)
	assert.Equal(t, "me@example.com - Active (Expires on Jan 1st, 2027)", a.String())
}

func TestParseSettings(t *testing.T) {
	s := ParseSettings("Technology: NORDLYNX\nFirewall: enabled\nFirewall Mark: 0xe1f1\n" +
		"Kill Switch: disabled\nThreat Protection Lite: disabled\nAuto-connect: enabled\nDNS: disabled\n")

	v, ok := s.Get("fwmark")
	require.True(t, ok)
	assert.Equal(t, "0xe1f1", v)
	assert.True(t, s.Enabled("firewall"))
	assert.False(t, s.Enabled("killswitch"))
	assert.False(t, s.Enabled("meshnet"))

	_, ok = s.Get("protocol")
	assert.False(t, ok, "absent option must stay unset")

	var order []string
	for _, row := range s.Rows() {
		order = append(order, row.Field)
	}
	assert.Equal(t, []string{"autoconnect", "technology", "firewall", "fwmark", "killswitch", "tplite", "dns"}, order)
}

func TestParseCountries(t *testing.T) {
	countries := ParseCountries("Germany, United_States, Atlantis")

	assert.Equal(t, []Country{
		{Name: "Germany", Code: "DE"},
		{Name: "United_States", Code: "US"},
		{Name: "Atlantis"},
	}, countries)
	assert.Equal(t, "United States", countries[1].DisplayName())
}

func TestCountryCode(t *testing.T) {
	tests := []struct {
		name string
		code string
		ok   bool
	}{
		{"Germany", "DE", true},
		{"united kingdom", "GB", true},
		{"Bosnia_And_Herzegovina", "BA", true},
		{"Atlantis", "", false},
	}

	for _, tt := range tests {
		code, ok := CountryCode(tt.name)
		assert.Equal(t, tt.ok, ok, tt.name)
		assert.Equal(t, tt.code, code, tt.name)
	}
}

func TestIsEnabled(t *testing.T) {
	assert.True(t, IsEnabled("enabled"))
	assert.True(t, IsEnabled("On"))
	assert.False(t, IsEnabled("disabled"))
	assert.False(t, IsEnabled(""))
}
