package vpn

import (
	"fmt"
	"strings"

	"github.com/yllada/nordvpn-tray/common"
)

// Target is a connect destination. Server, when set, is a server number in
// Country and takes precedence over City.
type Target struct {
	Country string
	City    string
	Server  string
}

// Args builds the nordvpn arguments for the target:
// "connect <code><number>" for a server, "connect <country> [city]" otherwise.
func (t Target) Args() ([]string, error) {
	country := strings.TrimSpace(t.Country)
	if country == "" {
		return nil, common.ErrNoCountry
	}

	if server := strings.TrimSpace(t.Server); server != "" {
		if !isServerNumber(server) {
			return nil, fmt.Errorf("%w: %q", common.ErrInvalidServerNumber, server)
		}
		code, ok := CountryCode(country)
		if !ok {
			return nil, fmt.Errorf("%w: %s", common.ErrUnknownCountryCode, country)
		}
		return []string{"connect", strings.ToLower(code) + server}, nil
	}

	args := []string{"connect", country}
	if city := strings.TrimSpace(t.City); city != "" {
		args = append(args, city)
	}
	return args, nil
}

func isServerNumber(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return strings.TrimLeft(s, "0") != ""
}

// Label renders the target for menus: "United States #123",
// "Germany (Berlin)" or just the country.
func (t Target) Label() string {
	label := common.DisplayName(t.Country)
	switch {
	case t.Server != "":
		label += " #" + t.Server
	case t.City != "":
		label += " (" + common.DisplayName(t.City) + ")"
	}
	return label
}

// QuickConnectArgs builds "connect [country]".
func QuickConnectArgs(country string) []string {
	if country = strings.TrimSpace(country); country != "" {
		return []string{"connect", country}
	}
	return []string{"connect"}
}
