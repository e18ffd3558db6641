package vpn

import "strings"

// countryCodes maps nordvpn country identifiers to ISO 3166 codes.
var countryCodes = map[string]string{
	"Albania":                "AL",
	"Argentina":              "AR",
	"Australia":              "AU",
	"Austria":                "AT",
	"Belgium":                "BE",
	"Bosnia_And_Herzegovina": "BA",
	"Brazil":                 "BR",
	"Bulgaria":               "BG",
	"Canada":                 "CA",
	"Chile":                  "CL",
	"Colombia":               "CO",
	"Costa_Rica":             "CR",
	"Croatia":                "HR",
	"Cyprus":                 "CY",
	"Czech_Republic":         "CZ",
	"Denmark":                "DK",
	"Estonia":                "EE",
	"Finland":                "FI",
	"France":                 "FR",
	"Georgia":                "GE",
	"Germany":                "DE",
	"Greece":                 "GR",
	"Hong_Kong":              "HK",
	"Hungary":                "HU",
	"Iceland":                "IS",
	"Indonesia":              "ID",
	"Ireland":                "IE",
	"Israel":                 "IL",
	"Italy":                  "IT",
	"Japan":                  "JP",
	"Latvia":                 "LV",
	"Lithuania":              "LT",
	"Luxembourg":             "LU",
	"Malaysia":               "MY",
	"Mexico":                 "MX",
	"Moldova":                "MD",
	"Netherlands":            "NL",
	"New_Zealand":            "NZ",
	"North_Macedonia":        "MK",
	"Norway":                 "NO",
	"Poland":                 "PL",
	"Portugal":               "PT",
	"Romania":                "RO",
	"Serbia":                 "RS",
	"Singapore":              "SG",
	"Slovakia":               "SK",
	"Slovenia":               "SI",
	"South_Africa":           "ZA",
	"South_Korea":            "KR",
	"Spain":                  "ES",
	"Sweden":                 "SE",
	"Switzerland":            "CH",
	"Taiwan":                 "TW",
	"Thailand":               "TH",
	"Turkey":                 "TR",
	"Ukraine":                "UA",
	"United_Kingdom":         "GB",
	"United_States":          "US",
	"Vietnam":                "VN",
}

// countryKeys indexes countryCodes by normalized name.
var countryKeys = func() map[string]string {
	keys := make(map[string]string, len(countryCodes))
	for name, code := range countryCodes {
		keys[normalizeCountry(name)] = code
	}
	return keys
}()

func normalizeCountry(name string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", "_"))
}

// CountryCode returns the ISO code for a nordvpn country name. Names match
// case-insensitively, with spaces or underscores.
func CountryCode(name string) (string, bool) {
	if code, ok := countryCodes[name]; ok {
		return code, true
	}
	code, ok := countryKeys[normalizeCountry(name)]
	return code, ok
}
