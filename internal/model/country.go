package model

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

// ErrUnknownCountry is returned for country codes outside the launch table.
var ErrUnknownCountry = errors.New("unknown country")

// Country selects the currency a project raises money in.
type Country struct {
	Code     string        // ISO 3166-1 alpha-2, upper case
	Currency currency.Unit // ISO 4217
	Symbol   string
}

// IsZero reports whether c is the zero Country.
func (c Country) IsZero() bool {
	return c.Code == ""
}

// SharedSymbol reports whether other currencies use the same symbol, so
// the symbol alone does not identify the currency.
func (c Country) SharedSymbol() bool {
	switch c.Symbol {
	case "$", "kr", "Fr":
		return true
	}
	return false
}

type countryEntry struct {
	code     string
	currency string
	symbol   string
}

var launchCountries = []countryEntry{
	{"US", "USD", "$"},
	{"GB", "GBP", "£"},
	{"CA", "CAD", "$"},
	{"AU", "AUD", "$"},
	{"NZ", "NZD", "$"},
	{"NL", "EUR", "€"},
	{"DK", "DKK", "kr"},
	{"IE", "EUR", "€"},
	{"NO", "NOK", "kr"},
	{"SE", "SEK", "kr"},
	{"DE", "EUR", "€"},
	{"FR", "EUR", "€"},
	{"ES", "EUR", "€"},
	{"IT", "EUR", "€"},
	{"AT", "EUR", "€"},
	{"BE", "EUR", "€"},
	{"CH", "CHF", "Fr"},
	{"LU", "EUR", "€"},
	{"HK", "HKD", "$"},
	{"SG", "SGD", "$"},
	{"MX", "MXN", "$"},
	{"JP", "JPY", "¥"},
	{"PL", "PLN", "zł"},
}

var countries = mustBuildCountries(launchCountries)

func mustBuildCountries(entries []countryEntry) map[string]Country {
	out := make(map[string]Country, len(entries))
	for _, e := range entries {
		unit, err := currency.ParseISO(e.currency)
		if err != nil {
			panic(fmt.Sprintf("model: bad currency %q for %s: %v", e.currency, e.code, err))
		}
		out[e.code] = Country{Code: e.code, Currency: unit, Symbol: e.symbol}
	}
	return out
}

// CountryUS is the default country.
var CountryUS = countries["US"]

// LookupCountry resolves a country code such as "us" or "CA".
func LookupCountry(code string) (Country, error) {
	region, err := language.ParseRegion(strings.TrimSpace(code))
	if err != nil {
		return Country{}, fmt.Errorf("%w: %q", ErrUnknownCountry, code)
	}
	c, ok := countries[region.String()]
	if !ok {
		return Country{}, fmt.Errorf("%w: %q", ErrUnknownCountry, code)
	}
	return c, nil
}

// Countries returns the supported country codes in table order.
func Countries() []string {
	codes := make([]string, 0, len(launchCountries))
	for _, e := range launchCountries {
		codes = append(codes, e.code)
	}
	return codes
}
