package format

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/fundburn/internal/clock"
	"github.com/theirongolddev/fundburn/internal/i18n"
	"github.com/theirongolddev/fundburn/internal/model"
)

var testNow = time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

func newFormatter(t *testing.T, locale string, opts ...Option) *Formatter {
	t.Helper()
	b, err := i18n.LoadEmbedded()
	if err != nil {
		t.Fatalf("LoadEmbedded: %v", err)
	}
	opts = append([]Option{WithClock(clock.Fixed(testNow))}, opts...)
	return New(b.Localizer(locale), opts...)
}

func mustCountry(t *testing.T, code string) model.Country {
	t.Helper()
	c, err := model.LookupCountry(code)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestInteger(t *testing.T) {
	f := newFormatter(t, "en-US")
	tests := []struct {
		n    int
		want string
	}{
		{0, "0"},
		{5, "5"},
		{999, "999"},
		{2000, "2,000"},
		{1234567, "1,234,567"},
		{-2000, "-2,000"},
	}
	for _, tt := range tests {
		if got := f.Integer(tt.n); got != tt.want {
			t.Errorf("Integer(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestInteger_German(t *testing.T) {
	f := newFormatter(t, "de-DE")
	if got := f.Integer(2000); got != "2.000" {
		t.Errorf("Integer(2000) = %q, want %q", got, "2.000")
	}
}

func TestCurrency(t *testing.T) {
	f := newFormatter(t, "en-US")
	tests := []struct {
		name    string
		amount  string
		country string
		want    string
	}{
		{"us goal", "50000", "US", "$50,000"},
		{"us pledged", "5000", "US", "$5,000"},
		{"rounds half up", "1234.5", "US", "$1,235"},
		{"rounds down", "1234.49", "US", "$1,234"},
		{"zero", "0", "US", "$0"},
		{"negative", "-75", "US", "-$75"},
		{"shared dollar symbol", "50000", "CA", "CA$ 50,000"},
		{"shared kr symbol", "100", "SE", "SEK 100"},
		{"unique pound", "50000", "GB", "£50,000"},
		{"euro", "10", "DE", "€10"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := f.Currency(decimal.RequireFromString(tt.amount), mustCountry(t, tt.country))
			if got != tt.want {
				t.Errorf("Currency(%s, %s) = %q, want %q", tt.amount, tt.country, got, tt.want)
			}
		})
	}
}

func TestCurrency_HomeCountry(t *testing.T) {
	f := newFormatter(t, "en-US", WithHomeCountry("CA"))
	if got := f.Currency(decimal.NewFromInt(500), mustCountry(t, "CA")); got != "$500" {
		t.Errorf("home CA currency = %q, want $500", got)
	}
	if got := f.Currency(decimal.NewFromInt(500), mustCountry(t, "US")); got != "US$ 500" {
		t.Errorf("foreign US currency = %q, want US$ 500", got)
	}
}

func TestCurrency_ZeroCountryDefaultsToUS(t *testing.T) {
	f := newFormatter(t, "en-US")
	if got := f.Currency(decimal.NewFromInt(10), model.Country{}); got != "$10" {
		t.Errorf("Currency with zero country = %q, want $10", got)
	}
}

func TestDate(t *testing.T) {
	f := newFormatter(t, "en-US")
	if got := f.Date(testNow); got != "Oct 15, 2026" {
		t.Errorf("Date = %q, want %q", got, "Oct 15, 2026")
	}

	tokyo := time.FixedZone("JST", 9*3600)
	late := time.Date(2026, 10, 15, 20, 0, 0, 0, time.UTC)
	f = newFormatter(t, "en-US", WithLocation(tokyo))
	if got := f.Date(late); got != "Oct 16, 2026" {
		t.Errorf("Date in JST = %q, want %q", got, "Oct 16, 2026")
	}
}

func TestDate_German(t *testing.T) {
	f := newFormatter(t, "de-DE")
	deadline := time.Date(2026, 10, 30, 12, 0, 0, 0, time.UTC)
	if got := f.Date(deadline); got != "30. Oktober 2026" {
		t.Errorf("Date = %q, want %q", got, "30. Oktober 2026")
	}
	if got := f.Date(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)); got != "1. März 2026" {
		t.Errorf("Date = %q, want %q", got, "1. März 2026")
	}
}

func TestDate_UnsupportedLocaleUsesBase(t *testing.T) {
	f := newFormatter(t, "fr-FR")
	if got := f.Date(testNow); got != "Oct 15, 2026" {
		t.Errorf("Date = %q, want %q", got, "Oct 15, 2026")
	}
}

func TestShortDate(t *testing.T) {
	if got := newFormatter(t, "en-US").ShortDate(testNow); got != "Oct 15" {
		t.Errorf("ShortDate = %q, want Oct 15", got)
	}
	nov := time.Date(2026, 11, 3, 12, 0, 0, 0, time.UTC)
	if got := newFormatter(t, "de-DE").ShortDate(nov); got != "3. Nov" {
		t.Errorf("ShortDate = %q, want 3. Nov", got)
	}
}
