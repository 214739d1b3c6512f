// Package format turns raw project numbers and timestamps into display
// strings for one locale, one time zone and one clock.
package format

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/fundburn/internal/clock"
	"github.com/theirongolddev/fundburn/internal/i18n"
	"github.com/theirongolddev/fundburn/internal/model"
)

// Formatter bundles the currency, number, date and duration formatters.
// It is stateless apart from its configuration and safe to share.
type Formatter struct {
	loc   *i18n.Localizer
	clock clock.Clock
	zone  *time.Location
	home  string
	dates dateStyle
}

// Option configures a Formatter.
type Option func(*Formatter)

// WithClock sets the source of "now" used by Duration.
func WithClock(c clock.Clock) Option {
	return func(f *Formatter) { f.clock = c }
}

// WithLocation sets the time zone calendar dates are rendered in.
func WithLocation(loc *time.Location) Option {
	return func(f *Formatter) { f.zone = loc }
}

// WithHomeCountry sets the viewer's country. Currencies whose symbol is
// shared with the home currency are disambiguated with a code prefix.
func WithHomeCountry(code string) Option {
	return func(f *Formatter) { f.home = code }
}

// New returns a Formatter that localizes through loc.
func New(loc *i18n.Localizer, opts ...Option) *Formatter {
	f := &Formatter{
		loc:   loc,
		clock: clock.System,
		zone:  time.UTC,
		home:  model.CountryUS.Code,
		dates: dateStyleFor(loc.Tag().String()),
	}
	for _, o := range opts {
		o(f)
	}
	return f
}

// Integer formats n with the locale's digit grouping.
// e.g., 2000 -> "2,000" in en-US, "2.000" in de-DE
func (f *Formatter) Integer(n int) string {
	return f.loc.Printer().Sprintf("%d", n)
}

// Currency formats amount in whole units of the country's currency.
// Rounds half away from zero; negative amounts keep their sign.
// e.g., 50000 US -> "$50,000", 50000 CA -> "CA$ 50,000"
func (f *Formatter) Currency(amount decimal.Decimal, c model.Country) string {
	whole := amount.Round(0)
	sign := ""
	if whole.IsNegative() {
		sign = "-"
		whole = whole.Neg()
	}
	return sign + f.currencyPrefix(c) + f.loc.Printer().Sprintf("%d", whole.IntPart())
}

func (f *Formatter) currencyPrefix(c model.Country) string {
	if c.IsZero() {
		c = model.CountryUS
	}
	if !c.SharedSymbol() || c.Code == f.home {
		return c.Symbol
	}
	if c.Symbol == "$" {
		return c.Code + "$ "
	}
	return c.Currency.String() + " "
}
