package format

import (
	"time"

	"github.com/goodsign/monday"

	"github.com/theirongolddev/fundburn/internal/i18n"
)

// dateStyle holds a locale's calendar layouts in Go reference form.
// monday swaps in the localized month names.
type dateStyle struct {
	locale monday.Locale
	medium string
	short  string
}

var dateStyles = map[string]dateStyle{
	"en-US": {locale: monday.LocaleEnUS, medium: "Jan 2, 2006", short: "Jan 2"},
	"de-DE": {locale: monday.LocaleDeDE, medium: "2. January 2006", short: "2. Jan"},
}

func dateStyleFor(tag string) dateStyle {
	if s, ok := dateStyles[tag]; ok {
		return s
	}
	return dateStyles[i18n.BaseLocale]
}

// Date formats t as a medium calendar date in the configured zone.
// e.g., "Oct 15, 2026" in en-US, "15. Oktober 2026" in de-DE
func (f *Formatter) Date(t time.Time) string {
	return monday.Format(t.In(f.zone), f.dates.medium, f.dates.locale)
}

// ShortDate formats t as day and month in the configured zone, for chart
// axis labels.
func (f *Formatter) ShortDate(t time.Time) string {
	return monday.Format(t.In(f.zone), f.dates.short, f.dates.locale)
}
