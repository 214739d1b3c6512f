package format

import (
	"time"

	"github.com/theirongolddev/fundburn/internal/i18n"
)

// Unit is the granularity a remaining duration is expressed in.
type Unit int

const (
	Seconds Unit = iota
	Minutes
	Hours
	Days
)

// Duration is a remaining time split into a display magnitude and unit.
type Duration struct {
	Magnitude string // e.g. "24"
	Unit      string // e.g. "hours to go"
}

// Phrase joins magnitude and unit with a single space.
func (d Duration) Phrase() string {
	return d.Magnitude + " " + d.Unit
}

// Decompose picks the largest unit with a count above one. Negative
// durations count as zero; fractions of a unit are truncated.
// e.g., 72h -> (3, Days), 24h -> (24, Hours), 90m -> (90, Minutes)
func Decompose(remaining time.Duration) (int64, Unit) {
	secs := int64(remaining / time.Second)
	if secs < 0 {
		secs = 0
	}

	if days := secs / 86400; days > 1 {
		return days, Days
	}
	if hours := secs / 3600; hours > 1 {
		return hours, Hours
	}
	if mins := secs / 60; mins > 1 {
		return mins, Minutes
	}
	return secs, Seconds
}

// Duration describes the time from now until deadline.
func (f *Formatter) Duration(deadline time.Time) Duration {
	n, unit := Decompose(deadline.Sub(f.clock.Now()))
	return Duration{
		Magnitude: f.loc.Printer().Sprintf("%d", n),
		Unit:      f.loc.Sprintf(unitKey(n, unit)),
	}
}

func unitKey(n int64, unit Unit) string {
	switch unit {
	case Days:
		return i18n.KeyDaysToGo
	case Hours:
		return i18n.KeyHoursToGo
	case Minutes:
		return i18n.KeyMinsToGo
	}
	if n == 1 {
		return i18n.KeySecToGo
	}
	return i18n.KeySecsToGo
}
