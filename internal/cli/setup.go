package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/theirongolddev/fundburn/internal/config"
)

// SetupAnswers holds the setup form's fields as typed text.
type SetupAnswers struct {
	Locale      string
	Timezone    string
	HomeCountry string
	TickCount   string
}

// NewSetupAnswers prefills the form from cfg.
func NewSetupAnswers(cfg config.Config) *SetupAnswers {
	return &SetupAnswers{
		Locale:      cfg.General.Locale,
		Timezone:    cfg.General.Timezone,
		HomeCountry: cfg.General.HomeCountry,
		TickCount:   strconv.Itoa(cfg.Chart.TickCount),
	}
}

// Apply copies the answers into cfg and validates the result.
func (a *SetupAnswers) Apply(cfg *config.Config) error {
	ticks, err := parseTickCount(a.TickCount)
	if err != nil {
		return err
	}
	cfg.General.Locale = strings.TrimSpace(a.Locale)
	cfg.General.Timezone = strings.TrimSpace(a.Timezone)
	cfg.General.HomeCountry = strings.TrimSpace(a.HomeCountry)
	cfg.Chart.TickCount = ticks
	return cfg.Validate()
}

// NewSetupForm builds the first-run configuration wizard over a.
func NewSetupForm(a *SetupAnswers, locales, countries []string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Locale").
				Description("Language for amounts, dates and narration.").
				Options(huh.NewOptions(locales...)...).
				Value(&a.Locale),

			huh.NewInput().
				Title("Time zone").
				Description("IANA name the calendar dates are shown in, e.g. Europe/Berlin.").
				Value(&a.Timezone).
				Validate(validateTimezone),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Home country").
				Description("Shared currency symbols from other countries get a code prefix.").
				Options(huh.NewOptions(countries...)...).
				Value(&a.HomeCountry),

			huh.NewInput().
				Title("Chart tick count").
				Description("Gridline intervals on the funding chart.").
				Value(&a.TickCount).
				Validate(func(s string) error {
					_, err := parseTickCount(s)
					return err
				}),
		),
	)
}

func validateTimezone(s string) error {
	if _, err := time.LoadLocation(strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("unknown time zone %q", s)
	}
	return nil
}

func parseTickCount(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 0, fmt.Errorf("tick count must be a positive whole number, got %q", s)
	}
	return n, nil
}
