package cli

import (
	"testing"

	"github.com/theirongolddev/fundburn/internal/config"
)

func TestSetupAnswers_RoundTrip(t *testing.T) {
	cfg := config.DefaultConfig()
	a := NewSetupAnswers(cfg)
	if a.Locale != "en-US" || a.TickCount != "4" || a.HomeCountry != "US" {
		t.Fatalf("prefill = %+v", a)
	}

	a.Locale = "de-DE"
	a.Timezone = " Europe/Berlin "
	a.HomeCountry = "DE"
	a.TickCount = "5"
	if err := a.Apply(&cfg); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	want := config.DefaultConfig()
	want.General.Locale = "de-DE"
	want.General.Timezone = "Europe/Berlin"
	want.General.HomeCountry = "DE"
	want.Chart.TickCount = 5
	if cfg != want {
		t.Errorf("cfg = %+v, want %+v", cfg, want)
	}
}

func TestSetupAnswers_ApplyRejects(t *testing.T) {
	tests := []struct {
		name string
		edit func(*SetupAnswers)
	}{
		{"zero ticks", func(a *SetupAnswers) { a.TickCount = "0" }},
		{"word ticks", func(a *SetupAnswers) { a.TickCount = "four" }},
		{"bad zone", func(a *SetupAnswers) { a.Timezone = "Mars/Olympus" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			a := NewSetupAnswers(cfg)
			tt.edit(a)
			if err := a.Apply(&cfg); err == nil {
				t.Error("Apply succeeded, want error")
			}
		})
	}
}

func TestSetupValidators(t *testing.T) {
	if err := validateTimezone("Asia/Tokyo"); err != nil {
		t.Errorf("validateTimezone(Asia/Tokyo) = %v", err)
	}
	if err := validateTimezone("Nowhere/Special"); err == nil {
		t.Error("validateTimezone accepted an unknown zone")
	}
	if n, err := parseTickCount(" 6 "); err != nil || n != 6 {
		t.Errorf("parseTickCount(\" 6 \") = %d, %v", n, err)
	}
	if _, err := parseTickCount("-2"); err == nil {
		t.Error("parseTickCount accepted a negative count")
	}
}

func TestNewSetupForm(t *testing.T) {
	a := NewSetupAnswers(config.DefaultConfig())
	if f := NewSetupForm(a, []string{"en-US", "de-DE"}, []string{"US", "DE"}); f == nil {
		t.Fatal("NewSetupForm returned nil")
	}
}
