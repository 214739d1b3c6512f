package i18n

import (
	"strings"
	"testing"
	"testing/fstest"
)

func mustLoad(t *testing.T) *Bundle {
	t.Helper()
	b, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("LoadEmbedded: %v", err)
	}
	return b
}

func TestLoadEmbedded_Locales(t *testing.T) {
	b := mustLoad(t)
	locales := b.Locales()
	if len(locales) < 2 {
		t.Fatalf("Locales = %v, want at least en-US and de-DE", locales)
	}
	if locales[0] != BaseLocale {
		t.Errorf("first locale = %q, want %q", locales[0], BaseLocale)
	}
}

func TestLocalizer_GoalText(t *testing.T) {
	l := mustLoad(t).Localizer("en-US")
	if got := l.Sprintf(KeyGoalText, "$50,000"); got != "pledged of $50,000" {
		t.Errorf("goal text = %q, want %q", got, "pledged of $50,000")
	}
}

func TestLocalizer_Match(t *testing.T) {
	b := mustLoad(t)
	tests := []struct {
		in   string
		want string
	}{
		{"en-US", "en-US"},
		{"de-DE", "de-DE"},
		{"de", "de-DE"},
		{"", "en-US"},
		{"not a locale", "en-US"},
		{"ja-JP", "en-US"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := b.Match(tt.in).String(); got != tt.want {
				t.Errorf("Match(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestLocalizer_GermanTemplates(t *testing.T) {
	l := mustLoad(t).Localizer("de-DE")
	got := l.Sprintf(KeyHoursToGo)
	if got != "Stunden übrig" {
		t.Errorf("hours unit = %q, want %q", got, "Stunden übrig")
	}
}

func TestLocalizer_AccessibilityTemplatesUseAllParams(t *testing.T) {
	l := mustLoad(t).Localizer("en-US")
	for _, key := range []string{KeyLiveStatValue, KeyNonLiveStatValue} {
		got := l.Sprintf(key, "P1", "G2", "B3", "T4")
		for _, want := range []string{"P1", "G2", "B3", "T4"} {
			if !strings.Contains(got, want) {
				t.Errorf("%s = %q, missing %q", key, got, want)
			}
		}
	}
}

func TestLoadFromFS_Validation(t *testing.T) {
	tests := []struct {
		name  string
		files fstest.MapFS
	}{
		{
			name:  "empty",
			files: fstest.MapFS{},
		},
		{
			name: "locale mismatch",
			files: fstest.MapFS{
				"locales/en-US/dates.yaml": {Data: []byte("locale: \"de-DE\"\nnamespace: \"dates\"\nmessages:\n  \"dates.x\": \"y\"\n")},
			},
		},
		{
			name: "key outside namespace",
			files: fstest.MapFS{
				"locales/en-US/dates.yaml": {Data: []byte("locale: \"en-US\"\nnamespace: \"dates\"\nmessages:\n  \"dashboard.x\": \"y\"\n")},
			},
		},
		{
			name: "missing base locale",
			files: fstest.MapFS{
				"locales/de-DE/dates.yaml": {Data: []byte("locale: \"de-DE\"\nnamespace: \"dates\"\nmessages:\n  \"dates.x\": \"y\"\n")},
			},
		},
		{
			name: "key missing from base",
			files: fstest.MapFS{
				"locales/en-US/dates.yaml": {Data: []byte("locale: \"en-US\"\nnamespace: \"dates\"\nmessages:\n  \"dates.x\": \"y\"\n")},
				"locales/de-DE/dates.yaml": {Data: []byte("locale: \"de-DE\"\nnamespace: \"dates\"\nmessages:\n  \"dates.z\": \"y\"\n")},
			},
		},
		{
			name: "malformed yaml",
			files: fstest.MapFS{
				"locales/en-US/dates.yaml": {Data: []byte("locale: [\n")},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadFromFS(tt.files); err == nil {
				t.Fatal("LoadFromFS succeeded, want error")
			}
		})
	}
}
