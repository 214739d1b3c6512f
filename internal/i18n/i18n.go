// Package i18n loads the embedded message catalogs and resolves localized
// templates through golang.org/x/text/message.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"
)

// BaseLocale is the source locale every catalog key must exist in.
const BaseLocale = "en-US"

// Message keys used by the funding dashboard.
const (
	KeyGoalText         = "dashboard.funding.goal_text"
	KeyLiveStatValue    = "dashboard.funding.accessibility.live_stat_value"
	KeyNonLiveStatValue = "dashboard.funding.accessibility.non_live_stat_value"
	KeyDaysToGo         = "dates.days_to_go"
	KeyHoursToGo        = "dates.hours_to_go"
	KeyMinsToGo         = "dates.mins_to_go"
	KeySecsToGo         = "dates.secs_to_go"
	KeySecToGo          = "dates.sec_to_go"
)

//go:embed locales/*/*.yaml
var localeFS embed.FS

type catalogFile struct {
	Locale    string            `yaml:"locale"`
	Namespace string            `yaml:"namespace"`
	Messages  map[string]string `yaml:"messages"`
}

// Bundle holds every loaded locale.
type Bundle struct {
	builder *catalog.Builder
	tags    []language.Tag // BaseLocale first
	matcher language.Matcher
	keys    map[language.Tag]map[string]struct{}
}

// LoadEmbedded loads the catalogs compiled into the binary.
func LoadEmbedded() (*Bundle, error) {
	return LoadFromFS(localeFS)
}

// LoadFromFS loads locales/<locale>/<namespace>.yaml files from fsys.
func LoadFromFS(fsys fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(fsys, "locales/*/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no catalog files found")
	}
	sort.Strings(paths)

	base := language.MustParse(BaseLocale)
	b := &Bundle{
		builder: catalog.NewBuilder(catalog.Fallback(base)),
		keys:    make(map[language.Tag]map[string]struct{}),
	}

	for _, p := range paths {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", p, err)
		}
		var cf catalogFile
		if err := yaml.Unmarshal(data, &cf); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", p, err)
		}
		if err := b.add(p, cf); err != nil {
			return nil, err
		}
	}

	if _, ok := b.keys[base]; !ok {
		return nil, fmt.Errorf("base locale %s has no catalog", BaseLocale)
	}
	for tag, keys := range b.keys {
		for key := range keys {
			if _, ok := b.keys[base][key]; !ok {
				return nil, fmt.Errorf("catalog %s: key %q missing from base locale", tag, key)
			}
		}
	}

	b.tags = append(b.tags, base)
	for tag := range b.keys {
		if tag != base {
			b.tags = append(b.tags, tag)
		}
	}
	sort.Slice(b.tags[1:], func(i, j int) bool {
		return b.tags[1+i].String() < b.tags[1+j].String()
	})
	b.matcher = language.NewMatcher(b.tags)
	return b, nil
}

func (b *Bundle) add(p string, cf catalogFile) error {
	dirLocale := path.Base(path.Dir(p))
	fileNamespace := strings.TrimSuffix(path.Base(p), path.Ext(p))

	if cf.Locale != dirLocale {
		return fmt.Errorf("catalog %s: locale %q must match directory %q", p, cf.Locale, dirLocale)
	}
	if cf.Namespace != fileNamespace {
		return fmt.Errorf("catalog %s: namespace %q must match file name %q", p, cf.Namespace, fileNamespace)
	}
	if len(cf.Messages) == 0 {
		return fmt.Errorf("catalog %s: no messages", p)
	}

	tag, err := language.Parse(cf.Locale)
	if err != nil {
		return fmt.Errorf("catalog %s: parse locale: %w", p, err)
	}

	keys, ok := b.keys[tag]
	if !ok {
		keys = make(map[string]struct{})
		b.keys[tag] = keys
	}
	for key, msg := range cf.Messages {
		if !strings.HasPrefix(key, cf.Namespace+".") {
			return fmt.Errorf("catalog %s: key %q outside namespace %q", p, key, cf.Namespace)
		}
		if _, dup := keys[key]; dup {
			return fmt.Errorf("catalog %s: duplicate key %q", p, key)
		}
		if err := b.builder.SetString(tag, key, msg); err != nil {
			return fmt.Errorf("catalog %s: set %q: %w", p, key, err)
		}
		keys[key] = struct{}{}
	}
	return nil
}

// Locales returns the loaded locales, base locale first.
func (b *Bundle) Locales() []string {
	out := make([]string, len(b.tags))
	for i, t := range b.tags {
		out[i] = t.String()
	}
	return out
}

// Match returns the loaded locale closest to the requested one, falling
// back to BaseLocale for unparsable or unsupported requests.
func (b *Bundle) Match(locale string) language.Tag {
	tag, err := language.Parse(strings.TrimSpace(locale))
	if err != nil {
		return b.tags[0]
	}
	_, idx, conf := b.matcher.Match(tag)
	if conf == language.No {
		return b.tags[0]
	}
	return b.tags[idx]
}

// Localizer resolves templates for one locale.
type Localizer struct {
	tag     language.Tag
	printer *message.Printer
}

// Localizer returns a Localizer for the closest loaded locale.
func (b *Bundle) Localizer(locale string) *Localizer {
	tag := b.Match(locale)
	return &Localizer{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(b.builder)),
	}
}

// Tag returns the resolved locale.
func (l *Localizer) Tag() language.Tag {
	return l.tag
}

// Printer exposes the underlying printer for locale-aware number output.
func (l *Localizer) Printer() *message.Printer {
	return l.printer
}

// Sprintf resolves key and formats it with args.
func (l *Localizer) Sprintf(key string, args ...any) string {
	return l.printer.Sprintf(key, args...)
}
