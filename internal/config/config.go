// Package config loads fundburn settings from a TOML file and FUNDBURN_*
// environment variables.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

// Config holds all fundburn configuration.
type Config struct {
	General GeneralConfig `toml:"general"`
	Chart   ChartConfig   `toml:"chart"`
}

// GeneralConfig holds locale and time settings.
type GeneralConfig struct {
	Locale      string `toml:"locale" env:"FUNDBURN_LOCALE"`
	Timezone    string `toml:"timezone" env:"FUNDBURN_TIMEZONE"`
	HomeCountry string `toml:"home_country" env:"FUNDBURN_HOME_COUNTRY"`
	LogLevel    string `toml:"log_level" env:"FUNDBURN_LOG_LEVEL"`
}

// ChartConfig holds funding chart settings.
type ChartConfig struct {
	TickCount int `toml:"tick_count" env:"FUNDBURN_TICK_COUNT"`
	Width     int `toml:"width" env:"FUNDBURN_CHART_WIDTH"`
	Height    int `toml:"height" env:"FUNDBURN_CHART_HEIGHT"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			Locale:      "en-US",
			Timezone:    "UTC",
			HomeCountry: "US",
			LogLevel:    "warn",
		},
		Chart: ChartConfig{
			TickCount: 4,
			Width:     60,
			Height:    12,
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "fundburn")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "fundburn")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file at Path, then applies environment overrides.
func Load() (Config, error) {
	return LoadFrom(Path())
}

// LoadFrom reads the config file at path, returning defaults if it doesn't
// exist, then applies environment overrides.
func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config: %w", err)
		}
	case os.IsNotExist(err):
	default:
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parsing env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks values that cannot be defaulted silently.
func (c Config) Validate() error {
	if c.Chart.TickCount < 1 {
		return fmt.Errorf("chart.tick_count must be positive, got %d", c.Chart.TickCount)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses the configured log level.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.General.LogLevel)); err != nil {
		return l, fmt.Errorf("general.log_level: %w", err)
	}
	return l, nil
}

// Location resolves the configured time zone.
func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.General.Timezone)
	if err != nil {
		return nil, fmt.Errorf("general.timezone %q: %w", c.General.Timezone, err)
	}
	return loc, nil
}

// Save writes the config to path.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

// Exists returns true if a config file exists at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
