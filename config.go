package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"

	"github.com/sdahlbac/palettegen/colorspace"
	"github.com/sdahlbac/palettegen/export"
	"github.com/sdahlbac/palettegen/palette"
)

// Palette size limits accepted from the config file.
const (
	MinCount = 1
	MaxCount = 12

	DefaultBase = "#3366cc"
)

// Config holds the user's defaults, read from a TOML file.
type Config struct {
	Count        int    `toml:"count"`
	Strategy     string `toml:"strategy"`
	Mood         string `toml:"mood"`
	Base         string `toml:"base"`
	ExportFormat string `toml:"export_format"`
	LargeText    bool   `toml:"large_text"`
}

// DefaultConfig is used when no config file exists. Keys missing from the
// file keep these values.
func DefaultConfig() Config {
	return Config{
		Count:        palette.DefaultCount,
		Strategy:     string(palette.StrategyRandom),
		Mood:         string(palette.Calm),
		Base:         DefaultBase,
		ExportFormat: string(export.Text),
	}
}

// configPath returns $PALETTEGEN_CONFIG with '~' expanded, or
// ~/.config/palettegen/config.toml.
func configPath() (string, error) {
	if p := os.Getenv(EnvConfig); p != "" {
		expanded, err := homedir.Expand(p)
		if err != nil {
			return "", fmt.Errorf("failed to expand %s: %w", EnvConfig, err)
		}
		return expanded, nil
	}

	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("failed to locate home directory: %w", err)
	}
	return filepath.Join(home, ".config", "palettegen", "config.toml"), nil
}

// LoadConfig reads the config file at path. A missing file is not an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to open config: %w", err)
	}
	defer f.Close()

	if err := toml.NewDecoder(f).DisallowUnknownFields().Decode(&cfg); err != nil {
		var sme *toml.StrictMissingError
		if errors.As(err, &sme) {
			return DefaultConfig(), fmt.Errorf("%w: %s: unknown keys %s", ErrInvalidConfig, path, strings.Join(unknownKeys(sme), ", "))
		}
		return DefaultConfig(), fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, err)
	}
	if err := cfg.Validate(); err != nil {
		return DefaultConfig(), fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func unknownKeys(sme *toml.StrictMissingError) []string {
	keys := make([]string, len(sme.Errors))
	for i, e := range sme.Errors {
		keys[i] = strings.Join(e.Key(), ".")
	}
	return keys
}

// Validate reports every invalid field. Each problem wraps ErrInvalidConfig.
func (c Config) Validate() error {
	var errs []error
	if c.Count < MinCount || c.Count > MaxCount {
		errs = append(errs, fmt.Errorf("%w: count %d is outside %d..%d", ErrInvalidConfig, c.Count, MinCount, MaxCount))
	}
	if _, ok := palette.ParseStrategy(c.Strategy); !ok {
		errs = append(errs, fmt.Errorf("%w: unknown strategy %q", ErrInvalidConfig, c.Strategy))
	}
	if _, ok := palette.ParseMood(c.Mood); !ok {
		errs = append(errs, fmt.Errorf("%w: unknown mood %q", ErrInvalidConfig, c.Mood))
	}
	if !colorspace.IsHex(c.Base) {
		errs = append(errs, fmt.Errorf("%w: base %q is not a hex colour", ErrInvalidConfig, c.Base))
	}
	if _, err := export.ParseFormat(c.ExportFormat); err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrInvalidConfig, err))
	}
	return errors.Join(errs...)
}

// Request is the generation request described by c.
func (c Config) Request() palette.Request {
	st, ok := palette.ParseStrategy(c.Strategy)
	if !ok {
		st = palette.StrategyRandom
	}
	mood, ok := palette.ParseMood(c.Mood)
	if !ok {
		mood = palette.Calm
	}
	base, ok := colorspace.Canonical(c.Base)
	if !ok {
		base = DefaultBase
	}
	return palette.Request{Strategy: st, Base: base, Mood: mood, Count: c.Count}
}

// Format is the export format described by c, text if unset or unknown.
func (c Config) Format() export.Format {
	f, err := export.ParseFormat(c.ExportFormat)
	if err != nil {
		return export.Text
	}
	return f
}
