// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package clickdraw

import (
	"errors"
	"fmt"
	"math"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a configuration fails validation.
var ErrInvalidConfig = errors.New("clickdraw: invalid config")

// ColorConfig is a palette entry selectable with a key.
type ColorConfig struct {
	Name string `yaml:"name"`
	Hex  string `yaml:"hex"`
	Key  string `yaml:"key"`
}

// KeyConfig assigns a key to each non-color action.
type KeyConfig struct {
	Point    string `yaml:"point"`
	Triangle string `yaml:"triangle"`
	Square   string `yaml:"square"`
	HLine    string `yaml:"hline"`
	VLine    string `yaml:"vline"`
	Filled   string `yaml:"filled"`
	Outline  string `yaml:"outline"`
	Clear    string `yaml:"clear"`
}

// Config holds the application configuration.
type Config struct {
	Title      string        `yaml:"title"`
	Width      int           `yaml:"width"`
	Height     int           `yaml:"height"`
	Background string        `yaml:"background"`
	PointScale float64       `yaml:"point_scale"`
	FrameRate  int           `yaml:"frame_rate"`
	Colors     []ColorConfig `yaml:"colors"`
	Keys       KeyConfig     `yaml:"keys"`
}

// DefaultConfig returns the built-in configuration: an 800x600 canvas,
// blue and gold palette, and single-letter shortcuts.
func DefaultConfig() Config {
	return Config{
		Title:      "clickdraw",
		Width:      800,
		Height:     600,
		Background: "#000000",
		PointScale: DefaultPointScale,
		FrameRate:  60,
		Colors: []ColorConfig{
			{Name: "blue", Hex: "#022851", Key: "b"},
			{Name: "gold", Hex: "#FFBF00", Key: "g"},
		},
		Keys: KeyConfig{
			Point:    "p",
			Triangle: "t",
			Square:   "s",
			HLine:    "h",
			VLine:    "v",
			Filled:   "f",
			Outline:  "o",
			Clear:    "c",
		},
	}
}

// LoadConfig reads a YAML configuration file. Fields missing from the file
// keep their DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	Logger().Info("clickdraw: loaded config", "path", path, "colors", len(cfg.Colors))
	return cfg, nil
}

// ParseConfig decodes and validates a YAML configuration.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks dimensions, colors and key bindings.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.FrameRate <= 0 {
		return fmt.Errorf("%w: frame_rate %d", ErrInvalidConfig, c.FrameRate)
	}
	if c.PointScale < 0 || math.IsNaN(c.PointScale) || math.IsInf(c.PointScale, 0) {
		return fmt.Errorf("%w: point_scale %v", ErrInvalidConfig, c.PointScale)
	}
	if _, err := c.BackgroundColor(); err != nil {
		return err
	}
	if _, err := c.Palette(); err != nil {
		return err
	}
	_, err := c.Bindings()
	return err
}

// BackgroundColor returns the parsed background color.
func (c Config) BackgroundColor() (Color, error) {
	bg, err := ParseHex(c.Background)
	if err != nil {
		return Color{}, fmt.Errorf("%w: background: %w", ErrInvalidConfig, err)
	}
	return bg, nil
}

// Palette returns the parsed colors in configuration order.
func (c Config) Palette() ([]NamedColor, error) {
	if len(c.Colors) == 0 {
		return nil, fmt.Errorf("%w: no colors", ErrInvalidConfig)
	}
	palette := make([]NamedColor, 0, len(c.Colors))
	for i, cc := range c.Colors {
		col, err := ParseHex(cc.Hex)
		if err != nil {
			return nil, fmt.Errorf("%w: colors[%d] %q: %w", ErrInvalidConfig, i, cc.Name, err)
		}
		palette = append(palette, NamedColor{Name: cc.Name, Color: col})
	}
	return palette, nil
}

// Bindings returns the key bindings in priority order: shape kinds, then
// colors, then styles, then clear. Empty keys are left unbound.
func (c Config) Bindings() ([]Binding, error) {
	palette, err := c.Palette()
	if err != nil {
		return nil, err
	}

	type entry struct {
		name   string
		key    string
		action Action
	}
	entries := []entry{
		{"point", c.Keys.Point, Action{Type: ActionSelectKind, Kind: KindPoint}},
		{"triangle", c.Keys.Triangle, Action{Type: ActionSelectKind, Kind: KindTriangle}},
		{"square", c.Keys.Square, Action{Type: ActionSelectKind, Kind: KindSquare}},
		{"hline", c.Keys.HLine, Action{Type: ActionSelectKind, Kind: KindHLine}},
		{"vline", c.Keys.VLine, Action{Type: ActionSelectKind, Kind: KindVLine}},
	}
	for i, nc := range palette {
		entries = append(entries, entry{
			name:   "color " + nc.Name,
			key:    c.Colors[i].Key,
			action: Action{Type: ActionSelectColor, Color: nc},
		})
	}
	entries = append(entries,
		entry{"filled", c.Keys.Filled, Action{Type: ActionSelectStyle, Style: StyleFilled}},
		entry{"outline", c.Keys.Outline, Action{Type: ActionSelectStyle, Style: StyleOutline}},
		entry{"clear", c.Keys.Clear, Action{Type: ActionClear}},
	)

	bindings := make([]Binding, 0, len(entries))
	seen := make(map[Key]string, len(entries))
	for _, e := range entries {
		if e.key == "" {
			continue
		}
		k, err := parseKey(e.key)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, e.name, err)
		}
		if prev, dup := seen[k]; dup {
			return nil, fmt.Errorf("%w: key %q bound to both %s and %s", ErrInvalidConfig, e.key, prev, e.name)
		}
		seen[k] = e.name
		bindings = append(bindings, Binding{Key: k, Action: e.action})
	}
	return bindings, nil
}

func parseKey(s string) (Key, error) {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || size != len(s) {
		return 0, fmt.Errorf("key %q: want a single character", s)
	}
	return foldKey(Key(r)), nil
}
