// Package config loads the visualization configuration from TOML: surface
// size, padding, zoom bounds, grid spacing and the per-category style table.
// Every field has a default, so a missing file or an empty document still
// yields a usable configuration.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	colorful "github.com/lucasb-eyer/go-colorful"

	"chainviz/geo"
	"chainviz/geometry"
	"chainviz/scene"
)

// Canvas configures the raster surface. Width and height are fixed per
// instance.
type Canvas struct {
	Width   int     `toml:"width"`
	Height  int     `toml:"height"`
	Padding float64 `toml:"padding"`
}

// View configures the zoom bounds, step factor and grid spacing.
type View struct {
	ZoomMin     float64 `toml:"zoom_min"`
	ZoomMax     float64 `toml:"zoom_max"`
	ZoomStep    float64 `toml:"zoom_step"`
	GridSpacing float64 `toml:"grid_spacing"`
}

// CategoryStyle configures one facility category's appearance. Color is a
// hex string; Glyph is a single character.
type CategoryStyle struct {
	Color  string  `toml:"color"`
	Radius float64 `toml:"radius"`
	Glyph  string  `toml:"glyph"`
}

// Config is the full visualization configuration.
type Config struct {
	Canvas     Canvas                   `toml:"canvas"`
	View       View                     `toml:"view"`
	Categories map[string]CategoryStyle `toml:"categories"`
}

// Default returns the reference configuration.
func Default() Config {
	return Config{
		Canvas: Canvas{Width: 800, Height: 600, Padding: geo.DefaultPadding},
		View: View{
			ZoomMin:     geometry.DefaultZoomMin,
			ZoomMax:     geometry.DefaultZoomMax,
			ZoomStep:    geometry.DefaultZoomStep,
			GridSpacing: 50,
		},
	}
}

// Load reads a TOML config file, filling anything unset from the defaults.
// An empty path returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("config: canvas size must be positive, got %dx%d", c.Canvas.Width, c.Canvas.Height)
	}
	if c.View.ZoomMin <= 0 || c.View.ZoomMax < c.View.ZoomMin {
		return fmt.Errorf("config: bad zoom bounds [%v, %v]", c.View.ZoomMin, c.View.ZoomMax)
	}
	if c.View.ZoomStep <= 1 {
		return fmt.Errorf("config: zoom step must exceed 1, got %v", c.View.ZoomStep)
	}
	for name, cs := range c.Categories {
		if cs.Color != "" {
			if _, err := colorful.Hex(cs.Color); err != nil {
				return fmt.Errorf("config: category %q color %q: %w", name, cs.Color, err)
			}
		}
		if len([]rune(cs.Glyph)) > 1 {
			return fmt.Errorf("config: category %q glyph %q must be one character", name, cs.Glyph)
		}
	}
	return nil
}

// Limits converts the view section to scene zoom limits.
func (c Config) Limits() scene.ViewLimits {
	return scene.ViewLimits{
		ZoomMin:  c.View.ZoomMin,
		ZoomMax:  c.View.ZoomMax,
		ZoomStep: c.View.ZoomStep,
	}
}

// Styles builds the category style table: built-in defaults overridden by
// whatever the config names. Unrecognised category names are ignored.
func (c Config) Styles() scene.StyleTable {
	styles := scene.DefaultStyles()
	for name, cs := range c.Categories {
		cat := scene.ParseCategory(name)
		if cat == scene.Unknown && name != scene.Unknown.String() {
			continue
		}
		s := styles.Style(cat)
		if cs.Color != "" {
			if col, err := colorful.Hex(cs.Color); err == nil {
				s.Fill = col
			}
		}
		if cs.Radius > 0 {
			s.Radius = cs.Radius
		}
		if r := []rune(cs.Glyph); len(r) == 1 {
			s.Glyph = r[0]
		}
		styles[cat] = s
	}
	return styles
}
