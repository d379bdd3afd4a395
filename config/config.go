// Package config holds the tool configuration for the region commands:
// fit mode, zoom, and overlay styling. Configuration is loaded from an
// optional YAML file; command-line flags override individual fields.
package config

import (
	"fmt"
	"image/color"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mwhitfield/regionmark/view"
)

// Color is an RGBA color in YAML-friendly form (0-255 channels)
type Color struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
	A uint8 `yaml:"a"`
}

// NRGBA converts to the image/color representation
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Config holds user options for the region tools
type Config struct {
	FitMode  string  `yaml:"fit_mode"` // natural | fit_width | fit_height
	Zoom     float64 `yaml:"zoom"`     // overlay export scale
	Stroke   Color   `yaml:"stroke"`   // region border color
	Fill     Color   `yaml:"fill"`     // region fill color (translucent)
	LabelIDs bool    `yaml:"label_ids"`
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() Config {
	return Config{
		FitMode:  "natural",
		Zoom:     2.0,
		Stroke:   Color{A: 255},
		Fill:     Color{A: 40},
		LabelIDs: true,
	}
}

// Load reads a YAML config file, applying defaults for omitted fields
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if _, err := view.ParseFitMode(cfg.FitMode); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if cfg.Zoom <= 0 {
		return cfg, fmt.Errorf("config %s: zoom must be positive, got %g", path, cfg.Zoom)
	}
	return cfg, nil
}

// Style converts the config's drawing options to an overlay style
func (c Config) Style() view.Style {
	return view.Style{
		Stroke:   c.Stroke.NRGBA(),
		Fill:     c.Fill.NRGBA(),
		LabelIDs: c.LabelIDs,
	}
}
