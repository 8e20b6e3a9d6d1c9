// Package config holds the process-wide map settings.
package config

import (
	"errors"
	"flag"
	"fmt"

	"worldmap/pkg/engine/camera"
	"worldmap/pkg/game/poi"
)

// Renderer backends
const (
	RendererEbiten = "ebiten"
	RendererTUI    = "tui"
)

// Config holds the map settings. Settings are not persisted between runs.
type Config struct {
	MinZoom         float64
	MaxZoom         float64
	ScrollFactor    float64
	PoiFadeDistance float64
	PoiScale        float64

	// Player start position, which the map opens centered on
	CenterX, CenterZ float64

	Renderer string
	Locale   string
	Debug    bool

	// YAML place list replacing the built-in atlas, empty for the built-in one
	PlacesFile string

	// DevAtlas swaps the places for a dense test grid
	DevAtlas bool
}

// Default returns the stock settings
func Default() *Config {
	return &Config{
		MinZoom:         camera.DefaultMinZoom,
		MaxZoom:         camera.DefaultMaxZoom,
		ScrollFactor:    camera.DefaultScrollFactor,
		PoiFadeDistance: poi.DefaultFadeDistance,
		PoiScale:        1.0,
		Renderer:        RendererEbiten,
		Locale:          "en_GB",
	}
}

var current = Default()

// Current returns the active configuration
func Current() *Config {
	return current
}

// Set replaces the active configuration
func Set(cfg *Config) {
	current = cfg
}

// Bind registers a flag for every setting on fs, using the current values as
// defaults.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.Float64Var(&c.MinZoom, "min-zoom", c.MinZoom, "smallest zoom factor")
	fs.Float64Var(&c.MaxZoom, "max-zoom", c.MaxZoom, "largest zoom factor")
	fs.Float64Var(&c.ScrollFactor, "scroll-factor", c.ScrollFactor, "relative zoom change per scroll step")
	fs.Float64Var(&c.PoiFadeDistance, "poi-fade", c.PoiFadeDistance, "zoom distance over which POIs fade in")
	fs.Float64Var(&c.PoiScale, "poi-scale", c.PoiScale, "scale applied to POI icons")
	fs.Float64Var(&c.CenterX, "x", c.CenterX, "player start X")
	fs.Float64Var(&c.CenterZ, "z", c.CenterZ, "player start Z")
	fs.StringVar(&c.Renderer, "renderer", c.Renderer, "renderer backend: ebiten or tui")
	fs.StringVar(&c.Locale, "locale", c.Locale, "language for UI text")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "enable debug logging")
	fs.StringVar(&c.PlacesFile, "places", c.PlacesFile, "YAML file of places to show instead of the built-in atlas")
	fs.BoolVar(&c.DevAtlas, "dev-atlas", c.DevAtlas, "load a grid of test places instead of the built-in atlas")
}

// Validate checks the settings are usable together.
func (c *Config) Validate() error {
	var errs []error

	if c.MinZoom <= 0 {
		errs = append(errs, fmt.Errorf("min-zoom must be positive, got %v", c.MinZoom))
	}
	if c.MaxZoom < c.MinZoom {
		errs = append(errs, fmt.Errorf("max-zoom %v is below min-zoom %v", c.MaxZoom, c.MinZoom))
	}
	if c.ScrollFactor <= 0 || c.ScrollFactor >= 1 {
		errs = append(errs, fmt.Errorf("scroll-factor must be in (0, 1), got %v", c.ScrollFactor))
	}
	if c.PoiFadeDistance < 0 {
		errs = append(errs, fmt.Errorf("poi-fade must not be negative, got %v", c.PoiFadeDistance))
	}
	if c.PoiScale <= 0 {
		errs = append(errs, fmt.Errorf("poi-scale must be positive, got %v", c.PoiScale))
	}
	if c.Renderer != RendererEbiten && c.Renderer != RendererTUI {
		errs = append(errs, fmt.Errorf("unknown renderer %q", c.Renderer))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Limits returns the camera zoom limits
func (c *Config) Limits() camera.Limits {
	return camera.Limits{
		MinZoom:      c.MinZoom,
		MaxZoom:      c.MaxZoom,
		ScrollFactor: c.ScrollFactor,
	}
}
