// Package poi models the points of interest shown on the world map.
package poi

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	// AlwaysVisible is the MinZoom sentinel for POIs that never fade.
	AlwaysVisible = -1.0

	// MinVisibleAlpha is the cut-off below which a POI is neither drawn nor hoverable.
	MinVisibleAlpha = 0.1

	// DefaultFadeDistance is the zoom distance over which a POI fades in.
	DefaultFadeDistance = 0.4
)

// Location is a point in world space
type Location struct {
	X, Z float64
}

// Locatable can report where it is. ok is false when the target is absent
// this frame.
type Locatable interface {
	Location() (loc Location, ok bool)
}

// Footprinted reports its on-screen size in pixels for a zoom and user scale.
type Footprinted interface {
	Footprint(zoom, scale float64) (width, height int)
}

// Fading reports its opacity for a zoom level.
type Fading interface {
	Alpha(zoom float64) float64
}

// Named carries the display name shown in the hover label.
type Named interface {
	Name() string
}

// Poi is everything the map needs from a point of interest.
type Poi interface {
	Locatable
	Footprinted
	Fading
	Named
}

// FadeWindow ramps opacity linearly from 0 at MinZoom-Distance to 1 at MinZoom.
type FadeWindow struct {
	Distance float64
}

// Alpha returns the opacity for a POI with the given zoom threshold.
func (f FadeWindow) Alpha(zoom, minZoom float64) float64 {
	if minZoom == AlwaysVisible {
		return 1
	}
	if f.Distance <= 0 {
		if zoom >= minZoom {
			return 1
		}
		return 0
	}
	lo := minZoom - f.Distance
	switch {
	case zoom <= lo:
		return 0
	case zoom >= minZoom:
		return 1
	}
	return mgl64.Clamp((zoom-lo)/f.Distance, 0, 1)
}

// Icon is the size provider for a POI graphic. Key identifies the artwork to
// the renderer; the core only reads the size.
type Icon struct {
	Key    string
	Width  int
	Height int
}

// Size returns the natural pixel size of the icon
func (i Icon) Size() (width, height int) {
	return i.Width, i.Height
}

// IconPoi is a POI drawn with a fixed icon.
type IconPoi struct {
	name    string
	icon    Icon
	locator Locator
	minZoom float64
	fade    FadeWindow
}

// Option configures an IconPoi
type Option func(*IconPoi)

// WithMinZoom sets the zoom level at which the POI becomes fully visible.
func WithMinZoom(z float64) Option {
	return func(p *IconPoi) {
		p.minZoom = z
	}
}

// WithFade overrides the fade window.
func WithFade(distance float64) Option {
	return func(p *IconPoi) {
		p.fade = FadeWindow{Distance: distance}
	}
}

// New creates an always-visible icon POI at the locator's position.
func New(name string, icon Icon, loc Locator, opts ...Option) *IconPoi {
	p := &IconPoi{
		name:    name,
		icon:    icon,
		locator: loc,
		minZoom: AlwaysVisible,
		fade:    FadeWindow{Distance: DefaultFadeDistance},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *IconPoi) Location() (Location, bool) {
	return p.locator.Resolve()
}

// Footprint scales the icon by the user scale, truncated to whole pixels.
// Icons keep a constant screen size regardless of zoom.
func (p *IconPoi) Footprint(zoom, scale float64) (int, int) {
	w, h := p.icon.Size()
	return int(math.Trunc(float64(w) * scale)), int(math.Trunc(float64(h) * scale))
}

func (p *IconPoi) Alpha(zoom float64) float64 {
	return p.fade.Alpha(zoom, p.minZoom)
}

func (p *IconPoi) Name() string {
	return p.name
}

// MinZoom returns the zoom threshold, or AlwaysVisible.
func (p *IconPoi) MinZoom() float64 {
	return p.minZoom
}

// Icon returns the icon the POI is drawn with
func (p *IconPoi) Icon() Icon {
	return p.icon
}

// IsDynamic reports whether the POI follows a moving target.
func (p *IconPoi) IsDynamic() bool {
	return p.locator.Dynamic()
}
