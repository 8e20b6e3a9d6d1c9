// Package camera maps between world space and screen space for a 2D map view.
//
// World space uses (x, z) with z growing downward on screen, matching the
// orientation of the rendered map. Screen space is in pixels.
package camera

import (
	"github.com/go-gl/mathgl/mgl64"

	"worldmap/pkg/engine/geom"
)

// Zoom limits and scroll step used when no configuration overrides them
const (
	DefaultMinZoom      = 0.1
	DefaultMaxZoom      = 3.0
	DefaultScrollFactor = 0.08
)

// Limits bounds the zoom level and sets the relative zoom step per scroll unit.
type Limits struct {
	MinZoom      float64
	MaxZoom      float64
	ScrollFactor float64
}

// DefaultLimits returns the stock zoom limits
func DefaultLimits() Limits {
	return Limits{
		MinZoom:      DefaultMinZoom,
		MaxZoom:      DefaultMaxZoom,
		ScrollFactor: DefaultScrollFactor,
	}
}

// Camera holds the world point shown at the map center and the zoom factor
// (screen pixels per world unit). Zoom always stays within the limits.
type Camera struct {
	centerX, centerZ float64
	zoom             float64
	limits           Limits

	// screen position the camera center projects to
	screenCX, screenCZ float64
}

// New creates a camera at the world origin with zoom 1, clamped to limits.
func New(limits Limits) *Camera {
	c := &Camera{limits: limits}
	c.SetZoom(1)
	return c
}

// Limits returns the zoom bounds the camera was created with
func (c *Camera) Limits() Limits {
	return c.limits
}

// Zoom returns the current zoom factor
func (c *Camera) Zoom() float64 {
	return c.zoom
}

// Center returns the world point at the middle of the map area
func (c *Camera) Center() (x, z float64) {
	return c.centerX, c.centerZ
}

// ScreenCenter returns where the camera center lands on screen
func (c *Camera) ScreenCenter() (x, z float64) {
	return c.screenCX, c.screenCZ
}

// SetViewport anchors the camera to the center of the viewport's map area.
func (c *Camera) SetViewport(vp Viewport) {
	c.screenCX, c.screenCZ = vp.Center()
}

// WorldToScreen projects a world point to screen pixels.
func (c *Camera) WorldToScreen(wx, wz float64) (sx, sz float64) {
	sx = c.screenCX + (wx-c.centerX)*c.zoom
	sz = c.screenCZ + (wz-c.centerZ)*c.zoom
	return sx, sz
}

// ScreenToWorld is the inverse of WorldToScreen.
func (c *Camera) ScreenToWorld(sx, sz float64) (wx, wz float64) {
	wx = c.centerX + (sx-c.screenCX)/c.zoom
	wz = c.centerZ + (sz-c.screenCZ)/c.zoom
	return wx, wz
}

// Pan moves the camera by a screen-space delta. A positive dx moves the
// view to the right, so content appears to slide left.
func (c *Camera) Pan(dx, dz float64) {
	c.centerX += dx / c.zoom
	c.centerZ += dz / c.zoom
}

// ZoomBy applies delta scroll units multiplicatively and clamps the result.
func (c *Camera) ZoomBy(delta float64) {
	c.SetZoom(c.zoom + delta*c.limits.ScrollFactor*c.zoom)
}

// SetZoom sets the zoom level, clamped to the camera limits.
func (c *Camera) SetZoom(z float64) {
	c.zoom = mgl64.Clamp(z, c.limits.MinZoom, c.limits.MaxZoom)
}

// RecenterOn moves the camera center to a world point.
func (c *Camera) RecenterOn(wx, wz float64) {
	c.centerX, c.centerZ = wx, wz
}

// VisibleBox returns the world-space region covered by a screen area of the
// given size centered on the camera.
func (c *Camera) VisibleBox(screenW, screenH float64) geom.BoundingBox {
	return geom.Centered(c.centerX, c.centerZ, screenW/c.zoom, screenH/c.zoom)
}
