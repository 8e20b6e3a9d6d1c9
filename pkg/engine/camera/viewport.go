package camera

// Layout constants for the map frame, in screen pixels at border-texture scale 1.
const (
	SideOffset   = 10 // Gap between the window edge and the map border
	BorderOffset = 6  // Thickness of the border artwork around the map area
)

// Viewport is the screen rectangle the map is rendered into, plus the border
// insets scaled from the border texture. It is recomputed on every resize.
type Viewport struct {
	// Render rectangle (border included)
	X, Y          float64
	Width, Height float64

	// Border insets after scaling
	BorderX, BorderY float64

	// Full screen size the viewport was computed from
	ScreenWidth, ScreenHeight float64
}

// NewViewport lays the map out inside a screen of the given size. borderW and
// borderH are the pixel dimensions of the border texture; zero means unscaled.
func NewViewport(screenW, screenH int, borderW, borderH float64) Viewport {
	w, h := float64(screenW), float64(screenH)

	scaleX, scaleY := 1.0, 1.0
	if borderW > 0 {
		scaleX = w / borderW
	}
	if borderH > 0 {
		scaleY = h / borderH
	}

	return Viewport{
		X:            SideOffset,
		Y:            SideOffset,
		Width:        w - SideOffset*2,
		Height:       h - SideOffset*2,
		BorderX:      BorderOffset * scaleX,
		BorderY:      BorderOffset * scaleY,
		ScreenWidth:  w,
		ScreenHeight: h,
	}
}

// MapRect returns the drawable map area inside the border.
func (v Viewport) MapRect() (x, y, w, h float64) {
	return v.X + v.BorderX, v.Y + v.BorderY, v.Width - v.BorderX*2, v.Height - v.BorderY*2
}

// Center returns the screen-space center of the map area
func (v Viewport) Center() (x, z float64) {
	mx, my, mw, mh := v.MapRect()
	return mx + mw/2, my + mh/2
}

// Contains reports whether a screen point falls inside the map area
func (v Viewport) Contains(x, z float64) bool {
	mx, my, mw, mh := v.MapRect()
	return x >= mx && x < mx+mw && z >= my && z < my+mh
}
