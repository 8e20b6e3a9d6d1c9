// Package ebiten provides an Ebiten-based 2D graphical renderer for the world map.
package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"worldmap/pkg/game/mapview"
)

// messageEntry represents a message with timestamp for fade-out
type messageEntry struct {
	Text      string
	Timestamp int64 // Unix timestamp in milliseconds when message was added
}

// textSegment represents a segment of text with a specific color
type textSegment struct {
	text  string
	color color.Color
}

// EbitenRenderer is the Ebiten-based graphical renderer
type EbitenRenderer struct {
	// Window dimensions
	windowWidth  int
	windowHeight int

	// Font sources for text rendering
	monoFontSource *text.GoTextFaceSource // Monospace font for the coordinate readout
	sansFontSource *text.GoTextFaceSource // Sans-serif font for labels and UI text

	// Cached font faces
	cachedMonoFace  *text.GoTextFace
	cachedSansFace  *text.GoTextFace
	cachedLabelFace *text.GoTextFace

	// Generated icon images, keyed by icon key and size
	icons map[iconKey]*ebiten.Image

	// Single white pixel used as the source for triangle fills
	whitePixel *ebiten.Image

	// Open map screen, set by Run
	screen *mapview.Screen

	// Frame computed by the last update, drawn by Draw
	frame mapview.Frame

	// Flag to track if we've logged window opening
	windowOpenedLogged bool

	// Mouse position seen on the previous update
	lastCursorX, lastCursorY int

	// Messages to display with timestamps for fade-out
	trackedMessages []messageEntry
}

// iconKey identifies a generated icon image
type iconKey struct {
	key  string
	w, h int
}
