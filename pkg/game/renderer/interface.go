package renderer

import (
	"worldmap/pkg/game/mapview"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleTown
	StyleQuest
	StyleCave
	StyleShrine
	StylePlayer
	StyleHovered
	StyleKey
	StyleSubtle
	StyleDenied
)

// Renderer defines the interface for map rendering backends.
// Implementations are the terminal (TUI) and Ebiten.
type Renderer interface {
	// Init prepares the renderer (colors, fonts, window, etc.)
	Init() error

	// Run drives the screen until the user closes it. Input is fed to the
	// screen's controller and a frame is drawn per update.
	Run(screen *mapview.Screen) error

	// StyleText applies a style to text and returns the styled string
	// For TUI this applies ANSI colors, for GUI it may return markup
	StyleText(text string, style TextStyle) string

	// ShowMessage displays a message to the user
	ShowMessage(msg string)

	// GetViewportSize returns the drawing surface size in pixels
	GetViewportSize() (width, height int)
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Init initializes the current renderer
func Init() error {
	if Current != nil {
		return Current.Init()
	}
	return nil
}

// Run runs the screen on the current renderer
func Run(screen *mapview.Screen) error {
	if Current != nil {
		return Current.Run(screen)
	}
	return nil
}

// StyleText applies a style to text
func StyleText(text string, style TextStyle) string {
	if Current != nil {
		return Current.StyleText(text, style)
	}
	return text
}

// ShowMessage displays a message with the current renderer
func ShowMessage(msg string) {
	if Current != nil {
		Current.ShowMessage(msg)
	}
}

// GetViewportSize returns viewport dimensions
func GetViewportSize() (width, height int) {
	if Current != nil {
		return Current.GetViewportSize()
	}
	return 800, 600 // sensible defaults
}
