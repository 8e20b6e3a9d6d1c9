package ebiten

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/leonelquinteros/gotext"
	log "github.com/sirupsen/logrus"

	"worldmap/pkg/game/mapview"
	"worldmap/pkg/game/renderer"
)

// Messages kept for the panel; older ones have faded anyway
const maxTrackedMessages = 20

// New creates a new Ebiten renderer
func New() *EbitenRenderer {
	return &EbitenRenderer{
		windowWidth:  defaultWindowWidth,
		windowHeight: defaultWindowHeight,
		icons:        make(map[iconKey]*ebiten.Image),
	}
}

// Init loads fonts and configures the window
func (e *EbitenRenderer) Init() error {
	if err := e.loadFonts(); err != nil {
		return err
	}

	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowTitle(gotext.Get("WORLD_MAP"))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return nil
}

// Run opens the window and drives the screen until it closes
func (e *EbitenRenderer) Run(screen *mapview.Screen) error {
	e.screen = screen
	screen.Resize(e.windowWidth, e.windowHeight)
	e.frame = screen.Frame(-1, -1)

	err := ebiten.RunGame(e)

	// Closing the window bypasses the controller; release held keys anyway
	screen.Controller().Close()
	if err != nil {
		return fmt.Errorf("run map window: %w", err)
	}

	log.Info("map window closed")
	return nil
}

// StyleText leaves text untouched; markup is colored when drawn
func (e *EbitenRenderer) StyleText(text string, style renderer.TextStyle) string {
	return text
}

// ShowMessage adds a message to the fading message panel
func (e *EbitenRenderer) ShowMessage(msg string) {
	e.trackedMessages = append(e.trackedMessages, messageEntry{
		Text:      msg,
		Timestamp: time.Now().UnixMilli(),
	})
	if len(e.trackedMessages) > maxTrackedMessages {
		e.trackedMessages = e.trackedMessages[len(e.trackedMessages)-maxTrackedMessages:]
	}
}

// GetViewportSize returns the window size in pixels
func (e *EbitenRenderer) GetViewportSize() (width, height int) {
	return e.windowWidth, e.windowHeight
}
