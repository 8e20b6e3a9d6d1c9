package mapview

import (
	"errors"
	"fmt"

	"github.com/leonelquinteros/gotext"
	log "github.com/sirupsen/logrus"

	"worldmap/pkg/engine/camera"
	"worldmap/pkg/engine/input"
	"worldmap/pkg/game/coords"
	"worldmap/pkg/game/poi"
)

// Source supplies the POIs for a frame. Order matters: later POIs win
// hover ties.
type Source interface {
	Pois() []poi.Poi
}

// Tracker reports the position of the entity the map follows.
type Tracker interface {
	Position() (poi.Location, bool)
}

// TextService draws a string anchored at a screen point.
type TextService interface {
	DrawText(s string, x, y float64)
}

// Map button geometry, in screen pixels
const (
	ButtonSize    = 24.0
	ButtonSpacing = 4.0
)

// Options configures a Screen.
type Options struct {
	Limits   camera.Limits
	PoiScale float64

	// Pixel size of the border artwork, 0 for unscaled insets
	BorderWidth, BorderHeight float64

	// Nil disables copy and paste
	Clipboard coords.Clipboard
}

// Screen is an open map: it owns the camera and viewport, drives them from
// the input controller and produces a Frame on demand.
type Screen struct {
	opts Options

	camera     *camera.Camera
	viewport   camera.Viewport
	controller *input.Controller

	source  Source
	tracker Tracker
	tracked *trackedSnapshot

	buttons []*input.Button
	onTick  []func(*input.KeyState)

	onStatus []func(string)
	onDev    []func(input.Action, Frame)

	last               Frame
	pointerX, pointerZ float64
	status             string
}

// NewScreen opens a map over source. keys is shared with whatever moves the
// player underneath; tracker may be nil. source may be nil and set later
// with SetSource.
func NewScreen(opts Options, source Source, tracker Tracker, keys *input.KeyState) *Screen {
	if opts.PoiScale <= 0 {
		opts.PoiScale = 1
	}

	s := &Screen{
		opts:    opts,
		camera:  camera.New(opts.Limits),
		source:  source,
		tracker: tracker,
		tracked: &trackedSnapshot{},
		last:    Frame{Hovered: NoHover},
	}
	s.controller = input.NewController(s.camera, keys)
	s.controller.OnAction(s.handleAction)

	s.buttons = []*input.Button{
		input.NewButton("+", 0, 0, ButtonSize, ButtonSize, func() { s.camera.ZoomBy(1) }),
		input.NewButton("-", 0, 0, ButtonSize, ButtonSize, func() { s.camera.ZoomBy(-1) }),
		input.NewButton("o", 0, 0, ButtonSize, ButtonSize, func() { s.CenterOnTracked() }),
	}
	for _, b := range s.buttons {
		s.controller.AddWidget(b)
	}

	s.CenterOnTracked()
	return s
}

// Camera returns the camera owned by the screen
func (s *Screen) Camera() *camera.Camera {
	return s.camera
}

// Viewport returns the current layout
func (s *Screen) Viewport() camera.Viewport {
	return s.viewport
}

// Controller returns the input controller events should be fed to
func (s *Screen) Controller() *input.Controller {
	return s.controller
}

// Buttons returns the map buttons in the order they are laid out
func (s *Screen) Buttons() []*input.Button {
	return s.buttons
}

// Closed reports whether the user closed the map
func (s *Screen) Closed() bool {
	return s.controller.Closed()
}

// LastFrame returns the frame from the most recent Frame call
func (s *Screen) LastFrame() Frame {
	return s.last
}

// Status returns the latest status line, already translated
func (s *Screen) Status() string {
	return s.status
}

// OnTick registers fn to run every Tick with the held keys.
func (s *Screen) OnTick(fn func(*input.KeyState)) {
	s.onTick = append(s.onTick, fn)
}

// Tick advances whatever runs under the map, once per update.
func (s *Screen) Tick() {
	if s.Closed() {
		return
	}
	for _, fn := range s.onTick {
		fn(s.controller.Keys())
	}
}

// Resize lays the map out for a new screen size. Call it between frames.
func (s *Screen) Resize(width, height int) {
	s.viewport = camera.NewViewport(width, height, s.opts.BorderWidth, s.opts.BorderHeight)
	s.camera.SetViewport(s.viewport)

	mx, my, mw, mh := s.viewport.MapRect()
	x := mx + mw - ButtonSpacing
	y := my + mh - ButtonSize - ButtonSpacing
	for i := len(s.buttons) - 1; i >= 0; i-- {
		x -= ButtonSize
		s.buttons[i].Move(x, y)
		x -= ButtonSpacing
	}
	log.Debugf("map resized to %dx%d", width, height)
}

// Frame filters the source for the current camera with the pointer at
// (px, pz) and returns the result with the hovered entry first. The tracker
// is read once per frame.
func (s *Screen) Frame(px, pz float64) Frame {
	_, _, w, h := s.viewport.MapRect()

	q := Query{
		Camera:     s.camera,
		Visible:    s.camera.VisibleBox(w, h),
		PointerX:   px,
		PointerZ:   pz,
		HasPointer: s.viewport.Contains(px, pz) && s.controller.WidgetAt(px, pz) == nil,
		Scale:      s.opts.PoiScale,
	}

	s.refreshTracked()

	var pois []poi.Poi
	if s.source != nil {
		pois = s.source.Pois()
	}
	s.last = ResolveHover(Filter(q, pois))
	s.pointerX, s.pointerZ = px, pz
	return s.last
}

// CursorWorld returns the world point under the screen point
func (s *Screen) CursorWorld(px, pz float64) (x, z float64) {
	return s.camera.ScreenToWorld(px, pz)
}

// CursorLabel formats the world point under the screen point as "x, z"
func (s *Screen) CursorLabel(px, pz float64) string {
	return coords.Format(s.CursorWorld(px, pz))
}

// trackedSnapshot holds the tracked position read once per frame. POIs that
// follow the tracked entity resolve through it, so the marker and the icon
// agree within a frame.
type trackedSnapshot struct {
	loc poi.Location
	ok  bool
}

// Position returns the position captured for the current frame
func (t *trackedSnapshot) Position() (poi.Location, bool) {
	return t.loc, t.ok
}

// Tracked returns a tracker that reports the tracked position as of the
// last frame. Build tracked POIs on it instead of the live tracker.
func (s *Screen) Tracked() Tracker {
	return s.tracked
}

// SetSource replaces the POI source
func (s *Screen) SetSource(source Source) {
	s.source = source
}

// refreshTracked reads the live tracker once into the snapshot
func (s *Screen) refreshTracked() (poi.Location, bool) {
	if s.tracker == nil {
		s.tracked.loc, s.tracked.ok = poi.Location{}, false
	} else {
		s.tracked.loc, s.tracked.ok = s.tracker.Position()
	}
	return s.tracked.loc, s.tracked.ok
}

// TrackedScreenPosition projects the tracked position captured by the last
// frame.
func (s *Screen) TrackedScreenPosition() (x, z float64, ok bool) {
	if !s.tracked.ok {
		return 0, 0, false
	}
	x, z = s.camera.WorldToScreen(s.tracked.loc.X, s.tracked.loc.Z)
	return x, z, true
}

// CenterOnTracked recenters the camera on the tracked entity. It reports
// false and leaves the camera alone when nothing is tracked.
func (s *Screen) CenterOnTracked() bool {
	loc, ok := s.refreshTracked()
	if !ok {
		return false
	}
	s.camera.RecenterOn(loc.X, loc.Z)
	log.Debugf("map recentered on tracked entity at (%.1f, %.1f)", loc.X, loc.Z)
	return true
}

// CopyCoordinates copies the hovered POI location, or the point under the
// pointer, to the clipboard.
func (s *Screen) CopyCoordinates() error {
	if s.opts.Clipboard == nil {
		return coords.ErrClipboardUnsupported
	}

	x, z := s.CursorWorld(s.pointerX, s.pointerZ)
	if e, ok := s.last.HoveredEntry(); ok {
		x, z = e.World.X, e.World.Z
	}

	text, err := coords.Copy(s.opts.Clipboard, x, z)
	if err != nil {
		s.setStatus(gotext.Get("CLIPBOARD_UNAVAILABLE"))
		return err
	}
	s.setStatus(fmt.Sprintf(gotext.Get("COPIED_COORDINATES"), text))
	return nil
}

// PasteCoordinates recenters on coordinates read from the clipboard.
func (s *Screen) PasteCoordinates() error {
	if s.opts.Clipboard == nil {
		return coords.ErrClipboardUnsupported
	}

	p, err := coords.Paste(s.opts.Clipboard)
	switch {
	case errors.Is(err, coords.ErrNoCoordinates):
		s.setStatus(gotext.Get("NO_COORDINATES"))
		return err
	case err != nil:
		s.setStatus(gotext.Get("CLIPBOARD_UNAVAILABLE"))
		return err
	}

	s.camera.RecenterOn(float64(p.X), float64(p.Z))
	s.setStatus(fmt.Sprintf(gotext.Get("MOVED_TO"), coords.Format(float64(p.X), float64(p.Z))))
	return nil
}

// OnDevAction registers fn for developer tool actions. It receives the
// last frame produced.
func (s *Screen) OnDevAction(fn func(input.Action, Frame)) {
	s.onDev = append(s.onDev, fn)
}

// OnStatus registers fn to receive every new status line.
func (s *Screen) OnStatus(fn func(string)) {
	s.onStatus = append(s.onStatus, fn)
}

func (s *Screen) setStatus(msg string) {
	s.status = msg
	for _, fn := range s.onStatus {
		fn(msg)
	}
}

func (s *Screen) handleAction(a input.Action) {
	switch a {
	case input.ActionPanNorth, input.ActionPanSouth, input.ActionPanWest, input.ActionPanEast:
		s.controller.PanBy(a)
	case input.ActionZoomIn:
		s.camera.ZoomBy(1)
	case input.ActionZoomOut:
		s.camera.ZoomBy(-1)
	case input.ActionRecenter:
		s.CenterOnTracked()
	case input.ActionCopyCoordinates:
		if err := s.CopyCoordinates(); err != nil {
			log.Warnf("copy coordinates: %v", err)
		}
	case input.ActionPasteCoordinates:
		if err := s.PasteCoordinates(); err != nil {
			log.Warnf("paste coordinates: %v", err)
		}
	case input.ActionDebugDump, input.ActionScreenshot:
		for _, fn := range s.onDev {
			fn(a, s.last)
		}
	}
}
