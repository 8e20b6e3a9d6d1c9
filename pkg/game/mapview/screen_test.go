package mapview

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/leonelquinteros/gotext"

	"worldmap/pkg/engine/camera"
	"worldmap/pkg/engine/input"
	"worldmap/pkg/game/coords"
	"worldmap/pkg/game/poi"
)

type listSource []poi.Poi

func (l listSource) Pois() []poi.Poi { return l }

type testTracker struct {
	loc poi.Location
	ok  bool
}

func (t *testTracker) Position() (poi.Location, bool) { return t.loc, t.ok }

type memClipboard struct {
	text string
	err  error
}

func (m *memClipboard) ReadAll() (string, error) { return m.text, m.err }

func (m *memClipboard) WriteAll(s string) error {
	if m.err != nil {
		return m.err
	}
	m.text = s
	return nil
}

func newTestScreen(t *testing.T, src Source, tr Tracker, cb coords.Clipboard) *Screen {
	t.Helper()
	s := NewScreen(Options{
		Limits:    camera.DefaultLimits(),
		Clipboard: cb,
	}, src, tr, nil)
	s.Resize(800, 600)
	return s
}

func TestScreen_OpensOnTracked(t *testing.T) {
	tr := &testTracker{loc: poi.Location{X: -870, Z: -1580}, ok: true}
	s := newTestScreen(t, listSource{}, tr, nil)

	if x, z := s.Camera().Center(); x != -870 || z != -1580 {
		t.Errorf("Center() = (%v, %v), want tracked position", x, z)
	}

	tx, tz, ok := s.TrackedScreenPosition()
	if !ok || tx != 400 || tz != 300 {
		t.Errorf("TrackedScreenPosition() = (%v, %v, %v), want screen center", tx, tz, ok)
	}
}

func TestScreen_CenterOnTrackedAbsent(t *testing.T) {
	tr := &testTracker{}
	s := newTestScreen(t, listSource{}, tr, nil)
	s.Camera().RecenterOn(5, 5)

	if s.CenterOnTracked() {
		t.Error("CenterOnTracked() = true with absent target")
	}
	if x, z := s.Camera().Center(); x != 5 || z != 5 {
		t.Errorf("camera moved to (%v, %v)", x, z)
	}
	if _, _, ok := s.TrackedScreenPosition(); ok {
		t.Error("TrackedScreenPosition() ok with absent target")
	}
}

func TestScreen_FrameHoversPoiUnderPointer(t *testing.T) {
	p := poi.New("P", testIcon, poi.Static(100, 0))
	s := newTestScreen(t, listSource{p}, nil, nil)

	f := s.Frame(500, 300)
	e, ok := f.HoveredEntry()
	if !ok || e.Poi != p {
		t.Fatalf("hovered = %v, %v", e.Poi, ok)
	}
	if s.LastFrame().Hovered != 0 {
		t.Errorf("LastFrame().Hovered = %d", s.LastFrame().Hovered)
	}
}

func TestScreen_PointerOutsideMapDoesNotHover(t *testing.T) {
	// POI drawn under the left border
	p := poi.New("P", poi.Icon{Width: 40, Height: 40}, poi.Static(-395, 0))
	s := newTestScreen(t, listSource{p}, nil, nil)

	if f := s.Frame(5, 300); f.Hovered != NoHover {
		t.Errorf("hovered through the border")
	}
}

func TestScreen_PointerOverButtonDoesNotHover(t *testing.T) {
	s := newTestScreen(t, listSource{}, nil, nil)
	b := s.Buttons()[0]
	cx, cz := b.Bounds.Center()

	wx, wz := s.CursorWorld(cx, cz)
	s = newTestScreen(t, listSource{poi.New("P", testIcon, poi.Static(wx, wz))}, nil, nil)

	if f := s.Frame(cx, cz); f.Hovered != NoHover {
		t.Error("POI under a button took hover")
	}
}

func TestScreen_DragMovesCamera(t *testing.T) {
	s := newTestScreen(t, listSource{}, nil, nil)
	c := s.Controller()

	c.Press(input.ButtonPrimary, 300, 300)
	c.Move(350, 320)
	c.Release(input.ButtonPrimary, 350, 320)

	if x, z := s.Camera().Center(); x != -50 || z != -20 {
		t.Errorf("Center() = (%v, %v), want (-50, -20)", x, z)
	}
}

func TestScreen_ButtonsZoom(t *testing.T) {
	s := newTestScreen(t, listSource{}, nil, nil)
	zoomIn := s.Buttons()[0]
	cx, cz := zoomIn.Bounds.Center()

	s.Controller().Press(input.ButtonPrimary, cx, cz)
	if s.Controller().State() != input.Idle {
		t.Error("button click started a drag")
	}
	if want := 1 + camera.DefaultScrollFactor; !mgl64.FloatEqualThreshold(s.Camera().Zoom(), want, 1e-9) {
		t.Errorf("Zoom() = %v, want %v", s.Camera().Zoom(), want)
	}
}

func TestScreen_ButtonsInsideMap(t *testing.T) {
	s := newTestScreen(t, listSource{}, nil, nil)
	vp := s.Viewport()
	for _, b := range s.Buttons() {
		if !vp.Contains(b.Bounds.MinX, b.Bounds.MinZ) || !vp.Contains(b.Bounds.MaxX, b.Bounds.MaxZ) {
			t.Errorf("button %q at %+v outside the map", b.Label, b.Bounds)
		}
	}
}

func TestScreen_KeyActions(t *testing.T) {
	tr := &testTracker{loc: poi.Location{X: 10, Z: 10}, ok: true}
	s := newTestScreen(t, listSource{}, tr, nil)
	c := s.Controller()

	c.KeyDown("arrow_right")
	if x, _ := s.Camera().Center(); x != 10+input.PanStep {
		t.Errorf("after pan Center().X = %v", x)
	}

	c.KeyDown("space")
	if x, z := s.Camera().Center(); x != 10 || z != 10 {
		t.Errorf("after recenter Center() = (%v, %v)", x, z)
	}

	c.KeyDown("-")
	if s.Camera().Zoom() >= 1 {
		t.Errorf("Zoom() = %v after zoom out", s.Camera().Zoom())
	}

	c.KeyDown("escape")
	if !s.Closed() {
		t.Error("escape did not close the screen")
	}
}

func TestScreen_TickPassesHeldKeys(t *testing.T) {
	s := newTestScreen(t, listSource{}, nil, nil)
	var seen [][]string
	s.OnTick(func(k *input.KeyState) { seen = append(seen, k.Held()) })

	s.Controller().KeyDown("w")
	s.Tick()
	s.Controller().KeyUp("w")
	s.Tick()
	s.Controller().Close()
	s.Tick()

	if len(seen) != 2 || len(seen[0]) != 1 || seen[0][0] != "w" || len(seen[1]) != 0 {
		t.Errorf("ticks saw %v", seen)
	}
}

func TestScreen_CopyHoveredCoordinates(t *testing.T) {
	cb := &memClipboard{}
	p := poi.New("P", testIcon, poi.Static(100, 0))
	s := newTestScreen(t, listSource{p}, nil, cb)

	s.Frame(500, 300)
	if err := s.CopyCoordinates(); err != nil {
		t.Fatalf("CopyCoordinates: %v", err)
	}
	if cb.text != "100, 0" {
		t.Errorf("clipboard = %q, want %q", cb.text, "100, 0")
	}

	s.Frame(420, 330)
	if err := s.CopyCoordinates(); err != nil {
		t.Fatalf("CopyCoordinates: %v", err)
	}
	if cb.text != "20, 30" {
		t.Errorf("clipboard = %q, want cursor position", cb.text)
	}
	if s.Status() == "" {
		t.Error("no status after copy")
	}
}

func TestScreen_StatusMessagesCarryCoordinates(t *testing.T) {
	gotext.Configure(filepath.Join("..", "..", "..", "locales"), "en_GB", "default")

	cb := &memClipboard{text: "120 -1400"}
	s := newTestScreen(t, listSource{}, nil, cb)

	if err := s.PasteCoordinates(); err != nil {
		t.Fatalf("PasteCoordinates: %v", err)
	}
	if want := "Moved to PLACE{120, -1400}"; s.Status() != want {
		t.Errorf("Status() = %q, want %q", s.Status(), want)
	}

	s.Frame(400, 300)
	if err := s.CopyCoordinates(); err != nil {
		t.Fatalf("CopyCoordinates: %v", err)
	}
	if want := "Copied KEY{120, -1400} to the clipboard"; s.Status() != want {
		t.Errorf("Status() = %q, want %q", s.Status(), want)
	}
}

func TestScreen_PasteRecenters(t *testing.T) {
	cb := &memClipboard{text: "My location is at [120, 64, -1400]"}
	s := newTestScreen(t, listSource{}, nil, cb)

	if err := s.PasteCoordinates(); err != nil {
		t.Fatalf("PasteCoordinates: %v", err)
	}
	if x, z := s.Camera().Center(); x != 120 || z != -1400 {
		t.Errorf("Center() = (%v, %v)", x, z)
	}

	cb.text = "not a place"
	if err := s.PasteCoordinates(); !errors.Is(err, coords.ErrNoCoordinates) {
		t.Errorf("PasteCoordinates error = %v", err)
	}
	if x, _ := s.Camera().Center(); x != 120 {
		t.Error("failed paste moved the camera")
	}
}

func TestScreen_NoClipboard(t *testing.T) {
	s := newTestScreen(t, listSource{}, nil, nil)
	if err := s.CopyCoordinates(); !errors.Is(err, coords.ErrClipboardUnsupported) {
		t.Errorf("CopyCoordinates error = %v", err)
	}
	if err := s.PasteCoordinates(); !errors.Is(err, coords.ErrClipboardUnsupported) {
		t.Errorf("PasteCoordinates error = %v", err)
	}
}

func TestScreen_ResizeKeepsCenter(t *testing.T) {
	s := newTestScreen(t, listSource{}, nil, nil)
	s.Camera().RecenterOn(33, 44)
	s.Resize(1280, 720)

	sx, sz := s.Camera().WorldToScreen(33, 44)
	if sx != 640 || sz != 360 {
		t.Errorf("center projects to (%v, %v) after resize", sx, sz)
	}
	if got := s.CursorLabel(640, 360); got != "33, 44" {
		t.Errorf("CursorLabel = %q", got)
	}
}

func TestScreen_OnStatus(t *testing.T) {
	cb := &memClipboard{text: "nothing useful"}
	s := newTestScreen(t, listSource{}, nil, cb)

	var got []string
	s.OnStatus(func(msg string) { got = append(got, msg) })

	s.Controller().KeyDown("v")
	s.Controller().KeyDown("c")

	if len(got) != 2 {
		t.Fatalf("OnStatus saw %d lines, want 2: %v", len(got), got)
	}
	if got[1] != s.Status() {
		t.Errorf("last status %q, Status() = %q", got[1], s.Status())
	}
}

func TestScreen_OnDevAction(t *testing.T) {
	s := newTestScreen(t, listSource{
		poi.New("Ragni", poi.Icon{Key: "town", Width: 18, Height: 18}, poi.Static(0, 0)),
	}, nil, nil)
	s.Frame(400, 300)

	var (
		actions []input.Action
		entries []int
	)
	s.OnDevAction(func(a input.Action, f Frame) {
		actions = append(actions, a)
		entries = append(entries, len(f.Entries))
	})

	s.Controller().KeyDown("f8")
	s.Controller().KeyDown("f12")
	s.Controller().KeyDown("c")

	if len(actions) != 2 || actions[0] != input.ActionDebugDump || actions[1] != input.ActionScreenshot {
		t.Fatalf("OnDevAction saw %v", actions)
	}
	if entries[0] != 1 {
		t.Errorf("dev action frame has %d entries, want the last frame's 1", entries[0])
	}
	if s.Closed() {
		t.Error("developer keys closed the map")
	}
}

type countingTracker struct {
	loc   poi.Location
	calls int
}

func (c *countingTracker) Position() (poi.Location, bool) {
	c.calls++
	loc := c.loc
	// Moves on every read, so a second read in a frame would disagree
	c.loc.X += 10
	return loc, true
}

func TestScreen_TrackedReadOncePerFrame(t *testing.T) {
	tr := &countingTracker{}
	s := newTestScreen(t, nil, tr, nil)
	s.SetSource(listSource{poi.New("You", testIcon, poi.Dynamic(s.Tracked().Position))})
	s.Camera().RecenterOn(0, 0)
	tr.calls = 0

	f := s.Frame(0, 0)
	mx, mz, ok := s.TrackedScreenPosition()

	if tr.calls != 1 {
		t.Errorf("tracker read %d times in one frame, want 1", tr.calls)
	}
	if len(f.Entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(f.Entries))
	}
	e := f.Entries[0]
	if !ok || mx != e.ScreenX || mz != e.ScreenZ {
		t.Errorf("marker at (%v, %v, %v), POI at (%v, %v)", mx, mz, ok, e.ScreenX, e.ScreenZ)
	}

	s.Frame(0, 0)
	if tr.calls != 2 {
		t.Errorf("tracker read %d times over two frames, want 2", tr.calls)
	}
}
