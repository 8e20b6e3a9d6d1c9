package input

import (
	"time"

	log "github.com/sirupsen/logrus"
)

// DragState is the state of the map drag gesture.
type DragState int

const (
	Idle DragState = iota
	Dragging
)

func (s DragState) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

// MouseButton identifies a pointer button.
type MouseButton int

const (
	ButtonPrimary MouseButton = iota
	ButtonSecondary
	ButtonMiddle
)

// PanStep is the screen distance moved per keyboard pan, in pixels.
const PanStep = 48.0

// Camera is what the controller drives.
type Camera interface {
	Pan(dx, dz float64)
	ZoomBy(delta float64)
}

// Controller turns pointer and key events into camera movement. It drags
// with the primary button, zooms on scroll, records keys into a KeyState and
// closes on Escape. Once closed it ignores every event.
type Controller struct {
	camera  Camera
	keys    *KeyState
	device  Device
	widgets []Widget

	state        DragState
	lastX, lastZ float64

	closed   bool
	onClose  []func()
	onAction func(Action)
}

// NewController creates an idle controller. keys may be shared with the
// movement system; nil allocates a private KeyState.
func NewController(cam Camera, keys *KeyState) *Controller {
	if keys == nil {
		keys = NewKeyState()
	}
	return &Controller{
		camera: cam,
		keys:   keys,
		device: DeviceKeyboard,
	}
}

// SetDevice sets the device reported with key events.
func (c *Controller) SetDevice(d Device) {
	c.device = d
}

// AddWidget registers a child widget. Later widgets sit on top.
func (c *Controller) AddWidget(w Widget) {
	c.widgets = append(c.widgets, w)
}

// OnClose registers fn to run once when the controller closes.
func (c *Controller) OnClose(fn func()) {
	c.onClose = append(c.onClose, fn)
}

// OnAction sets the handler for bound key actions other than Close.
func (c *Controller) OnAction(fn func(Action)) {
	c.onAction = fn
}

// State returns the current drag state
func (c *Controller) State() DragState {
	return c.state
}

// Closed reports whether the controller has closed
func (c *Controller) Closed() bool {
	return c.closed
}

// Keys returns the pass-through key state
func (c *Controller) Keys() *KeyState {
	return c.keys
}

// WidgetAt returns the topmost widget under the point, or nil.
func (c *Controller) WidgetAt(x, z float64) Widget {
	for i := len(c.widgets) - 1; i >= 0; i-- {
		if c.widgets[i].Contains(x, z) {
			return c.widgets[i]
		}
	}
	return nil
}

// Press handles a pointer button going down at (x, z).
func (c *Controller) Press(button MouseButton, x, z float64) {
	if c.closed || button != ButtonPrimary {
		return
	}
	if w := c.WidgetAt(x, z); w != nil {
		w.Click()
		return
	}
	c.state = Dragging
	c.lastX, c.lastZ = x, z
	log.Debugf("map drag started at (%.0f, %.0f)", x, z)
}

// Move handles pointer motion. While dragging the camera follows the pointer.
func (c *Controller) Move(x, z float64) {
	if c.closed {
		return
	}
	if c.state == Dragging {
		c.camera.Pan(c.lastX-x, c.lastZ-z)
	}
	c.lastX, c.lastZ = x, z
}

// Release handles a pointer button going up.
func (c *Controller) Release(button MouseButton, x, z float64) {
	if c.closed || button != ButtonPrimary {
		return
	}
	if c.state == Dragging {
		if x != c.lastX || z != c.lastZ {
			c.Move(x, z)
		}
		log.Debugf("map drag ended at (%.0f, %.0f)", x, z)
	}
	c.state = Idle
}

// Scroll zooms by delta scroll units, whatever the drag state.
func (c *Controller) Scroll(delta float64) {
	if c.closed || delta == 0 {
		return
	}
	c.camera.ZoomBy(delta)
}

// KeyDown records a held key and dispatches its bound action.
func (c *Controller) KeyDown(code string) {
	if c.closed {
		return
	}
	c.keys.Set(code, true)

	ev := NewDebouncedInput(RawInput{Device: c.device, Code: code, Timestamp: time.Now()})
	switch intent := MapToIntent(ev); intent.Action {
	case ActionNone:
	case ActionClose:
		c.Close()
	default:
		if c.onAction != nil {
			c.onAction(intent.Action)
		}
	}
}

// KeyUp records a released key.
func (c *Controller) KeyUp(code string) {
	if c.closed {
		return
	}
	c.keys.Set(code, false)
}

// PanBy pans the camera one keyboard step in the direction of the action.
func (c *Controller) PanBy(a Action) {
	if c.closed {
		return
	}
	switch a {
	case ActionPanNorth:
		c.camera.Pan(0, -PanStep)
	case ActionPanSouth:
		c.camera.Pan(0, PanStep)
	case ActionPanWest:
		c.camera.Pan(-PanStep, 0)
	case ActionPanEast:
		c.camera.Pan(PanStep, 0)
	}
}

// Close ends the controller. Held keys are released so nothing stays stuck
// in the movement system.
func (c *Controller) Close() {
	if c.closed {
		return
	}
	c.closed = true
	c.state = Idle
	c.keys.Clear()
	log.Info("map closed")
	for _, fn := range c.onClose {
		fn()
	}
}
