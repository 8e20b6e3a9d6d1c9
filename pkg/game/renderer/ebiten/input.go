package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	log "github.com/sirupsen/logrus"

	engineinput "worldmap/pkg/engine/input"
)

// Key repeat timing, in ticks at the default 60 TPS
const (
	keyRepeatInitialDelay = 30
	keyRepeatInterval     = 6
)

// keyCodes maps Ebiten keys to the device-neutral codes used by the bindings
var keyCodes = map[ebiten.Key]string{
	ebiten.KeyArrowUp:        "arrow_up",
	ebiten.KeyArrowDown:      "arrow_down",
	ebiten.KeyArrowLeft:      "arrow_left",
	ebiten.KeyArrowRight:     "arrow_right",
	ebiten.KeyEscape:         "escape",
	ebiten.KeySpace:          "space",
	ebiten.KeyEnter:          "enter",
	ebiten.KeyEqual:          "=",
	ebiten.KeyMinus:          "-",
	ebiten.KeyNumpadAdd:      "numpad_add",
	ebiten.KeyNumpadSubtract: "numpad_subtract",
	ebiten.KeyShiftLeft:      "shift",
	ebiten.KeyShiftRight:     "shift",
	ebiten.KeyF8:             "f8",
	ebiten.KeyF12:            "f12",
}

func init() {
	for k := ebiten.KeyA; k <= ebiten.KeyZ; k++ {
		keyCodes[k] = string(rune('a' + (k - ebiten.KeyA)))
	}
	for k := ebiten.Key0; k <= ebiten.Key9; k++ {
		keyCodes[k] = string(rune('0' + (k - ebiten.Key0)))
	}
}

// Gamepad button indices, tuned for common XInput-style controllers on Linux
var gamepadCodes = map[ebiten.GamepadButton]string{
	ebiten.GamepadButton11: "gamepad_dpad_up",
	ebiten.GamepadButton12: "gamepad_dpad_right",
	ebiten.GamepadButton13: "gamepad_dpad_down",
	ebiten.GamepadButton14: "gamepad_dpad_left",
	ebiten.GamepadButton0:  "gamepad_a",
	ebiten.GamepadButton1:  "gamepad_b",
}

// shouldRepeat reports whether a key held for d ticks fires this tick
func shouldRepeat(d int) bool {
	if d < keyRepeatInitialDelay {
		return false
	}
	return (d-keyRepeatInitialDelay)%keyRepeatInterval == 0
}

// repeats reports whether holding code keeps firing its action
func repeats(code string) bool {
	intent := engineinput.MapToIntent(engineinput.NewDebouncedInput(engineinput.RawInput{
		Device: engineinput.DeviceKeyboard,
		Code:   code,
	}))
	switch intent.Action {
	case engineinput.ActionPanNorth, engineinput.ActionPanSouth,
		engineinput.ActionPanWest, engineinput.ActionPanEast,
		engineinput.ActionZoomIn, engineinput.ActionZoomOut:
		return true
	}
	return false
}

// Update feeds pointer, wheel, key and gamepad events to the map (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	// Log window opening on first update (confirms window is actually running)
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		log.Infof("map window opened (%dx%d)", w, h)
	}

	s := e.screen
	if s == nil {
		return nil
	}
	ctrl := s.Controller()

	e.handlePointer(ctrl)
	e.handleKeyboard(ctrl)
	e.handleGamepads(ctrl)

	s.Tick()
	if s.Closed() {
		return ebiten.Termination
	}

	e.frame = s.Frame(float64(e.lastCursorX), float64(e.lastCursorY))
	return nil
}

// handlePointer forwards mouse motion, buttons and the wheel
func (e *EbitenRenderer) handlePointer(ctrl *engineinput.Controller) {
	ctrl.SetDevice(engineinput.DeviceMouse)

	x, y := ebiten.CursorPosition()
	if x != e.lastCursorX || y != e.lastCursorY {
		e.lastCursorX, e.lastCursorY = x, y
		ctrl.Move(float64(x), float64(y))
	}

	px, py := float64(x), float64(y)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		ctrl.Press(engineinput.ButtonPrimary, px, py)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		ctrl.Release(engineinput.ButtonPrimary, px, py)
	}

	if _, wy := ebiten.Wheel(); wy != 0 {
		ctrl.Scroll(wy)
	}
}

// handleKeyboard forwards key presses, repeats and releases
func (e *EbitenRenderer) handleKeyboard(ctrl *engineinput.Controller) {
	ctrl.SetDevice(engineinput.DeviceKeyboard)

	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		if code, ok := keyCodes[k]; ok {
			ctrl.KeyDown(code)
		}
	}

	for _, k := range inpututil.AppendPressedKeys(nil) {
		code, ok := keyCodes[k]
		if ok && repeats(code) && shouldRepeat(inpututil.KeyPressDuration(k)) {
			ctrl.KeyDown(code)
		}
	}

	for _, k := range inpututil.AppendJustReleasedKeys(nil) {
		if code, ok := keyCodes[k]; ok {
			ctrl.KeyUp(code)
		}
	}
}

// handleGamepads forwards D-pad and face buttons of every connected gamepad
func (e *EbitenRenderer) handleGamepads(ctrl *engineinput.Controller) {
	ctrl.SetDevice(engineinput.DeviceGamepad)

	for _, id := range ebiten.AppendGamepadIDs(nil) {
		for button, code := range gamepadCodes {
			switch {
			case inpututil.IsGamepadButtonJustPressed(id, button):
				ctrl.KeyDown(code)
			case inpututil.IsGamepadButtonJustReleased(id, button):
				ctrl.KeyUp(code)
			case repeats(code) && shouldRepeat(inpututil.GamepadButtonPressDuration(id, button)):
				ctrl.KeyDown(code)
			}
		}
	}
}

// Layout returns the game's logical screen size (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	// Relayout the map when the window size changes
	if outsideWidth != e.windowWidth || outsideHeight != e.windowHeight {
		e.windowWidth = outsideWidth
		e.windowHeight = outsideHeight
		if e.screen != nil {
			e.screen.Resize(outsideWidth, outsideHeight)
		}
	}
	return outsideWidth, outsideHeight
}
