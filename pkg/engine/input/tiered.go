package input

import (
	"sort"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceMouse
	DeviceGamepad
	DeviceTerminal
)

// Action represents a high‑level intent on the map screen.
type Action int

const (
	ActionNone Action = iota

	// Keyboard panning
	ActionPanNorth
	ActionPanSouth
	ActionPanWest
	ActionPanEast

	// Zoom (fixed bindings, not rebindable)
	ActionZoomIn
	ActionZoomOut

	// Map utilities
	ActionRecenter
	ActionCopyCoordinates
	ActionPasteCoordinates

	// Developer tools
	ActionDebugDump
	ActionScreenshot

	ActionClose
)

// Intent is the 4th‑layer, high‑level description of what the user wants to do.
type Intent struct {
	Action Action
}

// RawInput is the 1st‑layer event emitted directly from an input device.
// Code is a device‑specific identifier (e.g. "w", "arrow_up", "gamepad_dpad_up").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd‑layer representation after debouncing.
// Ebiten and terminal raw mode already deliver discrete presses, so this is
// a thin wrapper kept as its own type to keep the layering explicit.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
	}
}

// reserved codes can't be rebound or unbound
var reserved = map[string]bool{
	"arrow_up":    true,
	"arrow_down":  true,
	"arrow_left":  true,
	"arrow_right": true,
	"escape":      true,
}

// defaultBindings maps raw codes to actions (3rd-layer bindings).
// W/A/S/D are left unbound: they pass through to player movement.
func defaultBindings() map[string]Action {
	return map[string]Action{
		// Panning (arrows, Vim)
		"arrow_up":    ActionPanNorth,
		"k":           ActionPanNorth,
		"arrow_down":  ActionPanSouth,
		"j":           ActionPanSouth,
		"arrow_left":  ActionPanWest,
		"h":           ActionPanWest,
		"arrow_right": ActionPanEast,
		"l":           ActionPanEast,

		"gamepad_dpad_up":    ActionPanNorth,
		"gamepad_dpad_down":  ActionPanSouth,
		"gamepad_dpad_left":  ActionPanWest,
		"gamepad_dpad_right": ActionPanEast,

		// Zoom
		"=":               ActionZoomIn,
		"+":               ActionZoomIn,
		"numpad_add":      ActionZoomIn,
		"-":               ActionZoomOut,
		"numpad_subtract": ActionZoomOut,

		"space":     ActionRecenter,
		"gamepad_a": ActionRecenter,
		"c":         ActionCopyCoordinates,
		"v":         ActionPasteCoordinates,

		"f8":  ActionDebugDump,
		"f12": ActionScreenshot,

		"escape":    ActionClose,
		"q":         ActionClose,
		"m":         ActionClose,
		"gamepad_b": ActionClose,
	}
}

var bindings = defaultBindings()

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high‑level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionPanNorth:
		return "Pan North"
	case ActionPanSouth:
		return "Pan South"
	case ActionPanWest:
		return "Pan West"
	case ActionPanEast:
		return "Pan East"
	case ActionZoomIn:
		return "Zoom In"
	case ActionZoomOut:
		return "Zoom Out"
	case ActionRecenter:
		return "Recenter"
	case ActionCopyCoordinates:
		return "Copy Coordinates"
	case ActionPasteCoordinates:
		return "Go To Coordinates"
	case ActionDebugDump:
		return "Dump Frame"
	case ActionScreenshot:
		return "Save Snapshot"
	case ActionClose:
		return "Close Map"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Stable ordering so help text doesn't flicker.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}

// SetSingleBinding replaces all bindings for the given action with a single code.
// Reserved codes keep their action and can't be taken over.
func SetSingleBinding(action Action, code string) {
	for c, a := range bindings {
		if reserved[c] {
			continue
		}
		if a == action {
			delete(bindings, c)
		}
	}
	if code != "" && !reserved[code] {
		bindings[code] = action
	}
}

// ResetBindings restores the default bindings.
func ResetBindings() {
	bindings = defaultBindings()
}
