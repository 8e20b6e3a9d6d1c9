package state

import (
	"worldmap/pkg/engine/input"
	"worldmap/pkg/game/poi"
)

// Movement speeds in world units per tick
const (
	WalkSpeed   = 0.5
	SprintSpeed = 1.0
	maxMessages = 5
)

// Movement keys read from the pass-through key state
var (
	keysNorth = []string{"w"}
	keysSouth = []string{"s"}
	keysWest  = []string{"a"}
	keysEast  = []string{"d"}
)

// Session is the live world state the map overlays: the player and the
// status log shown under the map.
type Session struct {
	// Player position in world space
	PlayerX, PlayerZ float64

	// Present is false while the player has no position (loading, dead)
	Present bool

	Messages []string
}

// NewSession places the player at (x, z)
func NewSession(x, z float64) *Session {
	return &Session{
		PlayerX:  x,
		PlayerZ:  z,
		Present:  true,
		Messages: make([]string, 0),
	}
}

// Position returns the player position, or false when absent.
func (s *Session) Position() (poi.Location, bool) {
	if !s.Present {
		return poi.Location{}, false
	}
	return poi.Location{X: s.PlayerX, Z: s.PlayerZ}, true
}

// PlayerLocator returns a dynamic locator following the player
func (s *Session) PlayerLocator() poi.Locator {
	return poi.Dynamic(s.Position)
}

// Tick moves the player from the held movement keys. It reports whether
// the player moved.
func (s *Session) Tick(keys *input.KeyState) bool {
	if !s.Present || keys == nil {
		return false
	}

	speed := WalkSpeed
	if keys.IsHeld("shift") {
		speed = SprintSpeed
	}

	var dx, dz float64
	if keys.AnyHeld(keysNorth...) {
		dz -= speed
	}
	if keys.AnyHeld(keysSouth...) {
		dz += speed
	}
	if keys.AnyHeld(keysWest...) {
		dx -= speed
	}
	if keys.AnyHeld(keysEast...) {
		dx += speed
	}
	if dx == 0 && dz == 0 {
		return false
	}

	s.PlayerX += dx
	s.PlayerZ += dz
	return true
}

// AddMessage adds a message to the status log
func (s *Session) AddMessage(msg string) {
	s.Messages = append(s.Messages, msg)

	// Keep only the last maxMessages
	if len(s.Messages) > maxMessages {
		s.Messages = s.Messages[len(s.Messages)-maxMessages:]
	}
}

// LastMessage returns the newest message, or "".
func (s *Session) LastMessage() string {
	if len(s.Messages) == 0 {
		return ""
	}
	return s.Messages[len(s.Messages)-1]
}

// ClearMessages clears all messages
func (s *Session) ClearMessages() {
	s.Messages = make([]string, 0)
}
