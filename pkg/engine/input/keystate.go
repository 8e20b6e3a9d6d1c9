package input

import (
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// KeyState is the set of keys currently held down. The map screen records
// into it without consuming anything, so movement systems underneath keep
// seeing held keys while the map is open.
type KeyState struct {
	held mapset.Set[string]
}

// NewKeyState returns an empty key state
func NewKeyState() *KeyState {
	return &KeyState{held: mapset.New[string]()}
}

// Set records a key as held or released
func (k *KeyState) Set(code string, down bool) {
	if down {
		k.held.Put(code)
		return
	}
	k.held.Remove(code)
}

// IsHeld reports whether the key is currently down
func (k *KeyState) IsHeld(code string) bool {
	return k.held.Has(code)
}

// AnyHeld reports whether at least one of codes is down
func (k *KeyState) AnyHeld(codes ...string) bool {
	for _, c := range codes {
		if k.held.Has(c) {
			return true
		}
	}
	return false
}

// Held returns the held keys in sorted order
func (k *KeyState) Held() []string {
	keys := make([]string, 0, k.held.Size())
	k.held.Each(func(code string) {
		keys = append(keys, code)
	})
	sort.Strings(keys)
	return keys
}

// Clear releases every key
func (k *KeyState) Clear() {
	k.held = mapset.New[string]()
}
