package input

import (
	"reflect"
	"testing"
)

func TestKeyState(t *testing.T) {
	k := NewKeyState()
	k.Set("w", true)
	k.Set("a", true)
	k.Set("w", true)

	if got := k.Held(); !reflect.DeepEqual(got, []string{"a", "w"}) {
		t.Errorf("Held() = %v, want [a w]", got)
	}
	if !k.AnyHeld("s", "a") {
		t.Error("AnyHeld(s, a) = false")
	}

	k.Set("a", false)
	k.Set("z", false)
	if k.IsHeld("a") {
		t.Error("a still held")
	}

	k.Clear()
	if len(k.Held()) != 0 {
		t.Errorf("Held() after Clear = %v", k.Held())
	}
	if k.IsHeld("z") {
		t.Error("z still held after Clear")
	}

	k.Set("s", true)
	if !k.IsHeld("s") {
		t.Error("Set after Clear not recorded")
	}
}
