package poi

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestFadeWindow_Scenario(t *testing.T) {
	f := FadeWindow{Distance: 0.4}
	tests := []struct {
		zoom float64
		want float64
	}{
		{1.0, 0},
		{1.1, 0},
		{1.3, 0.5},
		{1.5, 1},
		{2.5, 1},
	}
	for _, tt := range tests {
		if got := f.Alpha(tt.zoom, 1.5); !mgl64.FloatEqualThreshold(got, tt.want, 1e-9) {
			t.Errorf("Alpha(%v, 1.5) = %v, want %v", tt.zoom, got, tt.want)
		}
	}
}

func TestFadeWindow_ExactAtWindowEdges(t *testing.T) {
	for _, f := range []FadeWindow{{Distance: 0.4}, {Distance: 0.3}, {Distance: DefaultFadeDistance}} {
		for _, threshold := range []float64{0.5, 1.5, 2.9} {
			if got := f.Alpha(threshold-f.Distance, threshold); got != 0 {
				t.Errorf("Alpha(%v, %v) = %v, want exactly 0", threshold-f.Distance, threshold, got)
			}
			if got := f.Alpha(threshold, threshold); got != 1 {
				t.Errorf("Alpha(%v, %v) = %v, want exactly 1", threshold, threshold, got)
			}
		}
	}
}

func TestFadeWindow_AlwaysVisible(t *testing.T) {
	f := FadeWindow{Distance: DefaultFadeDistance}
	for _, z := range []float64{0.1, 1, 3} {
		if got := f.Alpha(z, AlwaysVisible); got != 1 {
			t.Errorf("Alpha(%v, AlwaysVisible) = %v, want 1", z, got)
		}
	}
}

func TestFadeWindow_Monotonic(t *testing.T) {
	f := FadeWindow{Distance: DefaultFadeDistance}
	for _, threshold := range []float64{0.2, 0.5, 1.5, 2.9} {
		prev := -1.0
		for z := 0.1; z <= 3.0; z += 0.01 {
			a := f.Alpha(z, threshold)
			if a < 0 || a > 1 {
				t.Fatalf("Alpha(%v, %v) = %v, out of [0, 1]", z, threshold, a)
			}
			if a < prev {
				t.Fatalf("Alpha(%v, %v) = %v, decreased from %v", z, threshold, a, prev)
			}
			prev = a
		}
	}
}

func TestFadeWindow_ZeroDistanceIsStep(t *testing.T) {
	f := FadeWindow{}
	if got := f.Alpha(0.99, 1); got != 0 {
		t.Errorf("Alpha(0.99, 1) = %v, want 0", got)
	}
	if got := f.Alpha(1, 1); got != 1 {
		t.Errorf("Alpha(1, 1) = %v, want 1", got)
	}
}

func TestIconPoi_Defaults(t *testing.T) {
	p := New("Ragni", Icon{Key: "town", Width: 16, Height: 16}, Static(-870, -1580))

	if p.Name() != "Ragni" {
		t.Errorf("Name() = %q, want Ragni", p.Name())
	}
	if p.MinZoom() != AlwaysVisible {
		t.Errorf("MinZoom() = %v, want AlwaysVisible", p.MinZoom())
	}
	if p.Alpha(0.1) != 1 {
		t.Errorf("Alpha(0.1) = %v, want 1", p.Alpha(0.1))
	}
	loc, ok := p.Location()
	if !ok || loc != (Location{X: -870, Z: -1580}) {
		t.Errorf("Location() = %v, %v", loc, ok)
	}
	if p.IsDynamic() {
		t.Error("static POI reported as dynamic")
	}
}

func TestIconPoi_Footprint(t *testing.T) {
	p := New("Shrine", Icon{Width: 16, Height: 21}, Static(0, 0))
	tests := []struct {
		scale float64
		w, h  int
	}{
		{1, 16, 21},
		{1.5, 24, 31},
		{0.3, 4, 6},
	}
	for _, tt := range tests {
		w, h := p.Footprint(1, tt.scale)
		if w != tt.w || h != tt.h {
			t.Errorf("Footprint(1, %v) = %dx%d, want %dx%d", tt.scale, w, h, tt.w, tt.h)
		}
	}

	// Zoom does not change the icon size.
	w1, h1 := p.Footprint(0.1, 1)
	w2, h2 := p.Footprint(3, 1)
	if w1 != w2 || h1 != h2 {
		t.Errorf("footprint changed with zoom: %dx%d vs %dx%d", w1, h1, w2, h2)
	}
}

func TestIconPoi_WithMinZoom(t *testing.T) {
	p := New("Cave", Icon{Width: 8, Height: 8}, Static(1, 1), WithMinZoom(1.5), WithFade(0.5))
	if got := p.Alpha(1.25); !mgl64.FloatEqualThreshold(got, 0.5, 1e-9) {
		t.Errorf("Alpha(1.25) = %v, want 0.5", got)
	}
}

func TestDynamicLocator(t *testing.T) {
	pos := Location{X: 3, Z: 4}
	calls := 0
	l := Dynamic(func() (Location, bool) {
		calls++
		return pos, true
	})

	if !l.Dynamic() {
		t.Error("Dynamic() = false")
	}
	got, ok := l.Resolve()
	if !ok || got != pos {
		t.Errorf("Resolve() = %v, %v", got, ok)
	}

	pos = Location{X: 10, Z: -2}
	got, _ = l.Resolve()
	if got != pos {
		t.Errorf("Resolve() after move = %v, want %v", got, pos)
	}
	if calls != 2 {
		t.Errorf("accessor called %d times, want 2", calls)
	}
}

func TestDynamicLocator_Nil(t *testing.T) {
	if _, ok := Dynamic(nil).Resolve(); ok {
		t.Error("nil accessor resolved")
	}
}
