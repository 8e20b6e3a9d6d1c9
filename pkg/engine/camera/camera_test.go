package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const epsilon = 1e-9

func newTestCamera(t *testing.T) *Camera {
	t.Helper()
	c := New(DefaultLimits())
	c.SetViewport(Viewport{Width: 800, Height: 600})
	return c
}

func TestNew_Defaults(t *testing.T) {
	c := New(DefaultLimits())
	if c.Zoom() != 1 {
		t.Errorf("Zoom() = %v, want 1", c.Zoom())
	}
	if x, z := c.Center(); x != 0 || z != 0 {
		t.Errorf("Center() = (%v, %v), want origin", x, z)
	}
}

func TestWorldToScreen_CenterMapsToScreenCenter(t *testing.T) {
	c := newTestCamera(t)
	c.RecenterOn(0, 0)

	sx, sz := c.WorldToScreen(0, 0)
	if sx != 400 || sz != 300 {
		t.Errorf("WorldToScreen(0, 0) = (%v, %v), want (400, 300)", sx, sz)
	}

	c.SetZoom(2)
	sx, sz = c.WorldToScreen(10, -5)
	if sx != 420 || sz != 290 {
		t.Errorf("WorldToScreen(10, -5) at zoom 2 = (%v, %v), want (420, 290)", sx, sz)
	}
}

func TestScreenToWorld_RoundTrip(t *testing.T) {
	c := newTestCamera(t)
	points := [][2]float64{{0, 0}, {123.5, -88.25}, {-4000, 2500}, {1e5, -1e5}}

	for _, zoom := range []float64{0.1, 0.37, 1, 2.5, 3} {
		c.SetZoom(zoom)
		c.RecenterOn(-731.2, 402.9)
		for _, p := range points {
			sx, sz := c.WorldToScreen(p[0], p[1])
			wx, wz := c.ScreenToWorld(sx, sz)
			if !mgl64.FloatEqualThreshold(wx, p[0], 1e-6) || !mgl64.FloatEqualThreshold(wz, p[1], 1e-6) {
				t.Errorf("zoom %v: round trip of %v = (%v, %v)", zoom, p, wx, wz)
			}
		}
	}
}

func TestZoomBy_Clamps(t *testing.T) {
	c := newTestCamera(t)

	for i := 0; i < 500; i++ {
		c.ZoomBy(1)
		if c.Zoom() > DefaultMaxZoom {
			t.Fatalf("Zoom() = %v after %d steps, exceeds max", c.Zoom(), i+1)
		}
	}
	if c.Zoom() != DefaultMaxZoom {
		t.Errorf("Zoom() = %v, want max %v", c.Zoom(), DefaultMaxZoom)
	}

	for i := 0; i < 500; i++ {
		c.ZoomBy(-3)
		if c.Zoom() < DefaultMinZoom {
			t.Fatalf("Zoom() = %v after %d steps, below min", c.Zoom(), i+1)
		}
	}
	if c.Zoom() != DefaultMinZoom {
		t.Errorf("Zoom() = %v, want min %v", c.Zoom(), DefaultMinZoom)
	}
}

func TestZoomBy_Multiplicative(t *testing.T) {
	c := newTestCamera(t)
	c.SetZoom(2)
	c.ZoomBy(1)
	if want := 2 * (1 + DefaultScrollFactor); !mgl64.FloatEqualThreshold(c.Zoom(), want, epsilon) {
		t.Errorf("Zoom() = %v, want %v", c.Zoom(), want)
	}
}

func TestSetZoom_OutOfRange(t *testing.T) {
	c := newTestCamera(t)
	c.SetZoom(-5)
	if c.Zoom() != DefaultMinZoom {
		t.Errorf("SetZoom(-5) gave %v, want %v", c.Zoom(), DefaultMinZoom)
	}
	c.SetZoom(99)
	if c.Zoom() != DefaultMaxZoom {
		t.Errorf("SetZoom(99) gave %v, want %v", c.Zoom(), DefaultMaxZoom)
	}
}

// A world point under the pointer stays under it while dragging.
func TestPan_DragKeepsGrabbedPointUnderPointer(t *testing.T) {
	c := newTestCamera(t)
	c.SetZoom(1.7)
	c.RecenterOn(50, 50)

	startX, startZ := 310.0, 220.0
	grabX, grabZ := c.ScreenToWorld(startX, startZ)

	lastX, lastZ := startX, startZ
	path := [][2]float64{{320, 230}, {355, 180}, {290, 260}, {500, 111}}
	for _, p := range path {
		c.Pan(lastX-p[0], lastZ-p[1])
		lastX, lastZ = p[0], p[1]

		sx, sz := c.WorldToScreen(grabX, grabZ)
		if !mgl64.FloatEqualThreshold(sx, p[0], 1e-6) || !mgl64.FloatEqualThreshold(sz, p[1], 1e-6) {
			t.Errorf("grabbed point at (%v, %v), pointer at %v", sx, sz, p)
		}
	}
}

func TestVisibleBox(t *testing.T) {
	c := newTestCamera(t)
	c.RecenterOn(100, 200)
	c.SetZoom(2)

	b := c.VisibleBox(800, 600)
	if b.Width() != 400 || b.Height() != 300 {
		t.Errorf("VisibleBox size = %vx%v, want 400x300", b.Width(), b.Height())
	}
	if cx, cz := b.Center(); cx != 100 || cz != 200 {
		t.Errorf("VisibleBox center = (%v, %v), want (100, 200)", cx, cz)
	}
}

func TestSetViewport_MovesScreenCenter(t *testing.T) {
	c := New(DefaultLimits())
	c.SetViewport(NewViewport(1000, 700, 0, 0))

	x, z := c.ScreenCenter()
	if x != 500 || z != 350 {
		t.Errorf("ScreenCenter() = (%v, %v), want (500, 350)", x, z)
	}
}

func TestPan_ReverseRestoresCenter(t *testing.T) {
	tests := []struct {
		name   string
		zoom   float64
		dx, dz float64
	}{
		{"min zoom", DefaultMinZoom, 35, -12},
		{"unit zoom", 1, -250, 400},
		{"fractional zoom", 0.37, 3.5, 7.25},
		{"max zoom", DefaultMaxZoom, 1000, -1000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCamera(t)
			c.SetZoom(tt.zoom)
			c.RecenterOn(-870, -1580)

			c.Pan(tt.dx, tt.dz)
			c.Pan(-tt.dx, -tt.dz)

			x, z := c.Center()
			if !mgl64.FloatEqualThreshold(x, -870, epsilon) || !mgl64.FloatEqualThreshold(z, -1580, epsilon) {
				t.Errorf("Center() after Pan(d), Pan(-d) = (%v, %v), want (-870, -1580)", x, z)
			}
		})
	}
}
