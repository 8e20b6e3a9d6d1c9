package camera

import "testing"

func TestNewViewport_Unscaled(t *testing.T) {
	vp := NewViewport(800, 600, 0, 0)

	if vp.X != SideOffset || vp.Y != SideOffset {
		t.Errorf("origin = (%v, %v), want (%d, %d)", vp.X, vp.Y, SideOffset, SideOffset)
	}
	if vp.Width != 780 || vp.Height != 580 {
		t.Errorf("size = %vx%v, want 780x580", vp.Width, vp.Height)
	}
	if vp.BorderX != BorderOffset || vp.BorderY != BorderOffset {
		t.Errorf("border = (%v, %v), want %d", vp.BorderX, vp.BorderY, BorderOffset)
	}

	x, y, w, h := vp.MapRect()
	if x != 16 || y != 16 || w != 768 || h != 568 {
		t.Errorf("MapRect() = (%v, %v, %v, %v), want (16, 16, 768, 568)", x, y, w, h)
	}
}

func TestNewViewport_ScalesBorderWithTexture(t *testing.T) {
	vp := NewViewport(800, 600, 400, 200)
	if vp.BorderX != 12 || vp.BorderY != 18 {
		t.Errorf("border = (%v, %v), want (12, 18)", vp.BorderX, vp.BorderY)
	}
}

func TestViewport_CenterIsScreenCenter(t *testing.T) {
	// Symmetric insets keep the map centered on the window.
	for _, size := range [][2]int{{800, 600}, {1920, 1080}, {333, 777}} {
		vp := NewViewport(size[0], size[1], 512, 512)
		x, z := vp.Center()
		if x != float64(size[0])/2 || z != float64(size[1])/2 {
			t.Errorf("%v: Center() = (%v, %v)", size, x, z)
		}
	}
}

func TestViewport_Contains(t *testing.T) {
	vp := NewViewport(800, 600, 0, 0)
	if !vp.Contains(400, 300) {
		t.Error("center should be inside the map area")
	}
	if vp.Contains(5, 300) {
		t.Error("side gap should be outside the map area")
	}
	if vp.Contains(400, 590) {
		t.Error("bottom border should be outside the map area")
	}
}
