// Package geom provides axis-aligned boxes used for culling and hit-testing.
// The same type serves world space and screen space; callers keep the two apart.
package geom

// BoundingBox is an axis-aligned box. Both edges are inclusive.
type BoundingBox struct {
	MinX, MinZ float64
	MaxX, MaxZ float64
}

// New returns the box spanning the two corners, in any order.
func New(x1, z1, x2, z2 float64) BoundingBox {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if z1 > z2 {
		z1, z2 = z2, z1
	}
	return BoundingBox{MinX: x1, MinZ: z1, MaxX: x2, MaxZ: z2}
}

// Centered returns a box of the given size centered on (cx, cz).
func Centered(cx, cz, width, height float64) BoundingBox {
	return New(cx-width/2, cz-height/2, cx+width/2, cz+height/2)
}

// Width returns the extent along X
func (b BoundingBox) Width() float64 {
	return b.MaxX - b.MinX
}

// Height returns the extent along Z
func (b BoundingBox) Height() float64 {
	return b.MaxZ - b.MinZ
}

// Center returns the midpoint of the box
func (b BoundingBox) Center() (x, z float64) {
	return (b.MinX + b.MaxX) / 2, (b.MinZ + b.MaxZ) / 2
}

// Intersects reports whether the two boxes overlap. Touching edges count.
func (b BoundingBox) Intersects(other BoundingBox) bool {
	return b.MinX <= other.MaxX && b.MaxX >= other.MinX &&
		b.MinZ <= other.MaxZ && b.MaxZ >= other.MinZ
}

// Contains reports whether the point lies inside or on the box.
func (b BoundingBox) Contains(x, z float64) bool {
	return x >= b.MinX && x <= b.MaxX && z >= b.MinZ && z <= b.MaxZ
}
