// Package mapview decides which points of interest a map frame shows, which
// one is under the pointer, and in what order they are painted.
package mapview

import (
	"worldmap/pkg/engine/camera"
	"worldmap/pkg/engine/geom"
	"worldmap/pkg/game/poi"
)

// NoHover marks a frame without a hovered entry
const NoHover = -1

// Entry is a POI that survived culling, with everything resolved for this frame.
type Entry struct {
	Poi poi.Poi

	// World location, resolved once per pass
	World poi.Location

	// Projected screen center and footprint size in pixels
	ScreenX, ScreenZ float64
	Width, Height    int

	Alpha float64
}

// ScreenBox returns the entry's footprint in screen space
func (e Entry) ScreenBox() geom.BoundingBox {
	return geom.Centered(e.ScreenX, e.ScreenZ, float64(e.Width), float64(e.Height))
}

// Frame is the result of one filter pass.
type Frame struct {
	Entries []Entry
	Hovered int

	Zoom  float64
	Scale float64
}

// HoveredEntry returns the hovered entry, if any
func (f Frame) HoveredEntry() (Entry, bool) {
	if f.Hovered < 0 || f.Hovered >= len(f.Entries) {
		return Entry{}, false
	}
	return f.Entries[f.Hovered], true
}

// IsHovered reports whether entry i is the hovered one
func (f Frame) IsHovered(i int) bool {
	return f.Hovered != NoHover && i == f.Hovered
}

// PaintOrder calls fn for each entry back to front, so the first entry in
// the list is painted last and ends up on top.
func (f Frame) PaintOrder(fn func(e Entry, hovered bool)) {
	for i := len(f.Entries) - 1; i >= 0; i-- {
		fn(f.Entries[i], f.IsHovered(i))
	}
}

// Query holds the per-frame inputs to Filter.
type Query struct {
	Camera *camera.Camera

	// World-space region currently on screen
	Visible geom.BoundingBox

	// Pointer position in screen pixels. HasPointer false disables hit-testing.
	PointerX, PointerZ float64
	HasPointer         bool

	// User scale applied to every footprint
	Scale float64
}

// Filter culls pois against the query and picks the hover candidate.
//
// Candidates are visited last to first. A POI fainter than MinVisibleAlpha,
// with an absent location, or with a footprint outside the visible region is
// dropped. The first survivor whose screen footprint holds the pointer is
// the hover candidate. Survivors keep the visiting order.
func Filter(q Query, pois []poi.Poi) Frame {
	zoom := q.Camera.Zoom()
	frame := Frame{
		Entries: make([]Entry, 0, len(pois)),
		Hovered: NoHover,
		Zoom:    zoom,
		Scale:   q.Scale,
	}

	for i := len(pois) - 1; i >= 0; i-- {
		p := pois[i]

		alpha := p.Alpha(zoom)
		if alpha < poi.MinVisibleAlpha {
			continue
		}

		loc, ok := p.Location()
		if !ok {
			continue
		}

		w, h := p.Footprint(zoom, q.Scale)
		worldBox := geom.Centered(loc.X, loc.Z, float64(w)/zoom, float64(h)/zoom)
		if !worldBox.Intersects(q.Visible) {
			continue
		}

		sx, sz := q.Camera.WorldToScreen(loc.X, loc.Z)
		e := Entry{
			Poi:     p,
			World:   loc,
			ScreenX: sx,
			ScreenZ: sz,
			Width:   w,
			Height:  h,
			Alpha:   alpha,
		}

		if q.HasPointer && frame.Hovered == NoHover && e.ScreenBox().Contains(q.PointerX, q.PointerZ) {
			frame.Hovered = len(frame.Entries)
		}
		frame.Entries = append(frame.Entries, e)
	}

	return frame
}

// ResolveHover moves the hover candidate to the front of the entry list.
// The input frame is left untouched.
func ResolveHover(f Frame) Frame {
	out := f
	out.Entries = make([]Entry, len(f.Entries))
	copy(out.Entries, f.Entries)

	if f.Hovered >= len(f.Entries) {
		out.Hovered = NoHover
	}
	if out.Hovered <= 0 {
		return out
	}

	hovered := out.Entries[f.Hovered]
	copy(out.Entries[1:f.Hovered+1], f.Entries[:f.Hovered])
	out.Entries[0] = hovered
	out.Hovered = 0
	return out
}
