package input

import "worldmap/pkg/engine/geom"

// Widget is an interactive child element that takes primary clicks instead
// of letting them start a drag.
type Widget interface {
	Contains(x, z float64) bool
	Click()
}

// Button is a rectangular clickable widget.
type Button struct {
	Label   string
	Bounds  geom.BoundingBox
	OnClick func()
}

// NewButton creates a button at screen position (x, y) with the given size
func NewButton(label string, x, y, w, h float64, onClick func()) *Button {
	return &Button{
		Label:   label,
		Bounds:  geom.New(x, y, x+w, y+h),
		OnClick: onClick,
	}
}

// Move repositions the button, keeping its size
func (b *Button) Move(x, y float64) {
	b.Bounds = geom.New(x, y, x+b.Bounds.Width(), y+b.Bounds.Height())
}

func (b *Button) Contains(x, z float64) bool {
	return b.Bounds.Contains(x, z)
}

func (b *Button) Click() {
	if b.OnClick != nil {
		b.OnClick()
	}
}
