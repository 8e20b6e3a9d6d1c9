package poi

// Locator is either a fixed location or an accessor evaluated on demand.
type Locator struct {
	static Location
	fn     func() (Location, bool)
}

// Static returns a locator for a fixed world point.
func Static(x, z float64) Locator {
	return Locator{static: Location{X: x, Z: z}}
}

// Dynamic returns a locator that calls fn every time it is resolved.
// A nil fn never resolves.
func Dynamic(fn func() (Location, bool)) Locator {
	if fn == nil {
		fn = func() (Location, bool) { return Location{}, false }
	}
	return Locator{fn: fn}
}

// Dynamic reports whether the locator calls out to an accessor
func (l Locator) Dynamic() bool {
	return l.fn != nil
}

// Resolve returns the current location
func (l Locator) Resolve() (Location, bool) {
	if l.fn != nil {
		return l.fn()
	}
	return l.static, true
}
