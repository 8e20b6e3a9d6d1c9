package ebiten

import (
	"image/color"
	"math"
)

// Pulse period of the tracked position marker, in milliseconds
const markerPulsePeriod = 2000

// pulseBrightness maps a millisecond clock onto a sine pulse between lo and hi
func pulseBrightness(nowMs int64, lo, hi float64) float64 {
	phase := float64(nowMs%markerPulsePeriod) / markerPulsePeriod
	v := (math.Sin(phase*2*math.Pi) + 1.0) / 2.0
	return lo + (hi-lo)*v
}

// pulsingMarkerColor returns the tracked marker color at time nowMs. The
// marker pulses between 60% and 100% brightness so it stands out from icons.
func pulsingMarkerColor(nowMs int64) color.Color {
	brightness := pulseBrightness(nowMs, 0.6, 1.0)

	r, g, b, a := colorPlayer.RGBA()
	return color.RGBA{
		R: uint8(float64(r>>8) * brightness),
		G: uint8(float64(g>>8) * brightness),
		B: uint8(float64(b>>8) * brightness),
		A: uint8(a >> 8),
	}
}
