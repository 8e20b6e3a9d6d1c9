package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"worldmap/pkg/game/renderer"
)

// styleColor maps a renderer style to a palette color
func styleColor(style renderer.TextStyle) color.Color {
	switch style {
	case renderer.StyleTown:
		return colorTown
	case renderer.StyleQuest:
		return colorQuest
	case renderer.StyleCave:
		return colorCave
	case renderer.StyleShrine:
		return colorShrine
	case renderer.StylePlayer:
		return colorPlayer
	case renderer.StyleHovered, renderer.StyleKey:
		return colorAction
	case renderer.StyleSubtle:
		return colorSubtle
	case renderer.StyleDenied:
		return colorDenied
	default:
		return colorText
	}
}

// parseMarkup parses a message string with markup (GT{}, PLACE{}, KEY{}, ...) and returns colored segments
func parseMarkup(msg string) []textSegment {
	parsed := renderer.ParseMarkup(msg)
	if len(parsed) == 0 {
		return []textSegment{{text: msg, color: colorText}}
	}

	segments := make([]textSegment, 0, len(parsed))
	for _, seg := range parsed {
		if seg.Text == "" {
			continue
		}
		segments = append(segments, textSegment{text: seg.Text, color: styleColor(seg.Style)})
	}
	return segments
}

// applyAlpha applies an alpha value to a color
func applyAlpha(c color.Color, alpha float64) color.Color {
	if alpha <= 0 {
		alpha = 0
	}
	if alpha > 1.0 {
		alpha = 1.0
	}

	r, g, b, a := c.RGBA()
	// RGBA returns values in 0-65535 range, convert to 0-255
	r8 := uint8(r >> 8)
	g8 := uint8(g >> 8)
	b8 := uint8(b >> 8)
	a8 := uint8(a >> 8)

	// Premultiplied: scale every channel so colors fade to transparent black
	return color.RGBA{
		uint8(float64(r8) * alpha),
		uint8(float64(g8) * alpha),
		uint8(float64(b8) * alpha),
		uint8(float64(a8) * alpha),
	}
}

// drawColoredTextWithFace draws text with a specific color and font face.
// (x, y) is the top-left corner of the text.
func drawColoredTextWithFace(screen *ebiten.Image, str string, x, y float64, col color.Color, face *text.GoTextFace) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)

	text.Draw(screen, str, face, op)
}

// drawColoredTextSegmentsWithFace draws multiple text segments one after another
func drawColoredTextSegmentsWithFace(screen *ebiten.Image, segments []textSegment, x, y float64, face *text.GoTextFace) {
	currentX := x

	for _, seg := range segments {
		drawColoredTextWithFace(screen, seg.text, currentX, y, seg.color, face)

		w, _ := text.Measure(seg.text, face, 0)
		currentX += w
	}
}

// segmentsWidth returns the width of the segments laid out on one line
func segmentsWidth(segments []textSegment, face *text.GoTextFace) float64 {
	total := 0.0
	for _, seg := range segments {
		w, _ := text.Measure(seg.text, face, 0)
		total += w
	}
	return total
}

// labelService draws POI labels centered under their anchor onto one image
type labelService struct {
	target *ebiten.Image
	face   *text.GoTextFace
	color  color.Color
}

// DrawText draws s horizontally centered on x with its top at y
func (l labelService) DrawText(s string, x, y float64) {
	w, _ := text.Measure(s, l.face, 0)

	// Dark backing keeps labels readable over grid lines
	drawColoredTextWithFace(l.target, s, x-w/2+1, y+1, colorIconOutline, l.face)
	drawColoredTextWithFace(l.target, s, x-w/2, y, l.color, l.face)
}
