package ebiten

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// iconColor returns the fill color for an icon key
func iconColor(key string) color.Color {
	switch key {
	case "town":
		return colorTown
	case "quest":
		return colorQuest
	case "cave":
		return colorCave
	case "shrine":
		return colorShrine
	case "player":
		return colorPlayer
	default:
		return colorUnknown
	}
}

// getWhitePixel returns a 1x1 white source image for triangle fills
func (e *EbitenRenderer) getWhitePixel() *ebiten.Image {
	if e.whitePixel == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		e.whitePixel = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return e.whitePixel
}

// fillPolygon fills the closed polygon through pts (x0, y0, x1, y1, ...)
func (e *EbitenRenderer) fillPolygon(dst *ebiten.Image, pts []float32, clr color.Color) {
	if len(pts) < 6 {
		return
	}

	var path vector.Path
	path.MoveTo(pts[0], pts[1])
	for i := 2; i+1 < len(pts); i += 2 {
		path.LineTo(pts[i], pts[i+1])
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := clr.RGBA()
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}

	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	dst.DrawTriangles(vs, is, e.getWhitePixel(), op)
}

// getIcon returns the cached image for an icon key at the given pixel size
func (e *EbitenRenderer) getIcon(key string, w, h int) *ebiten.Image {
	if w <= 0 || h <= 0 {
		return nil
	}
	k := iconKey{key: key, w: w, h: h}
	if img, ok := e.icons[k]; ok {
		return img
	}

	img := ebiten.NewImage(w, h)
	e.paintIcon(img, key, float32(w), float32(h))
	e.icons[k] = img
	return img
}

// paintIcon draws the shape for key filling a w x h image
func (e *EbitenRenderer) paintIcon(img *ebiten.Image, key string, w, h float32) {
	fill := iconColor(key)
	const outline = 1.5

	switch key {
	case "town":
		vector.DrawFilledRect(img, 1, 1, w-2, h-2, fill, false)
		vector.StrokeRect(img, 1, 1, w-2, h-2, outline, colorIconOutline, false)
		// Roof line
		vector.StrokeLine(img, 1, h/3, w-1, h/3, outline, colorIconOutline, true)
	case "quest":
		r := min(w, h)/2 - 1
		vector.DrawFilledCircle(img, w/2, h/2, r, colorIconOutline, true)
		vector.DrawFilledCircle(img, w/2, h/2, r-outline, fill, true)
		vector.DrawFilledRect(img, w/2-1, h/4, 2, h/3, colorIconOutline, false)
		vector.DrawFilledRect(img, w/2-1, h*2/3, 2, 2, colorIconOutline, false)
	case "cave":
		e.fillPolygon(img, []float32{w / 2, 0, w, h, 0, h}, colorIconOutline)
		e.fillPolygon(img, []float32{w / 2, outline * 2, w - outline*1.5, h - outline, outline * 1.5, h - outline}, fill)
	case "shrine":
		e.fillPolygon(img, []float32{w / 2, 0, w, h / 2, w / 2, h, 0, h / 2}, colorIconOutline)
		e.fillPolygon(img, []float32{w / 2, outline * 2, w - outline*2, h / 2, w / 2, h - outline*2, outline * 2, h / 2}, fill)
	case "player":
		r := min(w, h)/2 - 1
		vector.DrawFilledCircle(img, w/2, h/2, r, colorIconOutline, true)
		vector.DrawFilledCircle(img, w/2, h/2, r-outline, fill, true)
	default:
		vector.StrokeRect(img, 1, 1, w-2, h-2, outline, fill, false)
	}
}
