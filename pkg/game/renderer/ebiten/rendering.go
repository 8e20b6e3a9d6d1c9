package ebiten

import (
	"fmt"
	"image"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"worldmap/pkg/engine/camera"
	"worldmap/pkg/game/mapview"
	"worldmap/pkg/game/poi"
)

// Draw renders the map to the screen (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	// Fill background first
	screen.Fill(colorBackground)

	s := e.screen
	if s == nil || e.monoFontSource == nil || e.sansFontSource == nil {
		// Can't draw without a map or fonts
		return
	}

	vp := s.Viewport()
	e.drawBorder(screen, vp)

	// Everything on the map is clipped to the area inside the border. A
	// sub-image shares its parent's coordinates, so screen positions apply.
	mx, my, mw, mh := vp.MapRect()
	mapImg := screen.SubImage(image.Rect(int(mx), int(my), int(mx+mw), int(my+mh))).(*ebiten.Image)
	mapImg.Fill(colorMapBackground)

	e.drawGrid(mapImg, s, mx, my, mw, mh)
	e.drawPois(mapImg, e.frame)
	e.drawTrackedMarker(mapImg, s)

	e.drawButtons(screen, s)
	e.drawCoordinates(screen, s)

	screenWidth, screenHeight := screen.Bounds().Dx(), screen.Bounds().Dy()
	e.drawMessages(screen, screenWidth, screenHeight)
}

// drawBorder draws the frame around the map area
func (e *EbitenRenderer) drawBorder(screen *ebiten.Image, vp camera.Viewport) {
	x, y := float32(vp.X), float32(vp.Y)
	w, h := float32(vp.Width), float32(vp.Height)

	vector.DrawFilledRect(screen, x, y, w, h, colorBorder, false)
	vector.StrokeRect(screen, x+float32(vp.BorderX)/2, y+float32(vp.BorderY)/2,
		w-float32(vp.BorderX), h-float32(vp.BorderY), borderWidth, colorBorderInner, false)
}

// gridStep picks a world spacing for grid lines that stays at least
// gridMinPixels apart on screen
func gridStep(zoom float64) float64 {
	step := gridBaseStep
	for step*zoom < gridMinPixels {
		step *= 2
	}
	return step
}

// drawGrid draws world grid lines across the visible region
func (e *EbitenRenderer) drawGrid(mapImg *ebiten.Image, s *mapview.Screen, mx, my, mw, mh float64) {
	cam := s.Camera()
	step := gridStep(cam.Zoom())

	wx0, wz0 := cam.ScreenToWorld(mx, my)
	wx1, wz1 := cam.ScreenToWorld(mx+mw, my+mh)

	for x := math.Ceil(wx0/step) * step; x <= wx1; x += step {
		sx, _ := cam.WorldToScreen(x, 0)
		vector.StrokeLine(mapImg, float32(sx), float32(my), float32(sx), float32(my+mh), gridLineWidth, colorGridLine, false)
	}
	for z := math.Ceil(wz0/step) * step; z <= wz1; z += step {
		_, sz := cam.WorldToScreen(0, z)
		vector.StrokeLine(mapImg, float32(mx), float32(sz), float32(mx+mw), float32(sz), gridLineWidth, colorGridLine, false)
	}
}

// iconOf returns the icon key of a POI, empty when it has none
func iconOf(p poi.Poi) string {
	if ip, ok := p.(interface{ Icon() poi.Icon }); ok {
		return ip.Icon().Key
	}
	return ""
}

// drawPois paints the frame back to front. The hovered entry comes last,
// slightly enlarged and with its name underneath.
func (e *EbitenRenderer) drawPois(mapImg *ebiten.Image, frame mapview.Frame) {
	var labels mapview.TextService = labelService{target: mapImg, face: e.getLabelFontFace(), color: colorText}

	frame.PaintOrder(func(entry mapview.Entry, hovered bool) {
		img := e.getIcon(iconOf(entry.Poi), entry.Width, entry.Height)
		if img == nil {
			return
		}

		scale := 1.0
		if hovered {
			scale = hoverScale
		}

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-float64(entry.Width)/2, -float64(entry.Height)/2)
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(entry.ScreenX, entry.ScreenZ)
		op.ColorScale.ScaleAlpha(float32(entry.Alpha))
		op.Filter = ebiten.FilterLinear
		mapImg.DrawImage(img, op)

		if hovered {
			labels.DrawText(entry.Poi.Name(), entry.ScreenX, entry.ScreenZ+labelOffset)
		}
	})
}

// drawTrackedMarker draws a chevron above the tracked position
func (e *EbitenRenderer) drawTrackedMarker(mapImg *ebiten.Image, s *mapview.Screen) {
	x, z, ok := s.TrackedScreenPosition()
	if !ok {
		return
	}

	cx, cz := float32(x), float32(z)
	half := float32(pointerSize) / 2
	tip := cz - float32(pointerSize)
	e.fillPolygon(mapImg, []float32{
		cx - half, tip - half,
		cx + half, tip - half,
		cx, tip,
	}, pulsingMarkerColor(time.Now().UnixMilli()))
}

// drawButtons draws the zoom and recenter buttons
func (e *EbitenRenderer) drawButtons(screen *ebiten.Image, s *mapview.Screen) {
	face := e.getSansFontFace()
	cx, cy := float64(e.lastCursorX), float64(e.lastCursorY)

	for _, b := range s.Buttons() {
		bg := colorButton
		if b.Contains(cx, cy) {
			bg = colorButtonHover
		}

		x, y := float32(b.Bounds.MinX), float32(b.Bounds.MinZ)
		w, h := float32(b.Bounds.Width()), float32(b.Bounds.Height())
		vector.DrawFilledRect(screen, x, y, w, h, bg, false)
		vector.StrokeRect(screen, x, y, w, h, 1, colorPanelBorder, false)

		tw, th := text.Measure(b.Label, face, 0)
		lx, ly := b.Bounds.Center()
		drawColoredTextWithFace(screen, b.Label, lx-tw/2, ly-th/2, colorText, face)
	}
}

// drawCoordinates shows the world position under the cursor, or of the map
// center when the cursor is elsewhere, along with the zoom level
func (e *EbitenRenderer) drawCoordinates(screen *ebiten.Image, s *mapview.Screen) {
	vp := s.Viewport()
	cx, cy := float64(e.lastCursorX), float64(e.lastCursorY)
	if !vp.Contains(cx, cy) {
		cx, cy = vp.Center()
	}

	label := fmt.Sprintf("%s  x%.2f", s.CursorLabel(cx, cy), s.Camera().Zoom())
	face := e.getMonoFontFace()
	w, h := text.Measure(label, face, 0)

	mx, my, mw, mh := vp.MapRect()
	x := mx + (mw-w)/2
	y := my + mh - h - 10

	vector.DrawFilledRect(screen, float32(x-8), float32(y-4), float32(w+16), float32(h+8), colorPanelBackground, false)
	drawColoredTextWithFace(screen, label, x, y, colorText, face)
}

// visibleMessages returns the most recent messages still alive at now, as
// colored segments faded by age
func visibleMessages(messages []messageEntry, now int64) [][]textSegment {
	startIdx := max(len(messages)-maxVisibleLines, 0)

	visible := make([][]textSegment, 0, maxVisibleLines)
	for _, msg := range messages[startIdx:] {
		age := now - msg.Timestamp
		if age >= messageLifetime {
			continue
		}

		// Fade from 1.0 to 0.0 over the last part of the lifetime
		alpha := 1.0
		if age > messageFadeStart {
			alpha = 1.0 - float64(age-messageFadeStart)/float64(messageLifetime-messageFadeStart)
		}

		segments := parseMarkup(msg.Text)
		faded := make([]textSegment, len(segments))
		for i, seg := range segments {
			faded[i] = textSegment{text: seg.text, color: applyAlpha(seg.color, alpha)}
		}
		visible = append(visible, faded)
	}
	return visible
}

// drawMessages draws the message panel at the bottom of the window
func (e *EbitenRenderer) drawMessages(screen *ebiten.Image, screenWidth, screenHeight int) {
	visible := visibleMessages(e.trackedMessages, time.Now().UnixMilli())
	if len(visible) == 0 {
		// No messages to show, so don't draw any panel background
		return
	}

	face := e.getSansFontFace()
	lineHeight := face.Size + 4

	// Panel width follows the widest line
	maxTextWidth := 0.0
	for _, segments := range visible {
		maxTextWidth = max(maxTextWidth, segmentsWidth(segments, face))
	}
	panelWidth := min(max(maxTextWidth+20, 100), float64(screenWidth-40))
	panelHeight := float64(len(visible))*lineHeight + 12

	// Bottom of the window, centered horizontally, above the coordinate readout
	marginBottom := camera.SideOffset + 56.0
	bgX := (float64(screenWidth) - panelWidth) / 2
	bgY := max(float64(screenHeight)-marginBottom-panelHeight, 0)

	vector.DrawFilledRect(screen, float32(bgX-1), float32(bgY-1), float32(panelWidth+2), float32(panelHeight+2), colorPanelBorder, false)
	vector.DrawFilledRect(screen, float32(bgX), float32(bgY), float32(panelWidth), float32(panelHeight), colorPanelBackground, false)

	for i, segments := range visible {
		drawColoredTextSegmentsWithFace(screen, segments, bgX+10, bgY+6+float64(i)*lineHeight, face)
	}
}
