package ebiten

import "image/color"

// Color palette for the map
var (
	colorBackground      = color.RGBA{26, 26, 46, 255}    // Dark blue-gray
	colorMapBackground   = color.RGBA{38, 52, 40, 255}    // Muted green for land
	colorGridLine        = color.RGBA{58, 74, 60, 255}    // Slightly lighter than the land
	colorBorder          = color.RGBA{120, 100, 70, 255}  // Parchment brown
	colorBorderInner     = color.RGBA{70, 58, 40, 255}    // Darker inner edge
	colorPlayer          = color.RGBA{0, 255, 0, 255}     // Bright green
	colorTown            = color.RGBA{255, 220, 100, 255} // Gold
	colorQuest           = color.RGBA{220, 170, 255, 255} // Bright purple
	colorCave            = color.RGBA{170, 160, 150, 255} // Stone gray
	colorShrine          = color.RGBA{100, 200, 255, 255} // Sky blue
	colorUnknown         = color.RGBA{255, 255, 255, 255}
	colorIconOutline     = color.RGBA{20, 20, 20, 255}
	colorSubtle          = color.RGBA{120, 130, 180, 255} // Soft blue-purple-gray
	colorText            = color.RGBA{200, 210, 245, 255} // Soft off-white with blue-purple tint
	colorAction          = color.RGBA{180, 150, 250, 255} // Blue-purple
	colorDenied          = color.RGBA{255, 100, 100, 255} // Bright red
	colorPanelBackground = color.RGBA{30, 30, 50, 220}    // Semi-transparent dark
	colorPanelBorder     = color.RGBA{80, 80, 100, 255}
	colorButton          = color.RGBA{60, 60, 80, 230}
	colorButtonHover     = color.RGBA{90, 90, 120, 230}
)

// Window defaults
const (
	defaultWindowWidth  = 1024
	defaultWindowHeight = 768
)

// Text layout
const (
	baseFontSize  = 14.0
	labelFontSize = 13.0
	monoFontSize  = 15.0

	// Distance from a POI's center to the top of its label
	labelOffset = 20.0

	// Hovered icons are drawn slightly larger
	hoverScale = 1.05

	// Size of the triangle marking the tracked position
	pointerSize = 14.0

	// Grid spacing in world units before zoom adaption
	gridBaseStep  = 100.0
	gridMinPixels = 48.0
	gridLineWidth = 1.0
	borderWidth   = 3.0
)

// Message panel timing, in milliseconds
const (
	messageLifetime  = 10000
	messageFadeStart = messageLifetime * 7 / 10
	maxVisibleLines  = 4
)
