package devtools

import (
	"fmt"
	"html"
	"os"
	"strings"
	"time"

	"worldmap/pkg/game/mapview"
)

// BuildScreenshotHTML renders a frame as a standalone HTML page. Each entry is
// an absolutely positioned box at its screen footprint inside the map area.
func BuildScreenshotHTML(s *mapview.Screen, f mapview.Frame) string {
	vp := s.Viewport()
	mx, my, mw, mh := vp.MapRect()
	cx, cz := s.Camera().Center()

	var page strings.Builder

	page.WriteString(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>World Map - Snapshot</title>
    <style>
        body {
            background-color: #1a1a2e;
            color: #eee;
            font-family: sans-serif;
            padding: 20px;
        }
        .header {
            color: #b496fa;
            font-size: 18px;
            margin-bottom: 10px;
        }
        .meta { color: #7882b4; margin-bottom: 20px; }
        .map {
            position: relative;
            overflow: hidden;
            background-color: #263428;
            border: 6px solid #786446;
        }
        .poi { position: absolute; box-sizing: border-box; border: 1px solid #141414; }
        .town { background-color: #ffdc64; }
        .quest { background-color: #dcaaff; border-radius: 50%; }
        .cave { background-color: #aaa096; }
        .shrine { background-color: #64c8ff; transform: rotate(45deg); }
        .player { background-color: #00ff00; border-radius: 50%; }
        .unknown { border-color: #fff; }
        .hovered { outline: 2px solid #b496fa; transform: scale(1.05); z-index: 1; }
        .label {
            position: absolute;
            color: #c8d2f5;
            font-size: 13px;
            white-space: nowrap;
            transform: translateX(-50%);
            z-index: 2;
        }
    </style>
</head>
<body>
`)

	fmt.Fprintf(&page, `    <div class="header">%s</div>`+"\n", html.EscapeString(s.CursorLabel(vp.Center())))
	fmt.Fprintf(&page, `    <div class="meta">zoom %.2f, center %.1f, %.1f, %d entries</div>`+"\n", f.Zoom, cx, cz, len(f.Entries))
	fmt.Fprintf(&page, `    <div class="map" style="width:%.0fpx;height:%.0fpx">`+"\n", mw, mh)

	// Paint order matches the live renderers, so later elements stack on top
	f.PaintOrder(func(e mapview.Entry, hovered bool) {
		class := iconKey(e.Poi)
		if class == "?" {
			class = "unknown"
		}
		if hovered {
			class += " hovered"
		}

		left := e.ScreenX - mx - float64(e.Width)/2
		top := e.ScreenZ - my - float64(e.Height)/2
		fmt.Fprintf(&page, `        <div class="poi %s" title="%s" style="left:%.1fpx;top:%.1fpx;width:%dpx;height:%dpx;opacity:%.2f"></div>`+"\n",
			class, html.EscapeString(e.Poi.Name()), left, top, e.Width, e.Height, e.Alpha)

		if hovered {
			fmt.Fprintf(&page, `        <div class="label" style="left:%.1fpx;top:%.1fpx">%s</div>`+"\n",
				e.ScreenX-mx, e.ScreenZ-my+20, html.EscapeString(e.Poi.Name()))
		}
	})

	page.WriteString(`    </div>
</body>
</html>
`)
	return page.String()
}

// SaveScreenshotHTML saves the frame as an HTML file named after the current
// time and returns the file name.
func SaveScreenshotHTML(s *mapview.Screen, f mapview.Frame) (string, error) {
	timestamp := time.Now().Format("20060102-150405")
	filename := fmt.Sprintf("snapshot-%s.html", timestamp)

	if err := os.WriteFile(filename, []byte(BuildScreenshotHTML(s, f)), 0644); err != nil {
		return "", fmt.Errorf("write snapshot: %w", err)
	}
	return filename, nil
}
