package tui

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"os/exec"
	"strings"

	"github.com/gookit/color"
	log "github.com/sirupsen/logrus"

	"worldmap/pkg/engine/input"
	"worldmap/pkg/engine/terminal"
	"worldmap/pkg/game/mapview"
	"worldmap/pkg/game/poi"
	"worldmap/pkg/game/renderer"
)

// Icon glyphs per POI icon key
var iconGlyphs = map[string]string{
	"town":   "■",
	"quest":  "!",
	"cave":   "▲",
	"shrine": "†",
	"player": "@",
}

const (
	IconUnknown   = "?"
	IconCrosshair = "+"
	IconGrid      = "·"
	IconVoid      = " "
)

// Each character cell stands for a block of screen pixels, so the map
// pipeline runs unchanged on a terminal.
const (
	CellWidth  = 8
	CellHeight = 16
)

// Lines outside the map: header, status, help, messages pane (header + 5 + footer)
const (
	ViewportTopMargin = 10
	ViewportMinRows   = 11
	ViewportMinCols   = 21
	maxMessages       = 5
)

var cells = terminal.CellLayout{
	CellWidth:    CellWidth,
	CellHeight:   CellHeight,
	ReservedRows: ViewportTopMargin,
	MinCols:      ViewportMinCols,
	MinRows:      ViewportMinRows,
}

// cell is one character of the map grid
type cell struct {
	glyph string
	style renderer.TextStyle
}

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	colorNormal  color.Style
	colorTown    color.Style
	colorQuest   color.Style
	colorCave    color.Style
	colorShrine  color.Style
	colorPlayer  color.Style
	colorHovered color.Style
	colorKey     color.Style
	colorSubtle  color.Style
	colorDenied  color.Style

	reader   *input.KeyReader
	out      io.Writer
	messages []string
}

// New creates a new TUI renderer
func New() *TUIRenderer {
	return &TUIRenderer{
		reader: input.NewKeyReader(),
		out:    os.Stdout,
	}
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() error {
	t.colorNormal = color.Style{color.FgWhite}
	t.colorTown = color.Style{color.FgYellow, color.OpBold}
	t.colorQuest = color.Style{color.FgMagenta, color.OpBold}
	t.colorCave = color.Style{color.FgGray}
	t.colorShrine = color.Style{color.FgCyan}
	t.colorPlayer = color.Style{color.FgGreen, color.BgBlack, color.OpBold}
	t.colorHovered = color.Style{color.FgBlack, color.BgYellow, color.OpBold}
	t.colorKey = color.Style{color.FgMagenta, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
	t.colorDenied = color.Style{color.FgRed, color.OpBold}
	return nil
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	c := exec.Command("clear")
	c.Stdout = os.Stdout
	c.Run()
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleTown:
		return t.colorTown.Sprint(text)
	case renderer.StyleQuest:
		return t.colorQuest.Sprint(text)
	case renderer.StyleCave:
		return t.colorCave.Sprint(text)
	case renderer.StyleShrine:
		return t.colorShrine.Sprint(text)
	case renderer.StylePlayer:
		return t.colorPlayer.Sprint(text)
	case renderer.StyleHovered:
		return t.colorHovered.Sprint(text)
	case renderer.StyleKey:
		return t.colorKey.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	case renderer.StyleDenied:
		return t.colorDenied.Sprint(text)
	default:
		return text
	}
}

// FormatText formats a message with the markup system
func (t *TUIRenderer) FormatText(msg string, args ...any) string {
	var sb strings.Builder
	for _, seg := range renderer.ParseMarkup(fmt.Sprintf(msg, args...)) {
		sb.WriteString(t.StyleText(seg.Text, seg.Style))
	}
	return sb.String()
}

// ShowMessage adds a message to the messages pane
func (t *TUIRenderer) ShowMessage(msg string) {
	t.messages = append(t.messages, msg)
	if len(t.messages) > maxMessages {
		t.messages = t.messages[len(t.messages)-maxMessages:]
	}
}

// GetViewportSize returns the map surface in pixels based on terminal size
func (t *TUIRenderer) GetViewportSize() (width, height int) {
	return cells.Surface(terminal.GetSize())
}

// Run draws the map and feeds key presses to the screen until it closes.
// The pointer is the crosshair at the map center.
func (t *TUIRenderer) Run(screen *mapview.Screen) error {
	ctrl := screen.Controller()
	ctrl.SetDevice(input.DeviceTerminal)

	for !screen.Closed() {
		w, h := t.GetViewportSize()
		screen.Resize(w, h)

		px, pz := screen.Viewport().Center()
		frame := screen.Frame(px, pz)

		t.Clear()
		t.RenderFrame(screen, frame, px, pz)

		code, err := t.reader.ReadKey()
		if errors.Is(err, input.ErrInterrupted) {
			ctrl.Close()
			break
		}
		if err != nil {
			return fmt.Errorf("read key: %w", err)
		}
		if code == "" {
			continue
		}

		// A terminal has no release events: hold the key for one tick.
		ctrl.KeyDown(code)
		screen.Tick()
		ctrl.KeyUp(code)
	}

	log.Info("terminal map closed")
	return nil
}

// RenderFrame writes one frame: header, map grid, status and messages.
func (t *TUIRenderer) RenderFrame(screen *mapview.Screen, frame mapview.Frame, px, pz float64) {
	vp := screen.Viewport()
	cols := int(vp.ScreenWidth) / CellWidth

	fmt.Fprintln(t.out, t.FormatText("GT{WORLD_MAP}  SUBTLE{%.2fx}  %s", frame.Zoom, screen.CursorLabel(px, pz)))

	for _, row := range buildGrid(screen, frame, px, pz) {
		var sb strings.Builder
		for _, c := range row {
			sb.WriteString(t.StyleText(c.glyph, c.style))
		}
		fmt.Fprintln(t.out, sb.String())
	}

	if status := screen.Status(); status != "" {
		fmt.Fprintln(t.out, t.FormatText("%s", status))
	} else {
		fmt.Fprintln(t.out)
	}
	fmt.Fprintln(t.out, t.FormatText("%s", renderer.HelpText()))

	t.printMessagesPane(cols)
}

// printMessagesPane renders the messages log pane
func (t *TUIRenderer) printMessagesPane(width int) {
	label := " Messages "
	labelLen := len(label)
	sideLen := (width - labelLen) / 2
	if sideLen < 1 {
		sideLen = 1
	}

	leftDashes := strings.Repeat("─", sideLen)
	rightDashes := strings.Repeat("─", max(width-sideLen-labelLen, 1))

	fmt.Fprintln(t.out, t.colorSubtle.Sprint(leftDashes+label+rightDashes))

	if len(t.messages) == 0 {
		fmt.Fprintln(t.out, t.colorSubtle.Sprint("  (no messages)"))
	} else {
		for _, msg := range t.messages {
			fmt.Fprintf(t.out, "  %s\n", t.FormatText("%s", msg))
		}
	}

	fmt.Fprintln(t.out, t.colorSubtle.Sprint(strings.Repeat("─", width)))
}

// buildGrid lays the frame out as character cells covering the whole
// viewport: border, grid dots, POIs, crosshair and the hovered label.
func buildGrid(screen *mapview.Screen, frame mapview.Frame, px, pz float64) [][]cell {
	vp := screen.Viewport()
	cols := int(vp.ScreenWidth) / CellWidth
	rows := int(vp.ScreenHeight) / CellHeight

	grid := make([][]cell, rows)
	for r := range grid {
		grid[r] = make([]cell, cols)
		for c := range grid[r] {
			grid[r][c] = cell{glyph: IconVoid}
		}
	}

	set := func(x, z float64, glyph string, style renderer.TextStyle) {
		c, r := cells.Cell(x, z)
		if x < 0 || z < 0 || r >= rows || c >= cols {
			return
		}
		grid[r][c] = cell{glyph: glyph, style: style}
	}

	mx, my, mw, mh := vp.MapRect()
	left, top := cells.Cell(mx, my)
	right, bottom := cells.Cell(mx+mw-1, my+mh-1)

	// Grid dots at world lines
	step := gridStep(frame.Zoom)
	for r := top + 1; r < bottom; r++ {
		for c := left + 1; c < right; c++ {
			wx, wz := screen.CursorWorld(float64(c*CellWidth), float64(r*CellHeight))
			nx, nz := screen.CursorWorld(float64((c+1)*CellWidth), float64((r+1)*CellHeight))
			if crossesLine(wx, nx, step) && crossesLine(wz, nz, step) {
				grid[r][c] = cell{glyph: IconGrid, style: renderer.StyleSubtle}
			}
		}
	}

	set(px, pz, IconCrosshair, renderer.StyleKey)

	var label string
	var labelX, labelZ float64
	frame.PaintOrder(func(e mapview.Entry, hovered bool) {
		if !vp.Contains(e.ScreenX, e.ScreenZ) {
			return
		}
		key := ""
		if icon, ok := e.Poi.(interface{ Icon() poi.Icon }); ok {
			key = icon.Icon().Key
		}
		glyph, ok := iconGlyphs[key]
		if !ok {
			glyph = IconUnknown
		}

		style := renderer.StyleForIcon(key)
		if e.Alpha < 0.5 {
			style = renderer.StyleSubtle
		}
		if hovered {
			style = renderer.StyleHovered
			label = e.Poi.Name()
			labelX, labelZ = e.ScreenX, e.ScreenZ+CellHeight
		}
		set(e.ScreenX, e.ScreenZ, glyph, style)
	})

	if label != "" {
		startCol := int(labelX)/CellWidth - len([]rune(label))/2
		r := int(labelZ) / CellHeight
		if r < bottom {
			for i, ch := range []rune(label) {
				c := startCol + i
				if c > left && c < right {
					grid[r][c] = cell{glyph: string(ch), style: renderer.StyleTown}
				}
			}
		}
	}

	drawBorder(grid, left, top, right, bottom)
	return grid
}

// drawBorder frames the map area with box-drawing characters
func drawBorder(grid [][]cell, left, top, right, bottom int) {
	if bottom >= len(grid) || right >= len(grid[0]) {
		return
	}
	for c := left; c <= right; c++ {
		grid[top][c] = cell{glyph: "─", style: renderer.StyleSubtle}
		grid[bottom][c] = cell{glyph: "─", style: renderer.StyleSubtle}
	}
	for r := top; r <= bottom; r++ {
		grid[r][left] = cell{glyph: "│", style: renderer.StyleSubtle}
		grid[r][right] = cell{glyph: "│", style: renderer.StyleSubtle}
	}
	grid[top][left].glyph = "┌"
	grid[top][right].glyph = "┐"
	grid[bottom][left].glyph = "└"
	grid[bottom][right].glyph = "┘"
}

// gridStep picks a world grid spacing that stays readable at the zoom level
func gridStep(zoom float64) float64 {
	step := 100.0
	for step*zoom < 12*CellWidth {
		step *= 2
	}
	return step
}

// crossesLine reports whether a multiple of step lies in [a, b)
func crossesLine(a, b, step float64) bool {
	return math.Floor(a/step) != math.Floor(b/step) || math.Mod(a, step) == 0
}
