// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"worldmap/pkg/game/mapview"
	"worldmap/pkg/game/poi"
)

const mapDumpFilename = "mapdump.txt"

// iconKey returns the icon key of a POI, or "?" when it has none
func iconKey(p poi.Poi) string {
	if ip, ok := p.(interface{ Icon() poi.Icon }); ok && ip.Icon().Key != "" {
		return ip.Icon().Key
	}
	return "?"
}

// WriteFrameDump writes a debug dump of a frame: camera metadata, a legend
// and every surviving entry with its resolved state. The format is plain
// "key: value" sections.
func WriteFrameDump(w io.Writer, s *mapview.Screen, f mapview.Frame) error {
	var b strings.Builder

	cam := s.Camera()
	vp := s.Viewport()
	mx, my, mw, mh := vp.MapRect()
	cx, cz := cam.Center()
	box := cam.VisibleBox(mw, mh)

	// --- Metadata ---
	fmt.Fprintln(&b, "=== MAP FRAME DUMP ===")
	fmt.Fprintln(&b, "")
	fmt.Fprintln(&b, "--- Metadata ---")
	fmt.Fprintf(&b, "zoom: %.4f\n", f.Zoom)
	fmt.Fprintf(&b, "poi_scale: %.2f\n", f.Scale)
	fmt.Fprintf(&b, "camera_center: %.2f,%.2f\n", cx, cz)
	fmt.Fprintf(&b, "screen_size: %.0fx%.0f\n", vp.ScreenWidth, vp.ScreenHeight)
	fmt.Fprintf(&b, "map_rect: %.1f,%.1f %.1fx%.1f\n", mx, my, mw, mh)
	fmt.Fprintf(&b, "visible_box: %.2f,%.2f .. %.2f,%.2f\n", box.MinX, box.MinZ, box.MaxX, box.MaxZ)
	fmt.Fprintf(&b, "coordinate_system: x,z (world), x right and z down on screen\n")
	if tx, tz, ok := s.TrackedScreenPosition(); ok {
		fmt.Fprintf(&b, "tracked_screen: %.1f,%.1f\n", tx, tz)
	} else {
		fmt.Fprintln(&b, "tracked_screen: absent")
	}
	fmt.Fprintf(&b, "entries: %d\n", len(f.Entries))
	fmt.Fprintf(&b, "hovered: %d\n", f.Hovered)
	fmt.Fprintln(&b, "")

	// --- Legend ---
	fmt.Fprintln(&b, "--- Legend ---")
	fmt.Fprintln(&b, "index = position in the frame (hovered entry first)  world = x,z  screen = projected center  size = footprint px  alpha = fade")
	fmt.Fprintln(&b, "")

	// --- Counts per icon ---
	counts := make(map[string]int)
	for _, e := range f.Entries {
		counts[iconKey(e.Poi)]++
	}
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fmt.Fprintln(&b, "--- Icons ---")
	for _, k := range keys {
		fmt.Fprintf(&b, "  %s: %d\n", k, counts[k])
	}
	fmt.Fprintln(&b, "")

	// --- Entries ---
	fmt.Fprintln(&b, "--- Entries ---")
	for i, e := range f.Entries {
		fmt.Fprintf(&b, "  index: %d name: %q icon: %s world: %.1f,%.1f screen: %.1f,%.1f size: %dx%d alpha: %.2f hovered: %v\n",
			i, e.Poi.Name(), iconKey(e.Poi), e.World.X, e.World.Z, e.ScreenX, e.ScreenZ, e.Width, e.Height, e.Alpha, f.IsHovered(i))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// DumpFrameToFile writes the frame dump to mapdump.txt in the working
// directory and returns its absolute path.
func DumpFrameToFile(s *mapview.Screen, f mapview.Frame) (string, error) {
	absPath, err := filepath.Abs(mapDumpFilename)
	if err != nil {
		return "", err
	}

	file, err := os.Create(absPath)
	if err != nil {
		return "", fmt.Errorf("create frame dump: %w", err)
	}
	defer file.Close()

	if err := WriteFrameDump(file, s, f); err != nil {
		return "", fmt.Errorf("write frame dump: %w", err)
	}
	return absPath, nil
}
