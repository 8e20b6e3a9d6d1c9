package devtools

import (
	"fmt"

	"worldmap/pkg/game/places"
)

var devCategories = []places.Category{
	places.CategoryTown,
	places.CategoryQuest,
	places.CategoryCave,
	places.CategoryShrine,
}

// DevPlaces returns a hard-coded developer testing atlas: a rows x cols grid
// of places centered on (cx, cz), spacing world units apart. Categories cycle
// along each row so every icon and zoom threshold appears next to the others.
// Every fourth column is shifted half a step to create overlapping icons for
// hover testing.
func DevPlaces(rows, cols int, spacing, cx, cz float64) []places.Place {
	if rows <= 0 || cols <= 0 {
		return nil
	}

	originX := cx - spacing*float64(cols-1)/2
	originZ := cz - spacing*float64(rows-1)/2

	out := make([]places.Place, 0, rows*cols)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			x := originX + float64(col)*spacing
			if col%4 == 3 {
				x -= spacing / 2
			}
			out = append(out, places.Place{
				Name:     fmt.Sprintf("Dev %d,%d", row, col),
				Category: devCategories[col%len(devCategories)],
				X:        x,
				Z:        originZ + float64(row)*spacing,
			})
		}
	}
	return out
}
