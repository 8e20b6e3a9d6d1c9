// Package coords parses and formats world coordinates exchanged as text.
package coords

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// ErrNoCoordinates is returned when text holds no recognisable coordinates.
var ErrNoCoordinates = errors.New("no coordinates found")

// Point is a parsed coordinate. Y is zero when the text only had x and z.
type Point struct {
	X, Y, Z int
}

var (
	// x, optional y, z separated by up to five non-numeric characters
	loosePattern = regexp.MustCompile(`^([-+]?\d+)(?:[^0-9+-]{1,5}([-+]?\d+))?[^0-9+-]{1,5}([-+]?\d+)$`)

	// bounded form for picking coordinates out of surrounding text
	strictPattern = regexp.MustCompile(`([-+]?\d{1,5})(?:[,\s]{1,2}([-+]?\d{1,4}))?[,\s]{1,2}([-+]?\d{1,5})`)
)

// Parse reads a whole string of the form "x, y, z" or "x z".
func Parse(s string) (Point, error) {
	m := loosePattern.FindStringSubmatch(s)
	if m == nil {
		return Point{}, fmt.Errorf("parse %q: %w", s, ErrNoCoordinates)
	}
	return fromMatch(m)
}

// Find returns the first coordinates embedded anywhere in s, such as
// "my location is at [120, 64, -1400]".
func Find(s string) (Point, error) {
	m := strictPattern.FindStringSubmatch(s)
	if m == nil {
		return Point{}, fmt.Errorf("find in %q: %w", s, ErrNoCoordinates)
	}
	return fromMatch(m)
}

func fromMatch(m []string) (Point, error) {
	var p Point
	var err error

	if p.X, err = strconv.Atoi(m[1]); err != nil {
		return Point{}, fmt.Errorf("x coordinate: %w", err)
	}
	if m[2] != "" {
		if p.Y, err = strconv.Atoi(m[2]); err != nil {
			return Point{}, fmt.Errorf("y coordinate: %w", err)
		}
	}
	if p.Z, err = strconv.Atoi(m[3]); err != nil {
		return Point{}, fmt.Errorf("z coordinate: %w", err)
	}
	return p, nil
}

// Format renders a map position as "x, z", truncated to whole blocks.
func Format(x, z float64) string {
	return fmt.Sprintf("%d, %d", int(x), int(z))
}
