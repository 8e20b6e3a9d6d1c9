package coords

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// ErrClipboardUnsupported is returned when the platform has no clipboard tool.
var ErrClipboardUnsupported = errors.New("clipboard unsupported")

// Clipboard is where copied coordinates go and pasted ones come from.
type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

// SystemClipboard uses the desktop clipboard.
type SystemClipboard struct{}

func (SystemClipboard) ReadAll() (string, error) {
	if clipboard.Unsupported {
		return "", ErrClipboardUnsupported
	}
	s, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("read clipboard: %w", err)
	}
	return s, nil
}

func (SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnsupported
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	return nil
}

// Copy writes the "x, z" form of a map position to cb.
func Copy(cb Clipboard, x, z float64) (string, error) {
	s := Format(x, z)
	if err := cb.WriteAll(s); err != nil {
		return "", err
	}
	return s, nil
}

// Paste reads coordinates from cb, accepting either a bare coordinate string
// or one embedded in a sentence.
func Paste(cb Clipboard) (Point, error) {
	s, err := cb.ReadAll()
	if err != nil {
		return Point{}, err
	}
	if p, err := Parse(s); err == nil {
		return p, nil
	}
	return Find(s)
}
