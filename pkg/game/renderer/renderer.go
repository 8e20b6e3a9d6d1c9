package renderer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/leonelquinteros/gotext"

	"worldmap/pkg/engine/input"
)

// dynamicGet is used for runtime translation key lookups.
// A function variable avoids go vet's non-constant format string check,
// since translation keys come from markup at runtime.
var dynamicGet = gotext.Get

var regexpStringFunctions = regexp.MustCompile(`([A-Z][A-Z0-9_]*)\{([^}]*)\}`)

// Segment is a run of text with the style its markup asked for.
type Segment struct {
	Text  string
	Style TextStyle
}

// ParseMarkup splits a message with markup (GT{}, PLACE{}, KEY{}, SUBTLE{},
// DENIED{}) into styled segments. GT{} operands are translated.
func ParseMarkup(msg string) []Segment {
	var segments []Segment

	lastIndex := 0
	for _, match := range regexpStringFunctions.FindAllStringSubmatchIndex(msg, -1) {
		if match[0] > lastIndex {
			segments = append(segments, Segment{Text: msg[lastIndex:match[0]], Style: StyleNormal})
		}

		function := msg[match[2]:match[3]]
		content := msg[match[4]:match[5]]

		seg := Segment{Text: content, Style: StyleNormal}
		switch function {
		case "GT":
			seg.Text = dynamicGet(content)
		case "PLACE":
			seg.Style = StyleTown
		case "KEY":
			seg.Style = StyleKey
		case "SUBTLE":
			seg.Style = StyleSubtle
		case "DENIED":
			seg.Style = StyleDenied
		default:
			seg.Text = fmt.Sprintf("ERROR, function not found: %v -> %v", function, content)
		}
		segments = append(segments, seg)
		lastIndex = match[1]
	}

	if lastIndex < len(msg) {
		segments = append(segments, Segment{Text: msg[lastIndex:], Style: StyleNormal})
	}
	return segments
}

// StyleForIcon maps a POI icon key to the style used to draw it
func StyleForIcon(key string) TextStyle {
	switch key {
	case "town":
		return StyleTown
	case "quest":
		return StyleQuest
	case "cave":
		return StyleCave
	case "shrine":
		return StyleShrine
	case "player":
		return StylePlayer
	default:
		return StyleNormal
	}
}

// helpActions lists the actions shown in the help line, in display order
var helpActions = []input.Action{
	input.ActionZoomIn,
	input.ActionZoomOut,
	input.ActionRecenter,
	input.ActionCopyCoordinates,
	input.ActionPasteCoordinates,
	input.ActionClose,
}

// HelpText returns a markup line describing the current key bindings.
func HelpText() string {
	bindings := input.GetBindingsByAction()

	var out string
	for _, a := range helpActions {
		code := keyboardCode(bindings[a])
		if code == "" {
			continue
		}
		if out != "" {
			out += "  "
		}
		out += fmt.Sprintf("KEY{%s} GT{%s}", code, input.ActionName(a))
	}
	return out
}

// keyboardCode returns the first code that isn't a gamepad button
func keyboardCode(codes []string) string {
	for _, c := range codes {
		if !strings.HasPrefix(c, "gamepad_") {
			return c
		}
	}
	return ""
}
