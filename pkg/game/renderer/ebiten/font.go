package ebiten

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// loadFonts parses the embedded Go fonts into face sources
func (e *EbitenRenderer) loadFonts() error {
	mono, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return fmt.Errorf("load mono font: %w", err)
	}
	sans, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("load sans font: %w", err)
	}

	e.monoFontSource = mono
	e.sansFontSource = sans
	e.invalidateFontCache()
	return nil
}

// getMonoFontFace returns a cached monospace font face for the coordinate readout
func (e *EbitenRenderer) getMonoFontFace() *text.GoTextFace {
	if e.cachedMonoFace == nil {
		e.cachedMonoFace = &text.GoTextFace{
			Source: e.monoFontSource,
			Size:   monoFontSize,
		}
	}
	return e.cachedMonoFace
}

// getSansFontFace returns a cached sans-serif font face for UI text
func (e *EbitenRenderer) getSansFontFace() *text.GoTextFace {
	if e.cachedSansFace == nil {
		e.cachedSansFace = &text.GoTextFace{
			Source: e.sansFontSource,
			Size:   baseFontSize,
		}
	}
	return e.cachedSansFace
}

// getLabelFontFace returns the face used for POI labels
func (e *EbitenRenderer) getLabelFontFace() *text.GoTextFace {
	if e.cachedLabelFace == nil {
		e.cachedLabelFace = &text.GoTextFace{
			Source: e.sansFontSource,
			Size:   labelFontSize,
		}
	}
	return e.cachedLabelFace
}

// invalidateFontCache clears cached font faces (call when sources change)
func (e *EbitenRenderer) invalidateFontCache() {
	e.cachedMonoFace = nil
	e.cachedSansFace = nil
	e.cachedLabelFace = nil
}
