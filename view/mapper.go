package view

import (
	"fmt"

	"github.com/mwhitfield/regionmark/model"
)

// FitMode selects how the display scale of a page is chosen
type FitMode int

const (
	// FitNatural renders at a fixed default scale (~108 dpi)
	FitNatural FitMode = iota
	// FitWidth scales so the page width fills the viewport width
	FitWidth
	// FitHeight scales so the page height fills the viewport height
	FitHeight
)

// String returns the mode's configuration name
func (m FitMode) String() string {
	switch m {
	case FitWidth:
		return "fit_width"
	case FitHeight:
		return "fit_height"
	default:
		return "natural"
	}
}

// ParseFitMode parses a configuration name into a FitMode
func ParseFitMode(s string) (FitMode, error) {
	switch s {
	case "natural":
		return FitNatural, nil
	case "fit_width":
		return FitWidth, nil
	case "fit_height":
		return FitHeight, nil
	}
	return FitNatural, fmt.Errorf("unknown fit mode %q", s)
}

const (
	// NaturalScale is the fixed scale used by FitNatural
	NaturalScale = 1.5
	// MinScale is the lower clamp on any computed scale, so a viewport
	// that has not been laid out yet cannot produce a degenerate
	// zero-area render.
	MinScale = 0.2

	// A viewport dimension below this is treated as not laid out.
	minViewport = 50
)

// Viewport is the display area available for a page, in pixels
type Viewport struct {
	Width, Height float64
}

// laidOut reports whether the viewport has usable dimensions
func (v Viewport) laidOut() bool {
	return v.Width > minViewport && v.Height > minViewport
}

// ScaleFor computes the scalar scale for rendering a page of the given
// natural size under the given fit mode, such that
// display = document x scale. The result is clamped to MinScale. A fit
// mode with an unusable viewport (or a degenerate page size) falls
// back to NaturalScale.
func ScaleFor(mode FitMode, vp Viewport, pageWidth, pageHeight float64) float64 {
	s := NaturalScale
	switch mode {
	case FitWidth:
		if vp.laidOut() && pageWidth > 0 {
			s = vp.Width / pageWidth
		}
	case FitHeight:
		if vp.laidOut() && pageHeight > 0 {
			s = vp.Height / pageHeight
		}
	}
	if s < MinScale {
		s = MinScale
	}
	return s
}

// ToDisplay maps a document-space point into display space
func ToDisplay(p model.Point, scale float64) model.Point {
	return model.Point{X: p.X * scale, Y: p.Y * scale}
}

// ToDocument maps a display-space point back into document space
func ToDocument(p model.Point, scale float64) model.Point {
	return model.Point{X: p.X / scale, Y: p.Y / scale}
}
