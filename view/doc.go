// Package view maps resolved regions into display space: computing the
// page scale for a fit mode, drawing region overlays onto a rasterized
// page, and hit-testing display coordinates back to regions.
//
// Everything here is toolkit-agnostic. Rendering produces an
// image.Image and hit testing takes plain coordinates, so an
// interactive viewer binds its widget layer to these functions as a
// thin adapter.
package view
