// Package source defines the collaborator interface the resolution
// engine requires from a document rendering backend.
//
// The engine itself never parses a document format: it consumes ordered
// text fragments with bounding rectangles, page sizes, and raster
// images through the [Document] interface. Any backend that can supply
// those three things can drive the engine; the pdfsource package
// provides the PDF-backed implementation.
package source

import (
	"errors"
	"image"

	"github.com/mwhitfield/regionmark/model"
)

// ErrPageOutOfRange is returned when a page index is negative or not
// less than the document's page count.
var ErrPageOutOfRange = errors.New("page index out of range")

// Document is the rendering backend contract. All coordinates use the
// module's top-left-origin convention (see the model package);
// implementations over formats with a bottom-left native origin must
// flip before reporting.
//
// Implementations are not required to be safe for concurrent use; the
// engine drives a Document from a single goroutine.
type Document interface {
	// PageCount returns the number of pages in the document.
	PageCount() int

	// PageSize returns the natural width and height of a page in
	// document points.
	PageSize(pageIndex int) (width, height float64, err error)

	// Fragments returns the page's text fragments in extraction order.
	// Fragments with blank text are not included.
	Fragments(pageIndex int) ([]model.Fragment, error)

	// Rasterize renders the page at the given scale, where display
	// pixels = document points x scale.
	Rasterize(pageIndex int, scale float64) (image.Image, error)

	// Close releases the underlying document resources. It is safe to
	// call more than once.
	Close() error
}
