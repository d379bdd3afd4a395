// Package pdfsource implements the source.Document backend over a PDF
// file, using github.com/ledongthuc/pdf for text extraction.
//
// Positioned text runs are grouped into lines by baseline, and lines
// into block fragments by vertical gap, approximating the
// paragraph-level blocks a full layout engine reports. Coordinates are
// flipped from PDF's bottom-left origin to the module's top-left
// convention, and extracted text is normalized to NFC so that marker
// tokens survive extraction byte-for-byte.
//
// The package has no PDF rasterizer; Rasterize produces a schematic
// render (white page with the fragment boxes sketched in) that gives
// overlay images their geometric context.
package pdfsource
