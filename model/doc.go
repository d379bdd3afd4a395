// Package model provides the core data types for marker-to-region
// resolution.
//
// All geometry is expressed in document points with a top-left origin:
// x grows rightward, y grows downward. Backends that read formats with a
// bottom-left native origin (plain PDF user space) are responsible for
// flipping coordinates before producing fragments, so that every rect in
// the system shares one convention end-to-end.
//
// # Types
//
//   - [Point] - 2D point
//   - [Rect] - axis-aligned rectangle in corner form (x0, y0, x1, y1)
//   - [Fragment] - one unit of extracted text with its bounding rectangle
//   - [Kind] - the marked-content kind (experience, project, skills)
//   - [Region] - a resolved marker pair: geometry plus cleaned text
//
// A [Region] is identified by its [Region.ID], the "kind:ordinal" string
// used as the key in export files and in-memory region maps.
package model
