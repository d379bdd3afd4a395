package regionmark

import (
	"fmt"
	"image"

	"github.com/mwhitfield/regionmark/export"
	"github.com/mwhitfield/regionmark/model"
	"github.com/mwhitfield/regionmark/pdfsource"
	"github.com/mwhitfield/regionmark/resolve"
	"github.com/mwhitfield/regionmark/source"
	"github.com/mwhitfield/regionmark/view"
)

// Session holds the resolved region set of one loaded document along
// with the current view state (fit mode, viewport, overlay style).
// There is exactly one logical owner of a session; it is not safe for
// concurrent use. Loading a new document rebuilds the region set from
// scratch.
type Session struct {
	doc     source.Document
	ownsDoc bool
	path    string

	regions  map[string]model.Region
	order    []string
	warnings []resolve.Warning

	fitMode  view.FitMode
	viewport view.Viewport
	style    view.Style
}

// newSession resolves the whole document up front; the session is
// fully populated or not created at all.
func newSession(doc source.Document, ownsDoc bool, path string) (*Session, error) {
	s := &Session{
		doc:     doc,
		ownsDoc: ownsDoc,
		path:    path,
		fitMode: view.FitNatural,
		style:   view.DefaultStyle(),
	}
	if err := s.rebuild(); err != nil {
		return nil, err
	}
	return s, nil
}

// rebuild re-resolves every page of the current document
func (s *Session) rebuild() error {
	resolver := resolve.New()
	for i := 0; i < s.doc.PageCount(); i++ {
		fragments, err := s.doc.Fragments(i)
		if err != nil {
			return fmt.Errorf("extracting page %d: %w", i, err)
		}
		resolver.ResolvePage(i, fragments)
	}

	s.regions = resolver.Regions()
	s.order = resolver.Order()
	s.warnings = resolver.Warnings()

	if len(s.regions) == 0 {
		s.warnings = append(s.warnings, resolve.Warning{
			Code:      resolve.WarnNoRegions,
			PageIndex: -1,
			Message:   "document contains no marker regions",
		})
	}
	return nil
}

// Load replaces the session's document with the PDF at path and
// rebuilds the region set. The previous document is released first, on
// every exit path: after a failed load the session holds no document
// and only Close and Load may be called.
func (s *Session) Load(path string) error {
	if err := s.Close(); err != nil {
		return fmt.Errorf("releasing previous document: %w", err)
	}

	doc, err := pdfsource.Open(path)
	if err != nil {
		return err
	}
	s.doc = doc
	s.ownsDoc = true
	s.path = path
	if err := s.rebuild(); err != nil {
		s.Close()
		return err
	}
	return nil
}

// Close releases the session's document if the session owns it. It is
// safe to call more than once.
func (s *Session) Close() error {
	doc := s.doc
	owns := s.ownsDoc
	s.doc = nil
	s.ownsDoc = false
	s.path = ""
	s.regions = nil
	s.order = nil
	s.warnings = nil

	if doc != nil && owns {
		return doc.Close()
	}
	return nil
}

// Path returns the file path of the loaded document, if it was opened
// from a file.
func (s *Session) Path() string {
	return s.path
}

// PageCount returns the loaded document's page count
func (s *Session) PageCount() int {
	if s.doc == nil {
		return 0
	}
	return s.doc.PageCount()
}

// Regions returns the id-to-region map for the loaded document.
// Callers must not mutate it.
func (s *Session) Regions() map[string]model.Region {
	return s.regions
}

// Region looks up one region by its "kind:ordinal" id
func (s *Session) Region(id string) (model.Region, bool) {
	r, ok := s.regions[id]
	return r, ok
}

// Order returns region ids in resolution order
func (s *Session) Order() []string {
	return s.order
}

// OrderedRegions returns the regions in resolution order
func (s *Session) OrderedRegions() []model.Region {
	out := make([]model.Region, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.regions[id])
	}
	return out
}

// Warnings returns the non-fatal anomalies found while resolving
func (s *Session) Warnings() []resolve.Warning {
	return s.warnings
}

// SetFitMode changes how the display scale is computed
func (s *Session) SetFitMode(mode view.FitMode) {
	s.fitMode = mode
}

// SetViewport updates the available display area; fit modes recompute
// their scale from it on the next render or hit test.
func (s *Session) SetViewport(vp view.Viewport) {
	s.viewport = vp
}

// SetStyle changes the overlay drawing style
func (s *Session) SetStyle(style view.Style) {
	s.style = style
}

// Scale returns the current display scale for a page under the
// session's fit mode and viewport.
func (s *Session) Scale(pageIndex int) (float64, error) {
	if s.doc == nil {
		return 0, fmt.Errorf("no document loaded")
	}
	w, h, err := s.doc.PageSize(pageIndex)
	if err != nil {
		return 0, err
	}
	return view.ScaleFor(s.fitMode, s.viewport, w, h), nil
}

// Overlay rasterizes a page at the current scale and draws the page's
// regions over it.
func (s *Session) Overlay(pageIndex int) (image.Image, error) {
	scale, err := s.Scale(pageIndex)
	if err != nil {
		return nil, err
	}
	return s.OverlayAt(pageIndex, scale)
}

// OverlayAt rasterizes a page at an explicit scale and draws the
// page's regions over it; used for zoomed overlay export.
func (s *Session) OverlayAt(pageIndex int, scale float64) (image.Image, error) {
	if s.doc == nil {
		return nil, fmt.Errorf("no document loaded")
	}
	base, err := s.doc.Rasterize(pageIndex, scale)
	if err != nil {
		return nil, fmt.Errorf("rasterizing page %d: %w", pageIndex, err)
	}
	return view.RenderOverlay(base, s.OrderedRegions(), pageIndex, scale, s.style), nil
}

// ExportJSON writes the region set to path as the portable JSON
// mapping. Failures are returned as hard errors; no partial recompute
// of geometry happens on export.
func (s *Session) ExportJSON(path string) error {
	return export.WriteFile(path, s.regions)
}

// DefaultExportPath returns the conventional export location for the
// loaded file: the input path with ".regions.json" appended. It is
// empty when the session was built from a caller-owned source.
func (s *Session) DefaultExportPath() string {
	if s.path == "" {
		return ""
	}
	return s.path + ".regions.json"
}

// RegionAt hit-tests a display-space position on a page at the
// current scale, returning the containing region if any. The region
// carries its cleaned text, so a click handler can hand the text
// straight to a clipboard.
func (s *Session) RegionAt(pageIndex int, display model.Point) (model.Region, bool) {
	scale, err := s.Scale(pageIndex)
	if err != nil {
		return model.Region{}, false
	}
	return view.HitTest(s.OrderedRegions(), pageIndex, display, scale)
}
