package pdfsource

import (
	"fmt"
	"os"

	"github.com/ledongthuc/pdf"

	"github.com/mwhitfield/regionmark/model"
	"github.com/mwhitfield/regionmark/source"
)

// Reader is a source.Document backed by a PDF file
type Reader struct {
	file *os.File
	pdf  *pdf.Reader
	path string
}

var _ source.Document = (*Reader)(nil)

// Open opens a PDF file for fragment extraction
func Open(path string) (*Reader, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening PDF %s: %w", path, err)
	}
	return &Reader{file: f, pdf: r, path: path}, nil
}

// Path returns the path the reader was opened from
func (r *Reader) Path() string {
	return r.path
}

// PageCount returns the number of pages in the PDF
func (r *Reader) PageCount() int {
	return r.pdf.NumPage()
}

// PageSize returns the page's MediaBox dimensions in points
func (r *Reader) PageSize(pageIndex int) (float64, float64, error) {
	page, err := r.page(pageIndex)
	if err != nil {
		return 0, 0, err
	}
	box, err := mediaBox(page)
	if err != nil {
		return 0, 0, fmt.Errorf("page %d: %w", pageIndex, err)
	}
	return box.Width(), box.Height(), nil
}

// Fragments returns the page's text grouped into block fragments, in
// top-to-bottom extraction order, with coordinates in the top-left
// origin convention. A page whose text cannot be extracted yields an
// empty fragment list, not an error.
func (r *Reader) Fragments(pageIndex int) ([]model.Fragment, error) {
	page, err := r.page(pageIndex)
	if err != nil {
		return nil, err
	}
	box, err := mediaBox(page)
	if err != nil {
		return nil, fmt.Errorf("page %d: %w", pageIndex, err)
	}

	content := page.Content()
	return groupFragments(pageIndex, content.Text, box.Height()), nil
}

// Close releases the underlying file. Safe to call more than once.
func (r *Reader) Close() error {
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	r.pdf = nil
	return err
}

// page fetches a page by 0-based index. ledongthuc/pdf numbers pages
// from 1.
func (r *Reader) page(pageIndex int) (pdf.Page, error) {
	if pageIndex < 0 || pageIndex >= r.pdf.NumPage() {
		return pdf.Page{}, fmt.Errorf("page %d of %d: %w", pageIndex, r.pdf.NumPage(), source.ErrPageOutOfRange)
	}
	page := r.pdf.Page(pageIndex + 1)
	if page.V.IsNull() {
		return pdf.Page{}, fmt.Errorf("page %d: missing page object", pageIndex)
	}
	return page, nil
}

// mediaBox reads the page's MediaBox, climbing the page tree for
// inherited values.
func mediaBox(page pdf.Page) (model.Rect, error) {
	node := page.V
	for !node.IsNull() {
		box := node.Key("MediaBox")
		if !box.IsNull() && box.Len() == 4 {
			return model.NewRect(
				box.Index(0).Float64(),
				box.Index(1).Float64(),
				box.Index(2).Float64(),
				box.Index(3).Float64(),
			), nil
		}
		node = node.Key("Parent")
	}
	return model.Rect{}, fmt.Errorf("no MediaBox in page tree")
}
