// Package testpdf builds small marked PDF documents for tests and
// demos. It writes real PDFs through fpdf so that the pdfsource
// backend exercises the same extraction path production documents
// take.
package testpdf

import (
	"fmt"

	"codeberg.org/go-pdf/fpdf"
)

// Line is one line of text placed at a baseline position, in points
// from the page's top-left corner.
type Line struct {
	X, Y float64
	Text string
}

// Doc accumulates pages of positioned text lines
type Doc struct {
	pages [][]Line
}

// New creates an empty document builder
func New() *Doc {
	return &Doc{}
}

// AddPage starts a new page and returns its 0-based index
func (d *Doc) AddPage() int {
	d.pages = append(d.pages, nil)
	return len(d.pages) - 1
}

// AddLine places a text line on a page
func (d *Doc) AddLine(page int, x, y float64, text string) {
	d.pages[page] = append(d.pages[page], Line{X: x, Y: y, Text: text})
}

// Write renders the document to a PDF file (US Letter, point units)
func (d *Doc) Write(path string) error {
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetFont("Helvetica", "", 11)
	for _, lines := range d.pages {
		pdf.AddPage()
		for _, ln := range lines {
			pdf.Text(ln.X, ln.Y, ln.Text)
		}
	}
	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// WriteSample writes a one-page resume-shaped document with marked
// experience, project, and skills sections, suitable for demos and
// integration tests. It returns the ids of the marked regions.
func WriteSample(path string) ([]string, error) {
	d := New()
	page := d.AddPage()

	d.AddLine(page, 72, 80, "Jordan Example - Software Engineer")

	d.AddLine(page, 72, 140, "[BEGIN exp:1] Acme Corp, Senior Engineer")
	d.AddLine(page, 84, 160, "Led migration of the billing pipeline to Go.")
	d.AddLine(page, 84, 180, "Cut processing latency by 40%. [END exp:1]")

	d.AddLine(page, 72, 260, "[BEGIN pr:2] regiond: marker resolution engine [END pr:2]")

	d.AddLine(page, 72, 340, "[BEGIN sk:3] Go, PostgreSQL, Kubernetes [END sk:3]")

	if err := d.Write(path); err != nil {
		return nil, err
	}
	return []string{"exp:1", "pr:2", "sk:3"}, nil
}
