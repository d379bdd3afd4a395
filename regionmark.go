// Package regionmark resolves marker-delimited regions in rendered PDF
// documents: it scans extracted text for [BEGIN kind:ordinal] /
// [END kind:ordinal] token pairs, reconstructs the page area each pair
// spans, and exposes the result for overlay rendering, hit testing,
// and JSON export.
//
// Basic usage:
//
//	s, err := regionmark.Open("resume.pdf")
//	if err != nil {
//	    // handle error
//	}
//	defer s.Close()
//	if warnings := s.Warnings(); len(warnings) > 0 {
//	    log.Println("Warnings:", resolve.FormatWarnings(warnings))
//	}
//	for _, region := range s.OrderedRegions() {
//	    fmt.Println(region.ID(), region.Text)
//	}
//
// A custom rendering backend plugs in through the source.Document
// interface:
//
//	s, err := regionmark.FromSource(myBackend)
package regionmark

import (
	"github.com/mwhitfield/regionmark/pdfsource"
	"github.com/mwhitfield/regionmark/source"
)

// Open opens a PDF file, resolves every marker region in it, and
// returns the session holding the result. The session owns the
// underlying document and must be closed when done.
func Open(path string) (*Session, error) {
	doc, err := pdfsource.Open(path)
	if err != nil {
		return nil, err
	}
	s, err := newSession(doc, true, path)
	if err != nil {
		doc.Close()
		return nil, err
	}
	return s, nil
}

// FromSource builds a session over an already-open document backend
// and resolves its regions. The caller keeps ownership of the backend
// and is responsible for closing it.
func FromSource(doc source.Document) (*Session, error) {
	return newSession(doc, false, "")
}

// Must is a helper that wraps a call to a function returning
// (T, error) and panics if the error is non-nil. It is intended for
// use in scripts or tests where error handling would be cumbersome.
//
// Example:
//
//	s := regionmark.Must(regionmark.Open("resume.pdf"))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
