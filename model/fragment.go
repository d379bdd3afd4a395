package model

import "strings"

// Fragment is one unit of extracted text on a page: a block of text with
// its bounding rectangle, as reported by the document backend. Fragments
// are immutable and ordered by extraction order within a page.
type Fragment struct {
	PageIndex int    // 0-based page index
	Rect      Rect   // bounding rectangle in document points
	Text      string // raw extracted text; may contain marker tokens
}

// IsBlank reports whether the fragment's text is empty or whitespace-only.
// Backends discard blank fragments before handing the stream to the
// resolver.
func (f Fragment) IsBlank() bool {
	return strings.TrimSpace(f.Text) == ""
}
