package model

import "fmt"

// Kind identifies what a marked region represents. The wire syntax uses
// three-letter codes embedded in the document text.
type Kind string

const (
	KindExperience Kind = "exp" // a work-experience entry
	KindProject    Kind = "pr"  // a project entry
	KindSkill      Kind = "sk"  // a skills line or group
)

// Valid reports whether k is one of the recognized kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindExperience, KindProject, KindSkill:
		return true
	}
	return false
}

// RegionID builds the canonical "kind:ordinal" identifier for a region.
func RegionID(kind Kind, ordinal int) string {
	return fmt.Sprintf("%s:%d", kind, ordinal)
}

// Region is the resolved output unit: the geometry and cleaned text of
// one BEGIN/END marker pair. Regions are immutable once created.
type Region struct {
	Kind      Kind
	Ordinal   int
	PageIndex int
	Rect      Rect   // union of every spanned fragment's rect
	Text      string // spanned text, marker tokens stripped, trimmed
}

// ID returns the region's "kind:ordinal" identifier, unique across the
// document (ordinals are authored to be unique document-wide).
func (r Region) ID() string {
	return RegionID(r.Kind, r.Ordinal)
}
