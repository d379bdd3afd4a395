package marker

import (
	"github.com/mwhitfield/regionmark/model"
)

// Boundary distinguishes the two token forms.
type Boundary int

const (
	// Begin opens a marked region
	Begin Boundary = iota
	// End closes a marked region
	End
)

// String returns the keyword used in the wire syntax
func (b Boundary) String() string {
	if b == Begin {
		return "BEGIN"
	}
	return "END"
}

// Marker is one recognized BEGIN or END token found inside a piece of
// text. Start and Stop are the byte offsets of the token substring
// (including brackets) within the scanned string.
type Marker struct {
	Boundary Boundary
	Kind     model.Kind
	Ordinal  int
	Start    int
	Stop     int
}

// ID returns the "kind:ordinal" identifier of the region this token
// belongs to. A BEGIN and END with equal IDs form one pair.
func (m Marker) ID() string {
	return model.RegionID(m.Kind, m.Ordinal)
}
