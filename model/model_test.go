package model

import (
	"math"
	"testing"
)

// ============================================================================
// Rect Tests
// ============================================================================

func TestNewRect(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 float64
		want           Rect
	}{
		{"already normalized", 10, 20, 110, 70, Rect{10, 20, 110, 70}},
		{"swapped corners", 110, 70, 10, 20, Rect{10, 20, 110, 70}},
		{"degenerate", 5, 5, 5, 5, Rect{5, 5, 5, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewRect(tt.x0, tt.y0, tt.x1, tt.y1)
			if got != tt.want {
				t.Errorf("NewRect() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRectDimensions(t *testing.T) {
	r := Rect{10, 20, 110, 70}

	if r.Width() != 100 {
		t.Errorf("Width() = %v, want 100", r.Width())
	}
	if r.Height() != 50 {
		t.Errorf("Height() = %v, want 50", r.Height())
	}
	if r.Area() != 5000 {
		t.Errorf("Area() = %v, want 5000", r.Area())
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{0, 0, 100, 100}

	tests := []struct {
		name  string
		point Point
		want  bool
	}{
		{"inside", Point{50, 50}, true},
		{"on left edge", Point{0, 50}, true},
		{"on bottom-right corner", Point{100, 100}, true},
		{"outside left", Point{-1, 50}, false},
		{"outside below", Point{50, 101}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.point); got != tt.want {
				t.Errorf("Contains(%+v) = %v, want %v", tt.point, got, tt.want)
			}
		})
	}
}

func TestRectUnion(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want Rect
	}{
		{"stacked", Rect{0, 0, 10, 10}, Rect{0, 10, 10, 20}, Rect{0, 0, 10, 20}},
		{"disjoint", Rect{0, 0, 10, 10}, Rect{20, 20, 30, 30}, Rect{0, 0, 30, 30}},
		{"contained", Rect{0, 0, 100, 100}, Rect{10, 10, 20, 20}, Rect{0, 0, 100, 100}},
		{"overlapping", Rect{0, 0, 15, 15}, Rect{10, 10, 30, 30}, Rect{0, 0, 30, 30}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Union(tt.b)
			if got != tt.want {
				t.Errorf("Union() = %+v, want %+v", got, tt.want)
			}
			if !got.ContainsRect(tt.a) || !got.ContainsRect(tt.b) {
				t.Errorf("Union() = %+v does not contain both inputs", got)
			}
		})
	}
}

func TestRectIntersects(t *testing.T) {
	a := Rect{0, 0, 10, 10}

	if !a.Intersects(Rect{5, 5, 15, 15}) {
		t.Error("expected overlapping rects to intersect")
	}
	if !a.Intersects(Rect{10, 0, 20, 10}) {
		t.Error("expected edge-touching rects to intersect")
	}
	if a.Intersects(Rect{11, 0, 20, 10}) {
		t.Error("expected disjoint rects not to intersect")
	}
}

func TestRectScaled(t *testing.T) {
	r := Rect{10, 20, 30, 40}
	got := r.Scaled(1.5)
	want := Rect{15, 30, 45, 60}

	if math.Abs(got.X0-want.X0) > 1e-9 || math.Abs(got.Y0-want.Y0) > 1e-9 ||
		math.Abs(got.X1-want.X1) > 1e-9 || math.Abs(got.Y1-want.Y1) > 1e-9 {
		t.Errorf("Scaled(1.5) = %+v, want %+v", got, want)
	}
}

func TestRectIsEmpty(t *testing.T) {
	if (Rect{0, 0, 10, 10}).IsEmpty() {
		t.Error("non-degenerate rect reported empty")
	}
	if !(Rect{5, 5, 5, 10}).IsEmpty() {
		t.Error("zero-width rect not reported empty")
	}
}

// ============================================================================
// Fragment Tests
// ============================================================================

func TestFragmentIsBlank(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"empty", "", true},
		{"whitespace only", " \n\t ", true},
		{"has content", " hello ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Fragment{Text: tt.text}
			if got := f.IsBlank(); got != tt.want {
				t.Errorf("IsBlank() = %v, want %v", got, tt.want)
			}
		})
	}
}

// ============================================================================
// Region Tests
// ============================================================================

func TestKindValid(t *testing.T) {
	for _, k := range []Kind{KindExperience, KindProject, KindSkill} {
		if !k.Valid() {
			t.Errorf("Kind(%q).Valid() = false, want true", k)
		}
	}
	if Kind("edu").Valid() {
		t.Error(`Kind("edu").Valid() = true, want false`)
	}
}

func TestRegionID(t *testing.T) {
	r := Region{Kind: KindProject, Ordinal: 2}
	if r.ID() != "pr:2" {
		t.Errorf("ID() = %q, want %q", r.ID(), "pr:2")
	}
	if RegionID(KindSkill, 3) != "sk:3" {
		t.Errorf(`RegionID(sk, 3) = %q, want "sk:3"`, RegionID(KindSkill, 3))
	}
}
