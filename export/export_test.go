package export

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mwhitfield/regionmark/model"
)

func sampleRegions() map[string]model.Region {
	return map[string]model.Region{
		"exp:1": {
			Kind: model.KindExperience, Ordinal: 1, PageIndex: 0,
			Rect: model.Rect{X0: 72.0, Y0: 140.3, X1: 520.1, Y1: 210.9},
			Text: "Acme Corp",
		},
		"sk:3": {
			Kind: model.KindSkill, Ordinal: 3, PageIndex: 0,
			Rect: model.Rect{X0: 72.0, Y0: 600.0, X1: 540.0, Y1: 618.4},
			Text: "Go, SQL",
		},
	}
}

func TestMarshalShape(t *testing.T) {
	data, err := Marshal(sampleRegions())
	if err != nil {
		t.Fatalf("Marshal(): %v", err)
	}

	var raw map[string]map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	entry, ok := raw["exp:1"]
	if !ok {
		t.Fatalf(`key "exp:1" missing; keys = %v`, raw)
	}
	if entry["type"] != "exp" {
		t.Errorf(`type = %v, want "exp"`, entry["type"])
	}
	if entry["ordinal"] != float64(1) {
		t.Errorf("ordinal = %v, want 1", entry["ordinal"])
	}
	if entry["page"] != float64(0) {
		t.Errorf("page = %v, want 0", entry["page"])
	}
	rect, ok := entry["rect"].([]any)
	if !ok || len(rect) != 4 {
		t.Fatalf("rect = %v, want a 4-element array", entry["rect"])
	}

	// Text is intentionally not part of the export format.
	if strings.Contains(string(data), "Acme Corp") {
		t.Error("export leaked region text")
	}
}

func TestRoundTripExact(t *testing.T) {
	want := sampleRegions()

	data, err := Marshal(want)
	if err != nil {
		t.Fatalf("Marshal(): %v", err)
	}
	got, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal(): %v", err)
	}

	if len(got) != len(want) {
		t.Fatalf("round trip produced %d regions, want %d", len(got), len(want))
	}
	for id, w := range want {
		g, ok := got[id]
		if !ok {
			t.Errorf("region %s missing after round trip", id)
			continue
		}
		// Numeric fields must survive bit-for-bit.
		if g.Kind != w.Kind || g.Ordinal != w.Ordinal || g.PageIndex != w.PageIndex || g.Rect != w.Rect {
			t.Errorf("region %s = %+v, want %+v", id, g, w)
		}
	}
}

func TestWriteAndReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.regions.json")

	if err := WriteFile(path, sampleRegions()); err != nil {
		t.Fatalf("WriteFile(): %v", err)
	}
	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile(): %v", err)
	}
	if len(got) != 2 {
		t.Errorf("read %d regions, want 2", len(got))
	}
}

func TestWriteFileBadPath(t *testing.T) {
	err := WriteFile(filepath.Join(t.TempDir(), "missing", "out.json"), sampleRegions())
	if err == nil {
		t.Fatal("WriteFile into a missing directory returned nil error")
	}
}

func TestUnmarshalRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", "{"},
		{"unknown kind", `{"edu:1": {"type": "edu", "ordinal": 1, "page": 0, "rect": [0,0,1,1]}}`},
		{"mismatched key", `{"exp:2": {"type": "exp", "ordinal": 3, "page": 0, "rect": [0,0,1,1]}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Unmarshal([]byte(tt.data)); err == nil {
				t.Errorf("Unmarshal(%q) returned nil error", tt.data)
			}
		})
	}
}

func TestSortedIDs(t *testing.T) {
	regions := map[string]model.Region{
		"sk:1":  {Kind: model.KindSkill, Ordinal: 1},
		"exp:2": {Kind: model.KindExperience, Ordinal: 2},
		"exp:1": {Kind: model.KindExperience, Ordinal: 1},
		"pr:10": {Kind: model.KindProject, Ordinal: 10},
		"pr:9":  {Kind: model.KindProject, Ordinal: 9},
	}

	want := []string{"exp:1", "exp:2", "pr:9", "pr:10", "sk:1"}
	got := SortedIDs(regions)
	if len(got) != len(want) {
		t.Fatalf("SortedIDs() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("SortedIDs()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
