// Package export serializes resolved regions to and from the portable
// JSON mapping consumed by downstream tooling.
//
// The file format is a single JSON object keyed by region id:
//
//	{
//	  "exp:1": { "type": "exp", "ordinal": 1, "page": 0, "rect": [72.0, 140.3, 520.1, 210.9] }
//	}
//
// rect is [x0, y0, x1, y1] in document points under the module's
// top-left origin convention. Export is a pure data transform; no
// geometry is recomputed, and numeric values round-trip exactly.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/mwhitfield/regionmark/model"
)

// Entry is the JSON shape of one region
type Entry struct {
	Type    model.Kind `json:"type"`
	Ordinal int        `json:"ordinal"`
	Page    int        `json:"page"`
	Rect    [4]float64 `json:"rect"`
}

// Marshal serializes a region set to the JSON mapping
func Marshal(regions map[string]model.Region) ([]byte, error) {
	out := make(map[string]Entry, len(regions))
	for id, r := range regions {
		out[id] = Entry{
			Type:    r.Kind,
			Ordinal: r.Ordinal,
			Page:    r.PageIndex,
			Rect:    [4]float64{r.Rect.X0, r.Rect.Y0, r.Rect.X1, r.Rect.Y1},
		}
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling regions: %w", err)
	}
	return data, nil
}

// WriteFile serializes a region set and writes it to path. A failed
// write is returned as an error; no partial file is left in place on
// marshal failure.
func WriteFile(path string, regions map[string]model.Region) error {
	data, err := Marshal(regions)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Unmarshal parses the JSON mapping back into regions. Exported files
// do not carry region text, so Text is empty on loaded regions.
func Unmarshal(data []byte) (map[string]model.Region, error) {
	var raw map[string]Entry
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing regions: %w", err)
	}

	regions := make(map[string]model.Region, len(raw))
	for id, e := range raw {
		if !e.Type.Valid() {
			return nil, fmt.Errorf("region %s: unknown type %q", id, e.Type)
		}
		if want := model.RegionID(e.Type, e.Ordinal); id != want {
			return nil, fmt.Errorf("region key %q does not match %q", id, want)
		}
		regions[id] = model.Region{
			Kind:      e.Type,
			Ordinal:   e.Ordinal,
			PageIndex: e.Page,
			Rect:      model.Rect{X0: e.Rect[0], Y0: e.Rect[1], X1: e.Rect[2], Y1: e.Rect[3]},
		}
	}
	return regions, nil
}

// ReadFile loads a region mapping from a JSON file
func ReadFile(path string) (map[string]model.Region, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return Unmarshal(data)
}

// SortedIDs returns the region ids ordered by kind then ordinal, the
// order used for stable report output.
func SortedIDs(regions map[string]model.Region) []string {
	ids := make([]string, 0, len(regions))
	for id := range regions {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, b := regions[ids[i]], regions[ids[j]]
		if a.Kind != b.Kind {
			return a.Kind < b.Kind
		}
		return a.Ordinal < b.Ordinal
	})
	return ids
}
