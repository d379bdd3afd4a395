package view

import (
	"github.com/mwhitfield/regionmark/model"
)

// HitTest converts a display-space position back to document space and
// returns the first region on the page containing it, checking regions
// in the order given. The boolean result is false when no region on
// the page contains the point. Marked regions are authored not to
// overlap; when they do, the earlier region wins.
func HitTest(regions []model.Region, pageIndex int, display model.Point, scale float64) (model.Region, bool) {
	if scale <= 0 {
		return model.Region{}, false
	}
	doc := ToDocument(display, scale)
	for _, region := range regions {
		if region.PageIndex != pageIndex {
			continue
		}
		if region.Rect.Contains(doc) {
			return region, true
		}
	}
	return model.Region{}, false
}
