package resolve

import (
	"sort"
	"strings"

	"github.com/mwhitfield/regionmark/marker"
	"github.com/mwhitfield/regionmark/model"
)

// Resolver accumulates resolved regions across the pages of one
// document. Pages must be fed in order via ResolvePage; regions are
// available at any time through Regions and Order.
//
// Region identifiers are unique document-wide: a pair whose id was
// already resolved on an earlier page is reported as a duplicate and
// ignored.
type Resolver struct {
	regions  map[string]model.Region
	order    []string
	warnings []Warning
}

// open tracks an in-progress region between its BEGIN fragment and its
// (not yet seen) END fragment.
type open struct {
	kind    model.Kind
	ordinal int
	rect    model.Rect
	texts   []string
}

// New creates an empty resolver
func New() *Resolver {
	return &Resolver{
		regions: make(map[string]model.Region),
	}
}

// Regions returns the id-to-region map of everything resolved so far.
// The map is the resolver's own; callers must not mutate it.
func (r *Resolver) Regions() map[string]model.Region {
	return r.regions
}

// Order returns region ids in the order their pairs completed
func (r *Resolver) Order() []string {
	return r.order
}

// Warnings returns the anomalies recorded so far
func (r *Resolver) Warnings() []Warning {
	return r.warnings
}

// ResolvePage scans one page's fragment stream, in extraction order,
// and resolves every well-formed BEGIN/END pair on it. Fragments must
// all carry the given page index. Open pairs do not survive past the
// end of the page.
func (r *Resolver) ResolvePage(pageIndex int, fragments []model.Fragment) {
	opens := make(map[string]*open)

	for _, frag := range fragments {
		// Every fragment between a BEGIN and its END belongs to all
		// regions open at that point.
		for _, o := range opens {
			o.rect = o.rect.Union(frag.Rect)
			o.texts = append(o.texts, frag.Text)
		}

		markers := marker.Scan(frag.Text)
		if len(markers) == 0 {
			continue
		}

		begins := make(map[string]marker.Marker)
		ends := make(map[string]marker.Marker)
		for _, m := range markers {
			if m.Boundary == marker.Begin {
				if _, dup := begins[m.ID()]; !dup {
					begins[m.ID()] = m
				} else {
					r.warnDuplicate(pageIndex, m.ID())
				}
			} else {
				ends[m.ID()] = m
			}
		}

		// Fast path: pair opens and closes within this fragment.
		for id, bm := range begins {
			if _, closed := ends[id]; !closed {
				continue
			}
			if _, isOpen := opens[id]; isOpen {
				// The in-fragment BEGIN duplicates an earlier one; let
				// the END below close the open accumulator instead.
				r.warnDuplicate(pageIndex, id)
				delete(begins, id)
				continue
			}
			delete(begins, id)
			delete(ends, id)
			r.addRegion(model.Region{
				Kind:      bm.Kind,
				Ordinal:   bm.Ordinal,
				PageIndex: pageIndex,
				Rect:      frag.Rect,
				Text:      marker.Strip(frag.Text),
			}, pageIndex)
		}

		// Close open pairs. The accumulator already absorbed this
		// fragment above. An END with no open BEGIN is ignored.
		for id, em := range ends {
			o, isOpen := opens[id]
			if !isOpen {
				continue
			}
			delete(opens, id)
			r.addRegion(model.Region{
				Kind:      em.Kind,
				Ordinal:   em.Ordinal,
				PageIndex: pageIndex,
				Rect:      o.rect,
				Text:      marker.Strip(strings.Join(o.texts, "\n")),
			}, pageIndex)
		}

		// Open the remaining BEGINs, seeded with this fragment. A
		// fragment may close one pair and open another; the new pair
		// starts from this fragment's rect, not the closed union.
		for id, bm := range begins {
			if _, isOpen := opens[id]; isOpen {
				r.warnDuplicate(pageIndex, id)
				continue
			}
			if _, done := r.regions[id]; done {
				r.warnDuplicate(pageIndex, id)
				continue
			}
			opens[id] = &open{
				kind:    bm.Kind,
				ordinal: bm.Ordinal,
				rect:    frag.Rect,
				texts:   []string{frag.Text},
			}
		}
	}

	// Anything still open is an unterminated BEGIN: dropped, warned.
	if len(opens) > 0 {
		ids := make([]string, 0, len(opens))
		for id := range opens {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		for _, id := range ids {
			r.warnings = append(r.warnings, Warning{
				Code:      WarnUnterminatedBegin,
				PageIndex: pageIndex,
				RegionID:  id,
				Message:   "BEGIN has no matching END before end of page",
			})
		}
	}
}

func (r *Resolver) addRegion(region model.Region, pageIndex int) {
	id := region.ID()
	if _, exists := r.regions[id]; exists {
		r.warnDuplicate(pageIndex, id)
		return
	}
	r.regions[id] = region
	r.order = append(r.order, id)
}

func (r *Resolver) warnDuplicate(pageIndex int, id string) {
	r.warnings = append(r.warnings, Warning{
		Code:      WarnDuplicateBegin,
		PageIndex: pageIndex,
		RegionID:  id,
		Message:   "pair already open or resolved; keeping the first",
	})
}
