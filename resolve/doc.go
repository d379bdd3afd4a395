// Package resolve pairs BEGIN/END marker tokens across a page's
// fragment stream and produces resolved regions.
//
// The resolver makes a single forward pass over each page. It keeps an
// explicit table of open regions: a BEGIN opens an accumulator seeded
// with its fragment's rectangle and text; every subsequent fragment is
// absorbed into all open accumulators; the matching END closes the
// accumulator into a [model.Region] whose rectangle is the union of
// everything absorbed and whose text is the absorbed text with marker
// tokens stripped.
//
// A pair that opens and closes inside one fragment takes a fast path
// and resolves to exactly that fragment's rectangle without touching
// the open table. Regions never span pages: accumulators still open
// when a page ends are dropped with a warning.
//
// Anomalies that do not abort processing (duplicate BEGIN, unterminated
// BEGIN) are reported as [Warning] values rather than errors, so a
// partially mismarked document still yields every well-formed region.
package resolve
