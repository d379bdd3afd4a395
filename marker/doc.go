// Package marker implements the marker token grammar: recognizing
// BEGIN/END tokens embedded in extracted document text and stripping
// them back out.
//
// The wire syntax is
//
//	[BEGIN <kind>:<ordinal>]   and   [END <kind>:<ordinal>]
//
// where <kind> is one of exp, pr, sk and <ordinal> is a non-negative
// decimal integer. Matching is exact on the brackets and keyword; a
// substring that fails any part of the grammar (unknown kind, missing
// colon, non-numeric ordinal) is not a token and is left as ordinary
// text.
//
// The grammar lives entirely in this package so that the region
// resolver never does its own string matching: [Scan] produces the
// token stream and [Strip] removes tokens from text.
package marker
