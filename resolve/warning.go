package resolve

import (
	"fmt"
	"strings"
)

// WarningCode classifies a non-fatal anomaly found during resolution.
type WarningCode int

const (
	// WarnDuplicateBegin reports a BEGIN token for a (kind, ordinal)
	// pair that is already open or already resolved. The first opening
	// wins; the duplicate is ignored.
	WarnDuplicateBegin WarningCode = iota
	// WarnUnterminatedBegin reports a BEGIN token whose END never
	// appeared before the end of its page. No region is produced.
	WarnUnterminatedBegin
	// WarnNoRegions reports that a document contained no marker pairs
	// at all; the result set is empty but valid.
	WarnNoRegions
)

// String returns a short name for the warning code
func (c WarningCode) String() string {
	switch c {
	case WarnDuplicateBegin:
		return "duplicate-begin"
	case WarnUnterminatedBegin:
		return "unterminated-begin"
	case WarnNoRegions:
		return "no-regions"
	default:
		return "unknown"
	}
}

// Warning describes a non-fatal anomaly encountered while resolving
// regions. Warnings never stop processing; callers decide whether to
// log or surface them.
type Warning struct {
	Code      WarningCode
	PageIndex int    // page on which the anomaly occurred (-1 if document-wide)
	RegionID  string // "kind:ordinal" the anomaly concerns, if any
	Message   string
}

// String formats the warning for log output
func (w Warning) String() string {
	var b strings.Builder
	b.WriteString(w.Code.String())
	if w.PageIndex >= 0 {
		fmt.Fprintf(&b, " page=%d", w.PageIndex)
	}
	if w.RegionID != "" {
		fmt.Fprintf(&b, " region=%s", w.RegionID)
	}
	if w.Message != "" {
		b.WriteString(": ")
		b.WriteString(w.Message)
	}
	return b.String()
}

// FormatWarnings renders a warning list as one line per warning,
// suitable for log output.
func FormatWarnings(warnings []Warning) string {
	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = w.String()
	}
	return strings.Join(lines, "\n")
}
