package marker

import "strings"

// Strip removes every marker token from s and trims leading and
// trailing whitespace from the result. Non-marker text is preserved
// verbatim, so stripping already-clean text is a no-op apart from the
// outer trim.
func Strip(s string) string {
	markers := Scan(s)
	if len(markers) == 0 {
		return strings.TrimSpace(s)
	}

	var b strings.Builder
	b.Grow(len(s))
	prev := 0
	for _, m := range markers {
		b.WriteString(s[prev:m.Start])
		prev = m.Stop
	}
	b.WriteString(s[prev:])
	return strings.TrimSpace(b.String())
}
