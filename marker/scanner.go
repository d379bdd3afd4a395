package marker

import (
	"strconv"
	"strings"

	"github.com/mwhitfield/regionmark/model"
)

// Scan finds every well-formed marker token in s, in order of
// appearance. Text between and around tokens is ignored; a malformed
// candidate (for example "[BEGIN exp:-1]" or "[BEGIN edu:2]") produces
// no token and scanning resumes after the opening bracket.
func Scan(s string) []Marker {
	var markers []Marker
	for i := 0; i < len(s); i++ {
		if s[i] != '[' {
			continue
		}
		m, ok := scanToken(s, i)
		if !ok {
			continue
		}
		markers = append(markers, m)
		i = m.Stop - 1
	}
	return markers
}

// scanToken attempts to read one token starting at the '[' at offset
// start. It returns false if the grammar does not match exactly.
func scanToken(s string, start int) (Marker, bool) {
	i := start + 1

	var boundary Boundary
	switch {
	case strings.HasPrefix(s[i:], "BEGIN"):
		boundary = Begin
		i += len("BEGIN")
	case strings.HasPrefix(s[i:], "END"):
		boundary = End
		i += len("END")
	default:
		return Marker{}, false
	}

	// Keyword and kind are separated by at least one whitespace byte.
	j := i
	for j < len(s) && isSpace(s[j]) {
		j++
	}
	if j == i {
		return Marker{}, false
	}
	i = j

	var kind model.Kind
	for _, k := range []model.Kind{model.KindExperience, model.KindProject, model.KindSkill} {
		if strings.HasPrefix(s[i:], string(k)) {
			kind = k
			i += len(k)
			break
		}
	}
	if kind == "" {
		return Marker{}, false
	}

	if i >= len(s) || s[i] != ':' {
		return Marker{}, false
	}
	i++

	j = i
	for j < len(s) && s[j] >= '0' && s[j] <= '9' {
		j++
	}
	if j == i {
		return Marker{}, false
	}
	ordinal, err := strconv.Atoi(s[i:j])
	if err != nil {
		return Marker{}, false
	}
	i = j

	if i >= len(s) || s[i] != ']' {
		return Marker{}, false
	}

	return Marker{
		Boundary: boundary,
		Kind:     kind,
		Ordinal:  ordinal,
		Start:    start,
		Stop:     i + 1,
	}, true
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}
