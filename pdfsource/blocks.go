package pdfsource

import (
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
	"golang.org/x/text/unicode/norm"

	"github.com/mwhitfield/regionmark/model"
)

// Grouping thresholds, in multiples of the current font size. Word
// gaps below wordGapFactor are glyph kerning; line gaps above
// blockGapFactor separate paragraphs/blocks rather than lines.
const (
	lineTolerance  = 0.5
	wordGapFactor  = 0.25
	blockGapFactor = 1.8

	// Approximate ascent/descent of a text line relative to its
	// baseline, used to give rows a vertical extent.
	ascentFactor  = 0.8
	descentFactor = 0.2
)

// line is one baseline-grouped run of text in PDF (bottom-left) space
type line struct {
	baseline float64
	fontSize float64
	rect     model.Rect // still bottom-left origin here
	text     string
}

// groupFragments turns a page's raw positioned text runs into block
// fragments: runs are grouped into lines by baseline, lines into
// blocks by vertical gap. pageHeight is used to flip the result into
// the top-left origin convention. Blank blocks are discarded.
func groupFragments(pageIndex int, runs []pdf.Text, pageHeight float64) []model.Fragment {
	lines := groupLines(runs)
	if len(lines) == 0 {
		return nil
	}

	var fragments []model.Fragment
	flush := func(block []line) {
		if len(block) == 0 {
			return
		}
		rect := block[0].rect
		parts := make([]string, 0, len(block))
		for _, ln := range block {
			rect = rect.Union(ln.rect)
			parts = append(parts, ln.text)
		}
		text := strings.TrimSpace(strings.Join(parts, "\n"))
		if text == "" {
			return
		}
		fragments = append(fragments, model.Fragment{
			PageIndex: pageIndex,
			Rect:      flipRect(rect, pageHeight),
			Text:      norm.NFC.String(text),
		})
	}

	var block []line
	for _, ln := range lines {
		if len(block) > 0 {
			prev := block[len(block)-1]
			gap := prev.baseline - ln.baseline
			limit := blockGapFactor * maxFloat(prev.fontSize, ln.fontSize)
			if gap > limit {
				flush(block)
				block = block[:0]
			}
		}
		block = append(block, ln)
	}
	flush(block)

	return fragments
}

// groupLines clusters text runs by baseline (top of page first) and
// joins each cluster's runs left to right, inserting spaces at word
// gaps.
func groupLines(runs []pdf.Text) []line {
	if len(runs) == 0 {
		return nil
	}

	sorted := make([]pdf.Text, len(runs))
	copy(sorted, runs)
	sort.SliceStable(sorted, func(i, j int) bool {
		// Higher Y first (top of page in bottom-left space), then
		// left to right.
		if sorted[i].Y != sorted[j].Y {
			return sorted[i].Y > sorted[j].Y
		}
		return sorted[i].X < sorted[j].X
	})

	var lines []line
	var cur []pdf.Text
	for _, run := range sorted {
		if len(cur) > 0 {
			tol := lineTolerance * maxFloat(cur[0].FontSize, run.FontSize)
			if cur[0].Y-run.Y > tol {
				lines = append(lines, buildLine(cur))
				cur = cur[:0]
			}
		}
		cur = append(cur, run)
	}
	if len(cur) > 0 {
		lines = append(lines, buildLine(cur))
	}

	return lines
}

// buildLine joins one baseline cluster into a line, computing its
// bounding rect in bottom-left space.
func buildLine(runs []pdf.Text) line {
	sort.SliceStable(runs, func(i, j int) bool { return runs[i].X < runs[j].X })

	var b strings.Builder
	fontSize := runs[0].FontSize
	x0, x1 := runs[0].X, runs[0].X+runs[0].W
	baseline := runs[0].Y

	prevEnd := runs[0].X
	for i, run := range runs {
		if run.FontSize > fontSize {
			fontSize = run.FontSize
		}
		if i > 0 {
			gap := run.X - prevEnd
			if gap > wordGapFactor*fontSize && !strings.HasSuffix(b.String(), " ") &&
				!strings.HasPrefix(run.S, " ") {
				b.WriteByte(' ')
			}
		}
		b.WriteString(run.S)
		if run.X < x0 {
			x0 = run.X
		}
		if end := run.X + run.W; end > x1 {
			x1 = end
		}
		prevEnd = run.X + run.W
	}

	return line{
		baseline: baseline,
		fontSize: fontSize,
		rect: model.NewRect(
			x0, baseline-descentFactor*fontSize,
			x1, baseline+ascentFactor*fontSize,
		),
		text: b.String(),
	}
}

// flipRect converts a bottom-left-origin rect to top-left origin
func flipRect(r model.Rect, pageHeight float64) model.Rect {
	return model.NewRect(r.X0, pageHeight-r.Y1, r.X1, pageHeight-r.Y0)
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
