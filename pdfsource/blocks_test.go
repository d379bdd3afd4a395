package pdfsource

import (
	"strings"
	"testing"

	"github.com/ledongthuc/pdf"

	"github.com/mwhitfield/regionmark/model"
)

func run(x, y, w float64, s string) pdf.Text {
	return pdf.Text{Font: "Helvetica", FontSize: 10, X: x, Y: y, W: w, S: s}
}

func TestGroupLinesJoinsRuns(t *testing.T) {
	// Two runs on one baseline separated by a word gap, one run on the
	// line below.
	runs := []pdf.Text{
		run(10, 700, 30, "hello"),
		run(45, 700, 30, "world"),
		run(10, 686, 20, "next"),
	}

	lines := groupLines(runs)
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0].text != "hello world" {
		t.Errorf("line 0 = %q, want %q", lines[0].text, "hello world")
	}
	if lines[1].text != "next" {
		t.Errorf("line 1 = %q, want %q", lines[1].text, "next")
	}
	if lines[0].baseline < lines[1].baseline {
		t.Error("lines not ordered top of page first")
	}
}

func TestGroupLinesKerningGapNotASpace(t *testing.T) {
	// Adjacent runs with a sub-threshold gap must join without a space
	// so marker tokens split across runs survive.
	runs := []pdf.Text{
		run(10, 700, 40, "[BEGIN e"),
		run(50.5, 700, 30, "xp:1]"),
	}

	lines := groupLines(runs)
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	if lines[0].text != "[BEGIN exp:1]" {
		t.Errorf("line = %q, want %q", lines[0].text, "[BEGIN exp:1]")
	}
}

func TestGroupFragmentsBlockSplit(t *testing.T) {
	// Three tightly-spaced lines, then a wide gap, then one more line:
	// two blocks.
	runs := []pdf.Text{
		run(10, 700, 50, "block one line one"),
		run(10, 686, 50, "block one line two"),
		run(10, 672, 50, "block one line three"),
		run(10, 600, 50, "block two"),
	}

	fragments := groupFragments(0, runs, 792)
	if len(fragments) != 2 {
		t.Fatalf("got %d fragments, want 2", len(fragments))
	}

	if !strings.Contains(fragments[0].Text, "line one") ||
		!strings.Contains(fragments[0].Text, "line three") {
		t.Errorf("fragment 0 text = %q, want all three lines", fragments[0].Text)
	}
	if fragments[1].Text != "block two" {
		t.Errorf("fragment 1 text = %q, want %q", fragments[1].Text, "block two")
	}

	// Top-left origin: the first (higher on page) block must have the
	// smaller Y0, and both must lie inside the page.
	if fragments[0].Rect.Y0 >= fragments[1].Rect.Y0 {
		t.Errorf("fragment order not top-down: %+v then %+v", fragments[0].Rect, fragments[1].Rect)
	}
	page := model.Rect{X0: 0, Y0: 0, X1: 612, Y1: 792}
	for i, f := range fragments {
		if !page.ContainsRect(f.Rect) {
			t.Errorf("fragment %d rect %+v outside page", i, f.Rect)
		}
	}
}

func TestGroupFragmentsEmpty(t *testing.T) {
	if got := groupFragments(0, nil, 792); got != nil {
		t.Errorf("groupFragments(nil) = %v, want nil", got)
	}
	// Whitespace-only runs are discarded.
	runs := []pdf.Text{run(10, 700, 5, "   ")}
	if got := groupFragments(0, runs, 792); len(got) != 0 {
		t.Errorf("whitespace-only page produced %d fragments, want 0", len(got))
	}
}

func TestFlipRect(t *testing.T) {
	// A rect near the top of a 792pt page in bottom-left space lands
	// near y=0 in top-left space.
	r := flipRect(model.Rect{X0: 72, Y0: 700, X1: 300, Y1: 720}, 792)
	want := model.Rect{X0: 72, Y0: 72, X1: 300, Y1: 92}
	if r != want {
		t.Errorf("flipRect() = %+v, want %+v", r, want)
	}
}
