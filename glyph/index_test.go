package glyph

import (
	"strings"
	"testing"

	"github.com/lixenwraith/magnifier/content"
	"github.com/lixenwraith/magnifier/parameter"
	"github.com/lixenwraith/magnifier/vmath"
)

func heading(words ...string) content.Heading {
	h := content.Heading{}
	for _, w := range words {
		h.Words = append(h.Words, content.Word{Text: w})
	}
	return h
}

func chars(units []*Unit) string {
	var sb strings.Builder
	for _, u := range units {
		sb.WriteString(u.Char)
	}
	return sb.String()
}

var screen = vmath.Area{X: 0, Y: 0, Width: 80, Height: 24}

func TestSegmentPreservesText(t *testing.T) {
	idx := NewIndex(NewSurface(), Options{})
	units := idx.Segment(heading("GO", "fast"), screen)

	if got := chars(units); got != "GO fast" {
		t.Errorf("Expected concatenation %q, got %q", "GO fast", got)
	}
	for i, u := range units {
		if u.Index != i {
			t.Errorf("Unit %d has index %d", i, u.Index)
		}
	}
	if !units[2].IsSpace || units[2].Highlightable() {
		t.Error("Expected non-highlightable space placeholder between words")
	}
	if units[2].Word != 0 || units[3].Word != 1 {
		t.Errorf("Unexpected word ownership: space=%d f=%d", units[2].Word, units[3].Word)
	}
}

func TestSegmentGraphemeClusters(t *testing.T) {
	idx := NewIndex(NewSurface(), Options{})
	// e + combining acute, and a wide CJK glyph
	units := idx.Segment(heading("é漢"), screen)

	if len(units) != 2 {
		t.Fatalf("Expected 2 clusters, got %d", len(units))
	}
	if units[0].Char != "é" {
		t.Errorf("Expected combined cluster, got %q", units[0].Char)
	}
	if units[0].Cell.Width != 1 || units[1].Cell.Width != 2 {
		t.Errorf("Expected widths 1 and 2, got %d and %d", units[0].Cell.Width, units[1].Cell.Width)
	}
	if units[1].Cell.X != units[0].Cell.X+1 {
		t.Error("Expected wide glyph to follow its neighbour")
	}
}

func TestResegmentIsIdempotent(t *testing.T) {
	surface := NewSurface()
	idx := NewIndex(surface, Options{})
	first := idx.Segment(heading("GO"), screen)
	elems := surface.Len()

	second := idx.Resegment(screen)
	third := idx.Resegment(screen)

	if chars(second) != "GO" || chars(third) != "GO" {
		t.Errorf("Expected text preserved, got %q / %q", chars(second), chars(third))
	}
	if surface.Len() != elems {
		t.Errorf("Expected %d elements after rebuild, got %d", elems, surface.Len())
	}
	if idx.Valid(first[0]) {
		t.Error("Expected first-generation unit to be invalid")
	}
	if !idx.Valid(third[0]) {
		t.Error("Expected current unit to be valid")
	}
	if first[0] == third[0] {
		t.Error("Expected fresh units after resegment")
	}
}

func TestLayoutCentresText(t *testing.T) {
	idx := NewIndex(NewSurface(), Options{MinHeight: 9})
	units := idx.Segment(heading("GO"), screen)

	c := idx.Container()
	if c.Width != screen.Width {
		t.Errorf("Expected full-width container, got %d", c.Width)
	}
	if c.Height != 9 {
		t.Errorf("Expected min height 9, got %d", c.Height)
	}
	if units[0].Cell.X != 39 || units[1].Cell.X != 40 {
		t.Errorf("Expected glyphs centred at 39,40, got %d,%d", units[0].Cell.X, units[1].Cell.X)
	}
	if units[0].Cell.Y != c.Y+c.Height/2 {
		t.Errorf("Expected text on the container middle row, got %d", units[0].Cell.Y)
	}
}

func TestLayoutWrapsWords(t *testing.T) {
	narrow := vmath.Area{Width: 12 + 2*parameter.HeadingMarginX, Height: 20}
	idx := NewIndex(NewSurface(), Options{LineGap: 1})
	units := idx.Segment(heading("ALPHA", "BETA", "GAMMA"), narrow)

	// ALPHA BETA fits in 12, GAMMA wraps
	var gammaY, alphaY int
	var gapBeforeGamma *Unit
	for _, u := range units {
		switch {
		case u.Word == 0 && !u.IsSpace:
			alphaY = u.Cell.Y
		case u.Word == 2:
			gammaY = u.Cell.Y
		case u.IsSpace && u.Word == 1:
			gapBeforeGamma = u
		}
	}
	if gammaY != alphaY+2 {
		t.Errorf("Expected GAMMA two rows below ALPHA, got %d vs %d", gammaY, alphaY)
	}
	if gapBeforeGamma == nil || gapBeforeGamma.Rendered() {
		t.Error("Expected the gap at the wrap to stay unrendered")
	}
}

func TestLayoutHardWrapsLongWord(t *testing.T) {
	narrow := vmath.Area{Width: 3 + 2*parameter.HeadingMarginX, Height: 10}
	idx := NewIndex(NewSurface(), Options{})
	units := idx.Segment(heading("ABCDEFG"), narrow)

	rows := map[int]int{}
	for _, u := range units {
		rows[u.Cell.Y]++
	}
	if len(rows) != 3 {
		t.Errorf("Expected 3 rows for 7 glyphs in width 3, got %d", len(rows))
	}
}

func TestPaddingTiers(t *testing.T) {
	tests := []struct {
		width    int
		expected int
	}{
		{60, parameter.PaddingNarrow},
		{100, parameter.PaddingMedium},
		{200, parameter.PaddingWide},
	}
	for _, tt := range tests {
		idx := NewIndex(NewSurface(), Options{})
		idx.Segment(heading("GO"), vmath.Area{Width: tt.width, Height: 50})
		if got := idx.Container().Height; got != 1+2*tt.expected {
			t.Errorf("Width %d: expected container height %d, got %d", tt.width, 1+2*tt.expected, got)
		}
	}
}

func TestSetHighlightedRejectsStaleAndSpace(t *testing.T) {
	idx := NewIndex(NewSurface(), Options{})
	old := idx.Segment(heading("A", "B"), screen)
	idx.Resegment(screen)

	if idx.SetHighlighted(old[0], true) {
		t.Error("Expected stale unit rejected")
	}
	cur := idx.Units()
	if idx.SetHighlighted(cur[1], true) {
		t.Error("Expected space unit rejected")
	}
	if !idx.SetHighlighted(cur[0], true) {
		t.Fatal("Expected current glyph accepted")
	}
	if len(idx.Highlighted()) != 1 {
		t.Errorf("Expected one highlighted unit, got %d", len(idx.Highlighted()))
	}

	idx.Resegment(screen)
	if len(idx.Highlighted()) != 0 {
		t.Error("Expected resegment to drop highlight")
	}
}

func TestRevealOnlyOnFirstSegmentation(t *testing.T) {
	idx := NewIndex(NewSurface(), Options{})
	units := idx.Segment(heading("AB", "C"), screen)

	if units[0].Reveal != parameter.RevealDelay {
		t.Errorf("Expected first reveal %v, got %v", parameter.RevealDelay, units[0].Reveal)
	}
	if units[3].Reveal != parameter.RevealDelay+2*parameter.RevealStagger {
		t.Errorf("Expected spaces skipped in stagger, got %v", units[3].Reveal)
	}

	again := idx.Resegment(screen)
	for _, u := range again {
		if u.Reveal != 0 {
			t.Fatalf("Expected no reveal after resegment, got %v", u.Reveal)
		}
	}
}

func TestTouchRevealStagger(t *testing.T) {
	idx := NewIndex(NewSurface(), Options{Touch: true})
	units := idx.Segment(heading("AB"), screen)
	if units[1].Reveal != parameter.RevealDelay+parameter.RevealStaggerTouch {
		t.Errorf("Expected touch stagger, got %v", units[1].Reveal)
	}
}
