package glyph

import (
	"time"

	"github.com/lixenwraith/magnifier/vmath"
)

// Unit is one visible character position of the heading
type Unit struct {
	Index   int
	Char    string // one grapheme cluster, " " for space placeholders
	IsSpace bool
	Word    int // owning word index, for spaces the word before the gap

	// Cell is the screen area of the glyph, zero-width when not rendered
	Cell vmath.Area

	// Reveal is the fade-in offset from the first segmentation, zero after re-segmentation
	Reveal time.Duration

	// Generation ties the unit to the segmentation pass that created it
	Generation uint64

	width       int
	highlighted bool
}

// Highlighted reports whether the unit currently carries the highlight
func (u *Unit) Highlighted() bool {
	return u.highlighted
}

// Highlightable reports whether the unit can carry the highlight
func (u *Unit) Highlightable() bool {
	return !u.IsSpace
}

// Rendered reports whether the unit occupies screen cells
func (u *Unit) Rendered() bool {
	return !u.Cell.Empty()
}
