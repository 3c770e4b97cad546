package lens

import (
	"github.com/lixenwraith/magnifier/glyph"
	"github.com/lixenwraith/magnifier/vmath"
)

// HitTester maps a container-local position to the glyph rendered under it
type HitTester struct {
	surface *glyph.Surface
	index   *glyph.Index
}

// NewHitTester creates a hit tester resolving against the index's surface elements
func NewHitTester(surface *glyph.Surface, index *glyph.Index) *HitTester {
	return &HitTester{surface: surface, index: index}
}

// Locate returns the highlightable unit at p, or nil
// Lens elements are looked through so the lens never detects itself
func (h *HitTester) Locate(p Position) *glyph.Unit {
	if h == nil || h.surface == nil || h.index == nil {
		return nil
	}

	global := p.Add(h.index.Container().Origin())
	x, y := global.Round()

	e := h.surface.ElementFromPoint(x, y, glyph.IsLens)
	if e == nil {
		return nil
	}
	// Word wrappers and space placeholders resolve to an enclosing glyph, if any
	m := e.Closest(glyph.IsHighlightable)
	if m == nil || !h.index.Valid(m.Unit) {
		return nil
	}
	return m.Unit
}

// ToLocal converts a screen cell to the container-local coordinate of its centre
func ToLocal(container vmath.Area, x, y int) Position {
	return Position{
		X: float64(x-container.X) + 0.5,
		Y: float64(y-container.Y) + 0.5,
	}
}
