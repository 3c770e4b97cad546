package glyph

import (
	"sort"

	"github.com/lixenwraith/magnifier/vmath"
)

// Kind classifies surface elements
type Kind uint8

const (
	KindHeading Kind = iota
	KindWord
	KindGlyph
	KindSpace
	KindLens
)

// String returns the kind name
func (k Kind) String() string {
	switch k {
	case KindHeading:
		return "heading"
	case KindWord:
		return "word"
	case KindGlyph:
		return "glyph"
	case KindSpace:
		return "space"
	case KindLens:
		return "lens"
	default:
		return "unknown"
	}
}

// Z-order of surface layers, higher draws and resolves on top
const (
	ZHeading = 0
	ZWord    = 10
	ZGlyph   = 20
	ZLens    = 100
)

// Element is one rendered box on the surface
type Element struct {
	Kind   Kind
	Area   vmath.Area
	Z      int
	Parent *Element
	Unit   *Unit // set for glyph and space elements
}

// Closest walks from e outward through its ancestors and returns the first element matching fn
func (e *Element) Closest(fn func(*Element) bool) *Element {
	for n := e; n != nil; n = n.Parent {
		if fn(n) {
			return n
		}
	}
	return nil
}

// IsHighlightable matches glyph elements whose unit can carry the highlight
func IsHighlightable(e *Element) bool {
	return e.Kind == KindGlyph && e.Unit != nil && e.Unit.Highlightable()
}

// IsLens matches the lens overlay and anything parented to it
func IsLens(e *Element) bool {
	return e.Closest(func(n *Element) bool { return n.Kind == KindLens }) != nil
}

// Surface is the z-ordered element stack that point resolution runs against
type Surface struct {
	elements []*Element
	seq      map[*Element]int
	nextSeq  int
}

// NewSurface creates an empty surface
func NewSurface() *Surface {
	return &Surface{seq: make(map[*Element]int)}
}

// Add inserts elements; among equal Z, later additions sit on top
func (s *Surface) Add(elems ...*Element) {
	for _, e := range elems {
		if _, ok := s.seq[e]; ok {
			continue
		}
		s.nextSeq++
		s.seq[e] = s.nextSeq
		s.elements = append(s.elements, e)
	}
	sort.SliceStable(s.elements, func(i, j int) bool {
		a, b := s.elements[i], s.elements[j]
		if a.Z != b.Z {
			return a.Z < b.Z
		}
		return s.seq[a] < s.seq[b]
	})
}

// Remove drops elements from the surface
func (s *Surface) Remove(elems ...*Element) {
	if len(elems) == 0 {
		return
	}
	drop := make(map[*Element]bool, len(elems))
	for _, e := range elems {
		drop[e] = true
		delete(s.seq, e)
	}
	kept := s.elements[:0]
	for _, e := range s.elements {
		if !drop[e] {
			kept = append(kept, e)
		}
	}
	for i := len(kept); i < len(s.elements); i++ {
		s.elements[i] = nil
	}
	s.elements = kept
}

// Len returns the number of elements
func (s *Surface) Len() int {
	return len(s.elements)
}

// ElementFromPoint returns the topmost element covering cell (x, y)
// Elements for which skip returns true are looked through
func (s *Surface) ElementFromPoint(x, y int, skip func(*Element) bool) *Element {
	for i := len(s.elements) - 1; i >= 0; i-- {
		e := s.elements[i]
		if !e.Area.Contains(x, y) {
			continue
		}
		if skip != nil && skip(e) {
			continue
		}
		return e
	}
	return nil
}
