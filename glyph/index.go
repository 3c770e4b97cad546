package glyph

import (
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/lixenwraith/magnifier/content"
	"github.com/lixenwraith/magnifier/parameter"
	"github.com/lixenwraith/magnifier/vmath"
)

// Options tune heading layout
type Options struct {
	// MinHeight keeps the container at least this many rows tall so the lens fits
	MinHeight int

	// LineGap is the number of blank rows between wrapped lines
	LineGap int

	// Touch selects the slower reveal stagger
	Touch bool
}

// Index owns the glyph sequence of the heading and its elements on the surface
//
// Segmentation policy: one unit per grapheme cluster, plus one space placeholder
// between consecutive words. Placeholders are never highlightable and are only
// rendered when both neighbours share a row
type Index struct {
	surface *Surface
	opts    Options

	words     []content.Word
	units     []*Unit
	elements  []*Element
	container vmath.Area

	generation uint64
	segmented  bool
}

// NewIndex creates an index that publishes its elements on surface
func NewIndex(surface *Surface, opts Options) *Index {
	return &Index{
		surface: surface,
		opts:    opts,
	}
}

// Segment replaces the heading words and rebuilds the glyph sequence inside bounds
func (x *Index) Segment(h content.Heading, bounds vmath.Area) []*Unit {
	x.words = append([]content.Word(nil), h.Words...)
	return x.Resegment(bounds)
}

// Resegment discards the current sequence and rebuilds it from the literal word text
// Units from earlier passes stop being valid
func (x *Index) Resegment(bounds vmath.Area) []*Unit {
	if x.surface != nil {
		x.surface.Remove(x.elements...)
	}
	for _, u := range x.units {
		u.highlighted = false
	}
	x.elements = nil
	x.generation++

	x.units = segmentWords(x.words, x.generation)
	lines := x.wrap(bounds)
	x.place(lines, bounds)
	x.buildElements(lines)

	if !x.segmented {
		x.assignReveal()
	}
	x.segmented = true

	return x.units
}

// Units returns the current sequence in render order
func (x *Index) Units() []*Unit {
	return x.units
}

// Container returns the heading container area on screen
func (x *Index) Container() vmath.Area {
	return x.container
}

// Generation returns the current segmentation pass number
func (x *Index) Generation() uint64 {
	return x.generation
}

// Valid reports whether u belongs to the current sequence
func (x *Index) Valid(u *Unit) bool {
	return u != nil &&
		u.Generation == x.generation &&
		u.Index >= 0 && u.Index < len(x.units) &&
		x.units[u.Index] == u
}

// SetHighlighted sets the highlight marker on a current unit
// Only the highlight state machine calls this; returns false for stale or space units
func (x *Index) SetHighlighted(u *Unit, on bool) bool {
	if !x.Valid(u) || !u.Highlightable() {
		return false
	}
	u.highlighted = on
	return true
}

// Highlighted returns every unit carrying the highlight
func (x *Index) Highlighted() []*Unit {
	var out []*Unit
	for _, u := range x.units {
		if u.highlighted {
			out = append(out, u)
		}
	}
	return out
}

func segmentWords(words []content.Word, gen uint64) []*Unit {
	var units []*Unit
	for wi, w := range words {
		if wi > 0 {
			units = append(units, &Unit{
				Index:      len(units),
				Char:       " ",
				IsSpace:    true,
				Word:       wi - 1,
				Generation: gen,
				width:      1,
			})
		}
		gr := uniseg.NewGraphemes(w.Text)
		for gr.Next() {
			cluster := gr.Str()
			width := runewidth.StringWidth(cluster)
			if width < 1 {
				width = 1
			}
			units = append(units, &Unit{
				Index:      len(units),
				Char:       cluster,
				Word:       wi,
				Generation: gen,
				width:      width,
			})
		}
	}
	return units
}

// wrap breaks the sequence into rows no wider than the usable width
// Words move whole to the next row when they do not fit; words longer than a row break per glyph
func (x *Index) wrap(bounds vmath.Area) [][]*Unit {
	maxW := bounds.Width - 2*parameter.HeadingMarginX
	if maxW < 1 {
		maxW = 1
	}

	var lines [][]*Unit
	var cur []*Unit
	curW := 0
	flush := func() {
		if len(cur) > 0 {
			lines = append(lines, cur)
		}
		cur, curW = nil, 0
	}

	i := 0
	for i < len(x.units) {
		u := x.units[i]
		if u.IsSpace {
			// Look ahead to the next word to decide whether the gap stays on this row
			j := i + 1
			ww := 0
			for j < len(x.units) && !x.units[j].IsSpace {
				ww += x.units[j].width
				j++
			}
			if len(cur) > 0 && curW+1+ww <= maxW {
				cur = append(cur, u)
				curW++
			} else {
				flush()
			}
			i++
			continue
		}
		if curW+u.width > maxW && len(cur) > 0 {
			flush()
		}
		cur = append(cur, u)
		curW += u.width
		i++
	}
	flush()
	return lines
}

func paddingFor(width int) int {
	switch {
	case width <= parameter.NarrowWidth:
		return parameter.PaddingNarrow
	case width <= parameter.MediumWidth:
		return parameter.PaddingMedium
	default:
		return parameter.PaddingWide
	}
}

// place centres the rows in a full-width container that is itself centred vertically in bounds
func (x *Index) place(lines [][]*Unit, bounds vmath.Area) {
	textH := 0
	if len(lines) > 0 {
		textH = len(lines) + (len(lines)-1)*x.opts.LineGap
	}

	h := textH + 2*paddingFor(bounds.Width)
	if h < x.opts.MinHeight {
		h = x.opts.MinHeight
	}
	if h > bounds.Height {
		h = bounds.Height
	}
	y := bounds.Y + (bounds.Height-h)/2
	x.container = vmath.Area{X: bounds.X, Y: y, Width: bounds.Width, Height: h}

	rowY := y + (h-textH)/2
	for _, line := range lines {
		lw := 0
		for _, u := range line {
			lw += u.width
		}
		cx := bounds.X + (bounds.Width-lw)/2
		for _, u := range line {
			u.Cell = vmath.Area{X: cx, Y: rowY, Width: u.width, Height: 1}
			cx += u.width
		}
		rowY += 1 + x.opts.LineGap
	}
}

// buildElements publishes heading, word fragment, glyph and space elements
func (x *Index) buildElements(lines [][]*Unit) {
	heading := &Element{Kind: KindHeading, Area: x.container, Z: ZHeading}
	x.elements = append(x.elements, heading)

	for _, line := range lines {
		var word *Element
		for _, u := range line {
			if u.IsSpace {
				word = nil
				x.elements = append(x.elements, &Element{
					Kind:   KindSpace,
					Area:   u.Cell,
					Z:      ZGlyph,
					Parent: heading,
					Unit:   u,
				})
				continue
			}
			if word == nil || word.Unit.Word != u.Word {
				// Word fragments keep a reference to their first unit for word identity
				word = &Element{Kind: KindWord, Area: u.Cell, Z: ZWord, Parent: heading, Unit: u}
				x.elements = append(x.elements, word)
			} else {
				word.Area = word.Area.Union(u.Cell)
			}
			x.elements = append(x.elements, &Element{
				Kind:   KindGlyph,
				Area:   u.Cell,
				Z:      ZGlyph,
				Parent: word,
				Unit:   u,
			})
		}
	}

	if x.surface != nil {
		x.surface.Add(x.elements...)
	}
}

func (x *Index) assignReveal() {
	stagger := parameter.RevealStagger
	if x.opts.Touch {
		stagger = parameter.RevealStaggerTouch
	}
	k := 0
	for _, u := range x.units {
		if u.IsSpace {
			continue
		}
		u.Reveal = parameter.RevealDelay + time.Duration(k)*stagger
		k++
	}
}
